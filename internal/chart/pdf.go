package chart

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// pdfContentWidth is the usable A4 width in mm with 15mm side margins.
const pdfContentWidth = 180.0

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// Figure is a rendered PNG chart with its title.
type Figure struct {
	Title string
	PNG   []byte
}

// Report describes a PDF bundle of figures.
type Report struct {
	Title    string
	Subtitle string
	Figures  []Figure
}

// RenderPDF lays out every figure of the report on A4 pages, one per row,
// and saves the document to outputPath. aspect is the figures' height/width
// ratio.
func RenderPDF(report Report, aspect float64, outputPath string) error {
	if len(report.Figures) == 0 {
		return fmt.Errorf("pdf report: %w", ErrNoData)
	}
	if aspect <= 0 {
		return fmt.Errorf("invalid figure aspect ratio %v", aspect)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, report.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	if report.Subtitle != "" {
		m.AddRow(8,
			text.NewCol(12, report.Subtitle, props.Text{
				Size:  10,
				Color: &pdfMutedColor,
			}),
		)
	}
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	figureHeight := pdfContentWidth * aspect
	for _, fig := range report.Figures {
		m.AddRow(8,
			text.NewCol(12, fig.Title, props.Text{
				Style: fontstyle.Bold,
				Size:  11,
				Color: &pdfHeaderColor,
			}),
		)
		m.AddRow(figureHeight,
			image.NewFromBytesCol(12, fig.PNG, extension.Png, props.Rect{
				Center:  true,
				Percent: 100,
			}),
		)
		m.AddRow(4)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
