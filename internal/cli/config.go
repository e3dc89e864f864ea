package cli

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Flyrell/moodchart/internal/chart"
	"github.com/Flyrell/moodchart/internal/mood"
	"github.com/Flyrell/moodchart/internal/report"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFlag = "config"
	envPrefix  = "MOODCHART"
)

// Config keys double as flag names and config file keys.
const (
	keyInput         = "input"
	keySince         = "since"
	keyUntil         = "until"
	keyCategory      = "category"
	keyOut           = "out"
	keyFormat        = "format"
	keyWidth         = "width"
	keyHeight        = "height"
	keyTrendWindow   = "trend-window"
	keyNoteWindow    = "note-window"
	keyKeywordWindow = "keyword-window"
	keyTopMonths     = "top-months"
	keyLongestNotes  = "longest-notes"
	keyKeyword       = "keyword"
	keyPDF           = "pdf"
	keyOpen          = "open"
	keyLogLevel      = "log-level"
)

const (
	defaultOut      = "charts"
	defaultWidth    = 1024
	defaultHeight   = 512
	defaultLogLevel = "warn"
)

// Config is the merged result of defaults, config file, environment and flags.
type Config struct {
	Input    string `mapstructure:"input"`
	Since    string `mapstructure:"since"`
	Until    string `mapstructure:"until"`
	Category string `mapstructure:"category"`

	Out    string `mapstructure:"out" validate:"required"`
	Format string `mapstructure:"format" validate:"oneof=png svg"`
	Width  int    `mapstructure:"width" validate:"gte=200,lte=8000"`
	Height int    `mapstructure:"height" validate:"gte=100,lte=8000"`

	TrendWindow   int      `mapstructure:"trend-window" validate:"gte=0"`
	NoteWindow    int      `mapstructure:"note-window" validate:"gte=0"`
	KeywordWindow int      `mapstructure:"keyword-window" validate:"gte=0"`
	TopMonths     int      `mapstructure:"top-months" validate:"gte=1"`
	LongestNotes  int      `mapstructure:"longest-notes" validate:"gte=1"`
	Keywords      []string `mapstructure:"keyword" validate:"min=1,dive,required"`

	PDF  string `mapstructure:"pdf"`
	Open bool   `mapstructure:"open"`

	LogLevel string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
}

func defaults() map[string]any {
	s := report.DefaultSettings()
	return map[string]any{
		keyOut:           defaultOut,
		keyFormat:        string(chart.FormatPNG),
		keyWidth:         defaultWidth,
		keyHeight:        defaultHeight,
		keyTrendWindow:   s.TrendWindow,
		keyNoteWindow:    s.NoteWindow,
		keyKeywordWindow: s.KeywordWindow,
		keyTopMonths:     s.TopMonths,
		keyLongestNotes:  s.LongestNotes,
		keyKeyword:       s.Keywords,
		keyLogLevel:      defaultLogLevel,
	}
}

// inputFlags are shared by every command that reads a journal.
var inputFlags = []StringFlag{
	{Name: keyInput, Shorthand: "i", Usage: "journal JSON file (default: stdin)"},
	{Name: keySince, Usage: "only entries on or after this date (YYYY-MM-DD, YYYY-MM, \"jan 2024\", today)"},
	{Name: keyUntil, Usage: "only entries on or before this date"},
	{Name: keyCategory, Usage: "only entries of this type"},
}

// rankFlags size the ranked lists.
var rankFlags = []IntFlag{
	{Name: keyTopMonths, Usage: "number of best/worst months", Default: report.DefaultSettings().TopMonths},
	{Name: keyLongestNotes, Usage: "number of longest notes", Default: report.DefaultSettings().LongestNotes},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
	})
	return v
}

// loadConfig merges defaults, the optional --config file, MOODCHART_* env
// vars and the command's flags, then validates the result.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path, _ := cmd.Flags().GetString(configFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, configError(err)
	}
	return &cfg, nil
}

func configError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s: %v does not satisfy %s", fe.Field(), fe.Value(), rule))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

// Filter builds the entry filter from the date and category settings.
func (c *Config) Filter() (mood.Filter, error) {
	var f mood.Filter
	if c.Since != "" {
		t, err := mood.ParseDate(c.Since)
		if err != nil {
			return mood.Filter{}, fmt.Errorf("invalid --%s: %w", keySince, err)
		}
		f.Since = t
	}
	if c.Until != "" {
		t, err := mood.ParseDate(c.Until)
		if err != nil {
			return mood.Filter{}, fmt.Errorf("invalid --%s: %w", keyUntil, err)
		}
		f.Until = t
	}
	if !f.Since.IsZero() && !f.Until.IsZero() && f.Until.Before(f.Since) {
		return mood.Filter{}, fmt.Errorf("--%s must not be before --%s", keyUntil, keySince)
	}
	f.Category = c.Category
	return f, nil
}

// Settings returns the chart set configuration.
func (c *Config) Settings() report.Settings {
	return report.Settings{
		TrendWindow:   c.TrendWindow,
		NoteWindow:    c.NoteWindow,
		KeywordWindow: c.KeywordWindow,
		TopMonths:     c.TopMonths,
		LongestNotes:  c.LongestNotes,
		Keywords:      c.Keywords,
	}
}

// ChartOptions returns the renderer options.
func (c *Config) ChartOptions() chart.Options {
	return chart.Options{
		Width:  c.Width,
		Height: c.Height,
		Format: chart.Format(c.Format),
	}
}
