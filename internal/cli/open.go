package cli

import (
	"context"
	"os/exec"
	"runtime"
)

// openFile launches the platform's default viewer for path.
func openFile(ctx context.Context, path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", "-W", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "cmd", "/c", "start", "/wait", "", path)
	default:
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	}
	return cmd.Run()
}
