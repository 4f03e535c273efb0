// Package editor launches the configured editor on the solutions directory.
// The launcher is an interface so the session can be tested with a spy
// instead of shelling out.
package editor

import (
	"context"
	"fmt"
	"os/exec"
)

// Launcher opens a directory in an external editor.
type Launcher interface {
	Open(ctx context.Context, dir string) error
}

// CommandLauncher invokes an editor binary with the directory as its sole
// argument, e.g. `code <dir>`.
type CommandLauncher struct {
	Binary string
}

// NewCommandLauncher returns a launcher for the given editor binary.
func NewCommandLauncher(binary string) *CommandLauncher {
	return &CommandLauncher{Binary: binary}
}

// Open runs the editor command. The process inherits no timeout: a session
// blocks until the launch command returns.
func (l *CommandLauncher) Open(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, l.Binary, dir)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("editor command %q failed: %w, output: %s", l.Binary, err, output)
	}
	return nil
}

// Noop is a Launcher that does nothing. Used when no editor is configured.
type Noop struct{}

func (Noop) Open(context.Context, string) error { return nil }
