package cli

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// startCommand launches a process without waiting for it. Tests replace it.
var startCommand = func(cmd *exec.Cmd) error { return cmd.Start() }

// viewerCommand returns the command that shows path in the default viewer
// of goos.
func viewerCommand(goos, path string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", path), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path), nil
	}
	return nil, fmt.Errorf("unsupported platform: %s", goos)
}

// openFile shows path in the system viewer. It does not wait for the viewer.
func openFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	cmd, err := viewerCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	return startCommand(cmd)
}
