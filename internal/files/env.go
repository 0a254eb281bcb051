package files

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName names the directory created under ~/.local/share when
	// XDG_DATA_HOME is not set.
	AppName = "daylog"
)

// Env carries the environment values daylog depends on. Keeping them in a
// struct lets callers resolve paths without touching the real process
// environment.
type Env struct {
	DataHome string // XDG_DATA_HOME
	Home     string // HOME
	Editor   string // EDITOR
}

// EnvFromOS snapshots the relevant variables from the process environment.
func EnvFromOS() Env {
	return Env{
		DataHome: strings.TrimSpace(os.Getenv("XDG_DATA_HOME")),
		Home:     strings.TrimSpace(os.Getenv("HOME")),
		Editor:   strings.TrimSpace(os.Getenv("EDITOR")),
	}
}

// ResolveRoot determines the directory holding the daily files. XDG_DATA_HOME
// wins when set to an absolute path (a leading ~ counts); relative values are
// ignored as the XDG base directory rules require, and the files live in
// ~/.local/share/daylog.
func ResolveRoot(env Env) (string, error) {
	if env.DataHome != "" {
		path, err := normalizePath(env.DataHome, env.Home)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(path) {
			return path, nil
		}
	}

	if env.Home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(env.Home, ".local", "share", AppName), nil
}

func normalizePath(input, home string) (string, error) {
	if input == "~" || strings.HasPrefix(input, "~/") {
		if home == "" {
			return "", ErrNoHome
		}
		input = filepath.Join(home, strings.TrimPrefix(input, "~"))
	}
	return input, nil
}
