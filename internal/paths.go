package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Paths struct (exported)
type Paths struct {
	AppDir      string // working directory of the launcher at startup
	Runtime     string // absolute path of the qode runtime executable
	EntryScript string // absolute path of the entry script
	Platforms   string // absolute path of the Qt platform plugin directory
}

// RuntimeFileName returns the platform name of the qode runtime executable.
func RuntimeFileName() string {
	if runtime.GOOS == "windows" {
		return RuntimeFileWindows
	}
	return RuntimeFile
}

// NewPaths derives the launch paths from a given application directory.
func NewPaths(appDir string) *Paths {
	appDir = filepath.Clean(appDir)
	return &Paths{
		AppDir:      appDir,
		Runtime:     filepath.Join(appDir, RuntimeFileName()),
		EntryScript: filepath.Join(appDir, EntryScriptFile),
		Platforms:   filepath.Join(appDir, PlatformsDir),
	}
}

// ResolvePaths derives the launch paths from the current working directory.
// The launcher is expected to be started inside the packaged application
// directory, so the working directory is the single source of truth.
func ResolvePaths() (*Paths, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for %s: %w", dir, err)
	}
	return NewPaths(absDir), nil
}

// MissingFiles returns the names of required launch files absent from the
// application directory. Both files are checked so a broken install reports
// everything wrong in one pass instead of one file per attempt.
func (p *Paths) MissingFiles() []string {
	var missing []string
	for _, f := range []string{p.Runtime, p.EntryScript} {
		if stat, err := os.Stat(f); err != nil || stat.IsDir() {
			missing = append(missing, filepath.Base(f))
		}
	}
	return missing
}

// Check verifies both required launch files exist.
func (p *Paths) Check() error {
	if missing := p.MissingFiles(); len(missing) > 0 {
		return fmt.Errorf("cannot find %s in %s", strings.Join(missing, " and "), p.AppDir)
	}
	return nil
}

// ExpandUserPath replaces {HOME} and {USERPROFILE} with the user's home directory for cross-platform config paths.
func ExpandUserPath(path string) string {
	home, _ := os.UserHomeDir()
	path = strings.ReplaceAll(path, "{HOME}", home)
	if runtime.GOOS == "windows" {
		userProfile := os.Getenv("USERPROFILE")
		if userProfile != "" {
			path = strings.ReplaceAll(path, "{USERPROFILE}", userProfile)
		}
	}
	return filepath.Clean(path)
}
