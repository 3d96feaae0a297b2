package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvOverride is a single environment variable assignment applied to the
// launcher's own process before the spawn.
type EnvOverride struct {
	Key   string
	Value string
}

// QtEnvOverrides returns the three Qt environment overrides the runtime
// needs, all derived from the application directory: the directory is
// prefixed onto PATH so the runtime's bundled DLLs win the search, and the
// plugin paths point Qt at the bundled plugins instead of any system ones.
func QtEnvOverrides(appDir string) []EnvOverride {
	return []EnvOverride{
		{Key: PathKey, Value: appDir + string(os.PathListSeparator) + os.Getenv(PathKey)},
		{Key: QtPluginPathKey, Value: appDir},
		{Key: QtPlatformPluginPathKey, Value: filepath.Join(appDir, PlatformsDir)},
	}
}

// ApplyEnv sets the overrides on the launcher's process. The child inherits
// them because the spawn never overrides its environment.
func ApplyEnv(overrides []EnvOverride) error {
	for _, ov := range overrides {
		if err := os.Setenv(ov.Key, ov.Value); err != nil {
			return fmt.Errorf("failed to set %s: %w", ov.Key, err)
		}
	}
	return nil
}
