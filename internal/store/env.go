package store

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvHome names the environment variable that overrides where the durable
// record lives.
const EnvHome = "TRIPMARK_HOME"

// DefaultDirName is the folder under the user's home directory.
const DefaultDirName = ".tripmark"

// ResolveBasePath determines where the travel-log record is stored. EnvHome
// wins when set (a leading ~ is expanded); otherwise ~/.tripmark.
func ResolveBasePath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(EnvHome)); override != "" {
		return expandHome(override)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
