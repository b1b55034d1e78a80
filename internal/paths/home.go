package paths

import (
	"os"
	"path/filepath"
)

const envHome = "KANBORD_HOME_DIR"

// Home returns the base directory for kanbord configuration/state.
// Defaults to ~/.kanbord, can be overridden via KANBORD_HOME_DIR.
func Home() string {
	if v := os.Getenv(envHome); v != "" {
		return v
	}
	hd, err := os.UserHomeDir()
	if err != nil || hd == "" {
		return ".kanbord"
	}
	return filepath.Join(hd, ".kanbord")
}

func EnsureHome() (string, error) {
	h := Home()
	if err := os.MkdirAll(h, 0o755); err != nil {
		return "", err
	}
	return h, nil
}
