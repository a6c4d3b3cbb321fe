package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// AppDirName is the per-user config directory name.
const AppDirName = "wordfind"

// PathResolver locates the config file and corpus relative to the user's
// config dir, the working dir and the executable.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver determines the executable location and the platform
// config dir.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, AppDirName)
		}
		return filepath.Join(homeDir, ".config", AppDirName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", AppDirName)
	default:
		return filepath.Join(homeDir, ".config", AppDirName)
	}
}

// ConfigDir returns the config directory.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// GetConfigPath returns where filename lives in the config dir, falling back
// to the temp dir when the config dir can't be created.
func (pr *PathResolver) GetConfigPath(filename string) string {
	if err := EnsureDir(pr.configDir); err == nil {
		return filepath.Join(pr.configDir, filename)
	}
	fallback := filepath.Join(os.TempDir(), AppDirName, filename)
	log.Warnf("Using fallback config location: %s", fallback)
	return fallback
}

// ResolveCorpusPath finds the corpus file. Absolute paths are used as is;
// relative ones are tried against the working dir, the executable dir and
// the config dir in that order. If nothing exists the working dir candidate
// is returned so the caller reports a sensible path.
func (pr *PathResolver) ResolveCorpusPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, path))
	}
	candidates = append(candidates,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	)

	for _, c := range candidates {
		if FileExists(c) {
			log.Debugf("Found corpus at: %s", c)
			return c
		}
		log.Debugf("Corpus candidate not found: %s", c)
	}
	return candidates[0]
}
