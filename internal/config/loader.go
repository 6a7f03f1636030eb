package config

import (
	"os"
	"path/filepath"
)

var defaultConfigNames = []string{"config.yaml", "config.yml", "config.json"}

// GetConfigPath resolves which config file to load. An existing explicit path
// wins, then $GATECHK_CONFIG_PATH, then the default names in the working
// directory and next to the executable. Empty means none was found.
func GetConfigPath(explicit string) string {
	for _, candidate := range []string{explicit, os.Getenv(EnvConfigPath)} {
		if candidate != "" && fileExists(candidate) {
			return candidate
		}
	}

	for _, dir := range searchDirs() {
		for _, name := range defaultConfigNames {
			if path := filepath.Join(dir, name); fileExists(path) {
				return path
			}
		}
	}
	return ""
}

func searchDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		if len(dirs) == 0 || dirs[0] != exeDir {
			dirs = append(dirs, exeDir)
		}
	}
	return dirs
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
