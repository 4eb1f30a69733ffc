package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".clearprose.yml"

// FileConfig is the optional .clearprose.yml project file. Flags given on
// the command line take precedence.
type FileConfig struct {
	Target      string   `yaml:"target"`
	Format      string   `yaml:"format"`
	Concurrency int      `yaml:"concurrency"`
	MaxGrade    int      `yaml:"max-grade"`
	Ignore      []string `yaml:"ignore"`
}

// LoadConfig reads and parses a config file at the given path.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// DiscoverConfig walks up from startDir looking for .clearprose.yml and
// stops at a repository root (a directory holding .git) or the filesystem
// root. It returns "" when nothing was found.
func DiscoverConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// resolveConfig loads the explicit path when given, else the discovered
// file, else an empty config.
func resolveConfig(explicit, startDir string) (*FileConfig, string, error) {
	path := explicit
	if path == "" {
		found, err := DiscoverConfig(startDir)
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	if path == "" {
		return &FileConfig{}, "", nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
