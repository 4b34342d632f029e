package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/tailwhip/internal/logger"
	"github.com/MrSnakeDoc/tailwhip/internal/utils"
)

const (
	envPrefix      = "TAILWHIP"
	pyprojectFile  = "pyproject.toml"
	pyprojectTable = "tool.tailwhip"
)

// projectFiles are looked up in every directory from the search path up to
// the filesystem root; the first directory holding one of them wins.
var projectFiles = []string{".tailwhip.yaml", ".tailwhip.yml", ".tailwhip.toml", pyprojectFile}

type Options struct {
	// CustomFile is merged last, above the project file. Optional.
	CustomFile string
	// SearchPath is where the project file lookup starts. Defaults to the
	// working directory.
	SearchPath string
}

// Load merges, in increasing precedence, the embedded defaults, the project
// file, the custom file and TAILWHIP_* environment variables. Each layer
// replaces whole keys.
func Load(opts Options) (*Settings, error) {
	v := viper.New()

	var defaults map[string]any
	if err := yaml.Unmarshal(defaultsYAML, &defaults); err != nil {
		return nil, fmt.Errorf("failed to decode built-in defaults: %w", err)
	}
	if err := v.MergeConfigMap(defaults); err != nil {
		return nil, fmt.Errorf("failed to load built-in defaults: %w", err)
	}

	var files []string

	project, err := findProjectFile(opts.SearchPath)
	if err != nil {
		return nil, err
	}
	if project != "" {
		merged, err := mergeFile(v, project)
		if err != nil {
			return nil, err
		}
		if merged {
			files = append(files, project)
		}
	}

	if opts.CustomFile != "" {
		exists, err := utils.FileExists(opts.CustomFile)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, opts.CustomFile)
		}

		abs, err := filepath.Abs(opts.CustomFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", opts.CustomFile, err)
		}
		if _, err := mergeFile(v, abs); err != nil {
			return nil, err
		}
		files = append(files, abs)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	s.Files = files

	if _, err := s.Patterns(); err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded (files: %v)", files)
	return &s, nil
}

// mergeFile merges path into v. For pyproject.toml only the [tool.tailwhip]
// table is used; merged is false when the file has none.
func mergeFile(v *viper.Viper, path string) (merged bool, err error) {
	fv := viper.New()
	fv.SetConfigFile(path)
	if err := fv.ReadInConfig(); err != nil {
		return false, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if filepath.Base(path) == pyprojectFile {
		fv = fv.Sub(pyprojectTable)
		if fv == nil {
			logger.Debug("%s has no [%s] table, using defaults", path, pyprojectTable)
			return false, nil
		}
	}

	if err := v.MergeConfigMap(fv.AllSettings()); err != nil {
		return false, fmt.Errorf("failed to merge config file %s: %w", path, err)
	}
	return true, nil
}

func findProjectFile(start string) (string, error) {
	dir, err := searchRoot(start)
	if err != nil {
		return "", err
	}

	for {
		for _, name := range projectFiles {
			candidate := filepath.Join(dir, name)
			if ok, _ := utils.FileExists(candidate); ok {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// searchRoot resolves where the lookup starts: the directory itself, the
// parent of a file, or the working directory for anything that does not
// exist (a glob pattern, typically).
func searchRoot(start string) (string, error) {
	if start == "" {
		start = "."
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", start, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err != nil:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return wd, nil
	case info.IsDir():
		return abs, nil
	default:
		return filepath.Dir(abs), nil
	}
}

// Dump renders s as YAML.
func Dump(s *Settings) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
