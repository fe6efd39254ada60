// Package config loads the optional .taskline.yaml file from the working
// directory. A missing file yields defaults; flags override whatever the
// file sets.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/taskline/internal/journal"
	"github.com/roach88/taskline/internal/store"
)

// DefaultPath is where Load looks for the config file.
const DefaultPath = ".taskline.yaml"

// Config holds the user-tunable defaults for the CLI.
type Config struct {
	TasksFile   string `yaml:"tasks_file"`
	JournalFile string `yaml:"journal_file"`
	Format      string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TasksFile:   store.DefaultPath,
		JournalFile: journal.DefaultPath,
		Format:      "text",
	}
}

// Load reads the config file at path. A missing file is not an error:
// defaults are returned. Unknown keys are rejected so typos surface
// instead of being silently ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	var fileCfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file means defaults.
			return cfg, nil
		}
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fileCfg.TasksFile != "" {
		cfg.TasksFile = fileCfg.TasksFile
	}
	if fileCfg.JournalFile != "" {
		cfg.JournalFile = fileCfg.JournalFile
	}
	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	return cfg, nil
}
