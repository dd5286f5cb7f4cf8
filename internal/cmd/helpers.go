package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/uicomponent/internal/component"
	"github.com/cameronsjo/uicomponent/internal/config"
	"github.com/cameronsjo/uicomponent/internal/ui"
)

// loadConfig loads the project configuration and applies persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flagTemplateRoot != "" {
		cfg.TemplateRoot = flagTemplateRoot
	}
	if len(flagSearchPath) > 0 {
		dirs, err := absPaths(flagSearchPath)
		if err != nil {
			return nil, err
		}
		cfg.SearchPath = dirs
	}
	if flagExtension != "" {
		cfg.Extension = flagExtension
	}
	if flagSeparator != "" {
		cfg.Separator = flagSeparator
	}
	if flagEngine != "" {
		cfg.Engine = flagEngine
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ui.Debug("project root: %s", cfg.Root)
	ui.Debug("search path: %s", strings.Join(cfg.SearchPath, ", "))
	return cfg, nil
}

// absPaths resolves relative --search-path entries against the working
// directory.
func absPaths(paths []string) ([]string, error) {
	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve search path %s: %w", p, err)
		}
		dirs = append(dirs, abs)
	}
	return dirs, nil
}

// withRenderer loads configuration and runs fn with a renderer built from it.
func withRenderer(fn func(r *component.Renderer) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return fn(cfg.Renderer())
}

// loadData reads a YAML or JSON file into a map for use as template data.
func loadData(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	data := make(map[string]any)
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}
	return data, nil
}

// applySets merges key=value pairs into data. Dotted keys create nested maps.
func applySets(data map[string]any, sets []string) error {
	for _, set := range sets {
		key, value, ok := strings.Cut(set, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid --set %q (want key=value)", set)
		}

		parts := strings.Split(key, ".")
		target := data
		for _, part := range parts[:len(parts)-1] {
			next, ok := target[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				target[part] = next
			}
			target = next
		}
		target[parts[len(parts)-1]] = value
	}
	return nil
}
