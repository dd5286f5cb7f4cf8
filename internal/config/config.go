// Package config handles project discovery and configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cameronsjo/uicomponent/internal/component"
)

// FileName is the project configuration file looked for by FindRoot.
const FileName = "uicomponent.yaml"

// Environment variables that override file values.
const (
	EnvTemplateRoot = "UICOMPONENT_TEMPLATE_ROOT"
	EnvSearchPath   = "UICOMPONENT_SEARCH_PATH"
	EnvExtension    = "UICOMPONENT_EXTENSION"
	EnvEngine       = "UICOMPONENT_ENGINE"
)

// Config holds the uicomponent project configuration.
type Config struct {
	// Root is the project root directory (contains uicomponent.yaml or templates/).
	Root string `yaml:"-"`

	// TemplateRoot is the template root, relative to each search location.
	TemplateRoot string `yaml:"template_root"`

	// SearchPath lists the directories templates are resolved against.
	// Relative entries are resolved against Root.
	SearchPath []string `yaml:"search_path"`

	// Extension is the template file extension.
	Extension string `yaml:"extension"`

	// Separator is the namespace separator used in identities.
	Separator string `yaml:"separator"`

	// Engine is "html" or "text".
	Engine string `yaml:"engine"`
}

// Default returns a Config rooted at root with renderer defaults.
func Default(root string) *Config {
	def := component.DefaultConfig()
	return &Config{
		Root:         root,
		TemplateRoot: def.TemplateRoot,
		SearchPath:   []string{root},
		Extension:    def.Extension,
		Separator:    def.Separator,
		Engine:       string(def.Engine),
	}
}

// FindRoot searches upward from the current directory to find the project root.
// The project root is identified by a uicomponent.yaml file or a templates/ directory.
func FindRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}

		if info, err := os.Stat(filepath.Join(dir, "templates")); err == nil && info.IsDir() {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("project root not found (no %s or templates/ directory)", FileName)
}

// Load finds the project root and returns its Config. When no root is found
// the working directory is used with defaults.
func Load() (*Config, error) {
	root, err := FindRoot()
	if err != nil {
		root, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}
	return LoadFrom(root)
}

// LoadFrom reads root/uicomponent.yaml if present and applies environment
// overrides.
func LoadFrom(root string) (*Config, error) {
	cfg := Default(root)

	data, err := os.ReadFile(filepath.Join(root, FileName))
	switch {
	case err == nil:
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", FileName, err)
		}
		cfg.merge(&file)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.SearchPath = cfg.absSearchPath()
	return cfg, nil
}

// merge copies non-empty values from other.
func (c *Config) merge(other *Config) {
	if other.TemplateRoot != "" {
		c.TemplateRoot = other.TemplateRoot
	}
	if len(other.SearchPath) > 0 {
		c.SearchPath = other.SearchPath
	}
	if other.Extension != "" {
		c.Extension = other.Extension
	}
	if other.Separator != "" {
		c.Separator = other.Separator
	}
	if other.Engine != "" {
		c.Engine = other.Engine
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvTemplateRoot); v != "" {
		c.TemplateRoot = v
	}
	if v := os.Getenv(EnvSearchPath); v != "" {
		c.SearchPath = filepath.SplitList(v)
	}
	if v := os.Getenv(EnvExtension); v != "" {
		c.Extension = v
	}
	if v := os.Getenv(EnvEngine); v != "" {
		c.Engine = v
	}
}

// Validate checks that the configuration can build a renderer.
func (c *Config) Validate() error {
	switch component.Engine(strings.ToLower(c.Engine)) {
	case component.EngineHTML, component.EngineText:
	default:
		return fmt.Errorf("invalid engine %q (want html or text)", c.Engine)
	}
	return nil
}

// absSearchPath resolves relative search entries against Root.
func (c *Config) absSearchPath() []string {
	dirs := make([]string, 0, len(c.SearchPath))
	for _, dir := range c.SearchPath {
		if dir == "" {
			continue
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(c.Root, dir)
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// RendererConfig converts c into a component.Config.
func (c *Config) RendererConfig() component.Config {
	return component.Config{
		TemplateRoot: c.TemplateRoot,
		SearchPath:   c.SearchPath,
		Extension:    c.Extension,
		Separator:    c.Separator,
		Engine:       component.Engine(strings.ToLower(c.Engine)),
	}
}

// Renderer builds a component.Renderer from c.
func (c *Config) Renderer(opts ...component.Option) *component.Renderer {
	return component.New(c.RendererConfig(), opts...)
}
