package component

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/cameronsjo/uicomponent/internal/fileutil"
)

// Engine selects the template package used to execute template files.
type Engine string

const (
	// EngineHTML executes templates with html/template (contextual escaping).
	EngineHTML Engine = "html"
	// EngineText executes templates with text/template.
	EngineText Engine = "text"
)

const (
	// DefaultTemplateRoot is the root used when none is configured.
	DefaultTemplateRoot = "templates" + string(filepath.Separator)
	// DefaultExtension is appended to every derived template path.
	DefaultExtension = ".tmpl"
	// DefaultSeparator splits an identity into namespace and leaf.
	DefaultSeparator = "."
)

// Config holds renderer configuration.
type Config struct {
	// TemplateRoot is the base directory templates are looked up under.
	TemplateRoot string

	// SearchPath lists the directories a relative template path is
	// resolved against, in order. Defaults to the working directory.
	SearchPath []string

	// Extension is the template file extension, including the dot.
	Extension string

	// Separator is the namespace separator inside identities.
	Separator string

	// Engine selects html/template or text/template.
	Engine Engine
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	return Config{
		TemplateRoot: DefaultTemplateRoot,
		SearchPath:   []string{"."},
		Extension:    DefaultExtension,
		Separator:    DefaultSeparator,
		Engine:       EngineHTML,
	}
}

// Renderer locates and executes component templates.
type Renderer struct {
	mu         sync.RWMutex
	root       string
	searchPath []string
	extension  string
	separator  string
	engine     Engine
	funcs      map[string]any
}

// Option is a functional option for configuring the Renderer.
type Option func(*Renderer)

// WithFuncs adds template functions on top of the sprig and built-in sets.
// Later entries override earlier ones with the same name.
func WithFuncs(funcs map[string]any) Option {
	return func(r *Renderer) {
		for name, fn := range funcs {
			r.funcs[name] = fn
		}
	}
}

// New creates a Renderer from cfg. Zero-valued fields take their defaults.
func New(cfg Config, opts ...Option) *Renderer {
	def := DefaultConfig()

	r := &Renderer{
		searchPath: cfg.SearchPath,
		extension:  cfg.Extension,
		separator:  cfg.Separator,
		engine:     cfg.Engine,
		funcs:      make(map[string]any),
	}
	if len(r.searchPath) == 0 {
		r.searchPath = def.SearchPath
	}
	if r.extension == "" {
		r.extension = def.Extension
	} else if !strings.HasPrefix(r.extension, ".") {
		r.extension = "." + r.extension
	}
	if r.separator == "" {
		r.separator = def.Separator
	}
	if r.engine == "" {
		r.engine = def.Engine
	}
	r.SetTemplateRoot(cfg.TemplateRoot)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// SetTemplateRoot sets the template root, normalized to end in exactly one
// directory separator. An empty path restores DefaultTemplateRoot. The path
// is not checked for existence.
func (r *Renderer) SetTemplateRoot(path string) {
	root := normalizeRoot(path)

	r.mu.Lock()
	r.root = root
	r.mu.Unlock()
}

// TemplateRoot returns the current template root.
func (r *Renderer) TemplateRoot() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// SearchPath returns a copy of the configured search locations.
func (r *Renderer) SearchPath() []string {
	return append([]string(nil), r.searchPath...)
}

// Extension returns the template file extension.
func (r *Renderer) Extension() string {
	return r.extension
}

func normalizeRoot(path string) string {
	if path == "" {
		return DefaultTemplateRoot
	}
	sep := string(filepath.Separator)
	trimmed := strings.TrimRight(path, sep)
	if trimmed == "" {
		return sep
	}
	return trimmed + sep
}

// DerivePath maps an identity to a template path relative to the template
// root. The namespace part becomes directories; underscores in the leaf
// become directories too:
//
//	A.B.MyClass -> A/B/MyClass.tmpl
//	My_Class    -> My/Class.tmpl
//
// Namespace substitution happens before underscore substitution. Identities
// mixing both conventions may map to the same path.
func (r *Renderer) DerivePath(identity string) string {
	sep := string(filepath.Separator)

	var prefix string
	leaf := identity
	if i := strings.LastIndex(identity, r.separator); i >= 0 {
		namespace := identity[:i]
		leaf = identity[i+len(r.separator):]

		prefix = strings.ReplaceAll(namespace, r.separator, sep) + sep
		prefix = strings.TrimPrefix(prefix, sep)
	}

	return prefix + strings.ReplaceAll(leaf, "_", sep) + r.extension
}

// Exists resolves path against the search path and returns the first
// readable file found.
func (r *Renderer) Exists(path string) (string, bool) {
	return fileutil.ResolveIncludePath(path, r.searchPath)
}

// ResolveFile returns the template file for identity. It fails with a
// *NotFoundError when the computed path does not resolve on the search path.
func (r *Renderer) ResolveFile(identity string) (string, error) {
	path := r.TemplateRoot() + r.DerivePath(identity)

	resolved, ok := r.Exists(path)
	if !ok {
		return "", &NotFoundError{Identity: identity, Path: path}
	}
	return resolved, nil
}
