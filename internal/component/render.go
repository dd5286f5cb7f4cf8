package component

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"os"
	"path/filepath"
	texttemplate "text/template"

	"github.com/Masterminds/sprig/v3"
)

// Render renders c through the template derived from its identity.
func (r *Renderer) Render(c any) (string, error) {
	identity, err := r.IdentityOf(c)
	if err != nil {
		return "", err
	}
	return r.RenderAs(identity, c)
}

// RenderAs renders c through the template for identity, bypassing the
// identity derived from c's type. c is passed to the template as dot.
func (r *Renderer) RenderAs(identity string, c any) (string, error) {
	file, err := r.ResolveFile(identity)
	if err != nil {
		return "", err
	}
	return r.execute(identity, file, c)
}

// execute runs file into a buffer owned by this call. Nothing written before
// a failure is returned.
func (r *Renderer) execute(identity, file string, data any) (out string, err error) {
	var buf bytes.Buffer

	defer func() {
		if p := recover(); p != nil {
			out = ""
			err = &ExecutionError{Path: file, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	content, err := os.ReadFile(file)
	if err != nil {
		return "", &ExecutionError{Path: file, Err: fmt.Errorf("read: %w", err)}
	}

	funcs := r.funcMap(identity)
	name := filepath.Base(file)

	switch r.engine {
	case EngineText:
		tmpl, err := texttemplate.New(name).Funcs(funcs).Parse(string(content))
		if err != nil {
			return "", &ExecutionError{Path: file, Err: fmt.Errorf("parse: %w", err)}
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", &ExecutionError{Path: file, Err: err}
		}
	default:
		tmpl, err := htmltemplate.New(name).Funcs(funcs).Parse(string(content))
		if err != nil {
			return "", &ExecutionError{Path: file, Err: fmt.Errorf("parse: %w", err)}
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", &ExecutionError{Path: file, Err: err}
		}
	}

	return buf.String(), nil
}

// funcMap returns sprig's functions plus the renderer built-ins and any
// functions added with WithFuncs.
func (r *Renderer) funcMap(identity string) map[string]any {
	funcs := map[string]any(sprig.FuncMap())
	if r.engine == EngineText {
		funcs = map[string]any(sprig.TxtFuncMap())
	}

	funcs["identity"] = func() string { return identity }
	if r.engine == EngineText {
		funcs["include"] = r.include
	} else {
		// html/template would escape a plain string.
		funcs["include"] = func(path string) (htmltemplate.HTML, error) {
			data, err := r.include(path)
			return htmltemplate.HTML(data), err
		}
	}

	for name, fn := range r.funcs {
		funcs[name] = fn
	}
	return funcs
}

// include returns the contents of a file on the search path.
func (r *Renderer) include(path string) (string, error) {
	resolved, ok := r.Exists(path)
	if !ok {
		return "", fmt.Errorf("include %s: %w", path, os.ErrNotExist)
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("include %s: %w", path, err)
	}
	return string(data), nil
}
