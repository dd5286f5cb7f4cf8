package component

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Button struct {
	Label string
	Class string
}

func (b Button) Upper() string { return strings.ToUpper(b.Label) }

type Legacy_Panel struct {
	Title string
}

type Card struct {
	Title string
}

func (c *Card) TemplateIdentity() string { return "ui.cards.Card" }

type Box[T any] struct {
	Value T
}

type Broken struct{}

func (Broken) Explode() string { panic("kaboom") }

func TestIdentityOf(t *testing.T) {
	r := New(DefaultConfig())

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"struct value", Button{}, "component.Button"},
		{"pointer", &Button{}, "component.Button"},
		{"pointer to pointer", func() any { b := &Button{}; return &b }(), "component.Button"},
		{"legacy underscore name", Legacy_Panel{}, "component.Legacy_Panel"},
		{"identifier override", &Card{}, "ui.cards.Card"},
		{"generic type", Box[int]{}, "component.Box"},
		{"predeclared type", 42, "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.IdentityOf(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityOf_CustomSeparator(t *testing.T) {
	r := New(Config{Separator: "::"})

	got, err := r.IdentityOf(Button{})
	require.NoError(t, err)
	assert.Equal(t, "component::Button", got)
}

func TestIdentityOf_Errors(t *testing.T) {
	r := New(DefaultConfig())

	_, err := r.IdentityOf(nil)
	assert.ErrorIs(t, err, ErrNilComponent)

	var card *Card
	_, err = r.IdentityOf(card)
	assert.ErrorIs(t, err, ErrNilComponent)

	_, err = r.IdentityOf(struct{ X int }{})
	assert.ErrorIs(t, err, ErrAnonymousComponent)
}

func TestRender(t *testing.T) {
	t.Run("derives template from type", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `<button class="{{ .Class }}">{{ .Label }}</button>`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(Button{Label: "Save", Class: "primary"})
		require.NoError(t, err)
		assert.Equal(t, `<button class="primary">Save</button>`, out)
	})

	t.Run("template reaches exported methods", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `{{ .Upper }}`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(&Button{Label: "save"})
		require.NoError(t, err)
		assert.Equal(t, "SAVE", out)
	})

	t.Run("legacy underscore type", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Legacy/Panel.tmpl", `<h2>{{ .Title }}</h2>`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(Legacy_Panel{Title: "Old"})
		require.NoError(t, err)
		assert.Equal(t, "<h2>Old</h2>", out)
	})

	t.Run("identifier override", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/ui/cards/Card.tmpl", `card:{{ .Title }}`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(&Card{Title: "hello"})
		require.NoError(t, err)
		assert.Equal(t, "card:hello", out)
	})

	t.Run("sprig functions", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `{{ .Label | upper }}-{{ .Class | default "plain" }}`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(Button{Label: "go"})
		require.NoError(t, err)
		assert.Equal(t, "GO-plain", out)
	})

	t.Run("identity function", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `{{ identity }}`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(Button{})
		require.NoError(t, err)
		assert.Equal(t, "component.Button", out)
	})

	t.Run("include resolves on search path", func(t *testing.T) {
		base := t.TempDir()
		shared := t.TempDir()
		writeTemplate(t, base, "templates/component/Button.tmpl", `[{{ include "partials/icon.svg" }}]`)
		writeTemplate(t, shared, "partials/icon.svg", "ICON")

		r := New(Config{SearchPath: []string{base, shared}, Engine: EngineText})
		out, err := r.Render(Button{})
		require.NoError(t, err)
		assert.Equal(t, "[ICON]", out)
	})

	t.Run("include is verbatim under the html engine", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `[{{ include "partials/icon.svg" }}]`)
		writeTemplate(t, dir, "partials/icon.svg", "<svg/>")

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(Button{})
		require.NoError(t, err)
		assert.Equal(t, "[<svg/>]", out)
	})

	t.Run("include of a missing file fails", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `[{{ include "partials/none.svg" }}]`)

		r := New(Config{SearchPath: []string{dir}})
		_, err := r.Render(Button{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "include partials/none.svg")
	})

	t.Run("html engine escapes", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `<b>{{ .Label }}</b>`)

		r := New(Config{SearchPath: []string{dir}})
		out, err := r.Render(Button{Label: "<script>"})
		require.NoError(t, err)
		assert.Equal(t, "<b>&lt;script&gt;</b>", out)
	})

	t.Run("text engine does not escape", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `<b>{{ .Label }}</b>`)

		r := New(Config{SearchPath: []string{dir}, Engine: EngineText})
		out, err := r.Render(Button{Label: "<i>"})
		require.NoError(t, err)
		assert.Equal(t, "<b><i></b>", out)
	})

	t.Run("custom funcs", func(t *testing.T) {
		dir := t.TempDir()
		writeTemplate(t, dir, "templates/component/Button.tmpl", `{{ greet .Label }}`)

		r := New(Config{SearchPath: []string{dir}}, WithFuncs(map[string]any{
			"greet": func(s string) string { return "hi " + s },
		}))
		out, err := r.Render(Button{Label: "there"})
		require.NoError(t, err)
		assert.Equal(t, "hi there", out)
	})

	t.Run("missing template", func(t *testing.T) {
		r := New(Config{SearchPath: []string{t.TempDir()}})

		_, err := r.Render(Button{})
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("nil component", func(t *testing.T) {
		r := New(DefaultConfig())

		_, err := r.Render(nil)
		assert.ErrorIs(t, err, ErrNilComponent)
	})
}

func TestRenderAs(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/A/B/MyClass.tmpl", `as:{{ .Label }}`)

	r := New(Config{SearchPath: []string{dir}})
	out, err := r.RenderAs("A.B.MyClass", Button{Label: "x"})
	require.NoError(t, err)
	assert.Equal(t, "as:x", out)

	out, err = r.RenderAs("A.B.MyClass", map[string]any{"Label": "from map"})
	require.NoError(t, err)
	assert.Equal(t, "as:from map", out)
}

func TestRender_CaptureIsExact(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/XY.tmpl", `{{ print "X" }}{{ print "Y" }}`)

	r := New(Config{SearchPath: []string{dir}})
	out, err := r.RenderAs("XY", nil)
	require.NoError(t, err)
	assert.Equal(t, "XY", out)
}

func TestRender_FailureLeavesNoResidue(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/Failing.tmpl", `partial output {{ fail "boom" }} never reached`)
	writeTemplate(t, dir, "templates/XY.tmpl", `XY`)

	r := New(Config{SearchPath: []string{dir}})

	out, err := r.RenderAs("Failing", nil)
	require.Error(t, err)
	assert.Empty(t, out)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, filepath.Join(dir, "templates", "Failing.tmpl"), execErr.Path)
	assert.Contains(t, err.Error(), "boom")

	out, err = r.RenderAs("XY", nil)
	require.NoError(t, err)
	assert.Equal(t, "XY", out)
}

func TestRender_PanicIsRecovered(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/component/Broken.tmpl", `before {{ .Explode }}`)
	writeTemplate(t, dir, "templates/XY.tmpl", `XY`)

	r := New(Config{SearchPath: []string{dir}})

	out, err := r.Render(Broken{})
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "kaboom")

	out, err = r.RenderAs("XY", nil)
	require.NoError(t, err)
	assert.Equal(t, "XY", out)
}

func TestRender_ParseError(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/Bad.tmpl", `{{ .Unclosed `)

	r := New(Config{SearchPath: []string{dir}})

	_, err := r.RenderAs("Bad", nil)
	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Contains(t, err.Error(), "parse")
}

func TestRender_RereadsTemplateEachCall(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/Live.tmpl", `v1`)

	r := New(Config{SearchPath: []string{dir}})

	out, err := r.RenderAs("Live", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)

	writeTemplate(t, dir, "templates/Live.tmpl", `v2`)

	out, err = r.RenderAs("Live", nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestRender_Concurrent(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "templates/component/Button.tmpl", `{{ .Label }}`)

	r := New(Config{SearchPath: []string{dir}})

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			want := fmt.Sprintf("b%d", i)
			out, err := r.Render(Button{Label: want})
			if err != nil {
				errs <- err
				return
			}
			if out != want {
				errs <- errors.New("got " + out + " want " + want)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
