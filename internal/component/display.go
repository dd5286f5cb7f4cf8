package component

import (
	"fmt"
	"html"
)

// Display renders c and returns the output, or a diagnostic when rendering
// fails. It never returns an error.
func (r *Renderer) Display(c any) (out string) {
	defer recoverDiagnostic(&out)

	out, err := r.Render(c)
	if err != nil {
		return Diagnostic(err)
	}
	return out
}

// DisplayAs is Display with an explicit identity.
func (r *Renderer) DisplayAs(identity string, c any) (out string) {
	defer recoverDiagnostic(&out)

	out, err := r.RenderAs(identity, c)
	if err != nil {
		return Diagnostic(err)
	}
	return out
}

func recoverDiagnostic(out *string) {
	if p := recover(); p != nil {
		*out = Diagnostic(fmt.Errorf("panic: %v", p))
	}
}

// Diagnostic formats err for inline display. Data-access failures show only
// their own message; anything else shows the full error chain.
func Diagnostic(err error) string {
	msg := err.Error()
	if de, ok := isDataError(err); ok {
		msg = de.Error()
	}
	return "<pre>" + html.EscapeString(msg) + "</pre>"
}

// Displayable pairs a component with a renderer so it can be used wherever
// a fmt.Stringer is accepted.
type Displayable struct {
	r *Renderer
	c any
}

// Bind returns a Displayable for c.
func Bind(r *Renderer, c any) Displayable {
	return Displayable{r: r, c: c}
}

// String renders the component with Display.
func (d Displayable) String() string {
	return d.r.Display(d.c)
}

var _ fmt.Stringer = Displayable{}
