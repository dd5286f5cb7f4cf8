package component

import (
	"fmt"
	"path"
	"reflect"
	"strings"
)

// Identifier is implemented by components that choose their own template
// identity instead of the one derived from their type.
type Identifier interface {
	TemplateIdentity() string
}

// IdentityOf returns the identity used to locate c's template: the value of
// TemplateIdentity when c implements Identifier, otherwise the package name
// and type name joined by the namespace separator. Pointers are dereferenced
// and type arguments of generic types are dropped. A nil pointer is treated
// like a nil component.
func (r *Renderer) IdentityOf(c any) (string, error) {
	if c == nil {
		return "", ErrNilComponent
	}
	if v := reflect.ValueOf(c); v.Kind() == reflect.Pointer && v.IsNil() {
		return "", ErrNilComponent
	}
	if id, ok := c.(Identifier); ok {
		return customIdentity(id)
	}

	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", ErrAnonymousComponent
	}

	pkg := t.PkgPath()
	if pkg == "" {
		return name, nil
	}
	return path.Base(pkg) + r.separator + name, nil
}

func customIdentity(id Identifier) (identity string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("template identity of %T: panic: %v", id, p)
		}
	}()
	return id.TemplateIdentity(), nil
}
