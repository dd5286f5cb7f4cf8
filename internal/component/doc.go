// Package component renders Go values through template files whose location
// is derived from the value's qualified type name.
//
// A component's identity is its package name and type name joined by the
// namespace separator:
//
//	widgets.Button        -> templates/widgets/Button.tmpl
//	admin.users.Row       -> templates/admin/users/Row.tmpl
//	Legacy_Flat_Name      -> templates/Legacy/Flat/Name.tmpl
//
// Underscores in the last segment are treated as directory separators, which
// keeps flat legacy names working alongside namespaced ones.
//
// # Lookup
//
// The template root is joined with the derived path and resolved against the
// renderer's search path, so several template trees can be mounted side by
// side. The first readable file wins.
//
// # Rendering
//
// The resolved file is parsed and executed with the component as its data,
// so templates reach the component's exported fields and methods through
// dot:
//
//	<button class="{{ .Class }}">{{ .Label | upper }}</button>
//
// Render returns an error; Display never does and substitutes a short
// diagnostic instead.
package component
