// Package preflight provides pre-flight validation of template locations.
package preflight

import (
	"fmt"
	"os"
	"path/filepath"
)

// LocationCheck is the result of inspecting one search location.
type LocationCheck struct {
	Dir string

	// Exists is true when Dir is an accessible directory.
	Exists bool

	// HasRoot is true when the template root exists under Dir.
	HasRoot bool

	// Problem describes why the location cannot serve templates.
	Problem string
}

// CheckLocations inspects every search location for the template root.
// An absolute root is checked once, independent of the search path.
func CheckLocations(dirs []string, root string) []LocationCheck {
	if filepath.IsAbs(root) {
		check := LocationCheck{Dir: root}
		check.Exists, check.Problem = isDir(root)
		check.HasRoot = check.Exists
		return []LocationCheck{check}
	}

	checks := make([]LocationCheck, 0, len(dirs))
	for _, dir := range dirs {
		check := LocationCheck{Dir: dir}
		check.Exists, check.Problem = isDir(dir)
		if check.Exists {
			check.HasRoot, _ = isDir(filepath.Join(dir, root))
		}
		checks = append(checks, check)
	}
	return checks
}

// CheckAll performs all pre-flight checks and returns warnings and errors.
// A location that is missing or carries no template root is a warning;
// having no usable location at all is an error.
func CheckAll(dirs []string, root string) (warnings []string, errors []string) {
	usable := 0
	for _, check := range CheckLocations(dirs, root) {
		switch {
		case !check.Exists:
			warnings = append(warnings, check.Dir+": "+check.Problem)
		case !check.HasRoot:
			warnings = append(warnings, check.Dir+": no "+root+" directory")
		default:
			usable++
		}
	}

	if usable == 0 {
		errors = append(errors, fmt.Sprintf("template root %s not found on any search location", root))
	}
	return warnings, errors
}

func isDir(path string) (bool, string) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, "does not exist"
		}
		return false, err.Error()
	}
	if !info.IsDir() {
		return false, "not a directory"
	}
	return true, ""
}
