package project

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	maxNameLength = 214

	nameDiagnostic = "" +
		"    Package name must have no capitals or special\n" +
		"    characters and be one of the below formats:\n" +
		"        @scope/package-name\n" +
		"        package-name"
)

var (
	ErrInvalidPackageName = errors.New("invalid package name")

	nameShapeRegex  = regexp.MustCompile(`^(?:@[^/]+[/])?[^/]+$`)
	nameStripRegex  = regexp.MustCompile(`(^@|[-/])`)
	nameCharsRegex  = regexp.MustCompile(`^[a-z0-9]*$`)
	scopedNameRegex = regexp.MustCompile(`^@[^/]+/[^/]+$`)
)

func CheckPackageName(name string) bool {
	return len(name) > 0 &&
		len(name) <= maxNameLength &&
		strings.TrimSpace(name) == name &&
		strings.ToLower(name) == name &&
		!strings.ContainsAny(name[:1], "._-") &&
		!strings.ContainsAny(name[len(name)-1:], "._-") &&
		nameShapeRegex.MatchString(name) &&
		nameCharsRegex.MatchString(nameStripRegex.ReplaceAllString(name, ""))
}

// CheckNameFormat accepts "" unchanged and otherwise requires a valid package name.
// Non-nil returned error wraps [ErrInvalidPackageName] and carries a diagnostic for the operator.
func CheckNameFormat(name string) (string, error) {
	if name == "" || CheckPackageName(name) {
		return name, nil
	}

	return "", fmt.Errorf("%w %q\n%s", ErrInvalidPackageName, name, nameDiagnostic)
}

func IsScopedName(name string) bool {
	return scopedNameRegex.MatchString(name)
}

// ExtractPackageName drops the scope of a scoped name.
func ExtractPackageName(name string) string {
	if IsScopedName(name) {
		return name[strings.Index(name, "/")+1:]
	}

	return name
}
