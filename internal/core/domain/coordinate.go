package domain

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// ModuleCoordinate identifies a module by group and name, e.g. "org.slf4j:slf4j-api".
type ModuleCoordinate struct {
	Group  InternedString
	Module InternedString
}

// NewModuleCoordinate validates and creates a ModuleCoordinate.
func NewModuleCoordinate(group, module string) (ModuleCoordinate, error) {
	if err := validateCoordinateParts(group, module); err != nil {
		return ModuleCoordinate{}, err
	}
	return ModuleCoordinate{
		Group:  NewInternedString(group),
		Module: NewInternedString(module),
	}, nil
}

// MustModuleCoordinate is like NewModuleCoordinate but panics on invalid input.
func MustModuleCoordinate(group, module string) ModuleCoordinate {
	c, err := NewModuleCoordinate(group, module)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseModuleCoordinate parses the "group:module" notation.
func ParseModuleCoordinate(s string) (ModuleCoordinate, error) {
	group, module, ok := strings.Cut(s, ":")
	if !ok {
		return ModuleCoordinate{}, zerr.With(zerr.Wrap(ErrInvalidCoordinate, s), "coordinate", s)
	}
	return NewModuleCoordinate(group, module)
}

// String returns the "group:module" notation.
func (c ModuleCoordinate) String() string {
	return c.Group.String() + ":" + c.Module.String()
}

// Compare orders coordinates lexicographically by their "group:module" notation,
// which is the order entries appear in a lock artifact.
func (c ModuleCoordinate) Compare(other ModuleCoordinate) int {
	if c == other {
		return 0
	}
	return strings.Compare(c.String(), other.String())
}

// ValidateCoordinate checks that a coordinate can be written to and read back
// from a lock artifact. Coordinates built from struct literals skip the checks
// of NewModuleCoordinate, so records validate every entry again.
func ValidateCoordinate(c ModuleCoordinate) error {
	return validateCoordinateParts(c.Group.String(), c.Module.String())
}

func validateCoordinateParts(group, module string) error {
	if !validCoordinatePart(group) || !validCoordinatePart(module) {
		notation := group + ":" + module
		return zerr.With(zerr.Wrap(ErrInvalidCoordinate, strconv.Quote(notation)), "coordinate", notation)
	}
	return nil
}

// validCoordinatePart rejects empty parts, invalid UTF-8 and the separators used by the lock format.
func validCoordinatePart(s string) bool {
	if s == "" || !utf8.ValidString(s) {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return r == ':' || r == '=' || unicode.IsSpace(r)
	})
}

// ValidateVersion checks that a version can be written to and read back from a lock artifact.
func ValidateVersion(version string) error {
	if version == "" || !utf8.ValidString(version) || strings.ContainsFunc(version, func(r rune) bool {
		return r == '=' || unicode.IsSpace(r)
	}) {
		return zerr.With(zerr.Wrap(ErrInvalidVersion, strconv.Quote(version)), "version", version)
	}
	return nil
}
