package validator

import (
	"strings"

	"github.com/google/uuid"
)

// UUID checks that a string is a canonical hyphenated UUID, or that a
// uuid.UUID property is set.
func UUID() *Check {
	return NewCheck("uuid", "'{PropertyName}' must be a valid UUID.", func(ctx *PropertyContext) (bool, error) {
		switch v := ctx.PropertyValue.(type) {
		case uuid.UUID:
			return v != uuid.Nil, nil
		case *uuid.UUID:
			return v == nil || *v != uuid.Nil, nil
		}
		s, present, err := valueAs[string](ctx)
		if err != nil || !present {
			return err == nil, err
		}
		return isCanonicalUUID(s), nil
	})
}

// UUIDVersion checks that a UUID string or value has the given version.
func UUIDVersion(version int) *Check {
	return NewCheck("uuid_version", "'{PropertyName}' must be a version {Version} UUID.", func(ctx *PropertyContext) (bool, error) {
		switch v := ctx.PropertyValue.(type) {
		case uuid.UUID:
			return int(v.Version()) == version, nil
		case *uuid.UUID:
			return v == nil || int(v.Version()) == version, nil
		}
		s, present, err := valueAs[string](ctx)
		if err != nil || !present {
			return err == nil, err
		}
		if !isCanonicalUUID(s) {
			return false, nil
		}
		return int(uuid.MustParse(s).Version()) == version, nil
	}).WithArg("Version", version)
}

// isCanonicalUUID rejects on length and hyphen layout before parsing.
func isCanonicalUUID(s string) bool {
	if len(s) != 36 || strings.TrimSpace(s) != s {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
