package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestUUID(t *testing.T) {
	id := uuid.New()
	var nilID *uuid.UUID

	runCheckCases(t, []checkCase{
		{"canonical string", validator.UUID(), "550e8400-e29b-41d4-a716-446655440000", true},
		{"uppercase string", validator.UUID(), "550E8400-E29B-41D4-A716-446655440000", true},
		{"no hyphens", validator.UUID(), "550e8400e29b41d4a716446655440000", false},
		{"braces", validator.UUID(), "{550e8400-e29b-41d4-a716-446655440000}", false},
		{"urn", validator.UUID(), "urn:uuid:550e8400-e29b-41d4-a716-446655440000", false},
		{"garbage", validator.UUID(), "not-a-uuid", false},
		{"value", validator.UUID(), id, true},
		{"nil value", validator.UUID(), uuid.Nil, false},
		{"pointer", validator.UUID(), &id, true},
		{"nil pointer", validator.UUID(), nilID, true},
		{"absent", validator.UUID(), nil, true},
	})
}

func TestUUIDVersion(t *testing.T) {
	v4 := uuid.New()
	v5 := uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://example.com"))
	v7 := uuid.Must(uuid.NewV7())

	runCheckCases(t, []checkCase{
		{"v4 value", validator.UUIDVersion(4), v4, true},
		{"v4 string", validator.UUIDVersion(4), v4.String(), true},
		{"v5 rejected", validator.UUIDVersion(4), v5, false},
		{"v7 value", validator.UUIDVersion(7), v7, true},
		{"v7 pointer", validator.UUIDVersion(7), &v7, true},
		{"malformed string", validator.UUIDVersion(4), "xyz", false},
	})

	assert.Equal(t, "'Field' must be a version 4 UUID.", messageOf(t, validator.UUIDVersion(4), v5.String()))
}
