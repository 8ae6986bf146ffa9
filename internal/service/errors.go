package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidPage = errors.New("invalid page")
	// ErrIntegrity reports a write rejected by a database constraint.
	ErrIntegrity = errors.New("integrity constraint violated")

	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrTokenInvalid       = errors.New("token is invalid or expired")
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], " ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
