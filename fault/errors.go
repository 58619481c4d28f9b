// SPDX-License-Identifier: MIT

package fault

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfiguration classifies unsupported or malformed caller input.
	ErrConfiguration = errors.New("minuscule: invalid configuration")

	// ErrInvariant classifies internal defects that correct code never produces.
	ErrInvariant = errors.New("minuscule: invariant violation")
)

// ConfigError describes a rejected parameter.
// It always unwraps to ErrConfiguration.
type ConfigError struct {
	// Param names the offending parameter ("type", "rank", "index", "word", ...).
	Param string
	// Value is the rejected value as the caller supplied it.
	Value string
	// Allowed lists the valid alternatives, if a finite list exists.
	Allowed []string
	// Context adds a short qualifier such as "for D_5".
	Context string
}

// Error renders "minuscule: invalid <param> <value> [context]; allowed: a, b, c".
func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("minuscule: invalid ")
	b.WriteString(e.Param)
	if e.Value != "" {
		b.WriteString(" ")
		b.WriteString(e.Value)
	}
	if e.Context != "" {
		b.WriteString(" ")
		b.WriteString(e.Context)
	}
	if len(e.Allowed) > 0 {
		b.WriteString("; allowed: ")
		b.WriteString(strings.Join(e.Allowed, ", "))
	}

	return b.String()
}

// Unwrap exposes ErrConfiguration to errors.Is.
func (e *ConfigError) Unwrap() error { return ErrConfiguration }

// Config builds a *ConfigError. Allowed values are rendered with %v.
func Config[T any](param string, value any, allowed []T, context string) *ConfigError {
	out := make([]string, 0, len(allowed))
	for _, a := range allowed {
		out = append(out, fmt.Sprint(a))
	}

	return &ConfigError{
		Param:   param,
		Value:   fmt.Sprint(value),
		Allowed: out,
		Context: context,
	}
}

// Invariant wraps ErrInvariant with a formatted description.
func Invariant(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsInvariant reports whether err is an invariant violation.
func IsInvariant(err error) bool { return errors.Is(err, ErrInvariant) }
