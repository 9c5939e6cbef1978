/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator lints loaded tokens for problems the build would
// otherwise emit silently.
package validator

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/tessera/token"
	"bennypowers.dev/tessera/transform"
)

// Severity ranks a finding.
type Severity int

const (
	// SeverityWarning findings fail validation only in strict mode.
	SeverityWarning Severity = iota
	// SeverityError findings always fail validation.
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// ValidationError represents a single lint finding.
type ValidationError struct {
	// FilePath is the path to the file containing the error.
	FilePath string
	// Path is the dot path of the token.
	Path string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
	// Severity ranks the finding.
	Severity Severity
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		sb.WriteString(": ")
	}
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Validate checks tokens for:
// - color tokens whose literal value is not a CSS color
// - color literals not written as hex (warning)
// - object values, which no platform can emit
// - distinct paths that the chain maps to the same emitted name
func Validate(tokens []*token.Token, chain *transform.Chain) []ValidationError {
	var errs []ValidationError
	names := make(map[string]*token.Token, len(tokens))

	for _, tok := range tokens {
		if _, ok := tok.Value.(map[string]any); ok {
			errs = append(errs, ValidationError{
				FilePath:   tok.FilePath,
				Path:       tok.DotPath(),
				Message:    "object values cannot be emitted",
				Suggestion: "split the value into one token per property",
				Severity:   SeverityError,
			})
		}

		if tok.Type == "color" {
			if finding, ok := checkColor(tok); ok {
				errs = append(errs, finding)
			}
		}

		if chain != nil {
			name := chain.Name(tok.Path)
			if other, exists := names[name]; exists {
				errs = append(errs, ValidationError{
					FilePath:   tok.FilePath,
					Path:       tok.DotPath(),
					Message:    fmt.Sprintf("emitted name --%s collides with %s", name, other.DotPath()),
					Suggestion: "rename one of the tokens",
					Severity:   SeverityError,
				})
			} else {
				names[name] = tok
			}
		}
	}

	return errs
}

func checkColor(tok *token.Token) (ValidationError, bool) {
	s, ok := tok.Value.(string)
	if !ok || tok.HasReferences() || strings.HasPrefix(strings.TrimSpace(s), "var(") {
		return ValidationError{}, false
	}

	c, err := csscolorparser.Parse(s)
	if err != nil {
		return ValidationError{
			FilePath:   tok.FilePath,
			Path:       tok.DotPath(),
			Message:    fmt.Sprintf("invalid color value %q", s),
			Suggestion: "use a CSS color like \"#RRGGBB\"",
			Severity:   SeverityError,
		}, true
	}

	if !strings.HasPrefix(strings.TrimSpace(s), "#") {
		hex := c.HexString()
		if c.A >= 1 {
			hex = colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
		}
		return ValidationError{
			FilePath:   tok.FilePath,
			Path:       tok.DotPath(),
			Message:    fmt.Sprintf("color %q is not written as hex", s),
			Suggestion: "use " + hex,
			Severity:   SeverityWarning,
		}, true
	}

	return ValidationError{}, false
}

// HasErrors reports whether any finding fails validation. In strict mode
// warnings count as errors.
func HasErrors(errs []ValidationError, strict bool) bool {
	for _, e := range errs {
		if strict || e.Severity == SeverityError {
			return true
		}
	}
	return false
}
