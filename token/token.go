/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design token types and the merged token dictionary.
package token

import (
	"strings"
)

// Token represents a single design token loaded from a source file.
type Token struct {
	// Name is the raw hyphen-joined path (e.g., "color-grey-100").
	// Emitted names come from the transform chain, not from this field.
	Name string `json:"name"`

	// Path is the key chain from the document root (e.g., ["color", "grey", "100"]).
	Path []string `json:"path"`

	// Value is the token's value as loaded: string, number, bool or list.
	Value any `json:"value"`

	// OriginalValue is Value as it appeared in the source, before any
	// resolution or transformation.
	OriginalValue any `json:"-"`

	// Type is the declared or inherited token type (color, dimension, ...).
	Type string `json:"type,omitempty"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`
}

// DotPath returns the dot-separated path to this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// HasReferences reports whether the value contains at least one reference.
func (t *Token) HasReferences() bool {
	s, ok := t.Value.(string)
	return ok && IsCurlyBraceRef(s)
}

// Clone returns a shallow copy with its own Path slice.
func (t *Token) Clone() *Token {
	c := *t
	c.Path = append([]string(nil), t.Path...)
	return &c
}
