/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// curlyBracePattern matches {token.path} references anywhere in a value.
	curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

	// aliasPattern matches a value that is exactly one reference.
	aliasPattern = regexp.MustCompile(`^\{([^{}]*)\}$`)
)

// Reference is a single {path} occurrence inside a token value.
type Reference struct {
	// Raw is the reference as written, braces included.
	Raw string

	// Path is the referenced dot path.
	Path string

	// Start and End are byte offsets of Raw within the value.
	Start, End int
}

// ParseAlias extracts the path from a whole-value alias.
// Returns the path and true if valid, empty string and false otherwise.
func ParseAlias(value string) (string, bool) {
	matches := aliasPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// IsCurlyBraceRef returns true if the value contains a curly brace reference.
func IsCurlyBraceRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractRefs returns every reference in value, in order of appearance.
func ExtractRefs(value string) []Reference {
	locs := curlyBracePattern.FindAllStringSubmatchIndex(value, -1)
	refs := make([]Reference, 0, len(locs))
	for _, loc := range locs {
		refs = append(refs, Reference{
			Raw:   value[loc[0]:loc[1]],
			Path:  value[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1],
		})
	}
	return refs
}

// ReplaceRefs rewrites every reference in value using fn.
// The first error returned by fn stops the rewrite.
func ReplaceRefs(value string, fn func(Reference) (string, error)) (string, error) {
	refs := ExtractRefs(value)
	if len(refs) == 0 {
		return value, nil
	}

	var sb strings.Builder
	last := 0
	for _, ref := range refs {
		replacement, err := fn(ref)
		if err != nil {
			return "", err
		}
		sb.WriteString(value[last:ref.Start])
		sb.WriteString(replacement)
		last = ref.End
	}
	sb.WriteString(value[last:])
	return sb.String(), nil
}
