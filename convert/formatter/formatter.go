/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for token formatters.
package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"bennypowers.dev/tessera/token"
	"bennypowers.dev/tessera/transform"
)

// ErrUnsupportedValue is returned for values a platform cannot represent.
var ErrUnsupportedValue = errors.New("unsupported value")

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format converts resolved tokens to the target format.
	Format(tokens []*token.Token, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Header is written as a comment at the top of the output.
	Header string

	// Selector scopes the emitted tokens.
	Selector Selector

	// Filter drops tokens for which it returns false. Nil keeps all.
	Filter func(*token.Token) bool

	// StringsOnly types every value as a string, for theme cells.
	StringsOnly bool
}

// FilterTokens returns the tokens kept by keep, preserving order.
func FilterTokens(tokens []*token.Token, keep func(*token.Token) bool) []*token.Token {
	if keep == nil {
		return tokens
	}
	var result []*token.Token
	for _, tok := range tokens {
		if keep(tok) {
			result = append(result, tok)
		}
	}
	return result
}

// CommentStyle selects the comment syntax for FormatHeader.
type CommentStyle int

const (
	// CommentBlock renders a /** ... */ block.
	CommentBlock CommentStyle = iota
	// CommentLine renders one // line per header line.
	CommentLine
)

// FormatHeader renders header as a comment, without a trailing newline.
// An empty header renders as "".
func FormatHeader(header string, style CommentStyle) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	lines := strings.Split(header, "\n")
	var sb strings.Builder
	switch style {
	case CommentLine:
		for i, line := range lines {
			if i > 0 {
				sb.WriteByte('\n')
			}
			sb.WriteString(strings.TrimRight("// "+strings.TrimSpace(line), " "))
		}
	default:
		sb.WriteString("/**\n")
		for _, line := range lines {
			line = strings.ReplaceAll(strings.TrimSpace(line), "*/", "* /")
			sb.WriteString(strings.TrimRight(" * "+line, " "))
			sb.WriteByte('\n')
		}
		sb.WriteString(" */")
	}
	return sb.String()
}

// CollapseSpace replaces every run of whitespace outside quoted strings
// with a single space and trims the ends. Single- and double-quoted
// strings are copied as written, escapes included.
func CollapseSpace(s string) string {
	var sb strings.Builder
	var quote rune
	escaped, space := false, false
	for _, r := range s {
		if quote != 0 {
			sb.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}
		if unicode.IsSpace(r) {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		if r == '"' || r == '\'' {
			quote = r
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ValueString renders a scalar or list value as CSS text.
// Lists are joined with ", "; maps are rejected.
func ValueString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			s, err := ValueString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), nil
	case nil:
		return "", fmt.Errorf("%w: null", ErrUnsupportedValue)
	}
	if f, ok := transform.Number(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}
