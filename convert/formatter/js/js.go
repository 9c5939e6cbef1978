/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package js provides typed TypeScript object output for design tokens.
package js

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"bennypowers.dev/tessera/convert/formatter"
	"bennypowers.dev/tessera/token"
	"bennypowers.dev/tessera/transform"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Type annotations for the exported object.
const (
	TypeStrings        = "Record<string, Record<string, string>>"
	TypeStringsNumbers = "Record<string, Record<string, string | number>>"
)

const indent = "  "

type templateData struct {
	Header string
	Type   string
	Body   string
}

// Formatter outputs `export const tokens` keyed by selector, then by token name.
type Formatter struct{}

// New creates a new typed-object formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts tokens to a TypeScript module. No tokens yields an empty object.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	tokens = formatter.FilterTokens(tokens, opts.Filter)

	data := templateData{
		Header: formatter.FormatHeader(opts.Header, formatter.CommentLine),
		Type:   TypeStringsNumbers,
		Body:   "{}",
	}
	if opts.StringsOnly {
		data.Type = TypeStrings
	}

	if len(tokens) > 0 {
		var sb strings.Builder
		sb.WriteString("{\n")
		fmt.Fprintf(&sb, "%s\"%s\": {\n", indent, escapeTS(opts.Selector.Key()))
		for _, tok := range tokens {
			value, err := formatValue(tok.Value, opts.StringsOnly)
			if err != nil {
				return nil, fmt.Errorf("token %s: %w", tok.DotPath(), err)
			}
			fmt.Fprintf(&sb, "%s\"%s\": %s,\n", strings.Repeat(indent, 2), escapeTS(tok.Name), value)
		}
		sb.WriteString(indent + "},\n}")
		data.Body = sb.String()
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "tokens.ts.tmpl", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for TypeScript output.
func (f *Formatter) Extension() string {
	return ".ts"
}

// formatValue renders a value as a TypeScript literal. Numbers stay numeric
// unless stringsOnly is set.
func formatValue(value any, stringsOnly bool) (string, error) {
	if !stringsOnly {
		if n, ok := transform.Number(value); ok {
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		}
	}
	s, err := formatter.ValueString(value)
	if err != nil {
		return "", err
	}
	return `"` + escapeTS(s) + `"`, nil
}

// escapeTS escapes a string for use in a TypeScript double-quoted string literal.
// It escapes backslashes, double quotes, and control characters.
func escapeTS(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
