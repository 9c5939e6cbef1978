/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css provides CSS custom property output for design tokens.
package css

import (
	"fmt"
	"strings"

	"bennypowers.dev/tessera/convert/formatter"
	"bennypowers.dev/tessera/token"
)

const indent = "  "

// Formatter outputs one CSS block of custom properties per cell.
type Formatter struct{}

// New creates a new CSS formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format writes an optional header comment followed by one block holding
// a --<name>: <value>; declaration per token. No tokens means no block.
func (f *Formatter) Format(tokens []*token.Token, opts formatter.Options) ([]byte, error) {
	tokens = formatter.FilterTokens(tokens, opts.Filter)

	var sections []string
	if header := formatter.FormatHeader(opts.Header, formatter.CommentBlock); header != "" {
		sections = append(sections, header)
	}

	if len(tokens) > 0 {
		block, err := f.block(tokens, opts.Selector)
		if err != nil {
			return nil, err
		}
		sections = append(sections, block)
	}

	if len(sections) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(sections, "\n\n") + "\n"), nil
}

func (f *Formatter) block(tokens []*token.Token, sel formatter.Selector) (string, error) {
	rule := sel.Rule
	if rule == "" {
		rule = formatter.RootSelector
	}

	depth := 1
	var sb strings.Builder
	if sel.Media != "" {
		fmt.Fprintf(&sb, "@media %s {\n%s", formatter.CollapseSpace(sel.Media), indent)
		depth = 2
	}
	sb.WriteString(rule)
	sb.WriteString(" {\n")

	for _, tok := range tokens {
		value, err := formatter.ValueString(tok.Value)
		if err != nil {
			return "", fmt.Errorf("token %s: %w", tok.DotPath(), err)
		}
		fmt.Fprintf(&sb, "%s--%s: %s;\n", strings.Repeat(indent, depth), tok.Name, formatter.CollapseSpace(value))
	}

	sb.WriteString(strings.Repeat(indent, depth-1))
	sb.WriteString("}")
	if sel.Media != "" {
		sb.WriteString("\n}")
	}
	return sb.String(), nil
}

// Extension returns the file extension for CSS output.
func (f *Formatter) Extension() string {
	return ".css"
}
