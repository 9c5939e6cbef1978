/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package postprocess

import (
	"fmt"
	"regexp"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// declPattern splits `export const <name>: <type> = <object>;`.
// The type annotation is normalised textually; the object goes through
// the JavaScript grammar.
var declPattern = regexp.MustCompile(`(?s)^export\s+const\s+([A-Za-z_$][\w$]*)\s*:\s*(.+?)\s*=\s*(\{.*\})\s*;?\s*$`)

// formatTS prints the leading // header, a blank line, then the
// declaration with the object literal one member per line.
func formatTS(src []byte) ([]byte, error) {
	lines := strings.Split(string(src), "\n")
	var header []string
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "//") {
			break
		}
		header = append(header, line)
	}

	var sb strings.Builder
	if len(header) > 0 {
		sb.WriteString(strings.Join(header, "\n"))
		sb.WriteString("\n")
	}

	rest := strings.TrimSpace(strings.Join(lines[i:], "\n"))
	if rest == "" {
		return []byte(sb.String()), nil
	}

	m := declPattern.FindStringSubmatch(rest)
	if m == nil {
		return nil, fmt.Errorf("%w: expected a single exported const object", ErrFormat)
	}

	object, err := formatObjectLiteral(m[3])
	if err != nil {
		return nil, err
	}

	if len(header) > 0 {
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "export const %s: %s = %s;\n", m[1], collapse(m[2]), object)
	return []byte(sb.String()), nil
}

func formatObjectLiteral(object string) (string, error) {
	src := []byte("(" + object + ")")
	tree, err := parse(tree_sitter_javascript.Language(), src)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	n := tree.RootNode()
	for _, kind := range []string{"expression_statement", "parenthesized_expression", "object"} {
		children := namedChildren(n)
		if len(children) != 1 || children[0].Kind() != kind {
			return "", fmt.Errorf("%w: expected %s", ErrFormat, kind)
		}
		n = children[0]
	}

	return tsPrinter{src: src}.object(n, 0), nil
}

type tsPrinter struct {
	src []byte
}

func (p tsPrinter) text(n *tree_sitter.Node) string {
	return n.Utf8Text(p.src)
}

func (p tsPrinter) object(n *tree_sitter.Node, depth int) string {
	members := namedChildren(n)
	if len(members) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, member := range members {
		sb.WriteString(indent(depth + 1))
		if member.Kind() == "comment" {
			sb.WriteString(strings.TrimSpace(p.text(member)))
		} else {
			sb.WriteString(p.member(member, depth+1))
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(indent(depth))
	sb.WriteString("}")
	return sb.String()
}

func (p tsPrinter) member(n *tree_sitter.Node, depth int) string {
	if n.Kind() != "pair" {
		return collapse(p.text(n))
	}
	key := n.ChildByFieldName("key")
	value := n.ChildByFieldName("value")
	if key == nil || value == nil {
		return collapse(p.text(n))
	}
	return p.key(key) + ": " + p.value(value, depth)
}

func (p tsPrinter) key(n *tree_sitter.Node) string {
	switch n.Kind() {
	case "string":
		return p.str(n)
	case "property_identifier":
		return `"` + p.text(n) + `"`
	}
	return collapse(p.text(n))
}

func (p tsPrinter) value(n *tree_sitter.Node, depth int) string {
	switch n.Kind() {
	case "object":
		return p.object(n, depth)
	case "string":
		return p.str(n)
	}
	return collapse(p.text(n))
}

// str prints a string literal double-quoted, keeping escapes as written.
func (p tsPrinter) str(n *tree_sitter.Node) string {
	raw := p.text(n)
	if len(raw) < 2 || raw[0] == '"' {
		return raw
	}
	return `"` + requote(raw[1:len(raw)-1]) + `"`
}

// requote converts the body of a single-quoted literal for double quotes.
func requote(body string) string {
	var sb strings.Builder
	escaped := false
	for _, r := range body {
		switch {
		case escaped:
			if r != '\'' {
				sb.WriteRune('\\')
			}
			sb.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
