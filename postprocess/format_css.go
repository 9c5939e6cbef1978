/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package postprocess

import (
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// formatCSS prints top-level items separated by a blank line, two-space
// indentation, one declaration per line.
func formatCSS(src []byte) ([]byte, error) {
	tree, err := parse(tree_sitter_css.Language(), src)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	p := cssPrinter{src: src}
	var items []string
	for _, child := range namedChildren(tree.RootNode()) {
		items = append(items, p.node(child, 0))
	}
	if len(items) == 0 {
		return []byte{}, nil
	}
	return []byte(strings.Join(items, "\n\n") + "\n"), nil
}

type cssPrinter struct {
	src []byte
}

func (p cssPrinter) text(n *tree_sitter.Node) string {
	return n.Utf8Text(p.src)
}

func (p cssPrinter) slice(start, end uint) string {
	if end < start {
		return ""
	}
	return string(p.src[start:end])
}

func (p cssPrinter) node(n *tree_sitter.Node, depth int) string {
	switch n.Kind() {
	case "comment":
		return indent(depth) + strings.TrimSpace(p.text(n))
	case "rule_set":
		return p.ruleSet(n, depth)
	case "media_statement":
		return p.media(n, depth)
	case "declaration":
		return p.declaration(n, depth)
	}
	return indent(depth) + collapse(p.text(n))
}

func (p cssPrinter) ruleSet(n *tree_sitter.Node, depth int) string {
	block := childOfKind(n, "block", false)
	if block == nil {
		return indent(depth) + collapse(p.text(n))
	}
	selectors := p.slice(n.StartByte(), block.StartByte())
	return indent(depth) + collapse(selectors) + " " + p.block(block, depth)
}

func (p cssPrinter) media(n *tree_sitter.Node, depth int) string {
	block := childOfKind(n, "block", false)
	keyword := n.Child(0)
	if block == nil || keyword == nil {
		return indent(depth) + collapse(p.text(n))
	}
	prelude := p.slice(keyword.EndByte(), block.StartByte())
	return indent(depth) + "@media " + collapse(prelude) + " " + p.block(block, depth)
}

func (p cssPrinter) block(block *tree_sitter.Node, depth int) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, child := range namedChildren(block) {
		sb.WriteString(p.node(child, depth+1))
		sb.WriteByte('\n')
	}
	sb.WriteString(indent(depth))
	sb.WriteString("}")
	return sb.String()
}

func (p cssPrinter) declaration(n *tree_sitter.Node, depth int) string {
	colon := childOfKind(n, ":", false)
	if colon == nil {
		return indent(depth) + collapse(p.text(n))
	}
	end := n.EndByte()
	if semi := childOfKind(n, ";", true); semi != nil {
		end = semi.StartByte()
	}
	name := p.slice(n.StartByte(), colon.StartByte())
	value := p.slice(colon.EndByte(), end)
	return indent(depth) + collapse(name) + ": " + collapse(value) + ";"
}
