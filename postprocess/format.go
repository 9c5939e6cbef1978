/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package postprocess

import (
	"fmt"
	"path/filepath"
	"strings"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"bennypowers.dev/tessera/convert/formatter"
)

const indentUnit = "  "

// Format re-prints .css and .ts files in canonical form. Other files pass through.
type Format struct{}

// Name implements Action.
func (Format) Name() string { return FormatName }

// Process implements Action.
func (Format) Process(path string, src []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".css":
		return formatCSS(src)
	case ".ts":
		return formatTS(src)
	}
	return src, nil
}

// parse parses src with the given grammar. The caller closes the tree.
// A tree containing syntax errors is rejected.
func parse(language unsafe.Pointer, src []byte) (*tree_sitter.Tree, error) {
	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(tree_sitter.NewLanguage(language)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("%w: parse failed", ErrFormat)
	}
	if root := tree.RootNode(); root.HasError() {
		tree.Close()
		return nil, fmt.Errorf("%w: syntax error", ErrFormat)
	}
	return tree, nil
}

func namedChildren(n *tree_sitter.Node) []*tree_sitter.Node {
	count := n.NamedChildCount()
	children := make([]*tree_sitter.Node, 0, count)
	for i := range count {
		if child := n.NamedChild(i); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// childOfKind returns the first (or last) child of the given kind, named or not.
func childOfKind(n *tree_sitter.Node, kind string, last bool) *tree_sitter.Node {
	var found *tree_sitter.Node
	for i := range n.ChildCount() {
		child := n.Child(i)
		if child == nil || child.Kind() != kind {
			continue
		}
		found = child
		if !last {
			break
		}
	}
	return found
}

func collapse(s string) string {
	return formatter.CollapseSpace(s)
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
