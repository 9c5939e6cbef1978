/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver provides token reference resolution.
package resolver

import (
	"fmt"
	"strings"

	"bennypowers.dev/tessera/token"
)

// DependencyGraph represents a directed graph of token dependencies,
// keyed by dot path. Nodes keep dictionary order so every traversal is
// deterministic.
type DependencyGraph struct {
	order        []string
	dependencies map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
// Edges to paths that are not in the list are kept; Unresolved reports them.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		key := tok.DotPath()
		if !graph.nodes[key] {
			graph.order = append(graph.order, key)
		}
		graph.nodes[key] = true
	}

	for _, tok := range tokens {
		deps := extractDependencies(tok.Value)
		if len(deps) > 0 {
			graph.dependencies[tok.DotPath()] = deps
		}
	}

	return graph
}

// extractDependencies returns the referenced paths in value, in order,
// looking inside lists.
func extractDependencies(value any) []string {
	var deps []string
	for _, ref := range collectRefs(value) {
		deps = append(deps, ref.Path)
	}
	return deps
}

func collectRefs(value any) []token.Reference {
	switch v := value.(type) {
	case string:
		return token.ExtractRefs(v)
	case []any:
		var refs []token.Reference
		for _, item := range v {
			refs = append(refs, collectRefs(item)...)
		}
		return refs
	}
	return nil
}

// Dependencies returns the list of tokens that the given token depends on.
func (g *DependencyGraph) Dependencies(dotPath string) []string {
	if deps, ok := g.dependencies[dotPath]; ok {
		return deps
	}
	return []string{}
}

// Unresolved returns the first reference to a path that is not a node,
// as the referring path and the missing path.
func (g *DependencyGraph) Unresolved() (from, missing string, ok bool) {
	for _, node := range g.order {
		for _, dep := range g.Dependencies(node) {
			if !g.nodes[dep] {
				return node, dep, true
			}
		}
	}
	return "", "", false
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// The first and last elements of a returned cycle are the same node.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)
	path := []string{}

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, path); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(append([]string(nil), path[cycleStart:]...), node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.Dependencies(node) {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns tokens in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.Dependencies(node) {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
