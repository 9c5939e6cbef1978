/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/tessera/internal/logger"
	"bennypowers.dev/tessera/token"
	"bennypowers.dev/tessera/transform"
)

// Mode selects how references are written in the output.
type Mode string

const (
	// ModeVar writes each reference as var(--<target name>).
	ModeVar Mode = "var"
	// ModeLiteral substitutes the target's resolved, transformed value.
	ModeLiteral Mode = "literal"
)

// ParseMode converts a config string to a Mode. Empty means ModeVar.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeVar:
		return ModeVar, nil
	case ModeLiteral:
		return ModeLiteral, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Resolve returns a copy of every token in dict with its emitted name set
// by chain and its value transformed, with references rewritten per mode.
// Output follows dictionary order. The dictionary is not modified.
func Resolve(dict *token.Dictionary, chain *transform.Chain, mode Mode) ([]*token.Token, error) {
	tokens := dict.Tokens()
	graph := BuildDependencyGraph(tokens)

	if from, missing, ok := graph.Unresolved(); ok {
		tok, _ := dict.Get(from)
		return nil, fmt.Errorf("%w: token %s: alias {%s} in %v", ErrUnresolvedReference, from, missing, tok.Value)
	}

	order, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	r := &resolution{
		dict:     dict,
		chain:    chain,
		mode:     mode,
		resolved: make(map[string]any, len(tokens)),
	}
	for _, key := range order {
		tok, _ := dict.Get(key)
		value, err := r.value(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", key, err)
		}
		r.resolved[key] = value
	}

	result := make([]*token.Token, 0, len(tokens))
	emitted := make(map[string]string, len(tokens))
	for _, tok := range tokens {
		out := tok.Clone()
		if out.OriginalValue == nil {
			out.OriginalValue = tok.Value
		}
		out.Name = chain.Name(tok.Path)
		if prev, ok := emitted[out.Name]; ok {
			logger.Warn("Tokens %s and %s share the name %q", prev, tok.DotPath(), out.Name)
		}
		emitted[out.Name] = tok.DotPath()
		out.Value = r.resolved[tok.DotPath()]
		result = append(result, out)
	}
	return result, nil
}

type resolution struct {
	dict     *token.Dictionary
	chain    *transform.Chain
	mode     Mode
	resolved map[string]any
}

func (r *resolution) value(value any) (any, error) {
	switch v := value.(type) {
	case string:
		if path, ok := token.ParseAlias(v); ok {
			return r.target(path)
		}
		if token.IsCurlyBraceRef(v) {
			return token.ReplaceRefs(v, func(ref token.Reference) (string, error) {
				target, err := r.target(ref.Path)
				if err != nil {
					return "", err
				}
				return Stringify(target), nil
			})
		}
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			resolved, err := r.value(item)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	}
	return r.chain.Value(value)
}

func (r *resolution) target(path string) (any, error) {
	tok, ok := r.dict.Get(path)
	if !ok {
		return nil, fmt.Errorf("%w: {%s}", ErrUnresolvedReference, path)
	}
	switch r.mode {
	case ModeLiteral:
		return r.resolved[path], nil
	case ModeVar, "":
		return r.chain.Var(tok.Path), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, r.mode)
}

// Stringify renders a resolved value for embedding in a larger string.
// Lists are joined with ", ".
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = Stringify(item)
		}
		return strings.Join(parts, ", ")
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	}
	if f, ok := transform.Number(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}
