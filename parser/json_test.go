/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"testing"

	"bennypowers.dev/tessera/parser"
	"bennypowers.dev/tessera/testutil"
	"bennypowers.dev/tessera/token"
)

func byPath(tokens []*token.Token) map[string]*token.Token {
	m := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		m[tok.DotPath()] = tok
	}
	return m
}

func TestJSONParser_ParseFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/simple", "/test")

	p := parser.NewJSONParser()
	tokens, err := p.ParseFile(mfs, "/test/tokens.json", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tokens) != 5 {
		t.Fatalf("expected 5 tokens, got %d", len(tokens))
	}

	m := byPath(tokens)

	grey := m["color.grey.100"]
	if grey == nil {
		t.Fatal("expected color.grey.100")
	}
	if grey.Value != "#111111" {
		t.Errorf("Value = %v", grey.Value)
	}
	if grey.Type != "color" {
		t.Errorf("expected inherited type color, got %q", grey.Type)
	}
	if grey.FilePath != "/test/tokens.json" {
		t.Errorf("FilePath = %q", grey.FilePath)
	}
	if grey.Name != "color-grey-100" {
		t.Errorf("Name = %q", grey.Name)
	}

	if m["color.grey.900"].Description != "lightest grey" {
		t.Errorf("description not carried: %q", m["color.grey.900"].Description)
	}

	if v, ok := m["space.2"].Value.(float64); !ok || v != 8 {
		t.Errorf("space.2 = %#v, want float64 8", m["space.2"].Value)
	}

	family, ok := m["font.family.sans"].Value.([]any)
	if !ok || len(family) != 2 {
		t.Errorf("font.family.sans = %#v", m["font.family.sans"].Value)
	}
}

func TestJSONParser_SortedOrder(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/simple", "/test")

	tokens, err := parser.NewJSONParser().ParseFile(mfs, "/test/tokens.json", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"color.grey.100", "color.grey.900", "font.family.sans", "space.0", "space.2"}
	for i, tok := range tokens {
		if tok.DotPath() != want[i] {
			t.Errorf("tokens[%d] = %s, want %s", i, tok.DotPath(), want[i])
		}
	}
}

func TestJSONParser_YAML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/yaml", "/test")

	tokens, err := parser.NewJSONParser().ParseFile(mfs, "/test/tokens.yaml", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := byPath(tokens)
	if len(m) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(m))
	}
	if m["size.50"] == nil {
		t.Error("expected numeric YAML key to become path segment \"50\"")
	}
	if m["size.100%"].Type != "dimension" {
		t.Errorf("type = %q", m["size.100%"].Type)
	}
	if m["text.base"].Value != "{color.grey.100}" {
		t.Errorf("alias value = %v", m["text.base"].Value)
	}
}

func TestJSONParser_ValueGroup(t *testing.T) {
	data := []byte(`{"value": {"high": {"value": "1"}}}`)
	tokens, err := parser.NewJSONParser().Parse(data, parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].DotPath() != "value.high" {
		t.Errorf("expected a group named value, got %v", tokens)
	}
}

func TestJSONParser_InvalidJSON(t *testing.T) {
	_, err := parser.NewJSONParser().Parse([]byte(`{"color": `), parser.Options{})
	if err == nil {
		t.Error("expected error for truncated JSON")
	}
}
