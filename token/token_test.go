/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/tessera/token"
)

func TestToken_DotPath(t *testing.T) {
	tok := token.Token{Path: []string{"color", "grey", "100"}}
	if got := tok.DotPath(); got != "color.grey.100" {
		t.Errorf("DotPath() = %q, want %q", got, "color.grey.100")
	}
}

func TestToken_HasReferences(t *testing.T) {
	tests := []struct {
		name  string
		value any
		refs  bool
	}{
		{"whole alias", "{color.grey.100}", true},
		{"embedded ref", "1px solid {color.border}", true},
		{"two refs", "{a.b} {c.d}", true},
		{"literal", "#111111", false},
		{"number", 8.0, false},
		{"empty braces", "{}", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := token.Token{Value: tt.value}
			if got := tok.HasReferences(); got != tt.refs {
				t.Errorf("HasReferences() = %v, want %v", got, tt.refs)
			}
		})
	}
}

func TestParseAlias(t *testing.T) {
	path, ok := token.ParseAlias("{color.grey.100}")
	if !ok || path != "color.grey.100" {
		t.Errorf("ParseAlias() = %q, %v", path, ok)
	}

	if _, ok := token.ParseAlias("solid {color.grey.100}"); ok {
		t.Error("expected embedded reference not to parse as alias")
	}
}

func TestExtractRefs(t *testing.T) {
	refs := token.ExtractRefs("{space.sm} {space.md}")
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}
	if refs[0].Path != "space.sm" || refs[1].Path != "space.md" {
		t.Errorf("unexpected paths: %q, %q", refs[0].Path, refs[1].Path)
	}
	if refs[1].Raw != "{space.md}" {
		t.Errorf("Raw = %q", refs[1].Raw)
	}
}

func TestReplaceRefs(t *testing.T) {
	got, err := token.ReplaceRefs("0 0 {blur.sm} {color.shadow}", func(r token.Reference) (string, error) {
		return "var(--" + strings.ReplaceAll(r.Path, ".", "-") + ")", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0 0 var(--blur-sm) var(--color-shadow)"
	if got != want {
		t.Errorf("ReplaceRefs() = %q, want %q", got, want)
	}

	sentinel := errors.New("boom")
	_, err = token.ReplaceRefs("{a}", func(token.Reference) (string, error) {
		return "", sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected callback error to propagate, got %v", err)
	}
}

func TestDictionary_MergeLastWriteWins(t *testing.T) {
	d := token.NewDictionary()
	d.Merge([]*token.Token{
		{Path: []string{"color", "bg"}, Value: "#fff", FilePath: "1.primitives.value.json"},
		{Path: []string{"color", "fg"}, Value: "#000", FilePath: "1.primitives.value.json"},
	})
	d.Merge([]*token.Token{
		{Path: []string{"color", "bg"}, Value: "#111", FilePath: "2.theme.dark.json"},
		{Path: []string{"color", "accent"}, Value: "#f0f", FilePath: "2.theme.dark.json"},
	})

	if d.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", d.Len())
	}

	bg, ok := d.Get("color.bg")
	if !ok {
		t.Fatal("expected color.bg")
	}
	if bg.Value != "#111" || bg.FilePath != "2.theme.dark.json" {
		t.Errorf("override not applied: %+v", bg)
	}

	var order []string
	for _, tok := range d.Tokens() {
		order = append(order, tok.DotPath())
	}
	want := "color.bg,color.fg,color.accent"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
}

func TestToken_Clone(t *testing.T) {
	orig := &token.Token{Path: []string{"a", "b"}, Value: "x"}
	c := orig.Clone()
	c.Path[0] = "z"
	if orig.Path[0] != "a" {
		t.Error("Clone shares Path with original")
	}
}
