/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Dictionary is the ordered union of tokens from a list of source files.
// Merging a token whose path already exists replaces the earlier token in
// place, so layering order decides the value and first appearance decides
// the position.
type Dictionary struct {
	order  []string
	byPath map[string]*Token
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{byPath: make(map[string]*Token)}
}

// Merge adds tokens to the dictionary, last write wins.
func (d *Dictionary) Merge(tokens []*Token) {
	for _, tok := range tokens {
		key := tok.DotPath()
		if _, exists := d.byPath[key]; !exists {
			d.order = append(d.order, key)
		}
		d.byPath[key] = tok
	}
}

// Get returns the token at the given dot path.
func (d *Dictionary) Get(dotPath string) (*Token, bool) {
	tok, ok := d.byPath[dotPath]
	return tok, ok
}

// Len returns the number of distinct paths.
func (d *Dictionary) Len() int {
	return len(d.order)
}

// Tokens returns the tokens in merge order.
func (d *Dictionary) Tokens() []*Token {
	result := make([]*Token, 0, len(d.order))
	for _, key := range d.order {
		result = append(result, d.byPath[key])
	}
	return result
}
