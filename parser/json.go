/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tessera/fs"
	"bennypowers.dev/tessera/token"
)

// JSONParser parses JSON (with comments) and YAML token files.
type JSONParser struct{}

// NewJSONParser creates a new token parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON or YAML token data and returns tokens.
func (p *JSONParser) Parse(data []byte, opts Options) ([]*token.Token, error) {
	var raw map[string]any

	if isLikelyJSON(data) {
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	} else {
		var yamlRaw any
		if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		if yamlRaw == nil {
			return []*token.Token{}, nil
		}
		// YAML numeric keys create map[any]any
		normalized := normalizeMap(yamlRaw)
		var ok bool
		raw, ok = normalized.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("YAML root must be an object")
		}
	}

	result := []*token.Token{}
	p.extractTokens(raw, nil, "", opts, &result)
	return result, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace, a BOM or comments).
func isLikelyJSON(data []byte) bool {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '/':
			// jsonc comment before the root object
			return true
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[any]any to map[string]any.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// extractTokens recursively extracts tokens from a parsed map.
// inheritedType is passed down from parent groups for $type inheritance.
func (p *JSONParser) extractTokens(data map[string]any, path []string, inheritedType string, opts Options, result *[]*token.Token) {
	currentType := inheritedType
	if groupType, ok := stringField(data, "$type", "type"); ok {
		currentType = groupType
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}

	if !opts.SkipSort {
		sort.Strings(keys)
	}

	for _, key := range keys {
		valueMap, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		currentPath := slices.Clip(append(path, key))

		if value, isToken := tokenValue(valueMap); isToken {
			*result = append(*result, p.createToken(currentPath, valueMap, value, currentType))
			continue
		}

		p.extractTokens(valueMap, currentPath, currentType, opts, result)
	}
}

// tokenValue reports whether a map is a token and returns its value.
// "$value" always marks a token. A bare "value" marks one unless it holds a
// nested object without a sibling type, in which case it is a group named "value".
func tokenValue(valueMap map[string]any) (any, bool) {
	if v, ok := valueMap["$value"]; ok {
		return v, true
	}
	v, ok := valueMap["value"]
	if !ok {
		return nil, false
	}
	if _, isMap := v.(map[string]any); isMap {
		if _, typed := valueMap["type"]; !typed {
			return nil, false
		}
	}
	return v, true
}

// stringField returns the first string value found under any of keys.
func stringField(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := m[k].(string); ok {
			return s, true
		}
	}
	return "", false
}

// createToken creates a Token from map data.
func (p *JSONParser) createToken(path []string, valueMap map[string]any, value any, inheritedType string) *token.Token {
	t := &token.Token{
		Name:          strings.Join(path, "-"),
		Path:          path,
		Value:         value,
		OriginalValue: value,
		Type:          inheritedType,
	}

	if typeStr, ok := stringField(valueMap, "$type", "type"); ok {
		t.Type = typeStr
	}
	if descStr, ok := stringField(valueMap, "$description", "description"); ok {
		t.Description = descStr
	}

	return t
}

// ParseFile parses a token file and returns tokens.
func (p *JSONParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) ([]*token.Token, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	tokens, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}

	for _, t := range tokens {
		t.FilePath = path
	}

	return tokens, nil
}
