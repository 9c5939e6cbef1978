/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package transform

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tessera/token"
)

const defaultSuffix = "-default"

func builtins() []Transform {
	return []Transform{
		{Name: NameKebab, Kind: KindName, Rename: kebab},
		{Name: NameLower, Kind: KindName, Rename: lower},
		{Name: NameStripPercent, Kind: KindName, Rename: stripPercent},
		{Name: NameStripDefault, Kind: KindName, Rename: stripDefault},
		{Name: ValuePx, Kind: KindValue, Convert: px},
		{Name: ValueColorHex, Kind: KindValue, Convert: colorHex},
	}
}

func kebab(name string) string {
	return strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return r == '.' || r == ' ' || r == '\t'
	}), "-")
}

// lower builds a caser per call; cases.Caser is not safe for concurrent use.
func lower(name string) string {
	return cases.Lower(language.Und).String(name)
}

func stripPercent(name string) string {
	return strings.TrimRight(name, "%")
}

func stripDefault(name string) string {
	if len(name) >= len(defaultSuffix) && strings.EqualFold(name[len(name)-len(defaultSuffix):], defaultSuffix) {
		return name[:len(name)-len(defaultSuffix)]
	}
	return name
}

// px appends a px unit to bare numbers. Zero stays unitless.
func px(value any) (any, error) {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, err := px(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	case string, bool, nil:
		return value, nil
	}

	f, ok := Number(value)
	if !ok {
		return value, nil
	}
	if f == 0 {
		return value, nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64) + "px", nil
}

// colorHex normalises literal CSS colors to lowercase hex.
// References and strings that do not parse as colors pass through.
func colorHex(value any) (any, error) {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, _ := colorHex(item)
			out[i] = converted
		}
		return out, nil
	case string:
		if token.IsCurlyBraceRef(v) || strings.HasPrefix(strings.TrimSpace(v), "var(") {
			return v, nil
		}
		c, err := csscolorparser.Parse(v)
		if err != nil {
			return v, nil
		}
		if c.A < 1 {
			return c.HexString(), nil
		}
		return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
	}
	return value, nil
}

// Number reports the numeric value of the decoded JSON or YAML scalars.
func Number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}
