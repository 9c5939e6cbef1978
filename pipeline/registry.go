/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pipeline

import (
	"bennypowers.dev/tessera/convert"
	"bennypowers.dev/tessera/convert/formatter"
	"bennypowers.dev/tessera/postprocess"
	"bennypowers.dev/tessera/transform"
)

// Registry holds everything a driver looks up by name. Callers assemble
// one and pass it to New, so several drivers can coexist in a process
// with different registrations.
type Registry struct {
	Transforms *transform.Registry
	Actions    *postprocess.Registry
	Formatters map[convert.Platform]formatter.Formatter
}

// NewRegistry returns a registry with the built-in transforms, groups,
// formatters and post-processing actions.
func NewRegistry() *Registry {
	r := &Registry{
		Transforms: transform.NewRegistry(),
		Actions:    postprocess.NewRegistry(),
		Formatters: make(map[convert.Platform]formatter.Formatter),
	}
	for _, p := range convert.Platforms() {
		if f, err := p.Formatter(); err == nil {
			r.Formatters[p] = f
		}
	}
	return r
}

func (r *Registry) formatter(p convert.Platform) (formatter.Formatter, error) {
	if f, ok := r.Formatters[p]; ok {
		return f, nil
	}
	return p.Formatter()
}
