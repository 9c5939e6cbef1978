/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestBuildString(t *testing.T) {
	tests := []struct {
		name  string
		build Build
		want  string
	}{
		{"release", Build{Version: "v1.2.0", Commit: "abcdef123456"}, "v1.2.0"},
		{"dev with commit", Build{Version: "dev", Commit: "abcdef123456"}, "dev-abcdef1"},
		{"dev dirty", Build{Version: "dev", Commit: "abc", Modified: true}, "dev-abc-dirty"},
		{"bare dev", Build{Version: "dev"}, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetNotEmpty(t *testing.T) {
	if Get() == "" {
		t.Error("Get() returned an empty version")
	}
}
