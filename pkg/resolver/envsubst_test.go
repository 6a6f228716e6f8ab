package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

func TestSubstitute(t *testing.T) {
	env := map[string]string{
		"FOO":   "foo-value",
		"TOKEN": "secret",
		"EMPTY": "",
	}

	t.Run("token forms", func(t *testing.T) {
		tests := []struct {
			name string
			in   string
			want string
		}{
			{"bare name", "${FOO}", "foo-value"},
			{"env prefix", "${env:FOO}", "foo-value"},
			{"default unused", "${FOO:-fallback}", "foo-value"},
			{"default used", "${MISSING:-fallback}", "fallback"},
			{"empty default", "${MISSING:-}", ""},
			{"set to empty string", "${EMPTY}", ""},
			{"embedded", "https://api.test/v1?key=${TOKEN}&x=1", "https://api.test/v1?key=secret&x=1"},
			{"multiple tokens", "${FOO}/${TOKEN}", "foo-value/secret"},
			{"no tokens", "plain", "plain"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := Substitute(tt.in, env)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("missing without default fails", func(t *testing.T) {
		for _, in := range []string{"${MISSING}", "${env:MISSING}", "prefix ${MISSING} suffix"} {
			_, err := Substitute(in, env)
			require.Error(t, err, "input %q", in)
			var notFound *services.EnvVarNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "MISSING", notFound.Name)
		}
	})

	t.Run("env prefix allows no default", func(t *testing.T) {
		// The whole "MISSING:-x" is the name under the env: form.
		_, err := Substitute("${env:MISSING:-x}", env)
		require.Error(t, err)
		var notFound *services.EnvVarNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "MISSING:-x", notFound.Name)
	})

	t.Run("walks maps and slices", func(t *testing.T) {
		in := map[string]any{
			"url":   "${FOO}/x",
			"count": float64(3),
			"flag":  true,
			"nested": map[string]any{
				"args": []any{"${TOKEN}", "literal", float64(1)},
			},
		}
		got, err := Substitute(in, env)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"url":   "foo-value/x",
			"count": float64(3),
			"flag":  true,
			"nested": map[string]any{
				"args": []any{"secret", "literal", float64(1)},
			},
		}, got)
	})

	t.Run("error surfaces from deep in the tree", func(t *testing.T) {
		in := map[string]any{
			"ok":  "${FOO}",
			"bad": []any{map[string]any{"k": "${NOPE}"}},
		}
		_, err := Substitute(in, env)
		var notFound *services.EnvVarNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "NOPE", notFound.Name)
	})
}

func TestNormalizeIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []int
	}{
		{"ints", []any{1, 2, 3}, []int{1, 2, 3}},
		{"json numbers", []any{float64(1), float64(2)}, []int{1, 2}},
		{"fractional dropped", []any{float64(1.5), float64(2)}, []int{2}},
		{"strings trimmed", []any{" 7 ", "8"}, []int{7, 8}},
		{"empty and junk dropped", []any{"", "  ", "abc", nil, true}, []int{}},
		{"duplicates keep first", []any{3, "3", float64(3), 1}, []int{3, 1}},
		{"order preserved", []any{9, 2, 5}, []int{9, 2, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeIDs(tt.in))
		})
	}
}

func TestAsToggleMap(t *testing.T) {
	t.Run("numeric keys with bools", func(t *testing.T) {
		toggles, ok := AsToggleMap(map[string]any{"1": true, "2": false, " 3 ": true})
		require.True(t, ok)
		assert.Equal(t, map[int]bool{1: true, 2: false, 3: true}, toggles)
	})

	t.Run("rejects expanded config", func(t *testing.T) {
		for name, in := range map[string]map[string]any{
			"non-bool value":  {"1": "yes"},
			"non-numeric key": {"github": true},
			"mixed":           {"1": true, "github": map[string]any{}},
			"empty":           {},
		} {
			_, ok := AsToggleMap(in)
			assert.False(t, ok, name)
		}
	})
}
