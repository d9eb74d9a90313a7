package bridge

import (
	"reflect"
	"testing"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", int64(42)},
		{"-17", int64(-17)},
		{"3.14", 3.14},
		{`"42"`, "42"},
		{"true", true},
		{"false", false},
		{"null", nil},
		{"hello", "hello"},
		{`[1, 2, 3]`, []any{1.0, 2.0, 3.0}},
		{`{"x": 1}`, map[string]any{"x": 1.0}},
		{"42abc", "42abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := CoerceValue(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CoerceValue(%q) = %v (%T), want %v (%T)", tt.raw, got, got, tt.want, tt.want)
			}
		})
	}
}
