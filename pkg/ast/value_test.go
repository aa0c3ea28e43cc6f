package ast

import "testing"

func buildProvince() *ObjectNode {
	obj := NewObjectNode("province")
	obj.AddChild(NewScalarNode("owner", "FRA"))
	obj.AddChild(NewScalarNode("base_tax", int64(3)))
	obj.AddChild(NewScalarNode("autonomy", float64(0.25)))
	obj.AddChild(NewScalarNode("is_city", true))
	obj.AddChild(NewScalarNode("founded", Date{Year: 1444, Month: 11, Day: 11}))
	obj.AddChild(NewScalarNode("religion_text", "yes"))
	obj.AddChild(NewObjectNode("history"))
	return obj
}

func TestValueExactTypes(t *testing.T) {
	obj := buildProvince()

	if got := Value(obj, "owner", ""); got != "FRA" {
		t.Errorf("expected FRA, got %q", got)
	}
	if got := Value(obj, "base_tax", int64(0)); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	if got := Value(obj, "autonomy", 0.0); got != 0.25 {
		t.Errorf("expected 0.25, got %v", got)
	}
	if got := Value(obj, "is_city", false); !got {
		t.Error("expected true")
	}
	if got := Value(obj, "founded", Date{}); got != (Date{Year: 1444, Month: 11, Day: 11}) {
		t.Errorf("expected 1444.11.11, got %v", got)
	}
}

func TestValueCoercions(t *testing.T) {
	obj := buildProvince()

	t.Run("int64 to int", func(t *testing.T) {
		if got := Value(obj, "base_tax", 0); got != 3 {
			t.Errorf("expected 3, got %d", got)
		}
	})

	t.Run("int64 to float64", func(t *testing.T) {
		if got := Value(obj, "base_tax", 0.0); got != 3.0 {
			t.Errorf("expected 3.0, got %v", got)
		}
	})

	t.Run("int64 to string", func(t *testing.T) {
		if got := Value(obj, "base_tax", ""); got != "3" {
			t.Errorf("expected \"3\", got %q", got)
		}
	})

	t.Run("bool to string", func(t *testing.T) {
		if got := Value(obj, "is_city", ""); got != "yes" {
			t.Errorf("expected yes, got %q", got)
		}
	})

	t.Run("string to bool", func(t *testing.T) {
		if got := Value(obj, "religion_text", false); !got {
			t.Error("expected yes text to coerce to true")
		}
	})

	t.Run("date to string", func(t *testing.T) {
		if got := Value(obj, "founded", ""); got != "1444.11.11" {
			t.Errorf("expected 1444.11.11, got %q", got)
		}
	})
}

func TestValueDefaults(t *testing.T) {
	obj := buildProvince()

	t.Run("absent key", func(t *testing.T) {
		if got := Value(obj, "missing", int64(42)); got != 42 {
			t.Errorf("expected default 42, got %d", got)
		}
	})

	t.Run("non-scalar child", func(t *testing.T) {
		if got := Value(obj, "history", "fallback"); got != "fallback" {
			t.Errorf("expected default, got %q", got)
		}
	})

	t.Run("failed coercion", func(t *testing.T) {
		if got := Value(obj, "owner", int64(-1)); got != -1 {
			t.Errorf("expected default -1, got %d", got)
		}
	})

	t.Run("non-container parent", func(t *testing.T) {
		scalar := NewScalarNode("x", int64(1))
		if got := Value(scalar, "anything", "def"); got != "def" {
			t.Errorf("expected default, got %q", got)
		}
	})
}

func TestCoerceScalarBool(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"yes text", "yes", true},
		{"uppercase YES", "YES", true},
		{"true text", "true", true},
		{"no text", "no", false},
		{"false text", "FALSE", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceScalar(tt.value, !tt.expected); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
