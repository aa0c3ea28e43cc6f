package ast

import (
	"strconv"
	"strings"
)

// Value looks up the scalar child of n stored under key and coerces it to T,
// returning def when the key is absent, the child is not a scalar, or the
// coercion fails. Callers rely on this lenient contract: a bad value in a
// script degrades to the caller's default instead of failing the lookup.
//
// Coercion rules:
//   - bool accepts yes/true and no/false case-insensitively
//   - numeric coercion is locale-invariant ("." decimal separator only)
//   - string accepts any scalar and formats it canonically
//   - Date accepts "year.month.day" text
func Value[T any](n Node, key string, def T) T {
	child, ok := GetChild(n, key)
	if !ok {
		return def
	}
	scalar, ok := child.(*ScalarNode)
	if !ok {
		return def
	}
	return CoerceScalar(scalar.Value(), def)
}

// CoerceScalar converts a scalar value to T using the Value coercion rules,
// returning def on failure.
func CoerceScalar[T any](v any, def T) T {
	if out, ok := v.(T); ok {
		return out
	}

	switch any(def).(type) {
	case bool:
		if b, ok := coerceBool(v); ok {
			return any(b).(T)
		}
	case int64:
		if i, ok := coerceInt(v); ok {
			return any(i).(T)
		}
	case int:
		if i, ok := coerceInt(v); ok {
			return any(int(i)).(T)
		}
	case float64:
		if f, ok := coerceFloat(v); ok {
			return any(f).(T)
		}
	case string:
		if s, ok := coerceString(v); ok {
			return any(s).(T)
		}
	case Date:
		if s, ok := v.(string); ok {
			if d, err := ParseDate(s); err == nil {
				return any(d).(T)
			}
		}
	}
	return def
}

func coerceBool(v any) (bool, bool) {
	s, ok := v.(string)
	if !ok {
		return false, false
	}
	switch strings.ToLower(s) {
	case "yes", "true":
		return true, true
	case "no", "false":
		return false, true
	}
	return false, false
}

func coerceInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case float64:
		return int64(t), true
	case string:
		i, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case bool:
		if t {
			return "yes", true
		}
		return "no", true
	case Date:
		return t.String(), true
	}
	return "", false
}
