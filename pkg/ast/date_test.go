package ast

import "testing"

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Date
	}{
		{"standard", "1444.11.11", Date{Year: 1444, Month: 11, Day: 11}},
		{"unpadded", "1.1.1", Date{Year: 1, Month: 1, Day: 1}},
		{"max ranges", "9999.12.31", Date{Year: 9999, Month: 12, Day: 31}},
		{"lenient february", "1444.2.30", Date{Year: 1444, Month: 2, Day: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, d)
			}
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"two fields", "1444.11"},
		{"four fields", "1444.11.11.5"},
		{"non-numeric field", "1444.nov.11"},
		{"year zero", "0.1.1"},
		{"year too large", "10000.1.1"},
		{"month zero", "1444.0.1"},
		{"month thirteen", "1444.13.1"},
		{"day zero", "1444.1.0"},
		{"day thirty-two", "1444.1.32"},
		{"negative year", "-1.1.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDate(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
			if IsValidDate(tt.input) {
				t.Errorf("IsValidDate(%q) should be false", tt.input)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := Date{Year: 1444, Month: 2, Day: 3}
	if d.String() != "1444.2.3" {
		t.Errorf("expected 1444.2.3, got %s", d.String())
	}
}

func TestDateBefore(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Date
		expected bool
	}{
		{"earlier year", Date{1400, 1, 1}, Date{1444, 1, 1}, true},
		{"later year", Date{1500, 1, 1}, Date{1444, 1, 1}, false},
		{"earlier month", Date{1444, 3, 20}, Date{1444, 11, 1}, true},
		{"earlier day", Date{1444, 11, 10}, Date{1444, 11, 11}, true},
		{"equal", Date{1444, 11, 11}, Date{1444, 11, 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.expected {
				t.Errorf("%v.Before(%v): expected %v, got %v", tt.a, tt.b, tt.expected, got)
			}
		})
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if (Date{Year: 1444, Month: 11, Day: 11}).IsZero() {
		t.Error("non-zero Date should not report IsZero")
	}
}
