package handlers

import "testing"

func TestCoerceFloat(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"json number", 7.5, 7.5},
		{"integer", 7, 7},
		{"numeric string", "6.8", 6.8},
		{"padded string", " 4.2 ", 4.2},
		{"non-numeric string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tc := range cases {
		if got := coerceFloat(tc.in); got != tc.want {
			t.Fatalf("%s: coerceFloat(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want int
	}{
		{"json number", 3.0, 3},
		{"json number with fraction", 3.7, 3},
		{"integer", 5, 5},
		{"numeric string", "4", 4},
		{"non-integer string", "4.5", 0},
		{"non-numeric string", "many", 0},
		{"nil", nil, 0},
	}

	for _, tc := range cases {
		if got := coerceInt(tc.in); got != tc.want {
			t.Fatalf("%s: coerceInt(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}
