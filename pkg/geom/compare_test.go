package geom

import "testing"

func TestRoughCompareEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want bool
	}{
		{"identical", 1.5, 1.5, true},
		{"identical zero", 0, 0, true},
		{"within tolerance", 1.0, 1.0 + Tolerance/2, true},
		{"at tolerance", 1.0, 1.0 + Tolerance, true},
		{"two tolerances apart", 1.0, 1.0 + 2*Tolerance, false},
		{"negative values", -3.25, -3.25, true},
		{"clearly different", 1.0, 2.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoughCompare(tt.a, tt.b, Equal); got != tt.want {
				t.Errorf("RoughCompare(%v, %v, Equal) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRoughCompareNotEqual(t *testing.T) {
	if RoughCompare(1.0, 1.0+Tolerance/2, NotEqual) {
		t.Error("values within tolerance should not be NotEqual")
	}
	if !RoughCompare(1.0, 1.0+2*Tolerance, NotEqual) {
		t.Error("values two tolerances apart should be NotEqual")
	}
}

func TestRoughCompareOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		kind CompareKind
		want bool
	}{
		{"less-equal below", 1.0, 2.0, LessEqual, true},
		{"less-equal exact", 2.0, 2.0, LessEqual, true},
		{"less-equal just past boundary", 2.0 + Tolerance/2, 2.0, LessEqual, true},
		{"less-equal clearly above", 2.1, 2.0, LessEqual, false},
		{"greater-equal above", 2.0, 1.0, GreaterEqual, true},
		{"greater-equal exact", 2.0, 2.0, GreaterEqual, true},
		{"greater-equal just past boundary", 2.0 - Tolerance/2, 2.0, GreaterEqual, true},
		{"greater-equal clearly below", 1.9, 2.0, GreaterEqual, false},
		{"less strict", 1.0, 2.0, Less, true},
		{"less strict equal", 2.0, 2.0, Less, false},
		{"greater strict", 3.0, 2.0, Greater, true},
		{"greater strict equal", 2.0, 2.0, Greater, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoughCompare(tt.a, tt.b, tt.kind); got != tt.want {
				t.Errorf("RoughCompare(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.kind, got, tt.want)
			}
		})
	}
}
