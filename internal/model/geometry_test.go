package model

import "testing"

func TestRect_Union(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, Rect{0, 0, 30, 30}},
		{"contained", Rect{0, 0, 30, 30}, Rect{5, 5, 10, 10}, Rect{0, 0, 30, 30}},
		{"empty left identity", Rect{}, Rect{5, 5, 10, 10}, Rect{5, 5, 10, 10}},
		{"empty right identity", Rect{5, 5, 10, 10}, Rect{}, Rect{5, 5, 10, 10}},
		{"negative origin", Rect{-10, -10, 5, 5}, Rect{0, 0, 5, 5}, Rect{-10, -10, 15, 15}},
	}

	for _, test := range tests {
		result := test.a.Union(test.b)
		if result != test.expected {
			t.Errorf("%s: Union(%v, %v) = %v, expected %v", test.name, test.a, test.b, result, test.expected)
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}

	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{10, 10}, true},
		{Point{29, 29}, true},
		{Point{30, 30}, false},
		{Point{9, 15}, false},
		{Point{15, 9}, false},
	}

	for _, test := range tests {
		if got := r.Contains(test.p); got != test.expected {
			t.Errorf("Contains(%v) = %v, expected %v", test.p, got, test.expected)
		}
	}
}

func TestIngestionJob_Fraction(t *testing.T) {
	tests := []struct {
		name     string
		job      IngestionJob
		expected float64
	}{
		{"no files yet", IngestionJob{Status: JobStatusScanning}, 0.0},
		{"empty folder completed", IngestionJob{Status: JobStatusCompleted}, 1.0},
		{"halfway", IngestionJob{Status: JobStatusDecoding, TotalCount: 4, Completed: 2}, 0.5},
		{"done", IngestionJob{Status: JobStatusCompleted, TotalCount: 4, Completed: 4}, 1.0},
	}

	for _, test := range tests {
		if got := test.job.Fraction(); got != test.expected {
			t.Errorf("%s: Fraction() = %v, expected %v", test.name, got, test.expected)
		}
	}
}
