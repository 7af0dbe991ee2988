package cmp_test

import (
	"testing"

	"github.com/opst/trackboard/pkg/cmp"
)

func TestSliceEq(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b     []string
		expected bool
	}{
		"same content in same order":  {a: []string{"a", "b"}, b: []string{"a", "b"}, expected: true},
		"same content in other order": {a: []string{"a", "b"}, b: []string{"b", "a"}, expected: false},
		"different length":            {a: []string{"a"}, b: []string{"a", "a"}, expected: false},
		"both empty":                  {a: nil, b: []string{}, expected: true},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := cmp.SliceEq(testcase.a, testcase.b); actual != testcase.expected {
				t.Errorf("SliceEq(%v, %v) = %v", testcase.a, testcase.b, actual)
			}
		})
	}
}

func TestSliceContentEqWith(t *testing.T) {
	for name, testcase := range map[string]struct {
		a, b     []int
		expected bool
	}{
		"same content in other order": {a: []int{1, 2, 3}, b: []int{3, 1, 2}, expected: true},
		"multiplicity matters":        {a: []int{1, 1, 2}, b: []int{1, 2, 2}, expected: false},
		"different length":            {a: []int{1, 2}, b: []int{1, 2, 2}, expected: false},
	} {
		t.Run(name, func(t *testing.T) {
			if actual := cmp.SliceContentEqWith(testcase.a, testcase.b, cmp.EqEq[int]); actual != testcase.expected {
				t.Errorf("SliceContentEqWith(%v, %v) = %v", testcase.a, testcase.b, actual)
			}
		})
	}
}

func TestMapEq(t *testing.T) {
	if !cmp.MapEq(map[string]float64{"loss": 0.1}, map[string]float64{"loss": 0.1}) {
		t.Error("equal maps are not equal")
	}
	if cmp.MapEq(map[string]float64{"loss": 0.1}, map[string]float64{"loss": 0.2}) {
		t.Error("different values are equal")
	}
	if cmp.MapEq(map[string]float64{"loss": 0.1}, map[string]float64{"acc": 0.1}) {
		t.Error("different keys are equal")
	}
}
