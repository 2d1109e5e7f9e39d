package utils

import (
	"testing"
)

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("Filter returned %v, want [2 4]", got)
	}
}

func TestFindReturnsElementPointer(t *testing.T) {
	items := []int{5, 7, 9}
	p := Find(items, func(n int) bool { return n == 7 })
	if p == nil {
		t.Fatal("Find returned nil for a present element")
	}
	*p = 8
	if items[1] != 8 {
		t.Error("Find must point into the slice, not at a copy")
	}

	if Find(items, func(n int) bool { return n == 100 }) != nil {
		t.Error("Find must return nil when nothing matches")
	}
}

func TestContains(t *testing.T) {
	weeks := []string{"2024-03-04", "2024-03-11"}
	if !Contains(weeks, "2024-03-11") {
		t.Error("expected member to be found")
	}
	if Contains(weeks, "2024-03-18") {
		t.Error("expected non-member to be absent")
	}
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy([]string{"aa", "ab", "ba"}, func(s string) byte { return s[0] })
	if len(groups) != 2 || len(groups['a']) != 2 || len(groups['b']) != 1 {
		t.Errorf("unexpected grouping %v", groups)
	}
}
