package main

import (
	"reflect"
	"sort"
	"testing"
)

func TestNameLess(t *testing.T) {
	names := []string{"10", "2b", "7", "2a", "1", "2"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	if want := []string{"1", "2", "2a", "2b", "7", "10"}; !reflect.DeepEqual(names, want) {
		t.Errorf("got %v; want %v", names, want)
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		if _, ok := solutions[name]; !ok {
			t.Errorf("no solution registered for %q", name)
		}
	}
}
