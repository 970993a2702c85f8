package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/cespare/aoc2019/intcode"
)

func TestParseInts(t *testing.T) {
	for _, tt := range []struct {
		s    string
		want []int64
	}{
		{"", nil},
		{"5", []int64{5}},
		{"1,2, 3", []int64{1, 2, 3}},
		{"-4 8\t9", []int64{-4, 8, 9}},
	} {
		got, err := parseInts(tt.s)
		if err != nil {
			t.Errorf("parseInts(%q): %s", tt.s, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseInts(%q): got %v; want %v", tt.s, got, tt.want)
		}
	}
	if _, err := parseInts("1,x"); err == nil {
		t.Error("expected error")
	}
}

func TestScanInput(t *testing.T) {
	in := newScanInput(strings.NewReader("1, 2\n\n3\n"))
	var got []int64
	for {
		n, err := in.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, n)
	}
	if want := []int64{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}
}

func TestRun(t *testing.T) {
	// Echo two inputs doubled.
	p, err := intcode.Parse("3,0,1002,0,2,0,4,0,3,0,1002,0,2,0,4,0,99")
	if err != nil {
		t.Fatal(err)
	}
	m := p.NewMachine()
	m.Input(4)
	var out bytes.Buffer
	if err := run(m, newScanInput(strings.NewReader("10\n")), &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "8\n20\n"; got != want {
		t.Errorf("got output %q; want %q", got, want)
	}

	m = p.NewMachine()
	if err := run(m, newScanInput(strings.NewReader("")), io.Discard); err == nil {
		t.Error("expected error when input runs out")
	}
}
