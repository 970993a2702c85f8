package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cespare/cp"
	"github.com/vaughan0/go-ini"
)

func TestConfig(t *testing.T) {
	file, err := ini.Load(strings.NewReader(`
[advent]
data = /tmp/aoc

[2]
target = 12345

[4]
min = abc
`))
	if err != nil {
		t.Fatal(err)
	}
	c := newConfig(file)
	if got, want := c.dataDir, "/tmp/aoc"; got != want {
		t.Errorf("got data dir %q; want %q", got, want)
	}
	for _, tt := range []struct {
		section, key string
		def          int64
		want         int64
	}{
		{"2", "target", 19690720, 12345},
		{"2", "noun", 12, 12},
		{"5", "input1", 1, 1},
	} {
		got, err := c.intValue(tt.section, tt.key, tt.def)
		if err != nil {
			t.Errorf("[%s] %s: %s", tt.section, tt.key, err)
			continue
		}
		if got != tt.want {
			t.Errorf("[%s] %s: got %d; want %d", tt.section, tt.key, got, tt.want)
		}
	}
	if _, err := c.intValue("4", "min", 0); err == nil {
		t.Error("expected error for non-integer config value")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestInputLookup(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"3.test", "6.test", "7.test"} {
		if err := cp.CopyFile(filepath.Join(dir, name), filepath.Join("testdata", name)); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "7.txt"), []byte("99\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &config{dataDir: dir, sample: true}

	lines, err := c.lines(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"R8,U5,L5,D3", "U7,R6,D4,L4"}; !reflect.DeepEqual(lines, want) {
		t.Errorf("got lines %q; want %q", lines, want)
	}

	lines, err = c.lines(6)
	if err != nil {
		t.Fatal(err)
	}
	om, err := parseOrbits(lines)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := om.transfers("YOU", "SAN"); err != nil || n != 4 {
		t.Errorf("sample orbits: got %d transfers (%v); want 4", n, err)
	}

	p, err := c.program(7)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Len(), 17; got != want {
		t.Errorf("sample program: got len %d; want %d", got, want)
	}
	c.sample = false
	p, err = c.program(7)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Len(), 1; got != want {
		t.Errorf("real program: got len %d; want %d", got, want)
	}
	if _, err := c.lines(1); err == nil {
		t.Error("expected error for missing input file")
	}
}
