package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/aoc2019/intcode"
	"github.com/vaughan0/go-ini"
)

// config holds puzzle parameters and tells solutions where to find input.
//
// An example config file:
//
//	[advent]
//	data = /home/me/aoc/data
//
//	[2]
//	target = 19690720
//
//	[4]
//	min = 307237
//	max = 769058
type config struct {
	file    ini.File
	dataDir string
	sample  bool
}

func newConfig(file ini.File) *config {
	c := &config{file: file}
	c.dataDir, _ = file.Get("advent", "data")
	return c
}

// loadConfig reads the INI file at path. If path is empty, the default
// location is tried and a missing file there is not an error.
func loadConfig(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return newConfig(make(ini.File)), nil
		}
		path = filepath.Join(home, ".config", "advent.ini")
	}
	file, err := ini.LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return newConfig(make(ini.File)), nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return newConfig(file), nil
}

// intValue returns the integer value of key in the section for a day, or def
// if it is not set.
func (c *config) intValue(section, key string, def int64) (int64, error) {
	s, ok := c.file.Get(section, key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config [%s] %s: %s", section, key, err)
	}
	return n, nil
}

func (c *config) inputPath(day int) string {
	ext := ".txt"
	if c.sample {
		ext = ".test"
	}
	return filepath.Join(c.dataDir, strconv.Itoa(day)+ext)
}

// open returns the input for a day: a file in the data directory if there
// is one, or else stdin.
func (c *config) open(day int) (io.ReadCloser, error) {
	if c.dataDir == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(c.inputPath(day))
}

// lines returns the non-blank lines of a day's input.
func (c *config) lines(day int) ([]string, error) {
	r, err := c.open(day)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (c *config) program(day int) (*intcode.Program, error) {
	r, err := c.open(day)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return intcode.Load(r)
}
