package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

func init() {
	register("3", day3)
}

func day3(_ []string) {
	lines, err := cfg.lines(3)
	if err != nil {
		log.Fatal(err)
	}
	if len(lines) != 2 {
		log.Fatalf("need 2 wires; got %d", len(lines))
	}
	w0, err := traceWire(lines[0])
	if err != nil {
		log.Fatal(err)
	}
	w1, err := traceWire(lines[1])
	if err != nil {
		log.Fatal(err)
	}
	closest, fewest, ok := crossings(w0, w1)
	if !ok {
		log.Fatal("wires never cross")
	}
	fmt.Println(closest)
	fmt.Println(fewest)
}

var wireDirs = map[byte]vec2{
	'R': {1, 0},
	'U': {0, 1},
	'L': {-1, 0},
	'D': {0, -1},
}

// traceWire follows a path like "R8,U5,L5,D3" from the origin and returns
// each point visited (excluding the origin) with the number of steps
// taken to first reach it.
func traceWire(path string) (map[vec2]int64, error) {
	visited := make(map[vec2]int64)
	var v vec2
	var steps int64
	for _, move := range strings.Split(path, ",") {
		move = strings.TrimSpace(move)
		if len(move) < 2 {
			return nil, fmt.Errorf("bad wire move %q", move)
		}
		dir, ok := wireDirs[move[0]]
		if !ok {
			return nil, fmt.Errorf("bad direction in wire move %q", move)
		}
		n, err := strconv.ParseInt(move[1:], 10, 64)
		if err != nil {
			return nil, err
		}
		for ; n > 0; n-- {
			v = v.add(dir)
			steps++
			if _, ok := visited[v]; !ok {
				visited[v] = steps
			}
		}
	}
	return visited, nil
}

// crossings finds where two traced wires cross and returns the smallest
// Manhattan distance from the origin and the smallest combined number of
// steps to a crossing.
func crossings(w0, w1 map[vec2]int64) (closest, fewest int64, ok bool) {
	for v, s0 := range w0 {
		s1, crossed := w1[v]
		if !crossed {
			continue
		}
		d := v.manhattan()
		if !ok || d < closest {
			closest = d
		}
		if !ok || s0+s1 < fewest {
			fewest = s0 + s1
		}
		ok = true
	}
	return closest, fewest, ok
}

type vec2 struct {
	x, y int64
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func (v vec2) manhattan() int64 {
	return abs(v.x) + abs(v.y)
}
