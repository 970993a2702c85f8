package main

import (
	"fmt"
	"log"
	"strings"
)

func init() {
	register("6", day6)
}

func day6(_ []string) {
	lines, err := cfg.lines(6)
	if err != nil {
		log.Fatal(err)
	}
	om, err := parseOrbits(lines)
	if err != nil {
		log.Fatal(err)
	}
	total, err := om.count()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(total)
	n, err := om.transfers("YOU", "SAN")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n)
}

// orbitMap maps each body to the body it orbits.
type orbitMap map[string]string

func parseOrbits(lines []string) (orbitMap, error) {
	om := make(orbitMap)
	for _, line := range lines {
		primary, satellite, ok := strings.Cut(line, ")")
		if !ok || primary == "" || satellite == "" {
			return nil, fmt.Errorf("bad orbit %q", line)
		}
		if prev, ok := om[satellite]; ok {
			return nil, fmt.Errorf("%s orbits both %s and %s", satellite, prev, primary)
		}
		om[satellite] = primary
	}
	return om, nil
}

// ancestors returns the chain of bodies that body orbits, nearest first.
func (om orbitMap) ancestors(body string) ([]string, error) {
	var chain []string
	for b, ok := om[body]; ok; b, ok = om[b] {
		chain = append(chain, b)
		if len(chain) > len(om) {
			return nil, fmt.Errorf("orbit cycle through %s", body)
		}
	}
	return chain, nil
}

// count returns the total number of direct and indirect orbits.
func (om orbitMap) count() (int, error) {
	depth := make(map[string]int)
	var depthOf func(body string, seen int) (int, error)
	depthOf = func(body string, seen int) (int, error) {
		if d, ok := depth[body]; ok {
			return d, nil
		}
		primary, ok := om[body]
		if !ok {
			return 0, nil
		}
		if seen > len(om) {
			return 0, fmt.Errorf("orbit cycle through %s", body)
		}
		d, err := depthOf(primary, seen+1)
		if err != nil {
			return 0, err
		}
		depth[body] = d + 1
		return d + 1, nil
	}
	var total int
	for body := range om {
		d, err := depthOf(body, 0)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// transfers returns the number of orbital transfers needed to move from
// the body from orbits to the body to orbits.
func (om orbitMap) transfers(from, to string) (int, error) {
	a0, err := om.ancestors(from)
	if err != nil {
		return 0, err
	}
	a1, err := om.ancestors(to)
	if err != nil {
		return 0, err
	}
	if len(a0) == 0 || len(a1) == 0 {
		return 0, fmt.Errorf("%s and %s must both be in orbit", from, to)
	}
	dist := make(map[string]int, len(a0))
	for i, b := range a0 {
		dist[b] = i
	}
	for j, b := range a1 {
		if i, ok := dist[b]; ok {
			return i + j, nil
		}
	}
	return 0, fmt.Errorf("no path from %s to %s", from, to)
}
