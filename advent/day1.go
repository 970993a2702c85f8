package main

import (
	"fmt"
	"log"
	"strconv"
)

func init() {
	register("1", day1)
}

func day1(_ []string) {
	lines, err := cfg.lines(1)
	if err != nil {
		log.Fatal(err)
	}
	var simple, total int64
	for _, line := range lines {
		mass, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		simple += fuel(mass)
		total += totalFuel(mass)
	}
	fmt.Println(simple)
	fmt.Println(total)
}

func fuel(mass int64) int64 {
	return mass/3 - 2
}

// totalFuel includes the fuel needed to carry the fuel.
func totalFuel(mass int64) int64 {
	var sum int64
	for f := fuel(mass); f > 0; f = fuel(f) {
		sum += f
	}
	return sum
}
