package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

func init() {
	register("4", day4)
}

func day4(args []string) {
	lo, hi, err := passwordRange(args)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(countPasswords(lo, hi, false))
	fmt.Println(countPasswords(lo, hi, true))
}

// passwordRange takes the range from an argument like "307237-769058",
// falling back to the config and then to the puzzle's range.
func passwordRange(args []string) (lo, hi int64, err error) {
	if len(args) > 0 {
		los, his, ok := strings.Cut(args[0], "-")
		if !ok {
			return 0, 0, fmt.Errorf("bad range %q (want min-max)", args[0])
		}
		if lo, err = strconv.ParseInt(los, 10, 64); err != nil {
			return 0, 0, err
		}
		if hi, err = strconv.ParseInt(his, 10, 64); err != nil {
			return 0, 0, err
		}
	} else {
		if lo, err = cfg.intValue("4", "min", 307237); err != nil {
			return 0, 0, err
		}
		if hi, err = cfg.intValue("4", "max", 769058); err != nil {
			return 0, 0, err
		}
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("bad range %d-%d", lo, hi)
	}
	return lo, hi, nil
}

func countPasswords(lo, hi int64, strict bool) int {
	var n int
	for pw := lo; pw <= hi; pw++ {
		if validPassword(pw, strict) {
			n++
		}
	}
	return n
}

// validPassword reports whether pw is a six-digit number whose digits
// never decrease and which has two equal adjacent digits. If strict, the
// pair must not be part of a longer run.
func validPassword(pw int64, strict bool) bool {
	digits := strconv.FormatInt(pw, 10)
	if len(digits) != 6 {
		return false
	}
	pair := false
	run := 1
	for i := 1; i <= len(digits); i++ {
		if i < len(digits) {
			if digits[i] < digits[i-1] {
				return false
			}
			if digits[i] == digits[i-1] {
				run++
				continue
			}
		}
		if run == 2 || (!strict && run > 2) {
			pair = true
		}
		run = 1
	}
	return pair
}
