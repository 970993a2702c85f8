//go:build !linux

package main

import "github.com/chzyer/readline"

func isTerminal(fd int) bool {
	return readline.IsTerminal(fd)
}
