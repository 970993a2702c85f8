package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/felixge/fgprof"
)

var (
	cfg        *config
	verbose    bool
	traceInsns bool
)

func main() {
	log.SetFlags(0)
	configFile := flag.String("config", "", "INI config file (default $HOME/.config/advent.ini)")
	dataDir := flag.String("data", "", "directory of <day>.txt inputs (default: read stdin)")
	sample := flag.Bool("sample", false, "read <day>.test instead of <day>.txt")
	profile := flag.String("profile", "", "write a wall-clock profile to this file")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.BoolVar(&traceInsns, "trace", false, "log each Intcode instruction as it executes")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	fn, ok := solutions[flag.Arg(0)]
	if !ok {
		log.Fatalf("unknown solution %q", flag.Arg(0))
	}
	var err error
	cfg, err = loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *dataDir != "" {
		cfg.dataDir = *dataDir
	}
	cfg.sample = *sample

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err := stop(); err != nil {
				log.Println("Error writing profile:", err)
			}
			f.Close()
		}()
	}

	fn(flag.Args()[1:])
	if verbose {
		log.Printf("executed %s Intcode instructions", humanize.Comma(executed.Load()))
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [args...]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

var solutions = make(map[string]func([]string))

func register(name string, fn func([]string)) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}
