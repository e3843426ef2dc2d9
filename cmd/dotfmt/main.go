package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/dsherret/dprint"
	"github.com/dsherret/dprint/printer"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags.SetOutput(wErr)
	inspectTree := flags.Bool("inspect-tree", false, "print the concrete syntax tree instead of formatting")
	format := flags.String("format", "default", "tree representation used by -inspect-tree: 'default' or 'scheme'")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	err := flags.Parse(args[1:])
	if err != nil {
		return err
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *inspectTree {
		if err := inspectTreeCmd(r, w, wErr, *format); err != nil {
			return err
		}
	} else {
		p := printer.New(r, w)
		if err := p.Print(); err != nil {
			return err
		}
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // materialize all statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

// inspectTreeCmd parses src and renders its concrete syntax tree to w, for debugging the parser
// itself rather than the formatted output.
func inspectTreeCmd(r io.Reader, w, wErr io.Writer, format string) error {
	ft, err := dot.NewFormat(format)
	if err != nil {
		return fmt.Errorf("failed to convert -format=%q: %v", format, err)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	p, err := dot.NewParser(bytes.NewReader(src))
	if err != nil {
		return err
	}

	tree, err := p.ParseTree()
	if err != nil {
		return err
	}

	for _, parseErr := range p.Errors() {
		fmt.Fprintln(wErr, parseErr)
	}

	return tree.Render(w, ft)
}
