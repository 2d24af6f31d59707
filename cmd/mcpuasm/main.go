package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Urethramancer/mcpuasm/asmbin"
	"github.com/Urethramancer/mcpuasm/diag"
	"github.com/Urethramancer/mcpuasm/expr"
	"github.com/Urethramancer/mcpuasm/insn"
	"github.com/Urethramancer/mcpuasm/layout"
	"github.com/Urethramancer/mcpuasm/parse"
)

var (
	sectioned = flag.Bool("sectioned", false, "Emit a per-section [base][length] header instead of a flat padded image.")
	dump      = flag.Bool("dump", false, "Print the laid-out program to stderr before encoding.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() != 2 {
		log.Println("Usage: mcpuasm [options] <input.s> <output.bin>")
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputFile, outputFile := flag.Arg(0), flag.Arg(1)

	src, err := os.ReadFile(inputFile)
	if err != nil {
		log.Fatalf("Couldn't read source file: %v", err)
	}
	source := string(src)

	sink := diag.NewSink(os.Stderr, source)

	prog, parseOK := parse.Parse(source, inputFile, sink)
	if !parseOK || sink.ErrorReported() {
		os.Exit(1)
	}

	ev := expr.NewEvaluator()
	insn.SimplifyProgram(ev, prog)

	eng := layout.NewEngine(ev, sink)
	if !eng.LayoutFrom(prog) || sink.ErrorReported() {
		os.Exit(2)
	}

	if *dump {
		for i := range eng.Sections {
			fmt.Fprint(os.Stderr, eng.Sections[i].String())
		}
	}

	mode := asmbin.Flat
	if *sectioned {
		mode = asmbin.Sectioned
	}
	code := asmbin.Assemble(ev, eng.Sections, sink, mode)
	if sink.ErrorReported() {
		os.Exit(2)
	}

	if err := os.WriteFile(outputFile, code, 0644); err != nil {
		log.Fatalf("Error writing output file: %v", err)
	}
	log.Printf("Assembled %d bytes into %d section(s), written to %s", len(code), len(eng.Sections), outputFile)
}
