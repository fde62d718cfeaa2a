package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sergyinfo/dos86/cpu"
	"github.com/sergyinfo/dos86/emulator"
)

// The original lab program: compute a - b + c and print the digit.
//
//go:embed result.asm
var resultSource string

func main() {
	var compile string
	var listing bool
	var input string
	var output string
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to compile (default: the built-in result program)")
	flag.BoolVar(&listing, "l", false, "Print the assembled listing, do not execute")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	asm := &cpu.Assembler{}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}

	source := io.Reader(strings.NewReader(resultSource))
	name := "result.asm"
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()
		source = inf
		name = compile
	}

	prog, err := asm.Parse(source)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	if listing {
		fmt.Print(prog.Listing())
		return
	}

	emu.Program = prog

	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Dos.Input = inf
	}

	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Dos.Output = ouf
	}

	code, err := emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(int(code))
}
