// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/mima/cpu"
	"github.com/ezrec/mima/emulator"
	"github.com/ezrec/mima/translate"
)

var f = translate.From

// options are the command line settings.
type options struct {
	verbose bool
	quiet   bool
	output  string
	defines []string
}

// run loads, decodes, and executes a program file.
func run(opts *options, filename string) (err error) {
	var out io.Writer = os.Stdout
	if opts.output != "" && opts.output != "-" {
		ouf, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		atexit.Register(func() { ouf.Close() })
		out = ouf
	}

	inf, err := os.Open(filename)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: opts.verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = opts.verbose
	emu.Quiet = opts.quiet
	emu.Output = out
	for _, define := range opts.defines {
		emu.Predefine(define)
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	fmt.Fprintln(out, "MiMa Emulator")
	fmt.Fprintln(out, emulator.DELIMITER)
	fmt.Fprintf(out, " %v\n", f("Executing %v", filename))
	fmt.Fprintln(out, emulator.DELIMITER)

	return emu.Run()
}

// newCommand creates the root command.
func newCommand(opts *options) (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:   "mima [flags] PROGRAM",
		Short: "MiMa minimal machine emulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only shown for command line errors.
			cmd.SilenceUsage = true
			return run(opts, args[0])
		},
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not trace executed lines")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "-", "Trace and memory dump output")
	rootCmd.Flags().StringArrayVarP(&opts.defines, "define", "D", nil, "Predefine a constant, as NAME=VALUE")

	return
}

func main() {
	err := newCommand(&options{}).Execute()
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
