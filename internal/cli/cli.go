// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	opts.Input = args[0]
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Font, "font", "", "font file replacing the built-in glyphs (80 bytes)")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window scale factor")
	flags.IntVar(&opts.CPUHz, "speed", opts.CPUHz, "instruction rate in Hz")
	flags.BoolVar(&opts.Headless, "headless", false, "run without a window")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.ShiftCopy, "shift-copy", opts.ShiftCopy, "shift instructions copy VY into VX before shifting")
	flags.BoolVar(&opts.JumpVX, "jump-vx", false, "jump with offset uses VX instead of V0")
	flags.BoolVar(&opts.IndexAdvance, "index-advance", false, "bulk register transfers advance the index register")
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8emu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option values
func validateOptions(opts options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale factor %d", opts.Scale)
	}
	if opts.CPUHz < 1 {
		return fmt.Errorf("invalid instruction rate %d", opts.CPUHz)
	}
	return nil
}
