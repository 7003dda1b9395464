// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/faiface/pixel/pixelgl"
	"github.com/retroenv/chip8emu/internal/cli"
	"github.com/retroenv/chip8emu/internal/config"
	"github.com/retroenv/chip8emu/internal/emulator"
	"github.com/retroenv/chip8emu/internal/gui"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	printBanner(opts)

	emu, err := setupEmulator(logger, opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if opts.Headless {
		emu.Run(ctx)
		return
	}

	pixelgl.Run(func() {
		if err := gui.Run(ctx, emu, opts.Scale); err != nil {
			logger.Error("Running emulator failed", log.Err(err))
		}
	})
}

func printBanner(opts options.Program) {
	if !opts.Quiet {
		fmt.Println("[---------------------------]")
		fmt.Println("[ chip8emu - CHIP-8 emulator ]")
		fmt.Printf("[---------------------------]\n\n")
		fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
	}
}

func setupEmulator(logger *log.Logger, opts options.Program) (*emulator.Emulator, error) {
	rom, font, err := loader.New().Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading files: %w", err)
	}

	emu := emulator.New(logger, config.CreateEmulatorConfig(opts))
	if err := emu.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}
	if font != nil {
		if err := emu.LoadFont(font); err != nil {
			return nil, fmt.Errorf("loading font: %w", err)
		}
	}

	logger.Info("Running ROM",
		log.String("file", opts.Input),
		log.Int("speed", opts.CPUHz),
	)
	return emu, nil
}
