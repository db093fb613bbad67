// tick-gen writes the clock's tick sound as a WAV file
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-clock/audio"
	"github.com/lixenwraith/vi-clock/parameter"
)

func main() {
	fs := pflag.NewFlagSet("tick-gen", pflag.ContinueOnError)
	out := fs.StringP("output", "o", filepath.Join("sounds", "tick.wav"), "output WAV path")
	rate := fs.Int("rate", parameter.TickSampleRate, "sample rate in Hz")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if err := generate(*out, *rate); err != nil {
		fmt.Fprintf(os.Stderr, "tick-gen: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s\n", *out)
}

func generate(path string, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("invalid sample rate %d", rate)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := audio.WriteTickWAV(f, beep.SampleRate(rate)); err != nil {
		f.Close()
		return fmt.Errorf("encode tick: %w", err)
	}
	return f.Close()
}
