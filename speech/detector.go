package speech

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/lixenwraith/vi-clock/parameter"
)

// ErrNoSpeechBackend is returned when no synthesizer is installed
var ErrNoSpeechBackend = errors.New("no speech synthesizer found")

// CommandSpeaker speaks through a system synthesizer binary
type CommandSpeaker struct {
	Name string
	Path string
	args func(text string) []string
}

// backend is a synthesizer candidate in detection order
type backend struct {
	name string
	args func(text string) []string
}

var backends = []backend{
	// macOS
	{"say", func(text string) []string {
		return []string{"-r", strconv.Itoa(parameter.SpeechRate), text}
	}},
	{"espeak-ng", func(text string) []string {
		return []string{"-s", strconv.Itoa(parameter.SpeechRate), text}
	}},
	{"espeak", func(text string) []string {
		return []string{"-s", strconv.Itoa(parameter.SpeechRate), text}
	}},
	// speech-dispatcher, -w blocks until spoken
	{"spd-say", func(text string) []string {
		return []string{"-w", text}
	}},
}

// Detect searches for an available synthesizer
// Priority: say > espeak-ng > espeak > spd-say
func Detect() (*CommandSpeaker, error) {
	return detect(exec.LookPath)
}

func detect(lookPath func(string) (string, error)) (*CommandSpeaker, error) {
	for _, b := range backends {
		if path, err := lookPath(b.name); err == nil {
			return &CommandSpeaker{Name: b.name, Path: path, args: b.args}, nil
		}
	}
	return nil, ErrNoSpeechBackend
}

// Speak runs the synthesizer and blocks until it exits or ctx ends
func (s *CommandSpeaker) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.Path, s.args(text)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", s.Name, err, msg)
		}
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	return nil
}
