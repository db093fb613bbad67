package speech

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

type recordingSpeaker struct {
	mu    sync.Mutex
	texts []string
	err   error
	block chan struct{}
}

func (s *recordingSpeaker) Speak(ctx context.Context, text string) error {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	s.mu.Lock()
	s.texts = append(s.texts, text)
	s.mu.Unlock()
	return s.err
}

func (s *recordingSpeaker) spoken() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.texts...)
}

func TestAnnounceSpeaksHourPhrase(t *testing.T) {
	sp := &recordingSpeaker{}
	a := NewAnnouncer(sp, zerolog.Nop())

	if !a.Announce(15) {
		t.Fatal("Expected announcement to start")
	}
	a.Wait()

	got := sp.spoken()
	if len(got) != 1 || got[0] != "It's 3 o'clock PM" {
		t.Errorf("Expected single 3 PM phrase, got %v", got)
	}
}

func TestAnnounceDisabled(t *testing.T) {
	sp := &recordingSpeaker{}
	a := NewAnnouncer(sp, zerolog.Nop())
	a.SetEnabled(false)

	if a.Announce(9) {
		t.Error("Expected disabled announcer to skip")
	}
	a.Wait()
	if len(sp.spoken()) != 0 {
		t.Error("Expected nothing spoken")
	}
}

func TestAnnounceWithoutSpeaker(t *testing.T) {
	a := NewAnnouncer(nil, zerolog.Nop())
	if a.Available() {
		t.Error("Expected announcer without speaker to be unavailable")
	}
	if a.Announce(9) {
		t.Error("Expected no announcement without speaker")
	}
}

func TestAnnounceSkipsWhileBusy(t *testing.T) {
	sp := &recordingSpeaker{block: make(chan struct{})}
	a := NewAnnouncer(sp, zerolog.Nop())

	if !a.Announce(1) {
		t.Fatal("Expected first announcement to start")
	}
	if a.Announce(2) {
		t.Error("Expected overlapping announcement to be skipped")
	}

	close(sp.block)
	a.Wait()

	if !a.Announce(3) {
		t.Error("Expected announcement after the previous one finished")
	}
	a.Wait()

	got := sp.spoken()
	if len(got) != 2 || got[0] != "It's 1 o'clock AM" || got[1] != "It's 3 o'clock AM" {
		t.Errorf("Unexpected spoken sequence: %v", got)
	}
}

func TestAnnounceFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	sp := &recordingSpeaker{err: errors.New("device busy")}
	a := NewAnnouncer(sp, zerolog.New(&buf))

	a.Announce(12)
	a.Wait()

	if !strings.Contains(buf.String(), "device busy") {
		t.Errorf("Expected warning with cause in log, got %q", buf.String())
	}
}

func TestDetectPriority(t *testing.T) {
	tests := []struct {
		name      string
		installed []string
		want      string
		args      []string
	}{
		{"macOS say first", []string{"spd-say", "say"}, "say", []string{"-r", "150", "hi"}},
		{"espeak-ng over espeak", []string{"espeak", "espeak-ng"}, "espeak-ng", []string{"-s", "150", "hi"}},
		{"spd-say last", []string{"spd-say"}, "spd-say", []string{"-w", "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookPath := func(name string) (string, error) {
				for _, n := range tt.installed {
					if n == name {
						return "/usr/bin/" + name, nil
					}
				}
				return "", errors.New("not found")
			}

			s, err := detect(lookPath)
			if err != nil {
				t.Fatalf("detect failed: %v", err)
			}
			if s.Name != tt.want || s.Path != "/usr/bin/"+tt.want {
				t.Errorf("Expected %s, got %s at %s", tt.want, s.Name, s.Path)
			}
			if got := s.args("hi"); strings.Join(got, " ") != strings.Join(tt.args, " ") {
				t.Errorf("Expected args %v, got %v", tt.args, got)
			}
		})
	}
}

func TestDetectNone(t *testing.T) {
	_, err := detect(func(string) (string, error) { return "", errors.New("not found") })
	if !errors.Is(err, ErrNoSpeechBackend) {
		t.Errorf("Expected ErrNoSpeechBackend, got %v", err)
	}
}
