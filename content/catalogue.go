package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

//go:embed messages.yaml
var embeddedMessages []byte

var (
	// CommentPrefixes marks catalogue entries that are skipped
	CommentPrefixes = []string{"//", "#"}
)

// MaxMessageLength truncates entries longer than the message panel can usefully wrap
const MaxMessageLength = 240

// catalogueFile is the YAML layout of a message catalogue
type catalogueFile struct {
	Messages []string `yaml:"messages"`
}

// Catalogue is the list of daily messages
type Catalogue struct {
	messages []string
}

// Embedded returns the built-in catalogue
func Embedded() (*Catalogue, error) {
	return Parse(embeddedMessages)
}

// Load reads a catalogue file, an empty path selects the built-in catalogue
func Load(path string) (*Catalogue, error) {
	if path == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalogue: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalogue and cleans its entries
func Parse(data []byte) (*Catalogue, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse message catalogue: %w", err)
	}

	messages := ProcessMessages(file.Messages)
	if len(messages) == 0 {
		return nil, fmt.Errorf("message catalogue has no usable entries")
	}
	return &Catalogue{messages: messages}, nil
}

// ProcessMessages trims entries, drops empty and commented ones and truncates long ones
func ProcessMessages(raw []string) []string {
	processed := make([]string, 0, len(raw))
	for _, m := range raw {
		trimmed := strings.Join(strings.Fields(m), " ")
		if len(trimmed) == 0 || isCommentLine(trimmed) {
			continue
		}
		if r := []rune(trimmed); len(r) > MaxMessageLength {
			trimmed = string(r[:MaxMessageLength])
		}
		processed = append(processed, trimmed)
	}
	return processed
}

func isCommentLine(line string) bool {
	for _, prefix := range CommentPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// Len returns the number of messages
func (c *Catalogue) Len() int {
	return len(c.messages)
}

// ForDay returns the message for t's day of year, wrapping around the catalogue
func (c *Catalogue) ForDay(t time.Time) string {
	return c.messages[(t.YearDay()-1)%len(c.messages)]
}
