// Package content holds the embedded quiz bank and ASCII art
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// MaxLineLength bounds prompt and answer width so boxes fit an 80 column terminal
const MaxLineLength = 76

// ErrInvalidQuestion reports a bank entry that cannot be played
var ErrInvalidQuestion = errors.New("invalid question")

//go:embed questions.yaml
var embeddedQuestions []byte

// Question is one quiz day
type Question struct {
	Day     int      `yaml:"day"`
	Prompt  string   `yaml:"prompt"`
	Correct string   `yaml:"correct"`
	Wrong   []string `yaml:"wrong"`
	Art     string   `yaml:"art"`
}

// Intn is the random source used for answer shuffling
type Intn interface {
	Intn(n int) int
}

// Answers returns every answer in a random order and the index of the correct one
func (q Question) Answers(rng Intn) ([]string, int) {
	answers := make([]string, 0, len(q.Wrong)+1)
	answers = append(answers, q.Correct)
	answers = append(answers, q.Wrong...)

	// Fisher-Yates
	for i := len(answers) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		answers[i], answers[j] = answers[j], answers[i]
	}
	return answers, slices.Index(answers, q.Correct)
}

// Bank maps calendar days to questions
type Bank struct {
	questions map[int]Question
}

// Load parses the embedded question bank
func Load() (*Bank, error) {
	return Parse(embeddedQuestions)
}

// Parse decodes and validates a YAML list of questions
func Parse(raw []byte) (*Bank, error) {
	var entries []Question
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	b := &Bank{questions: make(map[int]Question, len(entries))}
	for i, q := range entries {
		q.Prompt = sanitizeLine(q.Prompt)
		q.Correct = sanitizeLine(q.Correct)
		for j := range q.Wrong {
			q.Wrong[j] = sanitizeLine(q.Wrong[j])
		}
		if err := q.validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		if _, dup := b.questions[q.Day]; dup {
			return nil, fmt.Errorf("question %d: %w: duplicate day %d", i, ErrInvalidQuestion, q.Day)
		}
		b.questions[q.Day] = q
	}
	return b, nil
}

func (q Question) validate() error {
	switch {
	case q.Day < 1 || q.Day > 24:
		return fmt.Errorf("%w: day %d out of range", ErrInvalidQuestion, q.Day)
	case q.Prompt == "":
		return fmt.Errorf("%w: day %d has no prompt", ErrInvalidQuestion, q.Day)
	case q.Correct == "":
		return fmt.Errorf("%w: day %d has no correct answer", ErrInvalidQuestion, q.Day)
	case len(q.Wrong) == 0:
		return fmt.Errorf("%w: day %d has no wrong answers", ErrInvalidQuestion, q.Day)
	}
	for _, w := range q.Wrong {
		if w == "" || w == q.Correct {
			return fmt.Errorf("%w: day %d has an empty or duplicate answer", ErrInvalidQuestion, q.Day)
		}
	}
	return nil
}

// Get returns the question for day
func (b *Bank) Get(day int) (Question, bool) {
	if b == nil {
		return Question{}, false
	}
	q, ok := b.questions[day]
	return q, ok
}

// Days lists the days with a question in ascending order
func (b *Bank) Days() []int {
	if b == nil {
		return nil
	}
	days := make([]int, 0, len(b.questions))
	for d := range b.questions {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Len returns the number of questions
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.questions)
}

// sanitizeLine removes ANSI sequences and control characters, expands tabs,
// trims and truncates to MaxLineLength display columns
func sanitizeLine(line string) string {
	var sb strings.Builder
	inEscape := false
	for _, r := range line {
		switch {
		case inEscape:
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		case r == '\t':
			sb.WriteRune(' ')
		case unicode.IsControl(r):
			// dropped
		default:
			sb.WriteRune(r)
		}
	}
	return runewidth.Truncate(strings.TrimSpace(sb.String()), MaxLineLength, "")
}
