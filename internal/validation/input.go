package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/nanotasks/types"
)

// DeadlineLayout is the date format accepted by strict deadline checks
const DeadlineLayout = "2006-01-02"

var (
	// ErrEmptyText is returned when the task text is blank after trimming.
	// Its message is shown to the user as is.
	ErrEmptyText = errors.New("Please enter a task before adding!")

	// ErrUnknownMode is returned for a mode other than regular or urgent
	ErrUnknownMode = errors.New("unknown task mode")

	// ErrInvalidDeadline is returned by strict deadline checks
	ErrInvalidDeadline = errors.New("invalid deadline")
)

// Input holds raw form values as typed by the user
type Input struct {
	Text     string `json:"text"`
	Mode     string `json:"mode"`
	Category string `json:"category"`
	Deadline string `json:"deadline"`
}

// Params are validated construction parameters for a task
type Params struct {
	Text     string
	Priority types.Priority
	Category string
	Deadline string
}

// Options tune validation
type Options struct {
	// StrictDeadlines requires urgent deadlines to be empty or YYYY-MM-DD
	StrictDeadlines bool
}

// Validate trims the input and checks it can become a task. Only the field
// belonging to the selected mode is kept.
func Validate(in Input, opts Options) (Params, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return Params{}, ErrEmptyText
	}

	priority := types.PriorityRegular
	if mode := strings.TrimSpace(in.Mode); mode != "" {
		p, err := types.ParsePriority(mode)
		if err != nil {
			return Params{}, fmt.Errorf("%w: %q", ErrUnknownMode, in.Mode)
		}
		priority = p
	}

	params := Params{Text: text, Priority: priority}
	switch priority {
	case types.PriorityUrgent:
		params.Deadline = strings.TrimSpace(in.Deadline)
		if opts.StrictDeadlines {
			if err := ValidateDeadline(params.Deadline); err != nil {
				return Params{}, err
			}
		}
	default:
		params.Category = strings.TrimSpace(in.Category)
	}

	return params, nil
}

// ValidateDeadline accepts an empty deadline or a YYYY-MM-DD date
func ValidateDeadline(deadline string) error {
	if deadline == "" {
		return nil
	}
	if _, err := time.Parse(DeadlineLayout, deadline); err != nil {
		return fmt.Errorf("%w %q (use YYYY-MM-DD)", ErrInvalidDeadline, deadline)
	}
	return nil
}

// Build constructs the task variant selected by the params
func (p Params) Build() *types.Task {
	if p.Priority == types.PriorityUrgent {
		return types.NewUrgent(p.Text, p.Deadline)
	}
	return types.NewRegular(p.Text, p.Category)
}
