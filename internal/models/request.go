package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// BriefRequest is the campaign brief as submitted by the user.
type BriefRequest struct {
	Name      string   `json:"name"`
	Goal      string   `json:"goal"`
	Audience  string   `json:"audience"`
	Voice     string   `json:"voice"`
	Messages  string   `json:"messages"`
	Platforms []string `json:"platforms"`
	Tone      string   `json:"tone"`
}

// ValidationError marks an error as a user-correctable input problem.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// NewValidationError creates a validation error with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// IsValidationError reports whether err stems from brief validation.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Normalize trims surrounding whitespace from the free-text fields.
func (r *BriefRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Goal = strings.TrimSpace(r.Goal)
	r.Audience = strings.TrimSpace(r.Audience)
	r.Voice = strings.TrimSpace(r.Voice)
	r.Messages = strings.TrimSpace(r.Messages)
	r.Tone = strings.TrimSpace(r.Tone)
}

// Validate checks the brief before any agent call is made. Voice and
// messages are optional; everything else is required.
func (r *BriefRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return newValidationError("missing campaign name")
	}
	if strings.TrimSpace(r.Goal) == "" {
		return newValidationError("missing campaign goal")
	}
	if strings.TrimSpace(r.Audience) == "" {
		return newValidationError("missing target audience")
	}
	if len(r.Platforms) == 0 {
		return newValidationError("no platforms selected")
	}
	for _, p := range r.Platforms {
		if !slices.Contains(PlatformOptions, p) {
			return newValidationError("unknown platform: %s", p)
		}
	}
	if !slices.Contains(ToneOptions, r.Tone) {
		return newValidationError("unknown tone: %s", r.Tone)
	}
	return nil
}

// ToBrief extracts the immutable brief fields.
func (r *BriefRequest) ToBrief() Brief {
	return Brief{
		Goal:     r.Goal,
		Audience: r.Audience,
		Voice:    r.Voice,
		Messages: r.Messages,
	}
}
