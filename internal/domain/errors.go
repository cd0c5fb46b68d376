package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("category already exists")
	ErrInvalidID     = errors.New("invalid category ID")
	ErrRemote        = errors.New("remote API failure")
	ErrUnauthorized  = errors.New("unauthorized")
)

// FieldError is a single per-field validation message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError blocks a submission before any remote call is made.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Is reports a duplicate-name failure as ErrDuplicateName.
func (e *ValidationError) Is(target error) bool {
	if target != ErrDuplicateName {
		return false
	}
	for _, f := range e.Fields {
		if f.Field == "name" && f.Message == MsgCategoryExists {
			return true
		}
	}
	return false
}

// Message returns the first message recorded for field, if any.
func (e *ValidationError) Message(field string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message, true
		}
	}
	return "", false
}

// MsgCategoryExists is the name field message for a case-insensitive collision.
const MsgCategoryExists = "Category already exists"
