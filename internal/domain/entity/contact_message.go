package entity

import (
	"fmt"
	"net/mail"
	"time"
)

// maxMessageLength defines the maximum allowed length for contact message bodies.
const maxMessageLength = 10000

// ContactMessage represents a message submitted through the public contact form.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Validate validates the ContactMessage entity fields.
func (m *ContactMessage) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if err := ValidateEmail(m.Email); err != nil {
		return err
	}
	if m.Message == "" {
		return &ValidationError{Field: "message", Message: "message is required"}
	}
	if len(m.Message) > maxMessageLength {
		return &ValidationError{
			Field:   "message",
			Message: fmt.Sprintf("message must not exceed %d characters", maxMessageLength),
		}
	}
	return nil
}

// ValidateEmail validates the format of an email address.
func ValidateEmail(address string) error {
	if address == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return &ValidationError{Field: "email", Message: "email is not a valid address"}
	}
	return nil
}
