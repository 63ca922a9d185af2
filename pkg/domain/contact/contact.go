package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// New creates a Contact stamped with the current time.
func New(name, email, phone, subject, message string) *Contact {
	return &Contact{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}
