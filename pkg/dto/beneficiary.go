package dto

import (
	"time"

	"github.com/google/uuid"
)

// BeneficiaryRead is a snapshot of a saved payee.
type BeneficiaryRead struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// ContactRead is a snapshot of a contact-form message for admin listing.
type ContactRead struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
