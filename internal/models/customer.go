package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	ContactName  *string   `json:"contact_name" db:"contact_name"`
	ContactEmail *string   `json:"contact_email" db:"contact_email"`
	ContactPhone *string   `json:"contact_phone" db:"contact_phone"`
	Address      *string   `json:"address" db:"address"`
	City         *string   `json:"city" db:"city"`
	Notes        *string   `json:"notes" db:"notes"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
