package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity groups the validated fields of one user identity.
type Identity struct {
	ID        uuid.UUID
	CPF       *CPF
	Email     *Email
	Username  *Username
	Password  *Password
	CreatedAt time.Time
}
