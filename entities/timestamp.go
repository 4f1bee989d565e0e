package entities

import (
	"github.com/google/uuid"
	"time"
)

type Timestamp struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// assignID fills an empty primary key with a random uuid string.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
