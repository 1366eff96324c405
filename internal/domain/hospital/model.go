package hospital

import "github.com/google/uuid"

// Hospital maps to the hospital table.
type Hospital struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
	Code string    `db:"code" json:"code"`
}

type Input struct {
	Name *string `json:"name"`
	Code *string `json:"code"`
}
