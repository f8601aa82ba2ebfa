package model

// Card is one entry of the card master list. Numbers are not unique:
// the same number may be listed more than once, with the same or a
// different type.
type Card struct {
	Number string `json:"number" db:"number"`
	Type   string `json:"type" db:"type"`
}
