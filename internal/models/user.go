package models

// User represents an account of the user store. A nil *User stands for "no
// authenticated user".
type User struct {
	RecordBase
	Avatar          *string  `json:"avatar" schema:"nullable"`
	Email           string   `json:"email" validate:"email"`
	EmailVisibility bool     `json:"emailVisibility"`
	Username        string   `json:"username"`
	Name            *string  `json:"name" schema:"nullable"`
	Surname         *string  `json:"surname" schema:"nullable"`
	Verified        bool     `json:"verified"`
	Newsletter      []string `json:"newsletter" validate:"dive,record_id"`
}
