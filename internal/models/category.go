package models

// Category groups transactions of a user.
type Category struct {
	ID          int64   `json:"id"`
	Owner       string  `json:"owner" validate:"uuid"`
	Name        string  `json:"name"`
	Description *string `json:"description" schema:"nullable"`
	CreatedAt   Date    `json:"created_at"`
}

// PaymentMethod is the account or card a transaction was paid with.
type PaymentMethod struct {
	ID          int64   `json:"id"`
	Owner       string  `json:"owner" validate:"uuid"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Provider    string  `json:"provider"`
	Description *string `json:"description" schema:"nullable"`
	CreatedAt   Date    `json:"created_at"`
}
