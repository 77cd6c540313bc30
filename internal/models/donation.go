package models

// Donation is a gift recorded by a member
type Donation struct {
	ID        string  `db:"id" json:"id"`
	UserID    string  `db:"user_id" json:"user_id"`
	Amount    float64 `db:"amount" json:"amount"`
	Category  string  `db:"category" json:"category"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}
