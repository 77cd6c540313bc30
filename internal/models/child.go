package models

// Child is a child registered by a parent account
type Child struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Birthdate string `db:"birthdate" json:"birthdate"`
	UserID    string `db:"user_id" json:"user_id"`
}
