package model

// User is an account created at signup. The ID is the URL slug chosen by the
// user; it is immutable and acts as the foreign key for all owned data.
// Passwords are stored as-is — the original application this mirrors keeps
// plaintext credentials, and that behavior is reproduced deliberately (see
// DESIGN.md). The field is excluded from JSON responses.
type User struct {
	ID        string `gorm:"size:64;primaryKey" json:"id"`
	Username  string `gorm:"size:100;not null" json:"username"`
	Password  string `gorm:"size:255;not null" json:"-"`
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"createdAt"`
}
