package model

import "time"

// User is an account record. Accounts are immutable after signup: there
// are no update or delete routes, and the password hash never leaves
// the repository layer in responses.
type User struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"-"` // argon2id salt$hash
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
