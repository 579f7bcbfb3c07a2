package model

import "time"

// Note belongs to exactly one owner. UserID is set at creation and
// never reassigned. SharedWith is an additive-only membership set of
// user ids; nothing prevents it from containing ids of users deleted
// after the share was recorded.
type Note struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	SharedWith  []string  `bson:"shared_with,omitempty" json:"shared_with,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
	SearchScore float64   `bson:"score,omitempty" json:"search_score,omitempty"`
}
