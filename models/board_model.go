package models

import "time"

const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

type Board struct {
	ID         string    `bson:"_id,omitempty" json:"id,omitempty"`
	Title      string    `bson:"title" json:"title"`
	Visibility string    `bson:"visibility" json:"visibility"`
	OwnerID    string    `bson:"owner_id" json:"ownerId"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

func ValidVisibility(v string) bool {
	return v == VisibilityPrivate || v == VisibilityPublic
}
