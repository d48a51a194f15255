package models

import "time"

const (
	SourceStudent  = "student"
	SourceLiveCrit = "liveCrit"
)

func ValidCommentSource(s string) bool {
	return s == SourceStudent || s == SourceLiveCrit
}

type Comment struct {
	ID         string    `bson:"_id,omitempty" json:"id,omitempty"`
	BoardID    string    `bson:"board_id" json:"boardId"`
	ElementRef string    `bson:"element_ref,omitempty" json:"elementRef,omitempty"` // element UUID/ObjectID or free text
	Author     string    `bson:"author" json:"author"`
	Text       string    `bson:"text" json:"text"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	IsTask     bool      `bson:"is_task" json:"isTask"`
	Source     string    `bson:"source" json:"source"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

type CommentPatch struct {
	Text     *string `json:"text"`
	Category *string `json:"category"`
	IsTask   *bool   `json:"isTask"`
}

func (p CommentPatch) Empty() bool {
	return p.Text == nil && p.Category == nil && p.IsTask == nil
}
