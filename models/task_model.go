package models

import "time"

const (
	TaskOpen = "open"
	TaskDone = "done"
)

func ValidTaskStatus(s string) bool {
	return s == TaskOpen || s == TaskDone
}

type Task struct {
	ID              string    `bson:"_id,omitempty" json:"id,omitempty"`
	BoardID         string    `bson:"board_id" json:"boardId"`
	SourceCommentID string    `bson:"source_comment_id,omitempty" json:"sourceCommentId,omitempty"`
	Text            string    `bson:"text" json:"text"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
