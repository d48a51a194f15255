package models

import "time"

const (
	SessionActive = "active"
	SessionEnded  = "ended"
)

// CritSession is a Live Crit run for a board. Guests join with the session's
// JoinCode; a board keeps a single session record that is reactivated instead
// of recreated.
type CritSession struct {
	ID        string     `bson:"_id,omitempty" json:"id,omitempty"`
	BoardID   string     `bson:"board_id" json:"boardId"`
	JoinCode  string     `bson:"join_code" json:"joinCode"`
	Status    string     `bson:"status" json:"status"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	EndedAt   *time.Time `bson:"ended_at,omitempty" json:"endedAt,omitempty"`
}
