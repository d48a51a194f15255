package models

const (
	EventCommentInsert = "comment.insert"
	EventCriticsUpdate = "critics.update"
)

// LiveEvent is the envelope fanned out to every websocket subscriber of a
// board room, the sender included.
type LiveEvent struct {
	Type    string      `json:"type"`
	BoardID string      `json:"boardId"`
	Data    interface{} `json:"data,omitempty"`
}
