package models

import "time"

const (
	ElementImage  = "image"
	ElementText   = "text"
	ElementSticky = "sticky"
	ElementShape  = "shape"
	ElementCard   = "card"
)

func ValidElementType(t string) bool {
	switch t {
	case ElementImage, ElementText, ElementSticky, ElementShape, ElementCard:
		return true
	}
	return false
}

type Element struct {
	ID        string    `bson:"_id,omitempty" json:"id,omitempty"`
	BoardID   string    `bson:"board_id" json:"boardId"`
	Type      string    `bson:"type" json:"type"`
	X         float64   `bson:"x" json:"x"`
	Y         float64   `bson:"y" json:"y"`
	Width     float64   `bson:"width" json:"width"`
	Height    float64   `bson:"height" json:"height"`
	Rotation  float64   `bson:"rotation" json:"rotation"`
	ZIndex    int       `bson:"z_index" json:"zIndex"`
	Content   string    `bson:"content" json:"content"` // free-form payload (image URL, sticky text, shape JSON)
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ElementPatch carries a partial element update. Nil fields are left untouched;
// concurrent patches are last-write-wins.
type ElementPatch struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	Width    *float64 `json:"width"`
	Height   *float64 `json:"height"`
	Rotation *float64 `json:"rotation"`
	ZIndex   *int     `json:"zIndex"`
	Content  *string  `json:"content"`
}

func (p ElementPatch) Empty() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Rotation == nil && p.ZIndex == nil && p.Content == nil
}
