package models

// Critic is a guest participant in a Live Crit session.
type Critic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
