package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// No lookalike characters; codes end up in shared links read out loud.
const shareCodeAlphabet = "23456789abcdefghjkmnpqrstuvwxyz"

const shareCodeLength = 10

// NewShareCode returns a join code for a Live Crit session link.
func NewShareCode() (string, error) {
	return gonanoid.Generate(shareCodeAlphabet, shareCodeLength)
}
