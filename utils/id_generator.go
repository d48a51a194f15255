package utils

import (
	"fmt"
	"sync"
)

var (
	idCounter int
	mu        sync.Mutex
)

func init() {
	idCounter = 1
}

// GenerateID returns a process-local sequential id. Used by in-memory
// repositories; persistent stores mint their own ids.
func GenerateID() string {
	mu.Lock()
	defer mu.Unlock()

	id := idCounter
	idCounter++
	return fmt.Sprintf("%d", id)
}
