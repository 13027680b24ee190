package board

import (
	"sync"

	"github.com/google/uuid"
)

// Generation hands out request tokens. Only the most recently issued token
// is current, so results of superseded requests can be told apart and
// dropped.
type Generation struct {
	mu      sync.Mutex
	current string
}

// Next issues a new token and makes it current.
func (g *Generation) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = uuid.NewString()
	return g.current
}

// Current reports whether token is the latest issued.
func (g *Generation) Current(token string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return token != "" && token == g.current
}

// Cancel invalidates every issued token.
func (g *Generation) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = ""
}
