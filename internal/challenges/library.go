package challenges

import (
	"errors"
	"fmt"
	"sync"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// Common errors
var (
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrNoActiveChallenge = errors.New("no active challenge")
)

// Library is the fixed bank of pre-authored challenges. Populated once at
// startup (defaults plus optional YAML content); per-session usage state lives
// in Session, not here.
type Library struct {
	mu         sync.RWMutex
	challenges map[string]*models.Challenge
}

// NewLibrary creates a library seeded with the built-in challenge set
func NewLibrary() *Library {
	l := &Library{challenges: make(map[string]*models.Challenge)}
	for _, def := range defaultChallenges() {
		c := def
		l.challenges[c.ID] = &c
	}
	return l
}

// Add inserts or replaces a challenge. Content files overlay the defaults by id.
func (l *Library) Add(c models.Challenge) error {
	if c.ID == "" {
		return fmt.Errorf("%w: empty id", ErrChallengeNotFound)
	}
	if c.Difficulty == "" {
		c.Difficulty = models.DifficultyMedium
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.challenges[c.ID] = &c
	return nil
}

// Get returns a copy of the challenge by id
func (l *Library) Get(id string) (*models.Challenge, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	c, ok := l.challenges[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrChallengeNotFound, id)
	}
	cp := *c
	return &cp, nil
}

// All returns copies of every challenge
func (l *Library) All() []models.Challenge {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Challenge, 0, len(l.challenges))
	for _, c := range l.challenges {
		out = append(out, *c)
	}
	return out
}

// Len returns the number of challenges in the bank
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.challenges)
}
