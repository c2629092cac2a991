package challenges

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// similarityThreshold is the positional character-match ratio above which a
// near-miss answer is still accepted.
const similarityThreshold = 0.8

// Session tracks one table's challenge state: the active challenge pointer,
// the used-history cycle and the win/loss streaks.
type Session struct {
	mu      sync.Mutex
	library *Library

	active  *models.Challenge
	history []string // ids already attempted this cycle

	consecutiveCorrect int
	consecutiveWrong   int

	rng *rand.Rand
}

// NewSession creates a session over the given library
func NewSession(library *Library) *Session {
	return &Session{
		library: library,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Random picks an unused challenge matching the optional difficulty and type
// filters. When every matching challenge has been used, the history resets and
// eligibility starts over.
func (s *Session) Random(difficulty string, challengeType models.ChallengeType) (*models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := s.filterLocked(difficulty, challengeType)
	if len(available) == 0 {
		s.history = nil
		available = s.filterLocked(difficulty, challengeType)
	}
	if len(available) == 0 {
		// No challenge matches the filters at all; fall back to the whole bank.
		available = s.filterLocked("", "")
	}
	if len(available) == 0 {
		return nil, ErrChallengeNotFound
	}

	pick := available[s.rng.Intn(len(available))]
	return &pick, nil
}

func (s *Session) filterLocked(difficulty string, challengeType models.ChallengeType) []models.Challenge {
	used := make(map[string]bool, len(s.history))
	for _, id := range s.history {
		used[id] = true
	}

	var out []models.Challenge
	for _, c := range s.library.All() {
		if used[c.ID] {
			continue
		}
		if difficulty != "" && c.Difficulty != difficulty {
			continue
		}
		if challengeType != "" && c.Type != challengeType {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Start activates a challenge and returns its presentation text
func (s *Session) Start(c *models.Challenge) string {
	s.mu.Lock()
	cp := *c
	s.active = &cp
	s.mu.Unlock()

	return fmt.Sprintf("%s\n\n\"%s\"", c.IntroText, c.Question)
}

// Inject activates a specific library challenge by id (game-master control)
// and returns its presentation text.
func (s *Session) Inject(id string) (string, error) {
	c, err := s.library.Get(id)
	if err != nil {
		return "", err
	}
	return s.Start(c), nil
}

// Active returns the id of the active challenge, or "" when none is pending
func (s *Session) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ""
	}
	return s.active.ID
}

// Used reports whether a challenge has been attempted in the current cycle
func (s *Session) Used(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.history {
		if h == id {
			return true
		}
	}
	return false
}

// Streaks returns the consecutive-correct and consecutive-wrong counters
func (s *Session) Streaks() (correct, wrong int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consecutiveCorrect, s.consecutiveWrong
}

// Verify checks the player's answer against the active challenge. The
// challenge is consumed either way: once attempted it joins the used history
// and the active pointer clears.
func (s *Session) Verify(playerAnswer string) (*models.VerifyResult, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveChallenge
	}
	challenge := s.active
	correct := answerMatches(playerAnswer, challenge.AcceptedAnswers)
	result := s.resolveLocked(challenge, correct)
	s.mu.Unlock()

	slog.Info("challenge answered", "id", result.ChallengeID, "correct", correct)
	return result, nil
}

// ForceVerify resolves the active challenge without answer matching
// (game-master override).
func (s *Session) ForceVerify(correct bool) (*models.VerifyResult, error) {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveChallenge
	}
	result := s.resolveLocked(s.active, correct)
	s.mu.Unlock()

	slog.Info("challenge force-verified", "id", result.ChallengeID, "correct", correct)
	return result, nil
}

// resolveLocked consumes the active challenge and builds the outcome.
// Caller must hold s.mu.
func (s *Session) resolveLocked(challenge *models.Challenge, correct bool) *models.VerifyResult {
	s.history = append(s.history, challenge.ID)
	s.active = nil

	if correct {
		s.consecutiveCorrect++
		s.consecutiveWrong = 0
		return &models.VerifyResult{
			ChallengeID: challenge.ID,
			Correct:     true,
			Message:     challenge.CorrectResponse,
			Reward: &models.Reward{
				Type:         challenge.RewardType,
				Amount:       challenge.RewardAmount,
				TargetSector: challenge.TargetSector,
			},
		}
	}

	s.consecutiveWrong++
	s.consecutiveCorrect = 0
	return &models.VerifyResult{
		ChallengeID: challenge.ID,
		Correct:     false,
		Message:     challenge.WrongResponse,
		Penalty:     &models.Penalty{Amount: challenge.PenaltyAmount},
	}
}

// DifficultyForThreat maps the global threat level into a difficulty tier
func DifficultyForThreat(threat float64) string {
	switch {
	case threat < 30:
		return models.DifficultyEasy
	case threat < 60:
		return models.DifficultyMedium
	default:
		return models.DifficultyHard
	}
}

// Reset clears the session: active pointer, history and streaks
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = nil
	s.history = nil
	s.consecutiveCorrect = 0
	s.consecutiveWrong = 0
}

// answerMatches accepts an answer when any accepted variant contains it or is
// contained by it, or when the positional character similarity against any
// variant exceeds the threshold. Deliberately lenient: "an echo" matches
// "echo" and vice versa.
func answerMatches(playerAnswer string, accepted []string) bool {
	answer := strings.ToLower(strings.TrimSpace(playerAnswer))
	if answer == "" {
		return false
	}

	for _, variant := range accepted {
		v := strings.ToLower(variant)
		if strings.Contains(answer, v) || strings.Contains(v, answer) {
			return true
		}
	}

	for _, variant := range accepted {
		if similarity(answer, strings.ToLower(variant)) > similarityThreshold {
			return true
		}
	}

	return false
}

// similarity is a crude typo-tolerance heuristic, not edit distance: equal
// characters position-by-position up to the shorter length, divided by the
// longer length.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}

	matches := 0
	for i := 0; i < n; i++ {
		if ra[i] == rb[i] {
			matches++
		}
	}

	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}
	return float64(matches) / float64(longer)
}
