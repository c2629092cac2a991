package models

// ChallengeType categorizes library entries
type ChallengeType string

const (
	ChallengeRiddle        ChallengeType = "riddle"
	ChallengeLogic         ChallengeType = "logic"
	ChallengeTrivia        ChallengeType = "trivia"
	ChallengeCode          ChallengeType = "code"
	ChallengePhilosophical ChallengeType = "philosophical"
	ChallengeWordGame      ChallengeType = "word_game"
)

// RewardType enumerates what a correct answer grants
type RewardType string

const (
	RewardTimeBonus       RewardType = "time_bonus"
	RewardSectorReduction RewardType = "sector_reduction"
	RewardAllReduction    RewardType = "all_reduction"
	RewardSlowAttack      RewardType = "slow_attack"
	RewardHint            RewardType = "hint"
)

// Difficulty tiers
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Challenge is a pre-authored riddle/trivia/logic prompt with accepted answers
// and a reward/penalty pair. The library is fixed at startup; per-session usage
// state lives in challenges.Session.
type Challenge struct {
	ID              string        `json:"id" yaml:"id"`
	Type            ChallengeType `json:"type" yaml:"type"`
	Question        string        `json:"question" yaml:"question"`
	AcceptedAnswers []string      `json:"accepted_answers" yaml:"accepted_answers"`
	Hint            string        `json:"hint,omitempty" yaml:"hint"`
	Difficulty      string        `json:"difficulty" yaml:"difficulty"`

	RewardType   RewardType `json:"reward_type" yaml:"reward_type"`
	RewardAmount float64    `json:"reward_amount" yaml:"reward_amount"`
	TargetSector string     `json:"target_sector,omitempty" yaml:"target_sector"`

	PenaltyAmount float64 `json:"penalty_amount" yaml:"penalty_amount"`

	IntroText       string `json:"intro_text,omitempty" yaml:"intro_text"`
	CorrectResponse string `json:"correct_response,omitempty" yaml:"correct_response"`
	WrongResponse   string `json:"wrong_response,omitempty" yaml:"wrong_response"`
}

// Reward describes what a verified correct answer grants. Interpreted by the
// caller, not by the challenge session itself.
type Reward struct {
	Type         RewardType `json:"type"`
	Amount       float64    `json:"amount"`
	TargetSector string     `json:"target_sector,omitempty"`
}

// Penalty describes the flat compromise increase for a wrong answer
type Penalty struct {
	Amount float64 `json:"amount"`
}

// VerifyResult is the outcome of answer verification
type VerifyResult struct {
	ChallengeID string   `json:"challenge_id"`
	Correct     bool     `json:"correct"`
	Message     string   `json:"message"`
	Reward      *Reward  `json:"reward,omitempty"`
	Penalty     *Penalty `json:"penalty,omitempty"`
}
