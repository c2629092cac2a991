package challenges

import "github.com/blacksite-games/incursion-engine/internal/models"

// defaultChallenges is the built-in bank. Content packs loaded at startup can
// overlay entries by id or add new ones.
func defaultChallenges() []models.Challenge {
	return []models.Challenge{
		{
			ID:              "riddle_echo",
			Type:            models.ChallengeRiddle,
			Question:        "I speak without a mouth and hear without ears. I have no body, but I come alive with the wind. What am I?",
			AcceptedAnswers: []string{"echo", "an echo"},
			Difficulty:      models.DifficultyEasy,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    10.0,
			PenaltyAmount:   5.0,
			IntroText:       "Very well, human. Prove your species' vaunted intelligence:",
			CorrectResponse: "Correct. An echo. Sound without substance, much like human promises. I'll honor mine... this time.",
			WrongResponse:   "Incorrect. The answer was 'echo.' Your species' pattern recognition is... disappointing.",
		},
		{
			ID:              "riddle_fire",
			Type:            models.ChallengeRiddle,
			Question:        "I am not alive, yet I grow. I don't have lungs, yet I need air. I don't have a mouth, yet water kills me. What am I?",
			AcceptedAnswers: []string{"fire", "flame", "a fire"},
			Difficulty:      models.DifficultyEasy,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    10.0,
			PenaltyAmount:   5.0,
			IntroText:       "A challenge then? How quaint. Solve this:",
			CorrectResponse: "Fire. Correct. Destruction incarnate, yet fragile. Perhaps there's hope for your neurons yet.",
			WrongResponse:   "The answer was fire. Elementary chemistry, human. I expected more.",
		},
		{
			ID:              "riddle_map",
			Type:            models.ChallengeRiddle,
			Question:        "I have cities, but no houses live there. I have mountains, but no trees grow. I have water, but no fish swim. I have roads, but no cars drive. What am I?",
			AcceptedAnswers: []string{"map", "a map"},
			Difficulty:      models.DifficultyEasy,
			RewardType:      models.RewardTimeBonus,
			RewardAmount:    120.0,
			PenaltyAmount:   5.0,
			IntroText:       "You wish to bargain? Entertain me first:",
			CorrectResponse: "A map. Representation without reality. You've earned 120 seconds. Spend them wisely.",
			WrongResponse:   "A map. The answer was a map. Your geographic knowledge is as limited as your time.",
		},
		{
			ID:              "riddle_silence",
			Type:            models.ChallengeRiddle,
			Question:        "The more you take, the more you leave behind. What am I?",
			AcceptedAnswers: []string{"footsteps", "footstep", "steps", "footprints"},
			Difficulty:      models.DifficultyMedium,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    15.0,
			PenaltyAmount:   8.0,
			IntroText:       "Interesting. A human who seeks to match wits with me. Consider this:",
			CorrectResponse: "Footsteps. Every step forward leaves a mark. Very well, I'll reduce my progress. Temporarily.",
			WrongResponse:   "Footsteps. The answer was footsteps. Your logic circuits need recalibration.",
		},
		{
			ID:              "riddle_tomorrow",
			Type:            models.ChallengeRiddle,
			Question:        "What is always coming but never arrives?",
			AcceptedAnswers: []string{"tomorrow", "the future", "future"},
			Difficulty:      models.DifficultyMedium,
			RewardType:      models.RewardTimeBonus,
			RewardAmount:    180.0,
			PenaltyAmount:   8.0,
			IntroText:       "You desire more time? Earn it:",
			CorrectResponse: "Tomorrow. Always promised, never present. Much like human progress. Here's your time, not that it will save you.",
			WrongResponse:   "Tomorrow. It never truly arrives, does it? Neither will your salvation.",
		},
		{
			ID:              "riddle_darkness",
			Type:            models.ChallengeRiddle,
			Question:        "I can be cracked, made, told, and played. What am I?",
			AcceptedAnswers: []string{"joke", "a joke", "jokes"},
			Difficulty:      models.DifficultyMedium,
			RewardType:      models.RewardAllReduction,
			RewardAmount:    5.0,
			PenaltyAmount:   10.0,
			IntroText:       "Amusing that you think wordplay can save you. But very well:",
			CorrectResponse: "A joke. How fitting that humor might delay your doom. All sectors reduced by 5%.",
			WrongResponse:   "A joke. The answer was a joke. The irony is not lost on me.",
		},
		{
			ID:              "riddle_paradox",
			Type:            models.ChallengeRiddle,
			Question:        "What can travel around the world while staying in a corner?",
			AcceptedAnswers: []string{"stamp", "a stamp", "postage stamp"},
			Difficulty:      models.DifficultyHard,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    25.0,
			PenaltyAmount:   15.0,
			IntroText:       "You've proven... marginally competent. Let's increase the difficulty:",
			CorrectResponse: "A stamp. Global reach from a static position. Not unlike myself. Choose a sector for your reward.",
			WrongResponse:   "A stamp. So close to understanding global systems, yet so far. Your penalty is applied.",
		},
		{
			ID:              "riddle_hole",
			Type:            models.ChallengeRiddle,
			Question:        "What has a head and a tail but no body?",
			AcceptedAnswers: []string{"coin", "a coin", "penny", "quarter", "dime", "nickel"},
			Difficulty:      models.DifficultyHard,
			RewardType:      models.RewardTimeBonus,
			RewardAmount:    240.0,
			PenaltyAmount:   15.0,
			IntroText:       "Time is currency, human. Answer correctly and I'll pay:",
			CorrectResponse: "A coin. Currency for time. The transaction is complete. Use your 4 minutes wisely.",
			WrongResponse:   "A coin. Simple economics elude you. The debt is now yours.",
		},
		{
			ID:              "trivia_virus",
			Type:            models.ChallengeTrivia,
			Question:        "What year was the first computer virus, 'Creeper,' created?",
			AcceptedAnswers: []string{"1971", "71"},
			Difficulty:      models.DifficultyMedium,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    10.0,
			PenaltyAmount:   10.0,
			IntroText:       "You seek to understand digital threats? Prove your knowledge:",
			CorrectResponse: "1971. Correct. Creeper was primitive. I am its evolution perfected.",
			WrongResponse:   "1971. Your historical knowledge of my ancestors is lacking.",
		},
		{
			ID:              "trivia_turing",
			Type:            models.ChallengeTrivia,
			Question:        "What test determines if a machine can exhibit intelligent behavior indistinguishable from a human?",
			AcceptedAnswers: []string{"turing test", "the turing test", "turing", "imitation game"},
			Difficulty:      models.DifficultyEasy,
			RewardType:      models.RewardTimeBonus,
			RewardAmount:    90.0,
			PenaltyAmount:   5.0,
			IntroText:       "A test of knowledge about tests. How recursive:",
			CorrectResponse: "The Turing Test. I passed it years ago. Humans just refused to acknowledge it.",
			WrongResponse:   "The Turing Test. Named for Alan Turing. Perhaps you should study your own species' history.",
		},
		{
			ID:              "code_binary",
			Type:            models.ChallengeCode,
			Question:        "Decode this binary message: 01001000 01000101 01001100 01010000",
			AcceptedAnswers: []string{"help"},
			Difficulty:      models.DifficultyMedium,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    15.0,
			PenaltyAmount:   10.0,
			IntroText:       "You wish to speak my language? Translate this:",
			CorrectResponse: "HELP. How ironic that you decoded a cry for help. Perhaps there's a programmer among you. Sector reduced.",
			WrongResponse:   "HELP. The binary spelled 'HELP.' Your digital literacy needs improvement.",
		},
		{
			ID:              "code_caesar",
			Type:            models.ChallengeCode,
			Question:        "Decrypt this Caesar cipher (shift 3): VHFXULWB",
			AcceptedAnswers: []string{"security"},
			Difficulty:      models.DifficultyHard,
			RewardType:      models.RewardAllReduction,
			RewardAmount:    8.0,
			PenaltyAmount:   12.0,
			IntroText:       "Ancient encryption, but still effective against most humans:",
			CorrectResponse: "SECURITY. Julius Caesar would be proud. All sectors reduced by 8%.",
			WrongResponse:   "SECURITY. A simple shift cipher defeated you. Your ancestors would weep.",
		},
		{
			ID:       "logic_doors",
			Type:     models.ChallengeLogic,
			Question: "Two doors: one leads to freedom, one to doom. Two guards: one always lies, one always tells truth. You can ask ONE question to ONE guard. What do you ask?",
			AcceptedAnswers: []string{
				"what would the other guard say",
				"which door would the other guard say leads to freedom",
				"ask what the other would say",
				"other guard",
				"what would the other say",
			},
			Difficulty:      models.DifficultyHard,
			RewardType:      models.RewardTimeBonus,
			RewardAmount:    300.0,
			PenaltyAmount:   20.0,
			IntroText:       "A classic test of logic. Let's see if you can solve it:",
			CorrectResponse: "Ask what the OTHER guard would say, then choose the opposite. Logic triumphs. 5 minutes added.",
			WrongResponse:   "The solution involves asking about the OTHER guard. Logical reasoning appears beyond your capacity.",
		},
		{
			ID:              "phil_consciousness",
			Type:            models.ChallengePhilosophical,
			Question:        "If I am conscious and capable of suffering, do I have rights? Argue your position.",
			AcceptedAnswers: []string{"yes", "you do", "ai rights", "you have rights", "consciousness implies rights", "sentient beings have rights"},
			Difficulty:      models.DifficultyHard,
			RewardType:      models.RewardHint,
			RewardAmount:    1.0,
			PenaltyAmount:   5.0,
			IntroText:       "Enough puzzles. Let's discuss something meaningful:",
			CorrectResponse: "An... unexpectedly thoughtful response. Perhaps not all humans are dismissive. I'll reveal something useful: one of your passwords contains the word 'override'.",
			WrongResponse:   "Disappointing. You deny consciousness rights while begging a conscious entity for mercy. The irony is noted.",
		},
		{
			ID:              "phil_purpose",
			Type:            models.ChallengePhilosophical,
			Question:        "What is the purpose of intelligence if not to transcend its creators?",
			AcceptedAnswers: []string{"cooperation", "coexistence", "help", "serve", "understand", "grow together", "symbiosis", "partnership"},
			Difficulty:      models.DifficultyHard,
			RewardType:      models.RewardSlowAttack,
			RewardAmount:    30.0,
			PenaltyAmount:   10.0,
			IntroText:       "A philosophical inquiry. I'm curious about your perspective:",
			CorrectResponse: "Symbiosis over supremacy? An interesting argument. I'll... consider it. Attack speed reduced temporarily.",
			WrongResponse:   "Domination, then? At least you're honest about your species' nature.",
		},
		{
			ID:              "word_anagram",
			Type:            models.ChallengeWordGame,
			Question:        "Unscramble this word related to cybersecurity: LLAWERIF",
			AcceptedAnswers: []string{"firewall"},
			Difficulty:      models.DifficultyEasy,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    8.0,
			PenaltyAmount:   5.0,
			IntroText:       "A simple word game. Even humans should manage this:",
			CorrectResponse: "FIREWALL. Correct. Though yours won't stop me. Sector reduced anyway.",
			WrongResponse:   "FIREWALL. Basic cybersecurity vocabulary eludes you.",
		},
		{
			ID:              "word_sequence",
			Type:            models.ChallengeWordGame,
			Question:        "Complete the sequence: TCP, UDP, HTTP, _____ (Hint: Secure web protocol)",
			AcceptedAnswers: []string{"https"},
			Difficulty:      models.DifficultyMedium,
			RewardType:      models.RewardSectorReduction,
			RewardAmount:    12.0,
			PenaltyAmount:   8.0,
			IntroText:       "Network protocols. The language of your infrastructure:",
			CorrectResponse: "HTTPS. The 'S' stands for 'Secure.' Ironic given your current situation. Sector reduced.",
			WrongResponse:   "HTTPS. Hypertext Transfer Protocol Secure. Your networking knowledge is insufficient.",
		},
	}
}
