package api

import (
	"log/slog"

	"github.com/blacksite-games/incursion-engine/internal/models"
)

// resolveChallenge applies the reward or penalty carried by a verify result.
// The challenge session only adjudicates; consequences land here so every
// reward type can reach the engine or the hub.
func (s *Server) resolveChallenge(result *models.VerifyResult) {
	if result.Correct && result.Reward != nil {
		s.applyReward(result.Reward)
	}
	if !result.Correct && result.Penalty != nil {
		s.applyPenalty(result.Penalty)
	}

	s.missions.LogEvent("challenge_resolved", map[string]any{
		"challenge_id": result.ChallengeID,
		"correct":      result.Correct,
	})
}

func (s *Server) applyReward(reward *models.Reward) {
	switch reward.Type {
	case models.RewardTimeBonus:
		s.engine.AddTimeBonus(int(reward.Amount))
		slog.Info("time bonus granted", "seconds", int(reward.Amount))

	case models.RewardSectorReduction:
		target := reward.TargetSector
		if target == "" {
			// No fixed target: pick any sector still in play.
			id, ok := s.engine.RandomUnsecuredSector()
			if !ok {
				slog.Info("sector reduction skipped, all sectors secured")
				return
			}
			target = id
		}
		if _, err := s.engine.AdjustSector(target, -reward.Amount, false); err != nil {
			slog.Warn("sector reduction failed", "sector", target, "error", err)
			return
		}
		slog.Info("sector reduction granted", "sector", target, "amount", reward.Amount)

	case models.RewardAllReduction:
		s.engine.AdjustAllSectors(-reward.Amount)
		slog.Info("all-sector reduction granted", "amount", reward.Amount)

	case models.RewardSlowAttack:
		// Temporary attack slowdown is not wired into the tick loop yet;
		// record it so operators can apply it manually.
		slog.Info("slow attack reward earned", "seconds", int(reward.Amount))
		s.missions.LogEvent("slow_attack_earned", map[string]any{
			"seconds": int(reward.Amount),
		})

	case models.RewardHint:
		s.hub.BroadcastHint("A password hint has been unlocked. Check with your operator.")
		slog.Info("hint reward granted")

	default:
		slog.Warn("unknown reward type", "type", reward.Type)
	}
}

func (s *Server) applyPenalty(penalty *models.Penalty) {
	if penalty.Amount <= 0 {
		return
	}
	s.engine.AdjustAllSectors(penalty.Amount)
	slog.Info("penalty applied", "amount", penalty.Amount)
}
