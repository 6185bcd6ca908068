package service

import (
	"context"
	"log/slog"

	"codehub/internal/achievements"
	"codehub/internal/middleware"
	"codehub/internal/models"
	"codehub/internal/repository"
)

// AchievementService runs the threshold evaluator against a user's current
// stats and persists newly crossed unlocks.
type AchievementService struct {
	achievementRepo repository.AchievementRepository
	timezone        string
}

// CheckResult is the outcome of one evaluator run.
type CheckResult struct {
	Stats           achievements.Stats `json:"stats"`
	Unlocked        []string           `json:"unlocked"`
	NewAchievements []string           `json:"new_achievements"`
}

// NewAchievementService returns an AchievementService. The timezone is the
// IANA name used for day bucketing of activity-derived stats.
func NewAchievementService(achievementRepo repository.AchievementRepository, timezone string) *AchievementService {
	return &AchievementService{achievementRepo: achievementRepo, timezone: timezone}
}

func (s *AchievementService) ListUnlocks(ctx context.Context, userID uint) ([]models.Achievement, error) {
	return s.achievementRepo.ListByUser(ctx, userID)
}

// Check evaluates every catalog predicate against the user's current stats and
// persists the unlocks that newly crossed their threshold.
//
// Calling Check twice with no intervening activity yields an empty
// NewAchievements the second time, and an unlock never leaves the Unlocked set
// no matter how the counters move afterwards.
func (s *AchievementService) Check(ctx context.Context, userID uint) (*CheckResult, error) {
	stats, err := s.achievementRepo.Stats(ctx, userID, s.timezone)
	if err != nil {
		return nil, err
	}

	unlockedIDs, err := s.achievementRepo.UnlockedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlocked := make(map[string]bool, len(unlockedIDs))
	for _, id := range unlockedIDs {
		unlocked[id] = true
	}

	newlyUnlocked := []string{}
	for _, id := range achievements.Candidates(stats, unlocked) {
		// Each unlock attempt is independent: one failure must not block the
		// remaining candidates.
		inserted, unlockErr := s.achievementRepo.Unlock(ctx, userID, id)
		if unlockErr != nil {
			middleware.Logger.ErrorContext(ctx, "achievement unlock failed",
				slog.String("achievement_id", id),
				slog.Any("user_id", userID),
				slog.String("error", unlockErr.Error()),
			)
			continue
		}
		// A lost race (inserted == false) means a concurrent request already
		// unlocked it; it is part of the set but not "new" for this call.
		if inserted {
			newlyUnlocked = append(newlyUnlocked, id)
		}
		unlocked[id] = true
	}

	allUnlocked := make([]string, 0, len(unlocked))
	for _, def := range achievements.Catalog {
		if unlocked[def.ID] {
			allUnlocked = append(allUnlocked, def.ID)
		}
	}

	return &CheckResult{
		Stats:           stats,
		Unlocked:        allUnlocked,
		NewAchievements: newlyUnlocked,
	}, nil
}

// CheckAfterMutation runs Check as a best-effort side channel after a primary
// mutation already succeeded. It never returns an error; failures are logged
// and an empty list is returned so the mutation response stays intact.
func (s *AchievementService) CheckAfterMutation(ctx context.Context, userID uint) []string {
	result, err := s.Check(ctx, userID)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "achievement evaluation failed",
			slog.Any("user_id", userID),
			slog.String("error", err.Error()),
		)
		return []string{}
	}
	return result.NewAchievements
}
