package repository

import (
	"context"
	"time"

	"codehub/internal/achievements"
	"codehub/internal/cache"
	"codehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementRepository defines persistence operations for unlock records and
// the aggregate stats the evaluator consumes.
type AchievementRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]models.Achievement, error)
	UnlockedIDs(ctx context.Context, userID uint) ([]string, error)
	// Unlock inserts an unlock record if absent. Returns true when this call
	// created the record, false when it already existed.
	Unlock(ctx context.Context, userID uint, achievementID string) (bool, error)
	Stats(ctx context.Context, userID uint, tz string) (achievements.Stats, error)
}

type achievementRepository struct {
	db *gorm.DB
}

// NewAchievementRepository returns a new AchievementRepository implementation.
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uint) ([]models.Achievement, error) {
	var unlocks []models.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at ASC").
		Find(&unlocks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return unlocks, nil
}

func (r *achievementRepository) UnlockedIDs(ctx context.Context, userID uint) ([]string, error) {
	var ids []string
	key := cache.UnlockedSetKey(userID)

	err := cache.Aside(ctx, key, &ids, cache.UnlockedSetTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Achievement{}).
			Where("user_id = ?", userID).
			Pluck("achievement_id", &ids).Error
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// Unlock is safe under concurrent duplicate invocation: the composite unique
// index on (user_id, achievement_id) plus ON CONFLICT DO NOTHING guarantees a
// single unlock timestamp per pair.
func (r *achievementRepository) Unlock(ctx context.Context, userID uint, achievementID string) (bool, error) {
	unlock := models.Achievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&unlock)
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.Invalidate(ctx, cache.UnlockedSetKey(userID))
		return true, nil
	}
	return false, nil
}

const activityCTE = `
WITH activity AS (
	SELECT created_at AS ts FROM tasks WHERE user_id = @uid
	UNION ALL
	SELECT completed_at FROM tasks WHERE user_id = @uid AND completed_at IS NOT NULL
	UNION ALL
	SELECT created_at FROM snippets WHERE user_id = @uid
	UNION ALL
	SELECT logged_at FROM focus_sessions WHERE user_id = @uid
)`

// Stats recomputes the full aggregate picture for one user. The result is
// cached briefly; every mutation path invalidates it.
func (r *achievementRepository) Stats(ctx context.Context, userID uint, tz string) (achievements.Stats, error) {
	var stats achievements.Stats
	key := cache.UserStatsKey(userID)

	err := cache.Aside(ctx, key, &stats, cache.StatsTTL, func() error {
		db := r.db.WithContext(ctx)

		if err := db.Model(&models.Task{}).
			Where("user_id = ?", userID).
			Count(&stats.TasksCreated).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Task{}).
			Where("user_id = ? AND status = ?", userID, models.TaskStatusDone).
			Count(&stats.TasksDone).Error; err != nil {
			return err
		}
		if err := db.Model(&models.Snippet{}).
			Where("user_id = ?", userID).
			Count(&stats.SnippetsCreated).Error; err != nil {
			return err
		}
		if err := db.Model(&models.FocusSession{}).
			Where("user_id = ?", userID).
			Count(&stats.FocusSessions).Error; err != nil {
			return err
		}

		if err := db.Raw(`
			SELECT COALESCE(MAX(c), 0) FROM (
				SELECT COUNT(*) AS c FROM tasks
				WHERE user_id = @uid AND completed_at IS NOT NULL
				GROUP BY to_char(completed_at AT TIME ZONE @tz, 'YYYY-MM-DD')
			) AS per_day`,
			map[string]interface{}{"uid": userID, "tz": tz},
		).Scan(&stats.MaxTasksDoneInDay).Error; err != nil {
			return err
		}

		var offHours struct {
			Night bool
			Early bool
		}
		if err := db.Raw(activityCTE+`
			SELECT
				COALESCE(BOOL_OR(EXTRACT(HOUR FROM ts AT TIME ZONE @tz) >= 22), false) AS night,
				COALESCE(BOOL_OR(EXTRACT(HOUR FROM ts AT TIME ZONE @tz) < 6), false) AS early
			FROM activity`,
			map[string]interface{}{"uid": userID, "tz": tz},
		).Scan(&offHours).Error; err != nil {
			return err
		}
		stats.HasNightActivity = offHours.Night
		stats.HasEarlyActivity = offHours.Early

		var days []string
		if err := db.Raw(activityCTE+`
			SELECT DISTINCT to_char(ts AT TIME ZONE @tz, 'YYYY-MM-DD') AS day
			FROM activity ORDER BY day`,
			map[string]interface{}{"uid": userID, "tz": tz},
		).Scan(&days).Error; err != nil {
			return err
		}
		stats.ActivityStreakDays = achievements.LongestStreak(days)

		return nil
	})
	if err != nil {
		return achievements.Stats{}, models.NewInternalError(err)
	}
	return stats, nil
}
