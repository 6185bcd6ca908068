package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userStatsKeyPrefix    = "user:%d:stats"
	unlockedSetKeyPrefix  = "user:%d:achievements"
	snippetListKeyPrefix  = "user:%d:snippets"
	focusHistoryKeyPrefix = "user:%d:focus"
)

const (
	// StatsTTL is short because every mutation changes the counters anyway;
	// explicit invalidation is the primary mechanism, TTL is the backstop.
	StatsTTL        = 2 * time.Minute
	UnlockedSetTTL  = 5 * time.Minute
	SnippetListTTL  = 2 * time.Minute
	FocusHistoryTTL = 2 * time.Minute
)

func UserStatsKey(userID uint) string {
	return fmt.Sprintf(userStatsKeyPrefix, userID)
}

func UnlockedSetKey(userID uint) string {
	return fmt.Sprintf(unlockedSetKeyPrefix, userID)
}

func SnippetListKey(userID uint) string {
	return fmt.Sprintf(snippetListKeyPrefix, userID)
}

func FocusHistoryKey(userID uint) string {
	return fmt.Sprintf(focusHistoryKeyPrefix, userID)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client == nil {
		return
	}
	for _, key := range keys {
		client.Del(ctx, key)
	}
}

// InvalidateUserActivity drops every cached aggregate derived from a user's
// activity. Called after any mutation that can move a counter.
func InvalidateUserActivity(ctx context.Context, userID uint) {
	Invalidate(ctx,
		UserStatsKey(userID),
		UnlockedSetKey(userID),
		SnippetListKey(userID),
		FocusHistoryKey(userID),
	)
}
