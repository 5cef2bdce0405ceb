package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	userKeyPrefix        = "user:%d"
	userStatsKeyPrefix   = "user:%d:stats"
	unreadCountKeyPrefix = "user:%d:unread"
)

// Cache TTLs. Stats and unread counts are cheap to recompute, so they
// stay short-lived.
const (
	UserTTL   = 5 * time.Minute
	StatsTTL  = 1 * time.Minute
	UnreadTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}

func UserStatsKey(userID uint) string {
	return fmt.Sprintf(userStatsKeyPrefix, userID)
}

func UnreadCountKey(userID uint) string {
	return fmt.Sprintf(unreadCountKeyPrefix, userID)
}

// Invalidate deletes a key, best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUser drops all cached entries for a user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, UserStatsKey(userID))
	Invalidate(ctx, UnreadCountKey(userID))
}
