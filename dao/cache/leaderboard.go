package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 排行榜缓存过期时间
const leaderboardExpireAt = 60 * time.Second

const leaderboardPattern = "leaderboard:top:*"

type LeaderboardStorage struct {
	redis *redis.Client
}

func NewLeaderboardStorage(rds *redis.Client) *LeaderboardStorage {
	return &LeaderboardStorage{rds}
}

// Get 读取缓存的排行榜，未命中返回 false
// @params limit  榜单长度
// @params dst    反序列化目标
func (l *LeaderboardStorage) Get(ctx context.Context, limit int, dst any) (bool, error) {
	if l == nil || l.redis == nil {
		return false, nil
	}
	raw, err := l.redis.Get(ctx, l.name(limit)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Set 写入排行榜缓存
func (l *LeaderboardStorage) Set(ctx context.Context, limit int, value any) error {
	if l == nil || l.redis == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return l.redis.Set(ctx, l.name(limit), raw, leaderboardExpireAt).Err()
}

// Invalidate 积分变动后清除所有长度的榜单缓存
func (l *LeaderboardStorage) Invalidate(ctx context.Context) error {
	if l == nil || l.redis == nil {
		return nil
	}
	iter := l.redis.Scan(ctx, 0, leaderboardPattern, 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return l.redis.Del(ctx, keys...).Err()
}

func (l *LeaderboardStorage) name(limit int) string {
	return fmt.Sprintf("leaderboard:top:%d", limit)
}
