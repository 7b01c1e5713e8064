package service

import (
	"StudyHub/models"
	"StudyHub/types"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_OrderedByCredits(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "u300", 300)
	env.createUser(t, "u100", 100)
	env.createUser(t, "u200", 200)

	items, err := env.stats.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 3)

	credits := []int64{items[0].Credits, items[1].Credits, items[2].Credits}
	assert.Equal(t, []int64{300, 200, 100}, credits)
	assert.Equal(t, 1, items[0].Rank)
	assert.Equal(t, "u300", items[0].Username)
}

func TestLeaderboard_Limit(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 12; i++ {
		env.createUser(t, fmt.Sprintf("user%d", i), int64(i))
	}

	items, err := env.stats.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, items, DefaultLeaderboardLimit)

	items, err = env.stats.Leaderboard(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, int64(11), items[0].Credits)

	items, err = env.stats.Leaderboard(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, items, 12)
}

func TestGetUserStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "rich", 1000)
	author := env.createUser(t, "author", 0)
	fan := env.createUser(t, "fan", 0)

	n1 := env.createNote(t, author.ID, "one")
	n2 := env.createNote(t, author.ID, "two")
	for _, id := range []uint64{n1.ID, n2.ID} {
		_, err := env.likes.Like(ctx, models.TargetNote, id, fan.ID)
		require.NoError(t, err)
	}

	stats, err := env.stats.GetUserStats(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.NotesCount)
	assert.Equal(t, int64(2), stats.LikesReceived)
	assert.Equal(t, int64(125), stats.Credits)
	assert.Equal(t, int64(2), stats.Rank)

	fanStats, err := env.stats.GetUserStats(ctx, fan.ID)
	require.NoError(t, err)
	assert.Zero(t, fanStats.NotesCount)
	assert.Equal(t, int64(3), fanStats.Rank)

	_, err = env.stats.GetUserStats(ctx, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAchievements_MostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "alice", 0)

	for i := 0; i < 7; i++ {
		_, _, err := env.ledger.GrantAchievement(ctx, &types.AchievementGrant{
			UserID: user.ID,
			Type:   fmt.Sprintf("badge_%d", i),
			Title:  fmt.Sprintf("Badge %d", i),
		})
		require.NoError(t, err)
	}

	items, err := env.stats.GetAchievements(ctx, user.ID, 0)
	require.NoError(t, err)
	require.Len(t, items, DefaultAchievementLimit)
	assert.Equal(t, "badge_6", items[0].Type)
}
