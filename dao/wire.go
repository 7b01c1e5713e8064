package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewNoteDAO,
	NewPostDAO,
	NewLikeDAO,
	NewComment,
	NewAchievementDAO,
	NewPoint,
)
