//go:build wireinject
// +build wireinject

package main

import (
	"StudyHub/config"
	"StudyHub/dao"
	"StudyHub/dao/cache"
	"StudyHub/handler"
	"StudyHub/pkg/client"
	"StudyHub/pkg/database"
	"StudyHub/pkg/filestore"
	"StudyHub/pkg/server"
	"StudyHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		filestore.NewStore,
		config.ProvideStorageConfig,
		config.ProvideLedgerConfig,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.User), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
