//go:build wireinject
// +build wireinject

package di

import (
	"postsched/internal/account"
	"postsched/internal/api"
	"postsched/internal/common"
	"postsched/internal/config"
	"postsched/internal/dbmysql"
	"postsched/internal/dispatch"
	"postsched/internal/scheduler"
	"postsched/internal/syncer"
	"postsched/internal/twitter"

	"github.com/google/wire"
)

// This is just a declaration — wire generates the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		common.NewSystemClock,
		dbmysql.NewMySQL,
		dbmysql.NewPostRepository,
		dbmysql.NewScheduleEntryRepository,
		dbmysql.NewSyncCursorRepository,
		dbmysql.NewAccountRepository,
		dbmysql.NewCredentialRepository,
		dispatch.NewRedisClient,
		ProvideRedisDispatcher,
		wire.Bind(new(common.Dispatcher), new(*dispatch.RedisDispatcher)),
		twitter.NewClient,
		wire.Bind(new(common.RemoteClient), new(*twitter.Client)),
		scheduler.NewScheduleService,
		account.NewService,
		syncer.NewReconciler,
		wire.Bind(new(api.SyncTrigger), new(*syncer.Reconciler)),
		api.NewHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
