package di

import (
	"time"

	"postsched/internal/api"
	"postsched/internal/common"
	"postsched/internal/config"
	"postsched/internal/dispatch"
	"postsched/internal/scheduler"
	"postsched/internal/syncer"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Application struct {
	Config     *config.Config
	DB         *gorm.DB
	Dispatcher *dispatch.RedisDispatcher
	Scheduler  scheduler.ScheduleService
	Reconciler *syncer.Reconciler
	Handler    *api.Handler
}

func ProvideRedisDispatcher(rdb *redis.Client, cfg *config.Config, clock common.Clock) *dispatch.RedisDispatcher {
	return dispatch.NewRedisDispatcher(
		rdb,
		time.Duration(cfg.Scheduler.PollIntervalSec)*time.Second,
		clock,
	)
}
