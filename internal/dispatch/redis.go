package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"postsched/internal/common"
	"postsched/internal/config"
	"postsched/internal/monitoring"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const (
	scheduleKey = "dispatch:schedule" // sorted set: token scored by fire time
	payloadKey  = "dispatch:payload"  // hash: token -> json payload
)

// RedisDispatcher durably queues jobs in a redis sorted set scored by their
// fire time. A polling loop claims due tokens with ZREM, which makes claims
// race-safe across processes: whichever poller removes the member runs it.
type RedisDispatcher struct {
	rdb          *redis.Client
	executor     common.JobExecutor
	pollInterval time.Duration
	clock        common.Clock
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	started      bool
	mu           sync.Mutex
}

func NewRedisDispatcher(rdb *redis.Client, pollInterval time.Duration, clock common.Clock) *RedisDispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	return &RedisDispatcher{
		rdb:          rdb,
		pollInterval: pollInterval,
		clock:        clock,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (d *RedisDispatcher) Start(executor common.JobExecutor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	d.executor = executor

	d.wg.Add(1)
	go d.pollLoop()
}

func (d *RedisDispatcher) Submit(ctx context.Context, runAt time.Time, payload common.JobPayload) (string, error) {
	token := uuid.NewString()

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode job payload: %w", err)
	}

	pipe := d.rdb.TxPipeline()
	pipe.HSet(ctx, payloadKey, token, data)
	pipe.ZAdd(ctx, scheduleKey, redis.Z{Score: float64(runAt.Unix()), Member: token})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to submit job: %w", err)
	}

	monitoring.DispatcherJobsTotal.WithLabelValues("submitted").Inc()
	return token, nil
}

func (d *RedisDispatcher) Cancel(ctx context.Context, token string) error {
	pipe := d.rdb.TxPipeline()
	removed := pipe.ZRem(ctx, scheduleKey, token)
	pipe.HDel(ctx, payloadKey, token)
	if _, err := pipe.Exec(ctx); err != nil {
		// Best-effort: the execute-time fencing check is the real safety net.
		log.WithError(err).Warn("job cancellation failed")
		return nil
	}

	if removed.Val() > 0 {
		monitoring.DispatcherJobsTotal.WithLabelValues("cancelled").Inc()
	}
	return nil
}

func (d *RedisDispatcher) pollLoop() {
	defer d.wg.Done()

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.runDueJobs()
		case <-d.ctx.Done():
			return
		}
	}
}

func (d *RedisDispatcher) runDueJobs() {
	now := strconv.FormatInt(d.clock.Now().Unix(), 10)

	tokens, err := d.rdb.ZRangeByScore(d.ctx, scheduleKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil {
		log.WithError(err).Error("failed to poll due jobs")
		return
	}

	for _, token := range tokens {
		claimed, err := d.rdb.ZRem(d.ctx, scheduleKey, token).Result()
		if err != nil || claimed == 0 {
			continue // another poller got it, or a cancel raced us
		}

		data, err := d.rdb.HGet(d.ctx, payloadKey, token).Result()
		d.rdb.HDel(d.ctx, payloadKey, token)
		if err != nil {
			log.WithField("token", token).WithError(err).Error("claimed job has no payload")
			continue
		}

		var payload common.JobPayload
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			log.WithField("token", token).WithError(err).Error("failed to decode job payload")
			continue
		}

		monitoring.DispatcherJobsTotal.WithLabelValues("fired").Inc()
		if err := d.executor.Execute(d.ctx, payload); err != nil {
			log.WithFields(log.Fields{
				"owner_id": payload.OwnerID,
				"entry_id": payload.EntryID,
			}).WithError(err).Error("job execution failed")
		}
	}
}

func (d *RedisDispatcher) Shutdown() {
	d.cancel()
	d.wg.Wait()
	log.Info("redis dispatcher shutdown complete")
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
