package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/extra/rediscmd/v9"
	r "github.com/redis/go-redis/v9"

	"github.com/placentalab/geocatalog/pkg/middleware/logger"
)

type Redis struct {
	Host     string
	Port     int
	Password string
	DB       int
}

var redisClient *r.Client

// InitRedis connects the cache client. Redis is a soft dependency: on
// failure the client stays nil and callers fall through to the store.
func InitRedis(ctx context.Context, conf *Redis) {
	client, err := initRedis(ctx, conf)
	if err != nil {
		logger.Warnf(ctx, "init redis fail, serving without cache err: %+v", err)
		return
	}
	redisClient = client
}

func CloseRedis(_ context.Context) {
	if redisClient != nil {
		_ = redisClient.Close()
		redisClient = nil
	}
}

func GetClient() *r.Client {
	return redisClient
}

func initRedis(ctx context.Context, conf *Redis) (*r.Client, error) {
	client := r.NewClient(&r.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})
	client.AddHook(&slowLogHook{threshold: 50 * time.Millisecond})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// slowLogHook logs commands slower than threshold.
type slowLogHook struct {
	threshold time.Duration
}

func (h *slowLogHook) DialHook(next r.DialHook) r.DialHook {
	return next
}

func (h *slowLogHook) ProcessHook(next r.ProcessHook) r.ProcessHook {
	return func(ctx context.Context, cmd r.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		if elapsed := time.Since(start); elapsed > h.threshold {
			logger.Warnf(ctx, "slow redis command (%s): %s", elapsed, rediscmd.CmdString(cmd))
		}
		return err
	}
}

func (h *slowLogHook) ProcessPipelineHook(next r.ProcessPipelineHook) r.ProcessPipelineHook {
	return func(ctx context.Context, cmds []r.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if elapsed := time.Since(start); elapsed > h.threshold {
			summary, _ := rediscmd.CmdsString(cmds)
			logger.Warnf(ctx, "slow redis pipeline (%s): %s", elapsed, summary)
		}
		return err
	}
}
