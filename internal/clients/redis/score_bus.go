package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/gigifypro-backend/internal/domain"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

const defaultChannel = "gigscore"

type ScoreBus interface {
	Publish(ctx context.Context, evt types.ScoreEvent) error
	StartForwarder(ctx context.Context, onMsg func(evt types.ScoreEvent)) error
	Close() error
}

type scoreBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

func NewScoreBus(log *logger.Logger, addr, channel string) (ScoreBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newScoreBus(log, rdb, channel), nil
}

func newScoreBus(log *logger.Logger, rdb *goredis.Client, channel string) *scoreBus {
	ch := strings.TrimSpace(channel)
	if ch == "" {
		ch = defaultChannel
	}
	return &scoreBus{
		log:     log.With("service", "RedisScoreBus"),
		rdb:     rdb,
		channel: ch,
	}
}

func (b *scoreBus) Publish(ctx context.Context, evt types.ScoreEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis score bus not initialized")
	}
	raw, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

// StartForwarder subscribes and hands every decoded event to onMsg until ctx ends.
func (b *scoreBus) StartForwarder(ctx context.Context, onMsg func(evt types.ScoreEvent)) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("redis score bus not initialized")
	}
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				var evt types.ScoreEvent
				if err := json.Unmarshal([]byte(m.Payload), &evt); err != nil {
					b.log.Warn("bad score bus payload", "error", err)
					continue
				}
				onMsg(evt)
			}
		}
	}()

	return nil
}

func (b *scoreBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
