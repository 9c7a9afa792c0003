package app

import (
	"fmt"
	"strings"

	"github.com/yungbote/gigifypro-backend/internal/clients/redis"
	"github.com/yungbote/gigifypro-backend/internal/platform/logger"
)

type Clients struct {
	ScoreBus redis.ScoreBus
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis
	var bus redis.ScoreBus
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		b, err := redis.NewScoreBus(log, cfg.RedisAddr, cfg.RedisChannel)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis score bus: %w", err)
		}
		bus = b
	} else {
		log.Info("redis_addr not set, score events will not be published")
	}

	return Clients{ScoreBus: bus}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.ScoreBus != nil {
		_ = c.ScoreBus.Close()
	}
}
