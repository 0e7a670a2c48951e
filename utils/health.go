package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	healthCheckInterval = 60 * time.Second
	healthCheckTimeout  = 5 * time.Second
)

// HealthStatus is the latest dependency-reachability snapshot, keyed by
// dependency name.
type HealthStatus struct {
	Dependencies map[string]bool `json:"dependencies"`
	CheckedAt    time.Time       `json:"checkedAt"`
}

var (
	healthMu      sync.RWMutex
	currentHealth = HealthStatus{Dependencies: map[string]bool{}}
)

// GetHealthStatus returns the most recent snapshot taken by the monitor.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()

	deps := make(map[string]bool, len(currentHealth.Dependencies))
	for name, ok := range currentHealth.Dependencies {
		deps[name] = ok
	}
	return HealthStatus{Dependencies: deps, CheckedAt: currentHealth.CheckedAt}
}

// StartHealthMonitor pings every dependency on a fixed interval and keeps the
// result in memory for the health endpoint. A failed check is logged and
// reflected in the snapshot; the monitor itself never stops.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		logger := GetLogger()
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
			deps := make(map[string]bool, len(redisClients)+1)

			if err := mongoClient.Ping(ctx, nil); err != nil {
				logger.Warn("MongoDB health check failed", zap.Error(err))
				deps["mongo"] = false
			} else {
				deps["mongo"] = true
			}

			for name, client := range redisClients {
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("Redis health check failed",
						zap.String("client", name), zap.Error(err))
					deps[name] = false
				} else {
					deps[name] = true
				}
			}
			cancel()

			healthMu.Lock()
			currentHealth = HealthStatus{Dependencies: deps, CheckedAt: time.Now()}
			healthMu.Unlock()
		}
	}()
}
