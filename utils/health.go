// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the last known reachability of the backing stores, served
// verbatim on /health.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	latestHealth HealthStatus
	healthMu     sync.RWMutex
)

// GetHealthStatus returns the most recent health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return latestHealth
}

// StartHealthMonitor pings Mongo and every Redis client on an interval and
// keeps the snapshot in memory. The first check runs immediately so /health
// is meaningful right after startup.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	check := func() {
		ctx := context.Background()

		redisUp := make([]bool, 0, len(redisClients))
		for _, client := range redisClients {
			redisUp = append(redisUp, client.Ping(ctx).Err() == nil)
		}

		snapshot := HealthStatus{
			Mongo:     mongoClient.Ping(ctx, nil) == nil,
			Redis:     redisUp,
			CheckedAt: time.Now(),
		}

		healthMu.Lock()
		latestHealth = snapshot
		healthMu.Unlock()
	}

	go func() {
		check()
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			check()
		}
	}()
}
