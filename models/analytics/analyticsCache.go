package analytics

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/gradways/crm_backend/config"
	"bitbucket.org/gradways/crm_backend/utils"
	"github.com/bsm/redislock"
	"github.com/sirupsen/logrus"
)

// Dashboard responses are cached briefly keyed by endpoint + filter + bounds
// + actor identity. The engine itself stays stateless; handlers consult the
// cache before invoking it and populate it afterward.

func dashboardCacheEnabled() bool {
	v := strings.TrimSpace(os.Getenv("ENABLE_DASHBOARD_CACHE"))
	return v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "yes") || strings.EqualFold(v, "on")
}

func dashboardCacheTTL() time.Duration {
	// Env: DASHBOARD_CACHE_TTL_SECONDS (default 30s)
	ttl := 30
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}

func dashboardSlowMs() int64 {
	// Env: DASHBOARD_SLOW_MS (default 500ms)
	ms := int64(500)
	if v := strings.TrimSpace(os.Getenv("DASHBOARD_SLOW_MS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			ms = n
		}
	}
	return ms
}

// CacheKey builds the cache key for one aggregate request.
func CacheKey(endpoint, filter, beforeDate, afterDate string, actorId int, role string) string {
	return fmt.Sprintf("dashboard:%s:%s:%s:%s:%d:%s", endpoint, filter, beforeDate, afterDate, actorId, role)
}

func LogSlowAggregate(ctx context.Context, name string, started time.Time, extra map[string]any) {
	d := time.Since(started)
	if d.Milliseconds() < dashboardSlowMs() {
		return
	}
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	fields := logrus.Fields{
		"aggregate":      name,
		"ms":             d.Milliseconds(),
		"correlation_id": cid,
	}
	for k, v := range extra {
		fields[k] = v
	}
	config.GetLogger().WithFields(fields).Warn("slow aggregate")
}

func CacheGet[T any](key string, dest *T) (bool, error) {
	if !dashboardCacheEnabled() {
		return false, nil
	}
	return config.GetRedisObject(key, dest)
}

func CacheSet(key string, obj any) error {
	if !dashboardCacheEnabled() {
		return nil
	}
	return config.SetRedisObject(key, obj, dashboardCacheTTL())
}

// WithComputeLock serializes expensive recomputation per cache key so a burst
// of identical requests does not stampede the database. Lock acquisition is
// best effort: if Redis is unavailable or the lock is held past the wait
// window, the computation proceeds without it.
func WithComputeLock[T any](ctx context.Context, key string, compute func() (T, error)) (T, error) {
	locker := config.GetRedisLock()
	if locker == nil {
		return compute()
	}
	lock, err := locker.Obtain(ctx, "lock:"+key, 10*time.Second, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 20),
	})
	if err != nil {
		return compute()
	}
	defer lock.Release(ctx)
	return compute()
}
