package scheduler

import (
	"time"

	"github.com/JustTro11/property-management/internal/infrastructure/cache"
	"github.com/JustTro11/property-management/pkg/logger"
	"github.com/JustTro11/property-management/pkg/security/auth"
	"go.uber.org/zap"
)

// Scheduler runs background maintenance: expired sessions are purged hourly
// and cache hit metrics roll over at midnight.
type Scheduler struct {
	sessions *auth.SessionStore
	cache    *cache.RedisClient
	logger   *logger.Logger
	done     chan struct{}
}

func NewScheduler(sessions *auth.SessionStore, redisCache *cache.RedisClient, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		sessions: sessions,
		cache:    redisCache,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	// Run immediately at startup
	s.cleanupSessions()

	go s.sessionCleanupLoop()

	// Calculate time until next midnight
	now := time.Now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	timeUntilMidnight := nextMidnight.Sub(now)

	s.logger.Info("Maintenance scheduler initialized",
		zap.Time("current_time", now),
		zap.Time("next_metrics_rollover", nextMidnight),
		zap.Duration("time_until_rollover", timeUntilMidnight),
	)

	go runDailyAt(time.After(timeUntilMidnight), 24*time.Hour, s.done, s.rolloverCacheMetrics)
}

// runDailyAt runs task once when first fires, then on every interval
// tick until done closes. The first firing runs the task itself rather
// than only arming the ticker, so the initial boundary is not skipped.
func runDailyAt(first <-chan time.Time, interval time.Duration, done <-chan struct{}, task func()) {
	select {
	case <-first:
		task()
	case <-done:
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			task()
		case <-done:
			return
		}
	}
}

// Stop terminates the background loops.
func (s *Scheduler) Stop() {
	close(s.done)
}

func (s *Scheduler) sessionCleanupLoop() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cleanupSessions()
		case <-s.done:
			return
		}
	}
}

func (s *Scheduler) cleanupSessions() {
	startTime := time.Now()
	s.sessions.CleanupExpiredSessions()
	s.logger.Info("Purged expired sessions",
		zap.Duration("duration", time.Since(startTime)),
	)
}

func (s *Scheduler) rolloverCacheMetrics() {
	if s.cache == nil {
		return
	}
	metrics := s.cache.GetMetrics()
	s.logger.Info("Daily cache metrics rollover",
		zap.Any("hits", metrics["hits"]),
		zap.Any("misses", metrics["misses"]),
		zap.Any("hit_rate", metrics["hit_rate"]),
	)
	s.cache.ResetCacheMetrics()
}
