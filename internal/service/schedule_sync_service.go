package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"sillah/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrQuotaFull is returned when a schedule slot is fully booked
var ErrQuotaFull = errors.New("schedule quota is full")

// decrQuotaIncrQueueScript reserves one slot and returns the queue number as
// a single atomic Redis operation. The client switches to EVALSHA after the
// first call, which matters under booking bursts.
//
// Logic:
// 1. DECR quota key
// 2. If result < 0 -> INCR back (rollback) and return -1 (quota full)
// 3. If result >= 0 -> INCR queue key and return queue number
var decrQuotaIncrQueueScript = redis.NewScript(`
	local remaining = redis.call('DECR', KEYS[1])
	if remaining < 0 then
		redis.call('INCR', KEYS[1])
		return -1
	end
	local queue = redis.call('INCR', KEYS[2])
	return queue
`)

const (
	// Redis key prefixes for the appointment system
	RedisQuotaKeyPrefix = "schedule:quota:"
	RedisQueueKeyPrefix = "appointment:queue:"

	// Batch size for startup sync; the pipeline is created and executed
	// inside the batch loop to keep memory flat
	syncBatchSize = 500

	// Interval for cleaning up stale mutexes
	mutexCleanupInterval = 10 * time.Minute

	// How long a mutex must be unused before cleanup
	mutexStaleThreshold = 10 * time.Minute
)

// ScheduleSyncService keeps appointment schedule quotas mirrored between
// PostgreSQL and Redis. Redis is the source of truth while taking bookings;
// the database is re-synced into Redis at startup and on schedule changes.
type ScheduleSyncService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger

	// Per-schedule mutex for concurrent safety
	scheduleMu sync.Map // map[int]*mutexWithTimestamp

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// mutexWithTimestamp tracks mutex usage for cleanup
type mutexWithTimestamp struct {
	mu       sync.Mutex
	lastUsed atomic.Int64 // Unix timestamp
}

// QuotaResult holds quota sync data from database
type QuotaResult struct {
	ScheduleID     int
	TotalQuota     int
	RemainingQuota int
	MaxQueueNumber int
	ScheduleDate   time.Time
}

// NewScheduleSyncService creates a new ScheduleSyncService and starts the
// background mutex cleanup goroutine. Call Stop() during graceful shutdown.
func NewScheduleSyncService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) *ScheduleSyncService {
	svc := &ScheduleSyncService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		stopChan:    make(chan struct{}),
	}

	svc.wg.Add(1)
	go svc.cleanupMutexMapLoop()

	return svc
}

// Stop gracefully shuts down the service. Safe to call multiple times.
func (s *ScheduleSyncService) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("ScheduleSyncService stopped")
	}
}

// SyncOnStartup performs a full sync of all upcoming schedules from
// PostgreSQL to Redis. Queue counters are restored from
// MAX(queue_number) so numbers stay monotonic across restarts.
// Should be called before accepting traffic.
func (s *ScheduleSyncService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting Redis re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	offset := 0
	totalSynced := 0

	for {
		var results []QuotaResult

		err := s.db.Model(&entity.DoctorSchedule{}).
			Select(`
				doctor_schedules.id as schedule_id,
				doctor_schedules.total_quota,
				doctor_schedules.total_quota - COUNT(CASE WHEN appointments.status IS NOT NULL AND appointments.status != ? THEN 1 END) as remaining_quota,
				COALESCE(MAX(appointments.queue_number), 0) as max_queue_number,
				doctor_schedules.schedule_date
			`, string(entity.AppointmentStatusCancelled)).
			Joins("LEFT JOIN appointments ON appointments.schedule_id = doctor_schedules.id").
			Where("doctor_schedules.schedule_date >= ?", today).
			Group("doctor_schedules.id, doctor_schedules.total_quota, doctor_schedules.schedule_date").
			Order("doctor_schedules.id").
			Limit(syncBatchSize).
			Offset(offset).
			Scan(&results).Error

		if err != nil {
			s.log.Errorf("Failed to query schedules at offset %d: %+v", offset, err)
			return fmt.Errorf("query schedules at offset %d: %w", offset, err)
		}

		if len(results) == 0 {
			if offset == 0 {
				s.log.Info("No active schedules found for sync")
			}
			break
		}

		// New pipeline per batch to avoid accumulating commands in memory
		pipe := s.redisClient.TxPipeline()

		for _, result := range results {
			quotaKey := fmt.Sprintf("%s%d", RedisQuotaKeyPrefix, result.ScheduleID)
			queueKey := fmt.Sprintf("%s%d", RedisQueueKeyPrefix, result.ScheduleID)
			ttl := s.calculateTTL(result.ScheduleDate)

			pipe.Set(ctx, quotaKey, result.RemainingQuota, ttl)
			pipe.Set(ctx, queueKey, result.MaxQueueNumber, ttl)
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(results)
		s.log.Debugf("Synced batch: %d schedules", len(results))

		if len(results) < syncBatchSize {
			break
		}

		offset += syncBatchSize

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	elapsed := time.Since(startTime)
	s.log.Infof("Redis re-sync completed: %d schedules synced in %v", totalSynced, elapsed)

	return nil
}

// SyncScheduleQuota syncs a single schedule to Redis. Remaining quota is
// TotalQuota minus the count of non-cancelled appointments; the queue counter
// is restored from MAX(queue_number).
//
// Called by: CreateSchedule (initial sync)
func (s *ScheduleSyncService) SyncScheduleQuota(ctx context.Context, scheduleID int, totalQuota int, scheduleDate time.Time) error {
	mt := s.getScheduleMutex(scheduleID)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	// Skip past dates
	if scheduleDate.Before(today) {
		s.log.Debugf("Skipping sync for past schedule %d", scheduleID)
		return nil
	}

	type syncData struct {
		BookedCount    int64
		MaxQueueNumber int
	}
	var data syncData

	err := s.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("COUNT(*) as booked_count, COALESCE(MAX(queue_number), 0) as max_queue_number").
		Where("schedule_id = ? AND status != ?", scheduleID, entity.AppointmentStatusCancelled).
		Scan(&data).Error

	if err != nil {
		s.log.Warnf("Failed to query appointment data for schedule %d: %+v", scheduleID, err)
		return fmt.Errorf("query appointment data for schedule %d: %w", scheduleID, err)
	}

	remainingQuota := totalQuota - int(data.BookedCount)
	if remainingQuota < 0 {
		remainingQuota = 0
	}

	quotaKey := fmt.Sprintf("%s%d", RedisQuotaKeyPrefix, scheduleID)
	queueKey := fmt.Sprintf("%s%d", RedisQueueKeyPrefix, scheduleID)
	ttl := s.calculateTTL(scheduleDate)

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, quotaKey, remainingQuota, ttl)
	pipe.Set(ctx, queueKey, data.MaxQueueNumber, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to sync Redis for schedule %d: %+v", scheduleID, err)
		return fmt.Errorf("redis sync for schedule %d: %w", scheduleID, err)
	}

	s.log.Debugf("Synced schedule %d: quota=%d, queue=%d, TTL=%v", scheduleID, remainingQuota, data.MaxQueueNumber, ttl)
	return nil
}

// UpdateScheduleQuotaDelta updates the Redis quota with INCRBY when an admin
// changes TotalQuota. A negative delta is bounded so the quota never goes
// below zero.
//
// Called by: UpdateSchedule when TotalQuota changes
func (s *ScheduleSyncService) UpdateScheduleQuotaDelta(ctx context.Context, scheduleID int, delta int, scheduleDate time.Time) error {
	mt := s.getScheduleMutex(scheduleID)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	today := time.Now().UTC().Truncate(24 * time.Hour)

	if scheduleDate.Before(today) {
		s.log.Debugf("Skipping delta update for past schedule %d", scheduleID)
		return nil
	}

	quotaKey := fmt.Sprintf("%s%d", RedisQuotaKeyPrefix, scheduleID)
	ttl := s.calculateTTL(scheduleDate)

	if delta < 0 {
		currentQuota, err := s.redisClient.Get(ctx, quotaKey).Int()
		if err != nil && err != redis.Nil {
			s.log.Warnf("Failed to get current quota for schedule %d: %+v", scheduleID, err)
			return fmt.Errorf("get current quota for schedule %d: %w", scheduleID, err)
		}

		if currentQuota+delta < 0 {
			s.log.Warnf("Delta %d would result in negative quota (current: %d) for schedule %d", delta, currentQuota, scheduleID)
			delta = -currentQuota
		}
	}

	pipe := s.redisClient.TxPipeline()
	pipe.IncrBy(ctx, quotaKey, int64(delta))
	pipe.Expire(ctx, quotaKey, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to update quota delta for schedule %d: %+v", scheduleID, err)
		return fmt.Errorf("update quota delta for schedule %d: %w", scheduleID, err)
	}

	s.log.Debugf("Updated schedule %d quota by delta=%d", scheduleID, delta)
	return nil
}

// DeleteScheduleKeys removes quota and queue keys from Redis and drops the
// per-schedule mutex.
//
// Called by: DeleteSchedule after successful DB deletion
func (s *ScheduleSyncService) DeleteScheduleKeys(ctx context.Context, scheduleID int) error {
	mt := s.getScheduleMutex(scheduleID)
	mt.mu.Lock()
	defer func() {
		mt.mu.Unlock()
		s.scheduleMu.Delete(scheduleID)
	}()

	quotaKey := fmt.Sprintf("%s%d", RedisQuotaKeyPrefix, scheduleID)
	queueKey := fmt.Sprintf("%s%d", RedisQueueKeyPrefix, scheduleID)

	if err := s.redisClient.Del(ctx, quotaKey, queueKey).Err(); err != nil {
		s.log.Warnf("Failed to delete Redis keys for schedule %d: %+v", scheduleID, err)
		return fmt.Errorf("delete redis keys for schedule %d: %w", scheduleID, err)
	}

	s.log.Debugf("Deleted Redis keys for schedule %d", scheduleID)
	return nil
}

// DecrQuotaAndIncrQueue atomically reserves an appointment slot and returns
// the 1-based queue number. The Lua script runs atomically inside Redis, so
// no application mutex is needed on this hot path.
//
// Called by: BookAppointment usecase
func (s *ScheduleSyncService) DecrQuotaAndIncrQueue(ctx context.Context, scheduleID int) (int, error) {
	quotaKey := fmt.Sprintf("%s%d", RedisQuotaKeyPrefix, scheduleID)
	queueKey := fmt.Sprintf("%s%d", RedisQueueKeyPrefix, scheduleID)

	result, err := decrQuotaIncrQueueScript.Run(ctx, s.redisClient, []string{quotaKey, queueKey}).Int()
	if err != nil {
		s.log.Warnf("Failed Lua script DecrQuotaAndIncrQueue for schedule %d: %+v", scheduleID, err)
		return 0, fmt.Errorf("lua decrquota_incrqueue for schedule %d: %w", scheduleID, err)
	}

	if result == -1 {
		return 0, ErrQuotaFull
	}

	s.log.Debugf("Reserved slot for schedule %d: queue_number=%d", scheduleID, result)
	return result, nil
}

// RestoreQuota restores an appointment slot when an appointment is
// cancelled. Only the quota is incremented; queue numbers are monotonically
// increasing and never reused.
//
// Called by: CancelAppointment usecase and booking compensation
func (s *ScheduleSyncService) RestoreQuota(ctx context.Context, scheduleID int) error {
	mt := s.getScheduleMutex(scheduleID)
	mt.mu.Lock()
	defer mt.mu.Unlock()

	quotaKey := fmt.Sprintf("%s%d", RedisQuotaKeyPrefix, scheduleID)

	if err := s.redisClient.Incr(ctx, quotaKey).Err(); err != nil {
		s.log.Warnf("Failed to restore quota for schedule %d: %+v", scheduleID, err)
		return fmt.Errorf("restore quota for schedule %d: %w", scheduleID, err)
	}

	s.log.Debugf("Restored quota for schedule %d (cancel)", scheduleID)
	return nil
}

// calculateTTL returns how long the Redis keys for a schedule should live.
// Keys expire a day after the schedule date so stale schedules clean
// themselves up.
func (s *ScheduleSyncService) calculateTTL(scheduleDate time.Time) time.Duration {
	expireAt := scheduleDate.Add(48 * time.Hour)
	ttl := time.Until(expireAt)
	if ttl < time.Hour {
		ttl = time.Hour
	}
	return ttl
}

// getScheduleMutex returns mutex for a specific schedule ID
func (s *ScheduleSyncService) getScheduleMutex(scheduleID int) *mutexWithTimestamp {
	mt, _ := s.scheduleMu.LoadOrStore(scheduleID, &mutexWithTimestamp{})
	result := mt.(*mutexWithTimestamp)
	result.lastUsed.Store(time.Now().Unix())
	return result
}

// cleanupMutexMapLoop runs in background to clean stale mutexes
func (s *ScheduleSyncService) cleanupMutexMapLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(mutexCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Mutex cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleMutexes()
		}
	}
}

// cleanupStaleMutexes removes unused mutexes. The lastUsed check happens
// inside the lock so a concurrent user can't be swept away.
func (s *ScheduleSyncService) cleanupStaleMutexes() {
	cutoffTime := time.Now().Add(-mutexStaleThreshold).Unix()
	var cleaned int

	s.scheduleMu.Range(func(key, value any) bool {
		scheduleID, ok := key.(int)
		if !ok {
			return true
		}

		mt, ok := value.(*mutexWithTimestamp)
		if !ok {
			return true
		}

		if mt.mu.TryLock() {
			if mt.lastUsed.Load() < cutoffTime {
				s.scheduleMu.Delete(scheduleID)
				cleaned++
			}
			mt.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d stale mutexes", cleaned)
	}
}
