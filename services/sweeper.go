package services

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

const sweepLockKey = "wedding:sweep:surat-jalan"

// Locker grants a short lease so only one replica sweeps per interval.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// RedisLocker takes the lease with SET NX PX.
type RedisLocker struct {
	Client *redis.Client
}

func (l RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	owner, _ := os.Hostname()
	return l.Client.SetNX(ctx, key, owner, ttl).Result()
}

type expiredNoteRemover interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// SuratJalanSweeper deletes delivery notes once their wedding day is over.
type SuratJalanSweeper struct {
	Notes    expiredNoteRemover
	Lock     Locker // nil: sweep on every tick
	Interval time.Duration
	Now      func() time.Time
}

func NewSuratJalanSweeper(notes expiredNoteRemover, lock Locker, interval time.Duration) *SuratJalanSweeper {
	return &SuratJalanSweeper{Notes: notes, Lock: lock, Interval: interval, Now: time.Now}
}

// Run sweeps once at start and then on every tick until ctx ends.
func (s *SuratJalanSweeper) Run(ctx context.Context) {
	if s.Interval <= 0 {
		log.Println("ℹ️ surat jalan sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
			log.Printf("❌ surat jalan sweep failed: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *SuratJalanSweeper) SweepOnce(ctx context.Context) (int, error) {
	if s.Lock != nil {
		ok, err := s.Lock.TryLock(ctx, sweepLockKey, s.Interval)
		if err != nil {
			// a second sweep of the same day deletes nothing
			log.Printf("⚠️ sweep lock unavailable, sweeping anyway: %v", err)
		} else if !ok {
			return 0, nil
		}
	}

	n, err := s.Notes.DeleteExpired(ctx, startOfDay(s.Now()))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("🧹 removed %d expired surat jalan", n)
	}
	return n, nil
}
