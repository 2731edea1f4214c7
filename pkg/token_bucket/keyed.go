package token_bucket

import (
	"sync"
	"time"
)

// Keyed держит отдельное ведро на каждый ключ: курьера, администратора или адрес клиента.
// Ведра, простоявшие idleTTL и успевшие наполниться, удаляются при очередном Allow.
type Keyed struct {
	capacity   int
	refillRate float64
	idleTTL    time.Duration
	now        Clock

	mu        sync.Mutex
	buckets   map[string]*keyedEntry
	lastSweep time.Time
}

type keyedEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewKeyed(capacity int, refillRate float64, idleTTL time.Duration) *Keyed {
	return NewKeyedWithClock(capacity, refillRate, idleTTL, time.Now)
}

func NewKeyedWithClock(capacity int, refillRate float64, idleTTL time.Duration, now Clock) *Keyed {
	return &Keyed{
		capacity:   capacity,
		refillRate: refillRate,
		idleTTL:    idleTTL,
		now:        now,
		buckets:    make(map[string]*keyedEntry),
		lastSweep:  now(),
	}
}

func (k *Keyed) Allow(key string) bool {
	k.mu.Lock()
	now := k.now()
	k.sweep(now)

	entry, ok := k.buckets[key]
	if !ok {
		entry = &keyedEntry{bucket: NewTokenBucketWithClock(k.capacity, k.refillRate, k.now)}
		k.buckets[key] = entry
	}
	entry.lastSeen = now
	k.mu.Unlock()

	return entry.bucket.Allow()
}

// Len - число отслеживаемых ключей.
func (k *Keyed) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

// sweep вызывается под k.mu.
func (k *Keyed) sweep(now time.Time) {
	if k.idleTTL <= 0 || now.Sub(k.lastSweep) < k.idleTTL {
		return
	}
	k.lastSweep = now

	for key, entry := range k.buckets {
		if now.Sub(entry.lastSeen) >= k.idleTTL && entry.bucket.full() {
			delete(k.buckets, key)
		}
	}
}
