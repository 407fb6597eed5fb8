package usecase

import (
	"context"
	"sync"
	"time"

	"letterpress_ops/internal/domain/entities"
	"letterpress_ops/internal/usecase/interfaces"
)

// StaffDirectory wraps a staff repository with TTL-based caching so staff
// lookups made while rendering orders do not hit DynamoDB every time.
// Misses are not cached.
type StaffDirectory struct {
	inner interfaces.IStaffRepository
	cache map[string]*staffEntry
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
}

type staffEntry struct {
	staff     entities.Staff
	expiresAt time.Time
}

var _ interfaces.IStaffRepository = (*StaffDirectory)(nil)

func NewStaffDirectory(inner interfaces.IStaffRepository, ttl time.Duration) *StaffDirectory {
	return &StaffDirectory{
		inner: inner,
		cache: make(map[string]*staffEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// GetByID returns the staff member, using the cache if the entry is fresh.
func (d *StaffDirectory) GetByID(ctx context.Context, id string) (entities.Staff, error) {
	d.mu.RLock()
	entry, ok := d.cache[id]
	d.mu.RUnlock()

	if ok && d.now().Before(entry.expiresAt) {
		return entry.staff, nil
	}

	s, err := d.inner.GetByID(ctx, id)
	if err != nil {
		return entities.Staff{}, err
	}
	if s.ID == "" {
		return s, nil
	}

	d.mu.Lock()
	d.cache[id] = &staffEntry{staff: s, expiresAt: d.now().Add(d.ttl)}
	d.mu.Unlock()

	return s, nil
}

// Invalidate drops one staff member from the cache.
func (d *StaffDirectory) Invalidate(id string) {
	d.mu.Lock()
	delete(d.cache, id)
	d.mu.Unlock()
}

// InvalidateAll clears the cache.
func (d *StaffDirectory) InvalidateAll() {
	d.mu.Lock()
	d.cache = make(map[string]*staffEntry)
	d.mu.Unlock()
}
