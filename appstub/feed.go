package appstub

import (
	"sync"
	"time"
)

// Post is one community feed entry.
type Post struct {
	ID        uint64
	Username  string
	Content   string
	ImageName string
	CreatedAt time.Time
}

// Notification is one notification center entry.
type Notification struct {
	ID        uint64
	Email     string
	Content   string
	Read      bool
	CreatedAt time.Time
}

// ring is a thread-safe bounded store. Old entries are overwritten once the
// capacity is reached; reads return the newest entries first.
type ring[T any] struct {
	buffer     []T
	size       uint64
	capacity   uint64
	writeIndex uint64
	mu         sync.RWMutex
}

func newRing[T any](capacity uint64) *ring[T] {
	if capacity == 0 {
		panic("capacity must be greater than 0")
	}
	return &ring[T]{
		buffer:   make([]T, capacity),
		capacity: capacity,
	}
}

// Add stores an entry, evicting the oldest when full. It returns the entry's
// sequence number, unique for the lifetime of the store.
func (r *ring[T]) Add(record T) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer[r.writeIndex%r.capacity] = record
	r.writeIndex++
	if r.size < r.capacity {
		r.size++
	}
	return r.writeIndex
}

// Recent returns up to n entries, newest first.
func (r *ring[T]) Recent(n uint64) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := min(n, r.size)
	if count == 0 {
		return []T{}
	}

	result := make([]T, count)
	for i := uint64(0); i < count; i++ {
		result[i] = r.buffer[(r.writeIndex-1-i)%r.capacity]
	}
	return result
}

// Update applies fn to every stored entry in place.
func (r *ring[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := r.writeIndex - r.size
	for i := uint64(0); i < r.size; i++ {
		fn(&r.buffer[(start+i)%r.capacity])
	}
}

// Size returns the current number of stored entries.
func (r *ring[T]) Size() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.size
}
