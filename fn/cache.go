package fn

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const numMemoShards = 16

// memoStore is the cache behind one memoized function. loadOrCompute holds
// the relevant lock across compute so two concurrent calls with the same key
// never both invoke the wrapped function.
type memoStore interface {
	loadOrCompute(key string, compute func() any) (v any, hit bool)
}

func newMemoStore(maxEntries uint32) memoStore {
	if maxEntries > 0 {
		return newRotatingStore(maxEntries)
	}
	return newShardedStore()
}

// shardedStore grows without bound for the lifetime of the memoized
// function and never evicts. Keys are spread over shards by xxhash so
// unrelated keys do not contend on one lock.
type shardedStore struct {
	shards [numMemoShards]*memoShard
}

type memoShard struct {
	mu    sync.Mutex
	memos map[string]any
}

func newShardedStore() *shardedStore {
	s := &shardedStore{}
	for i := range s.shards {
		s.shards[i] = &memoShard{memos: make(map[string]any)}
	}
	return s
}

func (s *shardedStore) loadOrCompute(key string, compute func() any) (any, bool) {
	shard := s.shards[xxhash.Sum64String(key)%numMemoShards]
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if v, ok := shard.memos[key]; ok {
		return v, true
	}
	v := compute()
	shard.memos[key] = v
	return v, false
}

// rotatingStore keeps at most maxSize live entries per generation. When the
// live generation fills, it becomes the read-only fallback and a fresh map
// takes writes, so an entry survives at most two rotations after its last
// store. Lookups consult the live generation first, then the fallback.
type rotatingStore struct {
	mu      sync.Mutex
	memos   [2]map[string]any
	headIdx int
	size    uint32
	maxSize uint32
}

func newRotatingStore(maxSize uint32) *rotatingStore {
	return &rotatingStore{
		memos:   [2]map[string]any{make(map[string]any), make(map[string]any)},
		maxSize: maxSize,
	}
}

func (r *rotatingStore) loadOrCompute(key string, compute func() any) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.memos[r.headIdx][key]; ok {
		return v, true
	}
	if v, ok := r.memos[1-r.headIdx][key]; ok {
		return v, true
	}

	v := compute()
	if r.size == r.maxSize {
		r.headIdx = 1 - r.headIdx
		r.memos[r.headIdx] = make(map[string]any)
		r.size = 0
	}
	r.memos[r.headIdx][key] = v
	r.size++
	return v, false
}
