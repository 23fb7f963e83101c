package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultResultTTL is how long an unclaimed result is kept.
const DefaultResultTTL = 15 * time.Minute

// ResultStore keeps one serialized document per session until it is downloaded
// or expires. It is safe for concurrent use.
type ResultStore struct {
	mu      sync.Mutex
	results map[string]storedResult
	ttl     time.Duration
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

type storedResult struct {
	data    []byte
	expires time.Time
}

// NewResultStore creates a store and starts its expiry janitor. Call Close to stop it.
func NewResultStore(ttl time.Duration) *ResultStore {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	s := &ResultStore{
		results: make(map[string]storedResult),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go s.janitor(ttl / 2)
	return s
}

// NewToken returns a fresh opaque session token.
func NewToken() string {
	return uuid.NewString()
}

// ValidToken reports whether token looks like one issued by NewToken.
func ValidToken(token string) bool {
	_, err := uuid.Parse(token)
	return err == nil
}

// Put stores data for token, replacing any earlier result of that session.
func (s *ResultStore) Put(token string, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[token] = storedResult{data: buf, expires: s.now().Add(s.ttl)}
}

// Take returns the result for token and forgets it. The second return value is
// false when nothing (or only an expired result) is stored.
func (s *ResultStore) Take(token string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.results[token]
	if !ok {
		return nil, false
	}
	delete(s.results, token)
	if !s.now().Before(res.expires) {
		return nil, false
	}
	return res.data, true
}

// Has reports whether an unexpired result is pending for token.
func (s *ResultStore) Has(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.results[token]
	return ok && s.now().Before(res.expires)
}

// Len returns the number of stored results, expired ones included.
func (s *ResultStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}

// Sweep removes expired results and returns how many were dropped.
func (s *ResultStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	dropped := 0
	for token, res := range s.results {
		if !now.Before(res.expires) {
			delete(s.results, token)
			dropped++
		}
	}
	return dropped
}

// Close stops the janitor. It is safe to call more than once.
func (s *ResultStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *ResultStore) janitor(interval time.Duration) {
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
