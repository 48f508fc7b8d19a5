package handlers

import (
	"sync"

	"networth-sim/internal/simulation"

	"github.com/google/uuid"
)

// ResultStore keeps recent run results in memory so clients can fetch a run's
// series after receiving a summary-only response. Oldest entries are evicted
// once the cap is reached; this is a convenience cache, not persistence.
type ResultStore struct {
	mu      sync.Mutex
	max     int
	order   []string
	results map[string]*simulation.Result
}

// NewResultStore creates a store keeping at most max results.
func NewResultStore(max int) *ResultStore {
	if max <= 0 {
		max = 100
	}
	return &ResultStore{
		max:     max,
		results: make(map[string]*simulation.Result),
	}
}

// Put stores a result and returns its id.
func (st *ResultStore) Put(res *simulation.Result) string {
	id := uuid.New().String()

	st.mu.Lock()
	defer st.mu.Unlock()

	for len(st.order) >= st.max {
		oldest := st.order[0]
		st.order = st.order[1:]
		delete(st.results, oldest)
	}
	st.order = append(st.order, id)
	st.results[id] = res
	return id
}

// Get returns the stored result for id, if still cached.
func (st *ResultStore) Get(id string) (*simulation.Result, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	res, ok := st.results[id]
	return res, ok
}
