package bloom

import "sync"

// SyncFilter guards a Filter with a read/write lock so that Add may run
// concurrently with queries.
type SyncFilter struct {
	mu sync.RWMutex
	f  *Filter
}

func NewSyncFilter(f *Filter) *SyncFilter {
	return &SyncFilter{f: f}
}

func (s *SyncFilter) MBits() uint64 { return s.f.MBits() }
func (s *SyncFilter) K() uint32     { return s.f.K() }

func (s *SyncFilter) Add(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Add(data)
}

func (s *SyncFilter) AddUint64(v uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.AddUint64(v)
}

func (s *SyncFilter) PossiblyContains(data []byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.PossiblyContains(data)
}

func (s *SyncFilter) PossiblyContainsUint64(v uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.PossiblyContainsUint64(v)
}

func (s *SyncFilter) FillRatio() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.f.FillRatio()
}

func (s *SyncFilter) EstimatedFalsePositiveRate(inserted uint64) float64 {
	return s.f.EstimatedFalsePositiveRate(inserted)
}

func (s *SyncFilter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.f.Reset()
}
