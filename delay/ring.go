package delay

import (
	"fmt"
	"sync"

	"github.com/wavefold/kuramoto/matrix"
)

// RingSize is K in spec §3: the fixed number of delay snapshot slots.
const RingSize = 32

// Ring holds K flat snapshots of a field's phases, each of length
// cellCount = L*R*C (spec §3 "Delay ring"). A cursor advances monotonically
// modulo K; Push overwrites the slot the cursor currently points at, then
// advances it, matching the spec's "at step start, snapshot at i is
// overwritten ... then i ← (i+1) mod K".
type Ring struct {
	mu        sync.RWMutex
	snapshots *matrix.Plane // shape (1, RingSize, cellCount)
	cellCount int
	cursor    int
}

// New allocates a Ring for fields with cellCount = L*R*C cells.
func New(cellCount int) (*Ring, error) {
	if cellCount <= 0 {
		return nil, ErrInvalidCellCount
	}
	plane, err := matrix.NewPlane(1, RingSize, cellCount)
	if err != nil {
		return nil, fmt.Errorf("delay: New: %w", err)
	}
	return &Ring{snapshots: plane, cellCount: cellCount}, nil
}

// CellCount returns the number of f32 values per snapshot.
func (r *Ring) CellCount() int { return r.cellCount }

// Cursor returns the ring's current write position, for diagnostics.
func (r *Ring) Cursor() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cursor
}

// Push copies theta into the slot the cursor currently points at, then
// advances the cursor modulo RingSize. len(theta) must equal CellCount().
func (r *Ring) Push(theta []float32) error {
	if len(theta) != r.cellCount {
		return fmt.Errorf("delay: Push: got %d want %d: %w", len(theta), r.cellCount, ErrSnapshotSizeMismatch)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	raw := r.snapshots.Raw()
	base := r.snapshots.Index(0, r.cursor, 0)
	copy(raw[base:base+r.cellCount], theta)
	r.cursor = (r.cursor + 1) % RingSize
	return nil
}

// Read returns the snapshot taken d steps ago: slot (cursor - d + K) mod K,
// d ∈ [1, K-1] (spec §3 "To sample delay d"). The returned slice aliases the
// ring's backing storage and must not be mutated by the caller.
func (r *Ring) Read(d int) ([]float32, error) {
	if d < 1 || d >= RingSize {
		return nil, fmt.Errorf("delay: Read(%d): %w", d, ErrInvalidDelay)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot := ((r.cursor-d)%RingSize + RingSize) % RingSize
	base := r.snapshots.Index(0, slot, 0)
	raw := r.snapshots.Raw()
	return raw[base : base+r.cellCount], nil
}

// Reset zeroes every snapshot and resets the cursor to 0.
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots.Fill(0)
	r.cursor = 0
}

// RawSnapshots returns a copy of every slot's backing storage, RingSize *
// CellCount() values long, for a caller persisting full ring state (e.g.
// simulation.Snapshot).
func (r *Ring) RawSnapshots() []float32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]float32(nil), r.snapshots.Raw()...)
}

// LoadRaw installs data (as produced by RawSnapshots) and cursor as the
// ring's full state, for simulation.Restore.
func (r *Ring) LoadRaw(data []float32, cursor int) error {
	if len(data) != RingSize*r.cellCount {
		return fmt.Errorf("delay: LoadRaw: got %d values, want %d", len(data), RingSize*r.cellCount)
	}
	if cursor < 0 || cursor >= RingSize {
		return fmt.Errorf("delay: LoadRaw: cursor %d out of range", cursor)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copy(r.snapshots.Raw(), data)
	r.cursor = cursor
	return nil
}
