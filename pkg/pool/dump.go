package pool

import (
	"io"

	json "github.com/goccy/go-json"
)

// dumpSlot states as they appear in the JSON snapshot.
const (
	slotEmpty    = "empty"
	slotFree     = "free"
	slotOccupied = "occupied"
)

type dumpSnapshot struct {
	ObjectSize     int      `json:"object_size"`
	InitialCount   int      `json:"initial_count"`
	Growth         string   `json:"growth"`
	Allocation     string   `json:"allocation"`
	MaximumObjects int      `json:"maximum_objects"`
	ActiveObjects  int      `json:"active_objects"`
	ChunkSizes     []int    `json:"chunk_sizes,omitempty"`
	Slots          []string `json:"slots"`
}

// Dump writes a JSON snapshot of the pool's configuration, capacity, chunk
// topology, and per-slot occupancy to w. It is a diagnostic aid and does
// not mutate the pool. Dumping an uninitialized pool reports
// invalid_handle.
func (p *Pool) Dump(w io.Writer) error {
	if p == nil || p.closed {
		return p.failInvalid("dump of uninitialized pool")
	}

	snap := dumpSnapshot{
		ObjectSize:     p.cfg.ObjectSize,
		InitialCount:   p.cfg.InitialCount,
		Growth:         p.cfg.Growth.String(),
		Allocation:     p.cfg.Allocation.String(),
		MaximumObjects: len(p.table),
		Slots:          make([]string, len(p.table)),
	}
	for _, c := range p.chunks {
		snap.ChunkSizes = append(snap.ChunkSizes, len(c))
	}
	for i, s := range p.table {
		switch {
		case s == nil:
			snap.Slots[i] = slotEmpty
		case s.inUse:
			snap.Slots[i] = slotOccupied
			snap.ActiveObjects++
		default:
			snap.Slots[i] = slotFree
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
