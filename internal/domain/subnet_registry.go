package domain

import (
	"log/slog"
	"net/netip"
	"sync"
)

// RegistryOption configures a subnet registry.
type RegistryOption func(*subnetRegistry)

// WithOverlapRejection makes Add refuse subnets that overlap one
// already registered. Off by default: overlapping subnets may coexist
// and lookups resolve them by first match.
func WithOverlapRejection() RegistryOption {
	return func(r *subnetRegistry) { r.rejectOverlaps = true }
}

type subnetRegistry struct {
	mu             sync.RWMutex
	records        []SubnetRecord
	store          SubnetStore
	logger         *slog.Logger
	rejectOverlaps bool
}

// NewSubnetRegistry returns a registry backed by store. It starts
// empty; call LoadAll to hydrate it from disk. Registry ids grow
// monotonically: the next id is always max(existing)+1, so ids of
// deleted records are never reused.
func NewSubnetRegistry(store SubnetStore, logger *slog.Logger, opts ...RegistryOption) SubnetRegistry {
	r := &subnetRegistry{
		store:  store,
		logger: logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *subnetRegistry) LoadAll() []SubnetRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load()
	if err != nil {
		r.logger.Warn("subnet registry unreadable, starting empty", "err", err.Error())
		records = nil
	}
	r.records = records
	return copySubnetRecords(r.records)
}

func (r *subnetRegistry) GetAll() []SubnetRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySubnetRecords(r.records)
}

func (r *subnetRegistry) Add(rec SubnetRecord) bool {
	valid, err := NewSubnetRecord(rec.CIDR, rec.VLANID, rec.VLANName, rec.SiteName)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.CIDR == valid.CIDR {
			return false
		}
	}
	if r.rejectOverlaps && r.overlapsLocked(valid.CIDR, 0) {
		return false
	}

	valid.ID = r.nextIDLocked()
	r.records = append(r.records, valid)
	r.persistLocked()
	return true
}

func (r *subnetRegistry) Update(rec SubnetRecord) bool {
	valid, err := NewSubnetRecord(rec.CIDR, rec.VLANID, rec.VLANName, rec.SiteName)
	if err != nil {
		return false
	}
	valid.ID = rec.ID

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, existing := range r.records {
		if existing.ID == valid.ID {
			idx = i
			continue
		}
		if existing.CIDR == valid.CIDR {
			return false
		}
	}
	if idx < 0 {
		return false
	}
	if r.rejectOverlaps && r.overlapsLocked(valid.CIDR, valid.ID) {
		return false
	}

	r.records[idx] = valid
	r.persistLocked()
	return true
}

func (r *subnetRegistry) Delete(ids ...int) bool {
	if len(ids) == 0 {
		return false
	}
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]SubnetRecord, 0, len(r.records))
	removed := false
	for _, rec := range r.records {
		if _, ok := drop[rec.ID]; ok {
			removed = true
			continue
		}
		kept = append(kept, rec)
	}
	if !removed {
		return false
	}

	r.records = kept
	r.persistLocked()
	return true
}

func (r *subnetRegistry) FindContaining(ip string) (SubnetRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return FindContaining(ip, r.records)
}

// nextIDLocked returns max(existing ids)+1, or 1 for an empty
// registry. Caller holds mu.
func (r *subnetRegistry) nextIDLocked() int {
	maxID := 0
	for _, rec := range r.records {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}
	return maxID + 1
}

func (r *subnetRegistry) overlapsLocked(cidr string, skipID int) bool {
	p, err := netip.ParsePrefix(cidr)
	if err != nil {
		return false
	}
	for _, rec := range r.records {
		if rec.ID == skipID {
			continue
		}
		q, err := netip.ParsePrefix(rec.CIDR)
		if err != nil || !q.Addr().Is4() {
			continue
		}
		if p.Overlaps(q) {
			return true
		}
	}
	return false
}

// persistLocked writes the registry through to its store. A failed
// write is logged and swallowed: the in-memory state stays
// authoritative and the operation that triggered it still counts.
func (r *subnetRegistry) persistLocked() {
	if err := r.store.Save(r.records); err != nil {
		r.logger.Error("persisting subnet registry failed", "err", err.Error())
	}
}

func copySubnetRecords(records []SubnetRecord) []SubnetRecord {
	out := make([]SubnetRecord, len(records))
	copy(out, records)
	return out
}
