package domain

import (
	"log/slog"
	"strings"
	"sync"
)

type siteRegistry struct {
	mu      sync.RWMutex
	records []SiteRecord
	store   SiteStore
	logger  *slog.Logger
}

// NewSiteRegistry returns a site registry backed by store. Unlike the
// subnet registry, site ids are gap-filled: Add assigns the smallest
// unused positive id, reusing ids freed by deletions.
func NewSiteRegistry(store SiteStore, logger *slog.Logger) SiteRegistry {
	return &siteRegistry{
		store:  store,
		logger: logger,
	}
}

func (r *siteRegistry) LoadAll() []SiteRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.store.Load()
	if err != nil {
		r.logger.Warn("site registry unreadable, starting empty", "err", err.Error())
		records = nil
	}
	r.records = records
	return copySiteRecords(r.records)
}

func (r *siteRegistry) GetAll() []SiteRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySiteRecords(r.records)
}

func (r *siteRegistry) Add(rec SiteRecord) bool {
	valid, err := NewSiteRecord(rec.Name, rec.Location, rec.Phone)
	if err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if strings.EqualFold(strings.TrimSpace(existing.Name), valid.Name) {
			return false
		}
	}

	valid.ID = r.nextIDLocked()
	r.records = append(r.records, valid)
	r.persistLocked()
	return true
}

func (r *siteRegistry) Delete(ids ...int) bool {
	if len(ids) == 0 {
		return false
	}
	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]SiteRecord, 0, len(r.records))
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

// nextIDLocked returns the smallest positive id not in use. Caller
// holds mu.
func (r *siteRegistry) nextIDLocked() int {
	used := make(map[int]struct{}, len(r.records))
	for _, rec := range r.records {
		used[rec.ID] = struct{}{}
	}
	for id := 1; ; id++ {
		if _, ok := used[id]; !ok {
			return id
		}
	}
}

func (r *siteRegistry) persistLocked() {
	if err := r.store.Save(r.records); err != nil {
		r.logger.Error("persisting site registry failed", "err", err.Error())
	}
}

func copySiteRecords(records []SiteRecord) []SiteRecord {
	out := make([]SiteRecord, len(records))
	copy(out, records)
	return out
}
