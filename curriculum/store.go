package curriculum

import (
	"sort"
	"sync"
)

// Store holds the loaded curriculum: the section list and the merged content
// of every section. Reads return copies. Only the fetch path and the reorder
// engine write to it.
type Store struct {
	mu         sync.RWMutex
	sections   []Section
	content    map[uint][]ContentItem
	errs       map[uint]error
	seq        map[uint]uint64
	reordering map[uint]bool
	held       map[uint]bool
}

func newStore() *Store {
	return &Store{
		content:    make(map[uint][]ContentItem),
		errs:       make(map[uint]error),
		seq:        make(map[uint]uint64),
		reordering: make(map[uint]bool),
		held:       make(map[uint]bool),
	}
}

// Sections returns the sections in display order
func (s *Store) Sections() []Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Section(nil), s.sections...)
}

// Section returns one section and whether it is loaded
func (s *Store) Section(id uint) (Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// Content returns the merged items of a section in display order
func (s *Store) Content(sectionID uint) []ContentItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.content[sectionID])
}

// SectionError returns the error of the last fetch of a section, if it failed
func (s *Store) SectionError(sectionID uint) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errs[sectionID]
}

// IsReordering reports whether a reorder of the section is being persisted
func (s *Store) IsReordering(sectionID uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reordering[sectionID]
}

// setSections replaces the section list and forgets content of sections that are gone
func (s *Store) setSections(sections []Section) {
	sorted := append([]Section(nil), sections...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Order != sorted[j].Order {
			return sorted[i].Order < sorted[j].Order
		}
		return sorted[i].ID < sorted[j].ID
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = sorted

	keep := make(map[uint]bool, len(sorted))
	for _, sec := range sorted {
		keep[sec.ID] = true
	}
	for id := range s.content {
		if !keep[id] {
			delete(s.content, id)
			delete(s.errs, id)
		}
	}
}

// appendSection adds a newly created section with no content
func (s *Store) appendSection(sec Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = append(s.sections, sec)
	s.content[sec.ID] = []ContentItem{}
	delete(s.errs, sec.ID)
}

// beginFetch issues the sequence number a fetch result must carry to be applied
func (s *Store) beginFetch(sectionID uint) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reordering[sectionID] {
		s.held[sectionID] = true
	}
	s.seq[sectionID]++
	return s.seq[sectionID]
}

// applyFetch fully replaces a section's content with a fetch result. Results
// older than the latest issued sequence number are dropped. A result arriving
// while a reorder of the section is being persisted is held back, and
// endReorder reports that the section needs fetching again.
func (s *Store) applyFetch(sectionID uint, seq uint64, items []ContentItem, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq[sectionID] != seq {
		return false
	}
	if s.reordering[sectionID] {
		s.held[sectionID] = true
		return false
	}
	if err != nil {
		s.content[sectionID] = []ContentItem{}
		s.errs[sectionID] = err
		return true
	}
	s.content[sectionID] = cloneItems(items)
	delete(s.errs, sectionID)
	return true
}

// replaceContent is the reorder engine's write. It also invalidates any fetch
// of the section still in flight.
func (s *Store) replaceContent(sectionID uint, items []ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[sectionID]++
	s.content[sectionID] = cloneItems(items)
}

// beginReorder marks the section busy; false if it already was
func (s *Store) beginReorder(sectionID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reordering[sectionID] {
		return false
	}
	s.reordering[sectionID] = true
	return true
}

// endReorder clears the busy mark and reports whether a fetch result was held
// back meanwhile
func (s *Store) endReorder(sectionID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reordering, sectionID)
	held := s.held[sectionID]
	delete(s.held, sectionID)
	return held
}

func cloneItems(items []ContentItem) []ContentItem {
	if items == nil {
		return nil
	}
	return append(make([]ContentItem, 0, len(items)), items...)
}

// mergeContent orders the three collections of a section into one list
func mergeContent(items []ContentItem) []ContentItem {
	merged := cloneItems(items)
	if merged == nil {
		merged = []ContentItem{}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if a.Type != b.Type {
			return a.Type.rank() < b.Type.rank()
		}
		return a.ID < b.ID
	})
	return merged
}
