package curriculum

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Load fetches the section list and then the content of every section in
// parallel. A section whose content cannot be fetched is left empty with its
// error recorded; the others load normally and a *PartialLoadError is returned.
func (m *Manager) Load(ctx context.Context) error {
	if m.isClosed() {
		return ErrClosed
	}

	sections, err := m.backend.ListSections(ctx, m.courseID)
	if err != nil {
		return &RequestError{Op: "list sections", Err: err}
	}
	if err := m.guard(ctx); err != nil {
		return err
	}

	m.store.setSections(sections)
	return m.loadAll(ctx, m.store.Sections())
}

// RefreshSection refetches one section and fully replaces its content
func (m *Manager) RefreshSection(ctx context.Context, sectionID uint) error {
	if m.isClosed() {
		return ErrClosed
	}

	seq := m.store.beginFetch(sectionID)
	items, err := m.fetchSection(ctx, sectionID)
	if !m.apply(ctx, sectionID, seq, items, err) {
		if gerr := m.guard(ctx); gerr != nil {
			return gerr
		}
	}
	return err
}

func (m *Manager) loadAll(ctx context.Context, sections []Section) error {
	var (
		g      errgroup.Group
		mu     sync.Mutex
		failed = make(map[uint]error)
	)

	for _, sec := range sections {
		sectionID := sec.ID
		seq := m.store.beginFetch(sectionID)
		g.Go(func() error {
			items, err := m.fetchSection(ctx, sectionID)
			if err != nil {
				mu.Lock()
				failed[sectionID] = err
				mu.Unlock()
			}
			m.apply(ctx, sectionID, seq, items, err)
			return nil
		})
	}
	_ = g.Wait()

	if err := m.guard(ctx); err != nil {
		return err
	}
	if len(failed) > 0 {
		for id, err := range failed {
			m.logger.Printf("[CURRICULUM] section %d failed to load: %v", id, err)
		}
		return &PartialLoadError{Sections: failed}
	}
	return nil
}

// fetchSection lists the three collections of a section concurrently, tags
// each item with the collection it came from and merges them.
func (m *Manager) fetchSection(ctx context.Context, sectionID uint) ([]ContentItem, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([][]ContentItem, len(ContentTypes))

	for i, t := range ContentTypes {
		i, t := i, t
		g.Go(func() error {
			items, err := m.backend.ListContent(gctx, sectionID, t)
			if err != nil {
				return fmt.Errorf("list %s: %w", t, err)
			}
			for j := range items {
				items[j].Type = t
				items[j].SectionID = sectionID
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, &RequestError{Op: fmt.Sprintf("load section %d", sectionID), Err: err}
	}

	var all []ContentItem
	for _, items := range results {
		all = append(all, items...)
	}
	return mergeContent(all), nil
}

// apply writes a fetch result unless the manager was closed, the caller went
// away, or a newer fetch of the section was issued.
func (m *Manager) apply(ctx context.Context, sectionID uint, seq uint64, items []ContentItem, err error) bool {
	if m.guard(ctx) != nil {
		m.logger.Printf("[CURRICULUM] late response for section %d ignored", sectionID)
		return false
	}
	if !m.store.applyFetch(sectionID, seq, items, err) {
		m.logger.Printf("[CURRICULUM] stale response for section %d dropped", sectionID)
		return false
	}
	return true
}

func (m *Manager) guard(ctx context.Context) error {
	if m.isClosed() {
		return ErrClosed
	}
	return ctx.Err()
}
