package curriculum

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// CreateSection appends a new section to the course
func (m *Manager) CreateSection(ctx context.Context, title string) (Section, error) {
	if m.isClosed() {
		return Section{}, ErrClosed
	}

	section := Section{
		CourseID: m.courseID,
		Title:    strings.TrimSpace(title),
	}
	if err := check(m.validate, &section); err != nil {
		return Section{}, err
	}

	created, err := m.backend.CreateSection(ctx, m.courseID, section)
	if err != nil {
		return Section{}, &RequestError{Op: "create section", Err: err}
	}
	if err := m.guard(ctx); err != nil {
		return created, err
	}

	m.store.appendSection(created)
	return created, nil
}

// UpdateSection renames a section and reloads the curriculum
func (m *Manager) UpdateSection(ctx context.Context, sectionID uint, title string) (Section, error) {
	if m.isClosed() {
		return Section{}, ErrClosed
	}
	if _, ok := m.store.Section(sectionID); !ok {
		return Section{}, fmt.Errorf("%w: %d", ErrUnknownSection, sectionID)
	}

	title = strings.TrimSpace(title)
	if err := m.validate.Var(title, "required,max=200,excludesall=<>{}"); err != nil {
		return Section{}, invalid("title", "is required, at most 200 characters, without <>{}")
	}

	updated, err := m.backend.PatchSection(ctx, sectionID, SectionPatch{Title: &title})
	if err != nil {
		return Section{}, &RequestError{Op: "update section", Err: err}
	}
	return updated, m.Load(ctx)
}

// DeleteSection deletes a section and all of its content after confirmation,
// then reloads the curriculum.
func (m *Manager) DeleteSection(ctx context.Context, sectionID uint) error {
	if m.isClosed() {
		return ErrClosed
	}
	section, ok := m.store.Section(sectionID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSection, sectionID)
	}

	prompt := fmt.Sprintf("Delete section %q and all of its content? This cannot be undone.", section.Title)
	if !m.confirmed(ctx, prompt) {
		return ErrNotConfirmed
	}

	if err := m.backend.DeleteSection(ctx, sectionID); err != nil {
		return &RequestError{Op: "delete section", Err: err}
	}
	m.logger.Printf("[CURRICULUM] section %d deleted", sectionID)
	return m.Load(ctx)
}

// SortSections gives the sections the order of orderedIDs. Each section is
// patched with its own request and the requests are not atomic: when some
// fail, the others stay applied and one aggregate error is returned. The
// curriculum is reloaded either way.
func (m *Manager) SortSections(ctx context.Context, orderedIDs []uint) error {
	if m.isClosed() {
		return ErrClosed
	}

	current := m.store.Sections()
	if len(orderedIDs) != len(current) {
		return invalid("sections", "every section must be listed exactly once")
	}
	known := make(map[uint]bool, len(current))
	for _, sec := range current {
		known[sec.ID] = true
	}
	for _, id := range orderedIDs {
		if !known[id] {
			return invalid("sections", "every section must be listed exactly once")
		}
		delete(known, id)
	}

	errs := make([]error, len(orderedIDs))
	var wg sync.WaitGroup
	for i, id := range orderedIDs {
		order := i
		sectionID := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.backend.PatchSection(ctx, sectionID, SectionPatch{Order: &order}); err != nil {
				errs[order] = fmt.Errorf("section %d: %w", sectionID, err)
			}
		}()
	}
	wg.Wait()

	var sortErr error
	if err := errors.Join(errs...); err != nil {
		sortErr = &RequestError{Op: "sort sections", Err: err}
	}
	if err := m.Load(ctx); err != nil && sortErr == nil {
		return err
	}
	return sortErr
}
