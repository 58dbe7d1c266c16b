package curriculum

import (
	"context"
	"fmt"
	"strings"
)

// CreateContent creates an unpublished lesson, quiz or assignment and refreshes
// its section. The server places it at the end. item.Type and item.SectionID
// are required.
func (m *Manager) CreateContent(ctx context.Context, item ContentItem) (ContentItem, error) {
	if m.isClosed() {
		return ContentItem{}, ErrClosed
	}

	item.ID = 0
	item.Title = strings.TrimSpace(item.Title)
	item.IsPublished = false
	item.SortOrder = 0
	if err := checkContent(m.validate, &item); err != nil {
		return ContentItem{}, err
	}

	created, err := m.backend.CreateContent(ctx, item)
	if err != nil {
		return ContentItem{}, &RequestError{Op: "create " + string(item.Type), Err: err}
	}
	created.Type = item.Type
	return created, m.RefreshSection(ctx, item.SectionID)
}

// BeginContentEdit fetches the full record of an item as an editable draft
func (m *Manager) BeginContentEdit(ctx context.Context, t ContentType, id uint) (ContentItem, error) {
	if m.isClosed() {
		return ContentItem{}, ErrClosed
	}
	if !t.Valid() {
		return ContentItem{}, fmt.Errorf("%w: %q", ErrUnknownContentType, t)
	}

	draft, err := m.backend.GetContent(ctx, t, id)
	if err != nil {
		return ContentItem{}, &RequestError{Op: fmt.Sprintf("get %s %d", t, id), Err: err}
	}
	draft.Type = t
	if err := draft.normalize(); err != nil {
		return ContentItem{}, err
	}
	return draft, nil
}

// SubmitContentEdit sends the complete edited record and refreshes its section
func (m *Manager) SubmitContentEdit(ctx context.Context, draft ContentItem) (ContentItem, error) {
	if m.isClosed() {
		return ContentItem{}, ErrClosed
	}
	if draft.ID == 0 {
		return ContentItem{}, invalid("id", "draft was not loaded with BeginContentEdit")
	}

	draft.Title = strings.TrimSpace(draft.Title)
	if err := checkContent(m.validate, &draft); err != nil {
		return ContentItem{}, err
	}

	updated, err := m.backend.UpdateContent(ctx, draft)
	if err != nil {
		return ContentItem{}, &RequestError{Op: fmt.Sprintf("update %s %d", draft.Type, draft.ID), Err: err}
	}
	updated.Type = draft.Type
	return updated, m.RefreshSection(ctx, draft.SectionID)
}

// DeleteContent deletes an item after confirmation and refreshes its section.
// Deleting a quiz deletes its questions.
func (m *Manager) DeleteContent(ctx context.Context, item ContentItem) error {
	if m.isClosed() {
		return ErrClosed
	}
	if !item.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownContentType, item.Type)
	}

	prompt := fmt.Sprintf("Delete %s %q? This cannot be undone.", item.Type, item.Title)
	if !m.confirmed(ctx, prompt) {
		return ErrNotConfirmed
	}

	if err := m.backend.DeleteContent(ctx, item.Type, item.ID); err != nil {
		return &RequestError{Op: fmt.Sprintf("delete %s %d", item.Type, item.ID), Err: err}
	}
	m.logger.Printf("[CURRICULUM] %s %d deleted from section %d", item.Type, item.ID, item.SectionID)
	return m.RefreshSection(ctx, item.SectionID)
}

// SetPublished publishes or unpublishes an item and refreshes its section
func (m *Manager) SetPublished(ctx context.Context, item ContentItem, published bool) error {
	if m.isClosed() {
		return ErrClosed
	}
	if !item.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownContentType, item.Type)
	}

	if _, err := m.backend.SetPublished(ctx, item.Type, item.ID, published); err != nil {
		return &RequestError{Op: fmt.Sprintf("publish %s %d", item.Type, item.ID), Err: err}
	}
	return m.RefreshSection(ctx, item.SectionID)
}

// Course fetches the course with its instructor
func (m *Manager) Course(ctx context.Context) (Course, error) {
	course, err := m.backend.GetCourse(ctx, m.courseID)
	if err != nil {
		return Course{}, &RequestError{Op: "get course", Err: err}
	}
	return course, nil
}

// Instructors lists the instructors that can be assigned
func (m *Manager) Instructors(ctx context.Context) ([]Instructor, error) {
	instructors, err := m.backend.ListInstructors(ctx)
	if err != nil {
		return nil, &RequestError{Op: "list instructors", Err: err}
	}
	return instructors, nil
}

// AssignInstructor links an instructor to the course
func (m *Manager) AssignInstructor(ctx context.Context, instructorID uint) (Course, error) {
	if m.isClosed() {
		return Course{}, ErrClosed
	}
	if instructorID == 0 {
		return Course{}, invalid("instructor_id", "is required")
	}

	course, err := m.backend.AssignInstructor(ctx, m.courseID, instructorID)
	if err != nil {
		return Course{}, &RequestError{Op: "assign instructor", Err: err}
	}
	return course, nil
}
