package curriculum

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var errServer = errors.New("server said no")

// fakeBackend is an in-memory curriculum API
type fakeBackend struct {
	mu          sync.Mutex
	nextID      uint
	sections    map[uint]Section
	items       map[string]ContentItem
	questions   map[uint]Question
	course      Course
	instructors []Instructor
	calls       []string

	// failures and timing
	listErr    map[uint]error
	listDelay  map[ContentType]time.Duration
	patchErr   map[uint]error
	reorderErr error
	hold       chan struct{}
	reads      chan ContentType
	reorderHit chan struct{}
	reorderGo  chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		nextID:    100,
		sections:  make(map[uint]Section),
		items:     make(map[string]ContentItem),
		questions: make(map[uint]Question),
		course:    Course{ID: 1, Title: "Go Basics"},
		listErr:   make(map[uint]error),
		listDelay: make(map[ContentType]time.Duration),
		patchErr:  make(map[uint]error),
	}
}

func (f *fakeBackend) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) addSection(id uint, title string, order int) {
	f.sections[id] = Section{ID: id, CourseID: f.course.ID, Title: title, Order: order}
}

func (f *fakeBackend) addItem(item ContentItem) {
	_ = item.normalize()
	f.items[item.Key()] = item
}

func (f *fakeBackend) ListSections(ctx context.Context, courseID uint) ([]Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListSections %d", courseID)
	out := make([]Section, 0, len(f.sections))
	for _, s := range f.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBackend) CreateSection(ctx context.Context, courseID uint, section Section) (Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateSection %s", section.Title)
	f.nextID++
	section.ID = f.nextID
	section.CourseID = courseID
	section.Order = 0
	for _, s := range f.sections {
		if s.Order >= section.Order {
			section.Order = s.Order + 1
		}
	}
	f.sections[section.ID] = section
	return section, nil
}

func (f *fakeBackend) PatchSection(ctx context.Context, sectionID uint, patch SectionPatch) (Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("PatchSection %d", sectionID)
	if err := f.patchErr[sectionID]; err != nil {
		return Section{}, err
	}
	s, ok := f.sections[sectionID]
	if !ok {
		return Section{}, errors.New("section not found")
	}
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Order != nil {
		s.Order = *patch.Order
	}
	f.sections[sectionID] = s
	return s, nil
}

func (f *fakeBackend) DeleteSection(ctx context.Context, sectionID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteSection %d", sectionID)
	delete(f.sections, sectionID)
	for key, item := range f.items {
		if item.SectionID == sectionID {
			delete(f.items, key)
		}
	}
	return nil
}

// ListContent returns list-view summaries: no payload and no type tag
func (f *fakeBackend) ListContent(ctx context.Context, sectionID uint, t ContentType) ([]ContentItem, error) {
	f.mu.Lock()
	f.record("ListContent %d %s", sectionID, t)
	err := f.listErr[sectionID]
	delay := f.listDelay[t]
	hold := f.hold
	reads := f.reads
	var out []ContentItem
	for _, item := range f.items {
		if item.SectionID == sectionID && item.Type == t {
			item.Type = ""
			item.Lesson, item.Quiz, item.Assignment = nil, nil, nil
			out = append(out, item)
		}
	}
	f.mu.Unlock()

	if reads != nil {
		reads <- t
	}
	if hold != nil {
		<-hold
	}
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (f *fakeBackend) CreateContent(ctx context.Context, item ContentItem) (ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateContent %s %s", item.Type, item.Title)
	f.nextID++
	item.ID = f.nextID
	next := 0
	for _, other := range f.items {
		if other.SectionID == item.SectionID && other.SortOrder >= next {
			next = other.SortOrder + 1
		}
	}
	item.SortOrder = next
	f.items[item.Key()] = item
	return item, nil
}

func (f *fakeBackend) GetContent(ctx context.Context, t ContentType, id uint) (ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetContent %s %d", t, id)
	item, ok := f.items[fmt.Sprintf("%s:%d", t, id)]
	if !ok {
		return ContentItem{}, errors.New("content not found")
	}
	return clonePayload(item), nil
}

// clonePayload copies the payload so callers never share it with the fake
func clonePayload(item ContentItem) ContentItem {
	if item.Lesson != nil {
		l := *item.Lesson
		item.Lesson = &l
	}
	if item.Quiz != nil {
		q := *item.Quiz
		item.Quiz = &q
	}
	if item.Assignment != nil {
		a := *item.Assignment
		item.Assignment = &a
	}
	return item
}

func (f *fakeBackend) UpdateContent(ctx context.Context, item ContentItem) (ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateContent %s %d", item.Type, item.ID)
	stored, ok := f.items[item.Key()]
	if !ok {
		return ContentItem{}, errors.New("content not found")
	}
	item.SortOrder = stored.SortOrder
	item.IsPublished = stored.IsPublished
	f.items[item.Key()] = clonePayload(item)
	return item, nil
}

func (f *fakeBackend) DeleteContent(ctx context.Context, t ContentType, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteContent %s %d", t, id)
	delete(f.items, fmt.Sprintf("%s:%d", t, id))
	return nil
}

func (f *fakeBackend) SetPublished(ctx context.Context, t ContentType, id uint, published bool) (ContentItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SetPublished %s %d %v", t, id, published)
	key := fmt.Sprintf("%s:%d", t, id)
	item, ok := f.items[key]
	if !ok {
		return ContentItem{}, errors.New("content not found")
	}
	item.IsPublished = published
	f.items[key] = item
	return item, nil
}

func (f *fakeBackend) ReorderContent(ctx context.Context, sectionID uint, batch []OrderEntry) error {
	f.mu.Lock()
	f.record("ReorderContent %d %v", sectionID, batch)
	hit, release, err := f.reorderHit, f.reorderGo, f.reorderErr
	f.mu.Unlock()

	if hit != nil {
		hit <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, entry := range batch {
		key := fmt.Sprintf("%s:%d", entry.Type, entry.ID)
		item := f.items[key]
		item.SortOrder = entry.SortOrder
		f.items[key] = item
	}
	return nil
}

func (f *fakeBackend) ListQuestions(ctx context.Context, quizID uint) ([]Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListQuestions %d", quizID)
	var out []Question
	for _, q := range f.questions {
		if q.QuizID == quizID {
			out = append(out, cloneQuestion(q))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeBackend) CreateQuestion(ctx context.Context, quizID uint, q Question) (Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateQuestion %d", quizID)
	f.nextID++
	q.ID = f.nextID
	q.QuizID = quizID
	f.questions[q.ID] = cloneQuestion(q)
	return q, nil
}

func (f *fakeBackend) GetQuestion(ctx context.Context, questionID uint) (Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetQuestion %d", questionID)
	q, ok := f.questions[questionID]
	if !ok {
		return Question{}, errors.New("question not found")
	}
	return cloneQuestion(q), nil
}

func (f *fakeBackend) UpdateQuestion(ctx context.Context, q Question) (Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateQuestion %d", q.ID)
	if _, ok := f.questions[q.ID]; !ok {
		return Question{}, errors.New("question not found")
	}
	f.questions[q.ID] = cloneQuestion(q)
	return q, nil
}

func (f *fakeBackend) DeleteQuestion(ctx context.Context, questionID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteQuestion %d", questionID)
	delete(f.questions, questionID)
	return nil
}

func (f *fakeBackend) ListInstructors(ctx context.Context) ([]Instructor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Instructor(nil), f.instructors...), nil
}

func (f *fakeBackend) GetCourse(ctx context.Context, courseID uint) (Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.course, nil
}

func (f *fakeBackend) AssignInstructor(ctx context.Context, courseID, instructorID uint) (Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.instructors {
		if t.ID == instructorID {
			t := t
			f.course.InstructorID = &t.ID
			f.course.Instructor = &t
			return f.course, nil
		}
	}
	return Course{}, errors.New("instructor not found")
}

func countCalls(calls []string, prefix string) int {
	n := 0
	for _, c := range calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}
