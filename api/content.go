package api

import (
	"context"
	"fmt"
	"learnhub/curriculum"
	"net/http"
)

// collections maps a content type to its list route and response key
var collections = map[curriculum.ContentType]string{
	curriculum.TypeLesson:     "lessons",
	curriculum.TypeQuiz:       "quizzes",
	curriculum.TypeAssignment: "assignments",
}

// wireContent is the flat JSON form of every content record
type wireContent struct {
	ID           uint   `json:"id,omitempty"`
	SectionID    uint   `json:"section_id,omitempty"`
	Title        string `json:"title"`
	Duration     *int   `json:"duration"`
	IsPublished  *bool  `json:"is_published,omitempty"`
	SortOrder    *int   `json:"sort_order,omitempty"`
	Body         string `json:"body,omitempty"`
	VideoURL     string `json:"video_url,omitempty"`
	PassScore    int    `json:"pass_score,omitempty"`
	Instructions string `json:"instructions,omitempty"`
	MaxScore     int    `json:"max_score,omitempty"`
}

// toItem tags a record with the collection it was read from
func (w wireContent) toItem(t curriculum.ContentType) curriculum.ContentItem {
	item := curriculum.ContentItem{
		ID:        w.ID,
		Type:      t,
		SectionID: w.SectionID,
		Title:     w.Title,
		Duration:  w.Duration,
	}
	if w.IsPublished != nil {
		item.IsPublished = *w.IsPublished
	}
	if w.SortOrder != nil {
		item.SortOrder = *w.SortOrder
	}

	switch t {
	case curriculum.TypeLesson:
		item.Lesson = &curriculum.LessonDetail{Body: w.Body, VideoURL: w.VideoURL}
	case curriculum.TypeQuiz:
		item.Quiz = &curriculum.QuizDetail{PassScore: w.PassScore}
	case curriculum.TypeAssignment:
		item.Assignment = &curriculum.AssignmentDetail{Instructions: w.Instructions, MaxScore: w.MaxScore}
	}
	return item
}

// fromItem flattens an item for create and update requests
func fromItem(item curriculum.ContentItem) wireContent {
	w := wireContent{
		Title:    item.Title,
		Duration: item.Duration,
	}
	switch item.Type {
	case curriculum.TypeLesson:
		if item.Lesson != nil {
			w.Body, w.VideoURL = item.Lesson.Body, item.Lesson.VideoURL
		}
	case curriculum.TypeQuiz:
		if item.Quiz != nil {
			w.PassScore = item.Quiz.PassScore
		}
	case curriculum.TypeAssignment:
		if item.Assignment != nil {
			w.Instructions, w.MaxScore = item.Assignment.Instructions, item.Assignment.MaxScore
		}
	}
	return w
}

func collection(t curriculum.ContentType) (string, error) {
	plural, ok := collections[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", curriculum.ErrUnknownContentType, t)
	}
	return plural, nil
}

func (c *Client) ListContent(ctx context.Context, sectionID uint, t curriculum.ContentType) ([]curriculum.ContentItem, error) {
	plural, err := collection(t)
	if err != nil {
		return nil, err
	}

	var data map[string][]wireContent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/section/%d/%s", sectionID, plural), nil, &data); err != nil {
		return nil, err
	}

	rows := data[plural]
	items := make([]curriculum.ContentItem, len(rows))
	for i, row := range rows {
		items[i] = row.toItem(t)
	}
	return items, nil
}

// CreateContent creates an item; the server appends it to the section
func (c *Client) CreateContent(ctx context.Context, item curriculum.ContentItem) (curriculum.ContentItem, error) {
	plural, err := collection(item.Type)
	if err != nil {
		return curriculum.ContentItem{}, err
	}

	var created wireContent
	path := fmt.Sprintf("/admin/section/%d/%s", item.SectionID, plural)
	if err := c.do(ctx, http.MethodPost, path, fromItem(item), &created); err != nil {
		return curriculum.ContentItem{}, err
	}
	return created.toItem(item.Type), nil
}

func (c *Client) GetContent(ctx context.Context, t curriculum.ContentType, id uint) (curriculum.ContentItem, error) {
	if _, err := collection(t); err != nil {
		return curriculum.ContentItem{}, err
	}

	var record wireContent
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/%s/%d", t, id), nil, &record); err != nil {
		return curriculum.ContentItem{}, err
	}
	return record.toItem(t), nil
}

// UpdateContent sends the editable fields. Position and publish state are
// changed only through ReorderContent and SetPublished.
func (c *Client) UpdateContent(ctx context.Context, item curriculum.ContentItem) (curriculum.ContentItem, error) {
	if _, err := collection(item.Type); err != nil {
		return curriculum.ContentItem{}, err
	}

	var updated wireContent
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/%s/%d", item.Type, item.ID), fromItem(item), &updated); err != nil {
		return curriculum.ContentItem{}, err
	}
	return updated.toItem(item.Type), nil
}

func (c *Client) DeleteContent(ctx context.Context, t curriculum.ContentType, id uint) error {
	if _, err := collection(t); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/%s/%d", t, id), nil, nil)
}

func (c *Client) SetPublished(ctx context.Context, t curriculum.ContentType, id uint, published bool) (curriculum.ContentItem, error) {
	if _, err := collection(t); err != nil {
		return curriculum.ContentItem{}, err
	}

	body := map[string]bool{"is_published": published}
	var record wireContent
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/%s/%d/publish", t, id), body, &record); err != nil {
		return curriculum.ContentItem{}, err
	}
	return record.toItem(t), nil
}

// ReorderContent sends the complete new order of a section in one request
func (c *Client) ReorderContent(ctx context.Context, sectionID uint, batch []curriculum.OrderEntry) error {
	body := map[string][]curriculum.OrderEntry{"items": batch}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/section/%d/reorder", sectionID), body, nil)
}
