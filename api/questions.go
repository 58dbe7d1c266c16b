package api

import (
	"context"
	"fmt"
	"learnhub/curriculum"
	"net/http"
)

type questionBody struct {
	Question string              `json:"question"`
	Options  []curriculum.Option `json:"options"`
}

func (c *Client) ListQuestions(ctx context.Context, quizID uint) ([]curriculum.Question, error) {
	var data struct {
		Questions []curriculum.Question `json:"questions"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/quiz/%d/questions", quizID), nil, &data); err != nil {
		return nil, err
	}
	return data.Questions, nil
}

func (c *Client) CreateQuestion(ctx context.Context, quizID uint, q curriculum.Question) (curriculum.Question, error) {
	var created curriculum.Question
	body := questionBody{Question: q.Question, Options: q.Options}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/quiz/%d/questions", quizID), body, &created)
	return created, err
}

func (c *Client) GetQuestion(ctx context.Context, questionID uint) (curriculum.Question, error) {
	var q curriculum.Question
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/question/%d", questionID), nil, &q)
	return q, err
}

// UpdateQuestion replaces the text and every option of a question
func (c *Client) UpdateQuestion(ctx context.Context, q curriculum.Question) (curriculum.Question, error) {
	var updated curriculum.Question
	body := questionBody{Question: q.Question, Options: q.Options}
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/question/%d", q.ID), body, &updated)
	return updated, err
}

func (c *Client) DeleteQuestion(ctx context.Context, questionID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/question/%d", questionID), nil, nil)
}
