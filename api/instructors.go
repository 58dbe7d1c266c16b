package api

import (
	"context"
	"fmt"
	"learnhub/curriculum"
	"net/http"
)

func (c *Client) ListInstructors(ctx context.Context) ([]curriculum.Instructor, error) {
	var data struct {
		Instructors []curriculum.Instructor `json:"instructors"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/instructors", nil, &data); err != nil {
		return nil, err
	}
	return data.Instructors, nil
}

func (c *Client) GetCourse(ctx context.Context, courseID uint) (curriculum.Course, error) {
	var course curriculum.Course
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/course/%d", courseID), nil, &course)
	return course, err
}

func (c *Client) AssignInstructor(ctx context.Context, courseID, instructorID uint) (curriculum.Course, error) {
	var course curriculum.Course
	body := map[string]uint{"instructor_id": instructorID}
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/course/%d/instructor", courseID), body, &course)
	return course, err
}
