package api

import (
	"context"
	"fmt"
	"learnhub/curriculum"
	"net/http"
)

func (c *Client) ListSections(ctx context.Context, courseID uint) ([]curriculum.Section, error) {
	var data struct {
		Sections []curriculum.Section `json:"sections"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/course/%d/sections", courseID), nil, &data); err != nil {
		return nil, err
	}
	return data.Sections, nil
}

func (c *Client) CreateSection(ctx context.Context, courseID uint, section curriculum.Section) (curriculum.Section, error) {
	// No order: the server appends after the last section
	body := curriculum.SectionPatch{Title: &section.Title}

	var created curriculum.Section
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/admin/course/%d/sections", courseID), body, &created)
	return created, err
}

func (c *Client) PatchSection(ctx context.Context, sectionID uint, patch curriculum.SectionPatch) (curriculum.Section, error) {
	var updated curriculum.Section
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/section/%d", sectionID), patch, &updated)
	return updated, err
}

// DeleteSection deletes a section; the server removes its content too
func (c *Client) DeleteSection(ctx context.Context, sectionID uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/section/%d", sectionID), nil, nil)
}
