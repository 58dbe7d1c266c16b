package courseValidator

import (
	"learnhub/middleware"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ContentRequest is the complete editable record of a lesson, quiz or assignment.
// Only the payload fields of the route's kind are used.
type ContentRequest struct {
	Title     string `json:"title"`
	Duration  *int   `json:"duration"`
	SortOrder *int   `json:"sort_order"` // create only

	// lesson
	Body     string `json:"body"`
	VideoURL string `json:"video_url"`

	// quiz
	PassScore int `json:"pass_score"`

	// assignment
	Instructions string `json:"instructions"`
	MaxScore     int    `json:"max_score"`
}

func checkContent(reqData *ContentRequest) map[string]string {
	errors := make(map[string]string)

	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.VideoURL = strings.TrimSpace(reqData.VideoURL)
	checkTitle(errors, "title", reqData.Title)

	if reqData.Duration != nil && *reqData.Duration < 0 {
		errors["duration"] = "Duration must not be negative!"
	}
	if reqData.SortOrder != nil && *reqData.SortOrder < 0 {
		errors["sort_order"] = "Sort order must not be negative!"
	}
	if reqData.VideoURL != "" {
		if u, err := url.ParseRequestURI(reqData.VideoURL); err != nil || u.Host == "" {
			errors["video_url"] = "Video URL must be a valid absolute URL!"
		}
	}
	if reqData.PassScore < 0 || reqData.PassScore > 100 {
		errors["pass_score"] = "Pass score must be between 0 and 100!"
	}
	if reqData.MaxScore < 0 {
		errors["max_score"] = "Max score must not be negative!"
	}
	return errors
}

// CreateContent validates creation of an item under :section_id
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, ok, err := parseID(c, "section_id", "Section ID")
		if !ok {
			return err
		}

		reqData := new(ContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := checkContent(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", sectionID)
		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// UpdateContent validates the full updated record of item :id
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, ok, err := parseID(c, "id", "Content ID")
		if !ok {
			return err
		}

		reqData := new(ContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := checkContent(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("contentID", contentID)
		c.Locals("validatedContentUpdate", reqData)
		return c.Next()
	}
}

// PublishContent validates a publish/unpublish request for item :id
func PublishContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, ok, err := parseID(c, "id", "Content ID")
		if !ok {
			return err
		}

		reqData := new(struct {
			IsPublished bool `json:"is_published"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("contentID", contentID)
		c.Locals("publishStatus", reqData.IsPublished)
		return c.Next()
	}
}
