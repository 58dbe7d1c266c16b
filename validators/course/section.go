package courseValidator

import (
	"learnhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SectionRequest is the body of a section create
type SectionRequest struct {
	Title string `json:"title"`
	Order *int   `json:"order"`
}

// SectionPatch is the body of a section update; nil fields are left unchanged
type SectionPatch struct {
	Title *string `json:"title"`
	Order *int    `json:"order"`
}

// CreateSection validates section creation under :course_id
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok, err := parseID(c, "course_id", "Course ID")
		if !ok {
			return err
		}

		reqData := new(SectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		reqData.Title = strings.TrimSpace(reqData.Title)
		checkTitle(errors, "title", reqData.Title)
		if reqData.Order != nil && *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// UpdateSection validates a title/order patch of :section_id
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, ok, err := parseID(c, "section_id", "Section ID")
		if !ok {
			return err
		}

		reqData := new(SectionPatch)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.Title == nil && reqData.Order == nil {
			errors["title"] = "Nothing to update!"
		}
		if reqData.Title != nil {
			title := strings.TrimSpace(*reqData.Title)
			reqData.Title = &title
			checkTitle(errors, "title", title)
		}
		if reqData.Order != nil && *reqData.Order < 0 {
			errors["order"] = "Order must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", sectionID)
		c.Locals("validatedSectionPatch", reqData)
		return c.Next()
	}
}
