package courseValidator

import (
	"fmt"
	"learnhub/middleware"
	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
)

// ReorderRequest is the complete new order of one section's content
type ReorderRequest struct {
	Items []courseModels.ItemRef `json:"items"`
}

// ReorderContent validates a batch reorder of :section_id. Positions must be
// exactly 0..n-1 and every (type, id) pair may appear once.
func ReorderContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, ok, err := parseID(c, "section_id", "Section ID")
		if !ok {
			return err
		}

		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if len(reqData.Items) == 0 {
			errors["items"] = "Items are required!"
		}

		seen := make(map[string]bool, len(reqData.Items))
		positions := make([]bool, len(reqData.Items))
		for i, item := range reqData.Items {
			field := fmt.Sprintf("items[%d]", i)
			if !courseModels.IsContentKind(item.Type) {
				errors[field+".type"] = "Type must be lesson, quiz or assignment!"
				continue
			}
			if item.ID == 0 {
				errors[field+".id"] = "ID is required!"
				continue
			}
			key := fmt.Sprintf("%s:%d", item.Type, item.ID)
			if seen[key] {
				errors[field] = "Item appears more than once!"
			}
			seen[key] = true

			if item.SortOrder < 0 || item.SortOrder >= len(reqData.Items) || positions[item.SortOrder] {
				errors[field+".sort_order"] = "Sort orders must be unique and run from 0 to n-1!"
				continue
			}
			positions[item.SortOrder] = true
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("sectionID", sectionID)
		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
