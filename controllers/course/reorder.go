package controllers

import (
	"fmt"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	validators "learnhub/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminReorderContent applies a complete new order to a section's content.
// The batch is written in one transaction: every item of the section must be
// listed exactly once, otherwise nothing changes.
func AdminReorderContent(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	reqData, ok := c.Locals("validatedReorder").(*validators.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var section courseModels.Section
	if err := database.Database.Db.First(&section, sectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	tx := database.Database.Db.Begin()

	current, err := courseModels.SectionItems(tx, section.ID)
	if err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	existing := make(map[string]bool, len(current))
	for _, item := range current {
		existing[fmt.Sprintf("%s:%d", item.Type, item.ID)] = true
	}

	mismatch := len(current) != len(reqData.Items)
	for _, item := range reqData.Items {
		if !existing[fmt.Sprintf("%s:%d", item.Type, item.ID)] {
			mismatch = true
			break
		}
	}
	if mismatch {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Reorder must list every item of the section exactly once!", nil)
	}

	for _, item := range reqData.Items {
		if err := courseModels.SetSortOrder(tx, item.Type, item.ID, item.SortOrder); err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder content!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder content!", nil)
	}

	log.Printf("[CURRICULUM] section %d reordered (%d items)", section.ID, len(reqData.Items))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content reordered successfully!", fiber.Map{
		"items": reqData.Items,
	})
}
