package controllers

import (
	"errors"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	validators "learnhub/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminListSections lists the sections of a course in display order
func AdminListSections(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	sections := make([]courseModels.Section, 0)
	if err := database.Database.Db.Where("course_id = ?", courseID).Order("order_index asc, id asc").Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections fetched successfully!", fiber.Map{
		"sections": sections,
	})
}

// AdminCreateSection appends a section to a course
func AdminCreateSection(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*validators.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Append after the last section unless an order was given
	var order int
	if reqData.Order != nil {
		order = *reqData.Order
	} else {
		err := database.Database.Db.Model(&courseModels.Section{}).
			Where("course_id = ?", courseID).
			Select("COALESCE(MAX(order_index), -1) + 1").
			Scan(&order).Error
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute position!", nil)
		}
	}

	section := courseModels.Section{
		CourseID: course.ID,
		Title:    reqData.Title,
		Order:    order,
	}

	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// AdminUpdateSection patches a section's title and/or order
func AdminUpdateSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	var section courseModels.Section
	if err := database.Database.Db.First(&section, sectionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	reqData, ok := c.Locals("validatedSectionPatch").(*validators.SectionPatch)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != nil {
		section.Title = *reqData.Title
	}
	if reqData.Order != nil {
		section.Order = *reqData.Order
	}

	if err := database.Database.Db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

// AdminDeleteSection deletes a section together with all of its content
func AdminDeleteSection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	var section courseModels.Section
	if err := database.Database.Db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch section!", nil)
	}

	tx := database.Database.Db.Begin()

	if err := courseModels.DeleteSectionContent(tx, section.ID); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section content!", nil)
	}

	if err := tx.Delete(&section).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	log.Printf("[CURRICULUM] section %d of course %d deleted with its content", section.ID, section.CourseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
