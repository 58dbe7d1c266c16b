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

// collectionKey is the response key for a list of kind
func collectionKey(kind string) string {
	switch kind {
	case courseModels.KindQuiz:
		return "quizzes"
	case courseModels.KindAssignment:
		return "assignments"
	}
	return "lessons"
}

// applyContent copies the editable fields into the record. Position and publish
// state have their own endpoints and are never taken from an edit.
func applyContent(record courseModels.ContentRecord, reqData *validators.ContentRequest) {
	base := record.Base()
	base.Title = reqData.Title
	base.Duration = reqData.Duration

	switch r := record.(type) {
	case *courseModels.Lesson:
		r.Body = reqData.Body
		r.VideoURL = reqData.VideoURL
	case *courseModels.Quiz:
		r.PassScore = reqData.PassScore
	case *courseModels.Assignment:
		r.Instructions = reqData.Instructions
		r.MaxScore = reqData.MaxScore
	}
}

// findContent loads item id of kind, writing a response when it cannot
func findContent(c *fiber.Ctx, kind string, id int) (courseModels.ContentRecord, error) {
	record := courseModels.NewRecord(kind)
	if err := database.Database.Db.First(record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}
	return record, nil
}

// AdminListContent lists one kind of content of a section in display order
func AdminListContent(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID := c.Locals("sectionID").(int)

		var section courseModels.Section
		if err := database.Database.Db.First(&section, sectionID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
		}

		rows, err := courseModels.FindRecords(database.Database.Db, kind, section.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", fiber.Map{
			collectionKey(kind): rows,
		})
	}
}

// AdminCreateContent creates a lesson, quiz or assignment at the end of a section
func AdminCreateContent(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID := c.Locals("sectionID").(int)

		var section courseModels.Section
		if err := database.Database.Db.First(&section, sectionID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
		}

		reqData, ok := c.Locals("validatedContent").(*validators.ContentRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		record := courseModels.NewRecord(kind)
		applyContent(record, reqData)
		record.Base().SectionID = section.ID
		record.Base().IsPublished = false

		// Get the next order index if not provided
		if reqData.SortOrder != nil {
			record.Base().SortOrder = *reqData.SortOrder
		} else {
			next, err := courseModels.NextSortOrder(database.Database.Db, section.ID)
			if err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute position!", nil)
			}
			record.Base().SortOrder = next
		}

		if err := database.Database.Db.Create(record).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", record)
	}
}

// AdminGetContent returns the full record of one item
func AdminGetContent(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, err := findContent(c, kind, c.Locals("contentID").(int))
		if record == nil {
			return err
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", record)
	}
}

// AdminUpdateContent replaces an item's editable fields with the submitted record.
// The section, kind, position and publish state of an item are left as they are.
func AdminUpdateContent(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, err := findContent(c, kind, c.Locals("contentID").(int))
		if record == nil {
			return err
		}

		reqData, ok := c.Locals("validatedContentUpdate").(*validators.ContentRequest)
		if !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
		}

		applyContent(record, reqData)

		if err := database.Database.Db.Save(record).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", record)
	}
}

// AdminDeleteContent deletes an item; deleting a quiz also deletes its questions
func AdminDeleteContent(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, err := findContent(c, kind, c.Locals("contentID").(int))
		if record == nil {
			return err
		}

		tx := database.Database.Db.Begin()

		if kind == courseModels.KindQuiz {
			if err := tx.Where("quiz_id = ?", record.Base().ID).Delete(&courseModels.QuizQuestion{}).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz questions!", nil)
			}
		}

		if err := tx.Delete(record).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
		}

		if err := tx.Commit().Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
		}

		log.Printf("[CURRICULUM] %s %d deleted from section %d", kind, record.Base().ID, record.Base().SectionID)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
	}
}

// AdminPublishContent publishes or unpublishes an item
func AdminPublishContent(kind string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		record, err := findContent(c, kind, c.Locals("contentID").(int))
		if record == nil {
			return err
		}

		publishStatus := c.Locals("publishStatus").(bool)

		// A quiz needs at least one question before students can see it
		if publishStatus && kind == courseModels.KindQuiz {
			var questionCount int64
			database.Database.Db.Model(&courseModels.QuizQuestion{}).Where("quiz_id = ?", record.Base().ID).Count(&questionCount)
			if questionCount == 0 {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz must have at least one question before publishing!", nil)
			}
		}

		record.Base().IsPublished = publishStatus
		if err := database.Database.Db.Save(record).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
		}

		message := "Content unpublished successfully!"
		if publishStatus {
			message = "Content published successfully!"
		}

		return middleware.JsonResponse(c, fiber.StatusOK, true, message, record)
	}
}
