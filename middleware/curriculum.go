package middleware

import (
	"errors"
	"learnhub/database"
	"learnhub/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurriculumEditor allows the request through only for admins and instructors.
// Must run after JWTMiddleware.
func CurriculumEditor(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
	}

	if !user.CanEditCurriculum() {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Curriculum editors only.", nil)
	}

	c.Locals("userRole", user.Role)
	return c.Next()
}

// RequestID tags every request with X-Request-ID, reusing the caller's id when present
func RequestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Set("X-Request-ID", id)
	c.Locals("requestId", id)

	err := c.Next()
	if err != nil {
		log.Printf("[REQ] id=%s %s %s error=%v", id, c.Method(), c.OriginalURL(), err)
	}
	return err
}
