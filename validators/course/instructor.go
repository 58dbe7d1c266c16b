package courseValidator

import (
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// AssignInstructor validates linking an instructor to :course_id
func AssignInstructor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok, err := parseID(c, "course_id", "Course ID")
		if !ok {
			return err
		}

		reqData := new(struct {
			InstructorID uint `json:"instructor_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.InstructorID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"instructor_id": "Instructor ID is required!"})
		}

		c.Locals("courseID", courseID)
		c.Locals("instructorID", reqData.InstructorID)
		return c.Next()
	}
}
