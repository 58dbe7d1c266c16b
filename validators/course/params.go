package courseValidator

import (
	"learnhub/middleware"
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var invalidTitleChars = regexp.MustCompile(`[<>{}]`)

// parseID reads a positive integer route parameter. On failure the error
// response has already been written and ok is false.
func parseID(c *fiber.Ctx, param, label string) (id int, ok bool, err error) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		return 0, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
	}
	id, convErr := strconv.Atoi(raw)
	if convErr != nil || id <= 0 {
		return 0, false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
	}
	return id, true, nil
}

// checkTitle validates a required display title and records the problem under field
func checkTitle(errors map[string]string, field, title string) {
	switch {
	case title == "":
		errors[field] = "Title is required!"
	case len(title) > 200:
		errors[field] = "Title must not exceed 200 characters!"
	case invalidTitleChars.MatchString(title):
		errors[field] = "Title contains invalid characters (e.g., <, >, {, })!"
	}
}

// RequireID validates a numeric route parameter and stores it in Locals under key
func RequireID(param, key, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok, err := parseID(c, param, label)
		if !ok {
			return err
		}
		c.Locals(key, id)
		return c.Next()
	}
}

// CourseID validates the :course_id parameter
func CourseID() fiber.Handler { return RequireID("course_id", "courseID", "Course ID") }

// SectionID validates the :section_id parameter
func SectionID() fiber.Handler { return RequireID("section_id", "sectionID", "Section ID") }

// QuizID validates the :quiz_id parameter
func QuizID() fiber.Handler { return RequireID("quiz_id", "quizID", "Quiz ID") }

// QuestionID validates the :question_id parameter
func QuestionID() fiber.Handler { return RequireID("question_id", "questionID", "Question ID") }

// ContentID validates the :id parameter of a content item
func ContentID() fiber.Handler { return RequireID("id", "contentID", "Content ID") }
