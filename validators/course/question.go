package courseValidator

import (
	"fmt"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// QuestionRequest carries a question with its complete option list
type QuestionRequest struct {
	Question string                        `json:"question"`
	Options  []courseModels.QuestionOption `json:"options"`
}

// CheckQuestion applies the question rules: text present, every option has
// text, exactly one option is correct.
func CheckQuestion(reqData *QuestionRequest) map[string]string {
	errors := make(map[string]string)

	reqData.Question = strings.TrimSpace(reqData.Question)
	if reqData.Question == "" {
		errors["question"] = "Question text is required!"
	}

	if len(reqData.Options) == 0 {
		errors["options"] = "At least one option is required!"
		return errors
	}

	correct := 0
	for i := range reqData.Options {
		reqData.Options[i].Text = strings.TrimSpace(reqData.Options[i].Text)
		if reqData.Options[i].Text == "" {
			errors[fmt.Sprintf("options[%d].text", i)] = "Option text is required!"
		}
		if reqData.Options[i].IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		errors["options"] = "Exactly one option must be marked correct!"
	}
	return errors
}

func parseQuestion(c *fiber.Ctx, param, label, idKey, dataKey string) error {
	id, ok, err := parseID(c, param, label)
	if !ok {
		return err
	}

	reqData := new(QuestionRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if errors := CheckQuestion(reqData); len(errors) > 0 {
		return middleware.ValidationErrorResponse(c, errors)
	}

	c.Locals(idKey, id)
	c.Locals(dataKey, reqData)
	return c.Next()
}

// CreateQuestion validates a new question under :quiz_id
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseQuestion(c, "quiz_id", "Quiz ID", "quizID", "validatedQuestion")
	}
}

// UpdateQuestion validates the replacement of question :question_id
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return parseQuestion(c, "question_id", "Question ID", "questionID", "validatedQuestionUpdate")
	}
}
