package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	courseModels "learnhub/models/course"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCurriculumRoutes sets up the curriculum editor API
func SetupCurriculumRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.CurriculumEditor)

	// Courses & instructors
	admin.Get("/course/:course_id", validators.CourseID(), controllers.AdminGetCourse)
	admin.Patch("/course/:course_id/instructor", validators.AssignInstructor(), controllers.AdminAssignInstructor)
	admin.Get("/instructors", controllers.AdminListInstructors)

	// Sections
	admin.Get("/course/:course_id/sections", validators.CourseID(), controllers.AdminListSections)
	admin.Post("/course/:course_id/sections", validators.CreateSection(), controllers.AdminCreateSection)
	admin.Patch("/section/:section_id", validators.UpdateSection(), controllers.AdminUpdateSection)
	admin.Delete("/section/:section_id", validators.SectionID(), controllers.AdminDeleteSection)

	// Batch reorder of a section's merged content
	admin.Put("/section/:section_id/reorder", validators.ReorderContent(), controllers.AdminReorderContent)

	// Lessons, quizzes and assignments share one set of handlers
	collections := map[string]string{
		courseModels.KindLesson:     "lessons",
		courseModels.KindQuiz:       "quizzes",
		courseModels.KindAssignment: "assignments",
	}
	for kind, plural := range collections {
		admin.Get("/section/:section_id/"+plural, validators.SectionID(), controllers.AdminListContent(kind))
		admin.Post("/section/:section_id/"+plural, validators.CreateContent(), controllers.AdminCreateContent(kind))

		item := admin.Group("/" + kind)
		item.Get("/:id", validators.ContentID(), controllers.AdminGetContent(kind))
		item.Patch("/:id", validators.UpdateContent(), controllers.AdminUpdateContent(kind))
		item.Delete("/:id", validators.ContentID(), controllers.AdminDeleteContent(kind))
		item.Post("/:id/publish", validators.PublishContent(), controllers.AdminPublishContent(kind))
	}

	// Quiz questions
	admin.Get("/quiz/:quiz_id/questions", validators.QuizID(), controllers.AdminListQuestions)
	admin.Post("/quiz/:quiz_id/questions", validators.CreateQuestion(), controllers.AdminCreateQuestion)
	admin.Get("/question/:question_id", validators.QuestionID(), controllers.AdminGetQuestion)
	admin.Put("/question/:question_id", validators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	admin.Delete("/question/:question_id", validators.QuestionID(), controllers.AdminDeleteQuestion)
}
