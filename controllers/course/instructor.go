package controllers

import (
	"learnhub/cache"
	"learnhub/database"
	"learnhub/middleware"
	courseModels "learnhub/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminListInstructors lists instructors that can be assigned to a course
func AdminListInstructors(c *fiber.Ctx) error {
	if instructors, ok := cache.Instructors.Get(c.UserContext()); ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", fiber.Map{
			"instructors": instructors,
		})
	}

	instructors := make([]courseModels.Instructor, 0)
	if err := database.Database.Db.Order("name asc").Find(&instructors).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch instructors!", nil)
	}
	cache.Instructors.Set(c.UserContext(), instructors)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructors fetched successfully!", fiber.Map{
		"instructors": instructors,
	})
}

// AdminGetCourse returns a course with its assigned instructor
func AdminGetCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Preload("Instructor").First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// AdminAssignInstructor links an instructor to a course
func AdminAssignInstructor(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	instructorID := c.Locals("instructorID").(uint)

	var course courseModels.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var instructor courseModels.Instructor
	if err := database.Database.Db.First(&instructor, instructorID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Instructor not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("instructor_id", instructor.ID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign instructor!", nil)
	}
	course.InstructorID = &instructor.ID
	course.Instructor = &instructor

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Instructor assigned successfully!", course)
}
