package course

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/utils/response"
	"github.com/grigorishin/course-platform-api/utils/validation"
	"gorm.io/gorm"
)

// CourseHandler handles course-related requests
type CourseHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

func NewCourseHandler(db *gorm.DB) *CourseHandler {
	return &CourseHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ListCourses handles GET /api/courses?country_name=
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	countryName := c.Query("country_name", "")

	svc := services.NewCoursesService(h.db)
	courses, err := svc.GetCourses(c.Context(), countryName)
	if err != nil {
		if errors.Is(err, services.ErrCoursesNotFound) {
			return response.BadRequestCode(c, "Courses not found", "COURSES_NOT_FOUND")
		}
		return response.InternalServerError(c, "Failed to fetch courses")
	}

	return response.Success(c, courses)
}

// GetCourse handles GET /api/courses/:id
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	svc := services.NewCoursesService(h.db)
	course, err := svc.GetCourse(c.Context(), courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return response.BadRequestCode(c, "Course not found", "COURSE_NOT_FOUND")
		}
		return response.InternalServerError(c, "Failed to fetch course")
	}

	return response.Success(c, course)
}

// CreateCourse handles POST /api/courses
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req services.CourseCreate
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	req.Title = validation.SanitizeString(req.Title)
	req.Subtitle = validation.SanitizeString(req.Subtitle)
	req.Description = validation.SanitizeString(req.Description)

	svc := services.NewCoursesService(h.db)
	course, err := svc.CreateCourse(c.Context(), req)
	if err != nil {
		return response.InternalServerError(c, "Failed to create course")
	}

	return response.Created(c, course)
}

// UpdateCourse handles PATCH /api/courses/:id
func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	var patch services.CoursePatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	svc := services.NewCoursesService(h.db)
	course, err := svc.UpdateCourse(c.Context(), courseID, patch)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotExist) {
			return response.NotFoundCode(c, "Course does not exist", "COURSE_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to update course")
	}

	return response.Success(c, course)
}

// DeleteCourse handles DELETE /api/courses/:id
func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid course id")
	}

	svc := services.NewCoursesService(h.db)
	if err := svc.DeleteCourse(c.Context(), courseID); err != nil {
		if errors.Is(err, services.ErrCourseNotExist) {
			return response.NotFoundCode(c, "Course does not exist", "COURSE_NOT_EXIST")
		}
		return response.InternalServerError(c, "Failed to delete course")
	}

	return response.NoContent(c)
}
