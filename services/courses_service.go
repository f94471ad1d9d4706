package services

import (
	"context"
	"time"

	"github.com/grigorishin/course-platform-api/model"
	"github.com/grigorishin/course-platform-api/store"
	"gorm.io/gorm"
)

// CoursesService manages courses.
type CoursesService struct {
	store *store.CourseStore
}

func NewCoursesService(db *gorm.DB) *CoursesService {
	return &CoursesService{store: store.NewCourseStore(db)}
}

// CourseCreate carries the fields required to insert a course.
type CourseCreate struct {
	Title       string    `json:"title" validate:"required"`
	Subtitle    string    `json:"subtitle" validate:"required"`
	Description string    `json:"description" validate:"required"`
	ImageLink   string    `json:"image_link" validate:"required"`
	Link        string    `json:"link" validate:"required,url"`
	Price       int       `json:"price" validate:"gte=0"`
	StartingAt  time.Time `json:"starting_at" validate:"required"`
	CountryID   uint      `json:"country_id" validate:"required,min=1"`
}

// CoursePatch lists the course fields a partial update may touch.
type CoursePatch struct {
	Title       *string    `json:"title"`
	Subtitle    *string    `json:"subtitle"`
	Description *string    `json:"description"`
	ImageLink   *string    `json:"image_link"`
	Link        *string    `json:"link"`
	Price       *int       `json:"price"`
	StartingAt  *time.Time `json:"starting_at"`
	CountryID   *uint      `json:"country_id"`
}

func (p CoursePatch) Apply(course model.Course) model.Course {
	if p.Title != nil {
		course.Title = *p.Title
	}
	if p.Subtitle != nil {
		course.Subtitle = *p.Subtitle
	}
	if p.Description != nil {
		course.Description = *p.Description
	}
	if p.ImageLink != nil {
		course.ImageLink = *p.ImageLink
	}
	if p.Link != nil {
		course.Link = *p.Link
	}
	if p.Price != nil {
		course.Price = *p.Price
	}
	if p.StartingAt != nil {
		course.StartingAt = *p.StartingAt
	}
	if p.CountryID != nil {
		course.CountryID = *p.CountryID
	}
	return course
}

// GetCourse returns a course with its country and comments resolved.
func (s *CoursesService) GetCourse(ctx context.Context, courseID uint) (*model.Course, error) {
	course, err := s.store.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// GetCourses returns courses ordered by start time descending, optionally
// restricted to an exact country name. An empty result set fails with
// ErrCoursesNotFound.
func (s *CoursesService) GetCourses(ctx context.Context, countryName string) ([]model.Course, error) {
	courses, err := s.store.List(ctx, countryName)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, ErrCoursesNotFound
	}
	return courses, nil
}

// CreateCourse inserts a course. The country id is not pre-checked; a
// dangling reference surfaces as a storage integrity error.
func (s *CoursesService) CreateCourse(ctx context.Context, create CourseCreate) (*model.Course, error) {
	course := model.Course{
		Title:       create.Title,
		Subtitle:    create.Subtitle,
		Description: create.Description,
		ImageLink:   create.ImageLink,
		Link:        create.Link,
		Price:       create.Price,
		StartingAt:  create.StartingAt,
		CountryID:   create.CountryID,
	}
	if err := s.store.Create(ctx, &course); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, course.ID)
}

func (s *CoursesService) UpdateCourse(ctx context.Context, courseID uint, patch CoursePatch) (*model.Course, error) {
	course, err := s.store.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotExist
	}

	updated := patch.Apply(*course)
	if err := s.store.Save(ctx, &updated); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, courseID)
}

func (s *CoursesService) DeleteCourse(ctx context.Context, courseID uint) error {
	course, err := s.store.Get(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotExist
	}
	return s.store.Delete(ctx, course)
}
