package store

import (
	"context"

	"github.com/grigorishin/course-platform-api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CourseStore issues course queries against the relational store.
type CourseStore struct {
	db *gorm.DB
}

func NewCourseStore(db *gorm.DB) *CourseStore {
	return &CourseStore{db: db}
}

func (s *CourseStore) Get(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := s.db.WithContext(ctx).
		Preload("Country").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User").
		First(&course, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns courses ordered by start time descending. A non-empty
// countryName restricts the result to courses in that country, matched
// exactly against the stored name.
func (s *CourseStore) List(ctx context.Context, countryName string) ([]model.Course, error) {
	q := s.db.WithContext(ctx).Model(&model.Course{})
	if countryName != "" {
		q = q.Joins("JOIN countries ON countries.id = courses.country_id").
			Where("countries.name = ?", countryName)
	}

	var courses []model.Course
	err := q.
		Preload("Country").
		Preload("Comments.User").
		Order("courses.starting_at DESC").
		Find(&courses).Error
	return courses, err
}

func (s *CourseStore) Create(ctx context.Context, course *model.Course) error {
	return s.db.WithContext(ctx).Create(course).Error
}

func (s *CourseStore) Save(ctx context.Context, course *model.Course) error {
	// Loaded associations must not be written back with the row.
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(course).Error
}

func (s *CourseStore) Delete(ctx context.Context, course *model.Course) error {
	return s.db.WithContext(ctx).Delete(&model.Course{ID: course.ID}).Error
}
