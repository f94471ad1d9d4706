package services

import "errors"

// Domain errors raised by the managers. Collection-level absence ("not
// found" for an empty filtered listing) and entity-level absence ("not
// exist" for a targeted mutation) are distinct cases and map to different
// HTTP status codes at the handler boundary.
var (
	// Comments
	ErrCommentsNotFound     = errors.New("comments not found")
	ErrCommentNotExist      = errors.New("comment does not exist")
	ErrUserDoesNotOwnCourse = errors.New("user does not own course")

	// Countries
	ErrCountriesNotFound    = errors.New("countries not found")
	ErrCountryNotExist      = errors.New("country does not exist")
	ErrCountryBlockNotExist = errors.New("country block does not exist")

	// Courses
	ErrCourseNotFound  = errors.New("course not found")
	ErrCoursesNotFound = errors.New("courses not found")
	ErrCourseNotExist  = errors.New("course does not exist")

	// Library
	ErrLibraryNotFound     = errors.New("library books not found")
	ErrBookNotExist        = errors.New("book does not exist")
	ErrLibraryPreviewEmpty = errors.New("library preview is empty")
	ErrPreviewNotExist     = errors.New("library preview does not exist")
	ErrInvalidPageSize     = errors.New("page size must be positive")

	// Schedule
	ErrScheduleEmpty = errors.New("schedule is empty")
)
