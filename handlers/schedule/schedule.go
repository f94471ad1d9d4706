package schedule

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/grigorishin/course-platform-api/services"
	"github.com/grigorishin/course-platform-api/utils/response"
	"gorm.io/gorm"
)

// ScheduleHandler serves the weekly class schedule.
type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// GetSchedule handles GET /api/schedule
func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	svc := services.NewScheduleService(h.db)
	weekly, err := svc.GetSchedule(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrScheduleEmpty) {
			return response.BadRequestCode(c, "Schedule is empty", "SCHEDULE_EMPTY")
		}
		return response.InternalServerError(c, "Failed to fetch schedule")
	}

	return response.Success(c, weekly)
}
