package update_scheduling_config

import (
	"github.com/fillinv/lesson-scheduler/internal/service/config/models"
)

// UpdateSchedulingConfigRequest HTTP request model
type UpdateSchedulingConfigRequest struct {
	GridMinutes        *int `json:"gridMinutes,omitempty"`
	AdvanceBookingDays *int `json:"advanceBookingDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSchedulingConfigRequest) ToServiceRequest(lessonID, userID string) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:             userID,
		LessonID:           lessonID,
		GridMinutes:        r.GridMinutes,
		AdvanceBookingDays: r.AdvanceBookingDays,
	}
}
