package models

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// Уровни, с которых взята конфигурация
const (
	LevelLesson  = "lesson"
	LevelGlobal  = "global"
	LevelDefault = "default"
)

// Request модели

// UpdateConfigRequest запрос на обновление конфигурации урока
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	UserID             string `json:"-"`
	LessonID           string `json:"-"`
	GridMinutes        *int   `json:"gridMinutes,omitempty"`
	AdvanceBookingDays *int   `json:"advanceBookingDays,omitempty"`
}

// ApplyToConfig применяет переданные поля к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(c *domain.SchedulingConfig) {
	if r.GridMinutes != nil {
		c.GridMinutes = *r.GridMinutes
	}
	if r.AdvanceBookingDays != nil {
		c.AdvanceBookingDays = *r.AdvanceBookingDays
	}
}

// Response модели

// ConfigResponse ответ с действующей конфигурацией
type ConfigResponse struct {
	LessonID           string     `json:"lessonId"`
	Level              string     `json:"level"`
	GridMinutes        int        `json:"gridMinutes"`
	AdvanceBookingDays int        `json:"advanceBookingDays"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(lessonID, level string, c *domain.SchedulingConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		LessonID:           lessonID,
		Level:              level,
		GridMinutes:        c.GridMinutes,
		AdvanceBookingDays: c.AdvanceBookingDays,
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
