package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	configRepo "github.com/fillinv/lesson-scheduler/internal/infra/storage/config"
	"github.com/fillinv/lesson-scheduler/internal/service/config/models"
	"github.com/fillinv/lesson-scheduler/internal/service/lessons"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	configRepo ConfigRepository
	lessons    LessonProvider
	defaults   domain.SchedulingConfig
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации.
// defaults применяются, когда в БД нет ни конфигурации урока, ни глобальной.
func NewService(
	configRepo ConfigRepository,
	lessonProvider LessonProvider,
	defaults domain.SchedulingConfig,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		lessons:    lessonProvider,
		defaults:   defaults,
		logger:     logger,
	}
}

// Effective получает действующую конфигурацию урока
// Приоритет: lesson > global > defaults
func (s *Service) Effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error) {
	config, _, err := s.effective(ctx, lessonID)
	return config, err
}

// GetEffective то же, что Effective, в виде DTO с указанием уровня
func (s *Service) GetEffective(ctx context.Context, lessonID string) (*models.ConfigResponse, error) {
	config, level, err := s.effective(ctx, lessonID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(lessonID, level, config), nil
}

func (s *Service) effective(ctx context.Context, lessonID string) (*domain.SchedulingConfig, string, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, lessonID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			defaults := s.defaults
			return &defaults, models.LevelDefault, nil
		}
		s.logger.Error("Effective: repository error for lesson=%s: %v", lessonID, err)
		return nil, "", fmt.Errorf("%w: Effective - repository error: %v", ErrInternal, err)
	}

	if config.IsGlobalConfig() {
		return config, models.LevelGlobal, nil
	}
	return config, models.LevelLesson, nil
}

// Update обновляет конфигурацию урока
// Доступно только наставнику урока
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for lesson=%s by user=%s", req.LessonID, req.UserID)

	// 1. Проверяем права доступа (только наставник урока)
	if err := s.checkMentor(ctx, req.LessonID, req.UserID); err != nil {
		return nil, err
	}

	// 2. Берём действующую конфигурацию как основу
	current, _, err := s.effective(ctx, req.LessonID)
	if err != nil {
		return nil, err
	}

	// 3. Применяем обновления и валидируем
	updated := domain.SchedulingConfig{
		LessonID:           &req.LessonID,
		GridMinutes:        current.GridMinutes,
		AdvanceBookingDays: current.AdvanceBookingDays,
	}
	req.ApplyToConfig(&updated)

	if err := validateConfigData(updated.GridMinutes, updated.AdvanceBookingDays); err != nil {
		s.logger.Warn("Update: validation failed for lesson=%s: %v", req.LessonID, err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.configRepo.Upsert(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error for lesson=%s: %v", req.LessonID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully saved config id=%d for lesson=%s", saved.ID, req.LessonID)
	return models.FromDomainConfig(req.LessonID, models.LevelLesson, saved), nil
}

// Delete удаляет конфигурацию урока; далее действует глобальная
// Доступно только наставнику урока
func (s *Service) Delete(ctx context.Context, lessonID, userID string) error {
	s.logger.Info("Delete: deleting config for lesson=%s by user=%s", lessonID, userID)

	if err := s.checkMentor(ctx, lessonID, userID); err != nil {
		return err
	}

	if err := s.configRepo.DeleteByLesson(ctx, lessonID); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config for lesson=%s not found", lessonID)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error for lesson=%s: %v", lessonID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted config for lesson=%s", lessonID)
	return nil
}

func (s *Service) checkMentor(ctx context.Context, lessonID, userID string) error {
	lesson, err := s.lessons.GetLesson(ctx, lessonID)
	if err != nil {
		if errors.Is(err, lessons.ErrLessonNotFound) {
			s.logger.Warn("checkMentor: lesson=%s not found", lessonID)
			return ErrLessonNotFound
		}
		return fmt.Errorf("%w: failed to get lesson: %v", ErrInternal, err)
	}

	if lesson.Mentor.ID == "" || lesson.Mentor.ID != userID {
		s.logger.Warn("checkMentor: user=%s is not the mentor of lesson=%s", userID, lessonID)
		return ErrAccessDenied
	}
	return nil
}

// validateConfigData проверяет значения конфигурации
func validateConfigData(gridMinutes, advanceBookingDays int) error {
	if gridMinutes < domain.MinGridMinutes || gridMinutes > domain.MaxGridMinutes {
		return fmt.Errorf("%w: gridMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinGridMinutes, domain.MaxGridMinutes)
	}
	if domain.MinutesPerDay%gridMinutes != 0 {
		return fmt.Errorf("%w: gridMinutes must divide a day evenly", ErrInvalidInput)
	}
	if advanceBookingDays < domain.MinAdvanceBookingDays || advanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}
	return nil
}
