package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/pkg/dbmetrics"
	"github.com/fillinv/lesson-scheduler/pkg/psqlbuilder"
)

const table = "scheduling_config"

var columns = []string{
	"id",
	"lesson_id",
	"grid_minutes",
	"advance_booking_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией расписания уроков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLesson получает конфигурацию урока; lessonID == nil означает глобальную конфигурацию
func (r *Repository) GetByLesson(ctx context.Context, lessonID *string) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)
	if lessonID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"lesson_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"lesson_id": *lessonID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLesson - build select query: %v", ErrBuildQuery, err)
	}

	config, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLesson - scan config: %v", ErrScanRow, err)
	}

	return config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация конкретного урока
// 2. Глобальная конфигурация (lesson_id IS NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, lessonID string) (*domain.SchedulingConfig, error) {
	// 1. Конфигурация урока
	config, err := r.GetByLesson(ctx, &lessonID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (lesson): %v", ErrExecQuery, err)
	}

	// 2. Глобальная конфигурация
	config, err = r.GetByLesson(ctx, nil)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (global): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// Upsert создает конфигурацию урока или обновляет существующую.
// Выполняется в транзакции: UPDATE, при отсутствии строки INSERT.
func (r *Repository) Upsert(ctx context.Context, config *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	txCtx, tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback() //nolint:errcheck

	saved, err := r.update(txCtx, config)
	if errors.Is(err, ErrConfigNotFound) {
		saved, err = r.insert(txCtx, config)
	}
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: Upsert - commit: %v", ErrTransaction, err)
	}

	return saved, nil
}

// DeleteByLesson удаляет конфигурацию урока
func (r *Repository) DeleteByLesson(ctx context.Context, lessonID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"lesson_id": lessonID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByLesson - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByLesson - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByLesson - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

func (r *Repository) insert(ctx context.Context, config *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("lesson_id", "grid_minutes", "advance_booking_days").
		Values(config.LessonID, config.GridMinutes, config.AdvanceBookingDays).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: insert - build insert query: %v", ErrBuildQuery, err)
	}

	saved, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: insert - execute insert: %v", ErrExecQuery, err)
	}

	return saved, nil
}

func (r *Repository) update(ctx context.Context, config *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("grid_minutes", config.GridMinutes).
		Set("advance_booking_days", config.AdvanceBookingDays).
		Set("updated_at", squirrel.Expr("NOW()"))
	if config.LessonID == nil {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"lesson_id": nil})
	} else {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"lesson_id": *config.LessonID})
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: update - build update query: %v", ErrBuildQuery, err)
	}

	saved, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: update - execute update: %v", ErrExecQuery, err)
	}

	return saved, nil
}

// BeginTx начинает новую транзакцию и возвращает контекст с ней
func (r *Repository) BeginTx(ctx context.Context, opts *sql.TxOptions) (context.Context, TxExecutor, error) {
	if txBeginner, ok := r.db.(TxBeginner); ok {
		tx, err := txBeginner.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		return dbmetrics.WithTx(ctx, tx), tx, nil
	}

	// Fallback для обычного *sql.DB
	if db, ok := r.db.(*sql.DB); ok {
		tx, err := db.BeginTx(ctx, opts)
		if err != nil {
			return ctx, nil, fmt.Errorf("%w: BeginTx: %v", ErrTransaction, err)
		}
		wrappedTx := &dbmetrics.SqlTxWrapper{Tx: tx}
		return dbmetrics.WithTx(ctx, wrappedTx), wrappedTx, nil
	}

	return ctx, nil, fmt.Errorf("%w: db type not supported", ErrTransaction)
}

func scanConfig(row *sql.Row) (*domain.SchedulingConfig, error) {
	var (
		config               domain.SchedulingConfig
		lessonID             sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&config.ID,
		&lessonID,
		&config.GridMinutes,
		&config.AdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lessonID.Valid {
		config.LessonID = &lessonID.String
	}
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}
