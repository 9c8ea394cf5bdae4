package lessonservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
)

// Client клиент для работы с бэкендом уроков
type Client struct {
	baseURL        string
	httpClient     *http.Client
	location       *time.Location
	weeklyFallback bool
	log            Logger
}

// Option настройка клиента
type Option func(*Client)

// WithWeeklyFallback строит недельную таблицу из открытых окон наставника
func WithWeeklyFallback(enabled bool) Option {
	return func(c *Client) {
		c.weeklyFallback = enabled
	}
}

// NewClient создает новый экземпляр клиента бэкенда уроков.
// loc часовой пояс, в котором интерпретируются даты и время без смещения.
func NewClient(baseURL string, timeout time.Duration, loc *time.Location, log Logger, opts ...Option) *Client {
	if loc == nil {
		loc = time.UTC
	}
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		location: loc,
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetLesson получает расписание урока и приводит его к доменной модели
func (c *Client) GetLesson(ctx context.Context, lessonID string) (*domain.Lesson, error) {
	endpoint := fmt.Sprintf("%s/v1/lessons/%s", c.baseURL, url.PathEscape(lessonID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrLessonNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid lesson ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var envelope Envelope[LessonDetail]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	lesson, report, err := toDomainLesson(&envelope.Data, c.location, c.weeklyFallback)
	if err != nil {
		return nil, err
	}
	if report.skipped() {
		c.log.Warn("GetLesson: lesson=%s skipped %d invalid options, %d invalid times",
			lessonID, report.InvalidOptions, report.InvalidTimes)
	}

	return lesson, nil
}

// CreateSchedule отправляет заявку на бронирование. authHeader пробрасывается как есть.
// Бэкенд выполняет окончательную проверку пересечений и мест.
func (c *Client) CreateSchedule(ctx context.Context, submission *domain.BookingSubmission, authHeader string) (*domain.BookingResult, error) {
	payload, err := json.Marshal(toScheduleRequest(submission))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/schedules", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrLessonNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusConflict, http.StatusGone, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrSubmissionRejected, resp.StatusCode, backendMessage(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var envelope Envelope[ScheduleCreateResponse]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if envelope.Data.ScheduleID == "" {
		return nil, fmt.Errorf("%w: empty scheduleId", ErrInvalidResponse)
	}

	c.log.Info("CreateSchedule: lesson=%s schedule=%s", submission.LessonID, envelope.Data.ScheduleID)
	return &domain.BookingResult{ScheduleID: envelope.Data.ScheduleID}, nil
}

// backendMessage достает message из тела ошибки, если оно в формате конверта
func backendMessage(body []byte) string {
	var envelope Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return string(body)
}
