package lessonservice

// Envelope общая обёртка ответов бэкенда уроков
type Envelope[T any] struct {
	Data    T      `json:"data"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// LessonDetail ответ GET /v1/lessons/{lessonId}
type LessonDetail struct {
	Mentor         Mentor          `json:"mentor"`
	Lesson         Lesson          `json:"lesson"`
	Options        []LessonOption  `json:"options"`
	AvailableTimes []AvailableTime `json:"availableTimes"`
	BookedTimes    []BookedTime    `json:"bookedTimes"`
}

type Mentor struct {
	MentorID     string `json:"mentorId"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
	Introduction string `json:"introduction"`
}

type Lesson struct {
	LessonID       string `json:"lessonId"`
	Description    string `json:"description"`
	LessonType     string `json:"lessonType"` // MENTORING, ONEDAY, STUDY
	Title          string `json:"title"`
	ThumbnailImage string `json:"thumbnailImage"`
	Price          int    `json:"price"`
	Seats          *int   `json:"seats"`
	RemainSeats    *int   `json:"remainSeats"`
	CategoryID     int64  `json:"categoryId"`
}

type LessonOption struct {
	OptionID string `json:"optionId"`
	Name     string `json:"name"`
	Minute   int    `json:"minute"`
	Price    int    `json:"price"`
}

// AvailableTime открытое окно (mentoring) или фиксированная сессия (oneday/study)
type AvailableTime struct {
	AvailableTimeID string `json:"availableTimeId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Price           int    `json:"price"`
	Seats           *int   `json:"seats"`
	RemainSeats     *int   `json:"remainSeats"`
}

type BookedTime struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ScheduleCreateRequest тело POST /v1/schedules
type ScheduleCreateRequest struct {
	LessonID        string  `json:"lessonId"`
	OptionID        *string `json:"optionId,omitempty"`
	AvailableTimeID *string `json:"availableTimeId,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	Message         string  `json:"message"`
}

// ScheduleCreateResponse данные ответа POST /v1/schedules
type ScheduleCreateResponse struct {
	ScheduleID string `json:"scheduleId"`
}
