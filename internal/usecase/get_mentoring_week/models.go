package get_mentoring_week

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
)

// MaxWeekOffset как далеко вперёд можно листать недели
const MaxWeekOffset = 52

// Request модель запроса недельной страницы наставничества
type Request struct {
	ViewerID string  // область "последний запрос побеждает" (вкладка клиента)
	LessonID string  // ID урока
	Offset   int     // смещение в неделях от текущей, >= 0
	OptionID *string // выбранная опция; задаёт ширину таймлайна
}

// Response модель ответа
type Response struct {
	LessonID       string
	Title          string
	Mentor         domain.Mentor
	Options        []domain.ServiceOption
	SelectedOption *domain.ServiceOption
	GridMinutes    int
	TimelineWidth  int
	WeekStart      time.Time
	HourTicks      []scheduling.HourTick
	Days           []Day
}

// Day одна дата недельной страницы
type Day struct {
	Date         time.Time
	Available    []Bar
	Booked       []Bar
	FocusPercent *float64 // позиция первого доступного окна для автопрокрутки
	UsedWeekly   bool     // окна взяты из недельной таблицы
}

// Bar диапазон на 24-часовой полосе
type Bar struct {
	Range  domain.ClockRange
	Label  string // "HH:MM-HH:MM"
	Layout scheduling.BarLayout
}
