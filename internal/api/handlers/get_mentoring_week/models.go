package get_mentoring_week

import (
	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
	getMentoringWeek "github.com/fillinv/lesson-scheduler/internal/usecase/get_mentoring_week"
)

// WeekResponse HTTP response model
type WeekResponse struct {
	LessonID         string           `json:"lessonId"`
	Title            string           `json:"title"`
	Mentor           MentorResponse   `json:"mentor"`
	Options          []OptionResponse `json:"options"`
	SelectedOptionID *string          `json:"selectedOptionId,omitempty"`
	GridMinutes      int              `json:"gridMinutes"`
	TimelineWidth    int              `json:"timelineWidth"`
	WeekStart        string           `json:"weekStart"`
	HourTicks        []TickResponse   `json:"hourTicks"`
	Days             []DayResponse    `json:"days"`
}

type MentorResponse struct {
	ID           string `json:"id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage,omitempty"`
}

type OptionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	DurationLabel   string `json:"durationLabel"`
	Price           int    `json:"price"`
}

type TickResponse struct {
	Label       string  `json:"label"`
	LeftPercent float64 `json:"leftPercent"`
}

type DayResponse struct {
	Date         string        `json:"date"`
	Weekday      string        `json:"weekday"`
	Available    []BarResponse `json:"available"`
	Booked       []BarResponse `json:"booked"`
	FocusPercent *float64      `json:"focusPercent,omitempty"`
	UsedWeekly   bool          `json:"usedWeekly,omitempty"`
}

type BarResponse struct {
	StartMinute  int     `json:"startMinute"`
	EndMinute    int     `json:"endMinute"`
	Label        string  `json:"label"`
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *getMentoringWeek.Response) *WeekResponse {
	resp := &WeekResponse{
		LessonID: r.LessonID,
		Title:    r.Title,
		Mentor: MentorResponse{
			ID:           r.Mentor.ID,
			Nickname:     r.Mentor.Nickname,
			ProfileImage: r.Mentor.ProfileImage,
		},
		Options:       make([]OptionResponse, 0, len(r.Options)),
		GridMinutes:   r.GridMinutes,
		TimelineWidth: r.TimelineWidth,
		WeekStart:     r.WeekStart.Format(domain.DateFormat),
		HourTicks:     make([]TickResponse, 0, len(r.HourTicks)),
		Days:          make([]DayResponse, 0, len(r.Days)),
	}
	if r.SelectedOption != nil {
		resp.SelectedOptionID = &r.SelectedOption.ID
	}

	for _, o := range r.Options {
		resp.Options = append(resp.Options, OptionResponse{
			ID:              o.ID,
			Name:            o.Name,
			DurationMinutes: o.DurationMinutes,
			DurationLabel:   o.DurationLabel(),
			Price:           o.Price,
		})
	}
	for _, t := range r.HourTicks {
		resp.HourTicks = append(resp.HourTicks, fromTick(t))
	}
	for _, d := range r.Days {
		resp.Days = append(resp.Days, DayResponse{
			Date:         d.Date.Format(domain.DateFormat),
			Weekday:      d.Date.Weekday().String(),
			Available:    fromBars(d.Available),
			Booked:       fromBars(d.Booked),
			FocusPercent: d.FocusPercent,
			UsedWeekly:   d.UsedWeekly,
		})
	}
	return resp
}

func fromTick(t scheduling.HourTick) TickResponse {
	return TickResponse{Label: t.Label, LeftPercent: t.Percent}
}

func fromBars(bars []getMentoringWeek.Bar) []BarResponse {
	result := make([]BarResponse, 0, len(bars))
	for _, b := range bars {
		result = append(result, BarResponse{
			StartMinute:  b.Range.Start,
			EndMinute:    b.Range.End,
			Label:        b.Label,
			LeftPercent:  b.Layout.LeftPercent,
			WidthPercent: b.Layout.WidthPercent,
		})
	}
	return result
}
