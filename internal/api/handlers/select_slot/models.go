package select_slot

import (
	"time"

	selectSlot "github.com/fillinv/lesson-scheduler/internal/usecase/select_slot"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	OptionID string            `json:"optionId"`
	Date     string            `json:"date"` // "2025-06-04"
	Fraction *float64          `json:"fraction,omitempty"`
	ClickX   *float64          `json:"clickX,omitempty"`
	BarWidth *float64          `json:"barWidth,omitempty"`
	Current  *SelectionPayload `json:"current,omitempty"`
}

// SelectionPayload состояние выбора, которым владеет клиент
type SelectionPayload struct {
	OptionID    string `json:"optionId"`
	Date        string `json:"date,omitempty"`
	StartMinute *int   `json:"startMinute,omitempty"`
}

// SelectSlotResponse HTTP response model
type SelectSlotResponse struct {
	Accepted bool          `json:"accepted"`
	Reason   string        `json:"reason,omitempty"`
	Slot     *SlotResponse `json:"slot,omitempty"`
	State    StateResponse `json:"state"`
}

type StateResponse struct {
	OptionID string        `json:"optionId,omitempty"`
	Slot     *SlotResponse `json:"slot,omitempty"`
}

type SlotResponse struct {
	Date         string  `json:"date"`
	StartMinute  int     `json:"startMinute"`
	EndMinute    int     `json:"endMinute"`
	Label        string  `json:"label"`
	StartTime    string  `json:"startTime"` // RFC3339
	LeftPercent  float64 `json:"leftPercent"`
	WidthPercent float64 `json:"widthPercent"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectSlotRequest) ToUseCaseRequest(lessonID string) *selectSlot.Request {
	req := &selectSlot.Request{
		LessonID: lessonID,
		OptionID: r.OptionID,
		Date:     r.Date,
		Fraction: r.Fraction,
		ClickX:   r.ClickX,
		BarWidth: r.BarWidth,
	}
	if r.Current != nil {
		req.Current = &selectSlot.Selection{
			OptionID:    r.Current.OptionID,
			Date:        r.Current.Date,
			StartMinute: r.Current.StartMinute,
		}
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(r *selectSlot.Response) *SelectSlotResponse {
	return &SelectSlotResponse{
		Accepted: r.Accepted,
		Reason:   r.Reason.String(),
		Slot:     fromSlot(r.Slot),
		State: StateResponse{
			OptionID: r.State.OptionID,
			Slot:     fromSlot(r.State.Slot),
		},
	}
}

func fromSlot(s *selectSlot.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		Date:         s.Date,
		StartMinute:  s.StartMinute,
		EndMinute:    s.EndMinute,
		Label:        s.Label,
		StartTime:    s.StartAt.Format(time.RFC3339),
		LeftPercent:  s.Layout.LeftPercent,
		WidthPercent: s.Layout.WidthPercent,
	}
}
