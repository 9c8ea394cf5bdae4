package select_slot

import (
	"time"

	"github.com/fillinv/lesson-scheduler/internal/domain"
	"github.com/fillinv/lesson-scheduler/internal/scheduling"
)

// Request модель запроса выбора слота кликом по таймлайну.
// Позиция задаётся либо Fraction, либо парой ClickX/BarWidth.
type Request struct {
	LessonID string
	OptionID string
	Date     string // YYYY-MM-DD
	Fraction *float64
	ClickX   *float64
	BarWidth *float64
	Current  *Selection // состояние, которым владеет клиент
}

// Selection выбранная опция и, возможно, слот
type Selection struct {
	OptionID    string
	Date        string // YYYY-MM-DD, пусто без слота
	StartMinute *int   // начало слота в минутах от полуночи
}

// Response результат: принят / отклонён с причиной, и новое состояние
type Response struct {
	Accepted bool
	Reason   scheduling.RejectReason
	Slot     *Slot // принятый слот
	State    State // состояние, которое клиент должен сохранить
}

// State состояние выбора после операции
type State struct {
	OptionID string
	Slot     *Slot
}

// Slot представление слота
type Slot struct {
	Date        string
	StartMinute int
	EndMinute   int
	Label       string // "HH:MM-HH:MM"
	StartAt     time.Time
	SourceID    string
	Layout      scheduling.BarLayout
}

func toSlot(s *domain.CandidateSlot) *Slot {
	if s == nil {
		return nil
	}
	label, _ := scheduling.FormatClockRange(s.Range)
	return &Slot{
		Date:        s.DateKey(),
		StartMinute: s.Range.Start,
		EndMinute:   s.Range.End,
		Label:       label,
		StartAt:     s.StartAt,
		SourceID:    s.SourceID,
		Layout:      scheduling.Layout(s.Range),
	}
}

func toState(s scheduling.SelectionState) State {
	state := State{Slot: toSlot(s.Slot)}
	if s.Option != nil {
		state.OptionID = s.Option.ID
	}
	return state
}
