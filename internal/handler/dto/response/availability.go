package response

import (
	"time"

	"study-booking/internal/usecase/queries"
)

type SlotStatusResponse struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
}

type DayResponse struct {
	Date  string               `json:"date"`
	Slots []SlotStatusResponse `json:"slots"`
}

type WeekResponse struct {
	ParticipantName string        `json:"participantName"`
	Offset          int           `json:"week"`
	Start           time.Time     `json:"start"`
	End             time.Time     `json:"end"`
	TimeZone        string        `json:"timeZone"`
	DayStartHour    int           `json:"dayStartHour"`
	DayEndHour      int           `json:"dayEndHour"`
	MaxWeeks        int           `json:"maxWeeks"`
	Degraded        bool          `json:"degraded"`
	HasPrev         bool          `json:"hasPrev"`
	HasNext         bool          `json:"hasNext"`
	Days            []DayResponse `json:"days"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *WeekResponse {
	w := v.Week
	out := &WeekResponse{
		ParticipantName: v.ParticipantName,
		Offset:          w.Offset,
		Start:           w.Start,
		End:             w.End,
		TimeZone:        w.Window.Location().String(),
		DayStartHour:    w.Window.DayStartHour(),
		DayEndHour:      w.Window.DayEndHour(),
		MaxWeeks:        w.Window.MaxWeeks(),
		Degraded:        w.Degraded,
		HasPrev:         w.HasPrev,
		HasNext:         w.HasNext,
		Days:            make([]DayResponse, len(w.Days)),
	}
	for i, d := range w.Days {
		day := DayResponse{
			Date:  d.Date.Format(time.DateOnly),
			Slots: make([]SlotStatusResponse, len(d.Slots)),
		}
		for j, s := range d.Slots {
			day.Slots[j] = SlotStatusResponse{Start: s.Start, End: s.End, Status: s.Status.String()}
		}
		out.Days[i] = day
	}
	return out
}
