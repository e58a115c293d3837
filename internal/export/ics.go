package export

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/models"
	ics "github.com/arran4/golang-ical"
)

const icsProductID = "-//calpick//calendar picker//EN"

// WriteICS writes each selected day as an all-day event.
func WriteICS(w io.Writer, svc *calendar.Service, days []*models.CalendarDay) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	stamp := svc.NowTime().UTC()
	for _, d := range days {
		if d == nil || d.Time == 0 {
			continue
		}
		start := svc.FromMillis(svc.DayKey(d.Time))
		event := cal.AddEvent(fmt.Sprintf("%d@%s", start.UnixMilli(), config.AppName))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(summaryFor(svc, d))
		if d.SubTitle != "" {
			event.SetDescription(d.SubTitle)
		}
	}
	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// summaryFor prefers a custom day title over the plain day number.
func summaryFor(svc *calendar.Service, d *models.CalendarDay) string {
	date := svc.FormatMillis(d.Time, config.MultiFormatLayout)
	if d.Title == "" || d.Title == svc.FormatMillis(d.Time, "D") {
		return config.AppName + " " + date
	}
	return d.Title + " " + date
}

// ReadICS returns the start dates of every event in r, in file order.
func ReadICS(r io.Reader) ([]time.Time, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse ics: %w", err)
	}
	var out []time.Time
	for i, event := range cal.Events() {
		start, err := event.GetStartAt()
		if err != nil {
			start, err = event.GetAllDayStartAt()
		}
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = append(out, start)
	}
	return out, nil
}
