package testutil

import (
	"time"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/util"
)

// FixedNow is the clock used by test services: 2024-02-15 10:30 UTC.
var FixedNow = time.Date(2024, time.February, 15, 10, 30, 0, 0, time.UTC)

// NewService returns a calendar service pinned to UTC and FixedNow.
func NewService() *calendar.Service {
	return &calendar.Service{
		Now:      func() time.Time { return FixedNow },
		Location: time.UTC,
	}
}

// Millis returns epoch milliseconds for a UTC calendar date.
func Millis(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// OptionsBuilder provides fluent API for creating calendar options.
type OptionsBuilder struct {
	opts models.Options
}

func NewOptions() *OptionsBuilder {
	return &OptionsBuilder{opts: models.Options{PickMode: models.PickSingle}}
}

func (b *OptionsBuilder) WithPickMode(p models.PickMode) *OptionsBuilder {
	b.opts.PickMode = p
	return b
}

func (b *OptionsBuilder) WithFrom(t time.Time) *OptionsBuilder {
	b.opts.From = t
	return b
}

func (b *OptionsBuilder) WithTo(t time.Time) *OptionsBuilder {
	b.opts.To = t
	return b
}

func (b *OptionsBuilder) WithWeekStart(ws int) *OptionsBuilder {
	b.opts.WeekStart = ws
	return b
}

func (b *OptionsBuilder) WithToggleButtons(show bool) *OptionsBuilder {
	b.opts.ShowToggleButtons = util.Ptr(show)
	return b
}

func (b *OptionsBuilder) WithColor(c string) *OptionsBuilder {
	b.opts.Color = c
	return b
}

func (b *OptionsBuilder) WithDisableWeeks(days ...int) *OptionsBuilder {
	b.opts.DisableWeeks = days
	return b
}

func (b *OptionsBuilder) WithDayConfig(cfg models.DayConfig) *OptionsBuilder {
	b.opts.DaysConfig = append(b.opts.DaysConfig, cfg)
	return b
}

func (b *OptionsBuilder) Build() models.Options {
	return b.opts
}

// DayBuilder provides fluent API for creating calendar days.
type DayBuilder struct {
	day models.CalendarDay
}

func NewDay(year int, month time.Month, day int) *DayBuilder {
	return &DayBuilder{day: models.CalendarDay{Time: Millis(year, month, day)}}
}

func (b *DayBuilder) Disabled() *DayBuilder {
	b.day.Disable = true
	return b
}

func (b *DayBuilder) WithTime(ms int64) *DayBuilder {
	b.day.Time = ms
	return b
}

func (b *DayBuilder) Build() *models.CalendarDay {
	d := b.day
	return &d
}
