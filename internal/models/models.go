package models

import "time"

// PickMode enumerates how many days a picker selects.
type PickMode string

const (
	PickSingle PickMode = "single"
	PickRange  PickMode = "range"
	PickMulti  PickMode = "multi"
)

// Valid reports whether the mode is one of the known pick modes.
func (p PickMode) Valid() bool {
	switch p {
	case PickSingle, PickRange, PickMulti:
		return true
	}
	return false
}

// ValueType is the representation a picker emits and accepts.
type ValueType string

const (
	TypeString ValueType = "string"
	TypeJSDate ValueType = "js-date"
	TypeMoment ValueType = "moment"
	TypeTime   ValueType = "time"
	TypeObject ValueType = "object"
)

// Valid reports whether the type is one of the known value types.
func (v ValueType) Valid() bool {
	switch v {
	case TypeString, TypeJSDate, TypeMoment, TypeTime, TypeObject:
		return true
	}
	return false
}

// DayConfig overrides the rendering of a single date.
type DayConfig struct {
	Date     time.Time `yaml:"date"`
	Marked   bool      `yaml:"marked"`
	Disable  *bool     `yaml:"disable"`
	Title    string    `yaml:"title"`
	SubTitle string    `yaml:"subTitle"`
	CSSClass string    `yaml:"cssClass"`
}

// Options is the caller-supplied calendar configuration.
type Options struct {
	From              time.Time   `yaml:"from"`
	To                time.Time   `yaml:"to"`
	PickMode          PickMode    `yaml:"pickMode"`
	ShowToggleButtons *bool       `yaml:"showToggleButtons"`
	Color             string      `yaml:"color"`
	WeekStart         int         `yaml:"weekStart"`
	MonthFormat       string      `yaml:"monthFormat"`
	Weekdays          []string    `yaml:"weekdays"`
	DisableWeeks      []int       `yaml:"disableWeeks"`
	DefaultTitle      string      `yaml:"defaultTitle"`
	DefaultSubtitle   string      `yaml:"defaultSubtitle"`
	DaysConfig        []DayConfig `yaml:"daysConfig"`
}

// ModalOptions are Options after defaults have been merged in.
type ModalOptions struct {
	From              time.Time
	To                time.Time
	PickMode          PickMode
	ShowToggleButtons bool
	Color             string
	WeekStart         int
	MonthFormat       string
	Weekdays          [7]string
	DisableWeeks      []int
	DefaultTitle      string
	DefaultSubtitle   string
	DaysConfig        []DayConfig
}

// CalendarOriginal describes the month a view is built for.
type CalendarOriginal struct {
	Time        int64 // epoch ms of the first day of the month
	Date        time.Time
	Year        int
	Month       time.Month
	FirstWeek   time.Weekday
	HowManyDays int
}

// CalendarDay is one selectable day of a month view.
type CalendarDay struct {
	Time     int64 // origin epoch ms
	IsToday  bool
	Title    string
	SubTitle string
	Selected bool
	Marked   bool
	Disable  bool
	CSSClass string
	IsFirst  bool
	IsLast   bool
}

// CalendarMonth is one month grid. Days holds nil cells before the first day
// so that index 0 falls on the configured week start.
type CalendarMonth struct {
	Original CalendarOriginal
	Days     []*CalendarDay
}

// CalendarResult bundles several encodings of the same instant.
type CalendarResult struct {
	Time    int64     `json:"time"`
	Unix    int64     `json:"unix"`
	DateObj time.Time `json:"dateObj"`
	String  string    `json:"string"`
	Years   int       `json:"years"`
	Months  int       `json:"months"` // 1-based
	Date    int       `json:"date"`
}

// MonthChange is emitted when the displayed month moves.
type MonthChange struct {
	OldMonth CalendarResult `json:"oldMonth"`
	NewMonth CalendarResult `json:"newMonth"`
}

// DateObject is the decomposed value type. Months is 0-based.
type DateObject struct {
	Years        int `json:"years"`
	Months       int `json:"months"`
	Date         int `json:"date"`
	Hours        int `json:"hours"`
	Minutes      int `json:"minutes"`
	Seconds      int `json:"seconds"`
	Milliseconds int `json:"milliseconds"`
}

// DateRange is the range-mode value shape.
type DateRange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Selection is a persisted picker result.
type Selection struct {
	ID        int64
	PickMode  PickMode
	ValueType ValueType
	Format    string
	Payload   string // JSON encoding of the emitted value
	MonthTime int64
	CreatedAt time.Time
}
