package main

import (
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/spf13/pflag"
)

type dateFlag time.Time

var _ pflag.Value = &dateFlag{}

func (d dateFlag) Time() time.Time { return time.Time(d) }

func (d dateFlag) IsZero() bool { return time.Time(d).IsZero() }

func (d dateFlag) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format("2006-01-02")
}

func (d *dateFlag) Set(value string) error {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD: %w", err)
	}
	*d = dateFlag(t)
	return nil
}

func (d dateFlag) Type() string { return "date" }

type cliFlags struct {
	mode         string
	valueType    string
	format       string
	from         dateFlag
	to           dateFlag
	weekStart    int
	color        string
	monthFormat  string
	disableWeeks []int
	noToggle     bool
	readonly     bool
	optionsFile  string
	values       []string
	valueICS     string
	restore      bool
	confirm      bool
	pdf          string
	pdfMonths    int
	ics          string
	noStore      bool
	dbPath       string
	logFile      string
	logLevel     string
	version      bool

	set *pflag.FlagSet
}

func (f *cliFlags) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}

func parseArgs(args []string, out io.Writer) (*cliFlags, error) {
	f := &cliFlags{}
	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&f.mode, "mode", "single", "pick mode: single, range or multi")
	fs.StringVar(&f.valueType, "type", "string", "output type: string, js-date, moment, time or object")
	fs.StringVar(&f.format, "format", config.DefaultFormat, "date pattern for the string type")
	fs.Var(&f.from, "from", "first selectable date (YYYY-MM-DD)")
	fs.Var(&f.to, "to", "last selectable date (YYYY-MM-DD)")
	fs.IntVar(&f.weekStart, "week-start", config.DefaultWeekStart, "first weekday column, 0 Sunday or 1 Monday")
	fs.StringVar(&f.color, "color", "", "theme: primary, secondary, danger, dark, light or transparent")
	fs.StringVar(&f.monthFormat, "month-format", config.DefaultMonthFormat, "pattern for the month title")
	fs.IntSliceVar(&f.disableWeeks, "disable-weeks", nil, "weekdays that cannot be picked (0-6)")
	fs.BoolVar(&f.noToggle, "no-toggle", false, "hide the month navigation buttons")
	fs.BoolVar(&f.readonly, "readonly", false, "show the calendar without allowing picks")
	fs.StringVar(&f.optionsFile, "options", "", "YAML file with calendar options")
	fs.StringArrayVar(&f.values, "value", nil, "initial value, repeat for range and multi")
	fs.StringVar(&f.valueICS, "value-ics", "", "read initial days from an iCalendar file")
	fs.BoolVar(&f.restore, "restore", false, "start from the last stored selection")
	fs.BoolVar(&f.confirm, "confirm", true, "finish as soon as a single day is picked")
	fs.StringVar(&f.pdf, "pdf", "", "write the displayed month to a PDF file")
	fs.IntVar(&f.pdfMonths, "pdf-months", 1, "number of months in the PDF")
	fs.StringVar(&f.ics, "ics", "", "write the selected days to an iCalendar file")
	fs.BoolVar(&f.noStore, "no-store", false, "do not open the selection database")
	fs.StringVar(&f.dbPath, "db", "", "database path")
	fs.StringVar(&f.logFile, "log-file", "", "log file path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.set = fs
	return f, nil
}
