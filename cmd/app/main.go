package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/akyairhashvil/calpick/internal/calendar"
	"github.com/akyairhashvil/calpick/internal/config"
	"github.com/akyairhashvil/calpick/internal/database"
	"github.com/akyairhashvil/calpick/internal/export"
	"github.com/akyairhashvil/calpick/internal/models"
	"github.com/akyairhashvil/calpick/internal/picker"
	"github.com/akyairhashvil/calpick/internal/tui"
	"github.com/akyairhashvil/calpick/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const exitAborted = 130

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin *os.File, stdout, stderr io.Writer) int {
	flags, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if flags.version {
		fmt.Fprintf(stdout, "%s %s\n", config.AppName, tui.VersionLabel())
		return 0
	}

	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	closer, err := util.ConfigureLogging(logPath(flags, env), firstNonEmpty(flags.logLevel, env.LogLevel))
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	defer closer.Close()
	log := util.Component("cli")

	opts, err := buildOptions(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}
	valueType := models.ValueType(flags.valueType)
	if !valueType.Valid() {
		fmt.Fprintf(stderr, "Alas, there's been an error: unknown type %q\n", flags.valueType)
		return 2
	}

	var db *database.Database
	if !flags.noStore && !env.NoStore {
		db, err = openStore(ctx, dbPath(flags, env))
		if err != nil {
			util.LogError("open store", err)
			fmt.Fprintf(stderr, "Selection history disabled: %v\n", err)
			db = nil
		} else {
			defer db.Close()
		}
	}
	opts.Color = resolveColor(ctx, opts.Color, env.Theme, db)

	svc := calendar.NewService()
	p := picker.New(svc, picker.Config{
		Options:  &opts,
		Format:   flags.format,
		Type:     valueType,
		Readonly: flags.readonly,
	})
	initial, err := initialValue(flags, p.PickMode(), valueType)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 2
	}
	if initial != nil {
		p.WriteValue(initial)
	}

	if !term.IsTerminal(int(stdin.Fd())) {
		fmt.Fprintln(stderr, "calpick needs an interactive terminal on stdin")
		return 1
	}

	var store tui.Database
	if db != nil {
		store = db
	}
	model := tui.NewMainModel(ctx, store, p, tui.MainOptions{
		Restore:         flags.restore,
		ConfirmOnSelect: flags.confirm,
	})
	prog := tea.NewProgram(model, tea.WithInput(stdin), tea.WithOutput(stderr), tea.WithContext(ctx))
	final, err := prog.Run()
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	result, ok := final.(tui.MainModel)
	if !ok || result.Aborted() {
		return exitAborted
	}

	if err := writeExports(flags, svc, result.Calendar().Picker()); err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	v, ok := result.Result()
	if !ok {
		log.Debug("finished without a value")
		return 0
	}
	out, err := tui.FormatValue(v)
	if err != nil {
		fmt.Fprintf(stderr, "Alas, there's been an error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

// buildOptions loads the options file and lays explicitly set flags over it.
func buildOptions(f *cliFlags) (models.Options, error) {
	var opts models.Options
	if f.optionsFile != "" {
		loaded, err := config.LoadOptionsFile(util.ExpandHome(f.optionsFile))
		if err != nil {
			return models.Options{}, err
		}
		opts = loaded
	}
	if f.changed("mode") || opts.PickMode == "" {
		opts.PickMode = models.PickMode(f.mode)
	}
	if !opts.PickMode.Valid() {
		return models.Options{}, fmt.Errorf("unknown pick mode %q", opts.PickMode)
	}
	if f.changed("from") {
		opts.From = f.from.Time()
	}
	if f.changed("to") {
		opts.To = f.to.Time()
	}
	if f.changed("week-start") {
		if f.weekStart != 0 && f.weekStart != 1 {
			return models.Options{}, fmt.Errorf("week start must be 0 or 1, got %d", f.weekStart)
		}
		opts.WeekStart = f.weekStart
	}
	if f.changed("color") {
		opts.Color = f.color
	}
	if f.changed("month-format") || opts.MonthFormat == "" {
		opts.MonthFormat = f.monthFormat
	}
	if f.changed("disable-weeks") {
		opts.DisableWeeks = f.disableWeeks
	}
	if f.noToggle {
		opts.ShowToggleButtons = util.Ptr(false)
	}
	return opts, nil
}

// initialValue shapes --value and --value-ics inputs for the pick mode.
func initialValue(f *cliFlags, mode models.PickMode, typ models.ValueType) (any, error) {
	var items []any
	for _, raw := range f.values {
		items = append(items, parseRawValue(raw, typ))
	}
	if f.valueICS != "" {
		file, err := os.Open(util.ExpandHome(f.valueICS))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.valueICS, err)
		}
		defer file.Close()
		starts, err := export.ReadICS(file)
		if err != nil {
			return nil, err
		}
		for _, t := range starts {
			items = append(items, t)
		}
	}
	if len(items) == 0 {
		return nil, nil
	}
	switch mode {
	case models.PickRange:
		r := models.DateRange{From: items[0]}
		if len(items) > 1 {
			r.To = items[1]
		}
		return r, nil
	case models.PickMulti:
		return items, nil
	}
	return items[0], nil
}

// parseRawValue reads integers as epoch milliseconds for non-string types.
func parseRawValue(raw string, typ models.ValueType) any {
	raw = strings.TrimSpace(raw)
	if typ == models.TypeString {
		return raw
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ms
	}
	return raw
}

// resolveColor picks the theme: options, then environment, then the last
// stored theme.
func resolveColor(ctx context.Context, current, envTheme string, db *database.Database) string {
	if current != "" {
		return current
	}
	if envTheme != "" {
		return envTheme
	}
	if db != nil {
		if v, ok := db.GetSetting(ctx, config.SettingLastTheme); ok {
			return v
		}
	}
	return ""
}

func openStore(ctx context.Context, path string) (*database.Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return database.Open(ctx, path)
}

func writeExports(f *cliFlags, svc *calendar.Service, p picker.Model) error {
	if f.pdf != "" {
		n := f.pdfMonths
		if n < 1 {
			n = 1
		}
		months := svc.CreateMonthsByPeriod(p.Reference(), n, p.Options())
		if err := export.WritePDF(util.ExpandHome(f.pdf), svc, months, p.Options(), p.Value()); err != nil {
			return err
		}
	}
	if f.ics != "" {
		file, err := os.Create(util.ExpandHome(f.ics))
		if err != nil {
			return fmt.Errorf("create %s: %w", f.ics, err)
		}
		if err := export.WriteICS(file, svc, p.Value()); err != nil {
			file.Close()
			return err
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("close %s: %w", f.ics, err)
		}
	}
	return nil
}

func dbPath(f *cliFlags, env config.Env) string {
	if p := firstNonEmpty(f.dbPath, env.DBPath); p != "" {
		return util.ExpandHome(p)
	}
	return filepath.Join(util.DataDir(config.AppName), config.DBFileName)
}

func logPath(f *cliFlags, env config.Env) string {
	if p := firstNonEmpty(f.logFile, env.LogFile); p != "" {
		return util.ExpandHome(p)
	}
	return filepath.Join(util.StateDir(config.AppName), config.LogFileName)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
