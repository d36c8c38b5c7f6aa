package main

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/karupanerura/collection-cache/format"
	"github.com/karupanerura/collection-cache/internal/logger"
	"github.com/karupanerura/collection-cache/intervalupdater"
	"github.com/karupanerura/collection-cache/roster"
)

// ListCmd prints one table.
type ListCmd struct {
	Students ListStudentsCmd `cmd:"" help:"List students."`
	Programs ListProgramsCmd `cmd:"" help:"List programs."`
}

// ListStudentsCmd prints the students table.
type ListStudentsCmd struct {
	Program string `help:"Only list the students enrolled in the program with this identifier."`
}

// Run executes the list students command.
func (c *ListStudentsCmd) Run(ctx context.Context, g *Globals, kctx *kong.Context) error {
	s, err := openSession(ctx, g)
	if err != nil {
		return fmt.Errorf("list students: %w", err)
	}
	defer s.Close()

	if err := <-s.dir.Initialize(ctx); err != nil {
		return fmt.Errorf("list students: %w", err)
	}

	var students []roster.Student
	if c.Program != "" {
		students = s.dir.StudentsInProgram(c.Program)
	} else {
		students = slices.SortedFunc(maps.Values(s.dir.Students().State().Data), func(a, b roster.Student) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	if useJSON(g.Output, kctx.Stdout) {
		return writeJSON(kctx.Stdout, students)
	}
	return writeStudents(kctx.Stdout, students, s.dir.Programs().State().Data)
}

// ListProgramsCmd prints the programs table.
type ListProgramsCmd struct {
	Enrolled bool `help:"Only list programs with at least one student."`
}

// Run executes the list programs command.
func (c *ListProgramsCmd) Run(ctx context.Context, g *Globals, kctx *kong.Context) error {
	s, err := openSession(ctx, g)
	if err != nil {
		return fmt.Errorf("list programs: %w", err)
	}
	defer s.Close()

	if err := <-s.dir.Initialize(ctx); err != nil {
		return fmt.Errorf("list programs: %w", err)
	}

	var programs []roster.Program
	if c.Enrolled {
		for _, id := range s.dir.EnrolledProgramIDs() {
			if p, ok := s.dir.Programs().Get(id); ok {
				programs = append(programs, p)
			}
		}
	} else {
		programs = slices.SortedFunc(maps.Values(s.dir.Programs().State().Data), func(a, b roster.Program) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	if useJSON(g.Output, kctx.Stdout) {
		return writeJSON(kctx.Stdout, programs)
	}
	return writePrograms(kctx.Stdout, programs)
}

// WatchCmd keeps both tables loaded until interrupted.
type WatchCmd struct {
	Interval time.Duration `help:"Refresh interval. Overrides refresh.interval of the config file."`
}

// Run executes the watch command.
func (c *WatchCmd) Run(ctx context.Context, g *Globals) error {
	s, err := openSession(ctx, g)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer s.Close()

	interval := s.cfg.Refresh.Interval
	if c.Interval > 0 {
		interval = c.Interval
	}

	l := logger.WithModule(s.logger, "watch")
	l.Info("watching roster", zap.String("api", s.cfg.API.BaseURL), zap.Duration("interval", interval))

	// the caches report their own failures
	updater := intervalupdater.NewIntervalUpdater(&countingRefresher{dir: s.dir, logger: l}, interval, nil)
	<-updater.Launch(ctx)

	l.Info("stopped watching")
	return nil
}

// countingRefresher logs the size of both tables after every successful refresh.
type countingRefresher struct {
	dir    *roster.Directory
	logger *zap.Logger
}

func (r *countingRefresher) Refresh(ctx context.Context) error {
	if err := r.dir.Refresh(ctx); err != nil {
		return err
	}
	r.logger.Info("roster refreshed",
		zap.Int("students", r.dir.Students().Len()),
		zap.Int("programs", r.dir.Programs().Len()),
		zap.Int("enrolled_programs", len(r.dir.EnrolledProgramIDs())),
	)
	return nil
}

// PhoneCmd formats a phone number.
type PhoneCmd struct {
	Number string `arg:"" help:"Phone number in any notation."`
}

// Run executes the phone command.
func (c *PhoneCmd) Run(kctx *kong.Context) error {
	p, ok := format.FormatPhoneNumber(c.Number)
	if !ok {
		return fmt.Errorf("phone: %q is not a 10-digit number: %w", c.Number, errInvalid)
	}
	_, err := fmt.Fprintln(kctx.Stdout, p)
	return err
}

// DateCmd validates a date.
type DateCmd struct {
	Date string `arg:"" help:"Date as month/day/year."`
}

// Run executes the date command.
func (c *DateCmd) Run(kctx *kong.Context) error {
	if !format.ValidateDate(c.Date) {
		return fmt.Errorf("date: %q is not a calendar date: %w", c.Date, errInvalid)
	}
	_, err := fmt.Fprintln(kctx.Stdout, "valid")
	return err
}

// AmPmCmd converts a 24-hour time.
type AmPmCmd struct {
	Time string `arg:"" help:"Time as HH:MM."`
}

// Run executes the ampm command.
func (c *AmPmCmd) Run(kctx *kong.Context) error {
	t := format.TimeToAmPm(c.Time)
	if t == "" {
		return fmt.Errorf("ampm: %q is not an HH:MM time: %w", c.Time, errInvalid)
	}
	_, err := fmt.Fprintln(kctx.Stdout, t)
	return err
}

// RangeCmd converts a 12-hour time range.
type RangeCmd struct {
	Range string `arg:"" help:"Range as \"hh:mm AM - hh:mm PM\"."`
}

// Run executes the range command.
func (c *RangeCmd) Run(g *Globals, kctx *kong.Context) error {
	r := format.AmPmToTime(c.Range)
	if r.StartTime == "" {
		return fmt.Errorf("range: %q is not a time range: %w", c.Range, errInvalid)
	}
	if useJSON(g.Output, kctx.Stdout) {
		return writeJSON(kctx.Stdout, r)
	}
	_, err := fmt.Fprintf(kctx.Stdout, "%s-%s\n", r.StartTime, r.EndTime)
	return err
}

// TruncateCmd shortens a document name.
type TruncateCmd struct {
	Name     string `arg:"" help:"Document file name."`
	Siblings int    `help:"Number of documents shown in the same row." default:"1"`
}

// Run executes the truncate command.
func (c *TruncateCmd) Run(kctx *kong.Context) error {
	_, err := fmt.Fprintln(kctx.Stdout, format.TruncateDocumentName(c.Name, c.Siblings).String())
	return err
}
