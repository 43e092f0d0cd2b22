package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/mirea"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/render"
	"github.com/spf13/afero"
)

var ErrTemplateMissing = errors.New("template not found")

type Fetcher interface {
	FetchGroup(ctx context.Context, group string) (mirea.Group, error)
}

type Notifier interface {
	Notify(ctx context.Context, summary Summary) error
}

type WeekSummary struct {
	Index   int
	Parity  render.Parity
	Days    int
	Lessons int
}

// Summary describes a generated page.
type Summary struct {
	Group string
	Path  string
	Weeks []WeekSummary
}

func newSummary(group, path string, weeks []render.Week) Summary {
	summary := Summary{Group: group, Path: path}
	for _, week := range weeks {
		summary.Weeks = append(summary.Weeks, WeekSummary{
			Index:   week.Index,
			Parity:  week.Parity,
			Days:    len(week.Days),
			Lessons: week.LessonCount(),
		})
	}
	return summary
}

// Builder generates the schedule page of one group.
type Builder struct {
	Fs       afero.Fs
	Fetcher  Fetcher
	Notifier Notifier // optional
	Logger   *slog.Logger

	Group        string
	TemplatePath string
	OutputPath   string
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

func (b *Builder) readTemplate() (string, error) {
	data, err := afero.ReadFile(b.Fs, b.TemplatePath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrTemplateMissing, b.TemplatePath)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateMissing, b.TemplatePath, err)
	}

	template := string(data)
	if err := render.CheckTemplate(template); err != nil {
		return "", fmt.Errorf("%s: %w", b.TemplatePath, err)
	}

	return template, nil
}

// writeFile replaces path with data through a temporary file in the same
// directory, so a failed write never leaves a truncated page behind.
func (b *Builder) writeFile(path string, data []byte) error {
	tmp, err := afero.TempFile(b.Fs, filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		b.Fs.Remove(tmpName)
		return err
	}

	if err := b.Fs.Chmod(tmpName, 0644); err != nil {
		b.Fs.Remove(tmpName)
		return err
	}

	if err := b.Fs.Rename(tmpName, path); err != nil {
		b.Fs.Remove(tmpName)
		return err
	}

	return nil
}

// Run reads the template, fetches the group schedule, renders the four
// tracked weeks into the template and writes the page. Nothing is written
// unless every step succeeds.
func (b *Builder) Run(ctx context.Context) (Summary, error) {
	logger := b.logger()

	template, err := b.readTemplate()
	if err != nil {
		return Summary{}, err
	}

	group, err := b.Fetcher.FetchGroup(ctx, b.Group)
	if err != nil {
		return Summary{}, err
	}

	weeks := make([]render.Week, 0, render.Weeks)
	for week := 1; week <= render.Weeks; week++ {
		logger.Info("generating week", "week", week, "parity", render.WeekParity(week))
		weeks = append(weeks, render.BuildWeek(group, week))
	}

	page, err := render.Substitute(template, render.Content(weeks))
	if err != nil {
		return Summary{}, err
	}

	if err := render.Verify(page, render.Weeks); err != nil {
		return Summary{}, fmt.Errorf("generated page is malformed: %w", err)
	}

	if err := b.writeFile(b.OutputPath, []byte(page)); err != nil {
		return Summary{}, fmt.Errorf("write %s: %w", b.OutputPath, err)
	}

	summary := newSummary(b.Group, b.OutputPath, weeks)
	for _, week := range summary.Weeks {
		logger.Info("rendered week", "week", week.Index, "days", week.Days, "lessons", week.Lessons)
	}
	logger.Info("page generated", "group", b.Group, "path", b.OutputPath)

	if b.Notifier != nil {
		if err := b.Notifier.Notify(ctx, summary); err != nil {
			logger.Error("failed to send build notification", "err", err)
		}
	}

	return summary, nil
}
