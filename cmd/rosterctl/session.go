package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	collectioncache "github.com/karupanerura/collection-cache"
	"github.com/karupanerura/collection-cache/internal/config"
	"github.com/karupanerura/collection-cache/internal/logger"
	"github.com/karupanerura/collection-cache/report"
	"github.com/karupanerura/collection-cache/roster"
	"github.com/karupanerura/collection-cache/source"
	"github.com/karupanerura/collection-cache/source/httpsource"
)

// session is the configured state shared by the commands that talk to the API.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	dir    *roster.Directory
}

func openSession(ctx context.Context, g *Globals) (*session, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l, err := logger.New(cfg.Log.Level, isTerminal(os.Stderr))
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	opts := []httpsource.Option{
		httpsource.WithClient(&http.Client{Timeout: cfg.API.Timeout}),
	}
	for k, v := range cfg.API.Headers {
		opts = append(opts, httpsource.WithHeader(k, v))
	}

	cacheLogger := logger.WithModule(l, "cache")
	students := roster.NewStudentCache(
		&source.LintSource[string, roster.Student]{
			Source: httpsource.New[roster.Student](cfg.API.StudentsURL(), opts...),
			KeyOf:  roster.StudentID,
		},
		collectioncache.WithErrorReporter[string, roster.Student](report.Zap(cacheLogger, "students")),
		collectioncache.WithScopeContext[string, roster.Student](ctx),
	)
	programs := roster.NewProgramCache(
		&source.LintSource[string, roster.Program]{
			Source: httpsource.New[roster.Program](cfg.API.ProgramsURL(), opts...),
			KeyOf:  roster.ProgramID,
		},
		collectioncache.WithErrorReporter[string, roster.Program](report.Zap(cacheLogger, "programs")),
		collectioncache.WithScopeContext[string, roster.Program](ctx),
	)

	return &session{
		cfg:    cfg,
		logger: l,
		dir:    roster.NewDirectory(students, programs),
	}, nil
}

func (s *session) Close() {
	s.dir.Close()
	_ = s.logger.Sync()
}
