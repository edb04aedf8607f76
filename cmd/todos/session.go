package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmcdole/todos/internal/adapter"
	"github.com/mmcdole/todos/internal/adapter/source"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/todo"
)

// session is a configured coordinator ready to talk to the server
type session struct {
	cfg    *adapter.Config
	logger *slog.Logger
	coord  *todo.Coordinator
	log    io.Closer
}

// opener builds a session from the config in configDir ("" for the defaults)
type opener func(configDir string) (*session, error)

// loadConfig loads configuration from configDir, or the default locations
func loadConfig(configDir string) (*adapter.Config, error) {
	if configDir != "" {
		return adapter.LoadConfigFrom(configDir)
	}
	return adapter.LoadConfig()
}

func openSession(configDir string) (*session, error) {
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logFile, err := adapter.OpenLog(cfg.Logging)
	if err != nil {
		// An unwritable log file should not stop the client
		logger, logFile = adapter.NullLogger(), nil
	}
	slog.SetDefault(logger)

	logger.Info("starting todos", "version", Version, "server", cfg.Server.URL, "user_id", cfg.Server.UserID)

	repo, err := source.NewClient(cfg, logger)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, fmt.Errorf("failed to create todo client: %w", err)
	}

	s := newSession(cfg, repo, logger)
	s.log = logFile
	return s, nil
}

// Close releases the log file, if one was opened
func (s *session) Close() error {
	if s.log == nil {
		return nil
	}
	return s.log.Close()
}

func newSession(cfg *adapter.Config, repo domain.TodoRepository, logger *slog.Logger) *session {
	coord := todo.NewCoordinator(repo, todo.Options{
		UserID:       cfg.Server.UserID,
		ErrorTimeout: cfg.UI.ErrorTimeout,
		Logger:       logger,
	})
	coord.SetFilter(cfg.Filter())
	return &session{cfg: cfg, logger: logger, coord: coord}
}

// load fetches the list and fails if it could not be loaded
func (s *session) load(ctx context.Context) error {
	s.coord.Await(ctx, s.coord.Load())
	return s.failure()
}

// apply runs effects to completion and reports the coordinator's error, if any
func (s *session) apply(ctx context.Context, effects ...todo.Effect) error {
	s.coord.Await(ctx, effects...)
	return s.failure()
}

// failure converts the active notice into an error
func (s *session) failure() error {
	if kind := s.coord.Error(); kind != domain.ErrorNone {
		return errors.New(kind.Message())
	}
	return nil
}
