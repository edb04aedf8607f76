package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/todos/internal/adapter"
	"github.com/mmcdole/todos/internal/adapter/source/rest"
	"github.com/mmcdole/todos/internal/domain"
)

// NewClient creates the todo repository described by the application config.
// The config is validated before any client is built.
func NewClient(cfg *adapter.Config, logger *slog.Logger) (domain.TodoRepository, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return rest.NewClient(cfg.Server.URL, cfg.Server.Timeout, logger), nil
}
