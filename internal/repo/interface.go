package repo

import (
	"context"
	"errors"

	"github.com/BuzzLyutic/tasklist-server/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
)

// TaskListRepository определяет интерфейс хранилища списка задач
type TaskListRepository interface {
	// Init creates an empty task list if none is stored yet and reports whether it did.
	Init(ctx context.Context) (bool, error)
	Load(ctx context.Context) (model.TaskList, error)
	// Save fully replaces the stored task list.
	Save(ctx context.Context, list model.TaskList) error
}
