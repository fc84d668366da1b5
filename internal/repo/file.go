package repo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BuzzLyutic/tasklist-server/internal/model"
)

type FileRepo struct { // Хранилище списка задач в одном JSON файле
	path   string
	atomic bool
	mu     sync.Mutex
}

// NewFileRepo returns a repo persisting to path. With atomic set, writes go
// through a temp file in the same directory followed by a rename.
func NewFileRepo(path string, atomic bool) *FileRepo {
	return &FileRepo{
		path:   path,
		atomic: atomic,
	}
}

func (r *FileRepo) Path() string {
	return r.path
}

func (r *FileRepo) Init(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := os.Stat(r.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := r.write(model.EmptyTaskList); err != nil {
		return false, err
	}
	return true, nil
}

func (r *FileRepo) Load(ctx context.Context) (model.TaskList, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrorNotFound
	}
	if err != nil {
		return nil, err
	}
	return model.TaskList(data), nil
}

func (r *FileRepo) Save(ctx context.Context, list model.TaskList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(list)
}

func (r *FileRepo) write(data []byte) error {
	if !r.atomic {
		return os.WriteFile(r.path, data, 0644)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
