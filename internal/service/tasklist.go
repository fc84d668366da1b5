package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/BuzzLyutic/tasklist-server/internal/model"
	"github.com/BuzzLyutic/tasklist-server/internal/repo"
)

var (
	ErrInvalidJSON = errors.New("invalid json")
)

type TaskListService struct {
	repo repo.TaskListRepository
}

func NewTaskListService(repo repo.TaskListRepository) *TaskListService {
	return &TaskListService{repo: repo}
}

// Init гарантирует, что в хранилище есть список задач (пустой, если его не было)
func (s *TaskListService) Init(ctx context.Context) (bool, error) {
	created, err := s.repo.Init(ctx)
	if err != nil {
		return false, fmt.Errorf("init task list: %w", err)
	}
	return created, nil
}

func (s *TaskListService) Load(ctx context.Context) (model.TaskList, error) {
	return s.repo.Load(ctx)
}

// Save decodes body and replaces the stored list with its 2-space indented form.
// Nothing is written when body is not valid JSON.
func (s *TaskListService) Save(ctx context.Context, body []byte) (model.TaskList, error) {
	list, err := s.format(body)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("save task list: %w", err)
	}
	return list, nil
}

func (s *TaskListService) format(body []byte) (model.TaskList, error) {
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("%w: body is not valid UTF-8", ErrInvalidJSON)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// Indent сохраняет порядок ключей и запись чисел
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(body), "", "  "); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return model.TaskList(buf.Bytes()), nil
}
