package handler

import (
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/tasklist-server/internal/service"
	"github.com/BuzzLyutic/tasklist-server/pkg/respond"
)

const maxBodyBytes = 10 << 20

type TaskListHandler struct {
	service *service.TaskListService
	logger  *zap.Logger
}

func NewTaskListHandler(srv *service.TaskListService, logger *zap.Logger) *TaskListHandler {
	return &TaskListHandler{
		service: srv,
		logger:  logger,
	}
}

// Save заменяет сохраненный список задач телом запроса
func (h *TaskListHandler) Save(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	list, err := h.service.Save(r.Context(), body)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	h.logger.Info("tasks saved", zap.Int("tasks", list.Count()))
	respond.Success(w, r)
}

func (h *TaskListHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Empty(w, r, http.StatusNotFound)
}

// Ошибки разбора и записи клиент видит одинаково: 500 и текст ошибки
func (h *TaskListHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidJSON):
		h.logger.Warn("rejected task list", zap.Error(err))
	default:
		h.logger.Error("failed to save tasks", zap.Error(err))
	}
	respond.Error(w, r, http.StatusInternalServerError, err.Error())
}
