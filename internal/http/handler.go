package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	dto "github.com/jessicacardoso1/taskmanager-web/internal/data_models"
	"github.com/jessicacardoso1/taskmanager-web/internal/http/validators"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
	repository "github.com/jessicacardoso1/taskmanager-web/internal/repositories"
)

// Handler serves the /Tarefas protocol the client is written against:
// success-flag envelopes on list/get/create/delete, and a bare 204 on
// update. Delete of a missing id answers a false envelope with the exact
// not-found message, which is what triggers client-side reconciliation.
type Handler struct {
	repo *repository.TaskRepository
}

func NewHandler(repo *repository.TaskRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Envelope{
			IsSuccess: false,
			Message:   constants.MsgErrList,
		})
	}

	payloads := make([]dto.TaskPayload, 0, len(tasks))
	for _, task := range tasks {
		payloads = append(payloads, dto.PayloadFrom(task))
	}

	return c.JSON(http.StatusOK, dto.Envelope{IsSuccess: true, Data: payloads})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "id inválido"})
	}

	task, err := h.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusOK, dto.Envelope{
			IsSuccess: false,
			Message:   constants.MsgTaskNotFound,
		})
	}

	return c.JSON(http.StatusOK, dto.Envelope{IsSuccess: true, Data: dto.PayloadFrom(*task)})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "JSON inválido"})
	}
	if err := validators.ValidateTitulo(req.Titulo); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: err.Error()})
	}

	task, err := h.repo.CreateTask(c.Request().Context(), req.Titulo, req.Descricao)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.Envelope{
			IsSuccess: false,
			Message:   constants.MsgErrCreate,
		})
	}

	return c.JSON(http.StatusOK, dto.Envelope{
		IsSuccess: true,
		Message:   constants.MsgCreated,
		Data:      dto.PayloadFrom(*task),
	})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "id inválido"})
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "JSON inválido"})
	}
	if err := validators.ValidateTitulo(req.Titulo); err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: err.Error()})
	}

	status, err := constants.StatusFromWire(req.Status)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "status inválido"})
	}

	completedAt, err := dto.ParseTime(req.DataConclusao)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "dataConclusao inválida"})
	}

	task := model.Task{
		ID:          id,
		Title:       req.Titulo,
		Description: req.Descricao,
		Status:      status,
		CompletedAt: completedAt,
	}

	if err := h.repo.Replace(c.Request().Context(), &task); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, dto.Envelope{
				IsSuccess: false,
				Message:   constants.MsgTaskNotFound,
			})
		}
		return c.JSON(http.StatusInternalServerError, dto.Envelope{
			IsSuccess: false,
			Message:   constants.MsgErrUpdate,
		})
	}

	// Update signals success via status code alone; no envelope here.
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.Envelope{IsSuccess: false, Message: "id inválido"})
	}

	if err := h.repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, dto.Envelope{
				IsSuccess: false,
				Message:   constants.MsgTaskNotFound,
			})
		}
		return c.JSON(http.StatusInternalServerError, dto.Envelope{
			IsSuccess: false,
			Message:   constants.MsgErrDelete,
		})
	}

	return c.JSON(http.StatusOK, dto.Envelope{IsSuccess: true, Message: constants.MsgDeleted})
}

func taskID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
