package dto

import (
	"time"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
)

// TaskPayload is the wire representation of a task, shared by the remote
// client and the fixture server. Field names follow the origin store.
type TaskPayload struct {
	ID            int     `json:"id"`
	Titulo        string  `json:"titulo"`
	Descricao     string  `json:"descricao"`
	Status        int     `json:"status"`
	DataCriacao   string  `json:"dataCriacao"`
	DataConclusao *string `json:"dataConclusao"`
}

type CreateTaskRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Status    int    `json:"status"`
}

// UpdateTaskRequest is the full replacement representation submitted on save.
type UpdateTaskRequest struct {
	ID            int     `json:"id"`
	Titulo        string  `json:"titulo"`
	Descricao     string  `json:"descricao"`
	Status        int     `json:"status"`
	DataConclusao *string `json:"dataConclusao"`
}

func (p TaskPayload) Model() (model.Task, error) {
	status, err := constants.StatusFromWire(p.Status)
	if err != nil {
		return model.Task{}, err
	}

	createdAt, err := time.Parse(time.RFC3339, p.DataCriacao)
	if err != nil {
		return model.Task{}, err
	}

	completedAt, err := ParseTime(p.DataConclusao)
	if err != nil {
		return model.Task{}, err
	}

	return model.Task{
		ID:          p.ID,
		Title:       p.Titulo,
		Description: p.Descricao,
		Status:      status,
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}, nil
}

func PayloadFrom(t model.Task) TaskPayload {
	return TaskPayload{
		ID:            t.ID,
		Titulo:        t.Title,
		Descricao:     t.Description,
		Status:        t.Status.Wire(),
		DataCriacao:   t.CreatedAt.Format(time.RFC3339),
		DataConclusao: FormatTime(t.CompletedAt),
	}
}

func FormatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func ParseTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
