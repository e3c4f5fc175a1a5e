package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
)

// TaskRepository backs the fixture server with a sqlite task table. IDs are
// integer autoincrements assigned at creation, matching the remote store the
// client is written against.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title, description string) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
		Status:      constants.StatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// Replace overwrites title, description, status and completedAt wholesale.
// There are no partial updates in this protocol.
func (r *TaskRepository) Replace(ctx context.Context, task *model.Task) error {
	var existing model.Task
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", task.ID).Error; err != nil {
		return err
	}

	existing.Title = task.Title
	existing.Description = task.Description
	existing.Status = task.Status
	existing.CompletedAt = task.CompletedAt

	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
