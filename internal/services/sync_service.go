package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	dto "github.com/jessicacardoso1/taskmanager-web/internal/data_models"
	apperrors "github.com/jessicacardoso1/taskmanager-web/internal/errors"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
	"github.com/jessicacardoso1/taskmanager-web/internal/notify"
	"github.com/jessicacardoso1/taskmanager-web/internal/remote"
	"github.com/jessicacardoso1/taskmanager-web/internal/store"
)

// UI is the capability set delegated to the excluded presentation layer:
// confirmation prompts and navigation effects triggered by sync outcomes.
type UI interface {
	Confirm(message string) bool
	Navigate(path string)
	ScheduleNavigate(path string, delay time.Duration)
}

// TaskInput is the user-editable portion of a task.
type TaskInput struct {
	Title       string
	Description string
	Status      constants.TaskStatus
}

const DefaultNavigateDelay = 1500 * time.Millisecond

// SyncService keeps the TaskStore consistent with the remote authority. Each
// operation is an independent round trip: no retries, no deduplication, no
// ordering guarantee between operations in flight at the same time.
type SyncService struct {
	client        *remote.Client
	store         *store.TaskStore
	notifier      *notify.Queue
	ui            UI
	machine       *StatusMachine
	navigateDelay time.Duration

	mu         sync.Mutex
	generation string
	loading    bool
}

func NewSyncService(
	client *remote.Client,
	taskStore *store.TaskStore,
	notifier *notify.Queue,
	ui UI,
	machine *StatusMachine,
	navigateDelay time.Duration,
) *SyncService {
	if navigateDelay <= 0 {
		navigateDelay = DefaultNavigateDelay
	}
	return &SyncService{
		client:        client,
		store:         taskStore,
		notifier:      notifier,
		ui:            ui,
		machine:       machine,
		navigateDelay: navigateDelay,
		generation:    uuid.NewString(),
	}
}

// BeginView rotates the request-generation token. Results of calls issued
// under an older token are discarded at the resolution boundary, so an
// abandoned view can no longer mutate shared state.
func (s *SyncService) BeginView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation = uuid.NewString()
	return s.generation
}

func (s *SyncService) currentGeneration() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *SyncService) stale(generation string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation != generation
}

// Loading reports whether a list fetch is in flight. It gates rendering, not
// the issuing of further calls.
func (s *SyncService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *SyncService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// List fetches the full collection and replaces the store wholesale. An
// advisory envelope message is surfaced as a success notification even though
// nothing went wrong. On failure the store is left untouched.
func (s *SyncService) List(ctx context.Context) error {
	generation := s.currentGeneration()
	s.setLoading(true)
	tasks, message, err := s.client.List(ctx)
	s.setLoading(false)

	if s.stale(generation) {
		return err
	}

	if err != nil {
		s.notifier.Error(failureMessage(err, constants.MsgErrList))
		return err
	}

	s.store.ReplaceAll(tasks)
	if message != "" {
		s.notifier.Success(message)
	}
	return nil
}

// Create validates the title before any call leaves the client and always
// submits with Pending status. On success the form view is navigated away
// after the fixed delay; on failure the form stays populated for retry.
func (s *SyncService) Create(ctx context.Context, input TaskInput) error {
	if err := model.ValidateTitle(input.Title); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	generation := s.currentGeneration()
	_, err := s.client.Create(ctx, dto.CreateTaskRequest{
		Titulo:    input.Title,
		Descricao: input.Description,
		Status:    constants.StatusPending.Wire(),
	})

	if s.stale(generation) {
		return err
	}

	if err != nil {
		s.notifier.Error(failureMessage(err, constants.MsgErrCreate))
		return err
	}

	s.notifier.Success(constants.MsgCreated)
	s.ui.ScheduleNavigate("/", s.navigateDelay)
	return nil
}

// Load fetches a single task to populate the edit form. On failure the user
// is notified and navigated back to the list.
func (s *SyncService) Load(ctx context.Context, id int) (*model.Task, error) {
	generation := s.currentGeneration()
	task, err := s.client.Get(ctx, id)

	if s.stale(generation) {
		return nil, err
	}

	if err != nil {
		s.notifier.Error(failureMessage(err, constants.MsgErrLoad))
		s.ui.ScheduleNavigate("/", s.navigateDelay)
		return nil, err
	}

	return task, nil
}

// Update recomputes completedAt immediately before submission and sends the
// full representation. Success is the update endpoint's bare 204.
func (s *SyncService) Update(ctx context.Context, id int, input TaskInput) error {
	if err := model.ValidateTitle(input.Title); err != nil {
		s.notifier.Error(err.Error())
		return err
	}

	stamp := s.machine.CompletionStamp(input.Status, time.Now())

	generation := s.currentGeneration()
	err := s.client.Update(ctx, id, dto.UpdateTaskRequest{
		ID:            id,
		Titulo:        input.Title,
		Descricao:     input.Description,
		Status:        input.Status.Wire(),
		DataConclusao: dto.FormatTime(stamp),
	})

	if s.stale(generation) {
		return err
	}

	if err != nil {
		s.notifier.Error(failureMessage(err, constants.MsgErrUpdate))
		return err
	}

	s.notifier.Success(constants.MsgUpdated)
	s.ui.ScheduleNavigate("/", s.navigateDelay)
	return nil
}

// Delete asks for confirmation, then removes the task remotely and from the
// store. A failure meaning the task is already gone server-side is an
// expected race: the user is still notified, and a forced List reconciles
// the cache. Any other failure leaves the store alone since the task may
// legitimately still exist.
func (s *SyncService) Delete(ctx context.Context, id int) error {
	if !s.ui.Confirm(constants.MsgConfirmDelete) {
		return nil
	}

	generation := s.currentGeneration()
	message, err := s.client.Delete(ctx, id)

	if s.stale(generation) {
		return err
	}

	if err != nil {
		s.notifier.Error(failureMessage(err, constants.MsgErrDelete))
		if apperrors.IsNotFound(err) {
			_ = s.List(ctx)
		}
		return err
	}

	s.store.Remove(id)
	if message == "" {
		message = constants.MsgDeleted
	}
	s.notifier.Success(message)
	return nil
}

// failureMessage prefers the server-provided message and falls back to the
// generic localized text; transport failures and application-level failures
// surface identically.
func failureMessage(err error, fallback string) string {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
