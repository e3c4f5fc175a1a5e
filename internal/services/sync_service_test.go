package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	dto "github.com/jessicacardoso1/taskmanager-web/internal/data_models"
	apperrors "github.com/jessicacardoso1/taskmanager-web/internal/errors"
	model "github.com/jessicacardoso1/taskmanager-web/internal/models"
	"github.com/jessicacardoso1/taskmanager-web/internal/notify"
	"github.com/jessicacardoso1/taskmanager-web/internal/remote"
	"github.com/jessicacardoso1/taskmanager-web/internal/store"
)

// uiSpy records the effects the sync engine delegates to the UI layer.
type uiSpy struct {
	mu            sync.Mutex
	confirmAnswer bool
	confirms      int
	navigations   []string
}

func (u *uiSpy) Confirm(string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.confirms++
	return u.confirmAnswer
}

func (u *uiSpy) Navigate(path string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.navigations = append(u.navigations, path)
}

func (u *uiSpy) ScheduleNavigate(path string, _ time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.navigations = append(u.navigations, path)
}

func (u *uiSpy) navigated() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.navigations...)
}

func newTestEngine(t *testing.T, handler http.Handler, confirm bool) (*SyncService, *store.TaskStore, *notify.Queue, *uiSpy) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := remote.NewClient(srv.URL, 5*time.Second)
	taskStore := store.NewTaskStore()
	notifier := notify.NewQueue(time.Minute)
	ui := &uiSpy{confirmAnswer: confirm}
	engine := NewSyncService(client, taskStore, notifier, ui, NewStatusMachine(false), time.Millisecond)

	return engine, taskStore, notifier, ui
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func listEnvelope(message string, tasks ...dto.TaskPayload) dto.Envelope {
	return dto.Envelope{IsSuccess: true, Message: message, Data: tasks}
}

func payload(id int, status int) dto.TaskPayload {
	return dto.TaskPayload{
		ID:          id,
		Titulo:      "Tarefa",
		Status:      status,
		DataCriacao: "2026-08-30T10:00:00Z",
	}
}

func TestListReplacesStoreAndSurfacesAdvisoryMessage(t *testing.T) {
	engine, taskStore, notifier, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, listEnvelope("note", payload(1, 0), payload(2, 2)))
	}), false)

	if err := engine.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if taskStore.Len() != 2 {
		t.Errorf("expected 2 tasks in store, got %d", taskStore.Len())
	}

	n, ok := notifier.Active()
	if !ok {
		t.Fatal("expected a notification for the advisory message")
	}
	if n.Message != "note" || n.Severity != notify.SeveritySuccess {
		t.Errorf("expected success notification %q, got %+v", "note", n)
	}
}

func TestListFailureLeavesStoreUntouched(t *testing.T) {
	engine, taskStore, notifier, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, dto.Envelope{IsSuccess: false, Message: "indisponível"})
	}), false)

	taskStore.ReplaceAll([]model.Task{{ID: 1, Title: "existente"}})

	if err := engine.List(context.Background()); err == nil {
		t.Fatal("expected list to fail")
	}

	if taskStore.Len() != 1 {
		t.Errorf("store must stay untouched on failure, got %d tasks", taskStore.Len())
	}

	n, _ := notifier.Active()
	if n.Severity != notify.SeverityError || n.Message != "indisponível" {
		t.Errorf("expected error notification with server message, got %+v", n)
	}
}

func TestCreateRejectsBadTitlesBeforeAnyCall(t *testing.T) {
	var requests atomic.Int64
	engine, _, _, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		respondJSON(w, http.StatusOK, dto.Envelope{IsSuccess: true})
	}), false)

	longTitle := ""
	for i := 0; i < 101; i++ {
		longTitle += "a"
	}

	if err := engine.Create(context.Background(), TaskInput{Title: ""}); !errors.Is(err, apperrors.ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
	if err := engine.Create(context.Background(), TaskInput{Title: longTitle}); !errors.Is(err, apperrors.ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}

	if requests.Load() != 0 {
		t.Errorf("no request may leave the client for an invalid title, got %d", requests.Load())
	}
}

func TestCreateAlwaysSubmitsPendingAndNavigatesAway(t *testing.T) {
	var submitted atomic.Int64
	engine, _, notifier, ui := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode create request: %v", err)
		}
		submitted.Store(int64(req.Status))
		respondJSON(w, http.StatusOK, dto.Envelope{IsSuccess: true})
	}), false)

	// The input status is ignored on creation.
	err := engine.Create(context.Background(), TaskInput{Title: "Nova", Status: constants.StatusCompleted})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if submitted.Load() != 0 {
		t.Errorf("creation must submit status Pending (0), got %d", submitted.Load())
	}

	n, _ := notifier.Active()
	if n.Message != constants.MsgCreated {
		t.Errorf("expected %q, got %+v", constants.MsgCreated, n)
	}

	if navs := ui.navigated(); len(navs) != 1 || navs[0] != "/" {
		t.Errorf("expected a scheduled navigation to /, got %v", navs)
	}
}

func TestCreateFailureKeepsTheForm(t *testing.T) {
	engine, _, notifier, ui := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, dto.Envelope{IsSuccess: false, Message: "título duplicado"})
	}), false)

	if err := engine.Create(context.Background(), TaskInput{Title: "Nova"}); err == nil {
		t.Fatal("expected create to fail")
	}

	n, _ := notifier.Active()
	if n.Severity != notify.SeverityError || n.Message != "título duplicado" {
		t.Errorf("expected server error message, got %+v", n)
	}
	if len(ui.navigated()) != 0 {
		t.Error("a failed create must not navigate away")
	}
}

func TestLoadFailureNavigatesBackToList(t *testing.T) {
	engine, _, notifier, ui := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, dto.Envelope{IsSuccess: false, Message: constants.MsgTaskNotFound})
	}), false)

	if _, err := engine.Load(context.Background(), 9); err == nil {
		t.Fatal("expected load to fail")
	}

	n, _ := notifier.Active()
	if n.Severity != notify.SeverityError {
		t.Errorf("expected error notification, got %+v", n)
	}
	if navs := ui.navigated(); len(navs) != 1 || navs[0] != "/" {
		t.Errorf("expected navigation back to /, got %v", navs)
	}
}

func TestUpdateStampsCompletionRightBeforeSubmit(t *testing.T) {
	before := time.Now()
	var got dto.UpdateTaskRequest
	engine, _, notifier, ui := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode update request: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}), false)

	err := engine.Update(context.Background(), 5, TaskInput{Title: "Relatório", Status: constants.StatusCompleted})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got.ID != 5 || got.Status != 2 {
		t.Errorf("unexpected submitted representation: %+v", got)
	}
	if got.DataConclusao == nil {
		t.Fatal("expected a completion timestamp for status Completed")
	}
	stamp, err := time.Parse(time.RFC3339, *got.DataConclusao)
	if err != nil {
		t.Fatalf("bad timestamp on the wire: %v", err)
	}
	if stamp.Before(before.Truncate(time.Second)) || stamp.After(time.Now()) {
		t.Errorf("stamp %v is not within the call window", stamp)
	}

	n, _ := notifier.Active()
	if n.Message != constants.MsgUpdated {
		t.Errorf("expected %q, got %+v", constants.MsgUpdated, n)
	}
	if navs := ui.navigated(); len(navs) != 1 {
		t.Errorf("expected one navigation, got %v", navs)
	}
}

func TestUpdateClearsCompletionForNonCompletedStatus(t *testing.T) {
	var got dto.UpdateTaskRequest
	engine, _, _, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusNoContent)
	}), false)

	if err := engine.Update(context.Background(), 5, TaskInput{Title: "x", Status: constants.StatusInProgress}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if got.DataConclusao != nil {
		t.Errorf("completedAt must be cleared for non-completed saves, got %v", *got.DataConclusao)
	}
}

func TestUpdateFailureKeepsTheForm(t *testing.T) {
	engine, _, notifier, ui := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusInternalServerError, dto.Envelope{IsSuccess: false})
	}), false)

	if err := engine.Update(context.Background(), 5, TaskInput{Title: "x"}); err == nil {
		t.Fatal("expected update to fail")
	}

	n, _ := notifier.Active()
	if n.Message != constants.MsgErrUpdate {
		t.Errorf("expected generic fallback %q, got %+v", constants.MsgErrUpdate, n)
	}
	if len(ui.navigated()) != 0 {
		t.Error("a failed update must not navigate away")
	}
}

func TestDeleteDeclinedConfirmationMakesNoCall(t *testing.T) {
	var requests atomic.Int64
	engine, taskStore, _, ui := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}), false)

	taskStore.ReplaceAll([]model.Task{{ID: 7}})

	if err := engine.Delete(context.Background(), 7); err != nil {
		t.Fatalf("declined delete must not error: %v", err)
	}

	if ui.confirms != 1 {
		t.Errorf("expected one confirmation prompt, got %d", ui.confirms)
	}
	if requests.Load() != 0 {
		t.Error("declined delete must not reach the remote store")
	}
	if taskStore.Len() != 1 {
		t.Error("declined delete must not touch the store")
	}
}

func TestDeleteSuccessRemovesFromStore(t *testing.T) {
	engine, taskStore, notifier, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, dto.Envelope{IsSuccess: true, Message: constants.MsgDeleted})
	}), true)

	taskStore.ReplaceAll([]model.Task{{ID: 7}, {ID: 8}})

	if err := engine.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := taskStore.Get(7); ok {
		t.Error("task 7 should be gone from the store")
	}
	if taskStore.Len() != 1 {
		t.Errorf("expected 1 task left, got %d", taskStore.Len())
	}

	n, _ := notifier.Active()
	if n.Message != constants.MsgDeleted || n.Severity != notify.SeveritySuccess {
		t.Errorf("expected success notification, got %+v", n)
	}
}

func TestDeleteOfVanishedTaskReconcilesTheCache(t *testing.T) {
	engine, taskStore, notifier, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			// Someone else already deleted task 7.
			respondJSON(w, http.StatusOK, dto.Envelope{IsSuccess: false, Message: constants.MsgTaskNotFound})
		case http.MethodGet:
			respondJSON(w, http.StatusOK, listEnvelope("", payload(1, 0)))
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}), true)

	taskStore.ReplaceAll([]model.Task{{ID: 7}, {ID: 1}})

	if err := engine.Delete(context.Background(), 7); err == nil {
		t.Fatal("expected the delete itself to report failure")
	}

	if _, ok := taskStore.Get(7); ok {
		t.Error("reconciliation should have dropped task 7")
	}
	if taskStore.Len() != 1 {
		t.Errorf("expected the reloaded collection, got %d tasks", taskStore.Len())
	}

	n, _ := notifier.Active()
	if n.Severity != notify.SeverityError || n.Message != constants.MsgTaskNotFound {
		t.Errorf("the user must still see the delete failure, got %+v", n)
	}
}

func TestDeleteOtherFailureDoesNotTouchStore(t *testing.T) {
	engine, taskStore, _, _ := newTestEngine(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusInternalServerError, dto.Envelope{IsSuccess: false, Message: "erro interno"})
	}), true)

	taskStore.ReplaceAll([]model.Task{{ID: 7}})

	if err := engine.Delete(context.Background(), 7); err == nil {
		t.Fatal("expected delete to fail")
	}

	// The task may still legitimately exist server-side.
	if _, ok := taskStore.Get(7); !ok {
		t.Error("a non-not-found failure must not remove the task")
	}
}

func TestStaleGenerationDiscardsResolution(t *testing.T) {
	var engine *SyncService
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The view is abandoned while the request is in flight.
		engine.BeginView()
		respondJSON(w, http.StatusOK, listEnvelope("note", payload(1, 0)))
	})

	var taskStore *store.TaskStore
	var notifier *notify.Queue
	engine, taskStore, notifier, _ = newTestEngine(t, handler, false)

	engine.BeginView()
	if err := engine.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if taskStore.Len() != 0 {
		t.Error("a stale resolution must not touch the store")
	}
	if _, ok := notifier.Active(); ok {
		t.Error("a stale resolution must not post notifications")
	}
}

func TestLoadingFlagIsSetDuringListFetch(t *testing.T) {
	var engine *SyncService
	var sawLoading atomic.Bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLoading.Store(engine.Loading())
		respondJSON(w, http.StatusOK, listEnvelope(""))
	})

	engine, _, _, _ = newTestEngine(t, handler, false)

	if err := engine.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if !sawLoading.Load() {
		t.Error("loading flag should be up while the fetch is in flight")
	}
	if engine.Loading() {
		t.Error("loading flag should be down after resolution")
	}
}
