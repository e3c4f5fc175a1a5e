package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	config "github.com/jessicacardoso1/taskmanager-web/internal/configs"
	"github.com/jessicacardoso1/taskmanager-web/internal/notify"
	"github.com/jessicacardoso1/taskmanager-web/internal/remote"
	"github.com/jessicacardoso1/taskmanager-web/internal/services"
	"github.com/jessicacardoso1/taskmanager-web/internal/store"
)

func newEngine(autoConfirm bool) (*services.SyncService, *store.TaskStore, *notify.Queue) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	cfg := config.Load()

	client := remote.NewClient(cfg.APIBaseURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	taskStore := store.NewTaskStore()
	notifier := notify.NewQueue(time.Duration(cfg.NotificationTTLSeconds) * time.Second)
	machine := services.NewStatusMachine(cfg.LegacyCompletionTimestamps)
	ui := &termUI{in: os.Stdin, out: os.Stdout, autoConfirm: autoConfirm}

	engine := services.NewSyncService(
		client,
		taskStore,
		notifier,
		ui,
		machine,
		time.Duration(cfg.NavigateDelayMS)*time.Millisecond,
	)

	return engine, taskStore, notifier
}

func printNotification(notifier *notify.Queue, w io.Writer) {
	if n, ok := notifier.Active(); ok {
		fmt.Fprintf(w, "[%s] %s\n", n.Severity, n.Message)
	}
}
