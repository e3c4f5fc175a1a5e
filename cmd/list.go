package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jessicacardoso1/taskmanager-web/internal/store"
)

var listStatusFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, optionally filtered by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := store.ParseCriterion(listStatusFlag)
		if err != nil {
			return err
		}

		engine, taskStore, notifier := newEngine(false)
		engine.BeginView()

		err = engine.List(cmd.Context())
		printNotification(notifier, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		filtered := store.Filter(taskStore.Tasks(), criterion)
		if len(filtered) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nenhuma tarefa encontrada.")
			return nil
		}

		for _, task := range filtered {
			fmt.Fprintf(cmd.OutOrStdout(), "#%d  %-12s  %s\n", task.ID, task.Status.Label(), task.Title)
			if task.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "     %s\n", task.Description)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "     Criado em: %s\n", task.CreatedAt.Format(time.RFC3339))
			if task.CompletedAt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "     Concluído em: %s\n", task.CompletedAt.Format(time.RFC3339))
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatusFlag, "status", "todos", "filter: todos, pendente, andamento or concluida")
	rootCmd.AddCommand(listCmd)
}
