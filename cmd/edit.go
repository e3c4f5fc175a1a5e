package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jessicacardoso1/taskmanager-web/internal/constants"
	"github.com/jessicacardoso1/taskmanager-web/internal/services"
)

var (
	editTitleFlag       string
	editDescriptionFlag string
	editStatusFlag      string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		engine, _, notifier := newEngine(false)
		engine.BeginView()

		// Fetch current state first so unset flags keep their values, the
		// same way the edit form is pre-populated.
		task, err := engine.Load(cmd.Context(), id)
		if err != nil {
			printNotification(notifier, cmd.OutOrStdout())
			return err
		}

		input := services.TaskInput{
			Title:       task.Title,
			Description: task.Description,
			Status:      task.Status,
		}
		if cmd.Flags().Changed("title") {
			input.Title = editTitleFlag
		}
		if cmd.Flags().Changed("description") {
			input.Description = editDescriptionFlag
		}
		if cmd.Flags().Changed("status") {
			status, err := constants.ParseStatus(editStatusFlag)
			if err != nil {
				return err
			}
			input.Status = status
		}

		err = engine.Update(cmd.Context(), id, input)
		printNotification(notifier, cmd.OutOrStdout())
		return err
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitleFlag, "title", "", "new title")
	editCmd.Flags().StringVar(&editDescriptionFlag, "description", "", "new description")
	editCmd.Flags().StringVar(&editStatusFlag, "status", "", "new status: pendente, andamento or concluida")
	rootCmd.AddCommand(editCmd)
}
