package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jessicacardoso1/taskmanager-web/internal/services"
)

var (
	createTitleFlag       string
	createDescriptionFlag string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new task",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, _, notifier := newEngine(false)
		engine.BeginView()

		err := engine.Create(cmd.Context(), services.TaskInput{
			Title:       createTitleFlag,
			Description: createDescriptionFlag,
		})
		printNotification(notifier, cmd.OutOrStdout())
		return err
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitleFlag, "title", "", "task title (required, up to 100 characters)")
	createCmd.Flags().StringVar(&createDescriptionFlag, "description", "", "task description")
	rootCmd.AddCommand(createCmd)
}
