package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

var deleteYesFlag bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		engine, _, notifier := newEngine(deleteYesFlag)
		engine.BeginView()

		err = engine.Delete(cmd.Context(), id)
		printNotification(notifier, cmd.OutOrStdout())
		return err
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteYesFlag, "yes", false, "delete without asking for confirmation")
	rootCmd.AddCommand(deleteCmd)
}
