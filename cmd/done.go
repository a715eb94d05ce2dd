package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <date>",
	Short: "Mark a scheduled date as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDone(cmd, args[0], true)
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo <date>",
	Short: "Clear the completion mark of a scheduled date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDone(cmd, args[0], false)
	},
}

func setDone(cmd *cobra.Command, date string, done bool) error {
	e, err := setupEnv(cmd, envOptions{})
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.requireDate(date); err != nil {
		return err
	}

	ctx := cmd.Context()
	if done {
		err = e.svc.Tracker.MarkDone(ctx, date)
	} else {
		err = e.svc.Tracker.Unmark(ctx, date)
	}
	if err != nil {
		return fmt.Errorf("update %s: %w", date, err)
	}

	if done {
		fmt.Fprintf(cmd.OutOrStdout(), "%s marked done.\n", date)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s marked not done.\n", date)
	}
	return nil
}
