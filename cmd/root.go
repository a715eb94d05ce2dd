package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hanzi",
	Short: "Daily Chinese character flashcards",
	Long:  "hanzi shows the characters scheduled for each day as flashcards and quizzes you on their readings, meanings and phrases.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !reportLoadError(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to hanzi.yaml (default ./hanzi.yaml, then the user config dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides store.dsn)")
	rootCmd.PersistentFlags().String("dict", "", "Dictionary document (overrides data.dictionary)")
	rootCmd.PersistentFlags().String("schedule", "", "Schedule document (overrides data.schedule)")

	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(dictCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the SQLite path using --db (highest priority), then
// a non-empty dsn from the config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, dsn string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if dsn != "" {
		return dsn, store.EnsureDir(dsn)
	}
	return store.DefaultDBPath()
}
