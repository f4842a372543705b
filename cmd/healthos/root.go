package healthos

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "healthos",
	Short: "healthos tracks food, activity, sleep, and recovery from your terminal",
	Long: "healthos is a local-first health tracking CLI: log food, activity, water," +
		" weight, and sleep, and get a daily balance, recovery score, system score," +
		" and a single priority for today. State syncs to a remote account when configured.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
