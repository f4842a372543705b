package healthos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/config"
	"github.com/Artemoon13/health-os/internal/db"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Manage the optional remote sync boundary",
}

var syncLoginCmd = &cobra.Command{
	Use:   "login <user-id>",
	Short: "Attach this device to a sync account and pull remote state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			if app.Cfg.SyncBackend == config.SyncDisabled {
				return fmt.Errorf("sync is disabled: set SYNC_BACKEND to http or postgres")
			}
			if err := db.SetSetting(app.DB, "sync_user_id", args[0]); err != nil {
				return err
			}
			app.UserID = args[0]
			if app.Remote == nil {
				if err := app.connectRemote(); err != nil {
					return err
				}
			}
			payload, err := app.Remote.Pull(cmd.Context(), app.UserID)
			if err != nil {
				return fmt.Errorf("pull remote state: %w", err)
			}
			if payload != nil {
				app.Store.Hydrate(hydratePayload(payload))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s, state synced.\n", args[0])
			return nil
		})
	},
}

var syncLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Detach this device from its sync account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			if app.Syncer != nil {
				app.Syncer.Close()
				app.Syncer = nil
			}
			if err := db.SetSetting(app.DB, "sync_user_id", ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out. Local data untouched.")
			return nil
		})
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the current local state to the remote now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			if app.Syncer == nil {
				return fmt.Errorf("not logged in: run 'healthos sync login <user-id>' first")
			}
			if err := app.Syncer.Flush(cmd.Context()); err != nil {
				return fmt.Errorf("push state: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Pushed.")
			return nil
		})
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local collections with the remote copy",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			if app.Remote == nil || app.UserID == "" {
				return fmt.Errorf("not logged in: run 'healthos sync login <user-id>' first")
			}
			payload, err := app.Remote.Pull(cmd.Context(), app.UserID)
			if err != nil {
				return fmt.Errorf("pull remote state: %w", err)
			}
			if payload != nil {
				app.Store.Hydrate(hydratePayload(payload))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Pulled.")
			return nil
		})
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync backend, account, and last push result",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(app *App) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Backend: %s\n", app.Cfg.SyncBackend)
			if app.UserID == "" {
				fmt.Fprintln(out, "Account: not logged in")
				return nil
			}
			fmt.Fprintf(out, "Account: %s\n", app.UserID)
			if app.Syncer == nil {
				return nil
			}
			if app.Syncer.Pending() {
				fmt.Fprintln(out, "Push: pending")
			}
			if err := app.Syncer.LastErr(); err != nil {
				fmt.Fprintf(out, "Last push: failed (%v)\n", err)
			} else {
				fmt.Fprintln(out, "Last push: ok")
			}
			return nil
		})
	},
}

func init() {
	syncCmd.AddCommand(syncLoginCmd, syncLogoutCmd, syncPushCmd, syncPullCmd, syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
