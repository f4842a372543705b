package healthos

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Artemoon13/health-os/internal/config"
	"github.com/Artemoon13/health-os/internal/logging"
	"github.com/Artemoon13/health-os/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the food-search proxy server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		srv := &server.Server{
			ClientID:     cfg.FatSecretClientID,
			ClientSecret: cfg.FatSecretClientSecret,
			Log:          log,
		}
		log.Infof("search proxy listening on %s", addr)
		if err := srv.Run(addr); err != nil {
			return fmt.Errorf("run search proxy: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides LISTEN_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
