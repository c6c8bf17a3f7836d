package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/digital-allies/allies/internal/assets"
	"github.com/digital-allies/allies/internal/panel"
	"github.com/digital-allies/allies/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the panel with a live counter",
	Long:  `Starts an HTTP server that renders the panel and drives each page's counter over a WebSocket. The counter lives as long as the page's connection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("dev") {
			cfg.Server.AllowAllOrigins, _ = cmd.Flags().GetBool("dev")
		}

		log := newLogger(cfg)

		content, err := panel.NewContent(cfg.Title, cfg.Description)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			BasePath: cfg.BasePath,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, content, log)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn().Err(err).Msg("shutdown")
			}
		}()

		fmt.Fprintf(os.Stderr, "allies %s serving on http://localhost:%d%s\n", Version, cfg.Server.Port, assets.MountPrefix(cfg.BasePath)+"/")
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().Bool("dev", false, "allow all CORS and WebSocket origins")
	rootCmd.AddCommand(serveCmd)
}
