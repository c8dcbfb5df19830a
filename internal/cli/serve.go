package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/aaxis-ai/reportrunner/internal/api"
	"github.com/aaxis-ai/reportrunner/internal/config"
	"github.com/aaxis-ai/reportrunner/internal/runner"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVarP(&serveInput, "input", "i", "", "Report document to serve (overrides config output path)")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost  string
	servePort  int
	serveInput string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a generated report document over HTTP",
	Long:  `Load a previously generated report document and expose it over a JSON API.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Override config from flags
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}
	path := cfg.Output.Path
	if serveInput != "" {
		path = serveInput
	}

	doc, err := runner.ReadDocument(path)
	if err != nil {
		return fmt.Errorf("load document %s: %w", path, err)
	}

	srv := api.NewServer(doc)
	srv.EnableMetrics()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("[serve] serving %d blocks from %s on http://%s", doc.TotalEntries(), path, addr)
	return http.ListenAndServe(addr, srv.Handler())
}
