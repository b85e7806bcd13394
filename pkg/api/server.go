package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/semvercmp/pkg/comparison"
	"github.com/NVIDIA/semvercmp/pkg/logging"
	"github.com/NVIDIA/semvercmp/pkg/server"
)

const (
	name           = "semvercmpd"
	versionDefault = "dev"

	comparePath  = "/v1/compare"
	validatePath = "/v1/validate"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/semvercmp/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := newServer(server.NewConfig())

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newServer wires the comparison service into a server built from cfg.
// The bulk validation limit follows the server configuration.
func newServer(cfg *server.Config) *server.Server {
	svc := comparison.New(
		comparison.WithVersion(version),
		comparison.WithMaxBulk(cfg.MaxBulkRequests),
	)

	return server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(svc)),
	)
}

func routes(svc *comparison.Service) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		comparePath:  svc.HandleCompare,
		validatePath: svc.HandleValidate,
	}
}
