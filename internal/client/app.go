package client

import (
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/work-notes/internal/adapter"
	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/models"
)

// AdapterFactory builds the server adapter once the command line overrides
// have been applied to the client configuration.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.NotesAdapter, error)

// App is the notesctl command tree bound to one server configuration.
type App struct {
	cfg        config.ClientConfig
	newAdapter AdapterFactory
	notes      adapter.NotesAdapter

	buildInfo models.AppBuildInfo

	// copyText writes to the system clipboard.
	copyText func(string) error

	root   *cobra.Command
	logger *logger.Logger
}

// NewApp builds the notesctl command tree. The adapter is created lazily so
// that commands which never talk to the server (hash-password) work offline.
func NewApp(cfg *config.ClientConfig, newAdapter AdapterFactory, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if newAdapter == nil {
		return nil, ErrNilAdapterFactory
	}

	a := &App{
		cfg:        *cfg,
		newAdapter: newAdapter,
		buildInfo:  buildInfo,
		copyText:   clipboard.WriteAll,
		logger:     logger,
	}
	a.root = a.newRootCmd()

	return a, nil
}

// Run executes the command named by os.Args.
func (a *App) Run() error {
	return a.execute(context.Background(), os.Args[1:])
}

func (a *App) execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "notesctl",
		Short:         "Command line client for the work-notes server",
		Long:          `List, read, save and download work notes kept by a work-notes server.`,
		Version:       a.buildInfo.BuildVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().String("server", "", "Server base URL (overrides CLIENT_SERVER_URL)")
	root.PersistentFlags().String("user", "", "Basic auth user (overrides CLIENT_USER)")
	root.PersistentFlags().Duration("timeout", 0, "Request timeout (overrides CLIENT_REQUEST_TIMEOUT)")
	root.PersistentFlags().Bool("json", false, "Output in JSON format")

	root.AddCommand(
		a.newListCmd(),
		a.newGetCmd(),
		a.newSaveCmd(),
		a.newDeleteCmd(),
		a.newDownloadCmd(),
		a.newVersionCmd(),
		newHashPasswordCmd(),
	)

	return root
}

// adapter returns the server adapter, building it on first use with the
// persistent flag overrides applied.
func (a *App) adapter(cmd *cobra.Command) (adapter.NotesAdapter, error) {
	if a.notes != nil {
		return a.notes, nil
	}

	cfg := a.cfg
	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.ServerURL = server
	}
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		cfg.User = user
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		cfg.RequestTimeout = timeout
	}

	notes, err := a.newAdapter(cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	a.logger.Debug().Str("server", cfg.ServerURL).Dur("timeout", cfg.RequestTimeout).Msg("server adapter created")
	a.notes = notes
	return notes, nil
}
