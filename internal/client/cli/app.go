package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/volunteam/internal/client/api"
	"github.com/dmitrijs2005/volunteam/internal/client/config"
	"github.com/dmitrijs2005/volunteam/internal/client/loginform"
	"github.com/dmitrijs2005/volunteam/internal/client/navigation"
	"github.com/dmitrijs2005/volunteam/internal/client/services"
	"github.com/dmitrijs2005/volunteam/internal/client/session"
	"github.com/dmitrijs2005/volunteam/internal/client/storage"
	"github.com/dmitrijs2005/volunteam/internal/logging"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	api         *api.Client
	authService services.AuthService
	state       *session.State
	gate        *navigation.Gate
	form        *loginform.Form
	reader      *bufio.Reader
}

// NewApp opens the local session cache and wires the client's components:
// store -> API client -> auth service -> navigation gate.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.Open(ctx, c.CacheDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session cache", "error", err)
		return nil, err
	}

	store := session.NewStore(db, log)
	state := session.NewState()
	gate := navigation.NewGate(store, state)

	apiClient := api.NewClient(api.Config{
		BaseURL:       c.APIBaseURL,
		Timeout:       c.RequestTimeout,
		RetryAttempts: c.RetryAttempts,
		RetryDelay:    c.RetryDelay,
	}, store, log)

	authService := services.NewAuthService(apiClient, store, state, gate, log)

	return &App{
		config:      c,
		log:         log,
		db:          db,
		api:         apiClient,
		authService: authService,
		state:       state,
		gate:        gate,
		form:        loginform.New(),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the cached session, then hands control to the REPL.
// It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	route := a.authService.Restore(ctx)
	a.Root(ctx, route)
}
