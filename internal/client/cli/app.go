package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/quantumio/qtask/internal/client/api"
	"github.com/quantumio/qtask/internal/client/config"
	"github.com/quantumio/qtask/internal/client/notify"
	"github.com/quantumio/qtask/internal/client/repositories/kvstore"
	"github.com/quantumio/qtask/internal/client/services"
	"github.com/quantumio/qtask/internal/client/state"
	"github.com/quantumio/qtask/internal/client/tokenstore"
	"github.com/quantumio/qtask/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the stores and services behind the REPL commands.
type App struct {
	config      *config.Config
	auth        *state.AuthState
	users       *state.UsersState
	userService services.UserService
	apiClient   api.Client
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := kvstore.InitDatabase(ctx, cfg.StorageDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing local storage: %w", err)
	}

	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)
	notifier := notify.NewConsoleNotifier(os.Stdout)

	store := tokenstore.New(kvstore.NewSQLiteRepository(db))
	authService := services.NewAuthService(store, cfg.SimulatedLatency)

	apiClient := api.NewHTTPClient(cfg.APIEndpointAddr, cfg.RequestTimeout)
	userService := services.NewUserService(apiClient)

	return &App{
		config:      cfg,
		auth:        state.NewAuthState(ctx, authService, notifier, log),
		users:       state.NewUsersState(userService, notifier, log, cfg.PageSize),
		userService: userService,
		apiClient:   apiClient,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "logged in"
	}
	return "logged out"
}
