package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hotelsoft/concierge/client"
	"github.com/hotelsoft/concierge/config"
	"github.com/hotelsoft/concierge/session"
	"github.com/hotelsoft/concierge/storage"
	bboltstorage "github.com/hotelsoft/concierge/storage/bbolt"
)

var (
	cfgPath string
	baseURL string
	dataDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "concierge",
	Short: "Concierge is a command-line client for the HotelSoft backend",
	Long: `Concierge talks to the HotelSoft reservation backend: accounts and
sessions (password, Google and two-factor login), room catalog browsing,
bookings, cleaning tasks and administrative room management.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath(), "path to the TOML config file")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory for session storage (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".concierge", "config.toml")
}

// app bundles the wired session stack for one command invocation.
type app struct {
	cfg   config.Config
	ring  storage.Keyring
	store *session.Store
	api   *client.Client
	mgr   *session.Manager
	log   *slog.Logger
}

// newApp loads the config, opens the keyring and constructs the client
// and session manager.
func newApp() (*app, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	ring, err := bboltstorage.Open(
		filepath.Join(cfg.DataDir, "keyring.db"),
		os.Getenv("CONCIERGE_KEYRING_PASSPHRASE"),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}

	store := session.NewStore(ring, session.WithStoreLogger(logger))
	api := client.New(cfg.BaseURL, store,
		client.WithLogger(logger),
		client.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
	)
	mgr := session.NewManager(store, api, session.WithLogger(logger))

	return &app{cfg: cfg, ring: ring, store: store, api: api, mgr: mgr, log: logger}, nil
}

func (a *app) Close() {
	if err := a.ring.Close(); err != nil {
		a.log.Warn("closing keyring", slog.String("error", err.Error()))
	}
}

// requireAuth fails fast when no valid session is stored.
func (a *app) requireAuth() error {
	if !a.mgr.IsAuthenticated() {
		return fmt.Errorf("not logged in; run `concierge login` first")
	}
	a.mgr.RecordActivity()
	return nil
}

// requireRole additionally checks the stored profile's role.
func (a *app) requireRole(roles ...string) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	user, ok := a.mgr.CurrentUser()
	if !ok {
		return fmt.Errorf("no stored profile; log in again")
	}
	for _, r := range roles {
		if user.Role == r {
			return nil
		}
	}
	return fmt.Errorf("role %q is not allowed to run this command", user.Role)
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
