package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/recoverwise/internal/backup"
	"github.com/julianstephens/recoverwise/internal/cli"
	"github.com/julianstephens/recoverwise/internal/cli/backups"
	"github.com/julianstephens/recoverwise/internal/cli/crisis"
	"github.com/julianstephens/recoverwise/internal/cli/data"
	"github.com/julianstephens/recoverwise/internal/cli/drinks"
	"github.com/julianstephens/recoverwise/internal/cli/habits"
	"github.com/julianstephens/recoverwise/internal/cli/journal"
	"github.com/julianstephens/recoverwise/internal/cli/profile"
	"github.com/julianstephens/recoverwise/internal/cli/settings"
	"github.com/julianstephens/recoverwise/internal/cli/system"
	"github.com/julianstephens/recoverwise/internal/constants"
	apperrors "github.com/julianstephens/recoverwise/internal/errors"
	"github.com/julianstephens/recoverwise/internal/keyring"
	"github.com/julianstephens/recoverwise/internal/logger"
	"github.com/julianstephens/recoverwise/internal/reminder"
	"github.com/julianstephens/recoverwise/internal/storage"
	"github.com/julianstephens/recoverwise/internal/storage/postgres"
	"github.com/julianstephens/recoverwise/internal/storage/sqlite"
	"github.com/julianstephens/recoverwise/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store location: a SQLite file, a .json file, :memory:, 'keyring', or a PostgreSQL connection string without a password." type:"string" default:"${default_config}" env:"RECOVERWISE_CONFIG"`
	Debug   bool   `help:"Log debug output to stderr." env:"RECOVERWISE_DEBUG"`
	User    string `help:"Profile to act on, by id or username. Defaults to the first profile." env:"RECOVERWISE_USER"`

	Init       system.InitCmd       `cmd:"" help:"Initialize storage and create a profile."`
	Dashboard  system.DashboardCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Profile    profile.ProfileCmd   `cmd:"" help:"Show and edit your profile."`
	Drinks     drinks.DrinksCmd     `cmd:"" help:"Log and review consumption."`
	Habits     habits.HabitsCmd     `cmd:"" help:"Browse and practise replacement habits."`
	Journal    journal.JournalCmd   `cmd:"" help:"Keep a recovery journal."`
	Crisis     crisis.CrisisCmd     `cmd:"" help:"Record and resolve crisis moments."`
	Settings   settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Data       data.DataCmd         `cmd:"" help:"Export, import or reset your data."`
	Backup     backups.BackupCmd    `cmd:"" help:"Manage store backups."`
	Remind     system.RemindCmd     `cmd:"" help:"Remind you when today has not been logged."`
	Migrate    system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor     system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Validate   system.ValidateCmd   `cmd:"" help:"Check stored data for integrity problems."`
	Keyring    system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	DebugTools system.DebugCmd      `cmd:"" name:"debug" hidden:"" help:"Debug commands for troubleshooting."`
}

func init() {
	apperrors.RegisterHint(cli.ErrNoProfile, fmt.Sprintf("create one with '%s init'", constants.AppName))
	apperrors.RegisterHint(postgres.ErrEmbeddedCredentials,
		fmt.Sprintf("store the full connection string with '%s keyring set' or in %s, then use --config %s",
			constants.AppName, constants.ConnectionEnvVar, constants.KeyringConfigPath))
	apperrors.RegisterHint(keyring.ErrNotFound,
		fmt.Sprintf("run '%s keyring set <connection-string>' or set %s", constants.AppName, constants.ConnectionEnvVar))
	apperrors.RegisterHint(keyring.ErrKeyringUnavailable,
		fmt.Sprintf("set %s instead", constants.ConnectionEnvVar))
	apperrors.RegisterHint(backup.ErrUnsupported, "backups need a SQLite or JSON store")
	apperrors.RegisterHint(reminder.ErrDisabled,
		fmt.Sprintf("enable them with '%s settings --notifications'", constants.AppName))
	apperrors.RegisterHint(tracker.ErrNotFound, "list records to find their ids")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func isPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// openStore picks a backend from the --config value.
func openStore(config string) (storage.Provider, error) {
	switch {
	case config == constants.MemoryConfigPath:
		return storage.NewMemoryStore(), nil
	case config == constants.KeyringConfigPath:
		connStr, err := keyring.ResolveConnectionString()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve connection string: %w", err)
		}
		// Secrets kept in the keyring or environment may carry a password.
		if _, err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, err
		}
		return postgres.New(connStr), nil
	case isPostgres(config):
		if _, err := postgres.ValidateConnString(config); err != nil {
			return nil, err
		}
		return postgres.New(config), nil
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return storage.NewJSONStore(config), nil
	default:
		return sqlite.NewStore(config), nil
	}
}

// logDir keeps logs next to a file store, or in the default config directory.
func logDir(config string) string {
	if config == constants.MemoryConfigPath || config == constants.KeyringConfigPath || isPostgres(config) {
		return filepath.Dir(expandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(config)
}

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Track drinking, build replacement habits and stay ahead of risky days."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.AppVersion,
			"default_config": constants.DefaultConfigPath,
		},
	)

	config := expandHome(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: logDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}
	defer func() { _ = logger.Close() }()
	logger.Debug("Starting", "command", ctx.Command(), "config", config)

	store, err := openStore(config)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
		User:    CLI.User,
	}

	command := ctx.Command()
	switch {
	case strings.HasPrefix(command, "init"), strings.HasPrefix(command, "doctor"), strings.HasPrefix(command, "keyring"):
		// init and doctor open the store themselves; keyring never touches it.
	case config == constants.MemoryConfigPath:
		if err := store.Init(); err != nil {
			apperrors.Fatal(err)
		}
		if _, err := appCtx.Tracker.SeedCatalog(); err != nil {
			apperrors.Fatal(err)
		}
	default:
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		if _, err := appCtx.Tracker.SeedCatalog(); err != nil {
			logger.Warn("Failed to seed habit catalog", "error", err)
		}
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close store", "error", err)
		}
	}()

	if err := ctx.Run(appCtx); err != nil {
		_ = store.Close()
		apperrors.Fatal(err)
	}
}
