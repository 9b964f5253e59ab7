package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/mdblist"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the Marquee application.
type Options struct {
	ConfigPath   string
	PrefsPath    string   // empty uses default ~/.config/marquee/prefs.toml
	LogPath      string   // empty uses the config's log_file
	EnvFiles     []string // .env files loaded before reading the environment
	InitialQuery string
}

// Run boots the Marquee TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = cfg.LogFile
	}
	logFile, err := openDiagnosticLog(logPath)
	if err != nil {
		return err
	}
	defer logFile.Close()

	client, err := newClient(cfg)
	if err != nil {
		return fmt.Errorf("init search client: %w", err)
	}
	if !cfg.HasAPIKey() {
		log.Printf("%s is not set; requests will be rejected by the API", config.EnvAPIKey)
	}
	log.Printf("starting: api=%s host=%s", cfg.APIURL, client.Host())

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:       ctx,
		Searcher:      client,
		ThemeName:     userPrefs.Theme,
		MaxColumns:    userPrefs.MaxColumns,
		PrefsPath:     opts.PrefsPath,
		LogPath:       logPath,
		InitialQuery:  opts.InitialQuery,
		APIKeyMissing: !cfg.HasAPIKey(),
	}
	return ui.Run(uiOpts)
}

func newClient(cfg config.Config) (*mdblist.Client, error) {
	return mdblist.NewClient(mdblist.Options{
		BaseURL: cfg.APIURL,
		Host:    cfg.APIHost,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
}

// openDiagnosticLog points the standard logger at path. The terminal belongs
// to the TUI, so nothing may be written to stderr while it runs.
func openDiagnosticLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "marquee")
	if err != nil {
		return nil, fmt.Errorf("open diagnostic log: %w", err)
	}
	return f, nil
}
