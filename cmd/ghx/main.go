package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yourusername/ghexplorer/internal/adapter/config"
	"github.com/yourusername/ghexplorer/internal/adapter/github"
	"github.com/yourusername/ghexplorer/internal/adapter/storage"
	"github.com/yourusername/ghexplorer/internal/domain"
	"github.com/yourusername/ghexplorer/internal/logging"
	"github.com/yourusername/ghexplorer/internal/ui"
	"github.com/yourusername/ghexplorer/internal/usecase"
)

var version = "0.1.0"

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	token      string
	debug      bool
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:   "ghx",
		Short: "GitHub Explorer - browse repositories and their open issues",
		Long: `GitHub Explorer (ghx) looks up GitHub repositories by owner/name,
remembers every repository you found and shows its stars, forks and open issues.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), flags, ui.SearchRoute())
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&flags.token, "token", "", "GitHub token (overrides config and environment)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Write debug records to the log file")

	rootCmd.AddCommand(openCmd(&flags))
	rootCmd.AddCommand(searchCmd(&flags))
	rootCmd.AddCommand(showCmd(&flags))
	rootCmd.AddCommand(historyCmd(&flags))
	rootCmd.AddCommand(configCmd(&flags))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.PrintError(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

func openCmd(flags *globalFlags) *cobra.Command {
	var web bool

	cmd := &cobra.Command{
		Use:   "open <owner/name | /repository/owner/name>",
		Short: "Open the detail screen of a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := ui.ParseRoute(args[0])
			if err != nil {
				return err
			}

			if web {
				if route.Kind != ui.RouteDetail {
					return fmt.Errorf("--web needs a repository")
				}
				_, cfg, err := loadConfig(*flags)
				if err != nil {
					return err
				}
				return github.OpenInBrowser(github.RepoWebURL(cfg.APIBaseURL, route.FullName))
			}

			return runTUI(cmd.Context(), *flags, route)
		},
	}

	cmd.Flags().BoolVarP(&web, "web", "w", false, "Open the repository page in the browser instead")

	return cmd
}

func searchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "search <owner/name>",
		Short: "Look up a repository and add it to the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), *flags, args[0], cmd.OutOrStdout())
		},
	}
}

func showCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <owner/name>",
		Short: "Print a repository's counters and open issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), *flags, args[0], cmd.OutOrStdout())
		},
	}
}

func historyCmd(flags *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the searched repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(*flags, asJSON, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the stored JSON array")

	return cmd
}

func configCmd(flags *globalFlags) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the config file location and the values in effect after defaults
and environment overrides. With --init, writes a default config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(*flags, initFile, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file if none exists")

	return cmd
}

func newConfigManager(flags globalFlags) (*config.Manager, error) {
	cfgManager, err := config.NewManager(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfgManager.WithThemes(ui.GetThemeNames()...), nil
}

func loadConfig(flags globalFlags) (*config.Manager, *domain.Config, error) {
	cfgManager, err := newConfigManager(flags)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := cfgManager.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfgManager, cfg, nil
}

// app holds everything a command needs once the configuration is loaded.
type app struct {
	cfg     *domain.Config
	logger  *slog.Logger
	history *domain.History
	client  *github.Client
	closers []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("close failed", slog.String("error", err.Error()))
		}
	}
}

func setup(ctx context.Context, flags globalFlags) (*app, error) {
	cfgManager, cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	if err := ui.SetGlobalTheme(cfg.UI.Theme); err != nil {
		return nil, err
	}

	logger, logFile, err := logging.New(cfg.Log, flags.debug)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logFile}}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}
	a.closers = append(a.closers, store)

	a.history, err = storage.NewHistoryRepository(store, logger).History()
	if err != nil {
		a.Close()
		return nil, err
	}

	token, source := github.ResolveToken(flags.token, cfg.Token, cfg.APIBaseURL)
	logger.Debug("github token resolved", slog.String("source", string(source)))

	a.client, err = github.NewClient(ctx, github.Options{
		BaseURL: cfg.APIBaseURL,
		Token:   token,
		Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("ghx started",
		slog.String("version", version),
		slog.String("config", cfgManager.ConfigPath()),
		slog.String("storage", cfg.Storage.Backend),
		slog.Int("history", a.history.Len()),
	)

	return a, nil
}

func runTUI(ctx context.Context, flags globalFlags, route ui.Route) error {
	a, err := setup(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	search := usecase.NewSearchRepositoryUseCase(a.client, a.history, a.logger)
	load := usecase.NewLoadDetailUseCase(a.client, a.logger)

	model := ui.NewAppModel(ctx, search, load, github.OpenInBrowser, route)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}

	return nil
}

func runSearch(ctx context.Context, flags globalFlags, query string, w io.Writer) error {
	a, err := setup(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	uc := usecase.NewSearchRepositoryUseCase(a.client, a.history, a.logger)

	resp, err := uc.Execute(ctx, usecase.SearchRepositoryRequest{Query: query})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			return errors.New(domain.MsgEmptyQuery)
		}
		return fmt.Errorf("%s: %w", domain.MsgSearchFailed, err)
	}

	ui.PrintEntry(w, resp.Entry)
	if resp.SaveErr != nil {
		ui.PrintWarning(w, fmt.Sprintf("History not saved: %v", resp.SaveErr))
		return nil
	}

	ui.PrintSuccess(w, fmt.Sprintf("Added %s to the history (%s)", resp.Entry.FullName, ui.FormatCount(resp.Count, "entry", "entries")))
	return nil
}

func runShow(ctx context.Context, flags globalFlags, fullName string, w io.Writer) error {
	a, err := setup(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	uc := usecase.NewLoadDetailUseCase(a.client, a.logger)

	resp, err := uc.Execute(ctx, usecase.LoadDetailRequest{FullName: fullName})
	if err != nil {
		return err
	}

	ui.PrintDetail(w, resp.Repository, resp.Issues)
	return nil
}

func runHistory(flags globalFlags, asJSON bool, w io.Writer) error {
	a, err := setup(context.Background(), flags)
	if err != nil {
		return err
	}
	defer a.Close()

	entries := a.history.Entries()

	if asJSON {
		if entries == nil {
			entries = []domain.SearchHistoryEntry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	ui.PrintHistory(w, entries)
	return nil
}

func runConfig(flags globalFlags, initFile bool, w io.Writer) error {
	cfgManager, err := newConfigManager(flags)
	if err != nil {
		return err
	}

	if initFile {
		if _, err := os.Stat(cfgManager.ConfigPath()); err == nil {
			ui.PrintInfo(w, fmt.Sprintf("Config already exists at %s", cfgManager.ConfigPath()))
		} else {
			if err := cfgManager.Save(domain.NewDefaultConfig()); err != nil {
				return err
			}
			ui.PrintSuccess(w, fmt.Sprintf("Configuration saved to: %s", cfgManager.ConfigPath()))
		}
	}

	cfg, err := cfgManager.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := ui.SetGlobalTheme(cfg.UI.Theme); err != nil {
		return err
	}

	_, source := github.ResolveToken(flags.token, cfg.Token, cfg.APIBaseURL)

	rows := []struct{ label, value string }{
		{"Config file", cfgManager.ConfigPath()},
		{"API base URL", cfg.APIBaseURL},
		{"Token", string(source)},
		{"Request timeout", fmt.Sprintf("%ds", cfg.RequestTimeoutSeconds)},
		{"Storage", cfg.Storage.Backend + " " + cfg.Storage.Path},
		{"Theme", cfg.UI.Theme},
		{"Log", cfg.Log.Level + " " + cfg.Log.File},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s %s\n", ui.FormatLabel(fmt.Sprintf("%-16s", r.label)), ui.FormatValue(r.value))
	}

	current := ui.GetGlobalThemeManager().GetCurrentTheme().Name
	fmt.Fprintf(w, "\n%s\n", ui.FormatLabel("Available themes"))
	for _, name := range ui.GetThemeNames() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		fmt.Fprintf(w, "%s%s\n", marker, ui.FormatValue(name))
	}

	return nil
}
