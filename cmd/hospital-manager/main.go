package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/koildeeee/HospitalManagerApp/internal/config"
	"github.com/koildeeee/HospitalManagerApp/internal/menu"
	"github.com/koildeeee/HospitalManagerApp/internal/platform/store"
	"github.com/koildeeee/HospitalManagerApp/internal/session"
)

var version = "dev"

// app carries what the commands share. Tests swap the filesystem and the
// log destination.
type app struct {
	fs     afero.Fs
	paths  store.Paths
	logOut io.Writer
}

func main() {
	a := &app{
		fs:     afero.NewOsFs(),
		paths:  store.DefaultPaths(),
		logOut: os.Stderr,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "hospital-manager",
		Short:        "Front-desk manager for patients, medical records and appointments",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}

	rootCmd.AddCommand(menuCmd(a))
	rootCmd.AddCommand(inspectCmd(a))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func menuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive text menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd)
		},
	}
}

func inspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Load the saved state and print what each file holds",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newSession()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range s.LoadState() {
				if r.Err != nil {
					fmt.Fprintf(out, "%-16s %-32s failed: %v\n", r.Collection, r.Path, r.Err)
					continue
				}
				fmt.Fprintf(out, "%-16s %-32s %d\n", r.Collection, r.Path, r.Count)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hospital-manager %s\n", version)
		},
	}
}

func (a *app) runMenu(cmd *cobra.Command) error {
	s, err := a.newSession()
	if err != nil {
		return err
	}
	return menu.New(s, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

// newSession loads config, builds the logger and makes sure the data
// directories exist so a first save can succeed.
func (a *app) newSession() (*session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := newLogger(cfg, a.logOut)

	for _, p := range []string{a.paths.MedicalRecords, a.paths.Patients, a.paths.Appointments} {
		dir := filepath.Dir(p)
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			logger.Warn().Err(err).Str("dir", dir).Msg("cannot create data directory")
		}
	}

	s, err := session.New(a.fs, a.paths, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("session_id", s.ID.String()).Msg("session started")
	return s, nil
}

func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	}
	return logger.Level(cfg.Level())
}
