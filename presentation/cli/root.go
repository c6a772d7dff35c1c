package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"jerry/domain/app"
	"jerry/domain/session"
	"jerry/infrastructure/settings"
	"jerry/presentation/bubble_tea"
	"jerry/presentation/configuring"
	"jerry/presentation/runners/version"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// RunFunc starts a client run with the resolved parameters.
type RunFunc func(ctx context.Context, params session.Params) error

type Options struct {
	Run RunFunc
	// Prompter asks for the server when the configuration requires
	// confirmation. Defaults to bubble tea prompts on stdin/stderr.
	Prompter configuring.Prompter
	Stdout   io.Writer
	Stderr   io.Writer
}

type rootFlags struct {
	config     string
	server     string
	visualizer bool
	emulate    bool
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Prompter == nil {
		opts.Prompter = bubble_tea.NewPrompter(os.Stdin, opts.Stderr)
	}

	var flags rootFlags
	root := &cobra.Command{
		Use:           app.Name,
		Short:         "Remote input client: replays keyboard and mouse events sent by a jerry server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := resolveParams(flags, opts)
			if errors.Is(err, configuring.ErrUserExit) {
				return nil
			}
			if err != nil {
				return err
			}
			return opts.Run(cmd.Context(), params)
		},
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	root.Flags().StringVar(&flags.config, "config", settings.FileName, "path to the configuration file")
	root.Flags().StringVar(&flags.server, "server", "", "connect to this configured server without asking")
	root.Flags().BoolVarP(&flags.visualizer, "visualizer", "v", false, "show the live state view instead of the log")
	root.Flags().BoolVarP(&flags.emulate, "emulate", "e", false, "emulate events even for a loopback server")

	root.AddCommand(localhostCmd(opts), versionCmd(opts))
	return root
}

func resolveParams(flags rootFlags, opts Options) (session.Params, error) {
	manager := settings.NewManager(flags.config)
	cfg, created, err := manager.Load()
	if err != nil {
		return session.Params{}, err
	}
	if created {
		fmt.Fprintf(opts.Stderr, "Generated default configuration file %s\n", manager.Path())
	}

	switch {
	case flags.server != "":
		if err := cfg.UpdateLast(flags.server); err != nil {
			return session.Params{}, err
		}
		if err := manager.Save(cfg); err != nil {
			return session.Params{}, err
		}
	case !cfg.ConnectWithoutConfirmation():
		if err := configuring.NewConfigurator(opts.Prompter).Configure(cfg); err != nil {
			return session.Params{}, err
		}
		if err := manager.Save(cfg); err != nil {
			return session.Params{}, err
		}
	}

	server, err := cfg.LastServer()
	if err != nil {
		return session.Params{}, err
	}
	printServer(opts.Stdout, server)

	mode := session.DisplayLogging
	if flags.visualizer {
		mode = session.DisplayCurrentState
	}
	return settings.SessionParams(cfg, server, mode, flags.emulate), nil
}

func printServer(w io.Writer, server settings.Server) {
	fmt.Fprintln(w, "\n========================\n Connecting to server : ")
	if err := toml.NewEncoder(w).Encode(server); err != nil {
		fmt.Fprintf(w, "%s (%s)\n", server.Name, server.AddrPort())
	}
	fmt.Fprintln(w, "========================")
}

// Execute runs the command line with ctx as the root context.
func Execute(ctx context.Context, run RunFunc) error {
	return NewRootCommand(Options{Run: run}).ExecuteContext(ctx)
}

func versionCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return version.NewRunner(opts.Stdout).Run()
		},
	}
}
