package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tsiemens/embedviz/config"
	"github.com/tsiemens/embedviz/log"
	"github.com/tsiemens/embedviz/server"
)

var ConfigFileOpt string

var (
	ServeDirOpt  string
	ServePortOpt int
	NoBrowserOpt bool
)

func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(ConfigFileOpt)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = ServePortOpt
	}
	if cmd.Flags().Changed("dir") {
		cfg.Server.Dir = ServeDirOpt
	}
	if NoBrowserOpt {
		cfg.Server.Open = false
	}

	root := cfg.Server.Dir
	if root == "" {
		root, err = server.DefaultRoot()
		if err != nil {
			return err
		}
	}

	launcher := server.NewLauncher(root, cfg.Server.Port)
	if !cfg.Server.Open {
		launcher.OpenBrowser = nil
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return launcher.Run(ctx)
}

func cmdName() string {
	binName := os.Args[0]
	return filepath.Base(binName)
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   cmdName(),
	Short: "Local dev server for the 3D embedding viewer",
	Long: fmt.Sprintf(
		`Serves the 3D word-embedding visualization from the directory containing
this binary, and opens the viewer page in the default browser.

The server checks that %s, %s and
%s are present before binding, and tags every response with
permissive CORS and cache-disabling headers so the viewer can always fetch a
fresh copy of the data file.

Run '%s extract' first to generate the data file.`,
		server.ViewerPage, server.EngineScript, server.DataFile, cmdName()),
	RunE:          runRootCmd,
	Args:          cobra.NoArgs,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags, which are global to the app cli
	RootCmd.PersistentFlags().BoolVarP(&log.VerboseEnabled, "verbose", "v", false,
		"Print verbose output")
	RootCmd.PersistentFlags().StringVar(&ConfigFileOpt, "config", "",
		"Path to a toml config file (default "+config.DefaultFileName+" if present)")

	RootCmd.Flags().IntVarP(&ServePortOpt, "port", "p", server.DefaultPort,
		"Port to serve on")
	RootCmd.Flags().StringVar(&ServeDirOpt, "dir", "",
		"Directory to serve (default: the directory containing this binary)")
	RootCmd.Flags().BoolVar(&NoBrowserOpt, "no-browser", false,
		"Do not open the viewer page in a browser")
}
