// Package cmd defines and implements the CLI commands for the ufcscrape
// executable.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JakeFAU/ufc-athletes/internal/app"
	"github.com/JakeFAU/ufc-athletes/internal/athlete"
	"github.com/JakeFAU/ufc-athletes/internal/config"
	"github.com/JakeFAU/ufc-athletes/internal/service"
)

// appKeyType is the key for storing the App in the context.
type appKeyType string

const appKey appKeyType = "app"

// offlineAnnotation marks commands that run without application services.
const offlineAnnotation = "offline"

// App is the set of services commands use.
type App interface {
	Close()
	Logger() *zap.Logger
	Config() config.Config
	Client() *athlete.Client
	Service() *service.Service
	Handler() http.Handler
}

// newApp is the application factory. Tests replace it to point the app at a
// fixture site.
var newApp = func(ctx context.Context, cfgPath string) (App, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a, err := app.New(ctx, cfg, nil)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "ufcscrape",
		Short: "Scrape athlete profiles and titleholders from ufc.com.",
		Long: `ufcscrape fetches public athlete profile pages and the athlete roster
from the UFC website and extracts structured fighter data from them. Results
can be printed, served over HTTP, persisted to Postgres and announced on
Pub/Sub.`,
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[offlineAnnotation] == "true" {
				return nil
			}
			holder, ok := cmd.Context().Value(holderKey{}).(*appHolder)
			if !ok {
				return errors.New("root command must run through execute")
			}
			appInstance, err := newApp(cmd.Context(), cfgFile)
			if err != nil {
				return fmt.Errorf("failed to initialize application services: %w", err)
			}
			holder.app = appInstance
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); UFC_* env vars override it")

	cmd.AddCommand(
		newFighterCmd(),
		newChampionsCmd(),
		newServeCmd(),
		newReplayCmd(),
	)
	return cmd
}

// appHolder keeps the app built by PersistentPreRunE so it is closed even
// when the command fails; cobra skips post-run hooks after an error.
type appHolder struct {
	app App
}

type holderKey struct{}

// execute runs root and closes whatever application services it opened.
func execute(ctx context.Context, root *cobra.Command) error {
	holder := &appHolder{}
	defer func() {
		if holder.app != nil {
			holder.app.Close()
		}
	}()
	return root.ExecuteContext(context.WithValue(ctx, holderKey{}, holder))
}

// Execute is the main entry point.
func Execute() {
	if err := execute(context.Background(), newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveApp(ctx context.Context) (App, error) {
	appInstance, ok := ctx.Value(appKey).(App)
	if !ok || appInstance == nil {
		return nil, errors.New("application services not initialized")
	}
	return appInstance, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
