package cli

import (
	"os"
	"time"

	"github.com/Flyrell/trainplan/internal/config"
	"github.com/Flyrell/trainplan/internal/library"
	"github.com/Flyrell/trainplan/internal/logging"
	"github.com/Flyrell/trainplan/internal/plan"
	"github.com/Flyrell/trainplan/internal/workout"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runEnv carries what commands read from the user's environment.
type runEnv struct {
	homeDir    string
	configPath string
	settings   config.Settings
	location   *time.Location
	catalog    *plan.Catalog
	log        *zap.Logger
}

func (e runEnv) estimator() workout.Estimator {
	return workout.NewEstimator(e.settings.Rates)
}

// configPathFor returns the --config flag value, falling back to the file
// under homeDir.
func configPathFor(cmd *cobra.Command, homeDir string) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Path(homeDir)
	}
	return path
}

// loadEnv reads the config file, builds the logger and loads the plan
// catalog including the user's library.
func loadEnv(cmd *cobra.Command) (runEnv, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return runEnv{}, err
	}
	return newEnv(cmd, homeDir)
}

func newEnv(cmd *cobra.Command, homeDir string) (runEnv, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logging.New(verbose)
	if err != nil {
		return runEnv{}, err
	}

	path := configPathFor(cmd, homeDir)
	settings, err := config.Load(path)
	if err != nil {
		return runEnv{}, err
	}
	loc, err := settings.Location()
	if err != nil {
		return runEnv{}, err
	}

	catalog, err := library.Catalog(homeDir, log)
	if err != nil {
		return runEnv{}, err
	}

	log.Debug("environment loaded",
		zap.String("config", path),
		zap.String("timezone", loc.String()),
		zap.Int("plans", len(catalog.Names())))

	return runEnv{
		homeDir:    homeDir,
		configPath: path,
		settings:   settings,
		location:   loc,
		catalog:    catalog,
		log:        log,
	}, nil
}
