/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnkey/internal/iofs"
	"github.com/gnames/gnkey/internal/iologger"
	gnkey "github.com/gnames/gnkey/pkg"
	"github.com/gnames/gnkey/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd builds the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnkey.Version, gnkey.Build),
		Use:   "gnkey",
		Short: "Ranks characters of identification keys",
		Long: `GNkey ranks characters of plant identification keys by how well
they split a set of candidate species.

Keys are imported from YAML, TOML or SQLite files into PostgreSQL, or
ranked straight from a file with --file.

Configuration precedence (highest to lowest):
  1. command line flags
  2. environment variables (GNKEY_*)
  3. ~/.config/gnkey/config.yaml
  4. built-in defaults

Environment variables:
  GNKEY_DATABASE_HOST         PostgreSQL host
  GNKEY_DATABASE_PORT         PostgreSQL port
  GNKEY_DATABASE_USER         PostgreSQL user
  GNKEY_DATABASE_PASSWORD     PostgreSQL password
  GNKEY_DATABASE_DATABASE     database name
  GNKEY_RANK_COVERAGE_WEIGHT  default coverage weight
  GNKEY_RANK_EASE_WEIGHT      default ease of observability weight
  GNKEY_RANK_LENGTH_WEIGHT    default LENGTH multiplier
  GNKEY_LOG_LEVEL             debug, info, warn or error
  GNKEY_JOBS_NUMBER           number of concurrent workers`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for gnkey")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getImportCmd(),
		getOptimizeCmd(),
		getPilesCmd(),
		getRankCmd(),
		getWeightsCmd(),
	)
	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// temporary logger until config is read
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"command", cmd.Name(),
		"config_file", config.ConfigFilePath(homeDir),
	)
	return nil
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}
	return &res, nil
}

// initEnvVars binds GNKEY_* variables to config.yaml keys. The list is
// explicit so that allowed variables are easy to see.
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("GNKEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.database",
		"database.ssl_mode",
		"database.batch_size",
		"rank.coverage_weight",
		"rank.ease_weight",
		"rank.length_weight",
		"rank.width",
		"log.level",
		"log.format",
		"log.destination",
		"jobs_number",
	} {
		_ = v.BindEnv(key)
	}

	v.AutomaticEnv()
}
