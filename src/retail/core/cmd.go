// Package core provides the retail command line: configuration, the console
// session and the maintenance subcommands.
package core

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitswalk/retail/src/common/cli"
	"github.com/bitswalk/retail/src/common/errors"
	"github.com/bitswalk/retail/src/common/logs"
	"github.com/bitswalk/retail/src/common/version"
	"github.com/bitswalk/retail/src/retail/db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// VersionInfo holds version information - set at build time via ldflags
	VersionInfo = version.New()

	// Global logger instance, replaced once configuration is read
	log = logs.NewDefault()

	// Configuration file path
	cfgFile string
)

// Linker variables - these are set via ldflags at build time
var (
	Version        = "dev"
	ReleaseVersion = "0.0.0"
	BuildDate      = "unknown"
	GitCommit      = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "retail <dbname> <port> <user>",
	Short: "Retail management console",
	Long: `retail is an interactive console for customers, store managers and
administrators of a retail chain, backed by a SQL database.

Customers browse nearby stores and place orders, managers maintain the
inventory of their stores and request supplies, administrators manage
users and the product catalogue.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return initConfig()
	},
	Args: connectionArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := databaseConfig(args)
		if err != nil {
			return err
		}
		return runConsole(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute runs the root command and exits with the error's exit code
func Execute() {
	VersionInfo.Version = Version
	VersionInfo.ReleaseVersion = ReleaseVersion
	VersionInfo.BuildDate = BuildDate
	VersionInfo.GitCommit = GitCommit

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMessage(err))
		os.Exit(errors.GetExitCode(err))
	}
}

func init() {
	cli.RegisterConfigFlag(rootCmd, &cfgFile, "~/.retail/retail.yaml")

	dbDefaults := db.DefaultConfig()

	// Database flags
	rootCmd.PersistentFlags().String("driver", dbDefaults.Driver, "Database driver: pgx, postgres or sqlite3")
	rootCmd.PersistentFlags().String("host", dbDefaults.Host, "Database host")
	rootCmd.PersistentFlags().String("password", dbDefaults.Password, "Database password")
	rootCmd.PersistentFlags().String("sslmode", dbDefaults.SSLMode, "PostgreSQL sslmode")
	rootCmd.PersistentFlags().Bool("migrate", true, "Apply pending schema migrations at startup")

	// Console flags
	rootCmd.PersistentFlags().StringP("output", "o", "plain", "Output format: plain, table, json, yaml")
	rootCmd.PersistentFlags().Float64("range", 30, "Distance within which a customer may order from a store")
	rootCmd.PersistentFlags().Int("recent-limit", 5, "Number of rows in recent and popular views")

	cli.RegisterLogFlags(rootCmd)

	_ = cli.BindPersistentFlag(rootCmd, "driver", "database.driver")
	_ = cli.BindPersistentFlag(rootCmd, "host", "database.host")
	_ = cli.BindPersistentFlag(rootCmd, "password", "database.password")
	_ = cli.BindPersistentFlag(rootCmd, "sslmode", "database.sslmode")
	_ = cli.BindPersistentFlag(rootCmd, "migrate", "database.migrate")
	_ = cli.BindPersistentFlag(rootCmd, "output", "output.format")
	_ = cli.BindPersistentFlag(rootCmd, "range", "shop.range")
	_ = cli.BindPersistentFlag(rootCmd, "recent-limit", "shop.recent_limit")

	viper.SetDefault("database.driver", dbDefaults.Driver)
	viper.SetDefault("database.host", dbDefaults.Host)
	viper.SetDefault("database.sslmode", dbDefaults.SSLMode)
	viper.SetDefault("database.migrate", true)
	viper.SetDefault("output.format", "plain")
	viper.SetDefault("shop.range", 30)
	viper.SetDefault("shop.recent_limit", 5)
	viper.SetDefault("auth.bcrypt_cost", 10)
	viper.SetDefault("auth.legacy_role_check", false)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(migrateCmd)
}

// initConfig reads in config file and ENV variables if set
func initConfig() error {
	opts := cli.DefaultConfigOptions("retail", "RETAIL")
	opts.ConfigFile = cfgFile

	if err := cli.InitConfig(opts); err != nil {
		return err
	}

	log = cli.InitLogger("retail")
	return nil
}

// connectionArgs accepts exactly <dbname> <port> <user>
func connectionArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return errors.ErrUsage
	}
	return nil
}

// databaseConfig builds the connection settings from the positional
// arguments and the configuration
func databaseConfig(args []string) (db.Config, error) {
	if port, err := strconv.Atoi(args[1]); err != nil || port < 0 || port > 65535 {
		return db.Config{}, errors.ErrUsage.WithMessagef("Invalid port %q\n%s", args[1], errors.ErrUsage.Message)
	}

	cfg := db.DefaultConfig()
	cfg.Name = args[0]
	cfg.Port = args[1]
	cfg.User = args[2]
	if driver := viper.GetString("database.driver"); driver != "" {
		cfg.Driver = driver
	}
	if host := viper.GetString("database.host"); host != "" {
		cfg.Host = host
	}
	if sslmode := viper.GetString("database.sslmode"); sslmode != "" {
		cfg.SSLMode = sslmode
	}
	cfg.Password = viper.GetString("database.password")
	return cfg, nil
}

// errorMessage is what a failed command prints: the message alone for
// errors meant for the user, the full chain otherwise
func errorMessage(err error) string {
	var e *errors.Error
	if errors.As(err, &e) && e.UserFacing() {
		return e.Message
	}
	return fmt.Sprintf("Error: %v", err)
}
