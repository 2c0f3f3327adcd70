package core

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitswalk/retail/src/retail/auth"
	"github.com/bitswalk/retail/src/retail/console"
	"github.com/bitswalk/retail/src/retail/db"
	"github.com/bitswalk/retail/src/retail/menu"
	"github.com/bitswalk/retail/src/retail/output"
	"github.com/bitswalk/retail/src/retail/shop"
	"github.com/spf13/viper"
)

// runConsole connects to the database and runs the interactive session
// until the user exits, input ends or the process is interrupted
func runConsole(parent context.Context, cfg db.Config, in io.Reader, out, errOut io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	format, err := output.ParseFormat(viper.GetString("output.format"))
	if err != nil {
		return err
	}
	printer := output.New(out, errOut, format)

	printer.Banner("User Interface")

	log.Info("Connecting to database", "driver", cfg.Driver, "host", cfg.Host, "port", cfg.Port, "name", cfg.Name, "user", cfg.User)
	database, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		printer.Printf("Disconnecting from database...")
		if err := database.Shutdown(); err != nil {
			log.Warn("Failed to close database", "error", err)
		}
		printer.PrintMessage("Done\n\nBye !")
	}()

	if viper.GetBool("database.migrate") {
		if err := migrate(ctx, database); err != nil {
			return err
		}
	}

	authn := auth.NewAuthenticator(database, auth.Config{
		BcryptCost: viper.GetInt("auth.bcrypt_cost"),
	}, log)
	checker := auth.NewChecker(database, auth.CheckerConfig{
		LegacyRoleCheck: viper.GetBool("auth.legacy_role_check"),
	})
	svc := shop.NewService(database, checker, authn, shop.Config{
		Range:       viper.GetFloat64("shop.range"),
		RecentLimit: viper.GetInt("shop.recent_limit"),
	}, log)

	session := menu.New(menu.Deps{
		Prompter:      console.New(in, out),
		Printer:       printer,
		Authenticator: authn,
		Checker:       checker,
		Shop:          svc,
		Logger:        log,
	})

	// A read from the terminal cannot be interrupted, so the loop runs on its
	// own goroutine and a signal ends the session without waiting for it.
	done := make(chan error, 1)
	go func() {
		done <- session.Run(ctx)
	}()

	select {
	case err = <-done:
		return err
	case <-ctx.Done():
		printer.PrintMessage("")
		log.Info("Interrupted, shutting down")
		return nil
	}
}
