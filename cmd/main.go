package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"study-booking/cmd/bootstrap"
	"study-booking/internal/infra/calendar"
	"study-booking/internal/pkg/config"
	"study-booking/internal/pkg/password"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func init() {
	// never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           study-booking
// @version         1.0
// @description     Booking coordination for a user study: participant invitations, slot preferences and admin approval.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "study-booking",
		Usage: "Booking coordination service for a user study.",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			googleAuthCommand(),
			hashPasswordCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server.",
		Action: func(c *cli.Context) error {
			app := fx.New(
				bootstrap.Module,
				fx.Provide(
					func() *gin.Engine {
						return gin.New()
					},
				),
				fx.Invoke(
					startServer,
				),
			)

			if err := app.Start(c.Context); err != nil {
				return fmt.Errorf("failed to start application: %w", err)
			}

			<-app.Done()

			if err := app.Stop(context.Background()); err != nil {
				slog.Error("failed to stop application", "error", err)
			}

			slog.Info("application stopped")
			return nil
		},
	}
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode(), "host_base", cfg.Server.HostBase)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending migrations with atlas.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Value: "file://migrations", Usage: "Migration directory URL."},
			&cli.StringFlag{Name: "atlas", Value: "atlas", Usage: "Path to the atlas binary."},
		},
		Action: func(c *cli.Context) error {
			dbCfg, err := config.LoadDBConfig()
			if err != nil {
				return err
			}

			client, err := atlasexec.NewClient(".", c.String("atlas"))
			if err != nil {
				return fmt.Errorf("failed to initialize atlas client: %w", err)
			}

			res, err := client.MigrateApply(c.Context, &atlasexec.MigrateApplyParams{
				URL:    dbCfg.BuildDSN(),
				DirURL: c.String("dir"),
			})
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			slog.Info("migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
			return nil
		},
	}
}

func googleAuthCommand() *cli.Command {
	return &cli.Command{
		Name:  "google-auth",
		Usage: "Authorize Google Calendar access and write the token file.",
		Action: func(c *cli.Context) error {
			calCfg, err := config.LoadCalendarConfig()
			if err != nil {
				return err
			}

			oauthCfg, err := calendar.OAuthConfig(calCfg.GoogleClientID, calCfg.GoogleClientSecret)
			if err != nil {
				return err
			}

			fmt.Printf("Go to the following link in your browser then type the "+
				"authorization code: \n%v\n", calendar.AuthURL(oauthCfg))

			fmt.Print("Enter Authorization Code: ")
			reader := bufio.NewReader(os.Stdin)
			code, _ := reader.ReadString('\n')
			code = strings.TrimSpace(code)

			token, err := calendar.ExchangeCode(c.Context, oauthCfg, code)
			if err != nil {
				return fmt.Errorf("unable to exchange authorization code: %w", err)
			}

			if err := calendar.SaveToken(calCfg.GoogleTokenFile, token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			slog.Info("token saved", "file", calCfg.GoogleTokenFile)
			return nil
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "Print a bcrypt hash for ADMIN_PASSWORD_HASH.",
		ArgsUsage: "[password]",
		Action: func(c *cli.Context) error {
			plain := c.Args().First()
			if plain == "" {
				fmt.Fprint(os.Stderr, "Password: ")
				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				plain = strings.TrimSpace(line)
			}

			hash, err := password.HashPassword(plain)
			if err != nil {
				return err
			}
			fmt.Println(hash)
			return nil
		},
	}
}
