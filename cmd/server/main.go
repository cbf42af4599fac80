package main

import (
	"fmt"
	stdlog "log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/mailblast/mailblast/auth"
	"github.com/mailblast/mailblast/auth/credentials"
	loginUC "github.com/mailblast/mailblast/auth/login"
	"github.com/mailblast/mailblast/internal/pkg/log"
	platformconfig "github.com/mailblast/mailblast/internal/platform/config"
	platformemail "github.com/mailblast/mailblast/internal/platform/email"
	"github.com/mailblast/mailblast/internal/types"
	"github.com/mailblast/mailblast/mailer"
	"github.com/mailblast/mailblast/sysinfo"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load platform config: %v", err)
	}

	app := newApp(cfg)

	log.Info("starting %s in %s mode", cfg.App.Name, cfg.App.Env)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	stdlog.Fatal(app.Listen(addr))
}

// newApp assembles the fiber application: middleware, feature routes,
// and the trailing 404 catch-all.
func newApp(cfg *platformconfig.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Top-level fallback: never leak internals on an unhandled error.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Error("unhandled error on %s: %v", c.Path(), err)
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(fiber.StatusInternalServerError).JSON(
				types.Fail("Something went wrong!"))
		},
	})

	app.Use(requestid.New())
	app.Use(func(c *fiber.Ctx) error {
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		c.SetUserContext(log.WithRequestID(c.UserContext(), rid))
		return c.Next()
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	store := credentials.NewStore(credentials.Defaults())

	loginService := loginUC.NewService(store, &loginUC.ServiceConfig{
		JWTConfig: cfg.JWT,
	})
	authHandlers := &auth.AuthHandlers{
		LoginHandler: loginUC.NewHandler(loginService),
	}

	transportFactory := platformemail.NewFactory(
		cfg.Mail.SMTPHost,
		fmt.Sprintf("%d", cfg.Mail.SMTPPort),
	)
	mailerService := mailer.NewService(transportFactory, &mailer.ServiceConfig{
		MailConfig: cfg.Mail,
	})
	mailerHandlers := &mailer.MailerHandlers{
		SendHandler: mailer.NewHandler(mailerService),
	}

	sysinfoHandlers := &sysinfo.SysinfoHandlers{
		InfoHandler: sysinfo.NewHandler(sysinfo.NewService(cfg.Server.Port)),
	}

	auth.RegisterRoutes(app, authHandlers, cfg)
	mailer.RegisterRoutes(app, mailerHandlers, cfg)
	sysinfo.RegisterRoutes(app, sysinfoHandlers, cfg)

	// Catch-all after every route group.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(types.Fail("Route not found"))
	})

	return app
}
