package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/obsworks/telegraf-confd/internal/logic"
	httpx "github.com/obsworks/telegraf-confd/pkg/http"
	"github.com/obsworks/telegraf-confd/pkg/http/middleware"
	"github.com/obsworks/telegraf-confd/pkg/version"
	"go.uber.org/zap"
)

type Router struct {
	Http          *httpx.Http
	ConfigLogic   *logic.ConfigLogic
	ValidateLogic *logic.ValidateLogic
}

func NewRouter(
	httpConf *httpx.Http,
	configLogic *logic.ConfigLogic,
	validateLogic *logic.ValidateLogic,
) *Router {
	return &Router{
		Http:          httpConf,
		ConfigLogic:   configLogic,
		ValidateLogic: validateLogic,
	}
}

func (rt *Router) Router(log *zap.Logger) *fiber.App {
	bodyLimit := rt.Http.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = 4 * 1024 * 1024
	}

	app := fiber.New(fiber.Config{
		AppName:      "Telegraf Confd",
		ReadTimeout:  time.Duration(rt.Http.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(rt.Http.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(rt.Http.IdleTimeout) * time.Second,
		BodyLimit:    bodyLimit,
	})

	if rt.Http.AccessLog {
		app.Use(httpx.AccessLogFormat(log))
	}

	app.Use(
		fiberrecover.New(),
		requestid.New(),
		middleware.CorsMiddleware(),
		middleware.ExceptionMiddleware,
		middleware.UnifiedResponseMiddleware(),
	)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(version.GetVersion())
	})

	api := app.Group(rt.Http.ContextPath)
	{
		rt.templateRouter(api)
		rt.configRouter(api)
	}

	// must come after all route registrations
	app.Use(func(c *fiber.Ctx) error {
		return httpx.WithRepErrMsg(c, httpx.NotFound.Code, "request path not found", c.Path())
	})

	return app
}
