package router

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/obsworks/telegraf-confd/internal/consts"
	"github.com/obsworks/telegraf-confd/internal/logic"
	"github.com/obsworks/telegraf-confd/internal/model"
	httpx "github.com/obsworks/telegraf-confd/pkg/http"
)

func (rt *Router) configRouter(r fiber.Router) {
	configGroup := r.Group("/config")
	{
		configGroup.Post("", rt.saveConfig)                   // POST /config - save config
		configGroup.Get("/:name", rt.getConfig)               // GET /config/:name - get config by name
		configGroup.Get("/:name/download", rt.downloadConfig) // GET /config/:name/download - raw document
		configGroup.Delete("/:name", rt.deleteConfig)         // DELETE /config/:name - delete config
	}

	r.Get("/configs", rt.listConfigs)         // GET /configs - list configs
	r.Post("/validate-toml", rt.validateToml) // POST /validate-toml - standalone syntax check
}

// saveConfig POST /config - validate and persist one named configuration
func (rt *Router) saveConfig(c *fiber.Ctx) error {
	var req *model.SaveConfigReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	rep, err := rt.ConfigLogic.SaveConfig(req)
	if err != nil {
		var syntaxErr *logic.SyntaxError
		switch {
		case errors.Is(err, logic.ErrInvalidName):
			return httpx.WithRepErrMsg(c, httpx.ConfigNameIsRequired.Code, httpx.ConfigNameIsRequired.Msg, c.Path())
		case errors.As(err, &syntaxErr):
			return httpx.WithRepErrMsg(c, httpx.InvalidTomlSyntax.Code, syntaxErr.Error(), c.Path())
		default:
			return httpx.WithRepErrMsg(c, httpx.Failed.Code, fmt.Sprintf("Failed to save configuration: %v", err), c.Path())
		}
	}

	c.Locals(consts.DETAIL, rep)
	return nil
}

// listConfigs GET /configs - list all stored configurations
func (rt *Router) listConfigs(c *fiber.Ctx) error {
	summaries, err := rt.ConfigLogic.ListConfigs()
	if err != nil {
		return httpx.WithRepErrMsg(c, httpx.Failed.Code, fmt.Sprintf("Failed to list configurations: %v", err), c.Path())
	}

	c.Locals(consts.DETAIL, summaries)
	return nil
}

// getConfig GET /config/:name - full record including metadata
func (rt *Router) getConfig(c *fiber.Ctx) error {
	name := c.Params("name")

	record, err := rt.ConfigLogic.GetConfig(name)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrNotFound):
			return httpx.WithRepErrMsg(c, httpx.ConfigNotFound.Code, httpx.ConfigNotFound.Msg, c.Path())
		case errors.Is(err, logic.ErrInvalidName):
			return httpx.WithRepErrMsg(c, httpx.ConfigNameIsRequired.Code, httpx.ConfigNameIsRequired.Msg, c.Path())
		default:
			return httpx.WithRepErrMsg(c, httpx.Failed.Code, fmt.Sprintf("Failed to load configuration: %v", err), c.Path())
		}
	}

	c.Locals(consts.DETAIL, record)
	return nil
}

// downloadConfig GET /config/:name/download - raw TOML as a text attachment
func (rt *Router) downloadConfig(c *fiber.Ctx) error {
	name := c.Params("name")

	content, filename, err := rt.ConfigLogic.DownloadConfig(name)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrNotFound):
			return httpx.WithRepErrMsg(c, httpx.ConfigNotFound.Code, httpx.ConfigNotFound.Msg, c.Path())
		case errors.Is(err, logic.ErrInvalidName):
			return httpx.WithRepErrMsg(c, httpx.ConfigNameIsRequired.Code, httpx.ConfigNameIsRequired.Msg, c.Path())
		default:
			return httpx.WithRepErrMsg(c, httpx.Failed.Code, fmt.Sprintf("Failed to download configuration: %v", err), c.Path())
		}
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(content)
}

// deleteConfig DELETE /config/:name - remove the record, no undo
func (rt *Router) deleteConfig(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := rt.ConfigLogic.DeleteConfig(name); err != nil {
		switch {
		case errors.Is(err, logic.ErrNotFound):
			return httpx.WithRepErrMsg(c, httpx.ConfigNotFound.Code, httpx.ConfigNotFound.Msg, c.Path())
		case errors.Is(err, logic.ErrInvalidName):
			return httpx.WithRepErrMsg(c, httpx.ConfigNameIsRequired.Code, httpx.ConfigNameIsRequired.Msg, c.Path())
		default:
			return httpx.WithRepErrMsg(c, httpx.Failed.Code, fmt.Sprintf("Failed to delete configuration: %v", err), c.Path())
		}
	}

	c.Locals(consts.DETAIL, &fiber.Map{"message": "Configuration deleted successfully"})
	return nil
}

// validateToml POST /validate-toml - grammar-level syntax check only
func (rt *Router) validateToml(c *fiber.Ctx) error {
	var req *model.ValidateTomlReq
	if err := c.BodyParser(&req); err != nil {
		return httpx.WithRepErrMsg(c, httpx.RequestParameterParsingFailed.Code, httpx.RequestParameterParsingFailed.Msg, c.Path())
	}

	rep, err := rt.ValidateLogic.ValidateToml(req.Content)
	if err != nil {
		if errors.Is(err, logic.ErrEmptyContent) {
			return httpx.WithRepErrMsg(c, httpx.TomlContentIsEmpty.Code, httpx.TomlContentIsEmpty.Msg, c.Path())
		}
		return httpx.WithRepErrMsg(c, httpx.Failed.Code, fmt.Sprintf("Failed to validate TOML: %v", err), c.Path())
	}

	if !rep.Valid {
		c.Status(fiber.StatusBadRequest)
		return httpx.WithRepDetail(c, httpx.InvalidTomlSyntax.Code, httpx.InvalidTomlSyntax.Msg, rep)
	}

	c.Locals(consts.DETAIL, rep)
	return nil
}
