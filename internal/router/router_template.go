package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/obsworks/telegraf-confd/internal/consts"
	"github.com/obsworks/telegraf-confd/internal/template"
)

func (rt *Router) templateRouter(r fiber.Router) {
	r.Get("/templates", rt.listTemplates) // GET /api/templates - template catalog
}

// listTemplates GET /templates - the static template catalog
func (rt *Router) listTemplates(c *fiber.Ctx) error {
	c.Locals(consts.DETAIL, template.Catalog())
	return nil
}
