package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"
)

// setFlash stores a one-shot user message in the session. The next page
// render pops it via takeFlash.
func setFlash(c fiber.Ctx, message string) {
	if sess := session.FromContext(c); sess != nil {
		sess.Set("flash", message)
	}
}

// takeFlash returns the pending flash message, if any, and clears it.
func takeFlash(c fiber.Ctx) string {
	sess := session.FromContext(c)
	if sess == nil {
		return ""
	}
	msg, _ := sess.Get("flash").(string)
	if msg != "" {
		sess.Delete("flash")
	}
	return msg
}

// batchID returns the session's current batch identifier, if one exists.
func batchID(c fiber.Ctx) (string, bool) {
	sess := session.FromContext(c)
	if sess == nil {
		return "", false
	}
	id, ok := sess.Get("batch_id").(string)
	return id, ok && id != ""
}

// setBatchID binds a batch identifier to the browser session.
func setBatchID(c fiber.Ctx, id string) {
	if sess := session.FromContext(c); sess != nil {
		sess.Set("batch_id", id)
	}
}
