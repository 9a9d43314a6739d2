package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "style_kb_flash"

// flash is a one-time message shown on the next rendered page.
type flash struct {
	Type    string // "success" or "error"
	Message string
}

// setFlash stores a message for the page the client is redirected to.
func setFlash(c *gin.Context, typ, msg string) {
	c.SetCookie(flashCookie, typ+"|"+msg, 60, "/", "", false, true)
}

func popFlashes(c *gin.Context) []flash {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	typ, msg, ok := strings.Cut(v, "|")
	if !ok {
		return []flash{{Type: "success", Message: v}}
	}
	return []flash{{Type: typ, Message: msg}}
}

// redirectWithFlash answers a form post with 303 See Other.
func redirectWithFlash(c *gin.Context, location, typ, msg string) {
	setFlash(c, typ, msg)
	c.Redirect(http.StatusSeeOther, location)
}
