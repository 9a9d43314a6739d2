package web

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"net/url"
	"slices"

	"github.com/gin-gonic/gin"
)

const (
	csrfCookie = "style_kb_csrf"
	csrfHeader = "X-CSRF-Token"
	csrfField  = "csrf_token"
	csrfKey    = "csrfToken"
)

func safeMethod(m string) bool {
	return m == http.MethodGet || m == http.MethodHead || m == http.MethodOptions
}

// csrf is double-submit cookie protection for the form views. Every
// response carries the token cookie; unsafe requests must echo it in the
// X-CSRF-Token header or the csrf_token form field.
func (s *Server) csrf() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(csrfCookie)
		if err != nil || token == "" {
			token, err = newCSRFToken()
			if err != nil {
				httpError(c, err)
				return
			}
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     csrfCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteStrictMode,
			})
		}
		c.Set(csrfKey, token)

		if safeMethod(c.Request.Method) {
			c.Next()
			return
		}

		// Reading the form field parses the body, uploads included.
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
		submitted := c.GetHeader(csrfHeader)
		if submitted == "" {
			submitted = c.PostForm(csrfField)
		}
		if subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
			s.log.Warn().Str("request_id", c.GetString("requestId")).
				Str("path", c.Request.URL.Path).Msg("csrf token mismatch")
			c.String(http.StatusForbidden, "CSRF token mismatch")
			c.Abort()
			return
		}
		c.Next()
	}
}

func newCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// sameOrigin rejects unsafe requests a browser sent from another site.
// An Origin must match the request host or one of the configured CORS
// origins. Without an Origin, a Sec-Fetch-Site other than same-origin or
// none is refused. Requests carrying neither header, as from curl or the
// CLI, pass.
func sameOrigin(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if safeMethod(c.Request.Method) {
			c.Next()
			return
		}

		if origin := c.GetHeader("Origin"); origin != "" {
			if slices.Contains(allowed, origin) {
				c.Next()
				return
			}
			u, err := url.Parse(origin)
			if err != nil || u.Host == "" || u.Host != c.Request.Host {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "cross-origin request refused"})
				return
			}
			c.Next()
			return
		}

		switch c.GetHeader("Sec-Fetch-Site") {
		case "", "same-origin", "none":
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "cross-site request refused"})
		}
	}
}

// requireJSON refuses request bodies not declared as application/json.
func requireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
				gin.H{"error": "content type must be " + gin.MIMEJSON})
			return
		}
		c.Next()
	}
}
