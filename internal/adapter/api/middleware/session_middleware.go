package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"eliavigram/internal/domain/entity"
	"eliavigram/pkg/errors"
	"eliavigram/pkg/logger"
	"eliavigram/pkg/response"
)

const (
	HeaderUserName      = "X-User-Name"
	HeaderProfilePic    = "X-User-Profile-Pic"
	HeaderGalleryPasswd = "X-Gallery-Password"

	sessionKey = "session"
)

// SessionMiddleware attaches the caller's self-declared profile to the request
// and, when a password is configured, turns away requests without it.
type SessionMiddleware struct {
	password    []byte
	publicPaths map[string]bool
}

func NewSessionMiddleware(password string, publicPaths ...string) *SessionMiddleware {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}
	return &SessionMiddleware{
		password:    []byte(password),
		publicPaths: public,
	}
}

func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(sessionKey, entity.Session{
			UserName:      strings.TrimSpace(c.Request().Header.Get(HeaderUserName)),
			ProfilePicURL: strings.TrimSpace(c.Request().Header.Get(HeaderProfilePic)),
		})

		if len(m.password) == 0 || m.publicPaths[c.Path()] {
			return next(c)
		}

		given := []byte(c.Request().Header.Get(HeaderGalleryPasswd))
		if subtle.ConstantTimeCompare(given, m.password) != 1 {
			logger.Debug("Rejected request to %s without gallery password", c.Path())
			return response.Error(c, errors.Unauthorized("Gallery password required", nil))
		}

		return next(c)
	}
}

// SessionFrom returns the session attached by SessionMiddleware, or an anonymous one.
func SessionFrom(c echo.Context) entity.Session {
	if s, ok := c.Get(sessionKey).(entity.Session); ok {
		return s
	}
	return entity.Session{}
}
