package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"

	"github.com/ecotravel-admin/internal/usecase"
)

// SessionHeader - заголовок, которым админка идентифицирует вкладку
const SessionHeader = "X-Session-ID"

// sessionLocal - ключ c.Locals с ID сессии
const sessionLocal = "session_id"

var sessionPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Session берёт ID сессии из заголовка или выдаёт новый и кладёт его в контекст запроса
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// значение заголовка живёт в буфере fasthttp до конца запроса,
		// а ID сессии хранится в реестре страниц дольше
		id := fiberutils.CopyString(c.Get(SessionHeader))
		if !sessionPattern.MatchString(id) {
			id = uuid.NewString()
		}

		c.Locals(sessionLocal, id)
		c.SetUserContext(usecase.WithSession(c.UserContext(), id))
		c.Set(SessionHeader, id)

		return c.Next()
	}
}

// SessionID returns the session of the request, empty outside Session middleware.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(sessionLocal).(string)
	return id
}
