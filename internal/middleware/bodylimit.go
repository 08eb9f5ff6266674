package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"duobuddy-proxy/internal/service"
)

// BodyLimit caps inbound bodies at maxBytes for the methods whose body is
// buffered and forwarded. Other methods never have their body read, so a
// client-supplied body on them is ignored rather than rejected.
func BodyLimit(maxBytes int64) echo.MiddlewareFunc {
	return echomw.BodyLimitWithConfig(echomw.BodyLimitConfig{
		Skipper: func(c echo.Context) bool {
			return !service.CarriesBody(c.Request().Method)
		},
		Limit: fmt.Sprintf("%dB", maxBytes),
	})
}
