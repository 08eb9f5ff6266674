package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"duobuddy-proxy/internal/config"
)

// corsMethods lists every method the proxy accepts, advertised on preflight.
var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodOptions,
}

// CORS returns the permissive cross-origin policy: configured origins (all by
// default), all methods, all requested headers, credentials allowed. Stricter
// enforcement belongs to the upstream.
//
// With a wildcard origin and credentials the request Origin is echoed back,
// since browsers reject "*" on credentialed responses. AllowHeaders is left
// empty so a preflight echoes Access-Control-Request-Headers.
func CORS(cfg config.CORSConfig) echo.MiddlewareFunc {
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomw.CORSWithConfig(echomw.CORSConfig{
		Skipper:          notPreflight,
		AllowOrigins:     origins,
		AllowMethods:     corsMethods,
		AllowCredentials: true,

		UnsafeWildcardOriginWithAllowCredentials: true,
	})
}

// notPreflight skips the CORS layer for OPTIONS requests that are not CORS
// preflights, so they are proxied like any other method.
func notPreflight(c echo.Context) bool {
	req := c.Request()
	return req.Method == http.MethodOptions && req.Header.Get(echo.HeaderAccessControlRequestMethod) == ""
}
