package server

import (
	"net"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestID resolves the request identifier: the inbound X-Request-Id
// header, then the response header (set by Echo's request ID middleware),
// then a freshly generated UUID, which is also set on the response so
// downstream code sees the same id.
func requestID(c echo.Context) string {
	if rid := c.Request().Header.Get(echo.HeaderXRequestID); rid != "" {
		return rid
	}
	if resp := c.Response(); resp != nil {
		if rid := resp.Header().Get(echo.HeaderXRequestID); rid != "" {
			return rid
		}
	}
	rid := uuid.New().String()
	if resp := c.Response(); resp != nil {
		resp.Header().Set(echo.HeaderXRequestID, rid)
	}
	return rid
}

// clientAddr returns the first address of the X-Forwarded-For chain, or the
// immediate peer address when the header is absent.
func clientAddr(c echo.Context) string {
	if xff := c.Request().Header.Get(echo.HeaderXForwardedFor); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			xff = xff[:i]
		}
		return strings.TrimSpace(xff)
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}
