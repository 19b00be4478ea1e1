package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// NewSecure returns a middleware that adds security headers. The API serves
// JSON only, so framing and content sniffing are both denied.
func NewSecure(isDevelopment bool) func(next http.Handler) http.Handler {
	s := secure.New(secure.Options{
		IsDevelopment:         isDevelopment,
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		ContentSecurityPolicy: "default-src 'none'",
		ReferrerPolicy:        "no-referrer",
	})
	return s.Handler
}
