package remote

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Mount attaches a validation handler to a chi router at the given pattern,
// accepting POST only. It is sugar over r.Method for applications that mount
// several model endpoints:
//
//	remote.Mount(r, "/validate/signup", remote.Handler(newSignupForm))
//	remote.Mount(r, "/validate/profile", remote.Handler(newProfileForm))
func Mount(r chi.Router, pattern string, h http.Handler) {
	r.Method(http.MethodPost, pattern, h)
}
