package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/constant"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT sessions using UserApp.
// Public endpoints pass through without a token.
func AuthMiddleware(userApp user.UserApp, rs responder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				rs.writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				rs.writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			next.ServeHTTP(w, r.WithContext(utilsContext.WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return token, token != ""
}

var publicPrefixes = []string{"/swagger/", "/internal/", "/products/", "/product/", "/product-detail/"}

// isPublicRequest defines which endpoints are public (no auth required)
func isPublicRequest(r *http.Request) bool {
	path := r.URL.Path
	for _, prefix := range publicPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	switch path {
	case "/login", "/register", "/usernew", "/metrics":
		return true
	case "/addproduct":
		// browsing is public, listing a product is not
		return r.Method == http.MethodGet
	}
	return false
}
