package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
	"github.com/workpulse-hr/workpulse-backend-go/internal/handler/http/response"
)

// CustomerOnly restricts a route group to employer accounts.
func CustomerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleCustomer) {
			response.HandleError(w, user.ErrCustomerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
