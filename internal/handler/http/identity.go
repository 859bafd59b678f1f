package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/workpulse-backend-go/internal/domain/user"
)

// callerID extracts the authenticated user's ID from the access token claims.
func callerID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}

// callerCustomerID resolves the customer scope of the caller: a customer
// account is its own scope, an employee carries its owner's ID in the claims.
func callerCustomerID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role == string(user.RoleCustomer) {
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return "", auth.ErrInvalidToken
		}
		return userID, nil
	}

	customerID, ok := claims["customer_id"].(string)
	if !ok || customerID == "" {
		return "", auth.ErrInvalidToken
	}

	return customerID, nil
}
