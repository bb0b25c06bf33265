package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hraxis/hr-backend-go/internal/domain/auth"
	"github.com/hraxis/hr-backend-go/internal/domain/user"
	"github.com/hraxis/hr-backend-go/internal/handler/http/response"
)

func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func StaffOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		staff, ok := claims["is_staff"].(bool)
		if !ok || !staff {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ActorFromContext rebuilds the acting user from the verified token claims.
func ActorFromContext(r *http.Request) (user.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Actor{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return user.Actor{}, auth.ErrInvalidToken
	}

	actor := user.Actor{UserID: userID}
	if staff, ok := claims["is_staff"].(bool); ok {
		actor.IsStaff = staff
	}
	if employeeID, ok := claims["employee_id"].(string); ok {
		actor.EmployeeID = &employeeID
	}

	return actor, nil
}
