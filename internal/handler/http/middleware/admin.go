package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/handler/http/response"
)

// MasterAdminOnly gates the policy, calendar and office administration
// surface. master_admin holds no approval authority; this is its only power.
func MasterAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		role, ok := claims["role"].(string)
		if !ok || employee.Role(role) != employee.RoleMasterAdmin {
			response.Forbidden(w, "Master admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
