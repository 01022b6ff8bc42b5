package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/employee"
	"github.com/sunvolt-energy/erp-backend-go/internal/domain/policy"
)

var errBadClaims = errors.New("required claims are missing or invalid")

// actorFromRequest rebuilds the authenticated caller from the verified token
// claims. Handlers pass the result into service DTOs so services never touch
// the token machinery.
func actorFromRequest(r *http.Request) (employee.Actor, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return employee.Actor{}, err
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.Actor{}, errBadClaims
	}

	name, _ := claims["name"].(string)

	departmentStr, _ := claims["department"].(string)
	department, ok := policy.ParseDepartment(departmentStr)
	if !ok {
		return employee.Actor{}, errBadClaims
	}

	roleStr, _ := claims["role"].(string)
	role, ok := employee.ParseRole(roleStr)
	if !ok {
		return employee.Actor{}, errBadClaims
	}

	return employee.Actor{
		EmployeeID: employeeID,
		Name:       name,
		Department: department,
		Role:       role,
	}, nil
}
