package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orgstack/employee-management/internal/core/domain"
)

// Operation names a guarded API capability. Routes reference operations, not
// role literals, so the whole authorization surface lives in one table.
type Operation string

const (
	OpDepartmentRead  Operation = "department:read"
	OpDepartmentWrite Operation = "department:write"
	OpEmployeeManage  Operation = "employee:manage"
	OpUserManage      Operation = "user:manage"
)

// rolePolicy is the static operation → allowed-roles table. Registration is
// the only anonymous operation and is routed outside the authenticated group,
// so it does not appear here.
var rolePolicy = map[Operation]map[domain.Role]struct{}{
	OpDepartmentRead:  roleSet(domain.RoleAdmin, domain.RoleNormalUser),
	OpDepartmentWrite: roleSet(domain.RoleAdmin),
	OpEmployeeManage:  roleSet(domain.RoleAdmin, domain.RoleNormalUser),
	OpUserManage:      roleSet(domain.RoleAdmin),
}

func roleSet(roles ...domain.Role) map[domain.Role]struct{} {
	set := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Require enforces the role policy for op. It runs after BasicAuth and never
// lets a denied request reach the service layer.
func Require(op Operation) echo.MiddlewareFunc {
	allowed := rolePolicy[op]

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextKeyRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
