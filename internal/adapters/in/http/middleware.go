package http

import (
	"net/http"
	"strings"

	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// principalEmailKey is the echo context key under which RequireAuth stores the
// verified caller email.
const principalEmailKey = "principalEmail"

// AuthMiddleware guards routes with bearer-token verification and role checks.
// The principal email is always taken from the verified token, never from the
// request, so callers cannot act on behalf of another account.
type AuthMiddleware struct {
	verifier    ports.TokenVerifier
	roleHandler queries.GetUserRoleQueryHandler
}

// NewAuthMiddleware creates middleware backed by the given token verifier and
// role lookup.
func NewAuthMiddleware(verifier ports.TokenVerifier, roleHandler queries.GetUserRoleQueryHandler) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, roleHandler: roleHandler}
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified email in the echo context for downstream handlers.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Missing bearer token",
			})
		}

		email, err := m.verifier.Verify(ctx.Request().Context(), token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid bearer token",
			})
		}

		ctx.Set(principalEmailKey, email)

		return next(ctx)
	}
}

// RequireAdmin rejects authenticated callers whose account role is not admin.
// It must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		admin, err := m.isAdmin(ctx)
		if err != nil {
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to resolve caller role",
			})
		}

		if !admin {
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Admin role required",
			})
		}

		return next(ctx)
	}
}

func (m *AuthMiddleware) isAdmin(ctx echo.Context) (bool, error) {
	query, err := queries.NewGetUserRoleQuery(principalEmail(ctx))
	if err != nil {
		return false, err
	}

	role, err := m.roleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return false, err
	}

	return role == user.RoleAdmin.String(), nil
}

// principalEmail returns the verified email stored by RequireAuth, or an empty
// string on unguarded routes.
func principalEmail(ctx echo.Context) string {
	email, _ := ctx.Get(principalEmailKey).(string)

	return email
}
