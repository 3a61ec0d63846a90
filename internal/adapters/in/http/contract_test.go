package http

import (
	"fmt"
	"strings"
	"testing"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test_RegisteredRoutesMatchOpenAPIContract guards against the route table and
// the published API document drifting apart: every operation documented in
// api/openapi.yml must be registered on the echo instance, and every
// registered API route must be documented.
func Test_RegisteredRoutesMatchOpenAPIContract(t *testing.T) {
	// Arrange
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../../api/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))

	// Route registration never invokes the handlers, so zero values suffice.
	server := NewServer(
		commands.RegisterUserCommandHandler{}, commands.SetUserRoleCommandHandler{},
		commands.CreateRiderCommandHandler{}, commands.SetRiderApprovalCommandHandler{},
		commands.RemoveRiderCommandHandler{},
		commands.CreateParcelCommandHandler{}, commands.AssignRiderCommandHandler{},
		commands.RemoveParcelCommandHandler{},
		commands.InitiateCheckoutCommandHandler{}, commands.ReconcilePaymentCommandHandler{},
		queries.ListUsersQueryHandler{}, queries.GetUserQueryHandler{},
		queries.GetUserRoleQueryHandler{},
		queries.ListRidersQueryHandler{}, queries.ListParcelsQueryHandler{},
		queries.GetParcelQueryHandler{}, queries.ListPaymentsQueryHandler{},
		queries.GetInconsistenciesQueryHandler{},
	)

	e := echo.New()

	// Act
	server.RegisterRoutes(e, NewAuthMiddleware(nil, queries.GetUserRoleQueryHandler{}))

	// Assert
	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	documented := make(map[string]bool)
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			documented[method+" /api/v1"+toEchoPath(path)] = true
		}
	}

	for operation := range documented {
		assert.True(t, registered[operation], "documented operation is not registered: %s", operation)
	}
	for operation := range registered {
		assert.True(t, documented[operation], "registered route is not documented: %s", operation)
	}
}

// toEchoPath rewrites OpenAPI {param} segments into echo :param segments.
func toEchoPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(segment, "{"), "}")
		}
	}

	return strings.Join(segments, "/")
}

func Test_ToEchoPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/parcels/{parcelId}", "/parcels/:parcelId"},
		{"/users/{userId}/role", "/users/:userId/role"},
		{"/health", "/health"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("%s->%s", test.path, test.want), func(t *testing.T) {
			assert.Equal(t, test.want, toEchoPath(test.path))
		})
	}
}
