package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/dockerflow/internal/routes"
	"github.com/JaimeStill/dockerflow/pkg/logging"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRegisterRoute(t *testing.T) {
	sys := routes.New(logging.Discard())
	sys.RegisterRoute(routes.Route{Method: "GET", Pattern: "/test", Handler: write("test response")})

	handler := sys.Build()
	require.NotNil(t, handler)

	rec := serve(handler, "GET", "/test")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test response", rec.Body.String())
	assert.Len(t, sys.Routes(), 1)
}

func TestRegisterRoute_MethodMismatch(t *testing.T) {
	sys := routes.New(logging.Discard())
	sys.RegisterRoute(routes.Route{Method: "GET", Pattern: "/only-get", Handler: write("ok")})

	rec := serve(sys.Build(), "POST", "/only-get")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBuild_EmptySystem(t *testing.T) {
	sys := routes.New(logging.Discard())

	rec := serve(sys.Build(), "GET", "/anything")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterGroup(t *testing.T) {
	sys := routes.New(logging.Discard())
	sys.RegisterGroup(routes.Group{
		Prefix: "/api",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/users", Handler: write("get users")},
			{Method: "POST", Pattern: "/users", Handler: write("create user")},
		},
	})
	handler := sys.Build()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/api/users", "get users"},
		{"POST", "/api/users", "create user"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(handler, tt.method, tt.path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
	assert.Len(t, sys.Groups(), 1)
}

func TestRegisterGroup_NestedChildren(t *testing.T) {
	sys := routes.New(logging.Discard())
	sys.RegisterGroup(routes.Group{
		Prefix: "/ops",
		Children: []routes.Group{
			{
				Prefix: "/v1",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/ping", Handler: write("pong")},
				},
			},
		},
	})

	rec := serve(sys.Build(), "GET", "/ops/v1/ping")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
