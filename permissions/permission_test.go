package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"washly/permissions"
)

func TestPermissionData_FindPermissions(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: "POST", Skip: true},
			{Path: "/v1/users", Method: "GET", Permissions: []string{"admin"}},
			{Path: "/v1/bookings/accept/{id}", Method: "PATCH", Permissions: []string{"washer"}},
		},
	}

	tests := []struct {
		name   string
		path   string
		method string
		want   permissions.Permission
	}{
		{
			name:   "skipped endpoint",
			path:   "/v1/auth/login",
			method: "POST",
			want:   permissions.Permission{Path: "/v1/auth/login", Method: "POST", Skip: true},
		},
		{
			name:   "collection route pattern with trailing slash",
			path:   "/v1/users/",
			method: "GET",
			want:   permissions.Permission{Path: "/v1/users", Method: "GET", Permissions: []string{"admin"}},
		},
		{
			name:   "parameterized path",
			path:   "/v1/bookings/accept/{id}",
			method: "PATCH",
			want:   permissions.Permission{Path: "/v1/bookings/accept/{id}", Method: "PATCH", Permissions: []string{"washer"}},
		},
		{
			name:   "method mismatch returns empty",
			path:   "/v1/users",
			method: "DELETE",
			want:   permissions.Permission{},
		},
		{
			name:   "unknown path returns empty",
			path:   "/v1/unknown",
			method: "GET",
			want:   permissions.Permission{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, data.FindPermissions(tt.path, tt.method))
		})
	}
}

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}
