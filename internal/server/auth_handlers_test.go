package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]string{
				"username": "leo",
				"email":    "leo@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Short password",
			body: map[string]string{
				"username": "anna",
				"email":    "anna@example.com",
				"password": "short",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing username",
			body: map[string]string{
				"email":    "ghost@example.com",
				"password": "password123",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := setupServer(t)

			resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/signup/", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusCreated {
				body := decodeBody(t, resp)
				assert.NotEmpty(t, body["token"])
			}
		})
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	app, srv, db := setupServer(t)
	signupUser(t, srv, db, "leo")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/signup/", map[string]string{
		"username": "leo",
		"email":    "other@example.com",
		"password": "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, srv, db := setupServer(t)
	signupUser(t, srv, db, "leo")

	t.Run("Success sets cookie", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login/", map[string]string{
			"username": "leo",
			"password": "password123",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cookies := resp.Header.Values("Set-Cookie")
		require.NotEmpty(t, cookies)
		assert.Contains(t, cookies[0], "plume_token=")
	})

	t.Run("Wrong password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login/", map[string]string{
			"username": "leo",
			"password": "wrong-password",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown user gets the same status as a bad password", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login/", map[string]string{
			"username": "nobody",
			"password": "password123",
		}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLoginFollowsNext(t *testing.T) {
	app, srv, db := setupServer(t)
	signupUser(t, srv, db, "leo")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/login/?next=%2Fcreate%2F", map[string]string{
		"username": "leo",
		"password": "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/create/", resp.Header.Get("Location"))
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _, _ := setupServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/auth/logout/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cookies := resp.Header.Values("Set-Cookie")
	require.NotEmpty(t, cookies)
	assert.Contains(t, cookies[0], "plume_token=;")
}
