package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vexr-systems/fieldserve/internal/session"
	"go.uber.org/zap"
)

func TestLogin_EstablishesSession(t *testing.T) {
	var captured *http.Request
	client := testClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{
			"status": "success",
			"token": "jwt-xyz",
			"data": {
				"user": {
					"_id": "u1",
					"name": "Amr Hassan",
					"role": "ENG",
					"region": {"_id": "r1", "name": "Cairo", "code": "CAI"}
				}
			}
		}`), nil
	})
	users := NewUsersService(client, zap.NewNop())

	sess, err := users.Login(context.Background(), Credentials{Username: "amr", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "/api/v1/users/login", captured.URL.Path)

	assert.Equal(t, "jwt-xyz", sess.Token)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "Amr Hassan", sess.UserName)
	assert.Equal(t, session.RoleEngineer, sess.Role)
	assert.Equal(t, "r1", sess.RegionID)
	assert.Equal(t, "CAI", sess.RegionCode)

	// Token is installed on the shared client for subsequent calls.
	assert.Equal(t, "jwt-xyz", client.token)
}

func TestLogin_UnpopulatedRegionRef(t *testing.T) {
	// The backend sends a bare id string when the user's region ref is
	// not populated; login must still establish a session carrying it.
	client := testClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"status": "success",
			"token": "jwt-xyz",
			"data": {
				"user": {
					"_id": "u1",
					"name": "Amr Hassan",
					"role": "ENG",
					"region": "region-raw-id"
				}
			}
		}`), nil
	})
	users := NewUsersService(client, zap.NewNop())

	sess, err := users.Login(context.Background(), Credentials{Username: "amr", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, "region-raw-id", sess.RegionID)
	assert.Empty(t, sess.RegionName)
	assert.Empty(t, sess.RegionCode)
	assert.NoError(t, sess.Validate())
}

func TestLogin_RejectedCredentials(t *testing.T) {
	client := testClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized,
			`{"status":"fail","message":"Incorrect username or password"}`), nil
	})
	users := NewUsersService(client, zap.NewNop())

	_, err := users.Login(context.Background(), Credentials{Username: "amr", Password: "wrong"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect username or password")
	assert.Empty(t, client.token)
}

func TestLogin_MissingToken(t *testing.T) {
	client := testClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"success"}`), nil
	})
	users := NewUsersService(client, zap.NewNop())

	_, err := users.Login(context.Background(), Credentials{Username: "amr", Password: "secret"})
	assert.Error(t, err)
}

func TestLogout_ClearsToken(t *testing.T) {
	client := testClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"success"}`), nil
	})
	client.SetToken("jwt-xyz")
	users := NewUsersService(client, zap.NewNop())

	assert.NoError(t, users.Logout(context.Background()))
	assert.Empty(t, client.token)
}
