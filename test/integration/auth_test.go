package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"namedesk_backend/internal/models"
	"namedesk_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	username := helpers.UniqueName("login_ok")
	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     username,
		PasswordHash: "super_password123",
		Name:         "Login User",
		Email:        username + "@test.local",
		Role:         models.UserRoleEmployee,
	})

	loginBody := map[string]interface{}{
		"username": username,
		"password": "super_password123",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"token"`)
	assert.Contains(t, bodyStr, username)
	// The hash never appears in responses
	assert.NotContains(t, bodyStr, "password_hash")
	assert.NotContains(t, bodyStr, "$2a$")
}

func TestLogin_BadPassword(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	username := helpers.UniqueName("login_bad")
	helpers.CreateUser(t, ts.DB, &models.User{
		Username:     username,
		PasswordHash: "correct-password",
		Name:         "Bad Password User",
		Email:        username + "@test.local",
	})

	loginBody := map[string]interface{}{
		"username": username,
		"password": "wrong-password",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid credentials")
	assert.NotContains(t, bodyStr, `"token"`)
}

func TestLogin_UnknownUsername(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	loginBody := map[string]interface{}{
		"username": helpers.UniqueName("nobody"),
		"password": "whatever123",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)

	// Same status and message as a wrong password
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid credentials")
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, user := helpers.CreateAndLoginEmployee(t, ts)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Username)
	assert.Contains(t, bodyStr, user.Email)
}

func TestMe_WithoutToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	// Same error envelope as every other error path
	assert.Contains(t, bodyStr, `"code":"UNAUTHORIZED"`)
}

func TestMe_GarbageToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, `"code":"INVALID_TOKEN"`)
}

func TestChangePassword_Flow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	username := helpers.UniqueName("pwchange")
	token, _ := helpers.CreateAndLoginUser(t, ts, username, "old-password1", models.UserRoleEmployee)

	// Wrong current password is rejected
	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/auth/password", token, map[string]interface{}{
		"current_password": "not-the-old-one",
		"new_password":     "new-password-456",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid credentials")

	// Correct current password succeeds
	res, _ = ts.SendRequest(t, "PUT", "/api/v1/auth/password", token, map[string]interface{}{
		"current_password": "old-password1",
		"new_password":     "new-password-456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Old password no longer works, new one does
	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": "old-password1",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, _ = ts.SendRequest(t, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"username": username,
		"password": "new-password-456",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPasswordsStoredHashed(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	username := helpers.UniqueName("hashed")
	res, _ := ts.SendRequest(t, "POST", "/api/v1/employees", adminToken, map[string]interface{}{
		"username": username,
		"password": "plain-text-secret",
		"name":     "Hashed User",
		"email":    username + "@test.local",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var user models.User
	assert.NoError(t, ts.DB.First(&user, "username = ?", username).Error)
	assert.True(t, strings.HasPrefix(user.PasswordHash, "$2a$"), "password must be bcrypt-hashed at rest")
	assert.NotEqual(t, "plain-text-secret", user.PasswordHash)
}
