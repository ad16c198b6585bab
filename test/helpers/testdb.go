package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"namedesk_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var fixtureCounter atomic.Int64

// UniqueName returns a name that no other fixture in this run will collide
// with. Tests share one database, so every fixture gets its own identity.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d_%d", prefix, time.Now().UnixNano(), fixtureCounter.Add(1))
}

// CreateUser persists a user, hashing the password if a raw one was given.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		require.NoError(t, err, "failed to hash fixture password")
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = models.UserRoleEmployee
	}

	require.NoError(t, db.Create(user).Error, "failed to create fixture user")
}

// CreateAndLoginUser creates a user and logs in through the API.
func CreateAndLoginUser(t *testing.T, ts *TestServer, username, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Username:     username,
		PasswordHash: password,
		Name:         "Test " + username,
		Email:        username + "@test.local",
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	loginBody := map[string]interface{}{
		"username": username,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginEmployee creates an employee with a unique username.
func CreateAndLoginEmployee(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, UniqueName("employee"), "password123", models.UserRoleEmployee)
}

// CreateAndLoginAdmin creates an admin with a unique username.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	return CreateAndLoginUser(t, ts, UniqueName("admin"), "password123", models.UserRoleAdmin)
}

// CreateTestCustomer persists a customer in the given status.
func CreateTestCustomer(t *testing.T, db *gorm.DB, status models.CustomerStatus) *models.Customer {
	customer := &models.Customer{
		FatherName:     "Ramesh " + UniqueName("c"),
		MotherName:     "Sita",
		Email:          UniqueName("customer") + "@test.local",
		WhatsappNumber: "+919876543210",
		BabyGender:     "female",
		Status:         status,
		Version:        1,
	}
	require.NoError(t, db.Create(customer).Error, "failed to create fixture customer")
	return customer
}

// CreateTestLeave persists a pending leave request for the user.
func CreateTestLeave(t *testing.T, db *gorm.DB, userID string, from, to string) *models.LeaveRequest {
	leave := &models.LeaveRequest{
		UserID:   userID,
		Type:     models.LeaveTypeCasual,
		Reason:   "family visit",
		DateFrom: from,
		DateTo:   to,
		Status:   models.LeaveStatusPending,
	}
	require.NoError(t, db.Create(leave).Error, "failed to create fixture leave request")
	return leave
}
