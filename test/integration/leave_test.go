package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"namedesk_backend/internal/models"
	"namedesk_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveCreate_ComputesDays(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployee(t, ts)

	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/leave-requests", token, map[string]interface{}{
		"type":      "casual",
		"reason":    "wedding",
		"date_from": "2026-09-07",
		"date_to":   "2026-09-09",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "create should succeed, got: "+bodyStr)

	var leave struct {
		Days   int    `json:"days"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &leave))
	assert.Equal(t, 3, leave.Days, "range is inclusive on both ends")
	assert.Equal(t, "pending", leave.Status)
}

func TestLeaveCreate_InvertedRange(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployee(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/leave-requests", token, map[string]interface{}{
		"type":      "sick",
		"date_from": "2026-09-09",
		"date_to":   "2026-09-07",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLeaveCreate_BadDateFormat(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployee(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/leave-requests", token, map[string]interface{}{
		"type":      "sick",
		"date_from": "07/09/2026",
		"date_to":   "09/09/2026",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLeaveApprove_DecrementsBalance(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, employee := helpers.CreateAndLoginEmployee(t, ts)

	leave := helpers.CreateTestLeave(t, ts.DB, employee.ID, "2026-09-07", "2026-09-09")

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", adminToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "approve should succeed, got: "+bodyStr)
	assert.Contains(t, bodyStr, "approved")

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", employee.ID).Error)
	assert.Equal(t, 17, updated.LeaveBalance, "3 days debited from the default 20")
}

func TestLeaveDecide_Twice(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, employee := helpers.CreateAndLoginEmployee(t, ts)

	leave := helpers.CreateTestLeave(t, ts.DB, employee.ID, "2026-10-01", "2026-10-01")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", adminToken, map[string]interface{}{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", adminToken, map[string]interface{}{
		"status":        "rejected",
		"reject_reason": "changed my mind",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "already been decided")
}

func TestLeaveReject_RequiresReasonAndKeepsBalance(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, employee := helpers.CreateAndLoginEmployee(t, ts)

	leave := helpers.CreateTestLeave(t, ts.DB, employee.ID, "2026-11-02", "2026-11-04")

	// Rejection without a reason fails validation
	res, _ := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", adminToken, map[string]interface{}{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", adminToken, map[string]interface{}{
		"status":        "rejected",
		"reject_reason": "short staffed that week",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "short staffed that week")

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", employee.ID).Error)
	assert.Equal(t, 20, updated.LeaveBalance, "rejection must not touch the balance")
}

func TestLeaveDecide_EmployeeForbidden(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	employeeToken, employee := helpers.CreateAndLoginEmployee(t, ts)

	leave := helpers.CreateTestLeave(t, ts.DB, employee.ID, "2026-12-01", "2026-12-01")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", employeeToken, map[string]interface{}{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestLeaveDecide_NotifiesRequester(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	employeeToken, employee := helpers.CreateAndLoginEmployee(t, ts)

	leave := helpers.CreateTestLeave(t, ts.DB, employee.ID, "2026-09-21", "2026-09-22")

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/leave-requests/"+leave.ID+"/decision", adminToken, map[string]interface{}{
		"status":        "rejected",
		"reject_reason": "month-end crunch",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	list := listNotifications(t, ts, employeeToken)
	require.NotEmpty(t, list.Notifications)

	found := false
	for _, n := range list.Notifications {
		if strings.Contains(n.Message, "rejected") && strings.Contains(n.Message, "month-end crunch") {
			found = true
			assert.False(t, n.IsRead)
		}
	}
	assert.True(t, found, "requester should receive an in-app decision notice")
}

func TestLeaveListMine_OnlyOwnRequests(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	aliceToken, alice := helpers.CreateAndLoginEmployee(t, ts)
	_, bob := helpers.CreateAndLoginEmployee(t, ts)

	mine := helpers.CreateTestLeave(t, ts.DB, alice.ID, "2026-09-14", "2026-09-15")
	other := helpers.CreateTestLeave(t, ts.DB, bob.ID, "2026-09-14", "2026-09-15")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/leave-requests/my", aliceToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, mine.ID)
	assert.NotContains(t, bodyStr, other.ID)
}
