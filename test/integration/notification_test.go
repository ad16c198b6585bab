package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"namedesk_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationListResponse struct {
	Notifications []struct {
		ID         string `json:"id"`
		SenderID   string `json:"sender_id"`
		SenderName string `json:"sender_name"`
		Message    string `json:"message"`
		IsRead     bool   `json:"is_read"`
	} `json:"notifications"`
	Total       int64 `json:"total"`
	UnreadCount int64 `json:"unread_count"`
}

func sendNotification(t *testing.T, ts *helpers.TestServer, token, message string, recipientIDs []string) string {
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/notifications", token, map[string]interface{}{
		"message":       message,
		"recipient_ids": recipientIDs,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "send should succeed, got: "+bodyStr)

	var created struct {
		ID           string   `json:"id"`
		Message      string   `json:"message"`
		RecipientIDs []string `json:"recipient_ids"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotEmpty(t, created.ID)

	// The create response echoes the message and the full recipient list
	assert.Equal(t, message, created.Message)
	assert.ElementsMatch(t, recipientIDs, created.RecipientIDs)
	return created.ID
}

func listNotifications(t *testing.T, ts *helpers.TestServer, token string) notificationListResponse {
	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var list notificationListResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	return list
}

func TestNotificationSend_ToMultipleRecipients(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	senderToken, sender := helpers.CreateAndLoginAdmin(t, ts)
	aliceToken, alice := helpers.CreateAndLoginEmployee(t, ts)
	bobToken, bob := helpers.CreateAndLoginEmployee(t, ts)

	message := "Team meeting at " + helpers.UniqueName("slot")
	sendNotification(t, ts, senderToken, message, []string{alice.ID, bob.ID})

	for _, token := range []string{aliceToken, bobToken} {
		list := listNotifications(t, ts, token)
		require.NotEmpty(t, list.Notifications)
		found := false
		for _, n := range list.Notifications {
			if n.Message == message {
				found = true
				assert.Equal(t, sender.ID, n.SenderID)
				assert.Equal(t, sender.Name, n.SenderName)
				assert.False(t, n.IsRead)
			}
		}
		assert.True(t, found, "recipient must see the notification")
	}
}

func TestNotificationSend_UnknownRecipient(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployee(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/notifications", token, map[string]interface{}{
		"message":       "hello",
		"recipient_ids": []string{"00000000-0000-0000-0000-000000000000"},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestNotificationSend_EmptyRecipients(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployee(t, ts)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/notifications", token, map[string]interface{}{
		"message":       "hello",
		"recipient_ids": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestNotificationList_NewestFirst(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	senderToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	recipientToken, recipient := helpers.CreateAndLoginEmployee(t, ts)

	first := "first " + helpers.UniqueName("msg")
	second := "second " + helpers.UniqueName("msg")
	sendNotification(t, ts, senderToken, first, []string{recipient.ID})
	sendNotification(t, ts, senderToken, second, []string{recipient.ID})

	list := listNotifications(t, ts, recipientToken)
	require.GreaterOrEqual(t, len(list.Notifications), 2)

	firstIdx, secondIdx := -1, -1
	for i, n := range list.Notifications {
		switch n.Message {
		case first:
			firstIdx = i
		case second:
			secondIdx = i
		}
	}
	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, secondIdx, firstIdx, "newer notification comes first")
}

func TestNotificationMarkRead_PerRecipient(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	senderToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	aliceToken, alice := helpers.CreateAndLoginEmployee(t, ts)
	bobToken, bob := helpers.CreateAndLoginEmployee(t, ts)

	message := "shared " + helpers.UniqueName("msg")
	id := sendNotification(t, ts, senderToken, message, []string{alice.ID, bob.ID})

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+id+"/read", aliceToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Alice sees it read, Bob still unread
	aliceList := listNotifications(t, ts, aliceToken)
	bobList := listNotifications(t, ts, bobToken)

	for _, n := range aliceList.Notifications {
		if n.ID == id {
			assert.True(t, n.IsRead, "alice's receipt must be read")
		}
	}
	for _, n := range bobList.Notifications {
		if n.ID == id {
			assert.False(t, n.IsRead, "bob's receipt must stay unread")
		}
	}
}

func TestNotificationMarkRead_NotARecipient(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	senderToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, alice := helpers.CreateAndLoginEmployee(t, ts)
	strangerToken, _ := helpers.CreateAndLoginEmployee(t, ts)

	id := sendNotification(t, ts, senderToken, "private "+helpers.UniqueName("msg"), []string{alice.ID})

	res, bodyStr := ts.SendRequest(t, "PUT", "/api/v1/notifications/"+id+"/read", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "not a recipient")
}

func TestNotificationMarkRead_NotFound(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	token, _ := helpers.CreateAndLoginEmployee(t, ts)

	res, _ := ts.SendRequest(t, "PUT", "/api/v1/notifications/00000000-0000-0000-0000-000000000000/read", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNotificationDelete_AdminOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	recipientToken, recipient := helpers.CreateAndLoginEmployee(t, ts)

	message := "retracted " + helpers.UniqueName("msg")
	id := sendNotification(t, ts, adminToken, message, []string{recipient.ID})

	// Recipients cannot delete
	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+id, recipientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+id, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Gone for the recipient, receipts included
	list := listNotifications(t, ts, recipientToken)
	for _, n := range list.Notifications {
		assert.NotEqual(t, id, n.ID, "deleted notification must not be listed")
	}

	res, _ = ts.SendRequest(t, "DELETE", "/api/v1/notifications/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestNotificationUnreadCountAndReadAll(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	senderToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	recipientToken, recipient := helpers.CreateAndLoginEmployee(t, ts)

	sendNotification(t, ts, senderToken, "one "+helpers.UniqueName("msg"), []string{recipient.ID})
	sendNotification(t, ts, senderToken, "two "+helpers.UniqueName("msg"), []string{recipient.ID})

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", recipientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count struct {
		UnreadCount int64 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &count))
	assert.Equal(t, int64(2), count.UnreadCount)

	res, _ = ts.SendRequest(t, "PUT", "/api/v1/notifications/read-all", recipientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/v1/notifications/unread-count", recipientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &count))
	assert.Equal(t, int64(0), count.UnreadCount)
}
