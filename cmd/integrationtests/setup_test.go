package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	auth "gig-market/internal/authService"
	bids "gig-market/internal/bidService"
	gigs "gig-market/internal/gigService"
	"gig-market/internal/notifier"
	"gig-market/internal/repository"
	"gig-market/internal/server"
	"gig-market/services/market/helpers"
)

const testSecret = "integration-test-secret"

// RecordingNotifier captures hire events so tests can assert on the
// asynchronous delivery.
type RecordingNotifier struct {
	Events chan recordedEvent
}

type recordedEvent struct {
	UserID string
	Event  notifier.HiredEvent
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{Events: make(chan recordedEvent, 16)}
}

func (n *RecordingNotifier) NotifyHired(_ context.Context, userID string, event notifier.HiredEvent) error {
	n.Events <- recordedEvent{UserID: userID, Event: event}
	return nil
}

// WaitForEvent blocks until a hire event is delivered or the timeout fires.
func (n *RecordingNotifier) WaitForEvent(t *testing.T) recordedEvent {
	t.Helper()
	select {
	case evt := <-n.Events:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hire notification")
		return recordedEvent{}
	}
}

// SetupTestRouter initializes the router with an in-memory store for
// integration testing.
func SetupTestRouter() (*gin.Engine, *RecordingNotifier) {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	sink := NewRecordingNotifier()

	gigService := gigs.NewGigService(store)
	bidService := bids.NewBidService(store, sink)
	authService := auth.NewAuthService(store, testSecret)

	router := server.SetupRouter(gigService, bidService, authService, testSecret)
	return router, sink
}

// ExecuteJSON performs a request with an optional session cookie and parses
// the response envelope.
func ExecuteJSON(t *testing.T, router *gin.Engine, method, url string, body any, session *http.Cookie) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if session != nil {
		req.AddCookie(session)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// RegisterAndLogin creates an account and returns its user id with a live
// session cookie.
func RegisterAndLogin(t *testing.T, router *gin.Engine, name, email string) (string, *http.Cookie) {
	t.Helper()

	resp, w := ExecuteJSON(t, router, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	userID := data["user_id"].(string)

	_, w = ExecuteJSON(t, router, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": "hunter22",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == helpers.SessionCookie {
			return userID, cookie
		}
	}
	t.Fatal("login did not set a session cookie")
	return "", nil
}

// CreateGig posts a gig as the given session and returns its id.
func CreateGig(t *testing.T, router *gin.Engine, session *http.Cookie, title, description string, budget float64) string {
	t.Helper()

	resp, w := ExecuteJSON(t, router, http.MethodPost, "/api/v1/gigs", map[string]any{
		"title":       title,
		"description": description,
		"budget":      budget,
	}, session)
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return data["gig_id"].(string)
}

// SubmitBid posts a bid as the given session and returns its id.
func SubmitBid(t *testing.T, router *gin.Engine, session *http.Cookie, gigID, message string, price float64) string {
	t.Helper()

	resp, w := ExecuteJSON(t, router, http.MethodPost, "/api/v1/gigs/"+gigID+"/bids", map[string]any{
		"message": message,
		"price":   price,
	}, session)
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	return data["bid_id"].(string)
}
