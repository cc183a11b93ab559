package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"gig-market/internal/markerrors"
	model "gig-market/internal/models"
	"gig-market/services/market/helpers"
)

// asUser simulates the auth middleware for handler tests.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(helpers.ContextUserID, userID)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// Test CreateGigHandler
func TestCreateGigHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockGigServiceInterface(ctrl)
	handler := NewGigHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/gigs", asUser("owner1"), handler.CreateGigHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_gig",
			requestBody: helpers.CreateGigRequest{
				Title:       "Build a website",
				Description: "A landing page",
				Budget:      1000,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateGig(gomock.Any(), "owner1", "Build a website", "A landing page", 1000.0).
					Return(model.Gig{
						GigID:       "gig1",
						Title:       "Build a website",
						Description: "A landing page",
						Budget:      1000,
						Status:      model.GigOpen,
						OwnerID:     "owner1",
						CreatedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "gig1", data["gig_id"])
				require.Equal(t, "open", data["status"])
				require.Equal(t, "owner1", data["owner_id"])
			},
		},
		{
			name:           "missing_title_binding_error",
			requestBody:    map[string]any{"description": "A landing page", "budget": 1000},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non_positive_budget_binding_error",
			requestBody:    map[string]any{"title": "x", "description": "y", "budget": -5},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service_validation_error",
			requestBody: helpers.CreateGigRequest{
				Title:       "   ",
				Description: "A landing page",
				Budget:      1000,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateGig(gomock.Any(), "owner1", "   ", "A landing page", 1000.0).
					Return(model.Gig{}, markerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := performJSON(t, router, http.MethodPost, "/gigs", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.validateData != nil {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data, ok := resp["data"].(map[string]any)
				require.True(t, ok, "response should carry a data object")
				tc.validateData(t, data)
			}
		})
	}
}

// Test ListGigsHandler
func TestListGigsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockGigServiceInterface(ctrl)
	handler := NewGigHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gigs", handler.ListGigsHandler)

	t.Run("keyword_forwarded", func(t *testing.T) {
		mockService.EXPECT().
			ListOpenGigs(gomock.Any(), "website").
			Return([]model.Gig{{GigID: "gig1", Title: "Build a website", Status: model.GigOpen}}, nil)

		w := performJSON(t, router, http.MethodGet, "/gigs?keyword=website", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data, ok := resp["data"].([]any)
		require.True(t, ok)
		require.Len(t, data, 1)
	})

	t.Run("nil_result_becomes_empty_array", func(t *testing.T) {
		mockService.EXPECT().ListOpenGigs(gomock.Any(), "").Return(nil, nil)

		w := performJSON(t, router, http.MethodGet, "/gigs", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"data":[]`)
	})
}

// Test GetGigHandler
func TestGetGigHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockGigServiceInterface(ctrl)
	handler := NewGigHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gigs/:gig_id", handler.GetGigHandler)

	t.Run("found", func(t *testing.T) {
		mockService.EXPECT().
			GetGig(gomock.Any(), "gig1").
			Return(model.Gig{GigID: "gig1", Status: model.GigOpen}, nil)

		w := performJSON(t, router, http.MethodGet, "/gigs/gig1", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().
			GetGig(gomock.Any(), "missing").
			Return(model.Gig{}, markerrors.ErrGigNotFound)

		w := performJSON(t, router, http.MethodGet, "/gigs/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test DeleteGigHandler
func TestDeleteGigHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockGigServiceInterface(ctrl)
	handler := NewGigHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/gigs/:gig_id", asUser("owner1"), handler.DeleteGigHandler)

	tests := []struct {
		name           string
		gigID          string
		serviceError   error
		expectedStatus int
	}{
		{name: "owner_deletes", gigID: "gig1", serviceError: nil, expectedStatus: http.StatusOK},
		{name: "missing_gig", gigID: "gigX", serviceError: markerrors.ErrGigNotFound, expectedStatus: http.StatusNotFound},
		{name: "not_owner", gigID: "gig2", serviceError: markerrors.ErrForbidden, expectedStatus: http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService.EXPECT().
				DeleteGig(gomock.Any(), tc.gigID, "owner1").
				Return(tc.serviceError)

			w := performJSON(t, router, http.MethodDelete, "/gigs/"+tc.gigID, nil)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
