package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"gig-market/internal/markerrors"
	model "gig-market/internal/models"
	"gig-market/services/market/helpers"
)

// Test SubmitBidHandler
func TestSubmitBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/gigs/:gig_id/bids", asUser("user1"), handler.SubmitBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		gigID          string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:  "success_valid_bid",
			gigID: "gig1",
			requestBody: helpers.SubmitBidRequest{
				Message: "I can do this in a week",
				Price:   800,
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "gig1", "user1", "I can do this in a week", 800.0).
					Return(model.Bid{
						BidID:        "b1",
						GigID:        "gig1",
						FreelancerID: "user1",
						Message:      "I can do this in a week",
						Price:        800,
						Status:       model.BidPending,
						CreatedAt:    now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "b1", data["bid_id"])
				require.Equal(t, "pending", data["status"])
			},
		},
		{
			name:           "missing_message_binding_error",
			gigID:          "gig1",
			requestBody:    map[string]any{"price": 800},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "gig_missing",
			gigID: "gigX",
			requestBody: helpers.SubmitBidRequest{
				Message: "hi",
				Price:   800,
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "gigX", "user1", "hi", 800.0).
					Return(model.Bid{}, markerrors.ErrGigNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "gig_not_open",
			gigID: "gig2",
			requestBody: helpers.SubmitBidRequest{
				Message: "hi",
				Price:   800,
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "gig2", "user1", "hi", 800.0).
					Return(model.Bid{}, markerrors.ErrGigNotOpen)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "self_bid",
			gigID: "gig3",
			requestBody: helpers.SubmitBidRequest{
				Message: "hi",
				Price:   800,
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "gig3", "user1", "hi", 800.0).
					Return(model.Bid{}, markerrors.ErrSelfBid)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "duplicate_bid",
			gigID: "gig1",
			requestBody: helpers.SubmitBidRequest{
				Message: "hi again",
				Price:   900,
			},
			mockSetup: func() {
				mockService.EXPECT().
					SubmitBid(gomock.Any(), "gig1", "user1", "hi again", 900.0).
					Return(model.Bid{}, markerrors.ErrDuplicateBid)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := performJSON(t, router, http.MethodPost, "/gigs/"+tc.gigID+"/bids", tc.requestBody)
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

// Test ListGigBidsHandler
func TestListGigBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/gigs/:gig_id/bids", asUser("owner1"), handler.ListGigBidsHandler)

	t.Run("owner_sees_bidder_profiles", func(t *testing.T) {
		mockService.EXPECT().
			ListBidsForGig(gomock.Any(), "gig1", "owner1").
			Return([]model.BidWithBidder{
				{
					Bid:    model.Bid{BidID: "b1", GigID: "gig1", FreelancerID: "user1", Status: model.BidPending},
					Bidder: model.Profile{UserID: "user1", Name: "Alice", Email: "alice@example.com"},
				},
			}, nil)

		w := performJSON(t, router, http.MethodGet, "/gigs/gig1/bids", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"name":"Alice"`)
	})

	t.Run("not_owner", func(t *testing.T) {
		mockService.EXPECT().
			ListBidsForGig(gomock.Any(), "gig2", "owner1").
			Return(nil, markerrors.ErrForbidden)

		w := performJSON(t, router, http.MethodGet, "/gigs/gig2/bids", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// Test HireBidHandler
func TestHireBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockBidServiceInterface(ctrl)
	handler := NewBidHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/bids/:bid_id/hire", asUser("owner1"), handler.HireBidHandler)

	tests := []struct {
		name           string
		bidID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success",
			bidID: "b1",
			mockSetup: func() {
				mockService.EXPECT().
					Hire(gomock.Any(), "b1", "owner1").
					Return(model.Bid{BidID: "b1", GigID: "gig1", FreelancerID: "user1", Status: model.BidHired}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "freelancer hired successfully",
		},
		{
			name:  "bid_missing",
			bidID: "bX",
			mockSetup: func() {
				mockService.EXPECT().
					Hire(gomock.Any(), "bX", "owner1").
					Return(model.Bid{}, markerrors.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:  "not_owner",
			bidID: "b2",
			mockSetup: func() {
				mockService.EXPECT().
					Hire(gomock.Any(), "b2", "owner1").
					Return(model.Bid{}, markerrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:  "already_assigned",
			bidID: "b3",
			mockSetup: func() {
				mockService.EXPECT().
					Hire(gomock.Any(), "b3", "owner1").
					Return(model.Bid{}, markerrors.ErrGigAssigned)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			w := performJSON(t, router, http.MethodPost, "/bids/"+tc.bidID+"/hire", nil)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedMsg != "" {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				require.Equal(t, tc.expectedMsg, resp["message"])
			}
		})
	}
}
