package gigs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gig-market/internal/markerrors"
	model "gig-market/internal/models"
	"gig-market/internal/repository"
)

// Tests CreateGig
func TestGigService_CreateGig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockMarketStore(ctrl)
	service := NewGigService(mockStore)

	ctx := context.Background()
	now := time.Now().UTC()

	// Table-driven test cases
	tests := []struct {
		name          string
		ownerID       string
		title         string
		description   string
		budget        float64
		mockSetup     func()
		expectError   bool
		expectedError error
	}{
		{
			name:        "valid_gig",
			ownerID:     "owner1",
			title:       "Build a website",
			description: "A landing page with a contact form",
			budget:      1000,
			mockSetup: func() {
				mockStore.EXPECT().CreateGig(ctx, gomock.Any()).Return(nil)
			},
			expectError: false,
		},
		{
			name:          "missing_owner",
			ownerID:       "",
			title:         "Build a website",
			description:   "desc",
			budget:        1000,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: markerrors.ErrInvalidInput,
		},
		{
			name:          "blank_title",
			ownerID:       "owner1",
			title:         "   ",
			description:   "desc",
			budget:        1000,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: markerrors.ErrInvalidInput,
		},
		{
			name:          "missing_description",
			ownerID:       "owner1",
			title:         "Build a website",
			description:   "",
			budget:        1000,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: markerrors.ErrInvalidInput,
		},
		{
			name:          "zero_budget",
			ownerID:       "owner1",
			title:         "Build a website",
			description:   "desc",
			budget:        0,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: markerrors.ErrInvalidInput,
		},
		{
			name:          "negative_budget",
			ownerID:       "owner1",
			title:         "Build a website",
			description:   "desc",
			budget:        -50,
			mockSetup:     func() {},
			expectError:   true,
			expectedError: markerrors.ErrInvalidInput,
		},
		{
			name:        "store_fails",
			ownerID:     "owner1",
			title:       "Build a website",
			description: "desc",
			budget:      1000,
			mockSetup: func() {
				mockStore.EXPECT().CreateGig(ctx, gomock.Any()).Return(errors.New("store write failed"))
			},
			expectError:   true,
			expectedError: nil, // Service wraps store error, we don't match a sentinel here
		},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			gig, err := service.CreateGig(ctx, tc.ownerID, tc.title, tc.description, tc.budget)

			if tc.expectError {
				require.Error(t, err)
				if tc.expectedError != nil {
					require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				}
			} else {
				require.NoError(t, err)

				require.NotEmpty(t, gig.GigID)
				_, parseErr := uuid.Parse(gig.GigID)
				require.NoError(t, parseErr, "GigID should be a valid UUID")

				require.Equal(t, tc.ownerID, gig.OwnerID)
				require.Equal(t, tc.title, gig.Title)
				require.Equal(t, tc.budget, gig.Budget)
				require.Equal(t, model.GigOpen, gig.Status)
				require.WithinDuration(t, now, gig.CreatedAt, 2*time.Second)
			}
		})
	}
}

// Tests DeleteGig
func TestGigService_DeleteGig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockMarketStore(ctrl)
	service := NewGigService(mockStore)

	ctx := context.Background()
	ownedGig := model.Gig{GigID: "gig1", OwnerID: "owner1", Status: model.GigOpen}

	tests := []struct {
		name          string
		gigID         string
		requesterID   string
		mockSetup     func()
		expectedError error
	}{
		{
			name:        "owner_deletes",
			gigID:       "gig1",
			requesterID: "owner1",
			mockSetup: func() {
				mockStore.EXPECT().GetGig(ctx, "gig1").Return(ownedGig, nil)
				mockStore.EXPECT().DeleteGigCascade(ctx, "gig1").Return(nil)
			},
			expectedError: nil,
		},
		{
			name:        "gig_missing",
			gigID:       "gigX",
			requesterID: "owner1",
			mockSetup: func() {
				mockStore.EXPECT().GetGig(ctx, "gigX").Return(model.Gig{}, markerrors.ErrGigNotFound)
			},
			expectedError: markerrors.ErrGigNotFound,
		},
		{
			name:        "non_owner_forbidden",
			gigID:       "gig1",
			requesterID: "intruder",
			mockSetup: func() {
				mockStore.EXPECT().GetGig(ctx, "gig1").Return(ownedGig, nil)
			},
			expectedError: markerrors.ErrForbidden,
		},
		{
			name:          "empty_gig_id",
			gigID:         "",
			requesterID:   "owner1",
			mockSetup:     func() {},
			expectedError: markerrors.ErrInvalidInput,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			err := service.DeleteGig(ctx, tc.gigID, tc.requesterID)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Tests read operations
func TestGigService_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockMarketStore(ctrl)
	service := NewGigService(mockStore)

	ctx := context.Background()
	gigsExample := []model.Gig{
		{GigID: "gig2", Title: "Logo design", OwnerID: "owner1", Status: model.GigOpen},
		{GigID: "gig1", Title: "Build a website", OwnerID: "owner1", Status: model.GigOpen},
	}

	t.Run("list_open_passes_keyword", func(t *testing.T) {
		mockStore.EXPECT().ListOpenGigs(ctx, "website").Return(gigsExample[1:], nil)

		gigs, err := service.ListOpenGigs(ctx, "website")
		require.NoError(t, err)
		require.Equal(t, gigsExample[1:], gigs)
	})

	t.Run("get_gig_not_found", func(t *testing.T) {
		mockStore.EXPECT().GetGig(ctx, "gigX").Return(model.Gig{}, markerrors.ErrGigNotFound)

		_, err := service.GetGig(ctx, "gigX")
		require.ErrorIs(t, err, markerrors.ErrGigNotFound)
	})

	t.Run("get_gig_empty_id", func(t *testing.T) {
		_, err := service.GetGig(ctx, "")
		require.ErrorIs(t, err, markerrors.ErrInvalidInput)
	})

	t.Run("my_gigs", func(t *testing.T) {
		mockStore.EXPECT().ListGigsByOwner(ctx, "owner1").Return(gigsExample, nil)

		gigs, err := service.ListMyGigs(ctx, "owner1")
		require.NoError(t, err)
		require.Equal(t, gigsExample, gigs)
	})

	t.Run("my_gigs_empty_owner", func(t *testing.T) {
		_, err := service.ListMyGigs(ctx, "")
		require.ErrorIs(t, err, markerrors.ErrInvalidInput)
	})
}
