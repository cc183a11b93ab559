package gigs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gig-market/internal/markerrors"
	"gig-market/internal/models"
	"gig-market/internal/repository"
	"gig-market/utils"
)

// GigService defines the business logic for the gig lifecycle
type GigService struct {
	store repository.MarketStore
}

// NewGigService creates a new GigService instance
func NewGigService(store repository.MarketStore) *GigService {
	return &GigService{
		store: store,
	}
}

// CreateGig validates and stores a new open gig for the owner
func (s *GigService) CreateGig(ctx context.Context, ownerID, title, description string, budget float64) (models.Gig, error) {
	if ownerID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - missing owner", markerrors.ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return models.Gig{}, fmt.Errorf("service: %w - title and description are required", markerrors.ErrInvalidInput)
	}
	if budget <= 0 {
		return models.Gig{}, fmt.Errorf("service: %w - budget must be a positive number", markerrors.ErrInvalidInput)
	}

	gig := models.Gig{
		GigID:       utils.GenerateID(),
		Title:       title,
		Description: description,
		Budget:      budget,
		Status:      models.GigOpen,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateGig(ctx, gig); err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to create gig for owner %s: %w", ownerID, err)
	}
	return gig, nil
}

// ListOpenGigs returns open gigs matching the keyword, newest first
func (s *GigService) ListOpenGigs(ctx context.Context, keyword string) ([]models.Gig, error) {
	gigs, err := s.store.ListOpenGigs(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list open gigs: %w", err)
	}
	return gigs, nil
}

// GetGig returns a single gig by id
func (s *GigService) GetGig(ctx context.Context, gigID string) (models.Gig, error) {
	if gigID == "" {
		return models.Gig{}, fmt.Errorf("service: %w - empty gig ID", markerrors.ErrInvalidInput)
	}

	gig, err := s.store.GetGig(ctx, gigID)
	if err != nil {
		return models.Gig{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListMyGigs returns all gigs owned by the given user, newest first
func (s *GigService) ListMyGigs(ctx context.Context, ownerID string) ([]models.Gig, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("service: %w - empty owner ID", markerrors.ErrInvalidInput)
	}

	gigs, err := s.store.ListGigsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list gigs for owner %s: %w", ownerID, err)
	}
	return gigs, nil
}

// DeleteGig removes a gig and all of its bids. Only the owner may delete;
// the cascade is a single atomic unit in the store.
func (s *GigService) DeleteGig(ctx context.Context, gigID, requesterID string) error {
	if gigID == "" || requesterID == "" {
		return fmt.Errorf("service: %w - missing gig ID or requester", markerrors.ErrInvalidInput)
	}

	gig, err := s.store.GetGig(ctx, gigID)
	if err != nil {
		return fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.OwnerID != requesterID {
		return fmt.Errorf("service: delete gig %s: %w", gigID, markerrors.ErrForbidden)
	}

	if err := s.store.DeleteGigCascade(ctx, gigID); err != nil {
		return fmt.Errorf("service: failed to delete gig %s: %w", gigID, err)
	}
	return nil
}
