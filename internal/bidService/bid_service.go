package bids

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gig-market/internal/markerrors"
	"gig-market/internal/models"
	"gig-market/internal/notifier"
	"gig-market/internal/repository"
	"gig-market/utils"
)

// notifyTimeout bounds the detached delivery attempt after a hire commits.
const notifyTimeout = 5 * time.Second

// BidService defines the business logic for the bid lifecycle and the hire
// transition.
type BidService struct {
	store  repository.MarketStore
	sink   notifier.Notifier
	notify func(userID string, event notifier.HiredEvent)
}

// NewBidService creates a new BidService instance
func NewBidService(store repository.MarketStore, sink notifier.Notifier) *BidService {
	s := &BidService{
		store: store,
		sink:  sink,
	}
	s.notify = s.notifyHired
	return s
}

// SubmitBid validates and stores a freelancer's bid on an open gig. The
// pre-checks here are read-then-act; the store's uniqueness constraint on
// (gig, freelancer) is the backstop when two submissions race.
func (s *BidService) SubmitBid(ctx context.Context, gigID, freelancerID, message string, price float64) (models.Bid, error) {
	if gigID == "" || freelancerID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing gig ID or freelancer ID", markerrors.ErrInvalidInput)
	}
	if strings.TrimSpace(message) == "" {
		return models.Bid{}, fmt.Errorf("service: %w - message is required", markerrors.ErrInvalidInput)
	}
	if price <= 0 {
		return models.Bid{}, fmt.Errorf("service: %w - price must be a positive number", markerrors.ErrInvalidInput)
	}

	gig, err := s.store.GetGig(ctx, gigID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.Status != models.GigOpen {
		return models.Bid{}, fmt.Errorf("service: submit bid on gig %s: %w", gigID, markerrors.ErrGigNotOpen)
	}
	if gig.OwnerID == freelancerID {
		return models.Bid{}, fmt.Errorf("service: submit bid on gig %s: %w", gigID, markerrors.ErrSelfBid)
	}

	existing, err := s.store.ListBidsByGig(ctx, gigID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to check existing bids for gig %s: %w", gigID, err)
	}
	for _, b := range existing {
		if b.FreelancerID == freelancerID {
			return models.Bid{}, fmt.Errorf("service: submit bid on gig %s: %w", gigID, markerrors.ErrDuplicateBid)
		}
	}

	bid := models.Bid{
		BidID:        utils.GenerateID(),
		GigID:        gigID,
		FreelancerID: freelancerID,
		Message:      message,
		Price:        price,
		Status:       models.BidPending,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateBid(ctx, bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on gig %s by %s: %w", gigID, freelancerID, err)
	}
	return bid, nil
}

// ListBidsForGig returns all bids for a gig joined with each bidder's public
// profile. Only the gig owner may view them.
func (s *BidService) ListBidsForGig(ctx context.Context, gigID, requesterID string) ([]models.BidWithBidder, error) {
	if gigID == "" || requesterID == "" {
		return nil, fmt.Errorf("service: %w - missing gig ID or requester", markerrors.ErrInvalidInput)
	}

	gig, err := s.store.GetGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get gig %s: %w", gigID, err)
	}
	if gig.OwnerID != requesterID {
		return nil, fmt.Errorf("service: list bids for gig %s: %w", gigID, markerrors.ErrForbidden)
	}

	bids, err := s.store.ListBidsByGig(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for gig %s: %w", gigID, err)
	}

	out := make([]models.BidWithBidder, 0, len(bids))
	for _, bid := range bids {
		bidder, err := s.store.GetUserByID(ctx, bid.FreelancerID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve bidder %s: %w", bid.FreelancerID, err)
		}
		out = append(out, models.BidWithBidder{Bid: bid, Bidder: bidder.Profile()})
	}
	return out, nil
}

// ListMyBids returns all bids placed by the freelancer, each joined with its
// gig and the bidder's public profile.
func (s *BidService) ListMyBids(ctx context.Context, freelancerID string) ([]models.BidWithGig, error) {
	if freelancerID == "" {
		return nil, fmt.Errorf("service: %w - empty freelancer ID", markerrors.ErrInvalidInput)
	}

	bids, err := s.store.ListBidsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids for freelancer %s: %w", freelancerID, err)
	}

	bidder, err := s.store.GetUserByID(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to resolve freelancer %s: %w", freelancerID, err)
	}

	out := make([]models.BidWithGig, 0, len(bids))
	for _, bid := range bids {
		gig, err := s.store.GetGig(ctx, bid.GigID)
		if err != nil {
			return nil, fmt.Errorf("service: failed to resolve gig %s: %w", bid.GigID, err)
		}
		out = append(out, models.BidWithGig{Bid: bid, Gig: gig, Bidder: bidder.Profile()})
	}
	return out, nil
}

// Hire assigns a gig to the given bid. Ownership is checked up front; the
// gig-open check and all status writes run as one atomic unit in the store,
// so two concurrent hires on the same gig cannot both succeed. On success
// the hired freelancer is notified without blocking the caller.
func (s *BidService) Hire(ctx context.Context, bidID, requesterID string) (models.Bid, error) {
	if bidID == "" || requesterID == "" {
		return models.Bid{}, fmt.Errorf("service: %w - missing bid ID or requester", markerrors.ErrInvalidInput)
	}

	bid, err := s.store.GetBid(ctx, bidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get bid %s: %w", bidID, err)
	}

	gig, err := s.store.GetGig(ctx, bid.GigID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get gig %s for bid %s: %w", bid.GigID, bidID, err)
	}
	if gig.OwnerID != requesterID {
		return models.Bid{}, fmt.Errorf("service: hire bid %s: %w", bidID, markerrors.ErrForbidden)
	}

	hired, err := s.store.HireBid(ctx, gig.GigID, bidID)
	if err != nil {
		if errors.Is(err, markerrors.ErrGigNotOpen) {
			return models.Bid{}, fmt.Errorf("service: hire bid %s: %w", bidID, markerrors.ErrGigAssigned)
		}
		return models.Bid{}, fmt.Errorf("service: failed to hire bid %s: %w", bidID, err)
	}

	// The hire is durably committed at this point; delivery failures are
	// logged and never surfaced to the caller.
	s.notify(hired.FreelancerID, notifier.NewHiredEvent(gig, hired.BidID))

	return hired, nil
}

// notifyHired delivers the event in a detached goroutine with its own
// timeout, decoupled from the request that triggered the hire.
func (s *BidService) notifyHired(userID string, event notifier.HiredEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.sink.NotifyHired(ctx, userID, event); err != nil {
			utils.Warn("failed to deliver hired notification", map[string]any{
				"user_id": userID,
				"bid_id":  event.BidID,
				"error":   err.Error(),
			})
		}
	}()
}
