package repository

import (
	"context"

	model "gig-market/internal/models"
)

// MarketStore defines durable storage for users, gigs and bids.
//
// DeleteGigCascade and HireBid are atomic units: either all of their writes
// become durable or none do. HireBid additionally evaluates the gig-open
// check inside the same unit as its writes, which is what makes concurrent
// hires on one gig safe. CreateBid enforces uniqueness of
// (gig, freelancer) as a hard constraint.
type MarketStore interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByID(ctx context.Context, userID string) (model.User, error)

	CreateGig(ctx context.Context, gig model.Gig) error
	GetGig(ctx context.Context, gigID string) (model.Gig, error)
	ListOpenGigs(ctx context.Context, keyword string) ([]model.Gig, error)
	ListGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error)
	DeleteGigCascade(ctx context.Context, gigID string) error

	CreateBid(ctx context.Context, bid model.Bid) error
	GetBid(ctx context.Context, bidID string) (model.Bid, error)
	ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error)
	ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error)
	HireBid(ctx context.Context, gigID, bidID string) (model.Bid, error)
}
