package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gig-market/internal/markerrors"
	model "gig-market/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of MarketStore.
// Every multi-record operation runs under the single write lock, which gives
// the same atomicity the Postgres implementation gets from transactions.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]model.User // key: userID
	emails   map[string]string     // key: lowercased email -> userID
	gigs     map[string]model.Gig  // key: gigID
	bids     map[string]model.Bid  // key: bidID
	bidPairs map[string]string     // key: gigID+"/"+freelancerID -> bidID
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]model.User),
		emails:   make(map[string]string),
		gigs:     make(map[string]model.Gig),
		bids:     make(map[string]model.Bid),
		bidPairs: make(map[string]string),
	}
}

func pairKey(gigID, freelancerID string) string {
	return gigID + "/" + freelancerID
}

// CreateUser stores a new user, enforcing email uniqueness.
func (s *MemoryStore) CreateUser(_ context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(user.Email)
	if _, ok := s.emails[key]; ok {
		return fmt.Errorf("create user %s: %w", user.Email, markerrors.ErrEmailTaken)
	}
	s.users[user.UserID] = user
	s.emails[key] = user.UserID
	return nil
}

// GetUserByEmail returns the user registered under email (case-insensitive).
func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[strings.ToLower(email)]
	if !ok {
		return model.User{}, fmt.Errorf("get user by email: %w", markerrors.ErrUserNotFound)
	}
	return s.users[id], nil
}

// GetUserByID returns a user by id.
func (s *MemoryStore) GetUserByID(_ context.Context, userID string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, markerrors.ErrUserNotFound)
	}
	return user, nil
}

// CreateGig stores a new gig.
func (s *MemoryStore) CreateGig(_ context.Context, gig model.Gig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gigs[gig.GigID] = gig
	return nil
}

// GetGig returns a gig by id.
func (s *MemoryStore) GetGig(_ context.Context, gigID string) (model.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gig, ok := s.gigs[gigID]
	if !ok {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, markerrors.ErrGigNotFound)
	}
	return gig, nil
}

// ListOpenGigs returns open gigs whose title or description contains keyword
// (case-insensitive, empty keyword matches all), newest first.
func (s *MemoryStore) ListOpenGigs(_ context.Context, keyword string) ([]model.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kw := strings.ToLower(keyword)
	gigs := make([]model.Gig, 0)
	for _, gig := range s.gigs {
		if gig.Status != model.GigOpen {
			continue
		}
		if kw != "" &&
			!strings.Contains(strings.ToLower(gig.Title), kw) &&
			!strings.Contains(strings.ToLower(gig.Description), kw) {
			continue
		}
		gigs = append(gigs, gig)
	}
	sortGigsNewestFirst(gigs)
	return gigs, nil
}

// ListGigsByOwner returns all gigs owned by ownerID, newest first.
func (s *MemoryStore) ListGigsByOwner(_ context.Context, ownerID string) ([]model.Gig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gigs := make([]model.Gig, 0)
	for _, gig := range s.gigs {
		if gig.OwnerID == ownerID {
			gigs = append(gigs, gig)
		}
	}
	sortGigsNewestFirst(gigs)
	return gigs, nil
}

// DeleteGigCascade removes a gig and all of its bids as one atomic unit.
func (s *MemoryStore) DeleteGigCascade(_ context.Context, gigID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gigs[gigID]; !ok {
		return fmt.Errorf("delete gig %s: %w", gigID, markerrors.ErrGigNotFound)
	}
	for bidID, bid := range s.bids {
		if bid.GigID == gigID {
			delete(s.bids, bidID)
			delete(s.bidPairs, pairKey(bid.GigID, bid.FreelancerID))
		}
	}
	delete(s.gigs, gigID)
	return nil
}

// CreateBid stores a new bid. The (gig, freelancer) pair index is checked
// under the same lock as the insert, so duplicates are rejected even when
// two submissions race.
func (s *MemoryStore) CreateBid(_ context.Context, bid model.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.gigs[bid.GigID]; !ok {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, markerrors.ErrGigNotFound)
	}
	key := pairKey(bid.GigID, bid.FreelancerID)
	if _, ok := s.bidPairs[key]; ok {
		return fmt.Errorf("create bid for gig %s: %w", bid.GigID, markerrors.ErrDuplicateBid)
	}
	s.bids[bid.BidID] = bid
	s.bidPairs[key] = bid.BidID
	return nil
}

// GetBid returns a bid by id.
func (s *MemoryStore) GetBid(_ context.Context, bidID string) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bid, ok := s.bids[bidID]
	if !ok {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, markerrors.ErrBidNotFound)
	}
	return bid, nil
}

// ListBidsByGig returns all bids for a gig, newest first.
func (s *MemoryStore) ListBidsByGig(_ context.Context, gigID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range s.bids {
		if bid.GigID == gigID {
			bids = append(bids, bid)
		}
	}
	sortBidsNewestFirst(bids)
	return bids, nil
}

// ListBidsByFreelancer returns all bids placed by freelancerID, newest first.
func (s *MemoryStore) ListBidsByFreelancer(_ context.Context, freelancerID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids := make([]model.Bid, 0)
	for _, bid := range s.bids {
		if bid.FreelancerID == freelancerID {
			bids = append(bids, bid)
		}
	}
	sortBidsNewestFirst(bids)
	return bids, nil
}

// HireBid atomically assigns the gig to the given bid. The gig-open check
// and all three status writes happen under one write lock, so a second
// concurrent hire observes the gig already assigned.
func (s *MemoryStore) HireBid(_ context.Context, gigID, bidID string) (model.Bid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gig, ok := s.gigs[gigID]
	if !ok {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, markerrors.ErrGigNotFound)
	}
	bid, ok := s.bids[bidID]
	if !ok || bid.GigID != gigID {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, markerrors.ErrBidNotFound)
	}
	if gig.Status != model.GigOpen {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, markerrors.ErrGigNotOpen)
	}

	gig.Status = model.GigAssigned
	s.gigs[gigID] = gig

	bid.Status = model.BidHired
	s.bids[bidID] = bid

	for id, other := range s.bids {
		if other.GigID == gigID && id != bidID && other.Status == model.BidPending {
			other.Status = model.BidRejected
			s.bids[id] = other
		}
	}
	return bid, nil
}

func sortGigsNewestFirst(gigs []model.Gig) {
	sort.Slice(gigs, func(i, j int) bool {
		if !gigs[i].CreatedAt.Equal(gigs[j].CreatedAt) {
			return gigs[i].CreatedAt.After(gigs[j].CreatedAt)
		}
		return gigs[i].GigID < gigs[j].GigID
	})
}

func sortBidsNewestFirst(bids []model.Bid) {
	sort.Slice(bids, func(i, j int) bool {
		if !bids[i].CreatedAt.Equal(bids[j].CreatedAt) {
			return bids[i].CreatedAt.After(bids[j].CreatedAt)
		}
		return bids[i].BidID < bids[j].BidID
	})
}
