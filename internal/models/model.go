package models

import "time"

// GigStatus is the lifecycle state of a Gig. A gig starts open and can only
// move to assigned; assigned is terminal.
type GigStatus string

const (
	GigOpen     GigStatus = "open"
	GigAssigned GigStatus = "assigned"
)

// BidStatus is the lifecycle state of a Bid. Pending bids become hired or
// rejected during a hire; both are terminal.
type BidStatus string

const (
	BidPending  BidStatus = "pending"
	BidHired    BidStatus = "hired"
	BidRejected BidStatus = "rejected"
)

// User represents a registered account. PasswordHash never leaves the
// service layer; use Profile for anything caller-visible.
type User struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is the public view of a User.
type Profile struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Profile returns the public view of the user.
func (u User) Profile() Profile {
	return Profile{UserID: u.UserID, Name: u.Name, Email: u.Email}
}

// Gig represents a unit of work posted by an owner, open for bidding until
// assigned.
type Gig struct {
	GigID       string    `json:"gig_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	Status      GigStatus `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Bid represents a freelancer's proposal against a specific gig.
type Bid struct {
	BidID        string    `json:"bid_id"`
	GigID        string    `json:"gig_id"`
	FreelancerID string    `json:"freelancer_id"`
	Message      string    `json:"message"`
	Price        float64   `json:"price"`
	Status       BidStatus `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// BidWithBidder is a bid joined with the bidder's public profile, as
// returned to a gig owner reviewing bids.
type BidWithBidder struct {
	Bid
	Bidder Profile `json:"bidder"`
}

// BidWithGig is a bid joined with its gig and the bidder's public profile,
// as returned to a freelancer reviewing their own bids.
type BidWithGig struct {
	Bid
	Gig    Gig     `json:"gig"`
	Bidder Profile `json:"bidder"`
}
