package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gig-market/internal/markerrors"
	model "gig-market/internal/models"
)

// PostgresStore is the pgx-backed implementation of MarketStore. Atomic
// units run inside database transactions; bid uniqueness is a unique index
// on (gig_id, freelancer_id).
type PostgresStore struct {
	pool *pgxpool.Pool
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS users_email_idx ON users (lower(email));

CREATE TABLE IF NOT EXISTS gigs (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	budget DOUBLE PRECISION NOT NULL,
	status TEXT NOT NULL,
	owner_id UUID NOT NULL REFERENCES users(id),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS bids (
	id UUID PRIMARY KEY,
	gig_id UUID NOT NULL REFERENCES gigs(id),
	freelancer_id UUID NOT NULL REFERENCES users(id),
	message TEXT NOT NULL,
	price DOUBLE PRECISION NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS bids_gig_freelancer_idx ON bids (gig_id, freelancer_id);
`

// NewPostgresStore connects to dsn, verifies the connection and ensures the
// schema exists.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	poolCfg.MaxConns = 10
	poolCfg.MinConns = 2
	poolCfg.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: create schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// mapPgError translates driver-level failures into store sentinel errors.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if pgErr.ConstraintName == "bids_gig_freelancer_idx" {
				return markerrors.ErrDuplicateBid
			}
			return markerrors.ErrEmailTaken
		case "40001", "40P01": // serialization failure, deadlock
			return markerrors.ErrContention
		}
	}
	return err
}

// CreateUser inserts a new user; duplicate emails surface ErrEmailTaken.
func (s *PostgresStore) CreateUser(ctx context.Context, user model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.UserID, user.Name, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", mapPgError(err))
	}
	return nil
}

// GetUserByEmail returns the user registered under email (case-insensitive).
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE lower(email) = lower($1)`,
		email)
	return scanUser(row, "get user by email")
}

// GetUserByID returns a user by id.
func (s *PostgresStore) GetUserByID(ctx context.Context, userID string) (model.User, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`,
		userID)
	return scanUser(row, "get user")
}

func scanUser(row pgx.Row, op string) (model.User, error) {
	var user model.User
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, fmt.Errorf("%s: %w", op, markerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// CreateGig inserts a new gig.
func (s *PostgresStore) CreateGig(ctx context.Context, gig model.Gig) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO gigs (id, title, description, budget, status, owner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		gig.GigID, gig.Title, gig.Description, gig.Budget, gig.Status, gig.OwnerID, gig.CreatedAt)
	if err != nil {
		return fmt.Errorf("create gig: %w", mapPgError(err))
	}
	return nil
}

// GetGig returns a gig by id.
func (s *PostgresStore) GetGig(ctx context.Context, gigID string) (model.Gig, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, description, budget, status, owner_id, created_at FROM gigs WHERE id = $1`,
		gigID)
	var gig model.Gig
	err := row.Scan(&gig.GigID, &gig.Title, &gig.Description, &gig.Budget, &gig.Status, &gig.OwnerID, &gig.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, markerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Gig{}, fmt.Errorf("get gig %s: %w", gigID, err)
	}
	return gig, nil
}

// ListOpenGigs returns open gigs matching keyword in title or description,
// newest first.
func (s *PostgresStore) ListOpenGigs(ctx context.Context, keyword string) ([]model.Gig, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, budget, status, owner_id, created_at
		 FROM gigs
		 WHERE status = $1 AND (title ILIKE '%' || $2 || '%' OR description ILIKE '%' || $2 || '%')
		 ORDER BY created_at DESC, id`,
		model.GigOpen, keyword)
	if err != nil {
		return nil, fmt.Errorf("list open gigs: %w", err)
	}
	return scanGigs(rows, "list open gigs")
}

// ListGigsByOwner returns all gigs owned by ownerID, newest first.
func (s *PostgresStore) ListGigsByOwner(ctx context.Context, ownerID string) ([]model.Gig, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, description, budget, status, owner_id, created_at
		 FROM gigs WHERE owner_id = $1
		 ORDER BY created_at DESC, id`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("list gigs by owner: %w", err)
	}
	return scanGigs(rows, "list gigs by owner")
}

func scanGigs(rows pgx.Rows, op string) ([]model.Gig, error) {
	defer rows.Close()
	gigs := make([]model.Gig, 0)
	for rows.Next() {
		var gig model.Gig
		if err := rows.Scan(&gig.GigID, &gig.Title, &gig.Description, &gig.Budget, &gig.Status, &gig.OwnerID, &gig.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		gigs = append(gigs, gig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return gigs, nil
}

// DeleteGigCascade removes a gig and all of its bids in one transaction.
func (s *PostgresStore) DeleteGigCascade(ctx context.Context, gigID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete gig %s: %w", gigID, mapPgError(err))
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM bids WHERE gig_id = $1`, gigID); err != nil {
		return fmt.Errorf("delete gig %s: delete bids: %w", gigID, mapPgError(err))
	}
	tag, err := tx.Exec(ctx, `DELETE FROM gigs WHERE id = $1`, gigID)
	if err != nil {
		return fmt.Errorf("delete gig %s: %w", gigID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete gig %s: %w", gigID, markerrors.ErrGigNotFound)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("delete gig %s: commit: %w", gigID, mapPgError(err))
	}
	return nil
}

// CreateBid inserts a new bid; the unique index on (gig_id, freelancer_id)
// is the backstop against racing duplicate submissions.
func (s *PostgresStore) CreateBid(ctx context.Context, bid model.Bid) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO bids (id, gig_id, freelancer_id, message, price, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bid.BidID, bid.GigID, bid.FreelancerID, bid.Message, bid.Price, bid.Status, bid.CreatedAt)
	if err != nil {
		return fmt.Errorf("create bid: %w", mapPgError(err))
	}
	return nil
}

// GetBid returns a bid by id.
func (s *PostgresStore) GetBid(ctx context.Context, bidID string) (model.Bid, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, gig_id, freelancer_id, message, price, status, created_at FROM bids WHERE id = $1`,
		bidID)
	var bid model.Bid
	err := row.Scan(&bid.BidID, &bid.GigID, &bid.FreelancerID, &bid.Message, &bid.Price, &bid.Status, &bid.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, markerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, err)
	}
	return bid, nil
}

// ListBidsByGig returns all bids for a gig, newest first.
func (s *PostgresStore) ListBidsByGig(ctx context.Context, gigID string) ([]model.Bid, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, gig_id, freelancer_id, message, price, status, created_at
		 FROM bids WHERE gig_id = $1
		 ORDER BY created_at DESC, id`,
		gigID)
	if err != nil {
		return nil, fmt.Errorf("list bids by gig: %w", err)
	}
	return scanBids(rows, "list bids by gig")
}

// ListBidsByFreelancer returns all bids placed by freelancerID, newest first.
func (s *PostgresStore) ListBidsByFreelancer(ctx context.Context, freelancerID string) ([]model.Bid, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, gig_id, freelancer_id, message, price, status, created_at
		 FROM bids WHERE freelancer_id = $1
		 ORDER BY created_at DESC, id`,
		freelancerID)
	if err != nil {
		return nil, fmt.Errorf("list bids by freelancer: %w", err)
	}
	return scanBids(rows, "list bids by freelancer")
}

func scanBids(rows pgx.Rows, op string) ([]model.Bid, error) {
	defer rows.Close()
	bids := make([]model.Bid, 0)
	for rows.Next() {
		var bid model.Bid
		if err := rows.Scan(&bid.BidID, &bid.GigID, &bid.FreelancerID, &bid.Message, &bid.Price, &bid.Status, &bid.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return bids, nil
}

// HireBid assigns the gig to the given bid inside one transaction. The gig
// row is locked with FOR UPDATE before the open-check, so a concurrent hire
// on the same gig serializes behind this one and then fails the check.
func (s *PostgresStore) HireBid(ctx context.Context, gigID, bidID string) (model.Bid, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, mapPgError(err))
	}
	defer tx.Rollback(ctx)

	var status model.GigStatus
	err = tx.QueryRow(ctx, `SELECT status FROM gigs WHERE id = $1 FOR UPDATE`, gigID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, markerrors.ErrGigNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("hire bid %s: lock gig: %w", bidID, mapPgError(err))
	}
	if status != model.GigOpen {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, markerrors.ErrGigNotOpen)
	}

	if _, err := tx.Exec(ctx, `UPDATE gigs SET status = $1 WHERE id = $2`, model.GigAssigned, gigID); err != nil {
		return model.Bid{}, fmt.Errorf("hire bid %s: assign gig: %w", bidID, mapPgError(err))
	}

	var bid model.Bid
	err = tx.QueryRow(ctx,
		`UPDATE bids SET status = $1 WHERE id = $2 AND gig_id = $3
		 RETURNING id, gig_id, freelancer_id, message, price, status, created_at`,
		model.BidHired, bidID, gigID).
		Scan(&bid.BidID, &bid.GigID, &bid.FreelancerID, &bid.Message, &bid.Price, &bid.Status, &bid.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Bid{}, fmt.Errorf("hire bid %s: %w", bidID, markerrors.ErrBidNotFound)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("hire bid %s: mark hired: %w", bidID, mapPgError(err))
	}

	if _, err := tx.Exec(ctx,
		`UPDATE bids SET status = $1 WHERE gig_id = $2 AND id <> $3`,
		model.BidRejected, gigID, bidID); err != nil {
		return model.Bid{}, fmt.Errorf("hire bid %s: reject siblings: %w", bidID, mapPgError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Bid{}, fmt.Errorf("hire bid %s: commit: %w", bidID, mapPgError(err))
	}
	return bid, nil
}
