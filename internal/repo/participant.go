package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/plannerapp/planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for trip participants.
type ParticipantRepo interface {
	// CreateBatch inserts one row per participant. Used at trip creation
	// time to persist every invitee in one go.
	CreateBatch(ctx context.Context, participants []domain.Participant) error

	// GetByID retrieves a single participant by its UUID primary key.
	// Returns domain.ErrNotFound if no participant with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns all participants of a trip in insertion order.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm marks a participant as confirmed and records the name and
	// email supplied on confirmation. Returns domain.ErrNotFound if the
	// participant does not exist.
	Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error)
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided
// db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

// CreateBatch inserts all participants inside a single round trip per row.
// The caller is expected to run this right after trip creation, so the
// rows are small and few; no COPY is needed.
func (r *pgParticipantRepo) CreateBatch(ctx context.Context, participants []domain.Participant) error {
	const q = `
		INSERT INTO participants (trip_id, name, email, is_confirmed)
		VALUES (@trip_id, @name, @email, @is_confirmed)`

	for _, p := range participants {
		args := pgx.NamedArgs{
			"trip_id":      p.TripID,
			"name":         p.Name,
			"email":        p.Email,
			"is_confirmed": p.IsConfirmed,
		}
		if _, err := r.db.Exec(ctx, q, args); err != nil {
			return fmt.Errorf("repo.ParticipantRepo.CreateBatch: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a participant by primary key.
func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_confirmed, created_at
		FROM participants
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns a trip's participants in insertion order.
func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT id, trip_id, name, email, is_confirmed, created_at
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: rows: %w", err)
	}

	return participants, nil
}

// Confirm flips the confirmed flag and stores the confirmation details.
func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID, name, email string) (domain.Participant, error) {
	const q = `
		UPDATE participants
		SET name         = @name,
		    email        = @email,
		    is_confirmed = TRUE
		WHERE id = @id
		RETURNING id, trip_id, name, email, is_confirmed, created_at`

	args := pgx.NamedArgs{
		"id":    id,
		"name":  name,
		"email": email,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanParticipant(row)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", err)
	}
	return result, nil
}

// scanParticipant maps a single database row into a domain.Participant.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
	)

	err := s.Scan(&id, &tripID, &p.Name, &p.Email, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Participant{}, domain.ErrNotFound
		}
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)

	return p, nil
}
