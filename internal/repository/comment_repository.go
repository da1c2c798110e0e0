package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-booking/internal/domain"
)

// CommentRepository encapsulates the append-only comment log.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository instantiates the repository.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (event_id, user_id, body)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		comment.EventID,
		comment.UserID,
		comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Comment, error) {
	const query = `
        SELECT c.id, c.event_id, c.user_id, u.name, c.body, c.created_at
        FROM comments c
        JOIN users u ON u.id = c.user_id
        WHERE c.event_id = $1
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.EventID,
			&comment.UserID,
			&comment.AuthorName,
			&comment.Body,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}
