package database

import (
	"context"
	"errors"
	"viralgenix/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
)

type CreateInsightParams struct {
	OwnerID  int64
	Text     string
	Category string
}

func (q *Queries) CreateInsight(ctx context.Context, arg CreateInsightParams) (*models.Insight, error) {
	query := `
		INSERT INTO insights (owner_id, text, category)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, text, category, created_at
	`
	var insight models.Insight
	err := q.db.QueryRow(ctx, query, arg.OwnerID, arg.Text, arg.Category).Scan(
		&insight.ID,
		&insight.OwnerID,
		&insight.Text,
		&insight.Category,
		&insight.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrUnknownOwner
		}
		return nil, err
	}

	return &insight, nil
}

func (q *Queries) ListInsightsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]models.Insight, error) {
	query := `
		SELECT id, owner_id, text, category, created_at
		FROM insights
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []models.Insight
	for rows.Next() {
		var insight models.Insight
		if err := rows.Scan(
			&insight.ID,
			&insight.OwnerID,
			&insight.Text,
			&insight.Category,
			&insight.CreatedAt,
		); err != nil {
			return nil, err
		}
		insights = append(insights, insight)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if insights == nil {
		return []models.Insight{}, nil
	}

	return insights, nil
}
