package database

import (
	"context"
	"errors"
	"viralgenix/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrUnknownOwner = errors.New("owner account does not exist")

type CreateContentParams struct {
	OwnerID  int64
	Topic    string
	Article  string
	Script   string
	Captions string
}

func (q *Queries) CreateContent(ctx context.Context, arg CreateContentParams) (*models.Content, error) {
	query := `
		INSERT INTO contents (owner_id, topic, article, script, captions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, owner_id, topic, article, script, captions, created_at
	`
	row := q.db.QueryRow(ctx, query,
		arg.OwnerID,
		arg.Topic,
		arg.Article,
		arg.Script,
		arg.Captions,
	)

	var content models.Content
	err := row.Scan(
		&content.ID,
		&content.OwnerID,
		&content.Topic,
		&content.Article,
		&content.Script,
		&content.Captions,
		&content.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrUnknownOwner
		}
		return nil, err
	}

	return &content, nil
}

func (q *Queries) ListContentsByOwner(ctx context.Context, ownerID int64, limit int, offset int) ([]models.ContentSummary, error) {
	query := `
		SELECT id, topic, created_at
		FROM contents
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := q.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.ContentSummary
	for rows.Next() {
		var summary models.ContentSummary
		err := rows.Scan(
			&summary.ID,
			&summary.Topic,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if summaries == nil {
		return []models.ContentSummary{}, nil
	}

	return summaries, nil
}

func (q *Queries) GetContentByID(ctx context.Context, id int64, ownerID int64) (*models.Content, error) {
	query := `
		SELECT id, owner_id, topic, article, script, captions, created_at
		FROM contents
		WHERE id = $1 AND owner_id = $2
	`
	var content models.Content

	err := q.db.QueryRow(ctx, query, id, ownerID).Scan(
		&content.ID,
		&content.OwnerID,
		&content.Topic,
		&content.Article,
		&content.Script,
		&content.Captions,
		&content.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &content, nil
}
