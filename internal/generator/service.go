package generator

import (
	"context"
	"log"
	"time"
	"viralgenix/internal/database"
	"viralgenix/internal/models"
)

const (
	articleFailedPlaceholder = "The article could not be generated. Check the API permissions and billing of the upstream account."
	scriptFailedPlaceholder  = "The video script could not be generated."
	scriptSkippedPlaceholder = "The video script was not generated because the article generation failed."
)

// ContentStore is the slice of the persistence layer the generation flow
// needs. *database.PostgresStore satisfies it.
type ContentStore interface {
	CreateContent(ctx context.Context, arg database.CreateContentParams) (*models.Content, error)
	LogEvent(ctx context.Context, userID int64, eventType string, payload interface{}) error
}

type GenerateParams struct {
	Topic      string
	Audience   string
	Trend      string
	ToneSample string
}

type Result struct {
	Content  *models.Content
	Degraded bool
}

// Service runs the article-then-script generation flow and persists the
// outcome. An upstream failure never aborts the flow: the affected field
// is replaced by a placeholder and a row is written anyway.
type Service struct {
	store   ContentStore
	gen     Generator
	timeout time.Duration
}

func NewService(store ContentStore, gen Generator, timeout time.Duration) *Service {
	return &Service{
		store:   store,
		gen:     gen,
		timeout: timeout,
	}
}

func (s *Service) GenerateContent(ctx context.Context, ownerID int64, params GenerateParams) (*Result, error) {
	degraded := false

	article, err := s.generateWithTimeout(ctx, BuildArticlePrompt(params.Topic, params.Audience, params.Trend, params.ToneSample))
	var script string
	if err != nil {
		log.Printf("WARN: article generation failed for user %d: %v", ownerID, err)
		article = articleFailedPlaceholder
		script = scriptSkippedPlaceholder
		degraded = true
	} else {
		script, err = s.generateWithTimeout(ctx, BuildScriptPrompt(article))
		if err != nil {
			log.Printf("WARN: script generation failed for user %d: %v", ownerID, err)
			script = scriptFailedPlaceholder
			degraded = true
		}
	}

	content, err := s.store.CreateContent(ctx, database.CreateContentParams{
		OwnerID:  ownerID,
		Topic:    params.Topic,
		Article:  article,
		Script:   script,
		Captions: "",
	})
	if err != nil {
		return nil, err
	}

	if err := s.store.LogEvent(ctx, ownerID, "content_generated", map[string]interface{}{
		"content_id": content.ID,
		"topic":      content.Topic,
		"degraded":   degraded,
	}); err != nil {
		log.Printf("WARN: failed to log content_generated event for user %d: %v", ownerID, err)
	}

	return &Result{Content: content, Degraded: degraded}, nil
}

func (s *Service) generateWithTimeout(ctx context.Context, prompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.gen.Generate(ctx, prompt)
}
