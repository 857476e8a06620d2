package chat

import (
	"context"
	"fmt"
	"time"

	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
	"docchat-backend/internal/shared/metrics"
	"docchat-backend/internal/shared/telemetry"
)

// PromptBuilder assembles the model prompt from the document text, the prior
// turns and the new message. It is a seam: swapping in a bounded-context
// strategy later must not touch the orchestration below.
type PromptBuilder func(documentText string, turns []llm.PromptTurn, message string) string

// Service orchestrates one chat exchange: load context, build the prompt,
// call the model, persist the turn pair.
type Service struct {
	Docs    documents.Repo
	Turns   Repo
	LLM     llm.Client
	Builder PromptBuilder
}

// Chat runs one exchange for (userID, documentID, message) and returns the
// model's reply. It is terminal on first failure, and nothing is persisted
// unless the model call completed. The two appends are issued in order; if
// the first fails the second is skipped, and if the second fails the log is
// left with a user turn awaiting a reply that never arrived.
func (s *Service) Chat(ctx context.Context, userID, documentID, message string) (string, error) {
	if userID == "" || documentID == "" || message == "" {
		return "", ErrMissingData
	}

	metrics.IncChatRequest()
	start := time.Now()

	reply, err := s.chat(ctx, userID, documentID, message)
	metrics.ObserveChatDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncChatFailed()
		return "", err
	}

	telemetry.Info("chat.complete", map[string]any{
		"user_id":     userID,
		"document_id": documentID,
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
	})
	return reply, nil
}

func (s *Service) chat(ctx context.Context, userID, documentID, message string) (string, error) {
	doc, err := s.Docs.GetByID(ctx, userID, documentID)
	if err != nil {
		return "", err
	}
	if doc.Text == "" {
		return "", documents.ErrEmptyDocument
	}

	history, err := s.Turns.ListByDocument(ctx, userID, documentID)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	builder := s.Builder
	if builder == nil {
		builder = llm.BuildPrompt
	}
	prompt := builder(doc.Text, toPromptTurns(history), message)

	reply, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := s.Turns.Append(ctx, userID, documentID, RoleUser, message); err != nil {
		return "", fmt.Errorf("%w: user turn: %v", ErrPersistFailed, err)
	}
	if err := s.Turns.Append(ctx, userID, documentID, RoleModel, reply); err != nil {
		return "", fmt.Errorf("%w: model turn: %v", ErrPersistFailed, err)
	}

	return reply, nil
}

// History returns the document's conversation, oldest first. The document
// must exist for the user.
func (s *Service) History(ctx context.Context, userID, documentID string) ([]Turn, error) {
	if userID == "" || documentID == "" {
		return nil, ErrMissingData
	}
	if _, err := s.Docs.GetByID(ctx, userID, documentID); err != nil {
		return nil, err
	}
	return s.Turns.ListByDocument(ctx, userID, documentID)
}

func toPromptTurns(turns []Turn) []llm.PromptTurn {
	out := make([]llm.PromptTurn, 0, len(turns))
	for _, turn := range turns {
		out = append(out, llm.PromptTurn{
			Role: string(turn.Role),
			Text: turn.Text,
		})
	}
	return out
}
