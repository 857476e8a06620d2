package chat

import "time"

// ChatRequest is the incoming chat payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the model's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// TurnResponse is one turn in the history listing.
type TurnResponse struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryResponse wraps the history listing.
type HistoryResponse struct {
	ChatHistory []TurnResponse `json:"chatHistory"`
}

func toHistoryResponse(turns []Turn) HistoryResponse {
	out := make([]TurnResponse, 0, len(turns))
	for _, turn := range turns {
		out = append(out, TurnResponse{
			Role:      string(turn.Role),
			Text:      turn.Text,
			CreatedAt: turn.CreatedAt,
		})
	}
	return HistoryResponse{ChatHistory: out}
}
