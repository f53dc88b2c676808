package services

import "context"

// AdviceSvcFacade generates narrative financial advice from a summarized
// ledger. Collaborator failure degrades to a fixed user-facing message, never
// an error.
type AdviceSvcFacade interface {
	GenerateAdvice(ctx context.Context, userID string) (string, error)
}

// AdviceGenerator is the generative-language collaborator behind the advice
// service.
type AdviceGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
