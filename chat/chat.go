package chat

import (
	"context"

	"github.com/DCal661/league-of-misfits/model"
)

// Provider produces a reply for a chat conversation. The dashboard
// treats the two implementations (the Anthropic API and the canned
// generator) as interchangeable.
type Provider interface {
	Reply(ctx context.Context, messages []model.ChatMessage) (string, error)
}
