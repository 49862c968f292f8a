package chat

import (
	"context"
	"math/rand"
	"time"

	"github.com/DCal661/league-of-misfits/model"
)

var cannedReplies = []string{
	"Bold take. The standings disagree with you.",
	"Have you considered starting players who score points?",
	"That trade offer is an insult and you know it.",
	"The waiver wire called, it wants its busts back.",
	"Scoreboard says otherwise, champ.",
	"I've seen better lineups generated at random. Mine, for instance.",
	"Super Weenie of the week is not a title you campaign for.",
	"Your bench outscored your starters again. Impressive, honestly.",
}

// Canned is the no-network chat strategy: it replies with a random
// one-liner. The random source is injected so tests are deterministic.
type Canned struct {
	rand *rand.Rand
}

func NewCanned() *Canned {
	return NewCannedWithSource(rand.NewSource(time.Now().UnixNano()))
}

func NewCannedWithSource(src rand.Source) *Canned {
	return &Canned{rand: rand.New(src)}
}

func (c *Canned) Reply(ctx context.Context, messages []model.ChatMessage) (string, error) {
	return cannedReplies[c.rand.Intn(len(cannedReplies))], nil
}
