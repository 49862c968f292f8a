package chat

import (
	"context"
	"math/rand"
	"slices"
	"testing"

	"github.com/DCal661/league-of-misfits/model"
)

func TestCannedReply(t *testing.T) {
	c := NewCannedWithSource(rand.NewSource(1))

	messages := []model.ChatMessage{
		{Role: model.ChatRoleUser, Content: "rate my lineup"},
	}

	for i := 0; i < 20; i++ {
		reply, err := c.Reply(context.Background(), messages)
		if err != nil {
			t.Fatalf("error should have been nil, was: %v", err)
		}
		if !slices.Contains(cannedReplies, reply) {
			t.Fatalf("reply is not one of the canned lines: %q", reply)
		}
	}
}

func TestCannedReply_deterministicWithSameSource(t *testing.T) {
	a := NewCannedWithSource(rand.NewSource(42))
	b := NewCannedWithSource(rand.NewSource(42))

	for i := 0; i < 10; i++ {
		ra, _ := a.Reply(context.Background(), nil)
		rb, _ := b.Reply(context.Background(), nil)
		if ra != rb {
			t.Fatalf("same seed diverged at reply %d: %q vs %q", i, ra, rb)
		}
	}
}
