package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// FakeChannelDirectory serves a fixed channel list.
type FakeChannelDirectory struct {
	Channels []domain.Channel
	Err      error
}

func (d *FakeChannelDirectory) List(ctx context.Context) ([]domain.Channel, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Channels, nil
}

// PostedMessage records one notification sent through FakeNotifier.
type PostedMessage struct {
	ChannelID string
	Content   string
}

// FakeNotifier records posted messages instead of delivering them. If FailFor
// contains a channel ID, posts to it return Err.
type FakeNotifier struct {
	mu      sync.Mutex
	Posted  []PostedMessage
	FailFor map[string]bool
	Err     error
}

func (n *FakeNotifier) Post(ctx context.Context, channelID, content string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.FailFor[channelID] {
		return n.Err
	}
	n.Posted = append(n.Posted, PostedMessage{ChannelID: channelID, Content: content})
	return nil
}

// Messages returns a copy of the recorded posts.
func (n *FakeNotifier) Messages() []PostedMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]PostedMessage, len(n.Posted))
	copy(out, n.Posted)
	return out
}
