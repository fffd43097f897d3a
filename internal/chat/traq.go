// Package chat integrates with the traQ messaging service. It resolves the
// channel tree into flat slash-separated paths and posts reminder messages.
package chat

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/motoki317/sc"
	"github.com/traPtitech/go-traq"
)

// Client wraps a traQ API client. The channel list is cached because the
// full tree is fetched on every lookup and changes rarely.
type Client struct {
	api          *traq.APIClient
	channelCache *sc.Cache[struct{}, []domain.Channel]
}

// New builds a Client authenticated with the given bot token.
func New(baseURL, token string, freshFor, staleFor time.Duration) *Client {
	conf := traq.NewConfiguration()
	if baseURL != "" {
		conf.Servers = traq.ServerConfigurations{{URL: baseURL}}
	}
	conf.DefaultHeader = map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", token),
	}
	c := &Client{api: traq.NewAPIClient(conf)}
	c.channelCache = sc.NewMust(c.fetchChannels, freshFor, staleFor)
	return c
}

// List returns every public, non-archived channel as a full path like
// "event/exhibition/2026". Served from cache.
func (c *Client) List(ctx context.Context) ([]domain.Channel, error) {
	return c.channelCache.Get(ctx, struct{}{})
}

// Post sends a message to a channel with embeds rendered.
func (c *Client) Post(ctx context.Context, channelID, content string) error {
	_, _, err := c.api.MessageAPI.
		PostMessage(ctx, channelID).
		PostMessageRequest(traq.PostMessageRequest{
			Content: content,
			Embed:   newBool(true),
		}).
		Execute()
	if err != nil {
		return fmt.Errorf("posting to channel %s: %w", channelID, err)
	}
	return nil
}

func (c *Client) fetchChannels(ctx context.Context, _ struct{}) ([]domain.Channel, error) {
	all, _, err := c.api.ChannelAPI.GetChannels(ctx).Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching channel list: %w", err)
	}
	channels := slices.DeleteFunc(all.Public, func(ch traq.Channel) bool { return ch.Archived })

	byID := make(map[string]traq.Channel, len(channels))
	for _, ch := range channels {
		byID[ch.Id] = ch
	}

	var roots []traq.Channel
	for _, ch := range channels {
		if ch.ParentId.Get() == nil {
			roots = append(roots, ch)
		}
	}

	res := make([]domain.Channel, 0, len(channels))
	for _, root := range roots {
		res = append(res, domain.Channel{ID: root.Id, Name: root.Name})
		appendChildren(root, root.Name, byID, &res)
	}
	return res, nil
}

func appendChildren(parent traq.Channel, path string, byID map[string]traq.Channel, res *[]domain.Channel) {
	for _, cid := range parent.Children {
		child, ok := byID[cid]
		if !ok {
			continue
		}
		childPath := fmt.Sprintf("%s/%s", path, child.Name)
		*res = append(*res, domain.Channel{ID: child.Id, Name: childPath})
		appendChildren(child, childPath, byID, res)
	}
}

func newBool(b bool) *bool {
	return &b
}
