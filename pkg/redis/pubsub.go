package redis

import (
	"context"
	"encoding/json"
	"fmt"
)

// PubSubConfig defines the configuration options for Redis publishing
type PubSubConfig struct {
	// ChannelNamespace prefixes channels as ChannelNamespace::channel
	ChannelNamespace string
}

func NewPubSubConfig() *PubSubConfig {
	return &PubSubConfig{}
}

func (psc *PubSubConfig) WithChannelNamespace(namespace string) *PubSubConfig {
	psc.ChannelNamespace = namespace
	return psc
}

// Publisher handles Redis publishing operations
type Publisher struct {
	client *Client
	config *PubSubConfig
}

func NewPublisher(client *Client, config *PubSubConfig) *Publisher {
	if config == nil {
		config = NewPubSubConfig()
	}
	return &Publisher{client: client, config: config}
}

func (p *Publisher) buildChannelName(channel string) string {
	if p.config.ChannelNamespace != "" {
		return p.config.ChannelNamespace + "::" + channel
	}
	return channel
}

// PublishJSON marshals message and publishes it on channel
func (p *Publisher) PublishJSON(ctx context.Context, channel string, message interface{}) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}
	return p.client.GetClient().Publish(ctx, p.buildChannelName(channel), jsonData).Err()
}
