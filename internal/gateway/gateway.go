// Package gateway sends user text to the remote language model and returns
// the assistant's reply.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Apology is returned in place of a reply whenever generation fails.
const Apology = "عذراً، حدث خطأ في معالجة طلبك. هل يمكنك المحاولة مرة أخرى؟"

// Persona is the fixed style preamble sent ahead of every user message.
const Persona = `You are مُدرك (Moderk), an empathetic AI assistant that helps people with memory issues.
You should:
- Always respond in Arabic
- Show empathy and understanding
- Help users remember important things
- Provide clear and simple instructions
- Be patient and supportive
- Use formal Arabic (فصحى) but keep it simple and understandable
- Focus on memory-related assistance
- Help with daily activities and routines
- Provide emotional support when needed`

const (
	DefaultModel     = "claude-3-5-haiku-latest"
	DefaultMaxTokens = 1024
)

var (
	errNoCredential = errors.New("no API key configured")
	errEmptyReply   = errors.New("empty reply")
)

// Config holds the remote model settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int64
}

// Gateway generates assistant replies. It never returns an error: failures
// are logged and answered with Apology.
type Gateway struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	hasKey    bool
	log       *slog.Logger
}

// Option configures a Gateway.
type Option func(*gatewayOptions)

type gatewayOptions struct {
	log        *slog.Logger
	clientOpts []option.RequestOption
}

// WithLogger sets the logger for failed generations.
func WithLogger(l *slog.Logger) Option {
	return func(o *gatewayOptions) {
		o.log = l
	}
}

// WithRequestOptions appends anthropic client options, e.g. a custom HTTP client.
func WithRequestOptions(opts ...option.RequestOption) Option {
	return func(o *gatewayOptions) {
		o.clientOpts = append(o.clientOpts, opts...)
	}
}

// New returns a Gateway. Requests are made once, without retries.
func New(cfg Config, opts ...Option) *Gateway {
	o := gatewayOptions{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.BaseURL))
	}
	clientOpts = append(clientOpts, o.clientOpts...)

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Gateway{
		client:    anthropic.NewClient(clientOpts...),
		model:     model,
		maxTokens: maxTokens,
		hasKey:    cfg.APIKey != "",
		log:       o.log,
	}
}

// GenerateReply returns the model's reply to userText, or Apology on any failure.
func (g *Gateway) GenerateReply(ctx context.Context, userText string) string {
	reply, err := g.generate(ctx, userText)
	if err != nil {
		g.log.Error("generate reply failed", slog.String("model", g.model), slog.String("error", err.Error()))
		return Apology
	}
	return reply
}

func (g *Gateway) generate(ctx context.Context, userText string) (string, error) {
	if !g.hasKey {
		return "", errNoCredential
	}

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: Persona},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userText)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("messages api: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	reply := strings.TrimSpace(b.String())
	if reply == "" {
		return "", errEmptyReply
	}
	return reply, nil
}
