package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"google.golang.org/genai"

	"github.com/diogo/vertexchat/internal/config"
	apierrors "github.com/diogo/vertexchat/internal/errors"
)

// Gemini is a Generator backed by the Google GenAI SDK. With a project
// configured it uses the Vertex AI backend (project + location scope);
// otherwise it falls back to API-key access. One model id is fixed at
// construction and reused for every call.
type Gemini struct {
	client *genai.Client
	model  string
}

// Option is a function that configures the Gemini provider.
type Option func(*Gemini)

// WithModel overrides the model id from the config.
func WithModel(model string) Option {
	return func(g *Gemini) {
		if model != "" {
			g.model = model
		}
	}
}

// NewGemini creates a Gemini provider from cfg.
func NewGemini(ctx context.Context, cfg config.Config, opts ...Option) (*Gemini, error) {
	cc := &genai.ClientConfig{}
	switch {
	case cfg.Project != "":
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	case cfg.APIKey != "":
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	default:
		return nil, apierrors.ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	g := &Gemini{
		client: client,
		model:  cfg.Model,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.model == "" {
		g.model = config.DefaultConfig().Model
	}

	return g, nil
}

// Model returns the fixed model id.
func (g *Gemini) Model() string {
	return g.model
}

// Generate implements Generator.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", classify(err)
	}

	text := resp.Text()
	if text == "" {
		return "", apierrors.WrapProviderError(apierrors.KindMalformed, apierrors.ErrNoContent)
	}

	return text, nil
}

// Close implements Generator. The SDK client manages its own
// connections, so there is nothing to release.
func (g *Gemini) Close() error {
	return nil
}

// classify maps SDK and transport errors onto the provider error taxonomy.
func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return apierrors.WrapProviderError(apierrors.KindAuth, err)
		case 429:
			return apierrors.WrapProviderError(apierrors.KindQuota, err)
		}
		return apierrors.WrapProviderError(apierrors.KindUnknown, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return apierrors.WrapProviderError(apierrors.KindNetwork, err)
	}

	msg := strings.ToUpper(err.Error())
	switch {
	case strings.Contains(msg, "PERMISSION_DENIED"), strings.Contains(msg, "UNAUTHENTICATED"):
		return apierrors.WrapProviderError(apierrors.KindAuth, err)
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return apierrors.WrapProviderError(apierrors.KindQuota, err)
	}

	return apierrors.WrapProviderError(apierrors.KindUnknown, err)
}
