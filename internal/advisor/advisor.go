// Package advisor wraps the Gemini API behind small, purpose-specific text
// suggestion calls used by the pricing and help surfaces.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gestor-maestro/gestor/internal/pricing"
)

var ErrUnavailable = errors.New("advisor returned no result")

type Service struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewService(ctx context.Context, apiKey, modelName string) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Service{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (s *Service) Close() error {
	return s.client.Close()
}

// generate sends a single text prompt and returns the first text part of the
// first candidate.
func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrUnavailable
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", ErrUnavailable
	}

	return strings.TrimSpace(string(text)), nil
}

// ExplainPricing phrases the already-computed quote numbers for the owner.
// It never recomputes them.
func (s *Service) ExplainPricing(ctx context.Context, q pricing.Quote) (string, error) {
	prompt := fmt.Sprintf(
		"Você é um consultor financeiro de pequenos negócios. Explique em um parágrafo curto, "+
			"em português simples, o seguinte cálculo de preço do produto %q: "+
			"custo unitário R$ %.2f, margem desejada %.1f%%, preço sugerido R$ %.2f, "+
			"preço atual R$ %.2f (margem atual %.1f%%). Não refaça os cálculos.",
		q.ProductName, q.UnitCost, q.TargetMargin, q.SuggestedPrice, q.CurrentPrice, q.CurrentMargin,
	)

	return s.generate(ctx, prompt)
}

// SuggestContent produces short social-media content ideas for the business.
func (s *Service) SuggestContent(ctx context.Context, business, topic string) (string, error) {
	prompt := fmt.Sprintf(
		"Sugira três ideias curtas de conteúdo de divulgação para o negócio %q sobre o tema %q. "+
			"Responda em português, uma ideia por linha.",
		business, topic,
	)

	return s.generate(ctx, prompt)
}

// GuideAnswer answers a how-do-I question about using the application.
func (s *Service) GuideAnswer(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf(
		"Você é o guia de ajuda do Gestor Maestro, um aplicativo de gestão para pequenos negócios "+
			"com módulos operacional, financeiro e de diagnóstico. Responda de forma breve e prática, "+
			"em português: %s",
		question,
	)

	return s.generate(ctx, prompt)
}
