// Package advisor is the boundary to the external cheese-sommelier
// service. Advice is best-effort: failures degrade to a friendly
// fallback message and never surface as errors.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// User-facing fallback messages, in the shop's language.
const (
	UnavailableMessage = "Desculpe, o Sommelier não está disponível no momento (API Key ausente)."
	EmptyAnswerMessage = "Não consegui formular uma resposta sobre queijos agora."
	ApologyMessage     = "Tive um problema ao consultar meu livro de receitas. Tente novamente em breve."
)

const systemInstruction = "Você é um especialista em queijos (Sommelier de Queijos) amigável e sofisticado. " +
	"Seu foco principal é Queijo Mussarela. Dê dicas de receitas, vinhos que harmonizam, " +
	"como conservar e usos culinários. Responda em português do Brasil. Seja conciso e útil."

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Config holds sommelier client settings
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // overridable for tests
	Timeout time.Duration
}

// Sommelier answers cheese questions through a generative-language API
type Sommelier struct {
	cfg    Config
	client *http.Client
	logger *zap.Logger
}

// NewSommelier creates a new sommelier client
func NewSommelier(cfg Config, logger *zap.Logger) *Sommelier {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Sommelier{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type generateRequest struct {
	SystemInstruction content   `json:"system_instruction"`
	Contents          []content `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends the question to the sommelier and returns its answer.
// Any failure returns a fallback message instead of an error.
func (s *Sommelier) Ask(ctx context.Context, question string) string {
	if s.cfg.APIKey == "" {
		return UnavailableMessage
	}

	reqBody := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: question}}}},
	}
	reqBody.GenerationConfig.Temperature = 0.7

	payload, err := json.Marshal(reqBody)
	if err != nil {
		s.logger.Error("Failed to encode sommelier request", zap.Error(err))
		return ApologyMessage
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", s.cfg.BaseURL, s.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		s.logger.Error("Failed to build sommelier request", zap.Error(err))
		return ApologyMessage
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("Sommelier request failed", zap.Error(err))
		return ApologyMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("Sommelier returned non-OK status", zap.Int("status", resp.StatusCode))
		return ApologyMessage
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		s.logger.Warn("Failed to decode sommelier response", zap.Error(err))
		return ApologyMessage
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return EmptyAnswerMessage
	}
	answer := parsed.Candidates[0].Content.Parts[0].Text
	if answer == "" {
		return EmptyAnswerMessage
	}
	return answer
}
