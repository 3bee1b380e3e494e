package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"gpa-calculator/domain"
)

const (
	defaultNarratorURL   = "https://api.openai.com/v1/chat/completions"
	defaultNarratorModel = "gpt-4o-mini"
	narratorMaxTokens    = 200
)

type NarratorConfig struct {
	APIKey string
	URL    string
	Model  string
}

// Narrator writes a short plain-language summary of the advice. Without an
// API key, or when the call fails, it falls back to a summary built from
// the recommendations themselves.
type Narrator struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewNarrator(cfg NarratorConfig, logger *zap.Logger) *Narrator {
	if cfg.URL == "" {
		cfg.URL = defaultNarratorURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultNarratorModel
	}

	return &Narrator{
		apiKey:  cfg.APIKey,
		apiURL:  cfg.URL,
		model:   cfg.Model,
		enabled: cfg.APIKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (n *Narrator) Summarize(ctx context.Context, result domain.AggregateResult, advice domain.Advice) string {
	if !n.enabled {
		return fallbackSummary(result, advice)
	}

	summary, err := n.callLLM(ctx, summaryPrompt(result, advice))
	if err != nil {
		n.logger.Warn("narrator unavailable, using fallback summary", zap.Error(err))
		return fallbackSummary(result, advice)
	}
	return summary
}

func summaryPrompt(result domain.AggregateResult, advice domain.Advice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current GPA: %s on a 0-5 scale over %d courses (%s credits).\n",
		format2Decimals(result.GPA), result.TotalCourses, formatCredits(result.TotalCredits))

	if advice.Congratulatory {
		b.WriteString(advice.Message + "\n")
	}
	for _, r := range advice.Recommendations {
		b.WriteString("- " + r.Message + "\n")
	}

	b.WriteString("\nWrite 2-3 encouraging, realistic sentences for the student summarising where they stand and what to aim for next. Do not invent numbers.")
	return b.String()
}

func (n *Narrator) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: n.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a concise academic advisor. You explain GPA standing and grade targets plainly, using only the figures you are given.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: narratorMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("narrator API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response from narrator")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// fallbackSummary points at the highest band still reachable, or the
// nearest one when none is.
func fallbackSummary(result domain.AggregateResult, advice domain.Advice) string {
	if advice.Congratulatory {
		return advice.Message
	}
	if result.TotalCourses == 0 && result.TotalCredits == 0 {
		return "Add your courses to see your GPA and what to aim for next."
	}

	standing := fmt.Sprintf("Your GPA is %s over %s credits.", format2Decimals(result.GPA), formatCredits(result.TotalCredits))
	if len(advice.Recommendations) == 0 {
		return standing
	}

	for _, r := range advice.Recommendations {
		if r.Outcome == domain.OutcomeReachable {
			return standing + " " + r.Message
		}
	}
	last := advice.Recommendations[len(advice.Recommendations)-1]
	return standing + " " + last.Message
}

func formatCredits(credits float64) string {
	return strconv.FormatFloat(roundTo2Decimals(credits), 'f', -1, 64)
}
