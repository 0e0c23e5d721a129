package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/doantruongnsg/sobanhang/internal/models"
)

// Fallback order when the configured model is unavailable.
var modelIDs = []string{
	"gemini-2.0-flash-001",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

type promptProduct struct {
	SKU   string `json:"sku"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Min   int    `json:"min,omitempty"`
}

// BuildSuggestionPrompt prepares the restocking-advice prompt from the
// current document: products at or under their minimum stock, and products
// with stock that no order has ever touched.
func BuildSuggestionPrompt(products []models.Product, orders []models.Order) string {
	var lowStock, slowMoving []promptProduct

	sold := map[string]bool{}
	for _, o := range orders {
		for _, item := range o.Items {
			sold[item.SKU] = true
		}
	}

	for _, p := range products {
		if p.Stock <= p.MinStock {
			lowStock = append(lowStock, promptProduct{SKU: p.SKU, Name: p.Name, Stock: p.Stock, Min: p.MinStock})
		}
		if p.Stock > 0 && !sold[p.SKU] {
			slowMoving = append(slowMoving, promptProduct{SKU: p.SKU, Name: p.Name, Stock: p.Stock})
		}
	}

	lowJSON, _ := json.Marshal(lowStock)
	slowJSON, _ := json.Marshal(slowMoving)

	return fmt.Sprintf(`You are a retail inventory and sales consultant. Based on the data below, give 3-5 concrete, actionable suggestions to improve the business. Answer in short, concise Markdown.

Low-stock products: %s
Slow-moving products: %s

Cover:
1. Restocking the SKUs that are running out.
2. Clearance or promotion ideas for the slow movers.
3. Margin optimization.`, lowJSON, slowJSON)
}

// Suggest sends the prompt to Gemini, walking the fallback model list when
// the preferred model fails. The settlement core never depends on this path.
func Suggest(ctx context.Context, prompt, apiKey, preferredModel string) (string, error) {
	if apiKey == "" {
		return "", errors.New("no Gemini API key configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	order := make([]string, 0, len(modelIDs)+1)
	if preferredModel != "" {
		order = append(order, preferredModel)
	}
	for _, id := range modelIDs {
		if id != preferredModel {
			order = append(order, id)
		}
	}

	var lastErr error
	for _, id := range order {
		model := client.GenerativeModel(id)
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}
		if text := firstText(resp); text != "" {
			return text, nil
		}
	}
	if lastErr == nil {
		lastErr = errors.New("model returned no text")
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return string(txt)
			}
		}
	}
	return ""
}
