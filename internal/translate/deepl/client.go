// Package deepl is the DeepL HTTP adapter: the translation provider plus the
// free-tier usage tracker.
package deepl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const translatePath = "/v2/translate"

// Client calls the DeepL translate endpoint. It implements
// translate.Provider.
type Client struct {
	apiKey string
	http   *resty.Client
}

// New builds a Client for the given endpoint. baseURL defaults to the free
// API host when empty.
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api-free.deepl.com"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
	return &Client{apiKey: apiKey, http: c}
}

type translateResponse struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// Translate sends one text to DeepL. sourceLang may be empty to let DeepL
// detect the source language.
func (c *Client) Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("deepl api key not configured")
	}
	form := map[string]string{
		"auth_key":    c.apiKey,
		"text":        text,
		"target_lang": strings.ToUpper(targetLang),
	}
	if sourceLang != "" {
		form["source_lang"] = strings.ToUpper(sourceLang)
	}

	var out translateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&out).
		Post(translatePath)
	if err != nil {
		return "", fmt.Errorf("deepl request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("deepl translate: %s; body: %s", resp.Status(), resp.String())
	}
	if len(out.Translations) == 0 {
		return "", fmt.Errorf("deepl returned no translations")
	}
	return out.Translations[0].Text, nil
}
