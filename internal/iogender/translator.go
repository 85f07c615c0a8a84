package iogender

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/namestat/pkg/config"
	"github.com/gnames/namestat/pkg/gender"
	"golang.org/x/time/rate"
)

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

type translator struct {
	remote
	source string
	target string
	enc    gnfmt.GNjson
}

// NewTranslator creates a client of a LibreTranslate-compatible service.
// Calls wait for lim, a nil lim gives the client its own limiter.
func NewTranslator(lk config.LookupConfig, lim *rate.Limiter) gender.Translator {
	res := translator{
		remote: newRemote(lk.TranslateURL, lk, lim),
		source: lk.SourceLang,
		target: lk.TargetLang,
	}
	return &res
}

// Translate returns a translation of text from the source to the target
// language.
func (t *translator) Translate(ctx context.Context, text string) (string, error) {
	payload, err := t.enc.Encode(translateRequest{
		Q:      text,
		Source: t.source,
		Target: t.target,
		Format: "text",
		APIKey: t.apiKey,
	})
	if err != nil {
		return "", TranslateError(text, err)
	}

	body, err := t.do(ctx, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(
			ctx, http.MethodPost, t.url, bytes.NewReader(payload),
		)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return "", TranslateError(text, err)
	}

	var resp translateResponse
	if err = t.enc.Decode(body, &resp); err != nil {
		return "", TranslateError(text, err)
	}
	if resp.Error != "" {
		return "", TranslateError(text, ServiceError(resp.Error))
	}

	res := strings.TrimSpace(resp.TranslatedText)
	if res == "" {
		return "", TranslateError(text, ErrEmptyAnswer)
	}
	return res, nil
}
