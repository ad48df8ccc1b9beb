// Package translate fills empty language variants of translatable catalog
// fields from their English source column. It never overwrites existing text.
package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrTranslationFailed reports a provider error, timeout or exhausted budget.
// The target cell stays empty and processing continues.
var ErrTranslationFailed = errors.New("translation failed")

// Provider is the translation capability. targetLang and sourceLang are
// provider language codes ("FR", "EN"); sourceLang may be empty for
// auto-detection where the provider supports it.
type Provider interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (string, error)
}

// Budget gates translation volume. The DeepL free tier enforces daily request
// and monthly character limits; tests swap in an unlimited implementation.
type Budget interface {
	CanTranslate(chars int) bool
	Record(chars int)
}

// Cache avoids re-translating strings seen in earlier runs. Get returns
// ("", false) on miss; Put failures are non-fatal.
type Cache interface {
	Get(ctx context.Context, text, sourceLang, targetLang string) (string, bool)
	Put(ctx context.Context, text, sourceLang, targetLang, translation string) error
}

// Placeholder is a deterministic offline Provider that tags text with the
// target language instead of translating it.
type Placeholder struct{}

func (Placeholder) Translate(_ context.Context, text, targetLang, _ string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return fmt.Sprintf("[%s] %s", strings.ToUpper(targetLang), text), nil
}

// UnlimitedBudget accepts everything. Used with the placeholder provider and
// in tests.
type UnlimitedBudget struct{}

func (UnlimitedBudget) CanTranslate(int) bool { return true }
func (UnlimitedBudget) Record(int)            {}
