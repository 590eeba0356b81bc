package web

import (
	"context"

	"github.com/khaledelg/portfolio/internal/content"
)

// Context keys for per-request values
type contextKey string

const translatorKey contextKey = "translator"

// withTranslator stores the request's translator in the context
func withTranslator(ctx context.Context, tr *content.Translator) context.Context {
	return context.WithValue(ctx, translatorKey, tr)
}

// translatorFrom returns the request's translator, or nil when none was set
func translatorFrom(ctx context.Context) *content.Translator {
	tr, _ := ctx.Value(translatorKey).(*content.Translator)
	return tr
}
