package api

import (
	"context"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
)

type contextKey string

const localeContextKey contextKey = "locale"

// LocaleFromContext extracts the request locale, falling back to the fetcher default
func LocaleFromContext(ctx context.Context) i18n.Locale {
	locale, ok := ctx.Value(localeContextKey).(i18n.Locale)
	if !ok {
		return i18n.DefaultLocale
	}
	return locale
}

// ContextWithLocale adds the request locale to context
func ContextWithLocale(ctx context.Context, locale i18n.Locale) context.Context {
	return context.WithValue(ctx, localeContextKey, locale)
}
