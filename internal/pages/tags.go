package pages

import "github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"

// SiteTag is carried by every page; revalidating it flushes the whole site
const SiteTag = "site"

func localeTag(base string, locale i18n.Locale) string {
	return base + "-" + string(locale)
}

// ServiceTag and ProjectTag address a single detail page
func ServiceTag(slug string) string { return "service:" + slug }

func ProjectTag(slug string) string { return "project:" + slug }
