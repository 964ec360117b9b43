package content

import (
	"context"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/queries"
)

func fetchList[D Document, V any](ctx context.Context, f *Fetcher, q queries.Query, locale i18n.Locale, resolve func(D, i18n.Locale) V) []V {
	locale = i18n.Normalize(locale)
	docs, ok := run(ctx, f, fetchSpec{query: q, locale: locale}, decodeList[D](q.Collection))
	if !ok {
		return nil
	}
	return resolveAll(docs, locale, resolve)
}

func fetchOne[D, V any](ctx context.Context, f *Fetcher, spec fetchSpec, resolve func(D, i18n.Locale) V) *V {
	spec.locale = i18n.Normalize(spec.locale)
	doc, ok := run(ctx, f, spec, decodeOne[D](spec.query.Collection))
	if !ok {
		return nil
	}
	v := resolve(doc, spec.locale)
	return &v
}

func (f *Fetcher) fetchSlugs(ctx context.Context, q queries.Query) []string {
	slugs, ok := run(ctx, f, fetchSpec{query: q, locale: i18n.DefaultLocale}, decodeSlugs)
	if !ok {
		return []string{}
	}
	return slugs
}

// GetHeroSection returns the homepage banner
func (f *Fetcher) GetHeroSection(ctx context.Context, locale i18n.Locale) *models.Hero {
	return fetchOne(ctx, f, fetchSpec{query: queries.Hero, locale: locale}, ResolveHero)
}

// GetFeatureCards returns the active highlight tiles
func (f *Fetcher) GetFeatureCards(ctx context.Context, locale i18n.Locale) []models.FeatureCard {
	return fetchList(ctx, f, queries.FeatureCards, locale, ResolveFeatureCard)
}

// GetStats returns the active homepage counters
func (f *Fetcher) GetStats(ctx context.Context, locale i18n.Locale) []models.Stat {
	return fetchList(ctx, f, queries.Stats, locale, ResolveStat)
}

// GetTestimonials returns the active reviews flagged for the homepage
func (f *Fetcher) GetTestimonials(ctx context.Context, locale i18n.Locale) []models.Testimonial {
	return fetchList(ctx, f, queries.HomeTestimonials, locale, ResolveTestimonial)
}

// GetAllTestimonials returns every active review
func (f *Fetcher) GetAllTestimonials(ctx context.Context, locale i18n.Locale) []models.Testimonial {
	return fetchList(ctx, f, queries.AllTestimonials, locale, ResolveTestimonial)
}

// GetFooter returns the site footer
func (f *Fetcher) GetFooter(ctx context.Context, locale i18n.Locale) *models.Footer {
	return fetchOne(ctx, f, fetchSpec{query: queries.Footer, locale: locale}, ResolveFooter)
}

// GetHomeProjects returns at most six active projects flagged for the homepage
func (f *Fetcher) GetHomeProjects(ctx context.Context, locale i18n.Locale) []models.Project {
	return fetchList(ctx, f, queries.HomeProjects, locale, ResolveProject)
}

func (f *Fetcher) GetAllProjects(ctx context.Context, locale i18n.Locale) []models.Project {
	return fetchList(ctx, f, queries.AllProjects, locale, ResolveProject)
}

// GetProjectBySlug returns one active project, or nil when the slug is unknown
func (f *Fetcher) GetProjectBySlug(ctx context.Context, slug string, locale i18n.Locale) *models.ProjectDetail {
	spec := fetchSpec{query: queries.ProjectBySlug, params: map[string]any{"slug": slug}, locale: locale}
	return fetchOne(ctx, f, spec, ResolveProjectDetail)
}

// GetAllProjectSlugs lists slugs for static page generation. The result is never nil.
func (f *Fetcher) GetAllProjectSlugs(ctx context.Context) []string {
	return f.fetchSlugs(ctx, queries.ProjectSlugs)
}

func (f *Fetcher) GetAllServices(ctx context.Context, locale i18n.Locale) []models.Service {
	return fetchList(ctx, f, queries.AllServices, locale, ResolveService)
}

func (f *Fetcher) GetHomeServices(ctx context.Context, locale i18n.Locale) []models.Service {
	return fetchList(ctx, f, queries.HomeServices, locale, ResolveService)
}

// GetServiceBySlug returns one active service, or nil when the slug is unknown
func (f *Fetcher) GetServiceBySlug(ctx context.Context, slug string, locale i18n.Locale) *models.ServiceDetail {
	spec := fetchSpec{query: queries.ServiceBySlug, params: map[string]any{"slug": slug}, locale: locale}
	return fetchOne(ctx, f, spec, ResolveServiceDetail)
}

// GetAllServiceSlugs lists slugs for static page generation. The result is never nil.
func (f *Fetcher) GetAllServiceSlugs(ctx context.Context) []string {
	return f.fetchSlugs(ctx, queries.ServiceSlugs)
}

// GetReferences returns the client references marked to show
func (f *Fetcher) GetReferences(ctx context.Context, locale i18n.Locale) []models.Reference {
	return fetchList(ctx, f, queries.References, locale, ResolveReference)
}

// GetContactPage reads the contact settings through the privileged store so
// unpublished edits show up immediately
func (f *Fetcher) GetContactPage(ctx context.Context, locale i18n.Locale) *models.ContactPage {
	return fetchOne(ctx, f, fetchSpec{query: queries.ContactPage, locale: locale, privileged: true}, ResolveContactPage)
}
