// Package pages assembles the data for each site page. Sections are fetched
// concurrently; every section the content store cannot supply is filled from the
// fallback defaults, so a page always renders.
package pages

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/defaults"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
)

// ErrNotFound means neither the store nor the defaults know the requested slug
var ErrNotFound = errors.New("page not found")

// Fetcher is the content surface pages read from
type Fetcher interface {
	GetHeroSection(ctx context.Context, locale i18n.Locale) *models.Hero
	GetFeatureCards(ctx context.Context, locale i18n.Locale) []models.FeatureCard
	GetStats(ctx context.Context, locale i18n.Locale) []models.Stat
	GetTestimonials(ctx context.Context, locale i18n.Locale) []models.Testimonial
	GetAllTestimonials(ctx context.Context, locale i18n.Locale) []models.Testimonial
	GetFooter(ctx context.Context, locale i18n.Locale) *models.Footer
	GetHomeProjects(ctx context.Context, locale i18n.Locale) []models.Project
	GetAllProjects(ctx context.Context, locale i18n.Locale) []models.Project
	GetProjectBySlug(ctx context.Context, slug string, locale i18n.Locale) *models.ProjectDetail
	GetAllServices(ctx context.Context, locale i18n.Locale) []models.Service
	GetHomeServices(ctx context.Context, locale i18n.Locale) []models.Service
	GetServiceBySlug(ctx context.Context, slug string, locale i18n.Locale) *models.ServiceDetail
	GetReferences(ctx context.Context, locale i18n.Locale) []models.Reference
	GetContactPage(ctx context.Context, locale i18n.Locale) *models.ContactPage
	GetAllServiceSlugs(ctx context.Context) []string
	GetAllProjectSlugs(ctx context.Context) []string
}

// Source tells where a section's data came from
type Source string

const (
	SourceCMS     Source = "cms"
	SourceDefault Source = "default"
	SourceNone    Source = "none"
)

// Meta is shared by every page
type Meta struct {
	Locale  i18n.Locale       `json:"locale"`
	Sources map[string]Source `json:"sources"`
	Tags    []string          `json:"-"`
}

// CacheTags returns the revalidation tags the page depends on
func (m Meta) CacheTags() []string { return m.Tags }

// FromStore reports whether every section came from the content store
func (m Meta) FromStore() bool {
	for _, s := range m.Sources {
		if s != SourceCMS {
			return false
		}
	}
	return true
}

// Assembler builds page data from fetchers and defaults
type Assembler struct {
	fetcher  Fetcher
	defaults *defaults.Loader
}

// NewAssembler creates an assembler
func NewAssembler(fetcher Fetcher, defaults *defaults.Loader) *Assembler {
	return &Assembler{fetcher: fetcher, defaults: defaults}
}

func newMeta(locale i18n.Locale, tags ...string) Meta {
	return Meta{
		Locale:  locale,
		Sources: make(map[string]Source),
		Tags:    append(tags, SiteTag),
	}
}

// list keeps the fetched list, or substitutes the fallback when the fetch came back nil
func list[T any](m Meta, name string, got []T, fallback func() []T) []T {
	if got != nil {
		m.Sources[name] = SourceCMS
		return got
	}
	if fb := fallback(); len(fb) > 0 {
		m.Sources[name] = SourceDefault
		return fb
	}
	m.Sources[name] = SourceNone
	return []T{}
}

func one[T any](m Meta, name string, got *T, fallback func() *T) *T {
	if got != nil {
		m.Sources[name] = SourceCMS
		return got
	}
	if fb := fallback(); fb != nil {
		m.Sources[name] = SourceDefault
		return fb
	}
	m.Sources[name] = SourceNone
	return nil
}

// fanOut runs every fetch concurrently. Fetchers fail open and never return
// errors, so one slow or failed section cannot cancel the others.
func fanOut(ctx context.Context, fetches ...func(context.Context)) {
	g, gctx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		fetch := fetch
		g.Go(func() error {
			fetch(gctx)
			return nil
		})
	}
	_ = g.Wait()
}
