package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/queries"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrSlugRequired      = errors.New("slug is required")
)

// Fetch runs the fetcher paired with the named catalog query and returns its
// result, or nil when the fetcher produced nothing.
func (f *Fetcher) Fetch(ctx context.Context, name, slug string, locale i18n.Locale) (any, error) {
	switch name {
	case queries.ProjectBySlug.Name, queries.ServiceBySlug.Name:
		if slug == "" {
			return nil, fmt.Errorf("%s: %w", name, ErrSlugRequired)
		}
	}

	switch name {
	case queries.Hero.Name:
		return ptr(f.GetHeroSection(ctx, locale)), nil
	case queries.FeatureCards.Name:
		return slice(f.GetFeatureCards(ctx, locale)), nil
	case queries.Stats.Name:
		return slice(f.GetStats(ctx, locale)), nil
	case queries.HomeTestimonials.Name:
		return slice(f.GetTestimonials(ctx, locale)), nil
	case queries.AllTestimonials.Name:
		return slice(f.GetAllTestimonials(ctx, locale)), nil
	case queries.Footer.Name:
		return ptr(f.GetFooter(ctx, locale)), nil
	case queries.HomeProjects.Name:
		return slice(f.GetHomeProjects(ctx, locale)), nil
	case queries.AllProjects.Name:
		return slice(f.GetAllProjects(ctx, locale)), nil
	case queries.ProjectBySlug.Name:
		return ptr(f.GetProjectBySlug(ctx, slug, locale)), nil
	case queries.ProjectSlugs.Name:
		return slice(f.GetAllProjectSlugs(ctx)), nil
	case queries.AllServices.Name:
		return slice(f.GetAllServices(ctx, locale)), nil
	case queries.HomeServices.Name:
		return slice(f.GetHomeServices(ctx, locale)), nil
	case queries.ServiceBySlug.Name:
		return ptr(f.GetServiceBySlug(ctx, slug, locale)), nil
	case queries.ServiceSlugs.Name:
		return slice(f.GetAllServiceSlugs(ctx)), nil
	case queries.References.Name:
		return slice(f.GetReferences(ctx, locale)), nil
	case queries.ContactPage.Name:
		return ptr(f.GetContactPage(ctx, locale)), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownCollection)
}

func ptr[T any](v *T) any {
	if v == nil {
		return nil
	}
	return v
}

func slice[T any](v []T) any {
	if len(v) == 0 {
		return nil
	}
	return v
}
