package pages

import (
	"context"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
)

// HomePage is the landing page
type HomePage struct {
	Meta
	Hero         *models.Hero         `json:"hero"`
	FeatureCards []models.FeatureCard `json:"featureCards"`
	Stats        []models.Stat        `json:"stats"`
	Services     []models.Service     `json:"services"`
	Projects     []models.Project     `json:"projects"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

func (a *Assembler) Home(ctx context.Context, locale i18n.Locale) *HomePage {
	p := &HomePage{Meta: newMeta(locale, "home", localeTag("home", locale))}

	var (
		hero         *models.Hero
		cards        []models.FeatureCard
		stats        []models.Stat
		services     []models.Service
		projects     []models.Project
		testimonials []models.Testimonial
	)
	fanOut(ctx,
		func(ctx context.Context) { hero = a.fetcher.GetHeroSection(ctx, locale) },
		func(ctx context.Context) { cards = a.fetcher.GetFeatureCards(ctx, locale) },
		func(ctx context.Context) { stats = a.fetcher.GetStats(ctx, locale) },
		func(ctx context.Context) { services = a.fetcher.GetHomeServices(ctx, locale) },
		func(ctx context.Context) { projects = a.fetcher.GetHomeProjects(ctx, locale) },
		func(ctx context.Context) { testimonials = a.fetcher.GetTestimonials(ctx, locale) },
	)

	p.Hero = one(p.Meta, "hero", hero, func() *models.Hero { return a.defaults.Hero(locale) })
	p.FeatureCards = list(p.Meta, "featureCards", cards, func() []models.FeatureCard { return a.defaults.FeatureCards(locale) })
	p.Stats = list(p.Meta, "stats", stats, func() []models.Stat { return a.defaults.Stats(locale) })
	p.Services = list(p.Meta, "services", services, func() []models.Service { return a.defaults.Services(locale, true) })
	p.Projects = list(p.Meta, "projects", projects, func() []models.Project { return a.defaults.Projects(locale, true) })
	p.Testimonials = list(p.Meta, "testimonials", testimonials, func() []models.Testimonial { return a.defaults.Testimonials(locale, true) })
	return p
}

// ServicesPage lists every service
type ServicesPage struct {
	Meta
	Services []models.Service `json:"services"`
}

func (a *Assembler) Services(ctx context.Context, locale i18n.Locale) *ServicesPage {
	p := &ServicesPage{Meta: newMeta(locale, "services", localeTag("services", locale))}
	got := a.fetcher.GetAllServices(ctx, locale)
	p.Services = list(p.Meta, "services", got, func() []models.Service { return a.defaults.Services(locale, false) })
	return p
}

// ServiceDetailPage shows one service next to the others
type ServiceDetailPage struct {
	Meta
	Service *models.ServiceDetail `json:"service"`
	Others  []models.Service      `json:"others"`
}

// ServiceDetail fails with ErrNotFound when neither source has the slug
func (a *Assembler) ServiceDetail(ctx context.Context, slug string, locale i18n.Locale) (*ServiceDetailPage, error) {
	p := &ServiceDetailPage{Meta: newMeta(locale, "services", ServiceTag(slug))}

	var (
		detail *models.ServiceDetail
		all    []models.Service
	)
	fanOut(ctx,
		func(ctx context.Context) { detail = a.fetcher.GetServiceBySlug(ctx, slug, locale) },
		func(ctx context.Context) { all = a.fetcher.GetAllServices(ctx, locale) },
	)

	p.Service = one(p.Meta, "service", detail, func() *models.ServiceDetail { return a.defaults.ServiceBySlug(slug, locale) })
	if p.Service == nil {
		return nil, ErrNotFound
	}

	all = list(p.Meta, "others", all, func() []models.Service { return a.defaults.Services(locale, false) })
	p.Others = make([]models.Service, 0, len(all))
	for _, s := range all {
		if s.Slug != slug {
			p.Others = append(p.Others, s)
		}
	}
	return p, nil
}

// ProjectsPage lists the portfolio
type ProjectsPage struct {
	Meta
	Projects []models.Project `json:"projects"`
}

func (a *Assembler) Projects(ctx context.Context, locale i18n.Locale) *ProjectsPage {
	p := &ProjectsPage{Meta: newMeta(locale, "projects", localeTag("projects", locale))}
	got := a.fetcher.GetAllProjects(ctx, locale)
	p.Projects = list(p.Meta, "projects", got, func() []models.Project { return a.defaults.Projects(locale, false) })
	return p
}

// ProjectDetailPage shows one project
type ProjectDetailPage struct {
	Meta
	Project *models.ProjectDetail `json:"project"`
}

func (a *Assembler) ProjectDetail(ctx context.Context, slug string, locale i18n.Locale) (*ProjectDetailPage, error) {
	p := &ProjectDetailPage{Meta: newMeta(locale, "projects", ProjectTag(slug))}
	got := a.fetcher.GetProjectBySlug(ctx, slug, locale)
	p.Project = one(p.Meta, "project", got, func() *models.ProjectDetail { return a.defaults.ProjectBySlug(slug, locale) })
	if p.Project == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// ContactPage carries the contact settings and the services offered in the form
type ContactPage struct {
	Meta
	Contact  *models.ContactPage `json:"contact"`
	Services []models.Service    `json:"services"`
}

func (a *Assembler) Contact(ctx context.Context, locale i18n.Locale) *ContactPage {
	p := &ContactPage{Meta: newMeta(locale, "contact")}

	var (
		settings *models.ContactPage
		services []models.Service
	)
	fanOut(ctx,
		func(ctx context.Context) { settings = a.fetcher.GetContactPage(ctx, locale) },
		func(ctx context.Context) { services = a.fetcher.GetAllServices(ctx, locale) },
	)

	p.Contact = one(p.Meta, "contact", settings, func() *models.ContactPage { return a.defaults.ContactPage(locale) })
	p.Services = list(p.Meta, "services", services, func() []models.Service { return a.defaults.Services(locale, false) })
	return p
}

// AboutPage shows the team, company figures and what clients say
type AboutPage struct {
	Meta
	Team         []models.TeamMember  `json:"team"`
	Stats        []models.Stat        `json:"stats"`
	Testimonials []models.Testimonial `json:"testimonials"`
	References   []models.Reference   `json:"references"`
}

func (a *Assembler) About(ctx context.Context, locale i18n.Locale) *AboutPage {
	p := &AboutPage{Meta: newMeta(locale, "about")}

	var (
		stats        []models.Stat
		testimonials []models.Testimonial
		references   []models.Reference
	)
	fanOut(ctx,
		func(ctx context.Context) { stats = a.fetcher.GetStats(ctx, locale) },
		func(ctx context.Context) { testimonials = a.fetcher.GetAllTestimonials(ctx, locale) },
		func(ctx context.Context) { references = a.fetcher.GetReferences(ctx, locale) },
	)

	// The team lives only in the defaults, so it is not a fallback source
	p.Team = a.defaults.Team(locale)
	p.Stats = list(p.Meta, "stats", stats, func() []models.Stat { return a.defaults.Stats(locale) })
	p.Testimonials = list(p.Meta, "testimonials", testimonials, func() []models.Testimonial { return a.defaults.Testimonials(locale, false) })
	p.References = list(p.Meta, "references", references, func() []models.Reference { return a.defaults.References(locale) })
	return p
}

// SlugList names every detail page of a collection
type SlugList struct {
	Meta
	Slugs []string `json:"slugs"`
}

// ServiceSlugs lists service detail pages, falling back to the default catalog
// when the store lists none
func (a *Assembler) ServiceSlugs(ctx context.Context, locale i18n.Locale) *SlugList {
	p := &SlugList{Meta: newMeta(locale, "services")}
	p.Slugs = slugs(p.Meta, a.fetcher.GetAllServiceSlugs(ctx), a.defaults.ServiceSlugs)
	return p
}

func (a *Assembler) ProjectSlugs(ctx context.Context, locale i18n.Locale) *SlugList {
	p := &SlugList{Meta: newMeta(locale, "projects")}
	p.Slugs = slugs(p.Meta, a.fetcher.GetAllProjectSlugs(ctx), a.defaults.ProjectSlugs)
	return p
}

// slugs treats an empty listing as missing; slug fetchers never return nil
func slugs(m Meta, got []string, fallback func() []string) []string {
	if len(got) == 0 {
		got = nil
	}
	return list(m, "slugs", got, fallback)
}

// LayoutData is shared by every page of the site
type LayoutData struct {
	Meta
	Footer *models.Footer `json:"footer"`
}

func (a *Assembler) Layout(ctx context.Context, locale i18n.Locale) *LayoutData {
	p := &LayoutData{Meta: newMeta(locale, "layout", "footer")}
	got := a.fetcher.GetFooter(ctx, locale)
	p.Footer = one(p.Meta, "footer", got, func() *models.Footer { return a.defaults.Footer(locale) })
	return p
}
