// Package defaults holds the fallback content pages use when the content store
// returns nothing for a section.
package defaults

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/content"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
)

//go:embed defaults.yaml
var embedded []byte

// Loader manages loading and serving of fallback content
type Loader struct {
	mu     sync.RWMutex
	source string
	set    contentFile
}

// NewLoader creates a loader preloaded with the embedded defaults
func NewLoader() (*Loader, error) {
	l := &Loader{}
	if err := l.load("embedded", embedded); err != nil {
		return nil, err
	}
	return l, nil
}

// LoadFromFile replaces the current defaults with a YAML file
func (l *Loader) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return l.load(path, data)
}

func (l *Loader) load(source string, data []byte) error {
	var f contentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Invalid or inactive entries are dropped with a warning, like store documents
	f.FeatureCards = content.Select("featureCard", f.FeatureCards)
	f.Stats = content.Select("stats", f.Stats)
	f.Testimonials = content.Select("testimonial", f.Testimonials)
	f.Services = content.Select("service", f.Services)
	f.Projects = content.Select("project", f.Projects)
	f.References = content.Select("referenceEntry", f.References)
	f.Team = content.Select("teamMember", f.Team)

	if err := uniqueSlugs(f.Services, func(d models.ServiceDoc) string { return d.Slug }); err != nil {
		return fmt.Errorf("services: %w", err)
	}
	if err := uniqueSlugs(f.Projects, func(d models.ProjectDoc) string { return d.Slug }); err != nil {
		return fmt.Errorf("projects: %w", err)
	}

	l.mu.Lock()
	l.source = source
	l.set = f
	l.mu.Unlock()

	slog.Info("defaults loaded",
		"source", source,
		"services", len(f.Services),
		"projects", len(f.Projects),
		"testimonials", len(f.Testimonials),
	)
	return nil
}

// Source reports where the current defaults came from
func (l *Loader) Source() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *Loader) snapshot() contentFile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set
}

// Hero returns the fallback banner, or nil when it has no slides
func (l *Loader) Hero(locale i18n.Locale) *models.Hero {
	doc := l.snapshot().Hero
	if doc.IsEmpty() {
		return nil
	}
	hero := content.ResolveHero(doc, i18n.Normalize(locale))
	return &hero
}

func (l *Loader) FeatureCards(locale i18n.Locale) []models.FeatureCard {
	return resolve(l.snapshot().FeatureCards, locale, content.ResolveFeatureCard)
}

func (l *Loader) Stats(locale i18n.Locale) []models.Stat {
	return resolve(l.snapshot().Stats, locale, content.ResolveStat)
}

// Testimonials returns the fallback reviews; homeOnly keeps those flagged for the homepage
func (l *Loader) Testimonials(locale i18n.Locale, homeOnly bool) []models.Testimonial {
	docs := l.snapshot().Testimonials
	if homeOnly {
		docs = onHome(docs, func(d models.TestimonialDoc) *bool { return d.ShowOnHome })
	}
	return resolve(docs, locale, content.ResolveTestimonial)
}

func (l *Loader) Services(locale i18n.Locale, homeOnly bool) []models.Service {
	docs := l.snapshot().Services
	if homeOnly {
		docs = onHome(docs, func(d models.ServiceDoc) *bool { return d.ShowOnHome })
	}
	return resolve(docs, locale, content.ResolveService)
}

// ServiceBySlug returns the fallback service with the slug, or nil
func (l *Loader) ServiceBySlug(slug string, locale i18n.Locale) *models.ServiceDetail {
	for _, d := range l.snapshot().Services {
		if d.Slug == slug {
			detail := content.ResolveServiceDetail(d, i18n.Normalize(locale))
			return &detail
		}
	}
	return nil
}

func (l *Loader) ServiceSlugs() []string {
	docs := l.snapshot().Services
	slugs := make([]string, 0, len(docs))
	for _, d := range docs {
		slugs = append(slugs, d.Slug)
	}
	return slugs
}

// Projects returns the fallback portfolio; the homepage shows at most six
func (l *Loader) Projects(locale i18n.Locale, homeOnly bool) []models.Project {
	docs := l.snapshot().Projects
	if homeOnly {
		docs = onHome(docs, func(d models.ProjectDoc) *bool { return d.ShowOnHome })
		if len(docs) > homeProjectLimit {
			docs = docs[:homeProjectLimit]
		}
	}
	return resolve(docs, locale, content.ResolveProject)
}

func (l *Loader) ProjectBySlug(slug string, locale i18n.Locale) *models.ProjectDetail {
	for _, d := range l.snapshot().Projects {
		if d.Slug == slug {
			detail := content.ResolveProjectDetail(d, i18n.Normalize(locale))
			return &detail
		}
	}
	return nil
}

func (l *Loader) ProjectSlugs() []string {
	docs := l.snapshot().Projects
	slugs := make([]string, 0, len(docs))
	for _, d := range docs {
		slugs = append(slugs, d.Slug)
	}
	return slugs
}

func (l *Loader) References(locale i18n.Locale) []models.Reference {
	return resolve(l.snapshot().References, locale, content.ResolveReference)
}

// Team returns the about page profiles
func (l *Loader) Team(locale i18n.Locale) []models.TeamMember {
	return resolve(l.snapshot().Team, locale, content.ResolveTeamMember)
}

func (l *Loader) Footer(locale i18n.Locale) *models.Footer {
	footer := content.ResolveFooter(l.snapshot().Footer, i18n.Normalize(locale))
	return &footer
}

func (l *Loader) ContactPage(locale i18n.Locale) *models.ContactPage {
	page := content.ResolveContactPage(l.snapshot().ContactPage, i18n.Normalize(locale))
	return &page
}

// --- helpers ---

const homeProjectLimit = 6

func resolve[D, V any](docs []D, locale i18n.Locale, fn func(D, i18n.Locale) V) []V {
	locale = i18n.Normalize(locale)
	out := make([]V, 0, len(docs))
	for _, d := range docs {
		out = append(out, fn(d, locale))
	}
	return out
}

// onHome keeps documents explicitly flagged for the homepage
func onHome[D any](docs []D, flag func(D) *bool) []D {
	var out []D
	for _, d := range docs {
		if f := flag(d); f != nil && *f {
			out = append(out, d)
		}
	}
	return out
}

func uniqueSlugs[D any](docs []D, slug func(D) string) error {
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		s := slug(d)
		if seen[s] {
			return fmt.Errorf("duplicate slug %q", s)
		}
		seen[s] = true
	}
	return nil
}

// --- YAML file structs ---

// contentFile represents the YAML structure of a defaults file
type contentFile struct {
	Hero         models.HeroDoc          `yaml:"hero"`
	FeatureCards []models.FeatureCardDoc `yaml:"featureCards"`
	Stats        []models.StatDoc        `yaml:"stats"`
	Testimonials []models.TestimonialDoc `yaml:"testimonials"`
	Services     []models.ServiceDoc     `yaml:"services"`
	Projects     []models.ProjectDoc     `yaml:"projects"`
	References   []models.ReferenceDoc   `yaml:"references"`
	Team         []models.TeamMemberDoc  `yaml:"team"`
	Footer       models.FooterDoc        `yaml:"footer"`
	ContactPage  models.ContactPageDoc   `yaml:"contactPage"`
}
