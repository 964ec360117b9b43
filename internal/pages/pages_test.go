package pages

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/defaults"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
)

// stubFetcher returns nil for every collection unless a field is set
type stubFetcher struct {
	hero         *models.Hero
	services     []models.Service
	detail       *models.ServiceDetail
	serviceSlugs []string
	delay        time.Duration
	calls        atomic.Int32
}

func (s *stubFetcher) seen() {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}

func (s *stubFetcher) GetHeroSection(_ context.Context, _ i18n.Locale) *models.Hero {
	s.seen()
	return s.hero
}
func (s *stubFetcher) GetFeatureCards(_ context.Context, _ i18n.Locale) []models.FeatureCard {
	s.seen()
	return nil
}
func (s *stubFetcher) GetStats(_ context.Context, _ i18n.Locale) []models.Stat {
	s.seen()
	return nil
}
func (s *stubFetcher) GetTestimonials(_ context.Context, _ i18n.Locale) []models.Testimonial {
	s.seen()
	return nil
}
func (s *stubFetcher) GetAllTestimonials(_ context.Context, _ i18n.Locale) []models.Testimonial {
	s.seen()
	return nil
}
func (s *stubFetcher) GetFooter(_ context.Context, _ i18n.Locale) *models.Footer {
	s.seen()
	return nil
}
func (s *stubFetcher) GetHomeProjects(_ context.Context, _ i18n.Locale) []models.Project {
	s.seen()
	return nil
}
func (s *stubFetcher) GetAllProjects(_ context.Context, _ i18n.Locale) []models.Project {
	s.seen()
	return nil
}
func (s *stubFetcher) GetProjectBySlug(_ context.Context, _ string, _ i18n.Locale) *models.ProjectDetail {
	s.seen()
	return nil
}
func (s *stubFetcher) GetAllServices(_ context.Context, _ i18n.Locale) []models.Service {
	s.seen()
	return s.services
}
func (s *stubFetcher) GetHomeServices(_ context.Context, _ i18n.Locale) []models.Service {
	s.seen()
	return s.services
}
func (s *stubFetcher) GetServiceBySlug(_ context.Context, _ string, _ i18n.Locale) *models.ServiceDetail {
	s.seen()
	return s.detail
}
func (s *stubFetcher) GetReferences(_ context.Context, _ i18n.Locale) []models.Reference {
	s.seen()
	return nil
}
func (s *stubFetcher) GetContactPage(_ context.Context, _ i18n.Locale) *models.ContactPage {
	s.seen()
	return nil
}

func (s *stubFetcher) GetAllServiceSlugs(_ context.Context) []string {
	s.seen()
	if s.serviceSlugs == nil {
		return []string{}
	}
	return s.serviceSlugs
}
func (s *stubFetcher) GetAllProjectSlugs(_ context.Context) []string {
	s.seen()
	return []string{}
}

func newTestAssembler(t *testing.T, f Fetcher) *Assembler {
	t.Helper()
	loader, err := defaults.NewLoader()
	if err != nil {
		t.Fatalf("NewLoader failed: %v", err)
	}
	return NewAssembler(f, loader)
}

func strPtr(s string) *string { return &s }

func TestHomeMixesSourcesPerSection(t *testing.T) {
	f := &stubFetcher{
		hero: &models.Hero{ID: "cms-hero", Slides: []models.HeroSlide{{Title: strPtr("Willkommen")}}},
	}
	a := newTestAssembler(t, f)

	page := a.Home(context.Background(), i18n.German)

	if page.Hero == nil || page.Hero.ID != "cms-hero" {
		t.Errorf("expected store hero, got %+v", page.Hero)
	}
	if page.Sources["hero"] != SourceCMS {
		t.Errorf("expected hero from cms, got %s", page.Sources["hero"])
	}
	if page.Sources["services"] != SourceDefault || len(page.Services) == 0 {
		t.Errorf("expected default services, got %s (%d)", page.Sources["services"], len(page.Services))
	}
	if got := page.Testimonials; len(got) == 0 || got[0].Message == nil {
		t.Fatal("expected default testimonials with german messages")
	}
	if f.calls.Load() != 6 {
		t.Errorf("expected 6 fetches, got %d", f.calls.Load())
	}

	tags := page.CacheTags()
	want := map[string]bool{"home": true, "home-de": true, SiteTag: true}
	if len(tags) != len(want) {
		t.Fatalf("unexpected tags: %v", tags)
	}
	for _, tag := range tags {
		if !want[tag] {
			t.Errorf("unexpected tag %q", tag)
		}
	}
}

func TestHomeFetchesConcurrently(t *testing.T) {
	f := &stubFetcher{delay: 50 * time.Millisecond}
	a := newTestAssembler(t, f)

	start := time.Now()
	a.Home(context.Background(), i18n.German)
	if elapsed := time.Since(start); elapsed > 250*time.Millisecond {
		t.Errorf("sections should be fetched in parallel, took %s", elapsed)
	}
}

func TestServiceDetailFallbackAndNotFound(t *testing.T) {
	a := newTestAssembler(t, &stubFetcher{})
	ctx := context.Background()

	page, err := a.ServiceDetail(ctx, "winter-service", i18n.German)
	if err != nil {
		t.Fatalf("expected default service, got %v", err)
	}
	if page.Sources["service"] != SourceDefault || page.Service.Slug != "winter-service" {
		t.Errorf("unexpected detail page: %+v", page)
	}
	for _, other := range page.Others {
		if other.Slug == "winter-service" {
			t.Error("the current service should not be listed among the others")
		}
	}

	if _, err := a.ServiceDetail(ctx, "nonexistent-slug", i18n.German); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := a.ProjectDetail(ctx, "nonexistent-slug", i18n.German); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDetailPrefersStore(t *testing.T) {
	f := &stubFetcher{
		detail:   &models.ServiceDetail{Service: models.Service{ID: "s1", Slug: "lawns"}},
		services: []models.Service{{ID: "s1", Slug: "lawns"}, {ID: "s2", Slug: "trees"}},
	}
	a := newTestAssembler(t, f)

	page, err := a.ServiceDetail(context.Background(), "lawns", i18n.German)
	if err != nil {
		t.Fatalf("ServiceDetail failed: %v", err)
	}
	if page.Sources["service"] != SourceCMS || page.Sources["others"] != SourceCMS {
		t.Errorf("unexpected sources: %v", page.Sources)
	}
	if len(page.Others) != 1 || page.Others[0].Slug != "trees" {
		t.Errorf("unexpected others: %+v", page.Others)
	}
	if tags := page.CacheTags(); tags[1] != ServiceTag("lawns") {
		t.Errorf("expected detail tag, got %v", tags)
	}
}

func TestAboutWithoutReferences(t *testing.T) {
	a := newTestAssembler(t, &stubFetcher{})

	page := a.About(context.Background(), i18n.English)
	if page.Sources["references"] != SourceNone {
		t.Errorf("expected no reference source, got %s", page.Sources["references"])
	}
	if page.References == nil {
		t.Error("references should be empty, not nil")
	}
}

func TestMetaFromStore(t *testing.T) {
	m := newMeta(i18n.English, "home")
	m.Sources["hero"] = SourceCMS
	if !m.FromStore() {
		t.Error("expected store-only page")
	}
	m.Sources["stats"] = SourceDefault
	if m.FromStore() {
		t.Error("page with a fallback section is not store-only")
	}
}

func TestAboutIncludesTeam(t *testing.T) {
	a := newTestAssembler(t, &stubFetcher{})

	page := a.About(context.Background(), i18n.German)
	if len(page.Team) != 2 || page.Team[0].Name != "Ferit Dzaferi" {
		t.Fatalf("expected the two default team members, got %+v", page.Team)
	}
	if page.Team[0].Role == nil || *page.Team[0].Role != "Gründer & Geschäftsführer" {
		t.Errorf("expected german role, got %v", page.Team[0].Role)
	}
	if _, ok := page.Sources["team"]; ok {
		t.Error("team is static content and must not be reported as a source")
	}
}

func TestLayoutAndContactDefaults(t *testing.T) {
	a := newTestAssembler(t, &stubFetcher{})
	ctx := context.Background()

	layout := a.Layout(ctx, i18n.German)
	if layout.Footer == nil || layout.Footer.CompanyName == "" {
		t.Errorf("expected default footer, got %+v", layout.Footer)
	}

	contact := a.Contact(ctx, i18n.German)
	if contact.Contact == nil || *contact.Contact.Title != "Kontakt" {
		t.Errorf("expected german default contact page, got %+v", contact.Contact)
	}
}

func TestSlugListings(t *testing.T) {
	a := newTestAssembler(t, &stubFetcher{serviceSlugs: []string{"lawns", "trees"}})
	ctx := context.Background()

	services := a.ServiceSlugs(ctx, i18n.German)
	if services.Sources["slugs"] != SourceCMS || len(services.Slugs) != 2 {
		t.Errorf("expected store slugs, got %v from %s", services.Slugs, services.Sources["slugs"])
	}

	projects := a.ProjectSlugs(ctx, i18n.German)
	if projects.Sources["slugs"] != SourceDefault || len(projects.Slugs) != 3 {
		t.Errorf("expected the three default project slugs, got %v from %s", projects.Slugs, projects.Sources["slugs"])
	}
}
