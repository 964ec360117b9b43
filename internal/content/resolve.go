package content

import (
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/models"
)

// defaultRating applies to testimonials that carry no rating
const defaultRating = 5

// The Resolve functions map wire documents to view-models for one locale. They are
// shared by the fetchers and the fallback defaults so both produce identical shapes.

// ResolveHero maps the banner document
func ResolveHero(d models.HeroDoc, locale i18n.Locale) models.Hero {
	slides := make([]models.HeroSlide, 0, len(d.Slides))
	for _, s := range d.Slides {
		slides = append(slides, models.HeroSlide{
			Title:    s.Title.Resolve(locale),
			Subtitle: s.Subtitle.Resolve(locale),
			PrimaryButton: models.Button{
				Label: s.PrimaryLabel.Resolve(locale),
				Link:  s.PrimaryLink,
			},
			SecondaryButton: models.Button{
				Label: s.SecondaryLabel.Resolve(locale),
				Link:  s.SecondaryLink,
			},
			BackgroundImage: s.Image,
		})
	}

	images := d.SliderImages
	if images == nil {
		images = []models.Image{}
	}

	return models.Hero{ID: d.ID, Slides: slides, SliderImages: images}
}

func ResolveFeatureCard(d models.FeatureCardDoc, locale i18n.Locale) models.FeatureCard {
	return models.FeatureCard{
		ID:          d.ID,
		Title:       d.Title.Resolve(locale),
		Description: d.Description.Resolve(locale),
		Image:       d.Image,
		Link:        d.Link,
		Order:       d.Order,
	}
}

func ResolveStat(d models.StatDoc, locale i18n.Locale) models.Stat {
	return models.Stat{
		ID:          d.ID,
		Title:       d.Title.Resolve(locale),
		Value:       d.Value,
		Suffix:      d.Suffix,
		Description: d.Description.Resolve(locale),
		Order:       d.Order,
	}
}

// ResolveTestimonial maps a review; a missing rating counts as five stars
func ResolveTestimonial(d models.TestimonialDoc, locale i18n.Locale) models.Testimonial {
	rating := defaultRating
	if d.Rating != nil {
		rating = *d.Rating
	}
	return models.Testimonial{
		ID:      d.ID,
		Name:    d.Name,
		Role:    d.Role.Resolve(locale),
		Message: d.Message.Resolve(locale),
		Image:   d.Image,
		Rating:  rating,
		Order:   d.Order,
	}
}

func ResolveService(d models.ServiceDoc, locale i18n.Locale) models.Service {
	return models.Service{
		ID:          d.ID,
		Slug:        d.Slug,
		Title:       d.Title.Resolve(locale),
		Description: d.Description.Resolve(locale),
		Image:       d.Image,
		Order:       d.Order,
	}
}

func ResolveServiceDetail(d models.ServiceDoc, locale i18n.Locale) models.ServiceDetail {
	detail := models.ServiceDetail{
		Service:   ResolveService(d, locale),
		HeroImage: d.HeroImage,
	}
	if blocks := d.Details.Resolve(locale); blocks != nil {
		detail.Details = *blocks
	}
	return detail
}

func ResolveProject(d models.ProjectDoc, locale i18n.Locale) models.Project {
	stack := d.TechStack
	if stack == nil {
		stack = []string{}
	}
	return models.Project{
		ID:               d.ID,
		Slug:             d.Slug,
		Title:            d.Title.Resolve(locale),
		ShortDescription: d.ShortDescription.Resolve(locale),
		MainImage:        d.MainImage,
		Category:         d.Category.Resolve(locale),
		ClientName:       d.ClientName,
		TechStack:        stack,
		Order:            d.Order,
	}
}

func ResolveProjectDetail(d models.ProjectDoc, locale i18n.Locale) models.ProjectDetail {
	gallery := d.GalleryImages
	if gallery == nil {
		gallery = []models.Image{}
	}
	detail := models.ProjectDetail{
		Project:        ResolveProject(d, locale),
		GalleryImages:  gallery,
		ProjectURL:     d.ProjectURL,
		SEOTitle:       d.SEOTitle.Resolve(locale),
		SEODescription: d.SEODescription.Resolve(locale),
	}
	if blocks := d.FullDescription.Resolve(locale); blocks != nil {
		detail.FullDescription = *blocks
	}
	return detail
}

func ResolveReference(d models.ReferenceDoc, locale i18n.Locale) models.Reference {
	return models.Reference{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location.Resolve(locale),
		Phone:    d.Phone,
		Order:    d.Order,
	}
}

func ResolveTeamMember(d models.TeamMemberDoc, locale i18n.Locale) models.TeamMember {
	return models.TeamMember{
		ID:    d.ID,
		Name:  d.Name,
		Role:  d.Role.Resolve(locale),
		Bio:   d.Bio.Resolve(locale),
		Phone: d.Phone,
		Email: d.Email,
		Image: d.Image,
	}
}

func ResolveFooter(d models.FooterDoc, locale i18n.Locale) models.Footer {
	links := make([]models.Link, 0, len(d.Links))
	for _, l := range d.Links {
		links = append(links, models.Link{Label: l.Label.Resolve(locale), URL: l.URL})
	}

	social := d.SocialLinks
	if social == nil {
		social = []models.SocialLink{}
	}

	return models.Footer{
		CompanyName:  d.CompanyName,
		Description:  d.Description.Resolve(locale),
		Logo:         d.Logo,
		Address:      d.Address.Resolve(locale),
		Phone:        d.Phone,
		Email:        d.Email,
		MapURL:       d.MapURL,
		Links:        links,
		SocialLinks:  social,
		Copyright:    d.Copyright.Resolve(locale),
		PrivacyLabel: d.PrivacyLabel.Resolve(locale),
		PrivacyURL:   d.PrivacyURL,
	}
}

func ResolveContactPage(d models.ContactPageDoc, locale i18n.Locale) models.ContactPage {
	hours := make([]models.BusinessHours, 0, len(d.BusinessHours))
	for _, h := range d.BusinessHours {
		hours = append(hours, models.BusinessHours{Day: h.Day.Resolve(locale), Time: h.Time})
	}

	return models.ContactPage{
		Title:         d.Title.Resolve(locale),
		Description:   d.Description.Resolve(locale),
		Phone:         d.Phone,
		Email:         d.Email,
		Address:       d.Address.Resolve(locale),
		MapEmbedURL:   d.MapEmbedURL,
		BusinessHours: hours,
		CTAText:       d.CTAText.Resolve(locale),
	}
}

// resolveAll maps a selected document list
func resolveAll[D, V any](docs []D, locale i18n.Locale, resolve func(D, i18n.Locale) V) []V {
	out := make([]V, 0, len(docs))
	for _, d := range docs {
		out = append(out, resolve(d, locale))
	}
	return out
}
