package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
)

// Documents in this file mirror the projections of the query catalog. Every
// bilingual field arrives as i18n.Localized; nothing here is locale-resolved.

// ImageAsset references an uploaded asset in the content store
type ImageAsset struct {
	ID  string `json:"id" yaml:"id"`
	URL string `json:"url" yaml:"url"`
}

// Image is an asset reference with alt text, passed through to presentation unchanged
type Image struct {
	Asset *ImageAsset `json:"asset,omitempty" yaml:"asset,omitempty"`
	Alt   string      `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// RichText is a list of portable text blocks
type RichText []map[string]any

// HeroSlideDoc is one banner slide
type HeroSlideDoc struct {
	Title          i18n.Text `json:"title" yaml:"title"`
	Subtitle       i18n.Text `json:"subtitle" yaml:"subtitle"`
	PrimaryLabel   i18n.Text `json:"primaryLabel" yaml:"primaryLabel"`
	PrimaryLink    string    `json:"primaryLink" yaml:"primaryLink"`
	SecondaryLabel i18n.Text `json:"secondaryLabel" yaml:"secondaryLabel"`
	SecondaryLink  string    `json:"secondaryLink" yaml:"secondaryLink"`
	Image          *Image    `json:"image" yaml:"image"`
}

// HeroDoc is the homepage banner singleton
type HeroDoc struct {
	ID           string         `json:"id" yaml:"id"`
	Slides       []HeroSlideDoc `json:"slides" yaml:"slides"`
	SliderImages []Image        `json:"sliderImages" yaml:"sliderImages"`
}

// FeatureCardDoc is a homepage highlight tile
type FeatureCardDoc struct {
	ID          string    `json:"id" yaml:"id"`
	Title       i18n.Text `json:"title" yaml:"title"`
	Description i18n.Text `json:"description" yaml:"description"`
	Image       *Image    `json:"image" yaml:"image"`
	Link        string    `json:"link" yaml:"link"`
	Order       float64   `json:"order" yaml:"order"`
	IsActive    *bool     `json:"isActive" yaml:"isActive"`
}

// Validate checks the document invariants
func (d FeatureCardDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Title, validation.By(hasText)),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// StatDoc is a homepage counter
type StatDoc struct {
	ID          string    `json:"id" yaml:"id"`
	Title       i18n.Text `json:"title" yaml:"title"`
	Value       float64   `json:"value" yaml:"value"`
	Suffix      string    `json:"suffix" yaml:"suffix"`
	Description i18n.Text `json:"description" yaml:"description"`
	Order       float64   `json:"order" yaml:"order"`
	IsActive    *bool     `json:"isActive" yaml:"isActive"`
}

// Validate checks the document invariants
func (d StatDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Title, validation.By(hasText)),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// TestimonialDoc is a customer review
type TestimonialDoc struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Role       i18n.Text `json:"role" yaml:"role"`
	Message    i18n.Text `json:"message" yaml:"message"`
	Image      *Image    `json:"image" yaml:"image"`
	Rating     *int      `json:"rating" yaml:"rating"`
	Order      float64   `json:"order" yaml:"order"`
	IsActive   *bool     `json:"isActive" yaml:"isActive"`
	ShowOnHome *bool     `json:"showOnHome" yaml:"showOnHome"`
}

// Validate checks the document invariants
func (d TestimonialDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Rating, validation.By(ratingInRange)),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// hasText rejects a bilingual field that is blank in both locales
func hasText(value any) error {
	t, _ := value.(i18n.Text)
	if blank(t.EN) && blank(t.DE) {
		return validation.NewError("validation_text_missing", "must be set in at least one locale")
	}
	return nil
}

func blank(s *string) bool { return s == nil || *s == "" }

func ratingInRange(value any) error {
	rating, _ := value.(*int)
	if rating != nil && (*rating < 1 || *rating > 5) {
		return validation.NewError("validation_rating_range", "must be between 1 and 5")
	}
	return nil
}

// ServiceDoc is a service catalog entry; details and hero image only come with the detail query
type ServiceDoc struct {
	ID          string                   `json:"id" yaml:"id"`
	Slug        string                   `json:"slug" yaml:"slug"`
	Title       i18n.Text                `json:"title" yaml:"title"`
	Description i18n.Text                `json:"description" yaml:"description"`
	Details     i18n.Localized[RichText] `json:"details" yaml:"details"`
	Image       *Image                   `json:"image" yaml:"image"`
	HeroImage   *Image                   `json:"heroImage" yaml:"heroImage"`
	Order       float64                  `json:"order" yaml:"order"`
	IsActive    *bool                    `json:"isActive" yaml:"isActive"`
	ShowOnHome  *bool                    `json:"showOnHome" yaml:"showOnHome"`
}

// Validate checks the document invariants
func (d ServiceDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Slug, validation.Required),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// ProjectDoc is a portfolio entry; the detail fields only come with the detail query
type ProjectDoc struct {
	ID               string                   `json:"id" yaml:"id"`
	Slug             string                   `json:"slug" yaml:"slug"`
	Title            i18n.Text                `json:"title" yaml:"title"`
	ShortDescription i18n.Text                `json:"shortDescription" yaml:"shortDescription"`
	FullDescription  i18n.Localized[RichText] `json:"fullDescription" yaml:"fullDescription"`
	MainImage        *Image                   `json:"mainImage" yaml:"mainImage"`
	GalleryImages    []Image                  `json:"galleryImages" yaml:"galleryImages"`
	Category         i18n.Text                `json:"category" yaml:"category"`
	ClientName       string                   `json:"clientName" yaml:"clientName"`
	TechStack        []string                 `json:"techStack" yaml:"techStack"`
	ProjectURL       string                   `json:"projectURL" yaml:"projectURL"`
	Order            float64                  `json:"order" yaml:"order"`
	IsActive         *bool                    `json:"isActive" yaml:"isActive"`
	ShowOnHome       *bool                    `json:"showOnHome" yaml:"showOnHome"`
	SEOTitle         i18n.Text                `json:"seoTitle" yaml:"seoTitle"`
	SEODescription   i18n.Text                `json:"seoDescription" yaml:"seoDescription"`
}

// Validate checks the document invariants
func (d ProjectDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Slug, validation.Required),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// ReferenceDoc is a client reference entry
type ReferenceDoc struct {
	ID       string    `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Location i18n.Text `json:"location" yaml:"location"`
	Phone    string    `json:"phone" yaml:"phone"`
	Order    float64   `json:"order" yaml:"order"`
	Show     *bool     `json:"show" yaml:"show"`
}

// Validate checks the document invariants
func (d ReferenceDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// TeamMemberDoc is a person shown on the about page. Team entries only exist
// in the defaults file; the content store has no team type.
type TeamMemberDoc struct {
	ID    string    `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Role  i18n.Text `json:"role" yaml:"role"`
	Bio   i18n.Text `json:"bio" yaml:"bio"`
	Phone string    `json:"phone" yaml:"phone"`
	Email string    `json:"email" yaml:"email"`
	Image string    `json:"image" yaml:"image"`
	Order float64   `json:"order" yaml:"order"`
}

// Validate checks the document invariants
func (d TeamMemberDoc) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ID, validation.Required),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Order, validation.Min(0.0)),
	)
}

// FooterLinkDoc is a footer navigation link
type FooterLinkDoc struct {
	Label i18n.Text `json:"label" yaml:"label"`
	URL   string    `json:"url" yaml:"url"`
}

// SocialLink points at a social media profile
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// FooterDoc is the site footer singleton
type FooterDoc struct {
	ID           string          `json:"id" yaml:"id"`
	CompanyName  string          `json:"companyName" yaml:"companyName"`
	Description  i18n.Text       `json:"description" yaml:"description"`
	Logo         *Image          `json:"logo" yaml:"logo"`
	Address      i18n.Text       `json:"address" yaml:"address"`
	Phone        string          `json:"phone" yaml:"phone"`
	Email        string          `json:"email" yaml:"email"`
	MapURL       string          `json:"mapUrl" yaml:"mapUrl"`
	Links        []FooterLinkDoc `json:"links" yaml:"links"`
	SocialLinks  []SocialLink    `json:"socialLinks" yaml:"socialLinks"`
	Copyright    i18n.Text       `json:"copyright" yaml:"copyright"`
	PrivacyLabel i18n.Text       `json:"privacyLabel" yaml:"privacyLabel"`
	PrivacyURL   string          `json:"privacyUrl" yaml:"privacyUrl"`
}

// BusinessHoursDoc is one opening-hours row
type BusinessHoursDoc struct {
	Day  i18n.Text `json:"day" yaml:"day"`
	Time string    `json:"time" yaml:"time"`
}

// ContactPageDoc is the contact page settings singleton
type ContactPageDoc struct {
	ID            string             `json:"id" yaml:"id"`
	Title         i18n.Text          `json:"title" yaml:"title"`
	Description   i18n.Text          `json:"description" yaml:"description"`
	Phone         string             `json:"phone" yaml:"phone"`
	Email         string             `json:"email" yaml:"email"`
	Address       i18n.Text          `json:"address" yaml:"address"`
	MapEmbedURL   string             `json:"mapEmbedUrl" yaml:"mapEmbedUrl"`
	BusinessHours []BusinessHoursDoc `json:"businessHours" yaml:"businessHours"`
	CTAText       i18n.Text          `json:"ctaText" yaml:"ctaText"`
}

// IsSet reports whether an optional flag is absent or true
func IsSet(flag *bool) bool {
	return flag == nil || *flag
}

// Active, SortOrder and DocumentID let list documents be filtered and ordered uniformly

func (d FeatureCardDoc) Active() bool       { return IsSet(d.IsActive) }
func (d FeatureCardDoc) SortOrder() float64 { return d.Order }
func (d FeatureCardDoc) DocumentID() string { return d.ID }

func (d StatDoc) Active() bool       { return IsSet(d.IsActive) }
func (d StatDoc) SortOrder() float64 { return d.Order }
func (d StatDoc) DocumentID() string { return d.ID }

func (d TestimonialDoc) Active() bool       { return IsSet(d.IsActive) }
func (d TestimonialDoc) SortOrder() float64 { return d.Order }
func (d TestimonialDoc) DocumentID() string { return d.ID }

func (d ServiceDoc) Active() bool       { return IsSet(d.IsActive) }
func (d ServiceDoc) SortOrder() float64 { return d.Order }
func (d ServiceDoc) DocumentID() string { return d.ID }

func (d ProjectDoc) Active() bool       { return IsSet(d.IsActive) }
func (d ProjectDoc) SortOrder() float64 { return d.Order }
func (d ProjectDoc) DocumentID() string { return d.ID }

func (d ReferenceDoc) Active() bool       { return IsSet(d.Show) }
func (d ReferenceDoc) SortOrder() float64 { return d.Order }
func (d ReferenceDoc) DocumentID() string { return d.ID }

func (d TeamMemberDoc) Active() bool       { return true }
func (d TeamMemberDoc) SortOrder() float64 { return d.Order }
func (d TeamMemberDoc) DocumentID() string { return d.ID }

// IsEmpty reports whether the banner has nothing to show
func (d HeroDoc) IsEmpty() bool { return len(d.Slides) == 0 }
