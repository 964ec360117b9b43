package models

// View-models handed to presentation. Localized fields are resolved to a single
// value for the request locale; a missing variant stays nil and is omitted.

// Button is a call-to-action link
type Button struct {
	Label *string `json:"label,omitempty"`
	Link  string  `json:"link,omitempty"`
}

// HeroSlide is one resolved banner slide
type HeroSlide struct {
	Title           *string `json:"title,omitempty"`
	Subtitle        *string `json:"subtitle,omitempty"`
	PrimaryButton   Button  `json:"primaryButton"`
	SecondaryButton Button  `json:"secondaryButton"`
	BackgroundImage *Image  `json:"backgroundImage,omitempty"`
}

// Hero is the resolved homepage banner
type Hero struct {
	ID           string      `json:"id"`
	Slides       []HeroSlide `json:"slides"`
	SliderImages []Image     `json:"sliderImages"`
}

// FeatureCard is a resolved highlight tile
type FeatureCard struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	Link        string  `json:"link,omitempty"`
	Order       float64 `json:"order"`
}

// Stat is a resolved counter
type Stat struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Value       float64 `json:"value"`
	Suffix      string  `json:"suffix,omitempty"`
	Description *string `json:"description,omitempty"`
	Order       float64 `json:"order"`
}

// Testimonial is a resolved customer review
type Testimonial struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    *string `json:"role,omitempty"`
	Message *string `json:"message,omitempty"`
	Image   *Image  `json:"image,omitempty"`
	Rating  int     `json:"rating"`
	Order   float64 `json:"order"`
}

// Service is a resolved service card
type Service struct {
	ID          string  `json:"id"`
	Slug        string  `json:"slug"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *Image  `json:"image,omitempty"`
	Order       float64 `json:"order"`
}

// ServiceDetail is a resolved service page
type ServiceDetail struct {
	Service
	Details   RichText `json:"details,omitempty"`
	HeroImage *Image   `json:"heroImage,omitempty"`
}

// Project is a resolved portfolio card
type Project struct {
	ID               string   `json:"id"`
	Slug             string   `json:"slug"`
	Title            *string  `json:"title,omitempty"`
	ShortDescription *string  `json:"shortDescription,omitempty"`
	MainImage        *Image   `json:"mainImage,omitempty"`
	Category         *string  `json:"category,omitempty"`
	ClientName       string   `json:"clientName,omitempty"`
	TechStack        []string `json:"techStack"`
	Order            float64  `json:"order"`
}

// ProjectDetail is a resolved portfolio page
type ProjectDetail struct {
	Project
	FullDescription RichText `json:"fullDescription,omitempty"`
	GalleryImages   []Image  `json:"galleryImages"`
	ProjectURL      string   `json:"projectURL,omitempty"`
	SEOTitle        *string  `json:"seoTitle,omitempty"`
	SEODescription  *string  `json:"seoDescription,omitempty"`
}

// Reference is a resolved client reference
type Reference struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Order    float64 `json:"order"`
}

// TeamMember is a resolved about page profile; Image is a site-relative path
type TeamMember struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Role  *string `json:"role,omitempty"`
	Bio   *string `json:"bio,omitempty"`
	Phone string  `json:"phone,omitempty"`
	Email string  `json:"email,omitempty"`
	Image string  `json:"image,omitempty"`
}

// Link is a resolved navigation link
type Link struct {
	Label *string `json:"label,omitempty"`
	URL   string  `json:"url"`
}

// Footer is the resolved site footer
type Footer struct {
	CompanyName  string       `json:"companyName,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Logo         *Image       `json:"logo,omitempty"`
	Address      *string      `json:"address,omitempty"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	MapURL       string       `json:"mapUrl,omitempty"`
	Links        []Link       `json:"links"`
	SocialLinks  []SocialLink `json:"socialLinks"`
	Copyright    *string      `json:"copyright,omitempty"`
	PrivacyLabel *string      `json:"privacyLabel,omitempty"`
	PrivacyURL   string       `json:"privacyUrl,omitempty"`
}

// BusinessHours is a resolved opening-hours row
type BusinessHours struct {
	Day  *string `json:"day,omitempty"`
	Time string  `json:"time"`
}

// ContactPage is the resolved contact page settings
type ContactPage struct {
	Title         *string         `json:"title,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       *string         `json:"address,omitempty"`
	MapEmbedURL   string          `json:"mapEmbedUrl,omitempty"`
	BusinessHours []BusinessHours `json:"businessHours"`
	CTAText       *string         `json:"ctaText,omitempty"`
}
