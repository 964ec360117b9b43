// Package queries is the catalog of content store queries. Each query pairs with
// exactly one fetcher in the content package and projects every bilingual field
// into the nested {"en", "de"} shape so that locale selection is uniform.
//
// A bilingual field reads <name>_en and <name>_de, falling through to the
// unsuffixed <name> for document types that store a single untranslated value.
package queries

// Query is a named, parameterized content store query
type Query struct {
	Name       string
	Collection string
	GROQ       string
	// Params lists the parameter names the query expects, bound as $name
	Params []string
}

const imageProjection = `{"asset": asset->{"id": _id, url}, alt}`

const (
	heroQuery = `*[_type == "heroSection"][0]{
  "id": _id,
  slides[]{
    "title": {"en": coalesce(title_en, title), "de": coalesce(title_de, title)},
    "subtitle": {"en": coalesce(subtitle_en, subtitle), "de": coalesce(subtitle_de, subtitle)},
    "primaryLabel": {"en": coalesce(button1_en, button1), "de": coalesce(button1_de, button1)},
    "primaryLink": button1_link,
    "secondaryLabel": {"en": coalesce(button2_en, button2), "de": coalesce(button2_de, button2)},
    "secondaryLink": button2_link,
    "image": image` + imageProjection + `
  },
  "sliderImages": sliderImages[]` + imageProjection + `
}`

	featureCardsQuery = `*[_type == "featureCard" && isActive == true] | order(order asc){
  "id": _id,
  "title": {"en": coalesce(title_en, title), "de": coalesce(title_de, title)},
  "description": {"en": coalesce(description_en, description), "de": coalesce(description_de, description)},
  "image": image` + imageProjection + `,
  link,
  order,
  isActive
}`

	statsQuery = `*[_type == "stats" && isActive == true] | order(order asc){
  "id": _id,
  "title": {"en": coalesce(title_en, title), "de": coalesce(title_de, title)},
  value,
  suffix,
  "description": {"en": coalesce(description_en, description), "de": coalesce(description_de, description)},
  order,
  isActive
}`

	testimonialFields = `{
  "id": _id,
  name,
  "role": {"en": coalesce(role_en, role), "de": coalesce(role_de, role)},
  "message": {"en": coalesce(message_en, message), "de": coalesce(message_de, message)},
  "image": image` + imageProjection + `,
  rating,
  order,
  isActive,
  showOnHome
}`

	homeTestimonialsQuery = `*[_type == "testimonial" && isActive == true && showOnHome == true] | order(order asc)` + testimonialFields

	allTestimonialsQuery = `*[_type == "testimonial" && isActive == true] | order(order asc)` + testimonialFields

	footerQuery = `*[_type == "siteFooter"][0]{
  "id": _id,
  companyName,
  "description": {"en": coalesce(description_en, description), "de": coalesce(description_de, description)},
  "logo": logo` + imageProjection + `,
  "address": {"en": coalesce(address_en, address), "de": coalesce(address_de, address)},
  phone,
  email,
  "mapUrl": googleMapUrl,
  links[]{"label": {"en": coalesce(label_en, label), "de": coalesce(label_de, label)}, url},
  socialLinks[]{platform, url},
  "copyright": {"en": coalesce(copyright_en, copyright), "de": coalesce(copyright_de, copyright)},
  "privacyLabel": {"en": coalesce(privacyPolicyLabel_en, privacyPolicyLabel), "de": coalesce(privacyPolicyLabel_de, privacyPolicyLabel)},
  "privacyUrl": privacyPolicyUrl
}`

	projectCardFields = `
  "id": _id,
  "slug": slug.current,
  "title": {"en": coalesce(title_en, title), "de": coalesce(title_de, title)},
  "shortDescription": {"en": coalesce(shortDescription_en, shortDescription), "de": coalesce(shortDescription_de, shortDescription)},
  "mainImage": mainImage` + imageProjection + `,
  order,
  "category": {"en": coalesce(category_en, category), "de": coalesce(category_de, category)},
  clientName,
  techStack,
  "isActive": coalesce(isActive, true),
  showOnHome`

	homeProjectsQuery = `*[_type == "project" && coalesce(isActive, true) == true && showOnHome == true] | order(order asc)[0...6]{` + projectCardFields + `
}`

	allProjectsQuery = `*[_type == "project" && coalesce(isActive, true) == true] | order(order asc){` + projectCardFields + `
}`

	projectBySlugQuery = `*[_type == "project" && coalesce(isActive, true) == true && slug.current == $slug][0]{` + projectCardFields + `,
  "fullDescription": {"en": coalesce(fullDescription_en, fullDescription), "de": coalesce(fullDescription_de, fullDescription)},
  "galleryImages": galleryImages[]` + imageProjection + `,
  projectURL,
  "seoTitle": {"en": coalesce(seoTitle_en, seoTitle), "de": coalesce(seoTitle_de, seoTitle)},
  "seoDescription": {"en": coalesce(seoDescription_en, seoDescription), "de": coalesce(seoDescription_de, seoDescription)}
}`

	projectSlugsQuery = `*[_type == "project" && coalesce(isActive, true) == true && defined(slug.current)] | order(order asc){"slug": slug.current}`

	serviceCardFields = `
  "id": _id,
  "slug": slug.current,
  "title": {"en": coalesce(title_en, title), "de": coalesce(title_de, title)},
  "description": {"en": coalesce(description_en, description), "de": coalesce(description_de, description)},
  "image": image` + imageProjection + `,
  order,
  isActive,
  showOnHome`

	allServicesQuery = `*[_type == "service" && isActive == true] | order(order asc){` + serviceCardFields + `
}`

	homeServicesQuery = `*[_type == "service" && isActive == true && showOnHome == true] | order(order asc){` + serviceCardFields + `
}`

	serviceBySlugQuery = `*[_type == "service" && isActive == true && slug.current == $slug][0]{` + serviceCardFields + `,
  "details": {"en": coalesce(details_en, details), "de": coalesce(details_de, details)},
  "heroImage": heroImage` + imageProjection + `
}`

	serviceSlugsQuery = `*[_type == "service" && isActive == true && defined(slug.current)] | order(order asc){"slug": slug.current}`

	referencesQuery = `*[_type == "referenceEntry" && show == true] | order(order asc){
  "id": _id,
  name,
  "location": {"en": coalesce(location_en, location), "de": coalesce(location_de, location)},
  phone,
  order,
  show
}`

	contactPageQuery = `*[_type == "contactPage"][0]{
  "id": _id,
  "title": headerSection.title,
  "description": headerSection.description,
  "phone": contactDetails.phone,
  "email": contactDetails.email,
  "address": addressSection.address,
  "mapEmbedUrl": addressSection.googleMapEmbedUrl,
  businessHours[]{"day": {"en": coalesce(day_en, day), "de": coalesce(day_de, day)}, time},
  "ctaText": ctaSection.ctaText
}`
)

// Catalog entries
var (
	Hero             = Query{Name: "hero", Collection: "heroSection", GROQ: heroQuery}
	FeatureCards     = Query{Name: "feature-cards", Collection: "featureCard", GROQ: featureCardsQuery}
	Stats            = Query{Name: "stats", Collection: "stats", GROQ: statsQuery}
	HomeTestimonials = Query{Name: "home-testimonials", Collection: "testimonial", GROQ: homeTestimonialsQuery}
	AllTestimonials  = Query{Name: "testimonials", Collection: "testimonial", GROQ: allTestimonialsQuery}
	Footer           = Query{Name: "footer", Collection: "siteFooter", GROQ: footerQuery}
	HomeProjects     = Query{Name: "home-projects", Collection: "project", GROQ: homeProjectsQuery}
	AllProjects      = Query{Name: "projects", Collection: "project", GROQ: allProjectsQuery}
	ProjectBySlug    = Query{Name: "project-by-slug", Collection: "project", GROQ: projectBySlugQuery, Params: []string{"slug"}}
	ProjectSlugs     = Query{Name: "project-slugs", Collection: "project", GROQ: projectSlugsQuery}
	AllServices      = Query{Name: "services", Collection: "service", GROQ: allServicesQuery}
	HomeServices     = Query{Name: "home-services", Collection: "service", GROQ: homeServicesQuery}
	ServiceBySlug    = Query{Name: "service-by-slug", Collection: "service", GROQ: serviceBySlugQuery, Params: []string{"slug"}}
	ServiceSlugs     = Query{Name: "service-slugs", Collection: "service", GROQ: serviceSlugsQuery}
	References       = Query{Name: "references", Collection: "referenceEntry", GROQ: referencesQuery}
	ContactPage      = Query{Name: "contact-page", Collection: "contactPage", GROQ: contactPageQuery}
)

// All returns every query in the catalog
func All() []Query {
	return []Query{
		Hero, FeatureCards, Stats, HomeTestimonials, AllTestimonials, Footer,
		HomeProjects, AllProjects, ProjectBySlug, ProjectSlugs,
		AllServices, HomeServices, ServiceBySlug, ServiceSlugs,
		References, ContactPage,
	}
}

// Singleton reports whether the query selects a single document
func (q Query) Singleton() bool {
	switch q.Collection {
	case "heroSection", "siteFooter", "contactPage":
		return true
	}
	return len(q.Params) > 0
}
