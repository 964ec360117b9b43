package i18n

// Routing describes which locales the site serves pages in
type Routing struct {
	Locales []Locale
	Default Locale
}

// NewRouting builds a routing table from configuration values
func NewRouting(locales []string, def string) Routing {
	r := Routing{Default: Normalize(Locale(def))}
	for _, l := range locales {
		r.Locales = append(r.Locales, Normalize(Locale(l)))
	}
	if len(r.Locales) == 0 {
		r.Locales = []Locale{r.Default}
	}
	return r
}

// Pick returns the locale a request is served in. A requested locale that the
// site does not route resolves to the routing default.
func (r Routing) Pick(requested string) Locale {
	if requested == "" {
		return r.Default
	}
	for _, l := range r.Locales {
		if string(l) == requested {
			return l
		}
	}
	return r.Default
}
