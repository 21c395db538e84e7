package model

//--
// Content records for the portfolio site. All of these are loaded once from
// the content module and never mutated at runtime.
//--

// Person is the site owner.
type Person struct {
	FirstName string   `json:"firstName" yaml:"first_name"`
	LastName  string   `json:"lastName" yaml:"last_name"`
	Role      string   `json:"role" yaml:"role"`
	Location  string   `json:"location" yaml:"location"`
	Bio       []string `json:"bio" yaml:"bio"`
}

// FullName joins the name parts. Kept as a method so the derived value is
// computed in exactly one place.
func (p Person) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}

	return p.FirstName + " " + p.LastName
}

// SocialLink points at an external profile.
type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon"`
	URL  string `json:"url" yaml:"url"`
}

// Experience is one entry of the work history.
type Experience struct {
	Company      string   `json:"company" yaml:"company"`
	Role         string   `json:"role" yaml:"role"`
	Period       string   `json:"period" yaml:"period"`
	Achievements []string `json:"achievements" yaml:"achievements"`
	Logo         string   `json:"logo,omitempty" yaml:"logo"`
}

// Article is the metadata record for one post. The numeric ID doubles as the
// filename key for the markdown body, stored separately as <articles-dir>/<ID>.md.
type Article struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Date        string   `json:"date" yaml:"date"`
	Cover       string   `json:"cover" yaml:"cover"`
	Tags        []string `json:"tags" yaml:"tags"`
	Link        string   `json:"link,omitempty" yaml:"link"`
}

// NavLink is one entry of the site navigation.
type NavLink struct {
	Label string `json:"label" yaml:"label"`
	Path  string `json:"path" yaml:"path"`
}

// Newsletter is the call-to-action block: a mailto contact and an external
// resume document. No form, no submission.
type Newsletter struct {
	Heading string `json:"heading" yaml:"heading"`
	Body    string `json:"body" yaml:"body"`
	Email   string `json:"email" yaml:"email"`
	Resume  string `json:"resume" yaml:"resume"`
	Enabled bool   `json:"enabled" yaml:"enabled"`
}
