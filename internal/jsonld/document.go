package jsonld

// SchemaContext is the @context carried by every standalone document.
const SchemaContext = "https://schema.org"

// Document is any schema.org node object this package can emit. Struct field
// order drives the serialized key order, so each type lists @context first,
// @type second, then its payload keys in construction order.
type Document interface {
	// withoutContext returns a copy with the @context key cleared, for use
	// as an @graph member.
	withoutContext() Document
}

// PersonRef is a nested person entity (e.g. an article author). Nested
// entities carry @type but never @context.
type PersonRef struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Article is emitted as a BlogPosting.
type Article struct {
	Context       string    `json:"@context,omitempty"`
	Type          string    `json:"@type"`
	Headline      string    `json:"headline"`
	Description   string    `json:"description"`
	Author        PersonRef `json:"author"`
	DatePublished string    `json:"datePublished"`
	Image         string    `json:"image,omitempty"`
}

func (d Article) withoutContext() Document {
	d.Context = ""
	return d
}

type Organization struct {
	Context     string `json:"@context,omitempty"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty"`
}

func (d Organization) withoutContext() Document {
	d.Context = ""
	return d
}

// SearchAction is attached to a WebSite when a search target is supplied.
// The target URL is passed through verbatim and query-input is a fixed
// literal understood by search engines.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

type WebSite struct {
	Context         string        `json:"@context,omitempty"`
	Type            string        `json:"@type"`
	Name            string        `json:"name"`
	URL             string        `json:"url"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

func (d WebSite) withoutContext() Document {
	d.Context = ""
	return d
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type BreadcrumbList struct {
	Context         string     `json:"@context,omitempty"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

func (d BreadcrumbList) withoutContext() Document {
	d.Context = ""
	return d
}

type Person struct {
	Context     string `json:"@context,omitempty"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

func (d Person) withoutContext() Document {
	d.Context = ""
	return d
}
