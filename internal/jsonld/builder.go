package jsonld

import (
	"strings"
	"time"

	"schemaforge/pkg/models"
)

// Builder turns field sets into schema.org documents. Builders never fail:
// a missing field either falls back to a documented literal or is omitted.
type Builder struct {
	// Now supplies the date for datePublished fallbacks. Tests pin it.
	Now func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{Now: time.Now}
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (b *Builder) Article(f models.ArticleFields) Article {
	date := f.Date
	if date == "" {
		date = b.Now().Format("2006-01-02")
	}
	return Article{
		Context:     SchemaContext,
		Type:        "BlogPosting",
		Headline:    fallback(f.Headline, "Your Article Headline"),
		Description: fallback(f.Description, "Your article description"),
		Author: PersonRef{
			Type: "Person",
			Name: fallback(f.Author, "Author Name"),
		},
		DatePublished: date,
		Image:         f.Image,
	}
}

func (b *Builder) Organization(f models.OrganizationFields) Organization {
	return Organization{
		Context:     SchemaContext,
		Type:        "Organization",
		Name:        fallback(f.Name, "Organization Name"),
		URL:         fallback(f.URL, "https://example.com"),
		Logo:        f.Logo,
		Description: f.Description,
	}
}

func (b *Builder) WebSite(f models.WebSiteFields) WebSite {
	doc := WebSite{
		Context: SchemaContext,
		Type:    "WebSite",
		Name:    fallback(f.Name, "Website Name"),
		URL:     fallback(f.URL, "https://example.com"),
	}
	if f.Search != "" {
		doc.PotentialAction = &SearchAction{
			Type:       "SearchAction",
			Target:     f.Search,
			QueryInput: "required name=search_term_string",
		}
	}
	return doc
}

// Breadcrumb parses the multi-line "name|url" text into ListItems. Lines
// that do not split into exactly two segments are dropped; positions are
// 1-based in output order. Zero valid lines yields the default Home item.
func (b *Builder) Breadcrumb(f models.BreadcrumbFields) BreadcrumbList {
	var items []ListItem
	for _, line := range strings.Split(f.Items, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			continue
		}
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: len(items) + 1,
			Name:     strings.TrimSpace(parts[0]),
			Item:     strings.TrimSpace(parts[1]),
		})
	}
	if len(items) == 0 {
		items = []ListItem{{
			Type:     "ListItem",
			Position: 1,
			Name:     "Home",
			Item:     "https://example.com",
		}}
	}
	return BreadcrumbList{
		Context:         SchemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

func (b *Builder) Person(f models.PersonFields) Person {
	return Person{
		Context:     SchemaContext,
		Type:        "Person",
		Name:        fallback(f.Name, "Person Name"),
		URL:         f.URL,
		Description: f.Description,
	}
}

// FromForm builds the documents for every selected type, in the fixed order
// Article, Organization, WebSite, BreadcrumbList, Person. The order depends
// only on the selection, never on input timing.
func (b *Builder) FromForm(state models.FormState) []Document {
	var docs []Document
	if state.Selected.Article {
		docs = append(docs, b.Article(state.Data.Article))
	}
	if state.Selected.Organization {
		docs = append(docs, b.Organization(state.Data.Organization))
	}
	if state.Selected.Website {
		docs = append(docs, b.WebSite(state.Data.Website))
	}
	if state.Selected.Breadcrumb {
		docs = append(docs, b.Breadcrumb(state.Data.Breadcrumb))
	}
	if state.Selected.Person {
		docs = append(docs, b.Person(state.Data.Person))
	}
	return docs
}
