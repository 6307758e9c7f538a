package models

// ArticleFields holds the article inputs. All fields are optional strings;
// the builder substitutes fallbacks for the ones it always emits.
type ArticleFields struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Date        string `json:"date"` // YYYY-MM-DD
	Image       string `json:"image"`
}

type OrganizationFields struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
}

type WebSiteFields struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Search string `json:"search"` // search action target, passed through verbatim
}

// BreadcrumbFields carries the raw multi-line "name|url" text.
type BreadcrumbFields struct {
	Items string `json:"items"`
}

type PersonFields struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Selection marks which of the five schema types are enabled.
type Selection struct {
	Article      bool `json:"article"`
	Organization bool `json:"organization"`
	Website      bool `json:"website"`
	Breadcrumb   bool `json:"breadcrumb"`
	Person       bool `json:"person"`
}

// FormData is the full field-set snapshot for all five types.
type FormData struct {
	Article      ArticleFields      `json:"article"`
	Organization OrganizationFields `json:"organization"`
	Website      WebSiteFields      `json:"website"`
	Breadcrumb   BreadcrumbFields   `json:"breadcrumb"`
	Person       PersonFields       `json:"person"`
}

// FormState is one immutable snapshot of the whole form: which types are
// selected plus the data for every type, selected or not.
type FormState struct {
	Selected Selection `json:"selectedSchemas"`
	Data     FormData  `json:"data"`
}
