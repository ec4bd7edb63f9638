// Package model contains the content schema and form records shared across layers.
// Types carry only JSON tags; they are persisted as JSON blobs in the key-value store
// and must stay wire-compatible with documents saved by earlier versions of the site.
package model

// ContentDocument is the full content document: every site section plus the
// donation sub-document, which is persisted under its own key.
type ContentDocument struct {
	SiteContent
	Donation DonationContent `json:"donation"`
}

// Sections lists the addressable top-level section names of a ContentDocument.
var Sections = []string{
	"header",
	"footer",
	"sidebar",
	"home",
	"about",
	"candidates",
	"issues",
	"endorsements",
	"volunteer",
	"vote",
	"contact",
	"donation",
}

// Section projects one named section out of the document.
func (d ContentDocument) Section(name string) (any, bool) {
	switch name {
	case "header":
		return d.Header, true
	case "footer":
		return d.Footer, true
	case "sidebar":
		return d.Sidebar, true
	case "home":
		return d.Home, true
	case "about":
		return d.About, true
	case "candidates":
		return d.Candidates, true
	case "issues":
		return d.Issues, true
	case "endorsements":
		return d.Endorsements, true
	case "volunteer":
		return d.Volunteer, true
	case "vote":
		return d.Vote, true
	case "contact":
		return d.Contact, true
	case "donation":
		return d.Donation, true
	}
	return nil, false
}
