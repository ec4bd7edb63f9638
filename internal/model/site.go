package model

// SiteContent is the document stored under the siteContent key.
type SiteContent struct {
	Header       HeaderContent       `json:"header"`
	Footer       FooterContent       `json:"footer"`
	Sidebar      SidebarContent      `json:"sidebar"`
	Home         HomeContent         `json:"home"`
	About        AboutContent        `json:"about"`
	Candidates   CandidatesContent   `json:"candidates"`
	Issues       IssuesContent       `json:"issues"`
	Endorsements EndorsementsContent `json:"endorsements"`
	Volunteer    VolunteerContent    `json:"volunteer"`
	Vote         VoteContent         `json:"vote"`
	Contact      ContactContent      `json:"contact"`
}

// Link is a plain name/href pair used by navigation and footer lists.
type Link struct {
	Name        string `json:"name"`
	Href        string `json:"href"`
	DisplayName string `json:"displayName,omitempty"`
}

// Button is a call-to-action button. Link is empty for buttons wired to page scripts.
type Button struct {
	Text  string `json:"text"`
	Link  string `json:"link,omitempty"`
	Style string `json:"style"`
}

// CallToAction is the closing block shared by several pages.
type CallToAction struct {
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Buttons []Button `json:"buttons"`
}

// TitledList is a heading followed by bullet items.
type TitledList struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// TitledText is a heading followed by free text.
type TitledText struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MailingAddress is a three-line postal address.
type MailingAddress struct {
	Organization string `json:"organization"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
}

// FormField describes one input of a page form. Options only applies to select inputs.
type FormField struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type HeaderContent struct {
	Logo         Logo       `json:"logo"`
	Navigation   []Link     `json:"navigation"`
	DonateButton LinkButton `json:"donateButton"`
}

type Logo struct {
	Src          string `json:"src"`
	Alt          string `json:"alt"`
	FallbackText string `json:"fallbackText"`
}

type LinkButton struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type FooterContent struct {
	OurTown    Quote          `json:"ourTown"`
	Categories LinkCategory   `json:"categories"`
	Copyright  CopyrightBlock `json:"copyright"`
}

type Quote struct {
	Title       string `json:"title"`
	Quote       string `json:"quote"`
	Attribution string `json:"attribution"`
}

type LinkCategory struct {
	Title string `json:"title"`
	Links []Link `json:"links"`
}

type CopyrightBlock struct {
	Text    string `json:"text"`
	Address string `json:"address"`
}

type SidebarContent struct {
	Search        SearchWidget `json:"search"`
	ContactWidget LinkWidget   `json:"contactWidget"`
	AboutWidget   LinkWidget   `json:"aboutWidget"`
}

type SearchWidget struct {
	Placeholder string `json:"placeholder"`
	Enabled     bool   `json:"enabled"`
}

type LinkWidget struct {
	Title    string `json:"title"`
	LinkText string `json:"linkText"`
	LinkHref string `json:"linkHref"`
}

type HomeContent struct {
	Title          string         `json:"title"`
	HeroSlider     []HeroSlide    `json:"heroSlider"`
	WelcomeMessage []string       `json:"welcomeMessage"`
	FeatureBlocks  []FeatureBlock `json:"featureBlocks"`
}

type HeroSlide struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	IsActive bool   `json:"isActive"`
}

type FeatureBlock struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Icon        string `json:"icon"`
}

type AboutContent struct {
	Title         string        `json:"title"`
	Sections      AboutSections `json:"sections"`
	JoinUsMessage string        `json:"joinUsMessage"`
}

type AboutSections struct {
	WhoWeAre        TitledText `json:"whoWeAre"`
	Officers        TitledText `json:"officers"`
	WhatWeStriveFor TitledList `json:"whatWeStriveFor"`
}

type CandidatesContent struct {
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Candidates   []Candidate  `json:"candidates"`
	CallToAction CallToAction `json:"callToAction"`
}

type Candidate struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	Image      string   `json:"image"`
	Bio        string   `json:"bio"`
	Experience []string `json:"experience"`
	Priorities []string `json:"priorities"`
}

type IssuesContent struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Sections     IssueSections `json:"sections"`
	CallToAction CallToAction  `json:"callToAction"`
}

type IssueSections struct {
	Accomplishments AccomplishmentSection `json:"accomplishments"`
	FuturePlans     FuturePlanSection     `json:"futurePlans"`
}

type AccomplishmentSection struct {
	Enabled bool             `json:"enabled"`
	Title   string           `json:"title"`
	Items   []Accomplishment `json:"items"`
}

type Accomplishment struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
	Icon        string   `json:"icon"`
}

type FuturePlanSection struct {
	Enabled bool         `json:"enabled"`
	Title   string       `json:"title"`
	Items   []FuturePlan `json:"items"`
}

type FuturePlan struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Priority    string `json:"priority"`
}

type EndorsementsContent struct {
	Title                    string                    `json:"title"`
	Subtitle                 string                    `json:"subtitle"`
	IndividualEndorsements   []IndividualEndorsement   `json:"individualEndorsements"`
	OrganizationEndorsements []OrganizationEndorsement `json:"organizationEndorsements"`
	MediaEndorsements        []MediaEndorsement        `json:"mediaEndorsements"`
}

type IndividualEndorsement struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Quote string `json:"quote"`
	Image string `json:"image"`
}

type OrganizationEndorsement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website,omitempty"`
}

type MediaEndorsement struct {
	ID       string `json:"id"`
	Outlet   string `json:"outlet"`
	Headline string `json:"headline"`
	Excerpt  string `json:"excerpt"`
	Date     string `json:"date"`
	Link     string `json:"link,omitempty"`
}

type VolunteerContent struct {
	Title        string          `json:"title"`
	Subtitle     string          `json:"subtitle"`
	Introduction string          `json:"introduction"`
	Roles        []VolunteerRole `json:"roles"`
	Benefits     []string        `json:"benefits"`
	CallToAction VolunteerSignUp `json:"callToAction"`
}

type VolunteerRole struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	TimeCommitment string   `json:"timeCommitment"`
	Requirements   []string `json:"requirements"`
	Tasks          []string `json:"tasks"`
	Icon           string   `json:"icon"`
}

type VolunteerSignUp struct {
	Title      string      `json:"title"`
	Message    string      `json:"message"`
	FormFields []FormField `json:"formFields"`
}

type ContactContent struct {
	Title           string          `json:"title"`
	Subtitle        string          `json:"subtitle"`
	ShowPhoneNumber bool            `json:"showPhoneNumber"`
	PhoneNumber     string          `json:"phoneNumber"`
	Email           string          `json:"email"`
	MailingAddress  MailingAddress  `json:"mailingAddress"`
	ContactForm     ContactForm     `json:"contactForm"`
	OfficeHours     OfficeHours     `json:"officeHours"`
	SocialMedia     []SocialAccount `json:"socialMedia"`
}

type ContactForm struct {
	Title            string      `json:"title"`
	Subtitle         string      `json:"subtitle"`
	Fields           []FormField `json:"fields"`
	SubmitButtonText string      `json:"submitButtonText"`
	SuccessMessage   string      `json:"successMessage"`
}

type OfficeHours struct {
	Title    string   `json:"title"`
	Schedule []string `json:"schedule"`
}

type SocialAccount struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	IsActive bool   `json:"isActive"`
}
