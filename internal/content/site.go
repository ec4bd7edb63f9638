// Package content holds the compiled-in default documents. Every call returns
// a fresh value so callers may mutate the result freely.
package content

import "github.com/bwdtc/bridgewater-dems/internal/model"

// DefaultSite returns a fresh copy of the compiled-in site document.
func DefaultSite() model.SiteContent {
	return model.SiteContent{
		Header:       defaultHeader(),
		Footer:       defaultFooter(),
		Sidebar:      defaultSidebar(),
		Home:         defaultHome(),
		About:        defaultAbout(),
		Candidates:   defaultCandidates(),
		Issues:       defaultIssues(),
		Endorsements: defaultEndorsements(),
		Volunteer:    defaultVolunteer(),
		Vote:         defaultVote(),
		Contact:      defaultContact(),
	}
}

// DefaultDocument returns the full default ContentDocument.
func DefaultDocument() model.ContentDocument {
	return model.ContentDocument{SiteContent: DefaultSite(), Donation: DefaultDonation()}
}

func defaultHeader() model.HeaderContent {
	return model.HeaderContent{
		Logo: model.Logo{
			Src:          "/media/bridgewater-dtc-logo.png",
			Alt:          "Bridgewater Democratic Town Committee",
			FallbackText: "Bridgewater Democratic Town Committee",
		},
		Navigation: []model.Link{
			{Name: "Home", Href: "/"},
			{Name: "Candidates", Href: "/candidates"},
			{Name: "Issues", Href: "/issues"},
			{Name: "Endorsements", Href: "/endorsements"},
			{Name: "FactCheck", Href: "/factcheck", DisplayName: "FACT CHECK"},
			{Name: "Events", Href: "/events"},
			{Name: "Volunteer", Href: "/volunteer"},
			{Name: "Vote!", Href: "/vote"},
		},
		DonateButton: model.LinkButton{Text: "DONATE", Link: "/donate"},
	}
}

func defaultFooter() model.FooterContent {
	return model.FooterContent{
		OurTown: model.Quote{
			Title:       "Our Town",
			Quote:       "Outside, I'm all for progress. But once across the big bridge, progress wears a different face. It means preserving our tranquility against distant forces which press against us. We like it here; we mean to keep it this way. That's basic politics in Bridgewater.",
			Attribution: "-- 1985 - Theodore H. White, American political journalist, historian, and novelist.",
		},
		Categories: model.LinkCategory{
			Title: "Categories",
			Links: []model.Link{
				{Name: "Voting", Href: "#vote"},
				{Name: "Endorsements", Href: "#endorsements"},
				{Name: "Issues", Href: "/issues"},
				{Name: "The 2021 Candidates", Href: "#candidates"},
			},
		},
		Copyright: model.CopyrightBlock{
			Text:    "Copyright © 2024 Bridgewater DTC. All rights reserved. Paid for by the Bridgewater DTC, Cynthia Feuer, Treasurer",
			Address: "P.O. Box 132, Bridgewater, CT 06752",
		},
	}
}

func defaultSidebar() model.SidebarContent {
	return model.SidebarContent{
		Search: model.SearchWidget{Placeholder: "Search", Enabled: true},
		ContactWidget: model.LinkWidget{
			Title:    "Contact Us",
			LinkText: "eMail/USMail us here",
			LinkHref: "/contact",
		},
		AboutWidget: model.LinkWidget{
			Title:    "ABOUT US",
			LinkText: "About the DTC",
			LinkHref: "/about",
		},
	}
}

func defaultHome() model.HomeContent {
	return model.HomeContent{
		Title: "Bridgewater Democratic Town Committee",
		HeroSlider: []model.HeroSlide{
			{ID: "slide1", Image: "https://ext.same-assets.com/249616470/1885902561.jpeg", Title: "Bridgewater", Subtitle: "We love our town.", IsActive: true},
			{ID: "slide2", Image: "https://ext.same-assets.com/249616470/848745050.jpeg", Title: "Bridgewater", Subtitle: "Things are good in Bridgewater.", IsActive: true},
			{ID: "slide3", Image: "https://ext.same-assets.com/249616470/1410192107.jpeg", Title: "Bridgewater", Subtitle: "The town has improved,\nand it's also stayed the same.\n\nThat's letting Bridgewater be Bridgewater.", IsActive: true},
			{ID: "slide4", Image: "https://i.imgur.com/QskNK32.jpeg", Title: "Eric Gsell", Subtitle: "Bridgewater's First Selectman", IsActive: true},
			{ID: "slide5", Image: "https://i.imgur.com/0nTbSKK.jpeg", Title: "Carolan Dwyer", Subtitle: "Bridgewater's Selectman", IsActive: true},
		},
		WelcomeMessage: []string{
			"The Bridgewater Democratic Town Committee is the voice and face of the Democratic Party in Bridgewater, Connecticut. We love Bridgewater and think is a great place to live. We are grateful for all that nature has given us here.",
			"We understand that it takes effort, discipline and skill to care for our beautiful surroundings, for the town's infrastructure and its operations, and for all of the residents who have chosen to make Bridgewater their home.",
			"We are here to preserve, to protect, to progress, and play fair.",
			"And we welcome help from any members of the Bridgewater community in our efforts.",
		},
		FeatureBlocks: []model.FeatureBlock{
			{ID: "candidates", Title: "Candidates", Description: "The slate, strong and qualified.", Link: "/candidates", Icon: "👥"},
			{ID: "endorsements", Title: "Endorsements", Description: "Supporters, loud and clear.", Link: "/endorsements", Icon: "🗳️"},
			{ID: "issues", Title: "Issues", Description: "Successes and plans.", Link: "/issues", Icon: "📋"},
		},
	}
}

func defaultAbout() model.AboutContent {
	return model.AboutContent{
		Title: "About Bridgewater Democrats",
		Sections: model.AboutSections{
			WhoWeAre: model.TitledText{
				Title:   "Who We Are",
				Content: "We're a committee of 24 Democrats elected by a caucus of Bridgewater residents who are themselves registered Democrats. We represent the Democratic Party in Bridgewater, and represent Bridgewater regionally, state-wide and nationally in the Democratic Party.",
			},
			Officers: model.TitledText{
				Title:   "Our Officers Are",
				Content: "Curtis S. Read, Chairman\nKathleen Creighton, Secretary\nCynthia Feuer, Treasurer",
			},
			WhatWeStriveFor: model.TitledList{
				Title: "What We Strive For",
				Items: []string{
					"Maintaining the small town advantage.",
					"Providing quality education.",
					"Preserving small towns in must-do state mandates.",
					"Continuing to maintain reasonable tax rates with rising demand for services.",
					"Continuing to balance pressure for growth with environment, open space, and quality of life.",
					"Providing reasonable housing for the elderly.",
					"Providing housing opportunities for younger generations.",
				},
			},
		},
		JoinUsMessage: "Would you like to join us? Click here to contact us.",
	}
}

func defaultCandidates() model.CandidatesContent {
	return model.CandidatesContent{
		Title:    "2021 Candidates",
		Subtitle: "Meet the dedicated individuals running to serve Bridgewater. Our slate represents experience, integrity, and a shared vision for our community's future.",
		Candidates: []model.Candidate{
			{
				ID:       "curtis-read",
				Name:     "Curtis Read",
				Position: "First Selectman",
				Image:    "https://ext.same-assets.com/1303823124/4232692335.jpeg",
				Bio:      "Curtis Read has served Bridgewater with dedication and integrity. As First Selectman, he has led initiatives to improve our town's infrastructure while preserving its small-town character.",
				Experience: []string{
					"Bridgewater First Selectman (2019-present)",
					"Town Planning Commission (2015-2019)",
					"Local Business Owner (20+ years)",
					"Volunteer Fire Department",
				},
				Priorities: []string{
					"Responsible fiscal management",
					"Infrastructure improvements",
					"Preserving Bridgewater's character",
					"Supporting local businesses",
				},
			},
			{
				ID:       "alan-brown",
				Name:     "Alan Brown",
				Position: "Selectman",
				Image:    "https://ext.same-assets.com/1303823124/642631049.jpeg",
				Bio:      "Alan Brown brings years of public service experience to the Board of Selectmen. His commitment to transparent government and community engagement makes him an invaluable team member.",
				Experience: []string{
					"Bridgewater Selectman (2019-present)",
					"Board of Education (2012-2019)",
					"Environmental Commission Chair",
					"Community Volunteer",
				},
				Priorities: []string{
					"Transparent governance",
					"Environmental protection",
					"Educational excellence",
					"Community engagement",
				},
			},
		},
		CallToAction: model.CallToAction{
			Title:   "Your Team, Your Town",
			Message: "This experienced team is committed to preserving what makes Bridgewater special while ensuring our town continues to thrive for future generations.",
			Buttons: []model.Button{
				{Text: "See Endorsements", Link: "/endorsements", Style: "primary"},
				{Text: "View Issues", Link: "/issues", Style: "secondary"},
			},
		},
	}
}

func defaultIssues() model.IssuesContent {
	return model.IssuesContent{
		Title:    "Issues & Accomplishments",
		Subtitle: "Over the past four years, our team has delivered on our promises while maintaining the values and character that make Bridgewater a special place to call home.",
		Sections: model.IssueSections{
			Accomplishments: model.AccomplishmentSection{
				Enabled: true,
				Title:   "Our Accomplishments",
				Items: []model.Accomplishment{
					{
						ID:          "infrastructure",
						Title:       "Infrastructure Improvements",
						Description: "Significant improvements to town roads, bridges, and public facilities while maintaining fiscal responsibility.",
						Details: []string{
							"Completed Route 202 bridge repairs",
							"Resurfaced 12 miles of town roads",
							"Upgraded town hall heating system",
							"Improved emergency services equipment",
						},
						Icon: "🏗️",
					},
					{
						ID:          "fiscal",
						Title:       "Fiscal Management",
						Description: "Maintained stable tax rates while investing in essential services and infrastructure.",
						Details: []string{
							"Zero tax increase for three consecutive years",
							"Improved bond rating from AA- to AA",
							"Reduced long-term debt by 15%",
							"Increased emergency fund reserves",
						},
						Icon: "💰",
					},
				},
			},
			FuturePlans: model.FuturePlanSection{
				Enabled: true,
				Title:   "Looking Forward: Our Plans",
				Items: []model.FuturePlan{
					{ID: "broadband", Title: "Broadband Expansion", Description: "Bring high-speed internet to all residents", Timeline: "2024-2025", Priority: "high"},
					{ID: "parks", Title: "Park Improvements", Description: "Upgrade playground equipment and trails", Timeline: "2024", Priority: "medium"},
				},
			},
		},
		CallToAction: model.CallToAction{
			Title:   "Continue the Progress",
			Message: "Our proven track record shows we deliver results while maintaining fiscal responsibility.",
			Buttons: []model.Button{
				{Text: "Meet the Team", Link: "/candidates", Style: "primary"},
				{Text: "Get Involved", Link: "/contact", Style: "secondary"},
			},
		},
	}
}

func defaultEndorsements() model.EndorsementsContent {
	return model.EndorsementsContent{
		Title:    "Endorsements",
		Subtitle: "Supporters from across our community and region recognize the exceptional leadership and results our team has delivered for Bridgewater.",
		IndividualEndorsements: []model.IndividualEndorsement{
			{
				ID:    "robert-thompson",
				Name:  "Robert Thompson",
				Title: "Former Mayor, Litchfield",
				Quote: "Curtis Read and his team have demonstrated exceptional leadership and fiscal responsibility. Bridgewater is fortunate to have such dedicated public servants.",
				Image: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200&h=200&fit=crop&crop=face",
			},
		},
		OrganizationEndorsements: []model.OrganizationEndorsement{
			{ID: "teachers-union", Name: "Bridgewater Teachers Association", Description: "Supporting education and community values"},
		},
		MediaEndorsements: []model.MediaEndorsement{
			{
				ID:       "litchfield-county-times",
				Outlet:   "Litchfield County Times",
				Headline: "Bridgewater Democrats Deliver Results",
				Excerpt:  "Fiscal responsibility meets community progress in Bridgewater...",
				Date:     "October 15, 2021",
			},
		},
	}
}

func defaultVolunteer() model.VolunteerContent {
	return model.VolunteerContent{
		Title:        "Volunteer Opportunities",
		Subtitle:     "Make a difference in your community by joining our team of dedicated volunteers.",
		Introduction: "Whether you have 30 minutes or 30 hours to spare, there's a way for you to contribute to our mission of strengthening Bridgewater's democratic voice.",
		Roles: []model.VolunteerRole{
			{
				ID:             "phone-banking",
				Title:          "Phone Banking",
				Description:    "Contact voters to share information about candidates and issues",
				TimeCommitment: "2-4 hours per week",
				Requirements:   []string{"Comfortable speaking on the phone", "Basic computer skills"},
				Tasks:          []string{"Make voter contact calls", "Update voter databases", "Follow up with interested voters"},
				Icon:           "📞",
			},
		},
		Benefits: []string{
			"Meet like-minded community members",
			"Gain valuable campaign experience",
			"Make a real difference in local politics",
			"Flexible scheduling to fit your availability",
		},
		CallToAction: model.VolunteerSignUp{
			Title:   "Ready to Get Involved?",
			Message: "Sign up below and we'll contact you with volunteer opportunities that match your interests and availability.",
			FormFields: []model.FormField{
				{Name: "name", Label: "Full Name", Type: "text", Required: true},
				{Name: "email", Label: "Email Address", Type: "email", Required: true},
				{Name: "phone", Label: "Phone Number", Type: "tel"},
				{Name: "interests", Label: "Areas of Interest", Type: "select", Options: []string{"Phone Banking", "Canvassing", "Event Planning", "Data Entry", "Social Media"}},
			},
		},
	}
}

func defaultContact() model.ContactContent {
	return model.ContactContent{
		Title:           "Contact Us",
		Subtitle:        "Get in touch with the Bridgewater Democratic Town Committee",
		ShowPhoneNumber: false,
		PhoneNumber:     "(860) 555-0123",
		Email:           "info@bridgewaterdems.org",
		MailingAddress:  committeeAddress(),
		ContactForm: model.ContactForm{
			Title:    "Send us a Message",
			Subtitle: "We'd love to hear from you. Send us a message and we'll respond as soon as possible.",
			Fields: []model.FormField{
				{Name: "name", Label: "Your Name", Type: "text", Required: true, Placeholder: "Enter your full name"},
				{Name: "email", Label: "Email Address", Type: "email", Required: true, Placeholder: "your@email.com"},
				{Name: "subject", Label: "Subject", Type: "text", Required: true, Placeholder: "What is this regarding?"},
				{Name: "message", Label: "Message", Type: "textarea", Required: true, Placeholder: "Your message here..."},
			},
			SubmitButtonText: "Send Message",
			SuccessMessage:   "Thank you for your message! We'll get back to you soon.",
		},
		OfficeHours: model.OfficeHours{
			Title: "Office Hours",
			Schedule: []string{
				"Monday - Friday: 9:00 AM - 5:00 PM",
				"Saturday: 10:00 AM - 2:00 PM",
				"Sunday: Closed",
			},
		},
		SocialMedia: []model.SocialAccount{
			{Platform: "Facebook", URL: "https://facebook.com/bridgewaterdems", IsActive: false},
			{Platform: "Twitter", URL: "https://twitter.com/bridgewaterdems", IsActive: false},
		},
	}
}
