package content

import "github.com/bwdtc/bridgewater-dems/internal/model"

const pollHours = "6:00 AM - 8:00 PM"

func defaultVote() model.VoteContent {
	return model.VoteContent{
		Title:        "Voting Information",
		Subtitle:     "Everything you need to know to make your voice heard in Bridgewater elections.",
		Introduction: "Voting is one of our most fundamental rights and responsibilities. Here's how to participate in Bridgewater's democratic process.",
		Tabs: model.VoteTabs{
			Registration: registrationTab(),
			Locations:    locationsTab(),
			Dates:        datesTab(),
			Candidates:   ballotTab(),
		},
		CallToAction: model.CallToAction{
			Title:   "Make Your Voice Heard",
			Message: "Every vote matters in Bridgewater. Your participation helps shape our community's future and ensures that our values are represented in local government.",
			Buttons: []model.Button{
				{Text: "🗳️ Check My Registration", Style: "primary"},
				{Text: "📍 Find My Polling Place", Style: "secondary"},
			},
		},
		VotingRights: model.VotingRights{
			Title: "Your Voting Rights",
			YouHaveTheRight: model.TitledList{
				Title: "You Have the Right To:",
				Items: []string{
					"Vote if you're in line when polls close",
					"Request help if you have a disability",
					"Vote privately and independently",
					"Receive a new ballot if you make a mistake",
					"Report voting problems to election officials",
				},
			},
			NeedAssistance: model.HelpContacts{
				Title: "Need Assistance?",
				Contacts: []model.HelpContact{
					{Label: "📞 Election Protection Hotline", Value: "1-866-OUR-VOTE"},
					{Label: "📧 Secretary of State", Value: "elections@ct.gov"},
					{Label: "🌐 Connecticut Voting Rights", Value: "ct.gov/vote"},
					{Label: "📱 Text Help", Value: `Text "CTHELP" to 67369 for assistance`},
				},
			},
		},
	}
}

func registrationTab() model.RegistrationTab {
	return model.RegistrationTab{
		TabHeader: model.TabHeader{
			Enabled:  true,
			Label:    "Registration",
			Title:    "Voter Registration",
			Subtitle: "Get registered to vote in Bridgewater elections",
		},
		Content: model.RegistrationDetails{
			WhoCanRegister: model.TitledList{
				Title: "Who Can Register?",
				Items: []string{
					"U.S. citizen",
					"Connecticut resident",
					"At least 18 years old by Election Day",
					"Not currently serving a felony sentence",
				},
			},
			HowToRegister: model.TitledList{
				Title: "How to Register",
				Items: []string{
					"Online at ct.gov/vote",
					"By mail using voter registration form",
					"In person at Town Clerk's office",
					"At DMV when getting driver's license",
				},
			},
			WhatYouNeed: model.TitledList{
				Title: "What You Need",
				Items: []string{
					"Valid Connecticut driver's license OR",
					"Last 4 digits of Social Security number",
					"Current address in Bridgewater",
				},
			},
			CheckStatus: model.StatusCheck{
				Title:       "Check Your Status",
				Description: "Verify your voter registration status and find your polling location.",
				Buttons: []model.Button{
					{Text: "Check Registration Status", Style: "primary"},
					{Text: "Register Online", Style: "secondary"},
				},
			},
			NeedHelp: model.HelpContacts{
				Title: "Need Help?",
				Contacts: []model.HelpContact{
					{Type: "phone", Label: "Town Clerk", Value: "(860) 555-0123"},
					{Type: "email", Label: "Email", Value: "clerk@bridgewater.gov"},
					{Type: "address", Label: "Town Hall", Value: "100 Main St\nMonday-Friday 9AM-5PM"},
				},
			},
		},
	}
}

func locationsTab() model.LocationsTab {
	return model.LocationsTab{
		TabHeader: model.TabHeader{
			Enabled:  true,
			Label:    "Polling Locations",
			Title:    "Polling Locations",
			Subtitle: "Find your designated polling place",
		},
		PollingLocations: []model.PollingLocation{
			{
				ID:            "community-center",
				Name:          "Bridgewater Community Center",
				Address:       "123 Main Street, Bridgewater, CT 06752",
				Districts:     []string{"District 1", "District 2"},
				Hours:         pollHours,
				Accessibility: "Fully Accessible",
				Parking:       "Free parking available",
				Contact:       "(860) 555-0123",
			},
			{
				ID:            "burnham-library",
				Name:          "Burnham Library",
				Address:       "456 Library Lane, Bridgewater, CT 06752",
				Districts:     []string{"District 3"},
				Hours:         pollHours,
				Accessibility: "Wheelchair Accessible",
				Parking:       "Street parking",
				Contact:       "(860) 555-0145",
			},
			{
				ID:            "elementary-school",
				Name:          "Bridgewater Elementary School",
				Address:       "789 School Drive, Bridgewater, CT 06752",
				Districts:     []string{"District 4", "District 5"},
				Hours:         pollHours,
				Accessibility: "Fully Accessible",
				Parking:       "Large parking lot",
				Contact:       "(860) 555-0167",
			},
		},
		DistrictLookup: model.DistrictLookup{
			Title:       "Don't Know Your District?",
			Description: "Use our district lookup tool to find your voting district and polling location.",
			ButtonText:  "Find My District",
		},
	}
}

func datesTab() model.DatesTab {
	return model.DatesTab{
		TabHeader: model.TabHeader{
			Enabled:  true,
			Label:    "Important Dates",
			Title:    "Important Election Dates",
			Subtitle: "Key dates and deadlines for upcoming elections",
		},
		ImportantDates: []model.ElectionDate{
			{ID: "registration-deadline", Title: "Voter Registration Deadline", Date: "2024-10-29", Description: "Last day to register to vote for the November election", Type: "registration"},
			{ID: "absentee-deadline", Title: "Absentee Ballot Application Deadline", Date: "2024-10-30", Description: "Last day to apply for an absentee ballot", Type: "absentee"},
			{ID: "early-voting", Title: "Early Voting Begins", Date: "2024-11-04", Description: "Early voting period starts at designated locations", Type: "early_voting"},
			{ID: "election-day", Title: "Election Day", Date: "2024-11-05", Description: "General Election - Polls open 6:00 AM to 8:00 PM", Type: "election"},
		},
		ElectionDayReminders: model.TitledList{
			Title: "🗳️ Election Day Reminders",
			Items: []string{
				"Polls are open from 6:00 AM to 8:00 PM",
				"Bring a valid ID if you're a first-time voter",
				"You can still vote if you're in line when polls close",
				"Report any voting issues to election officials",
				"No campaigning within 75 feet of polling places",
			},
		},
	}
}

func ballotTab() model.BallotTab {
	const incumbent = "Incumbent seeking re-election"
	return model.BallotTab{
		TabHeader: model.TabHeader{
			Enabled:  true,
			Label:    "Candidates",
			Title:    "2024 Election Candidates",
			Subtitle: "Learn about the candidates on your ballot",
		},
		CandidateInfo: []model.BallotOffice{
			{
				Office: "First Selectman",
				Candidates: []model.BallotCandidate{
					{Name: "Curtis Read", Party: "Democratic", Description: incumbent},
					{Name: "John Smith", Party: "Republican"},
				},
			},
			{
				Office: "Selectman",
				Candidates: []model.BallotCandidate{
					{Name: "Alan Brown", Party: "Democratic", Description: incumbent},
					{Name: "Mary Johnson", Party: "Republican"},
				},
			},
			{
				Office: "Town Clerk",
				Candidates: []model.BallotCandidate{
					{Name: "Susan Miller", Party: "Democratic", Description: incumbent},
					{Name: "Robert Wilson", Party: "Republican"},
				},
			},
			{
				Office: "Board of Education (3 seats)",
				Candidates: []model.BallotCandidate{
					{Name: "Jennifer Davis", Party: "Democratic"},
					{Name: "Michael Thompson", Party: "Democratic", Description: incumbent},
					{Name: "Sarah Williams", Party: "Republican"},
					{Name: "David Martinez", Party: "Republican", Description: incumbent},
				},
			},
		},
		LearnMore: model.StatusCheck{
			Title:       "📋 Learn More About Candidates",
			Description: "Research candidates' positions on issues important to Bridgewater.",
			Buttons: []model.Button{
				{Text: "View Democratic Candidates", Link: "/candidates", Style: "primary"},
				{Text: "Read About Issues", Link: "/issues", Style: "secondary"},
			},
		},
	}
}
