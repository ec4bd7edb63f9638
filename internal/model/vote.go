package model

type VoteContent struct {
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Introduction string       `json:"introduction"`
	Tabs         VoteTabs     `json:"tabs"`
	CallToAction CallToAction `json:"callToAction"`
	VotingRights VotingRights `json:"votingRights"`
}

type VoteTabs struct {
	Registration RegistrationTab `json:"registration"`
	Locations    LocationsTab    `json:"locations"`
	Dates        DatesTab        `json:"dates"`
	Candidates   BallotTab       `json:"candidates"`
}

// TabHeader is the common heading shared by every voting-information tab.
type TabHeader struct {
	Enabled  bool   `json:"enabled"`
	Label    string `json:"label"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type RegistrationTab struct {
	TabHeader
	Content RegistrationDetails `json:"content"`
}

type RegistrationDetails struct {
	WhoCanRegister TitledList   `json:"whoCanRegister"`
	HowToRegister  TitledList   `json:"howToRegister"`
	WhatYouNeed    TitledList   `json:"whatYouNeed"`
	CheckStatus    StatusCheck  `json:"checkStatus"`
	NeedHelp       HelpContacts `json:"needHelp"`
}

type StatusCheck struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Buttons     []Button `json:"buttons"`
}

type HelpContacts struct {
	Title    string        `json:"title"`
	Contacts []HelpContact `json:"contacts"`
}

// HelpContact is one FAQ-style contact line. Type is phone, email or address when set.
type HelpContact struct {
	Type  string `json:"type,omitempty"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type LocationsTab struct {
	TabHeader
	PollingLocations []PollingLocation `json:"pollingLocations"`
	DistrictLookup   DistrictLookup    `json:"districtLookup"`
}

type PollingLocation struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Districts     []string `json:"districts"`
	Hours         string   `json:"hours"`
	Accessibility string   `json:"accessibility"`
	Parking       string   `json:"parking"`
	Contact       string   `json:"contact"`
}

type DistrictLookup struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
}

type DatesTab struct {
	TabHeader
	ImportantDates       []ElectionDate `json:"importantDates"`
	ElectionDayReminders TitledList     `json:"electionDayReminders"`
}

// ElectionDate is a deadline or election event. Type is one of registration,
// early_voting, election or absentee.
type ElectionDate struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type BallotTab struct {
	TabHeader
	CandidateInfo []BallotOffice `json:"candidateInfo"`
	LearnMore     StatusCheck    `json:"learnMore"`
}

type BallotOffice struct {
	Office     string            `json:"office"`
	Candidates []BallotCandidate `json:"candidates"`
}

type BallotCandidate struct {
	Name        string `json:"name"`
	Party       string `json:"party"`
	Description string `json:"description,omitempty"`
}

type VotingRights struct {
	Title           string       `json:"title"`
	YouHaveTheRight TitledList   `json:"youHaveTheRight"`
	NeedAssistance  HelpContacts `json:"needAssistance"`
}
