package model

// DonationContent is the donation-flow document stored under the donationContent key.
// It is merged against its own defaults independently of SiteContent.
type DonationContent struct {
	DonatePage     DonatePage     `json:"donatePage"`
	ThankYouPage   ThankYouPage   `json:"thankYouPage"`
	SEECForm       SEECFormCopy   `json:"seecForm"`
	EmailTemplates EmailTemplates `json:"emailTemplates"`
}

type DonatePage struct {
	Title                      string         `json:"title"`
	Subtitle                   string         `json:"subtitle"`
	OptionsTitle               string         `json:"optionsTitle"`
	Option1Title               string         `json:"option1Title"`
	Option1Description         string         `json:"option1Description"`
	Option1Note                string         `json:"option1Note"`
	Option2Title               string         `json:"option2Title"`
	Option2Description         string         `json:"option2Description"`
	Option2Warning             string         `json:"option2Warning"`
	Option2Instructions        string         `json:"option2Instructions"`
	Option2MailingInstructions string         `json:"option2MailingInstructions"`
	MailingAddress             MailingAddress `json:"mailingAddress"`
	ThankYouMessage            string         `json:"thankYouMessage"`
}

type ThankYouPage struct {
	Title              string   `json:"title"`
	Subtitle           string   `json:"subtitle"`
	SummaryTitle       string   `json:"summaryTitle"`
	NextStepsTitle     string   `json:"nextStepsTitle"`
	NextSteps          []string `json:"nextSteps"`
	EngagementTitle    string   `json:"engagementTitle"`
	EngagementSubtitle string   `json:"engagementSubtitle"`
	ContactNote        string   `json:"contactNote"`
}

// SEECFormCopy holds the headings and legal text of the contributor form page.
type SEECFormCopy struct {
	Title                   string `json:"title"`
	Subtitle                string `json:"subtitle"`
	ContributorSectionTitle string `json:"contributorSectionTitle"`
	DonationSectionTitle    string `json:"donationSectionTitle"`
	AddressSectionTitle     string `json:"addressSectionTitle"`
	EmploymentSectionTitle  string `json:"employmentSectionTitle"`
	LegalSectionTitle       string `json:"legalSectionTitle"`
	LegalInstructions       string `json:"legalInstructions"`
	CertificationTitle      string `json:"certificationTitle"`
	CertificationText       string `json:"certificationText"`
	SignatureInstructions   string `json:"signatureInstructions"`
	SubmitMessage           string `json:"submitMessage"`
	SubmitButtonText        string `json:"submitButtonText"`
}

type EmailTemplates struct {
	AdminNotification AdminNotificationTemplate `json:"adminNotification"`
	DonorConfirmation DonorConfirmationTemplate `json:"donorConfirmation"`
}

type AdminNotificationTemplate struct {
	Subject    string `json:"subject"`
	Header     string `json:"header"`
	IntroText  string `json:"introText"`
	DataHeader string `json:"dataHeader"`
	Footer     string `json:"footer"`
}

// DonorConfirmationTemplate text may contain the {donor_name} and
// {donation_amount} placeholders.
type DonorConfirmationTemplate struct {
	Subject        string `json:"subject"`
	Greeting       string `json:"greeting"`
	MainMessage    string `json:"mainMessage"`
	SummaryHeader  string `json:"summaryHeader"`
	SupportMessage string `json:"supportMessage"`
	ContactMessage string `json:"contactMessage"`
	Closing        string `json:"closing"`
	Footer         string `json:"footer"`
}
