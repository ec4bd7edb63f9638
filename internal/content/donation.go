package content

import "github.com/bwdtc/bridgewater-dems/internal/model"

// DefaultDonation returns a fresh copy of the compiled-in donation document.
func DefaultDonation() model.DonationContent {
	return model.DonationContent{
		DonatePage: model.DonatePage{
			Title:                      "Send Check or Pay Online?",
			Subtitle:                   "Thank you for choosing to donate! We really appreciate your help.",
			OptionsTitle:               "Two options:",
			Option1Title:               "If you'd like to send money online",
			Option1Description:         "(this is fast, easy and secure) click this link to donate using PayPal.",
			Option1Note:                "→ You will see a form you must fill out first, then you will be taken to PayPal. ←",
			Option2Title:               "If you'd prefer to send a check",
			Option2Description:         "you must fill out a Connecticut SEEC donor form so that we can certify your contribution.",
			Option2Warning:             "We can't accept your donation if you don't.",
			Option2Instructions:        "Please click this button,",
			Option2MailingInstructions: "fill out the donor form, print it and send it with your check to:",
			MailingAddress:             committeeAddress(),
			ThankYouMessage:            "Thank you!",
		},
		ThankYouPage: model.ThankYouPage{
			Title:          "Thank You for Your Donation!",
			Subtitle:       "Your contribution to the Bridgewater Democratic Town Committee is greatly appreciated and will help us continue our important work for our community.",
			SummaryTitle:   "Donation Summary",
			NextStepsTitle: "What Happens Next?",
			NextSteps: []string{
				"You will receive a confirmation email at the address you provided",
				"Your SEEC Individual Contributor Form has been processed and filed",
				"Your donation will be used to support Democratic candidates and causes in Bridgewater",
				"You may receive periodic updates about our activities and upcoming events",
			},
			EngagementTitle:    "Keep Supporting Democracy",
			EngagementSubtitle: "There are many ways to stay involved with the Bridgewater Democratic Town Committee:",
			ContactNote:        "Questions about your donation?",
		},
		SEECForm: model.SEECFormCopy{
			Title:                   "Connecticut SEEC Individual Contributor Form",
			Subtitle:                "This form is required by Connecticut state law before making your donation. After completing this form, you will be redirected to PayPal to process your payment.",
			ContributorSectionTitle: "NAME OF INDIVIDUAL CONTRIBUTOR:",
			DonationSectionTitle:    "DONATION AMOUNT:",
			AddressSectionTitle:     "RESIDENTIAL ADDRESS*",
			EmploymentSectionTitle:  "Employment Information",
			LegalSectionTitle:       "Legal Disclosure Requirements",
			LegalInstructions:       "PLEASE SCROLL DOWN TO REVIEW THE DEFINITIONS BELOW, THEN SCROLL BACK HERE TO ANSWER EACH OF THE FOLLOWING:",
			CertificationTitle:      "CERTIFICATION:",
			CertificationText:       "I hereby certify and state that all of the information disclosed by me and set forth above on this contributor card is true and accurate to the best of my knowledge and belief. I certify that I am either a United States citizen or a foreign national with permanent resident status in the United States. I certify that this contribution is being made from my personal funds, is not being reimbursed in any manner, is not being made as a loan, and is not an otherwise prohibited contribution.",
			SignatureInstructions:   "To sign this form digitally, please type your full name as you entered it above:",
			SubmitMessage:           "Thank you for your time.",
			SubmitButtonText:        "Send",
		},
		EmailTemplates: model.EmailTemplates{
			AdminNotification: model.AdminNotificationTemplate{
				Subject:    "New SEEC Individual Contributor Form Submission",
				Header:     "*** PLEASE DO NOT REPLY TO THIS EMAIL. THIS IS A SENDING SERVER ONLY ***",
				IntroText:  "A contributor just filled out an SEEC Individual Contributor Form prior to donating via PayPal.",
				DataHeader: "Here is the information the contributor provided:",
				Footer:     "This e-mail was sent from an online form on the Bridgewater Democratic Town Committee website (http://bridgewaterdems.org)",
			},
			DonorConfirmation: model.DonorConfirmationTemplate{
				Subject:        "Thank you for your donation - Bridgewater DTC",
				Greeting:       "Dear {donor_name},",
				MainMessage:    "Thank you for your donation of ${donation_amount} to the Bridgewater Democratic Town Committee!",
				SummaryHeader:  "Your SEEC Individual Contributor Form has been received and processed. Here's a summary of your contribution:",
				SupportMessage: "Your support helps us continue our important work for the Bridgewater community. We truly appreciate your commitment to Democratic values and local engagement.",
				ContactMessage: "If you have any questions about your donation, please don't hesitate to contact us.",
				Closing:        "Best regards,\nBridgewater Democratic Town Committee",
				Footer:         "This is an automated confirmation email. Please do not reply to this email.",
			},
		},
	}
}

// DefaultRecipients receive the contributor form notification when no list
// has been configured.
func DefaultRecipients() []string {
	return []string{
		"treasurer@bridgewaterdems.org",
		"admin@bridgewaterdems.org",
	}
}

func committeeAddress() model.MailingAddress {
	return model.MailingAddress{
		Organization: "Bridgewater Democratic Town Committee",
		AddressLine1: "P.O. Box 132",
		AddressLine2: "Bridgewater, CT 06752",
	}
}
