package mail

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwdtc/bridgewater-dems/internal/model"
)

const (
	// PaymentMethod is the only online contribution channel.
	PaymentMethod = "PayPal"
	// DateLayout renders the confirmation date as month/day/year.
	DateLayout = "1/2/2006"

	placeholderDonorName      = "{donor_name}"
	placeholderDonationAmount = "{donation_amount}"
)

// FormatAdminNotification renders the field-by-field dump sent to the
// committee treasurer for every contributor form.
func FormatAdminNotification(rec model.SubmissionRecord, tpl model.AdminNotificationTemplate) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", tpl.Header)
	line("")
	line("%s", tpl.IntroText)
	line("")
	line("%s:", tpl.DataHeader)
	line("")
	line("%s", contributorName(rec))
	line("%s", rec.Street)
	line("%s, %s  %s", rec.City, rec.State, rec.Zip)
	line("%s", rec.Phone)
	line("%s", rec.Email)
	line("")
	line("Donation Amount: $%d", rec.Donation)
	line("")
	line("Under 18: %s", yesNo(rec.Under18))
	line("   If yes, age: %s", rec.Age)
	line("")
	line("Employer: %s", rec.Employer)
	line("Principal Occupation: %s", rec.Occupation)
	line("")
	line("Communicator Lobbyist? %s", rec.Lobbyist)
	line("Spouse or Dependent? %s", rec.LobbyistSpouse)
	line("    Elected official? %s", rec.ElectedOfficial)
	line("State Contractor or Potential State Contractor? %s", rec.Contractor)
	line("    Which branch(es)? %s", strings.Join(rec.ContractorBranches, ", "))
	line("    Elected official? %s", rec.ContractorOfficial)
	line("CAS Prequalification Holder? %s", rec.PrequalHolder)
	line("")
	line("Method of Contribution: %s", PaymentMethod)
	line("")
	line("Digitally Signed Certification: %s", rec.Signature)
	line("")
	line("--")
	line("%s", tpl.Footer)

	return strings.TrimSpace(b.String())
}

// FormatDonorConfirmation renders the thank-you message addressed to the
// contributor. date is passed in so equal inputs give byte-identical output.
func FormatDonorConfirmation(rec model.SubmissionRecord, tpl model.DonorConfirmationTemplate, date time.Time) string {
	r := strings.NewReplacer(
		placeholderDonorName, rec.DonorName(),
		placeholderDonationAmount, strconv.Itoa(rec.Donation),
	)

	parts := []string{
		r.Replace(tpl.Greeting),
		r.Replace(tpl.MainMessage),
		tpl.SummaryHeader,
		fmt.Sprintf("Donation Amount: %d\nMethod: %s\nDate: %s", rec.Donation, PaymentMethod, date.Format(DateLayout)),
		tpl.SupportMessage,
		tpl.ContactMessage,
		tpl.Closing,
		"--\n" + tpl.Footer,
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

// contributorName renders "First I. Last", dropping the initial when none was given.
func contributorName(rec model.SubmissionRecord) string {
	if rec.MiddleInitial == "" {
		return rec.FirstName + " " + rec.LastName
	}
	return fmt.Sprintf("%s %s. %s", rec.FirstName, rec.MiddleInitial, rec.LastName)
}

func yesNo(v bool) string {
	if v {
		return model.AnswerYes
	}
	return model.AnswerNo
}
