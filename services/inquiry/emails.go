package inquiry

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	inquiryModel "ziada-travel/models/inquiry"
	"ziada-travel/services/email"
)

// All notification bodies share one layout: a heading, an intro line and the
// inquiry payload as label/value rows, with a link back to the site.
var inquiryEmailTmpl = template.Must(template.New("inquiry_email").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <h2>{{.Heading}}</h2>
  <p>{{.Intro}}</p>
  <table cellpadding="6" cellspacing="0" border="0">
    {{range .Rows}}<tr>
      <td style="font-weight: bold; vertical-align: top;">{{.Label}}</td>
      <td>{{.Value}}</td>
    </tr>{{end}}
  </table>
  {{if .SiteURL}}<p><a href="{{.SiteURL}}">Ziada Tours and Travel</a></p>{{end}}
</body>
</html>
`))

type emailRow struct {
	Label string
	Value string
}

type emailContext struct {
	Heading string
	Intro   string
	Rows    []emailRow
	SiteURL string
}

func renderEmail(heading, intro string, rows []emailRow, siteURL string) string {
	var b strings.Builder
	if err := inquiryEmailTmpl.Execute(&b, emailContext{
		Heading: heading,
		Intro:   intro,
		Rows:    rows,
		SiteURL: siteURL,
	}); err != nil {
		// The template is static; execution can only fail on a broken writer.
		return ""
	}
	return b.String()
}

func notification(userSubject, staffSubject, submitterName string, rows []emailRow, siteURL string) email.Notification {
	return email.Notification{
		SubmitterSubject: userSubject,
		SubmitterHTML: renderEmail(
			userSubject,
			fmt.Sprintf("Hello %s, thank you for reaching out. Our team will get back to you shortly. Here is a copy of what you sent us:", submitterName),
			rows, siteURL),
		StaffSubject: staffSubject,
		StaffHTML: renderEmail(
			staffSubject,
			"A new inquiry was submitted on the website:",
			rows, siteURL),
	}
}

func contactNotification(rec *inquiryModel.ContactInquiry, siteURL string) email.Notification {
	rows := []emailRow{
		{"Full name", rec.FullName},
		{"Email", rec.Email},
		{"Phone", rec.Phone},
		{"Company", rec.Company},
		{"Subject", rec.Subject.String()},
		{"Message", rec.Message},
	}
	return notification("We received your request", "New contact inquiry", rec.FullName, rows, siteURL)
}

func corporateNotification(rec *inquiryModel.CorporateInquiry, siteURL string) email.Notification {
	rows := []emailRow{
		{"Full name", rec.FullName},
		{"Email", rec.Email},
		{"Phone", rec.Phone},
		{"Company", rec.CompanyName},
		{"Role", rec.RoleTitle},
		{"Service needs", rec.ServiceNeeds.String()},
		{"Message", rec.Message},
	}
	if rec.MonthlyTravelers != nil {
		rows = append(rows, emailRow{"Monthly travelers", fmt.Sprintf("%d", *rec.MonthlyTravelers)})
	}
	return notification("We received your corporate travel inquiry", "New corporate inquiry", rec.FullName, rows, siteURL)
}

func quoteNotification(rec *inquiryModel.PackageQuoteInquiry, siteURL string) email.Notification {
	rows := []emailRow{
		{"Package", rec.PackageTitle},
		{"Location", rec.PackageLocation},
		{"Duration", rec.PackageDuration},
		{"Full name", rec.FullName},
		{"Email", rec.Email},
		{"Phone", rec.Phone},
		{"Travelers", fmt.Sprintf("%d", rec.NumberOfTravelers)},
		{"Budget range", rec.BudgetRange.String()},
		{"Special requests", rec.SpecialRequests},
	}
	if rec.PackagePrice != nil {
		rows = append(rows, emailRow{"Listed price", "$" + rec.PackagePrice.StringFixed(2)})
	}
	if rec.TravelDate != nil {
		rows = append(rows, emailRow{"Travel date", rec.TravelDate.Format(time.DateOnly)})
	}
	return notification("We received your package quote request", "New package quote inquiry", rec.FullName, rows, siteURL)
}

func miceNotification(rec *inquiryModel.MICEInquiry, siteURL string) email.Notification {
	rows := []emailRow{
		{"Company", rec.CompanyName},
		{"Contact person", rec.ContactPerson},
		{"Email", rec.Email},
		{"Phone", rec.PhoneNumber},
		{"Event type", rec.EventType},
		{"Attendees", fmt.Sprintf("%d", rec.Attendees)},
		{"Details", rec.EventDetails},
	}
	return notification("We received your MICE inquiry", "New MICE inquiry", rec.ContactPerson, rows, siteURL)
}

func studentNotification(rec *inquiryModel.StudentTravelInquiry, siteURL string) email.Notification {
	rows := []emailRow{
		{"School", rec.SchoolName},
		{"Contact person", rec.ContactPerson},
		{"Email", rec.Email},
		{"Phone", rec.PhoneNumber},
		{"Program stage", rec.ProgramStage},
		{"Students", fmt.Sprintf("%d", rec.NumberOfStudents)},
		{"Details", rec.TravelDetails},
	}
	return notification("We received your student travel inquiry", "New student travel inquiry", rec.ContactPerson, rows, siteURL)
}

func ngoNotification(rec *inquiryModel.NGOTravelInquiry, siteURL string) email.Notification {
	rows := []emailRow{
		{"Organization", rec.OrganizationName},
		{"Contact person", rec.ContactPerson},
		{"Email", rec.Email},
		{"Phone", rec.PhoneNumber},
		{"Organization type", rec.OrganizationType},
		{"Travel purpose", rec.TravelPurpose},
		{"Travelers", fmt.Sprintf("%d", rec.NumberOfTravelers)},
		{"Details", rec.TravelDetails},
		{"Sustainability requirements", yesNo(rec.SustainabilityRequirements)},
	}
	return notification("We received your NGO travel inquiry", "New NGO travel inquiry", rec.ContactPerson, rows, siteURL)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
