package inquiry

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	emailService "ziada-travel/services/email"
	inquiryService "ziada-travel/services/inquiry"
)

type fakeSender struct {
	sent []sentEmail
}

type sentEmail struct {
	Subject    string
	Recipients []string
}

func (f *fakeSender) Send(subject, htmlBody string, recipients []string) error {
	f.sent = append(f.sent, sentEmail{Subject: subject, Recipients: recipients})
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *fakeSender) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("gorm open error: %v", err)
	}

	sender := &fakeSender{}
	dispatcher := &emailService.Dispatcher{
		Sender: sender,
		Cfg: emailService.Config{
			AdminEmail: "info@ziadatoursandtravel.com",
			SiteURL:    "http://127.0.0.1:8080",
		},
	}

	app := fiber.New()
	controller := NewInquiryController(db, inquiryService.NewService(db, dispatcher), nil)
	app.Post("/corporates/", controller.SubmitCorporate)
	app.Post("/mice/", controller.SubmitMICE)

	return app, mock, sender
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestCorporateSubmissionEndToEnd(t *testing.T) {
	app, mock, sender := newTestApp(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "corporate_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	resp := postForm(t, app, "/corporates/", url.Values{
		"full_name":     {"John Director"},
		"email":         {"john@acme.example"},
		"company_name":  {"Acme Logistics"},
		"service_needs": {"Managed Corporate Travel"},
		"message":       {"We fly 25 staff monthly."},
	})

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	location := resp.Header.Get("Location")
	if !strings.Contains(location, "/inquiry-success/?id=21") {
		t.Errorf("redirect location = %q", location)
	}

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	if sender.sent[0].Subject != "We received your corporate travel inquiry" {
		t.Errorf("submitter subject = %q", sender.sent[0].Subject)
	}
	if sender.sent[1].Subject != "New corporate inquiry" {
		t.Errorf("staff subject = %q", sender.sent[1].Subject)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMICEValidationFailureReturnsJSON(t *testing.T) {
	app, mock, sender := newTestApp(t)

	resp := postForm(t, app, "/mice/", url.Values{
		"company_name": {"Acme Logistics"},
	})

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, fiber.MIMEApplicationJSON) {
		t.Errorf("content type = %q", ct)
	}
	if len(sender.sent) != 0 {
		t.Errorf("invalid submission sent %d emails", len(sender.sent))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}
