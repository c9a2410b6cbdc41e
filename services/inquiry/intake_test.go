package inquiry

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ziada-travel/services/email"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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
	return db, mock
}

type fakeSender struct {
	sent []fakeMessage
	fail bool
}

type fakeMessage struct {
	Subject    string
	HTML       string
	Recipients []string
}

func (f *fakeSender) Send(subject, htmlBody string, recipients []string) error {
	f.sent = append(f.sent, fakeMessage{Subject: subject, HTML: htmlBody, Recipients: recipients})
	if f.fail {
		return &email.DispatchError{Provider: "test", Detail: "boom"}
	}
	return nil
}

func newTestService(t *testing.T, fail bool) (*Service, sqlmock.Sqlmock, *fakeSender) {
	t.Helper()
	db, mock := newMockDB(t)
	sender := &fakeSender{fail: fail}
	dispatcher := &email.Dispatcher{
		Sender: sender,
		Cfg: email.Config{
			AdminEmail: "info@ziadatoursandtravel.com",
			SiteURL:    "http://127.0.0.1:8080",
		},
	}
	return NewService(db, dispatcher), mock, sender
}

func validContactValues() map[string]string {
	return map[string]string{
		"full_name":       "Jane Visitor",
		"email":           "jane@example.com",
		"phone":           "0712345678",
		"subject":         "Safari Experience",
		"message":         "Looking for a 5-day safari in June.",
		"privacy_consent": "on",
	}
}

func TestSubmitContactValidationFailureHasNoSideEffects(t *testing.T) {
	service, mock, sender := newTestService(t, false)

	values := validContactValues()
	values["email"] = "not-an-email"

	result, formErrs, err := service.SubmitContact(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("invalid submission produced result %+v", result)
	}
	if formErrs == nil || formErrs["email"] == "" {
		t.Fatalf("expected email validation error, got %v", formErrs)
	}
	if len(sender.sent) != 0 {
		t.Errorf("invalid submission sent %d emails", len(sender.sent))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

func TestSubmitContactPersistsAndNotifies(t *testing.T) {
	service, mock, sender := newTestService(t, false)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contact_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	result, formErrs, err := service.SubmitContact(validContactValues())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if formErrs != nil {
		t.Fatalf("unexpected validation errors: %v", formErrs)
	}
	if result.ID != 7 {
		t.Errorf("result id = %d, want 7", result.ID)
	}
	if result.NotificationPending {
		t.Error("notification flagged pending on successful dispatch")
	}

	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	if sender.sent[0].Subject != "We received your request" {
		t.Errorf("submitter subject = %q", sender.sent[0].Subject)
	}
	if sender.sent[0].Recipients[0] != "jane@example.com" {
		t.Errorf("submitter recipient = %q", sender.sent[0].Recipients[0])
	}
	if sender.sent[1].Subject != "New contact inquiry" {
		t.Errorf("staff subject = %q", sender.sent[1].Subject)
	}
	if sender.sent[1].Recipients[0] != "info@ziadatoursandtravel.com" {
		t.Errorf("staff recipient = %q", sender.sent[1].Recipients[0])
	}
	if !strings.Contains(sender.sent[1].HTML, "Jane Visitor") {
		t.Error("staff notification does not carry the submission")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSubmitContactDispatchFailureKeepsRecord(t *testing.T) {
	service, mock, _ := newTestService(t, true)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "contact_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	result, formErrs, err := service.SubmitContact(validContactValues())
	if err != nil {
		t.Fatalf("dispatch failure must not surface as error: %v", err)
	}
	if formErrs != nil {
		t.Fatalf("unexpected validation errors: %v", formErrs)
	}
	if result.ID != 8 {
		t.Errorf("result id = %d", result.ID)
	}
	if !result.NotificationPending {
		t.Error("dispatch failure not flagged as pending")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSubmitCorporateSubjects(t *testing.T) {
	service, mock, sender := newTestService(t, false)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "corporate_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	_, formErrs, err := service.SubmitCorporate(map[string]string{
		"full_name":         "John Director",
		"email":             "john@acme.example",
		"company_name":      "Acme Logistics",
		"monthly_travelers": "25",
		"service_needs":     "Managed Corporate Travel",
		"message":           "We need a managed travel program.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if formErrs != nil {
		t.Fatalf("unexpected validation errors: %v", formErrs)
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

func TestSubmitPackageQuoteLinksActivePackage(t *testing.T) {
	service, mock, sender := newTestService(t, false)

	mock.ExpectQuery(`SELECT (.+) FROM "packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "duration", "price", "location", "active"}).
			AddRow(4, "Diani Beach Luxury Escape", "diani-beach-luxury-escape", "4 Days / 3 Nights", "950", "Diani Beach, Kenya", true))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "package_quote_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	result, formErrs, err := service.SubmitPackageQuote(map[string]string{
		"full_name":           "Jane Visitor",
		"email":               "jane@example.com",
		"phone":               "0712345678",
		"number_of_travelers": "2",
		"package_slug":        "diani-beach-luxury-escape",
		"package_title":       "Stale Title From Form",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if formErrs != nil {
		t.Fatalf("unexpected validation errors: %v", formErrs)
	}
	if result.ID != 11 {
		t.Errorf("result id = %d", result.ID)
	}

	// The notification snapshots the catalog's current package details, not
	// whatever the form carried.
	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	if !strings.Contains(sender.sent[1].HTML, "Diani Beach Luxury Escape") {
		t.Error("staff notification missing linked package title")
	}
	if strings.Contains(sender.sent[1].HTML, "Stale Title From Form") {
		t.Error("staff notification kept the stale form title")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSubmitPackageQuoteUnknownSlugKeepsSnapshot(t *testing.T) {
	service, mock, sender := newTestService(t, false)

	mock.ExpectQuery(`SELECT (.+) FROM "packages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "package_quote_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	result, formErrs, err := service.SubmitPackageQuote(map[string]string{
		"full_name":           "Jane Visitor",
		"email":               "jane@example.com",
		"phone":               "0712345678",
		"number_of_travelers": "2",
		"package_slug":        "retired-package",
		"package_title":       "Retired Safari Special",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if formErrs != nil {
		t.Fatalf("unexpected validation errors: %v", formErrs)
	}
	if result.ID != 12 {
		t.Errorf("result id = %d", result.ID)
	}
	if !strings.Contains(sender.sent[1].HTML, "Retired Safari Special") {
		t.Error("staff notification missing submitted snapshot title")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSubmitMICEPersists(t *testing.T) {
	service, mock, sender := newTestService(t, false)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "mice_inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	result, formErrs, err := service.SubmitMICE(map[string]string{
		"company_name":   "Acme Logistics",
		"contact_person": "John Director",
		"email":          "john@acme.example",
		"phone_number":   "0712345678",
		"event_type":     "Annual Conference",
		"attendees":      "120",
		"event_details":  "Three-day conference in Nairobi.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if formErrs != nil {
		t.Fatalf("unexpected validation errors: %v", formErrs)
	}
	if result.ID != 5 {
		t.Errorf("result id = %d", result.ID)
	}
	if sender.sent[0].Subject != "We received your MICE inquiry" {
		t.Errorf("submitter subject = %q", sender.sent[0].Subject)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
