package inquiry

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ziada-travel/logger"
	"ziada-travel/models/catalog"
	inquiryModel "ziada-travel/models/inquiry"
	"ziada-travel/services/email"
	"ziada-travel/types/forms"
	"ziada-travel/utils"
)

// Service runs the inquiry intake pipeline: validate the submission, persist
// exactly one record, then attempt the notification pair. A dispatch failure
// never rolls the record back; it only flags the result so staff can follow up.
type Service struct {
	DB         *gorm.DB
	Dispatcher *email.Dispatcher
}

func NewService(db *gorm.DB, dispatcher *email.Dispatcher) *Service {
	return &Service{DB: db, Dispatcher: dispatcher}
}

// Result reports the outcome of an accepted submission.
type Result struct {
	ID                  uint
	NotificationPending bool
}

// notify sends both messages and converts any dispatch failure into the
// pending flag. The record is already committed when this runs.
func (s *Service) notify(kind string, id uint, n email.Notification, submitterEmail string) bool {
	if s.Dispatcher == nil {
		return true
	}
	err := s.Dispatcher.NotifyInquiry(n, submitterEmail, s.Dispatcher.Cfg.AdminEmail)
	if err != nil {
		logger.Warning(fmt.Sprintf("%s inquiry %d saved but notification failed: %v", kind, id, err))
		return true
	}
	return false
}

func (s *Service) siteURL() string {
	if s.Dispatcher == nil {
		return ""
	}
	return s.Dispatcher.Cfg.SiteURL
}

// SubmitContact handles the general contact form.
func (s *Service) SubmitContact(values map[string]string) (*Result, forms.Errors, error) {
	if errs := ContactSchema.Validate(values); errs != nil {
		return nil, errs, nil
	}

	rec := inquiryModel.ContactInquiry{
		FullName:       strings.TrimSpace(values["full_name"]),
		Email:          strings.TrimSpace(values["email"]),
		Phone:          strings.TrimSpace(values["phone"]),
		Company:        strings.TrimSpace(values["company"]),
		Subject:        inquiryModel.ContactSubject(strings.TrimSpace(values["subject"])),
		Message:        strings.TrimSpace(values["message"]),
		PrivacyConsent: forms.ParseBool(values["privacy_consent"]),
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, nil, fmt.Errorf("saving contact inquiry: %w", err)
	}

	pending := s.notify("contact", rec.ID, contactNotification(&rec, s.siteURL()), rec.Email)
	return &Result{ID: rec.ID, NotificationPending: pending}, nil, nil
}

// SubmitCorporate handles the corporate travel form.
func (s *Service) SubmitCorporate(values map[string]string) (*Result, forms.Errors, error) {
	if errs := CorporateSchema.Validate(values); errs != nil {
		return nil, errs, nil
	}

	rec := inquiryModel.CorporateInquiry{
		FullName:         strings.TrimSpace(values["full_name"]),
		Email:            strings.TrimSpace(values["email"]),
		Phone:            strings.TrimSpace(values["phone"]),
		CompanyName:      strings.TrimSpace(values["company_name"]),
		RoleTitle:        strings.TrimSpace(values["role_title"]),
		MonthlyTravelers: forms.ParseUint(values["monthly_travelers"]),
		ServiceNeeds:     inquiryModel.ServiceNeed(strings.TrimSpace(values["service_needs"])),
		Message:          strings.TrimSpace(values["message"]),
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, nil, fmt.Errorf("saving corporate inquiry: %w", err)
	}

	pending := s.notify("corporate", rec.ID, corporateNotification(&rec, s.siteURL()), rec.Email)
	return &Result{ID: rec.ID, NotificationPending: pending}, nil, nil
}

// SubmitPackageQuote handles the quote form. The submitted package slug is
// matched against active packages: on a hit the record links the package and
// snapshots its current values; on a miss the reference stays nil and the
// snapshot keeps whatever the form carried.
func (s *Service) SubmitPackageQuote(values map[string]string) (*Result, forms.Errors, error) {
	if errs := PackageQuoteSchema.Validate(values); errs != nil {
		return nil, errs, nil
	}

	rec := inquiryModel.PackageQuoteInquiry{
		PackageTitle:    strings.TrimSpace(values["package_title"]),
		PackageSlug:     strings.TrimSpace(values["package_slug"]),
		PackageLocation: strings.TrimSpace(values["package_location"]),
		PackageDuration: strings.TrimSpace(values["package_duration"]),
		FullName:        strings.TrimSpace(values["full_name"]),
		Email:           strings.TrimSpace(values["email"]),
		Phone:           strings.TrimSpace(values["phone"]),
		BudgetRange:     inquiryModel.BudgetRange(strings.TrimSpace(values["budget_range"])),
		SpecialRequests: strings.TrimSpace(values["special_requests"]),
	}

	if travelers := forms.ParseUint(values["number_of_travelers"]); travelers != nil {
		rec.NumberOfTravelers = *travelers
	} else {
		rec.NumberOfTravelers = 1
	}
	if raw := strings.TrimSpace(values["travel_date"]); raw != "" {
		if parsed, err := utils.ParseTravelDate(raw); err == nil {
			rec.TravelDate = &parsed
		}
	}
	if raw := strings.TrimSpace(values["package_price"]); raw != "" {
		if price, err := decimal.NewFromString(raw); err == nil {
			rec.PackagePrice = &price
		}
	}

	if rec.PackageSlug != "" {
		var pkg catalog.Package
		err := s.DB.Where("slug = ? AND active = ?", rec.PackageSlug, true).First(&pkg).Error
		switch {
		case err == nil:
			rec.PackageID = &pkg.ID
			rec.PackageTitle = pkg.Title
			rec.PackageLocation = pkg.Location
			rec.PackageDuration = pkg.Duration
			price := pkg.Price
			rec.PackagePrice = &price
		case err != gorm.ErrRecordNotFound:
			return nil, nil, fmt.Errorf("resolving package %q: %w", rec.PackageSlug, err)
		}
	}

	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, nil, fmt.Errorf("saving package quote inquiry: %w", err)
	}

	pending := s.notify("package quote", rec.ID, quoteNotification(&rec, s.siteURL()), rec.Email)
	return &Result{ID: rec.ID, NotificationPending: pending}, nil, nil
}

// SubmitMICE handles the meetings and events form.
func (s *Service) SubmitMICE(values map[string]string) (*Result, forms.Errors, error) {
	if errs := MICESchema.Validate(values); errs != nil {
		return nil, errs, nil
	}

	rec := inquiryModel.MICEInquiry{
		CompanyName:   strings.TrimSpace(values["company_name"]),
		ContactPerson: strings.TrimSpace(values["contact_person"]),
		Email:         strings.TrimSpace(values["email"]),
		PhoneNumber:   strings.TrimSpace(values["phone_number"]),
		EventType:     strings.TrimSpace(values["event_type"]),
		EventDetails:  strings.TrimSpace(values["event_details"]),
	}
	if attendees := forms.ParseUint(values["attendees"]); attendees != nil {
		rec.Attendees = *attendees
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, nil, fmt.Errorf("saving MICE inquiry: %w", err)
	}

	pending := s.notify("MICE", rec.ID, miceNotification(&rec, s.siteURL()), rec.Email)
	return &Result{ID: rec.ID, NotificationPending: pending}, nil, nil
}

// SubmitStudentTravel handles the school group form.
func (s *Service) SubmitStudentTravel(values map[string]string) (*Result, forms.Errors, error) {
	if errs := StudentTravelSchema.Validate(values); errs != nil {
		return nil, errs, nil
	}

	rec := inquiryModel.StudentTravelInquiry{
		SchoolName:    strings.TrimSpace(values["school_name"]),
		ContactPerson: strings.TrimSpace(values["contact_person"]),
		Email:         strings.TrimSpace(values["email"]),
		PhoneNumber:   strings.TrimSpace(values["phone_number"]),
		ProgramStage:  strings.TrimSpace(values["program_stage"]),
		TravelDetails: strings.TrimSpace(values["travel_details"]),
	}
	if students := forms.ParseUint(values["number_of_students"]); students != nil {
		rec.NumberOfStudents = *students
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, nil, fmt.Errorf("saving student travel inquiry: %w", err)
	}

	pending := s.notify("student travel", rec.ID, studentNotification(&rec, s.siteURL()), rec.Email)
	return &Result{ID: rec.ID, NotificationPending: pending}, nil, nil
}

// SubmitNGOTravel handles the NGO and humanitarian form.
func (s *Service) SubmitNGOTravel(values map[string]string) (*Result, forms.Errors, error) {
	if errs := NGOTravelSchema.Validate(values); errs != nil {
		return nil, errs, nil
	}

	rec := inquiryModel.NGOTravelInquiry{
		OrganizationName:           strings.TrimSpace(values["organization_name"]),
		ContactPerson:              strings.TrimSpace(values["contact_person"]),
		Email:                      strings.TrimSpace(values["email"]),
		PhoneNumber:                strings.TrimSpace(values["phone_number"]),
		OrganizationType:           strings.TrimSpace(values["organization_type"]),
		TravelPurpose:              strings.TrimSpace(values["travel_purpose"]),
		TravelDetails:              strings.TrimSpace(values["travel_details"]),
		SustainabilityRequirements: forms.ParseBool(values["sustainability_requirements"]),
	}
	if travelers := forms.ParseUint(values["number_of_travelers"]); travelers != nil {
		rec.NumberOfTravelers = *travelers
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, nil, fmt.Errorf("saving NGO travel inquiry: %w", err)
	}

	pending := s.notify("NGO travel", rec.ID, ngoNotification(&rec, s.siteURL()), rec.Email)
	return &Result{ID: rec.ID, NotificationPending: pending}, nil, nil
}
