package inquiry

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ziada-travel/logger"
	inquiryModel "ziada-travel/models/inquiry"
	catalogService "ziada-travel/services/catalog"
	inquiryService "ziada-travel/services/inquiry"
	"ziada-travel/types"
	"ziada-travel/types/forms"
)

// InquiryController handles the public inquiry forms: rendering them,
// accepting submissions and showing the success page.
type InquiryController struct {
	Inquiries *inquiryService.Service
	Catalog   *catalogService.Service
	Logger    *logger.AsyncLogger
}

// NewInquiryController creates a new inquiry controller
func NewInquiryController(db *gorm.DB, inquiries *inquiryService.Service, asyncLogger *logger.AsyncLogger) *InquiryController {
	return &InquiryController{
		Inquiries: inquiries,
		Catalog:   catalogService.NewService(db),
		Logger:    asyncLogger,
	}
}

// formValues flattens the posted form body into the map the intake service
// validates against.
func formValues(c *fiber.Ctx, schema forms.Schema) map[string]string {
	values := make(map[string]string, len(schema))
	for field := range schema {
		values[field] = c.FormValue(field)
	}
	return values
}

func successRedirect(c *fiber.Ctx, kind string, result *inquiryService.Result) error {
	return c.Redirect(fmt.Sprintf("/inquiry-success/?id=%d&type=%s", result.ID, kind), fiber.StatusSeeOther)
}

// ContactForm renders the contact page.
func (ic *InquiryController) ContactForm(c *fiber.Ctx) error {
	return c.Render("contact", fiber.Map{
		"title":    "Contact Us",
		"subjects": inquiryModel.GetAllContactSubjects(),
	})
}

// SubmitContact accepts a contact form submission.
func (ic *InquiryController) SubmitContact(c *fiber.Ctx) error {
	values := formValues(c, inquiryService.ContactSchema)
	result, formErrs, err := ic.Inquiries.SubmitContact(values)
	if err != nil {
		logger.Error("Failed to save contact inquiry", err)
		return fiber.ErrInternalServerError
	}
	if formErrs != nil {
		return c.Status(fiber.StatusBadRequest).Render("contact", fiber.Map{
			"title":    "Contact Us",
			"subjects": inquiryModel.GetAllContactSubjects(),
			"errors":   formErrs,
			"values":   values,
		})
	}
	return successRedirect(c, "contact", result)
}

// CorporateForm renders the corporate travel page.
func (ic *InquiryController) CorporateForm(c *fiber.Ctx) error {
	return c.Render("corporates", fiber.Map{
		"title":        "Corporate Travel",
		"serviceNeeds": inquiryModel.GetAllServiceNeeds(),
	})
}

// SubmitCorporate accepts a corporate travel submission.
func (ic *InquiryController) SubmitCorporate(c *fiber.Ctx) error {
	values := formValues(c, inquiryService.CorporateSchema)
	result, formErrs, err := ic.Inquiries.SubmitCorporate(values)
	if err != nil {
		logger.Error("Failed to save corporate inquiry", err)
		return fiber.ErrInternalServerError
	}
	if formErrs != nil {
		return c.Status(fiber.StatusBadRequest).Render("corporates", fiber.Map{
			"title":        "Corporate Travel",
			"serviceNeeds": inquiryModel.GetAllServiceNeeds(),
			"errors":       formErrs,
			"values":       values,
		})
	}
	return successRedirect(c, "corporate", result)
}

// QuoteForm renders the quote request page, prefilled from the package slug
// in the query string when it resolves to an active package.
func (ic *InquiryController) QuoteForm(c *fiber.Ctx) error {
	data := fiber.Map{
		"title":        "Request a Quote",
		"budgetRanges": inquiryModel.GetAllBudgetRanges(),
	}
	if slug := c.Query("package"); slug != "" {
		pkg, err := ic.Catalog.GetPackage(slug)
		switch {
		case err == nil:
			data["package"] = pkg
		case errors.Is(err, catalogService.ErrNotFound):
			// Quote form still works without a package context.
		default:
			logger.Error("Failed to load package for quote form", err)
		}
	}
	return c.Render("quote", data)
}

// SubmitQuote accepts a package quote submission.
func (ic *InquiryController) SubmitQuote(c *fiber.Ctx) error {
	values := formValues(c, inquiryService.PackageQuoteSchema)
	result, formErrs, err := ic.Inquiries.SubmitPackageQuote(values)
	if err != nil {
		logger.Error("Failed to save package quote inquiry", err)
		return fiber.ErrInternalServerError
	}
	if formErrs != nil {
		return c.Status(fiber.StatusBadRequest).Render("quote", fiber.Map{
			"title":        "Request a Quote",
			"budgetRanges": inquiryModel.GetAllBudgetRanges(),
			"errors":       formErrs,
			"values":       values,
		})
	}
	return successRedirect(c, "quote", result)
}

// SubmitMICE accepts a meetings and events submission. The form posts from a
// section of the corporates page, so validation failures answer with JSON.
func (ic *InquiryController) SubmitMICE(c *fiber.Ctx) error {
	values := formValues(c, inquiryService.MICESchema)
	result, formErrs, err := ic.Inquiries.SubmitMICE(values)
	if err != nil {
		logger.Error("Failed to save MICE inquiry", err)
		return fiber.ErrInternalServerError
	}
	if formErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Data:    formErrs,
		})
	}
	return successRedirect(c, "mice", result)
}

// SubmitStudentTravel accepts a school group submission.
func (ic *InquiryController) SubmitStudentTravel(c *fiber.Ctx) error {
	values := formValues(c, inquiryService.StudentTravelSchema)
	result, formErrs, err := ic.Inquiries.SubmitStudentTravel(values)
	if err != nil {
		logger.Error("Failed to save student travel inquiry", err)
		return fiber.ErrInternalServerError
	}
	if formErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Data:    formErrs,
		})
	}
	return successRedirect(c, "student-travel", result)
}

// SubmitNGOTravel accepts an NGO travel submission.
func (ic *InquiryController) SubmitNGOTravel(c *fiber.Ctx) error {
	values := formValues(c, inquiryService.NGOTravelSchema)
	result, formErrs, err := ic.Inquiries.SubmitNGOTravel(values)
	if err != nil {
		logger.Error("Failed to save NGO travel inquiry", err)
		return fiber.ErrInternalServerError
	}
	if formErrs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Validation failed",
			Data:    formErrs,
		})
	}
	return successRedirect(c, "ngo-travel", result)
}

// Success renders the thank-you page shown after any accepted submission.
func (ic *InquiryController) Success(c *fiber.Ctx) error {
	return c.Render("inquiry_success", fiber.Map{
		"title":     "Thank You",
		"inquiryID": c.Query("id"),
		"kind":      c.Query("type"),
	})
}
