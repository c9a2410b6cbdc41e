package inquiry

import (
	inquiryModel "ziada-travel/models/inquiry"
	"ziada-travel/types/forms"
)

// One declarative schema per form, constructed once. The Hint values feed the
// form templates; validation never mutates these maps.

var ContactSchema = forms.Schema{
	"full_name":       {Required: true, MaxLen: 100, Hint: "Brian Otieno"},
	"email":           {Required: true, MaxLen: 255, Kind: forms.KindEmail, Hint: "brian.otieno@gmail.com"},
	"phone":           {MaxLen: 20, Hint: "07XX XXX XXX (optional)"},
	"company":         {MaxLen: 100, Hint: "Ziada Holdings (optional)"},
	"subject":         {Required: true, MaxLen: 200, Enum: contactSubjectChoices()},
	"message":         {Required: true, Hint: "E.g. 5-day Maasai Mara safari for a family of 4, travel dates in June."},
	"privacy_consent": {Kind: forms.KindBool},
}

var CorporateSchema = forms.Schema{
	"full_name":         {Required: true, MaxLen: 100},
	"email":             {Required: true, MaxLen: 255, Kind: forms.KindEmail},
	"phone":             {MaxLen: 20},
	"company_name":      {Required: true, MaxLen: 200},
	"role_title":        {MaxLen: 120},
	"monthly_travelers": {Kind: forms.KindPositiveInt},
	"service_needs":     {Required: true, MaxLen: 120, Enum: serviceNeedChoices()},
	"message":           {Required: true},
}

var PackageQuoteSchema = forms.Schema{
	"full_name":           {Required: true, MaxLen: 100},
	"email":               {Required: true, MaxLen: 255, Kind: forms.KindEmail},
	"phone":               {Required: true, MaxLen: 20},
	"number_of_travelers": {Required: true, Kind: forms.KindPositiveInt},
	"travel_date":         {Kind: forms.KindDate},
	"budget_range":        {MaxLen: 120, Enum: budgetRangeChoices()},
	"special_requests":    {},
	"package_slug":        {MaxLen: 220},
	"package_title":       {MaxLen: 200},
	"package_location":    {MaxLen: 150},
	"package_duration":    {MaxLen: 100},
	"package_price":       {},
}

var MICESchema = forms.Schema{
	"company_name":   {Required: true, MaxLen: 200},
	"contact_person": {Required: true, MaxLen: 100},
	"email":          {Required: true, MaxLen: 255, Kind: forms.KindEmail},
	"phone_number":   {Required: true, MaxLen: 20},
	"event_type":     {Required: true, MaxLen: 100},
	"attendees":      {Required: true, Kind: forms.KindPositiveInt},
	"event_details":  {Required: true},
}

var StudentTravelSchema = forms.Schema{
	"school_name":        {Required: true, MaxLen: 200},
	"contact_person":     {Required: true, MaxLen: 100},
	"email":              {Required: true, MaxLen: 255, Kind: forms.KindEmail},
	"phone_number":       {Required: true, MaxLen: 20},
	"program_stage":      {Required: true, MaxLen: 100},
	"number_of_students": {Required: true, Kind: forms.KindPositiveInt},
	"travel_details":     {Required: true},
}

var NGOTravelSchema = forms.Schema{
	"organization_name":           {Required: true, MaxLen: 200},
	"contact_person":              {Required: true, MaxLen: 100},
	"email":                       {Required: true, MaxLen: 255, Kind: forms.KindEmail},
	"phone_number":                {Required: true, MaxLen: 20},
	"organization_type":           {Required: true, MaxLen: 100},
	"travel_purpose":              {Required: true},
	"number_of_travelers":         {Required: true, Kind: forms.KindPositiveInt},
	"travel_details":              {Required: true},
	"sustainability_requirements": {Kind: forms.KindBool},
}

func contactSubjectChoices() []string {
	subjects := inquiryModel.GetAllContactSubjects()
	choices := make([]string, 0, len(subjects))
	for _, s := range subjects {
		choices = append(choices, s.String())
	}
	return choices
}

func serviceNeedChoices() []string {
	needs := inquiryModel.GetAllServiceNeeds()
	choices := make([]string, 0, len(needs))
	for _, n := range needs {
		choices = append(choices, n.String())
	}
	return choices
}

func budgetRangeChoices() []string {
	ranges := inquiryModel.GetAllBudgetRanges()
	choices := make([]string, 0, len(ranges))
	for _, r := range ranges {
		choices = append(choices, r.String())
	}
	return choices
}
