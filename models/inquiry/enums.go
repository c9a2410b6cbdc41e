package inquiry

// ContactSubject is the closed set of subjects a contact inquiry can carry.
type ContactSubject string

const (
	SubjectSafariExperience ContactSubject = "Safari Experience"
	SubjectBeachHoliday     ContactSubject = "Beach Holiday"
	SubjectCorporateTravel  ContactSubject = "Corporate Travel"
	SubjectTicketing        ContactSubject = "Ticketing & Reservations"
)

func (cs ContactSubject) String() string {
	return string(cs)
}

func (cs ContactSubject) IsValid() bool {
	switch cs {
	case SubjectSafariExperience, SubjectBeachHoliday, SubjectCorporateTravel, SubjectTicketing:
		return true
	default:
		return false
	}
}

// GetAllContactSubjects returns every valid contact subject.
func GetAllContactSubjects() []ContactSubject {
	return []ContactSubject{
		SubjectSafariExperience,
		SubjectBeachHoliday,
		SubjectCorporateTravel,
		SubjectTicketing,
	}
}

// ServiceNeed is the closed set of corporate service needs.
type ServiceNeed string

const (
	ServiceNeedManagedCorporate ServiceNeed = "Managed Corporate Travel"
	ServiceNeedExecutiveVIP     ServiceNeed = "Executive & VIP Travel"
	ServiceNeedConferenceEvent  ServiceNeed = "Conference & Event Travel"
	ServiceNeedGroupProject     ServiceNeed = "Group & Project Travel"
	ServiceNeedPolicyCost       ServiceNeed = "Travel Policy & Cost Optimization"
	ServiceNeedOther            ServiceNeed = "Other"
)

func (sn ServiceNeed) String() string {
	return string(sn)
}

func (sn ServiceNeed) IsValid() bool {
	switch sn {
	case ServiceNeedManagedCorporate, ServiceNeedExecutiveVIP, ServiceNeedConferenceEvent,
		ServiceNeedGroupProject, ServiceNeedPolicyCost, ServiceNeedOther:
		return true
	default:
		return false
	}
}

// GetAllServiceNeeds returns every valid corporate service need.
func GetAllServiceNeeds() []ServiceNeed {
	return []ServiceNeed{
		ServiceNeedManagedCorporate,
		ServiceNeedExecutiveVIP,
		ServiceNeedConferenceEvent,
		ServiceNeedGroupProject,
		ServiceNeedPolicyCost,
		ServiceNeedOther,
	}
}

// BudgetRange is the optional budget bracket on a package quote.
type BudgetRange string

const (
	BudgetUnder1000  BudgetRange = "Under $1,000"
	Budget1000To2500 BudgetRange = "$1,000 - $2,500"
	Budget2500To5000 BudgetRange = "$2,500 - $5,000"
	BudgetOver5000   BudgetRange = "Over $5,000"
)

func (br BudgetRange) String() string {
	return string(br)
}

func (br BudgetRange) IsValid() bool {
	switch br {
	case BudgetUnder1000, Budget1000To2500, Budget2500To5000, BudgetOver5000:
		return true
	default:
		return false
	}
}

// GetAllBudgetRanges returns every valid budget range.
func GetAllBudgetRanges() []BudgetRange {
	return []BudgetRange{BudgetUnder1000, Budget1000To2500, Budget2500To5000, BudgetOver5000}
}
