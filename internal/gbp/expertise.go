package gbp

// ServiceExpertise is the static per-category knowledge record. Order
// matters: the first four keywords and benefits are used positionally by the
// variant builders, and the first five hashtags are emitted on every bundle.
// Scenarios are retained for dashboard tooling even though generation does
// not consume them.
type ServiceExpertise struct {
	Keywords  []string
	Scenarios []string
	Benefits  []string
	CTA       string
	Hashtags  []string
}

// expertiseTable must have an entry for every ServiceCategory with at least
// 4 keywords, 4 benefits, and 5 hashtags. A missing or short entry is a
// configuration bug; TestExpertiseTableShape guards the invariant.
var expertiseTable = map[ServiceCategory]ServiceExpertise{
	CategoryAutomotive: {
		Keywords: []string{
			"car lockouts",
			"transponder key programming",
			"key fob replacement",
			"ignition cylinder repair",
			"broken key extraction",
		},
		Scenarios: []string{
			"keys locked inside a running vehicle",
			"lost car keys with no spare",
			"key fob that stopped responding",
			"key snapped off in the ignition",
		},
		Benefits: []string{
			"fast on-site arrival times",
			"mobile service that comes to you",
			"dealer-grade key cutting and programming equipment",
			"upfront pricing before any work begins",
			"coverage for all makes and models",
		},
		CTA:      "Call Pop-A-Lock Simcoe County today for fast, professional automotive locksmith service.",
		Hashtags: []string{"#PopALock", "#AutoLocksmith", "#CarLockout", "#SimcoeCounty", "#CarKeyReplacement", "#MobileLocksmith"},
	},
	CategoryResidential: {
		Keywords: []string{
			"home lockouts",
			"lock rekeying",
			"deadbolt installation",
			"smart lock setup",
			"door hardware repair",
		},
		Scenarios: []string{
			"locked out after a late shift",
			"moving into a new home",
			"broken key in the front door",
			"upgrading to keyless entry",
		},
		Benefits: []string{
			"background-checked technicians at your door",
			"respect for your home and your schedule",
			"clear pricing quoted before work begins",
			"same-day appointments in most cases",
			"hardware recommendations matched to your budget",
		},
		CTA:      "Book Pop-A-Lock Simcoe County today and make your home more secure.",
		Hashtags: []string{"#PopALock", "#HomeSecurity", "#Locksmith", "#SimcoeCounty", "#LockRekey", "#DeadboltInstall"},
	},
	CategoryCommercial: {
		Keywords: []string{
			"master key systems",
			"access control installation",
			"commercial lock repair",
			"panic bar hardware",
			"high-security cylinders",
		},
		Scenarios: []string{
			"employee turnover requiring rekeys",
			"office lockouts during business hours",
			"upgrading storefront door hardware",
			"restricted key control programs",
		},
		Benefits: []string{
			"minimal disruption to business operations",
			"scalable master key planning",
			"detailed key control documentation for facility managers",
			"priority response for commercial accounts",
			"code-compliant exit hardware installation",
		},
		CTA:      "Contact Pop-A-Lock Simcoe County to review your business security needs.",
		Hashtags: []string{"#PopALock", "#CommercialLocksmith", "#AccessControl", "#SimcoeCounty", "#BusinessSecurity", "#MasterKey"},
	},
	CategoryRoadside: {
		Keywords: []string{
			"emergency vehicle lockouts",
			"roadside key cutting",
			"trunk lockouts",
			"mobile key programming",
			"damage-free vehicle entry",
		},
		Scenarios: []string{
			"stranded in a parking lot at night",
			"keys locked in the trunk",
			"a lockout with kids or pets inside the vehicle",
			"no spare key far from home",
		},
		Benefits: []string{
			"around-the-clock availability",
			"GPS-dispatched mobile units already in your area",
			"damage-free entry tools and techniques",
			"a confirmed arrival window the moment you call",
			"priority handling for child and pet lockouts",
		},
		CTA:      "Save our number and call Pop-A-Lock Simcoe County any time, day or night.",
		Hashtags: []string{"#PopALock", "#RoadsideAssistance", "#EmergencyLocksmith", "#SimcoeCounty", "#CarLockout", "#24Hours"},
	},
}

// Expertise returns the knowledge record for a category. The second return
// is false for categories outside the table.
func Expertise(category ServiceCategory) (ServiceExpertise, bool) {
	e, ok := expertiseTable[category]
	return e, ok
}

// Categories lists the known service categories in stable order.
func Categories() []ServiceCategory {
	return []ServiceCategory{CategoryAutomotive, CategoryResidential, CategoryCommercial, CategoryRoadside}
}
