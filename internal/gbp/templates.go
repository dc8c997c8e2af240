package gbp

// Literal string tables. These were reviewed against Google Business Profile
// post policies; editing them changes published marketing copy, so keep
// changes deliberate and re-run the compliance tests.

const (
	// BaseLocation is the canonical service-area name used in every closing
	// sentence regardless of where the individual job happened.
	BaseLocation = "Springwater Township, Ontario"

	// DefaultBusinessName is used whenever the caller supplies no
	// franchisee branding override.
	DefaultBusinessName = "Pop-A-Lock Simcoe County"

	// defaultCTALink is the booking page used when no franchisee website
	// override is present.
	defaultCTALink = "https://www.popalock.ca/simcoe-county"
)

// policyRules is the fixed policy snapshot content, identical on every call.
var policyRules = []string{
	"Posts must be factual and verifiable - no exaggerated promises",
	"No restricted content (medical/financial claims, unverifiable guarantees)",
	"Clear, honest descriptions of services with transparent pricing information",
}

// variantKind tags the three generation strategies in their stable output
// order.
type variantKind int

const (
	variantSuccess variantKind = iota
	variantEducational
	variantPromotional
)

var variantKinds = []variantKind{variantSuccess, variantEducational, variantPromotional}

// VariantNames maps bundle indices to the strategy names used in dashboards
// and stored drafts.
var VariantNames = []string{"success", "educational", "promotional"}

// headlines is the fixed category x strategy headline table. Every entry is
// at most 60 characters.
var headlines = map[ServiceCategory][3]string{
	CategoryAutomotive: {
		"Fast Car Lockout Service in Simcoe County",
		"Expert Auto Locksmith Tips & Services",
		"24/7 Automotive Locksmith - Call Now!",
	},
	CategoryResidential: {
		"Professional Home Lock Service Completed",
		"Home Security: Lock Installation & Rekey",
		"Trusted Home Locksmith - Book Today",
	},
	CategoryCommercial: {
		"Commercial Security Upgrade Completed",
		"Business Lock Systems & Access Control",
		"Secure Your Business - Expert Locksmith",
	},
	CategoryRoadside: {
		"Emergency Roadside Lockout Resolved",
		"24/7 Mobile Locksmith Service Available",
		"Stranded? Call Our Emergency Locksmith!",
	},
}

// serviceDescriptions is the per-category capability sentence used by the
// success variant.
var serviceDescriptions = map[ServiceCategory]string{
	CategoryAutomotive:  "From emergency lockouts to complete key replacements, our automotive team handles transponder keys, proximity fobs, ignition repairs, and broken key extractions on site, using dealer-grade programming equipment so drivers get back on the road without a tow truck or a long dealership wait.",
	CategoryResidential: "Whether it is a lockout, a rekey after a move, or a full hardware upgrade, our residential team services deadbolts, knobs, lever sets, and smart locks, and every visit ends with a working demonstration so homeowners know exactly how their new locks operate.",
	CategoryCommercial:  "Our commercial team designs and services master key systems, access control, panic hardware, and high-security cylinders for offices, retail storefronts, and industrial facilities, coordinating around business hours so security upgrades never interrupt the workday.",
	CategoryRoadside:    "Our roadside units are dispatched around the clock for vehicle lockouts, trunk openings, and on-the-spot key cutting, arriving in fully equipped mobile workshops that can cut and program replacement keys wherever a driver happens to be stranded.",
}

// educationalFacts is the per-category fact sentence that opens the
// educational variant.
var educationalFacts = map[ServiceCategory]string{
	CategoryAutomotive:  "Did you know that most vehicles built after the mid-1990s use transponder chips that must be electronically paired with the ignition? A metal copy alone will turn in the lock but will not start the engine, which is why professional programming matters.",
	CategoryResidential: "Did you know that rekeying changes which key operates a lock without replacing the hardware itself? It is one of the most cost-effective steps a new homeowner can take, because previous owners, agents, and contractors may still hold copies of the old key.",
	CategoryCommercial:  "Did you know that a well-planned master key system lets a business control exactly which doors each employee can open, while management carries a single key? Restricted keyways add another layer by preventing unauthorized duplication at retail kiosks.",
	CategoryRoadside:    "Did you know that modern vehicles rarely respond to old-fashioned coat-hanger tricks? Power locks, side airbags, and weather sealing mean improvised entry attempts often cause expensive damage, while professional tools open the same door in minutes without a scratch.",
}

// promotionalOpenings is the per-category hook that opens the promotional
// variant.
var promotionalOpenings = map[ServiceCategory]string{
	CategoryAutomotive:  "Locked out of your car, missing a key, or dealing with an ignition that will not turn? Pop-A-Lock Simcoe County brings the full automotive locksmith shop to your driveway, workplace, or roadside with fully stocked mobile service units.",
	CategoryResidential: "Thinking about new locks, a rekey, or smart home upgrades? Pop-A-Lock Simcoe County makes home security simple with in-home assessments, professional installation, and clear explanations of every option before any work begins.",
	CategoryCommercial:  "Ready to take control of who holds the keys to your business? Pop-A-Lock Simcoe County builds and maintains commercial security systems sized for everything from single storefronts to multi-building facilities.",
	CategoryRoadside:    "Stranded with your keys on the wrong side of the door? Pop-A-Lock Simcoe County runs GPS-dispatched mobile units across the region so help is already nearby when you call, day or night.",
}

// trustStatements is the per-category credibility sentence shared by all
// three variants.
var trustStatements = map[ServiceCategory]string{
	CategoryAutomotive:  "As part of North America's largest locksmith franchise, our technicians are licensed, insured, background checked, and trained on current vehicle security systems, so every job is done right the first time.",
	CategoryResidential: "Every Pop-A-Lock technician who arrives at your door is licensed, insured, and background checked, and we leave your home exactly as tidy as we found it.",
	CategoryCommercial:  "Businesses across the region trust Pop-A-Lock because our commercial work is licensed, insured, and documented, with key control records your facility team can rely on during audits.",
	CategoryRoadside:    "Our emergency responders are licensed, insured, and trained in damage-free entry techniques, and we confirm an arrival window the moment your call is dispatched.",
}

// imageStyles suggests photography per strategy, with an alternate phrasing
// when the job already has a submitted photo.
var imageStyles = map[variantKind][2]string{
	variantSuccess: {
		"A clean photo of a technician at work with the branded uniform and service vehicle in frame.",
		"Use the submitted job photo, cropped to highlight the completed work with the branded vehicle or uniform visible.",
	},
	variantEducational: {
		"A simple, well-lit photo or graphic illustrating the service being explained; bright, minimal text.",
		"Pair the submitted job photo with a short annotation that illustrates the service being explained.",
	},
	variantPromotional: {
		"A branded service vehicle in front of a recognizable local backdrop; bold and eye-catching.",
		"Use the submitted job photo as a bold hero image with the branded vehicle or logo visible.",
	},
}
