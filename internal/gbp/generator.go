package gbp

import (
	"fmt"
	"strings"
	"time"
)

const maxBodyWords = 300

// Generator produces PostBundles. It holds only an injected clock, so a
// single instance is safe for concurrent use and repeated calls with the
// same input and date return identical output.
type Generator struct {
	now func() time.Time
}

// New returns a Generator using the wall clock.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock returns a Generator with a caller-supplied clock. Tests use
// it to pin the policy snapshot date.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate builds three post drafts for a completed job. The only error
// condition is an unknown service category, which callers should treat as a
// configuration failure rather than retry.
func (g *Generator) Generate(job JobContext) (*PostBundle, error) {
	expertise, ok := expertiseTable[job.ServiceType]
	if !ok {
		return nil, fmt.Errorf("unknown service category %q", job.ServiceType)
	}

	date := g.now().UTC().Format("2006-01-02")
	loc := displayLocation(job.Location)

	variants := make([]PostVariant, 0, len(variantKinds))
	for _, kind := range variantKinds {
		variants = append(variants, buildVariant(kind, job, expertise, loc))
	}

	return &PostBundle{
		PolicySnapshot: PolicySnapshot{
			DateChecked:   date,
			RelevantRules: append([]string(nil), policyRules...),
		},
		Variants:           variants,
		Hashtags:           firstN(expertise.Hashtags, 5),
		ImplementationNote: implementationNote(loc),
		CampaignID:         fmt.Sprintf("gbp-%s-%s", job.ServiceType, date),
	}, nil
}

// FormatForDisplay renders one variant as a ready-to-paste post. Out-of-range
// indices fall back to the first variant.
func FormatForDisplay(bundle *PostBundle, variantIndex int) string {
	if variantIndex < 0 || variantIndex >= len(bundle.Variants) {
		variantIndex = 0
	}
	v := bundle.Variants[variantIndex]
	return v.Headline + "\n\n" + v.Body + "\n\n" + strings.Join(bundle.Hashtags, " ")
}

// TipsForPosting projects the image guidance off one variant.
func TipsForPosting(bundle *PostBundle, variantIndex int) PostingTips {
	if variantIndex < 0 || variantIndex >= len(bundle.Variants) {
		variantIndex = 0
	}
	v := bundle.Variants[variantIndex]
	return PostingTips{ImageStyle: v.SuggestedImageStyle, AltText: v.AltText}
}

func buildVariant(kind variantKind, job JobContext, expertise ServiceExpertise, loc string) PostVariant {
	styles := imageStyles[kind]
	style := styles[0]
	if job.PhotoURL != "" {
		style = styles[1]
	}

	return PostVariant{
		Headline:            headlines[job.ServiceType][kind],
		Body:                ensureWordCount(buildBody(kind, job, expertise, loc)),
		CTALabel:            expertise.CTA,
		CTALink:             ctaLink(job),
		SuggestedImageStyle: style,
		AltText:             altText(kind, job, loc),
	}
}

func buildBody(kind variantKind, job JobContext, expertise ServiceExpertise, loc string) string {
	category := job.ServiceType
	closing := fmt.Sprintf("We proudly serve %s and the surrounding communities. %s", BaseLocation, expertise.CTA)

	var sentences []string
	switch kind {
	case variantEducational:
		sentences = []string{
			educationalFacts[category],
			fmt.Sprintf("Our %s services include %s, %s, %s, and %s.",
				category, expertise.Keywords[0], expertise.Keywords[1], expertise.Keywords[2], expertise.Keywords[3]),
			fmt.Sprintf("Most recently, %s completed %s%s in %s.",
				techOrTeam(job), jobPhrase(job), vehicleClause(job, " for a "), loc),
			fmt.Sprintf("Every visit comes with %s and %s.", expertise.Benefits[2], expertise.Benefits[3]),
			trustStatements[category],
			closing,
		}
	case variantPromotional:
		sentences = []string{
			promotionalOpenings[category],
			fmt.Sprintf("Every service call includes %s, %s, %s, and %s.",
				expertise.Benefits[0], expertise.Benefits[1], expertise.Benefits[2], expertise.Benefits[3]),
			fmt.Sprintf("Recent work in %s included %s%s, finished promptly and professionally.",
				loc, jobPhrase(job), vehicleClause(job, " for a ")),
			trustStatements[category],
			closing,
		}
	default: // variantSuccess
		sentences = []string{
			fmt.Sprintf("Another successful %s completed by %s!", jobPhrase(job), businessName(job)),
			fmt.Sprintf("%s recently helped a customer%s in %s, handling everything on site from arrival to final testing.",
				techClause(job), vehicleClause(job, " with a "), loc),
			serviceDescriptions[category],
			fmt.Sprintf("Work like this is just one part of the %s we handle across the county every day.", expertise.Keywords[0]),
			fmt.Sprintf("Customers choose us for %s and %s.", expertise.Benefits[0], expertise.Benefits[1]),
			trustStatements[category],
			closing,
		}
	}

	return strings.Join(sentences, " ") + contactBlock(job)
}

// vehicleInfo joins the present vehicle fields in year-make-model order.
// It returns "" outside the automotive category even when vehicle fields are
// populated, so non-automotive bodies never carry vehicle text.
func vehicleInfo(job JobContext) string {
	if job.ServiceType != CategoryAutomotive {
		return ""
	}
	fields := make([]string, 0, 3)
	for _, f := range []string{job.VehicleYear, job.VehicleMake, job.VehicleModel} {
		if s := strings.TrimSpace(f); s != "" {
			fields = append(fields, s)
		}
	}
	return strings.Join(fields, " ")
}

// vehicleClause splices vehicle info into a sentence, or contributes nothing
// at all when no vehicle info applies. Never emits placeholders.
func vehicleClause(job JobContext, prefix string) string {
	info := vehicleInfo(job)
	if info == "" {
		return ""
	}
	return prefix + info
}

// sanitizeLocation reduces a free-form comma-delimited address to a
// city-level string so street addresses never appear in published posts.
// The segment indices are a fixed contract with upstream address formats:
// with four or more segments, segment 2 is the city and segment 3 the
// municipality; with exactly three, the street is assumed first and dropped;
// shorter inputs pass through unchanged.
func sanitizeLocation(raw string) string {
	segments := strings.Split(raw, ",")
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	switch {
	case len(segments) >= 4:
		city, municipality := segments[2], segments[3]
		switch {
		case city != "" && municipality != "" && city != municipality:
			return city + ", " + municipality
		case city != "":
			return city
		case municipality != "":
			return municipality
		default:
			return raw
		}
	case len(segments) == 3:
		return segments[1] + ", " + segments[2]
	default:
		return raw
	}
}

// displayLocation sanitizes the job location, falling back to the canonical
// service area when the caller supplied none.
func displayLocation(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return BaseLocation
	}
	return sanitizeLocation(raw)
}

// ensureWordCount caps a body at 300 words with an ellipsis. It never pads
// short bodies: the 150-word floor is met by template design, not enforced
// here.
func ensureWordCount(body string) string {
	words := strings.Fields(body)
	if len(words) <= maxBodyWords {
		return body
	}
	return strings.Join(words[:maxBodyWords], " ") + "..."
}

func contactBlock(job JobContext) string {
	parts := make([]string, 0, 2)
	if job.FranchiseePhone != "" {
		parts = append(parts, "📞 Call: "+job.FranchiseePhone)
	}
	if job.FranchiseeWebsite != "" {
		parts = append(parts, "🌐 Visit: "+job.FranchiseeWebsite)
	}
	if len(parts) == 0 {
		return ""
	}
	return "\n\n" + strings.Join(parts, " | ")
}

func businessName(job JobContext) string {
	if name := strings.TrimSpace(job.FranchiseeName); name != "" {
		return name
	}
	return DefaultBusinessName
}

func ctaLink(job JobContext) string {
	if link := strings.TrimSpace(job.FranchiseeWebsite); link != "" {
		return link
	}
	return defaultCTALink
}

func jobPhrase(job JobContext) string {
	desc := strings.ToLower(strings.TrimSpace(job.JobDescription))
	if desc == "" {
		return "service call"
	}
	return desc
}

func techClause(job JobContext) string {
	if name := strings.TrimSpace(job.TechName); name != "" {
		return "Our technician " + name
	}
	return "Our technician"
}

func techOrTeam(job JobContext) string {
	if name := strings.TrimSpace(job.TechName); name != "" {
		return name
	}
	return "our team"
}

func altText(kind variantKind, job JobContext, loc string) string {
	name := businessName(job)
	switch kind {
	case variantEducational:
		return fmt.Sprintf("%s technician demonstrating %s in %s", name, jobPhrase(job), loc)
	case variantPromotional:
		return fmt.Sprintf("%s service vehicle ready for %s in %s", name, jobPhrase(job), loc)
	default:
		return fmt.Sprintf("%s technician completing %s in %s", name, jobPhrase(job), loc)
	}
}

func implementationNote(loc string) string {
	return fmt.Sprintf("Three post drafts are provided for this job in %s: "+
		"Variant A presents the completed job as social proof, Variant B educates customers about the service, "+
		"and Variant C is a conversion-focused promotional post. All three are written to comply with Google "+
		"Business Profile post policies; review the drafts, choose one, and attach a photo before publishing.", loc)
}

func firstN(values []string, n int) []string {
	if len(values) < n {
		n = len(values)
	}
	return append([]string(nil), values[:n]...)
}
