package entity

const (
	LandingTitle         = "Diffium To‑Do"
	LandingDescription   = "Next.js app scaffold. We’ll build the to‑do next."
	LandingSampleHeading = "Sample"
)

// plannedFeatures is the ordered list shown under the sample heading.
var plannedFeatures = [...]string{
	"Wire up basic to‑do list",
	"Add input + add/remove items",
	"Persist in localStorage",
}

type Page struct {
	Title         string
	Description   string
	SampleHeading string
	Plans         []string
}

// LandingPage returns a fresh copy of the landing page content.
func LandingPage() Page {
	return Page{
		Title:         LandingTitle,
		Description:   LandingDescription,
		SampleHeading: LandingSampleHeading,
		Plans:         PlannedFeatures(),
	}
}

func PlannedFeatures() []string {
	plans := make([]string, len(plannedFeatures))
	copy(plans, plannedFeatures[:])
	return plans
}

// Clone returns a deep copy so callers can't reach the receiver's plan slice.
func (p Page) Clone() Page {
	plans := make([]string, len(p.Plans))
	copy(plans, p.Plans)
	p.Plans = plans
	return p
}
