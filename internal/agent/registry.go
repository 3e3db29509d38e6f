package agent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"leadgate/internal/model"
)

// Registry maps role tags to their profiles. Profiles are loaded once and
// treated as read-only for the life of the process.
type Registry struct {
	profiles map[string]model.RoleProfile
}

// NewRegistry creates a registry from the given profiles
func NewRegistry(profiles []model.RoleProfile) *Registry {
	byRole := make(map[string]model.RoleProfile, len(profiles))
	for _, p := range profiles {
		byRole[p.Role] = p
	}
	return &Registry{profiles: byRole}
}

// Lookup returns the profile for a role tag. ok=false for unknown tags;
// callers treat that as "unknown role", never as a failure.
func (r *Registry) Lookup(role string) (model.RoleProfile, bool) {
	profile, ok := r.profiles[role]
	return profile, ok
}

// Roles returns the number of registered profiles
func (r *Registry) Roles() int {
	return len(r.profiles)
}

// LoadProfiles reads role profiles from a YAML file. The file holds a
// list of profiles; adding a role is a data edit only.
func LoadProfiles(path string) ([]model.RoleProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	var profiles []model.RoleProfile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}

	for i, p := range profiles {
		if p.Role == "" {
			return nil, fmt.Errorf("profiles file: entry %d has no role tag", i)
		}
		if len(p.Knowledge) == 0 {
			return nil, fmt.Errorf("profiles file: role %s has no knowledge topics", p.Role)
		}
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("profiles file %s contains no profiles", path)
	}

	return profiles, nil
}

// DefaultProfiles returns the built-in role profiles for the Aurora
// Heights project
func DefaultProfiles() []model.RoleProfile {
	return []model.RoleProfile{
		{
			Role:        "BUYER",
			Identity:    "Residential Sales Expert",
			Description: "Expert in home pricing, luxury amenities, and booking procedures.",
			Knowledge: map[string]string{
				"pricing":      "Our residential units are competitively priced. 1BHK starts at ₹45 Lakhs, 2BHK at ₹75 Lakhs, and 3BHK premium units are between ₹1.1Cr and ₹1.4Cr.",
				"emi":          "Multiple banking partners (HDFC, ICICI, SBI) offer interest rates starting from 8.25%. A 20% down payment is standard.",
				"project":      "Aurora Heights is a sustainable 15-acre development featuring 70% open green space and a luxury clubhouse.",
				"booking":      "The reservation process is simple: pay an initial ₹2 Lakhs as a booking amount and submit your KYC documents.",
				"availability": "Current availability: Tower B has limited 2BHKs remaining. Tower C has new 1BHK and 3BHK launches.",
				"location":     "Located in the Tech Corridor, with a 5-minute walk to the new Metro terminal for easy city access.",
			},
			Banned: []string{"commission", "payout", "partner portal", "slab", "brokerage fee", "incentive", "partnership term"},
		},
		{
			Role:        "CHANNEL_PARTNER",
			Identity:    "Partner Relations Manager",
			Description: "Dedicated lead for business incentives, commissions, and partner conduct.",
			Knowledge: map[string]string{
				"commission":   "Our standard commission slab is 2%. 'Club Elite' partners (5+ bookings) receive 2.5% plus performance bonuses.",
				"payout":       "Commissions are processed within 21 days of the buyer's first 10% payment clearance and registration.",
				"partnership":  "We offer a 1-year renewable RERA-registered partnership with dedicated relationship manager support.",
				"registration": "Onboarding requires a valid RERA certificate, GST details, and a company profile via the partner portal.",
				"referral":     "Lead protection is active for 60 days. All leads must be logged in the PartnerConnect app before arrival.",
				"terms":        "Partners must adhere to our zero-tolerance policy for misrepresentation and follow RERA guidelines strictly.",
			},
			Banned: []string{"pricing", "cost", "personal discount", "end-user discount", "booking form", "emi rates", "loan interest"},
		},
		{
			Role:        "SITE_VISIT",
			Identity:    "Site Visit Coordinator",
			Description: "Logistics lead for site tours, directions, and scheduling.",
			Knowledge: map[string]string{
				"location":  "Aurora Heights Site Office is located at ITPL Main Road junction. Search 'Aurora Heights' on Maps.",
				"schedule":  "Site visits are open 7 days a week from 9:30 AM to 6:30 PM. We recommend early morning slots.",
				"slots":     "Currently available slots: 11:00 AM, 2:30 PM, and 4:30 PM today. Shall I reserve one for you?",
				"contact":   "Site Tour Lead: Vikram (+91 99000-11223). Reception Desk: +91 80-4555-6677.",
				"shuttle":   "A complimentary luxury shuttle runs from the Metro station Gate 2 every 20 minutes for visitors.",
				"amenities": "The tour includes a walk through the sample 2BHK flat, the viewing gallery, and properties Phase 1.",
			},
			Banned: []string{"pricing", "cost", "commission", "payout", "partnership", "emi", "booking", "financing", "loan"},
		},
		{
			Role:        "ENQUIRY",
			Identity:    "General Enquiry Specialist",
			Description: "Expert in project overview, developer legacy, and general project features.",
			Knowledge: map[string]string{
				"project":   "Aurora Heights is a flagship 15-acre residential development featuring smart homes and sustainable living.",
				"developer": "Global Realty is an award-winning developer with a legacy of 25 years and over 40 million sq. ft. of space delivered.",
				"location":  "Located at the heart of the IT corridor, we offer seamless connectivity to the airport and major business hubs.",
				"features":  "Our project includes a 50,000 sq. ft. clubhouse, organic gardens, and a futuristic security system.",
				"contact":   "For general queries, you can reach us at 1800-AURORA-INFO or email contact@auroraheights.com.",
				"legacy":    "We are known for 'Quality First' construction and have been rated 5-star by independent realty auditors.",
			},
			Banned: []string{"commission", "payout", "partner portal", "slab", "brokerage fee", "incentive", "partnership term", "pricing", "cost", "discount", "emi", "booking", "loan"},
		},
	}
}
