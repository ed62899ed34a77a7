// Package profile scores profiles against a weighted checklist.
package profile

import (
	"strings"

	"interview-marketplace-backend/internal/domain"
)

type check struct {
	name   string
	points int
	fields []field
}

type field struct {
	name    string
	present bool
}

// Candidate scores a candidate profile. Sections: Basic Information 15,
// Profile Photo 10, Resume 25, Experience 20, Skills 20, LinkedIn 10.
func Candidate(c *domain.Candidate) domain.ProfileCompletion {
	if c == nil {
		c = &domain.Candidate{}
	}
	return compute([]check{
		{name: "Basic Information", points: 15, fields: []field{
			{"name", filled(c.Name)},
			{"email", filled(c.Email)},
			{"phone", filled(c.Phone)},
		}},
		{name: "Profile Photo", points: 10, fields: []field{{"profilePhoto", filled(c.ProfilePhotoURL)}}},
		{name: "Resume", points: 25, fields: []field{{"resume", filled(c.ResumeURL)}}},
		{name: "Experience", points: 20, fields: []field{
			{"currentRole", filled(c.CurrentRole)},
			{"yearsOfExperience", c.YearsOfExperience != nil},
		}},
		{name: "Skills", points: 20, fields: []field{{"skills", hasSkills(c.Skills)}}},
		{name: "LinkedIn", points: 10, fields: []field{{"linkedIn", filled(c.LinkedInURL)}}},
	}, true)
}

// Interviewer scores an interviewer profile. Sections: Basic Information 20,
// Profile Photo 10, Professional Title 10, Experience 15, Skills 15, Price 10,
// Availability 20.
func Interviewer(i *domain.Interviewer) domain.ProfileCompletion {
	if i == nil {
		i = &domain.Interviewer{}
	}
	return compute([]check{
		{name: "Basic Information", points: 20, fields: []field{
			{"name", filled(i.Name)},
			{"email", filled(i.Email)},
			{"phone", filled(i.Phone)},
		}},
		{name: "Profile Photo", points: 10, fields: []field{{"profilePhoto", filled(i.ProfilePhotoURL)}}},
		{name: "Professional Title", points: 10, fields: []field{{"professionalTitle", filled(i.ProfessionalTitle)}}},
		{name: "Experience", points: 15, fields: []field{{"yearsOfExperience", i.YearsOfExperience != nil}}},
		{name: "Skills", points: 15, fields: []field{{"skills", hasSkills(i.Skills)}}},
		{name: "Price", points: 10, fields: []field{{"price", filled(i.Price)}}},
		{name: "Availability", points: 20, fields: []field{{"availability", len(i.Availability.Dates) > 0}}},
	}, false)
}

func compute(checks []check, listFields bool) domain.ProfileCompletion {
	out := domain.ProfileCompletion{
		Sections:        make([]domain.CompletionSection, 0, len(checks)),
		MissingSections: []domain.MissingSection{},
	}
	for _, c := range checks {
		var missing []string
		for _, f := range c.fields {
			if !f.present {
				missing = append(missing, f.name)
			}
		}
		done := len(missing) == 0
		out.Sections = append(out.Sections, domain.CompletionSection{Name: c.name, Percentage: c.points, Completed: done})
		if done {
			out.TotalPercentage += c.points
			continue
		}
		m := domain.MissingSection{Name: c.name, Percentage: c.points}
		if listFields {
			m.MissingFields = missing
		}
		out.MissingSections = append(out.MissingSections, m)
	}
	out.IsComplete = out.TotalPercentage == 100
	return out
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func hasSkills(skills []string) bool {
	for _, s := range skills {
		if filled(s) {
			return true
		}
	}
	return false
}
