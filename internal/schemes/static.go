package schemes

import "sahayak-backend/internal/models"

// BundledSchemes returns the compiled-in scheme list used when no registry
// endpoint or database is configured.
func BundledSchemes() []models.Scheme {
	return []models.Scheme{
		{
			ID:                           "1",
			Name:                         "Sant Rohidas Charmodyog Sahayata Yojana",
			Description:                  "Financial assistance for self-employment of persons with locomotor disability.",
			MinAge:                       18,
			MaxAge:                       60,
			RequiredDisabilityPercentage: 40,
			ApplicableDisabilityTypes:    []string{"locomotor disability"},
			Publisher:                    "Social Justice Department",
		},
		{
			ID:                           "2",
			Name:                         "Divyang Shishyavrutti Yojana",
			Description:                  "Scholarship for students with disabilities studying in recognized institutions.",
			MinAge:                       6,
			MaxAge:                       30,
			RequiredDisabilityPercentage: 40,
			ApplicableDisabilityTypes:    []string{"blindness", "low vision", "hearing impairment", "locomotor disability"},
			Publisher:                    "Social Justice Department",
		},
		{
			ID:                           "3",
			Name:                         "Shravan Yantra Vatap Yojana",
			Description:                  "Free hearing aid distribution for persons with hearing impairment.",
			MinAge:                       1,
			MaxAge:                       100,
			RequiredDisabilityPercentage: 40,
			ApplicableDisabilityTypes:    []string{"hearing impairment"},
			Publisher:                    "District Disability Rehabilitation Centre",
		},
		{
			ID:                           "4",
			Name:                         "Niradhar Anudan Yojana",
			Description:                  "Monthly maintenance allowance for persons with severe disability and no income source.",
			MinAge:                       18,
			MaxAge:                       65,
			RequiredDisabilityPercentage: 80,
			ApplicableDisabilityTypes:    []string{"blindness", "locomotor disability", "intellectual disability", "mental illness", "multiple disabilities"},
			Publisher:                    "Revenue Department",
		},
		{
			ID:                           "5",
			Name:                         "Vyavsay Prashikshan Yojana",
			Description:                  "Vocational training with stipend for young adults with any recognized disability.",
			MinAge:                       18,
			MaxAge:                       45,
			RequiredDisabilityPercentage: 40,
			ApplicableDisabilityTypes:    nil,
			Publisher:                    "Skill Development Department",
		},
		{
			ID:                           "6",
			Name:                         "Matimand Balgruha Anudan Yojana",
			Description:                  "Residential care grant for children with intellectual disability.",
			MinAge:                       1,
			MaxAge:                       18,
			RequiredDisabilityPercentage: 40,
			ApplicableDisabilityTypes:    []string{"intellectual disability", "cerebral palsy"},
			Publisher:                    "Women and Child Development Department",
		},
	}
}
