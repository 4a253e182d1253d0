package repository

import "careerscope/internal/domain"

// SeedCareers devuelve el catalogo de referencia. Se usa para sembrar
// postgres (cmd/seed) y para el repositorio en memoria del modo demo.
func SeedCareers() []domain.Career {
	return []domain.Career{
		{
			ID:              1,
			Title:           "Data Scientist",
			Skills:          []string{"Python", "Machine Learning", "Statistics"},
			MinEducation:    "Undergraduate",
			Field:           "Technology",
			Salary:          120000,
			RiskLevel:       "Moderate",
			Pace:            "Balanced",
			GrowthScore:     9,
			WorkTime:        "40-50 hrs/week",
			WorkType:        "Hybrid",
			Benefits:        []string{"Health Insurance", "Stock Options", "Remote Work"},
			WorkLifeBalance: "Moderate",
			Progression:     "Fast (Senior DS -> Lead -> AI Director)",
			WhyBest:         "Best for High Growth & Innovation",
		},
		{
			ID:              2,
			Title:           "Frontend Developer",
			Skills:          []string{"React", "JavaScript", "CSS", "Figma"},
			MinEducation:    "Diploma",
			Field:           "Technology",
			Salary:          90000,
			RiskLevel:       "Low",
			Pace:            "Fast-paced",
			GrowthScore:     8,
			WorkTime:        "35-40 hrs/week",
			WorkType:        "Remote Possible",
			Benefits:        []string{"Flexible Hours", "Learning Budget", "Gym"},
			WorkLifeBalance: "Good",
			Progression:     "Steady (Senior Dev -> Tech Lead -> Architect)",
			WhyBest:         "Best for Work-Life Balance",
		},
		{
			ID:              3,
			Title:           "UX Designer",
			Skills:          []string{"Design", "Figma", "Prototyping", "User Research"},
			MinEducation:    "Undergraduate",
			Field:           "Design",
			Salary:          95000,
			RiskLevel:       "Low",
			Pace:            "Balanced",
			GrowthScore:     7,
			WorkTime:        "40-45 hrs/week",
			WorkType:        "Hybrid",
			Benefits:        []string{"Creative Environment", "Health", "Bonuses"},
			WorkLifeBalance: "Good",
			Progression:     "Moderate (Senior UX -> Product Designer -> Head of Design)",
			WhyBest:         "Best for Creativity",
		},
		{
			ID:              4,
			Title:           "Healthcare Administrator",
			Skills:          []string{"Management", "Communication", "Healthcare", "Operations"},
			MinEducation:    "Postgraduate",
			Field:           "Healthcare",
			Salary:          85000,
			RiskLevel:       "Stable",
			Pace:            "Slow & Steady",
			GrowthScore:     6,
			WorkTime:        "40 hrs/week",
			WorkType:        "On-site",
			Benefits:        []string{"Pension", "Stable Job", "Healthcare"},
			WorkLifeBalance: "Excellent",
			Progression:     "Slow but Stable",
			WhyBest:         "Lowest Risk Option",
		},
		{
			ID:              5,
			Title:           "Investment Banker",
			Skills:          []string{"Finance", "Analysis", "Excel", "Communication"},
			MinEducation:    "Postgraduate",
			Field:           "Business",
			Salary:          150000,
			RiskLevel:       "High Risk",
			Pace:            "Fast-paced",
			GrowthScore:     10,
			WorkTime:        "60-80 hrs/week",
			WorkType:        "On-site",
			Benefits:        []string{"Huge Bonuses", "Prestige", "Networking"},
			WorkLifeBalance: "Poor",
			Progression:     "Very Fast (Associate -> VP -> MD)",
			WhyBest:         "Best for High Salary",
		},
	}
}
