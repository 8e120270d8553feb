package catalog

import (
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
)

var governmentExamRecords = []domain.GovernmentExam{
	{
		ID:                  "gov-1",
		Name:                "CTET (Central Teacher Eligibility Test)",
		Description:         "Central Teacher Eligibility Test for teaching positions in government schools.",
		Type:                "Central",
		Category:            "Teaching",
		ConductingAuthority: "CBSE",
		Eligibility:         "Bachelor's degree with at least 50% marks and B.Ed degree",
		ExamDate:            "December 2024",
		ApplicationWindow:   "October - November 2024",
		SyllabusHighlights:  []string{"Child Development", "Language I & II", "Mathematics", "Environmental Studies"},
		State:               AllStates,
	},
	{
		ID:                  "gov-2",
		Name:                "UGC NET",
		Description:         "National Eligibility Test for determining eligibility for Assistant Professor and JRF.",
		Type:                "Central",
		Category:            "Higher Ed",
		ConductingAuthority: "NTA",
		Eligibility:         "Master's degree with 55% marks",
		ExamDate:            "Multiple sessions throughout the year",
		ApplicationWindow:   "January, June, December",
		SyllabusHighlights:  []string{"Teaching Aptitude", "Research Aptitude", "Subject-specific topics"},
		State:               AllStates,
	},
	{
		ID:                  "gov-3",
		Name:                "SSC CGL",
		Description:         "Staff Selection Commission Combined Graduate Level Examination.",
		Type:                "Central",
		Category:            "Competitive",
		ConductingAuthority: "SSC",
		Eligibility:         "Bachelor's degree from recognized university",
		ExamDate:            "July 2024",
		ApplicationWindow:   "May - June 2024",
		SyllabusHighlights:  []string{"General Intelligence", "General Awareness", "Quantitative Aptitude", "English"},
		State:               AllStates,
	},
	{
		ID:                  "gov-4",
		Name:                "UPSC CSE",
		Description:         "Civil Services Examination for IAS, IPS, IFS and other Group A services.",
		Type:                "Central",
		Category:            "Competitive",
		ConductingAuthority: "UPSC",
		Eligibility:         "Bachelor's degree from recognized university",
		ExamDate:            "June 2024 (Prelims)",
		ApplicationWindow:   "February - March 2024",
		SyllabusHighlights:  []string{"General Studies", "CSAT", "Optional Subject", "Essay"},
		State:               AllStates,
	},
	{
		ID:                  "gov-5",
		Name:                "TN TET",
		Description:         "Tamil Nadu Teacher Eligibility Test for teaching positions in TN schools.",
		Type:                "State",
		Category:            "Teaching",
		ConductingAuthority: "TN-TRB",
		Eligibility:         "Bachelor's degree with B.Ed or D.Ed",
		ExamDate:            "September 2024",
		ApplicationWindow:   "July - August 2024",
		SyllabusHighlights:  []string{"Child Development", "Tamil", "English", "Mathematics", "Science"},
		State:               "Tamil Nadu",
	},
	{
		ID:                  "gov-6",
		Name:                "Maharashtra Polytechnic",
		Description:         "Common Entrance Test for Diploma courses in Maharashtra.",
		Type:                "State",
		Category:            "Polytechnic",
		ConductingAuthority: "DTE Maharashtra",
		Eligibility:         "10th pass with Mathematics and Science",
		ExamDate:            "May 2024",
		ApplicationWindow:   "March - April 2024",
		SyllabusHighlights:  []string{"Mathematics", "Physics", "Chemistry"},
		State:               "Maharashtra",
	},
	{
		ID:                  "gov-7",
		Name:                "KPSC KAS",
		Description:         "Karnataka Administrative Service Examination.",
		Type:                "State",
		Category:            "Competitive",
		ConductingAuthority: "KPSC",
		Eligibility:         "Bachelor's degree with knowledge of Kannada",
		ExamDate:            "August 2024",
		ApplicationWindow:   "May - June 2024",
		SyllabusHighlights:  []string{"General Studies", "Kannada Language", "English", "Current Affairs"},
		State:               "Karnataka",
	},
	{
		ID:                  "gov-8",
		Name:                "Railway Group D",
		Description:         "Railway Recruitment Board Group D examination for various posts.",
		Type:                "Central",
		Category:            "Competitive",
		ConductingAuthority: "RRB",
		Eligibility:         "10th pass or ITI from recognized institution",
		ExamDate:            "September 2024",
		ApplicationWindow:   "July - August 2024",
		SyllabusHighlights:  []string{"Mathematics", "General Intelligence", "General Science", "General Awareness"},
		State:               AllStates,
	},
}

var governmentExamStates = []string{AllStates, "Tamil Nadu", "Maharashtra", "Karnataka", "Delhi", "West Bengal", "Gujarat"}

// GovernmentExams lists recruitment and eligibility tests run by central and
// state bodies.
func GovernmentExams() domain.Catalog {
	return &static[domain.GovernmentExam]{
		info: domain.CatalogInfo{
			Name:        NameGovernmentExams,
			Title:       "Government Exams",
			Description: "Teaching, polytechnic, higher education and competitive examinations.",
			Filters: []domain.FilterOption{
				selectOption("type", "Type", AnyValue, withAny("Central", "State")...),
				selectOption("category", "Category", AnyValue, withAny("Teaching", "Polytechnic", "Higher Ed", "Competitive")...),
				selectOption("state", "State", AllStates, governmentExamStates...),
			},
		},
		records: governmentExamRecords,
		spec: filter.Spec[domain.GovernmentExam]{
			Text: []func(domain.GovernmentExam) []string{
				filter.One(func(e domain.GovernmentExam) string { return e.Name }),
				filter.One(func(e domain.GovernmentExam) string { return e.Description }),
				filter.One(func(e domain.GovernmentExam) string { return e.ConductingAuthority }),
				func(e domain.GovernmentExam) []string { return e.SyllabusHighlights },
			},
			Fields: map[string]filter.Field[domain.GovernmentExam]{
				"type":     {Get: func(e domain.GovernmentExam) string { return e.Type }, Any: AnyValue},
				"category": {Get: func(e domain.GovernmentExam) string { return e.Category }, Any: AnyValue},
				"state": {
					Get:       func(e domain.GovernmentExam) string { return e.State },
					Any:       AllStates,
					Universal: AllStates,
				},
			},
		},
		id:    func(e domain.GovernmentExam) string { return e.ID },
		title: func(e domain.GovernmentExam) string { return e.Name },
	}
}
