package catalog

import (
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
)

var entranceExamRecords = []domain.EntranceExam{
	{
		ID:           "ent-1",
		Name:         "JEE Main 2024",
		Description:  "Joint Entrance Examination for admission to NITs, IIITs, and other engineering colleges.",
		Level:        "National",
		Category:     "College",
		Institutions: []string{"NITs", "IIITs", "CFTIs"},
		Subjects:     []string{"Physics", "Chemistry", "Mathematics"},
		Deadline:     domain.MustDate("2024-01-12"),
		ExamDate:     "January & April 2024",
		State:        AllStates,
	},
	{
		ID:           "ent-2",
		Name:         "NEET 2024",
		Description:  "National Eligibility cum Entrance Test for medical courses.",
		Level:        "National",
		Category:     "College",
		Institutions: []string{"AIIMS", "Government Medical Colleges", "Private Medical Colleges"},
		Subjects:     []string{"Physics", "Chemistry", "Biology"},
		Deadline:     domain.MustDate("2024-01-15"),
		ExamDate:     "May 2024",
		State:        AllStates,
	},
	{
		ID:           "ent-3",
		Name:         "CLAT 2024",
		Description:  "Common Law Admission Test for admission to National Law Universities.",
		Level:        "National",
		Category:     "College",
		Institutions: []string{"NLUs", "Other Law Colleges"},
		Subjects:     []string{"English", "General Knowledge", "Legal Reasoning", "Logical Reasoning", "Mathematics"},
		Deadline:     domain.MustDate("2024-01-31"),
		ExamDate:     "December 2024",
		State:        AllStates,
	},
	{
		ID:           "ent-4",
		Name:         "BITSAT 2024",
		Description:  "Birla Institute of Technology and Science Admission Test.",
		Level:        "National",
		Category:     "College",
		Institutions: []string{"BITS Pilani", "BITS Goa", "BITS Hyderabad"},
		Subjects:     []string{"Physics", "Chemistry", "Mathematics", "English"},
		Deadline:     domain.MustDate("2024-02-20"),
		ExamDate:     "May-June 2024",
		State:        AllStates,
	},
	{
		ID:           "ent-5",
		Name:         "COMEDK UGET 2024",
		Description:  "Consortium of Medical, Engineering and Dental Colleges of Karnataka Undergraduate Entrance Test.",
		Level:        "State",
		Category:     "College",
		Institutions: []string{"Karnataka Engineering Colleges"},
		Subjects:     []string{"Physics", "Chemistry", "Mathematics"},
		Deadline:     domain.MustDate("2024-02-15"),
		ExamDate:     "May 2024",
		State:        "Karnataka",
	},
	{
		ID:           "ent-6",
		Name:         "KVPY 2024",
		Description:  "Kishore Vaigyanik Protsahan Yojana for students interested in research careers.",
		Level:        "National",
		Category:     "School",
		Institutions: []string{"IISc", "IISERs", "Other Research Institutes"},
		Subjects:     []string{"Mathematics", "Physics", "Chemistry", "Biology"},
		Deadline:     domain.MustDate("2024-01-25"),
		ExamDate:     "November 2024",
		State:        AllStates,
	},
	{
		ID:           "ent-7",
		Name:         "NTSE 2024",
		Description:  "National Talent Search Examination for Class X students.",
		Level:        "National",
		Category:     "School",
		Institutions: []string{"Scholarship Program"},
		Subjects:     []string{"Mathematics", "Science", "Social Science", "Mental Ability"},
		Deadline:     domain.MustDate("2024-11-30"),
		ExamDate:     "February 2024",
		State:        AllStates,
	},
	{
		ID:           "ent-8",
		Name:         "AIIMS MBBS 2024",
		Description:  "All Institute of Medical Sciences entrance exam for MBBS admission.",
		Level:        "National",
		Category:     "College",
		Institutions: []string{"AIIMS Delhi", "AIIMS Bhopal", "AIIMS Jodhpur"},
		Subjects:     []string{"Physics", "Chemistry", "Biology", "General Knowledge"},
		Deadline:     domain.MustDate("2024-01-10"),
		ExamDate:     "May 2024",
		State:        AllStates,
	},
}

var entranceExamStates = []string{AllStates, "Karnataka", "Tamil Nadu", "Maharashtra", "Delhi", "Gujarat", "Rajasthan", "West Bengal"}

func EntranceExams() domain.Catalog {
	return &static[domain.EntranceExam]{
		info: domain.CatalogInfo{
			Name:        NameEntranceExams,
			Title:       "Entrance Exams",
			Description: "National and state level entrance examinations for schools, colleges and ITIs.",
			Filters: []domain.FilterOption{
				selectOption("category", "Category", AnyValue, withAny("School", "College", "ITI")...),
				selectOption("level", "Level", AnyValue, withAny("National", "State")...),
				selectOption("state", "State", AllStates, entranceExamStates...),
			},
		},
		records: entranceExamRecords,
		spec: filter.Spec[domain.EntranceExam]{
			Text: []func(domain.EntranceExam) []string{
				filter.One(func(e domain.EntranceExam) string { return e.Name }),
				filter.One(func(e domain.EntranceExam) string { return e.Description }),
				func(e domain.EntranceExam) []string { return e.Institutions },
				func(e domain.EntranceExam) []string { return e.Subjects },
			},
			Fields: map[string]filter.Field[domain.EntranceExam]{
				"category": {Get: func(e domain.EntranceExam) string { return e.Category }, Any: AnyValue},
				"level":    {Get: func(e domain.EntranceExam) string { return e.Level }, Any: AnyValue},
				"state": {
					Get:       func(e domain.EntranceExam) string { return e.State },
					Any:       AllStates,
					Universal: AllStates,
				},
			},
		},
		id:    func(e domain.EntranceExam) string { return e.ID },
		title: func(e domain.EntranceExam) string { return e.Name },
	}
}
