package catalog

import (
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
)

var dashboardStates = append([]string{AllStates}, domain.IndianStates...)

var dashboardClassLevels = []string{
	AllClasses, "Class 1-5", "Class 6-8", "Class 9-10", "Class 11-12", "Undergraduate", "Postgraduate",
}

var opportunityRecords = []domain.Opportunity{
	{
		ID:          "opp-1",
		Title:       "National Scholarship Portal - Merit cum Means",
		Description: "Central sector scholarship for students from economically weaker sections with good academic performance.",
		Type:        domain.TypeScholarship,
		Department:  "Ministry of Education",
		Amount:      "₹12,000 - ₹20,000",
		Deadline:    domain.MustDate("2024-02-15"),
		Tags:        []string{"Merit", "Need-based"},
		State:       AllStates,
		ClassLevel:  "Class 11-12",
	},
	{
		ID:          "opp-2",
		Title:       "Pre-Matric Scholarship for SC Students",
		Description: "Financial assistance for SC students studying in classes IX and X.",
		Type:        domain.TypeScholarship,
		Department:  "Ministry of Social Justice",
		Amount:      "₹350 - ₹750",
		Deadline:    domain.MustDate("2024-01-30"),
		Tags:        []string{"SC", "Pre-matric", "Girls"},
		State:       AllStates,
		ClassLevel:  "Class 9-10",
		Target:      &domain.Target{Attribute: domain.AttrCategory, Value: "SC"},
	},
	{
		ID:          "opp-3",
		Title:       "JEE Main 2024",
		Description: "Joint Entrance Examination for admission to NITs, IIITs, and other engineering colleges.",
		Type:        domain.TypeExam,
		Department:  "National Testing Agency",
		Deadline:    domain.MustDate("2024-01-12"),
		Tags:        []string{"Engineering", "National"},
		State:       AllStates,
		ClassLevel:  "Class 11-12",
		Target:      &domain.Target{Attribute: domain.AttrClassLevel, Value: "Class 12"},
	},
	{
		ID:          "opp-4",
		Title:       "PM-YASASVI Scheme",
		Description: "Scholarship for OBC, EBC and DNT students for higher secondary and higher education.",
		Type:        domain.TypeScholarship,
		Department:  "Ministry of Social Justice",
		Amount:      "₹1,25,000",
		Deadline:    domain.MustDate("2024-02-28"),
		Tags:        []string{"OBC", "Higher Education"},
		State:       AllStates,
		ClassLevel:  "Class 11-12",
		Target:      &domain.Target{Attribute: domain.AttrCategory, Value: "OBC"},
	},
	{
		ID:          "opp-5",
		Title:       "National Means-cum-Merit Scholarship",
		Description: "Scholarship to meritorious students of economically weaker sections.",
		Type:        domain.TypeScholarship,
		Department:  "Ministry of Education",
		Amount:      "₹12,000",
		Deadline:    domain.MustDate("2024-01-25"),
		Tags:        []string{"Merit", "Class VIII"},
		State:       AllStates,
		ClassLevel:  "Class 6-8",
	},
	{
		ID:          "opp-6",
		Title:       "NEET 2024",
		Description: "National Eligibility cum Entrance Test for medical courses.",
		Type:        domain.TypeExam,
		Department:  "National Testing Agency",
		Deadline:    domain.MustDate("2024-01-15"),
		Tags:        []string{"Medical", "National"},
		State:       AllStates,
		ClassLevel:  "Class 11-12",
		Target:      &domain.Target{Attribute: domain.AttrClassLevel, Value: "Class 12"},
	},
	{
		ID:          "opp-7",
		Title:       "Begum Hazrat Mahal National Scholarship",
		Description: "Scholarship for girl students of minority communities.",
		Type:        domain.TypeScholarship,
		Department:  "Maulana Azad Education Foundation",
		Amount:      "₹5,000 - ₹12,000",
		Deadline:    domain.MustDate("2024-02-10"),
		Tags:        []string{"Minority", "Girls"},
		State:       AllStates,
		ClassLevel:  "Class 6-8",
		Target:      &domain.Target{Attribute: domain.AttrCategory, Value: "Minority"},
	},
	{
		ID:          "opp-8",
		Title:       "Kishore Vaigyanik Protsahan Yojana (KVPY)",
		Description: "Fellowship for students interested in research careers in science.",
		Type:        domain.TypeScholarship,
		Department:  "Indian Institute of Science",
		Amount:      "₹5,000 - ₹7,000",
		Deadline:    domain.MustDate("2024-01-20"),
		Tags:        []string{"Science", "Research"},
		State:       AllStates,
		ClassLevel:  "Class 11-12",
	},
	{
		ID:          "opp-9",
		Title:       "Post-Matric Scholarship for ST Students",
		Description: "Support for Scheduled Tribe students pursuing post-matriculation or post-secondary courses.",
		Type:        domain.TypeScholarship,
		Department:  "Ministry of Tribal Affairs",
		Amount:      "₹230 - ₹1,200 per month",
		Deadline:    domain.MustDate("2024-03-15"),
		Tags:        []string{"ST", "Post-matric"},
		State:       AllStates,
		ClassLevel:  "Class 11-12",
		Target:      &domain.Target{Attribute: domain.AttrCategory, Value: "ST"},
	},
	{
		ID:          "opp-10",
		Title:       "AICTE Pragati Scholarship Scheme for Girls",
		Description: "Scheme supporting girl students admitted to AICTE-approved technical degree and diploma programmes.",
		Type:        domain.TypeScheme,
		Department:  "All India Council for Technical Education",
		Amount:      "₹50,000 per year",
		Deadline:    domain.MustDate("2024-03-31"),
		Tags:        []string{"Girls", "Technical"},
		State:       AllStates,
		ClassLevel:  "Undergraduate",
		Target:      &domain.Target{Attribute: domain.AttrGender, Value: "Female"},
	},
	{
		ID:          "opp-11",
		Title:       "PM Vidyalaxmi Education Loan Scheme",
		Description: "Collateral-free education loans with interest subvention for students from lower income families.",
		Type:        domain.TypeScheme,
		Department:  "Department of Higher Education",
		Amount:      "Up to ₹10,00,000 loan",
		Deadline:    domain.MustDate("2024-06-30"),
		Tags:        []string{"Need-based", "Higher Education"},
		State:       AllStates,
		ClassLevel:  "Undergraduate",
		Target:      &domain.Target{Attribute: domain.AttrNeedBasedSupport, Value: "true"},
	},
	{
		ID:          "opp-12",
		Title:       "Vidyasiri Scholarship",
		Description: "Food and accommodation assistance for backward class students in post-matric courses in Karnataka.",
		Type:        domain.TypeScheme,
		Department:  "Backward Classes Welfare Department, Karnataka",
		Amount:      "₹15,000 per year",
		Deadline:    domain.MustDate("2024-02-29"),
		Tags:        []string{"OBC", "State"},
		State:       "Karnataka",
		ClassLevel:  "Undergraduate",
		Target:      &domain.Target{Attribute: domain.AttrState, Value: "Karnataka"},
	},
}

func opportunityTags(o domain.Opportunity) []string { return o.Tags }

var opportunitySpec = filter.Spec[domain.Opportunity]{
	Text: []func(domain.Opportunity) []string{
		filter.One(func(o domain.Opportunity) string { return o.Title }),
		filter.One(func(o domain.Opportunity) string { return o.Description }),
		filter.One(func(o domain.Opportunity) string { return o.Department }),
	},
	Fields: map[string]filter.Field[domain.Opportunity]{
		"state": {
			Get:       func(o domain.Opportunity) string { return o.State },
			Any:       AllStates,
			Universal: AllStates,
		},
		"classLevel": {
			Get:       func(o domain.Opportunity) string { return o.ClassLevel },
			Any:       AllClasses,
			Universal: AllClasses,
		},
		"type": {
			Get: func(o domain.Opportunity) string { return string(o.Type) },
			Any: AnyValue,
		},
	},
	Flags: map[string]filter.Predicate[domain.Opportunity]{
		"girlsOnly":        filter.HasAnyTag(opportunityTags, "Girls"),
		"scSt":             filter.HasAnyTag(opportunityTags, "SC", "ST"),
		"minority":         filter.HasAnyTag(opportunityTags, "Minority"),
		"scholarshipsOnly": filter.Equals(func(o domain.Opportunity) string { return string(o.Type) }, string(domain.TypeScholarship)),
		"schemesOnly":      filter.Equals(func(o domain.Opportunity) string { return string(o.Type) }, string(domain.TypeScheme)),
		"examsOnly":        filter.Equals(func(o domain.Opportunity) string { return string(o.Type) }, string(domain.TypeExam)),
	},
}

// Opportunities is the dashboard catalog of scholarships, schemes and exams.
// Its listings are tagged eligible / may-qualify.
func Opportunities() domain.Catalog {
	return &static[domain.Opportunity]{
		info: domain.CatalogInfo{
			Name:        NameOpportunities,
			Title:       "Scholarships, Schemes & Exams",
			Description: "Opportunities you may be eligible for, filtered by state, class and category.",
			Filters: []domain.FilterOption{
				selectOption("state", "State", AllStates, dashboardStates...),
				selectOption("classLevel", "Class", AllClasses, dashboardClassLevels...),
				selectOption("type", "Type", AnyValue, withAny(string(domain.TypeScholarship), string(domain.TypeScheme), string(domain.TypeExam))...),
				flagOption("girlsOnly", "Girls only"),
				flagOption("scSt", "SC/ST"),
				flagOption("minority", "Minority"),
				flagOption("scholarshipsOnly", "Scholarships"),
				flagOption("schemesOnly", "Schemes"),
				flagOption("examsOnly", "Exams"),
			},
		},
		records: opportunityRecords,
		spec:    opportunitySpec,
		id:      func(o domain.Opportunity) string { return o.ID },
		title:   func(o domain.Opportunity) string { return o.Title },
		target:  func(o domain.Opportunity) *domain.Target { return o.Target },
	}
}
