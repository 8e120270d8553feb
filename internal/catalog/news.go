package catalog

import (
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
)

var newsRecords = []domain.NewsItem{
	{
		ID:        "news-1",
		Headline:  "New National Scholarship Portal 2.0 Launched",
		Summary:   "Ministry of Education launches revamped scholarship portal with enhanced features and streamlined application process.",
		Source:    "Ministry of Education",
		Timestamp: domain.MustDate("2024-01-15"),
		Category:  "Scholarships",
		Region:    "National",
	},
	{
		ID:        "news-2",
		Headline:  "NEET 2024 Registration Begins",
		Summary:   "National Testing Agency opens registration for NEET 2024 with new exam pattern and syllabus updates.",
		Source:    "NTA",
		Timestamp: domain.MustDate("2024-01-10"),
		Category:  "Exams",
		Region:    "National",
	},
	{
		ID:        "news-3",
		Headline:  "PM-YASASVI Scholarship Amount Increased",
		Summary:   "Government announces 25% increase in PM-YASASVI scholarship amount for OBC, EBC and DNT students.",
		Source:    "PIB",
		Timestamp: domain.MustDate("2024-01-08"),
		Category:  "Government Updates",
		Region:    "National",
	},
	{
		ID:        "news-4",
		Headline:  "Tamil Nadu Extends TNEA Application Deadline",
		Summary:   "Directorate of Technical Education extends the engineering admission application window by two weeks.",
		Source:    "DTE Tamil Nadu",
		Timestamp: domain.MustDate("2024-01-05"),
		Category:  "Exams",
		Region:    "State",
	},
	{
		ID:        "news-5",
		Headline:  "Income Ceiling Revised for Post-Matric Scholarships",
		Summary:   "The family income limit for post-matric scholarships for SC and ST students is raised to ₹2.5 lakh per year.",
		Source:    "Ministry of Social Justice",
		Timestamp: domain.MustDate("2024-01-03"),
		Category:  "Policy Changes",
		Region:    "National",
	},
}

func News() domain.Catalog {
	return &static[domain.NewsItem]{
		info: domain.CatalogInfo{
			Name:        NameNews,
			Title:       "Latest in Education",
			Description: "News on scholarships, exams and government policies.",
			Filters: []domain.FilterOption{
				selectOption("category", "Category", AnyValue, withAny("Scholarships", "Exams", "Government Updates", "Policy Changes")...),
				selectOption("region", "Region", AnyValue, withAny("National", "State")...),
			},
		},
		records: newsRecords,
		spec: filter.Spec[domain.NewsItem]{
			Text: []func(domain.NewsItem) []string{
				filter.One(func(n domain.NewsItem) string { return n.Headline }),
				filter.One(func(n domain.NewsItem) string { return n.Summary }),
				filter.One(func(n domain.NewsItem) string { return n.Source }),
			},
			Fields: map[string]filter.Field[domain.NewsItem]{
				"category": {Get: func(n domain.NewsItem) string { return n.Category }, Any: AnyValue},
				"region":   {Get: func(n domain.NewsItem) string { return n.Region }, Any: AnyValue},
			},
		},
		id:    func(n domain.NewsItem) string { return n.ID },
		title: func(n domain.NewsItem) string { return n.Headline },
	}
}
