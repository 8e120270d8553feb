package catalog

import (
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/filter"
)

func counsellingEvent(id, name, institution, start, end, mode, status, category string) domain.CounsellingEvent {
	return domain.CounsellingEvent{
		ID:           id,
		EventName:    name,
		Institution:  institution,
		StartingDate: domain.MustDate(start),
		EndingDate:   domain.MustDate(end),
		Mode:         mode,
		Status:       status,
		Category:     category,
	}
}

var counsellingRecords = func() []domain.CounsellingEvent {
	events := []domain.CounsellingEvent{
		counsellingEvent("cns-1", "JEE Main Counselling 2024", "JoSAA", "2024-06-15", "2024-07-31", "Online", "Upcoming", "Engineering"),
		counsellingEvent("cns-2", "NEET UG Counselling 2024", "MCC", "2024-07-01", "2024-08-15", "Online", "Upcoming", "Medical"),
		counsellingEvent("cns-3", "CLAT Counselling 2024", "CLAT Consortium", "2024-05-20", "2024-06-30", "Online", "Ongoing", "Law"),
		counsellingEvent("cns-4", "COMEDK Counselling 2024", "COMEDK", "2024-06-01", "2024-07-15", "Online", "Upcoming", "Engineering"),
		counsellingEvent("cns-5", "AIIMS MBBS Counselling 2024", "AIIMS Delhi", "2024-06-10", "2024-07-05", "Online", "Upcoming", "Medical"),
		counsellingEvent("cns-6", "CAT Counselling 2024", "IIM Consortium", "2024-01-15", "2024-04-30", "Online", "Ongoing", "Management"),
		counsellingEvent("cns-7", "KVPY Fellowship Counselling", "IISc Bangalore", "2024-05-01", "2024-05-31", "Hybrid", "Ongoing", "General"),
		counsellingEvent("cns-8", "State Engineering Counselling - TN", "TNEA", "2024-07-01", "2024-08-15", "Online", "Upcoming", "Engineering"),
		counsellingEvent("cns-9", "Delhi University Counselling", "University of Delhi", "2024-06-20", "2024-08-10", "Online", "Upcoming", "General"),
		counsellingEvent("cns-10", "BITSAT Counselling 2024", "BITS Pilani", "2024-06-25", "2024-07-20", "Online", "Upcoming", "Engineering"),
	}
	events[6].Location = "Bangalore"
	return events
}()

func Counselling() domain.Catalog {
	return &static[domain.CounsellingEvent]{
		info: domain.CatalogInfo{
			Name:        NameCounselling,
			Title:       "Counselling & Admissions",
			Description: "Seat allocation and admission counselling schedules.",
			Filters: []domain.FilterOption{
				selectOption("status", "Status", AnyValue, withAny("Upcoming", "Ongoing", "Closed")...),
				selectOption("mode", "Mode", AnyValue, withAny("Online", "Offline", "Hybrid")...),
				selectOption("category", "Category", AnyValue, withAny("Engineering", "Medical", "Law", "General", "Management")...),
			},
		},
		records: counsellingRecords,
		spec: filter.Spec[domain.CounsellingEvent]{
			Text: []func(domain.CounsellingEvent) []string{
				filter.One(func(e domain.CounsellingEvent) string { return e.EventName }),
				filter.One(func(e domain.CounsellingEvent) string { return e.Institution }),
			},
			Fields: map[string]filter.Field[domain.CounsellingEvent]{
				"status":   {Get: func(e domain.CounsellingEvent) string { return e.Status }, Any: AnyValue},
				"mode":     {Get: func(e domain.CounsellingEvent) string { return e.Mode }, Any: AnyValue},
				"category": {Get: func(e domain.CounsellingEvent) string { return e.Category }, Any: AnyValue},
			},
		},
		id:    func(e domain.CounsellingEvent) string { return e.ID },
		title: func(e domain.CounsellingEvent) string { return e.EventName },
	}
}
