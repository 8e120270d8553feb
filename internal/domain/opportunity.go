package domain

// Eligibility is derived per user profile and never stored on a record.
type Eligibility string

const (
	Eligible   Eligibility = "eligible"
	MayQualify Eligibility = "may-qualify"
)

// Target is the single profile attribute a record is aimed at, e.g.
// category=SC or classLevel=Class 12.
type Target struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

type OpportunityType string

const (
	TypeScholarship OpportunityType = "scholarship"
	TypeScheme      OpportunityType = "scheme"
	TypeExam        OpportunityType = "exam"
)

// Opportunity is a scholarship, scheme or exam listed on the dashboard and
// used for profile recommendations.
type Opportunity struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Type        OpportunityType `json:"type"`
	Department  string          `json:"department"`
	Amount      string          `json:"amount,omitempty"`
	Deadline    Date            `json:"deadline"`
	Tags        []string        `json:"tags"`
	State       string          `json:"state"`
	ClassLevel  string          `json:"class_level"`
	Target      *Target         `json:"target,omitempty"`
}

type EntranceExam struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Level        string   `json:"level"`
	Category     string   `json:"category"`
	Institutions []string `json:"institutions"`
	Subjects     []string `json:"subjects"`
	Deadline     Date     `json:"deadline"`
	ExamDate     string   `json:"exam_date,omitempty"`
	State        string   `json:"state,omitempty"`
}

type GovernmentExam struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Type                string   `json:"type"`
	Category            string   `json:"category"`
	ConductingAuthority string   `json:"conducting_authority"`
	Eligibility         string   `json:"eligibility"`
	ExamDate            string   `json:"exam_date"`
	ApplicationWindow   string   `json:"application_window"`
	SyllabusHighlights  []string `json:"syllabus_highlights"`
	State               string   `json:"state,omitempty"`
}

type CounsellingEvent struct {
	ID               string `json:"id"`
	EventName        string `json:"event_name"`
	Institution      string `json:"institution"`
	StartingDate     Date   `json:"starting_date"`
	EndingDate       Date   `json:"ending_date"`
	Mode             string `json:"mode"`
	Location         string `json:"location,omitempty"`
	Status           string `json:"status"`
	RegistrationLink string `json:"registration_link,omitempty"`
	Category         string `json:"category"`
}

type NewsItem struct {
	ID        string `json:"id"`
	Headline  string `json:"headline"`
	Summary   string `json:"summary"`
	Source    string `json:"source"`
	Timestamp Date   `json:"timestamp"`
	Category  string `json:"category"`
	Region    string `json:"region"`
}

// Listing is one filtered record as handed to the rendering layer.
type Listing struct {
	ID          string      `json:"id"`
	Catalog     string      `json:"catalog"`
	Title       string      `json:"title"`
	Eligibility Eligibility `json:"eligibility,omitempty"`
	Saved       bool        `json:"saved"`
	Record      interface{} `json:"record"`
}

type FilterKind string

const (
	FilterSelect FilterKind = "select"
	FilterFlag   FilterKind = "flag"
)

// FilterOption describes one control a client can render for a catalog.
type FilterOption struct {
	Name    string     `json:"name"`
	Label   string     `json:"label"`
	Kind    FilterKind `json:"kind"`
	Default string     `json:"default,omitempty"`
	Choices []string   `json:"choices,omitempty"`
}

type CatalogInfo struct {
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Size        int            `json:"size"`
	Filters     []FilterOption `json:"filters"`
}
