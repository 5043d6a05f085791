package models

// Testimonial is a quote shown on a course page.
type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Quote  string `json:"quote"`
	Avatar string `json:"avatar"`
}

// LearningOutcome is one entry of a course curriculum.
type LearningOutcome struct {
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn"`
}

// Session seat availability.
const (
	SessionOpen        = "Open"
	SessionFillingFast = "Filling Fast"
	SessionWaitlist    = "Waitlist"
)

// Session is an upcoming run of a course.
type Session struct {
	Date     string `json:"date"`
	DateEn   string `json:"dateEn"`
	Time     string `json:"time"`
	TimeEn   string `json:"timeEn"`
	Status   string `json:"status"` // Open, Filling Fast, Waitlist
	StatusAr string `json:"statusAr"`
	StatusEn string `json:"statusEn"`
}

// Course carries both language variants of every display field. Variant
// selection happens at read time through the locale package; the record
// itself always holds the full pair.
type Course struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	TitleEn          string            `json:"titleEn"`
	Subtitle         string            `json:"subtitle"`
	SubtitleEn       string            `json:"subtitleEn"`
	Image            string            `json:"image"`
	Tags             []string          `json:"tags"`
	TagsEn           []string          `json:"tagsEn"`
	Description      string            `json:"description"`
	DescriptionEn    string            `json:"descriptionEn"`
	Rating           string            `json:"rating"`
	Duration         string            `json:"duration"`
	DurationEn       string            `json:"durationEn"`
	AgeGroup         string            `json:"ageGroup"`
	AgeGroupEn       string            `json:"ageGroupEn"`
	Price            string            `json:"price"` // numeric string, dirhams
	Schedule         string            `json:"schedule"`
	ScheduleEn       string            `json:"scheduleEn"`
	Features         []string          `json:"features"`
	FeaturesEn       []string          `json:"featuresEn"`
	LearningOutcomes []LearningOutcome `json:"learningOutcomes"`
	Testimonials     []Testimonial     `json:"testimonials"`
	Sessions         []Session         `json:"sessions"`
}
