package models

import "time"

// Enrollment delivery mode.
const (
	ModeCampus = "campus"
	ModeOnline = "online"
)

// Enrollment processing status.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusScheduled = "scheduled"
)

// Enrollment is a course registration captured from the public form.
// CourseTitle is a snapshot taken at creation time so the record stays
// readable even after the course itself is edited or deleted.
type Enrollment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	StudentName string    `json:"studentName"`
	ParentName  string    `json:"parentName"`
	Email       string    `json:"email"`
	Age         int       `json:"age"`
	Mode        string    `json:"mode"`   // campus, online
	Status      string    `json:"status"` // pending, confirmed, scheduled
	MeetLink    string    `json:"meetLink,omitempty"`
	Date        time.Time `json:"date"`
}

// BrochureRequest is a lead captured from the brochure form. Records are
// read-only once created.
type BrochureRequest struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Date        time.Time `json:"date"`
}
