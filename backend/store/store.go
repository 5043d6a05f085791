package store

import (
	"sync"
	"time"

	"project/backend/models"

	"github.com/google/uuid"
)

// Store holds every content collection in memory. It is seeded once at
// startup and mutated only through the methods below; nothing persists
// across restarts. All reads return copies so callers can never reach
// into the live slices.
type Store struct {
	mu sync.RWMutex

	courses          []models.Course
	partners         []models.Partner
	portfolio        []models.PortfolioProject
	settings         models.SiteSettings
	enrollments      []models.Enrollment
	brochureRequests []models.BrochureRequest
}

// New returns a store seeded with the initial site content.
func New() *Store {
	return &Store{
		courses:   seedCourses(),
		partners:  seedPartners(),
		portfolio: seedPortfolio(),
		settings:  seedSettings(),
	}
}

// NewEmpty returns a store with no content at all. Used by tests.
func NewEmpty() *Store {
	return &Store{}
}

func newID() string {
	return uuid.New().String()
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// cloneCourse deep-copies the nested slices so a snapshot never shares
// backing arrays with the live record.
func cloneCourse(c models.Course) models.Course {
	c.Tags = copyStrings(c.Tags)
	c.TagsEn = copyStrings(c.TagsEn)
	c.Features = copyStrings(c.Features)
	c.FeaturesEn = copyStrings(c.FeaturesEn)
	c.LearningOutcomes = append([]models.LearningOutcome(nil), c.LearningOutcomes...)
	c.Testimonials = append([]models.Testimonial(nil), c.Testimonials...)
	c.Sessions = append([]models.Session(nil), c.Sessions...)
	return c
}

func cloneSettings(s models.SiteSettings) models.SiteSettings {
	s.Buildables = copyStrings(s.Buildables)
	s.BuildablesEn = copyStrings(s.BuildablesEn)
	return s
}

// ----- courses -----

func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = cloneCourse(c)
	}
	return out
}

// Course looks a course up by id. The second return reports whether the
// id resolved; callers must treat a miss as "degrade", never as fatal.
func (s *Store) Course(id string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return cloneCourse(c), true
		}
	}
	return models.Course{}, false
}

// AddCourse assigns a fresh id and appends the record. Near-empty
// records are fine; the admin workflow adds first and edits after.
func (s *Store) AddCourse(c models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	s.courses = append(s.courses, c)
	return c
}

// UpdateCourse replaces the record with the same id wholesale, keeping
// its position. An unknown id is a silent no-op.
func (s *Store) UpdateCourse(c models.Course) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.courses {
		if s.courses[i].ID == c.ID {
			s.courses[i] = c
			return
		}
	}
}

// DeleteCourse filters the id out. An unknown id is a silent no-op.
func (s *Store) DeleteCourse(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.courses[:0]
	for _, c := range s.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.courses = kept
}

// ----- partners -----

func (s *Store) Partners() []models.Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Partner, len(s.partners))
	copy(out, s.partners)
	return out
}

func (s *Store) AddPartner(p models.Partner) models.Partner {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = newID()
	s.partners = append(s.partners, p)
	return p
}

func (s *Store) UpdatePartner(p models.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.partners {
		if s.partners[i].ID == p.ID {
			s.partners[i] = p
			return
		}
	}
}

func (s *Store) DeletePartner(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.partners[:0]
	for _, p := range s.partners {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.partners = kept
}

// ----- portfolio -----

func (s *Store) Portfolio() []models.PortfolioProject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PortfolioProject, len(s.portfolio))
	copy(out, s.portfolio)
	return out
}

func (s *Store) AddPortfolioProject(p models.PortfolioProject) models.PortfolioProject {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = newID()
	s.portfolio = append(s.portfolio, p)
	return p
}

func (s *Store) UpdatePortfolioProject(p models.PortfolioProject) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID == p.ID {
			s.portfolio[i] = p
			return
		}
	}
}

func (s *Store) DeletePortfolioProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.portfolio[:0]
	for _, p := range s.portfolio {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.portfolio = kept
}

// ----- site settings -----

func (s *Store) SiteSettings() models.SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSettings(s.settings)
}

// ReplaceSiteSettings swaps the whole singleton. There is no partial
// patch; the admin form always saves everything it holds.
func (s *Store) ReplaceSiteSettings(settings models.SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

// ----- enrollments -----

func (s *Store) Enrollments() []models.Enrollment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Enrollment, len(s.enrollments))
	copy(out, s.enrollments)
	return out
}

// CreateEnrollment stamps the record with a fresh id, pending status and
// the current time, and prepends it so the newest enrollment is always
// first. Enrollments are never deleted.
func (s *Store) CreateEnrollment(e models.Enrollment) models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = newID()
	e.Status = models.StatusPending
	e.Date = time.Now()
	s.enrollments = append([]models.Enrollment{e}, s.enrollments...)
	return e
}

// UpdateEnrollmentStatus merges only status and meetLink into the
// matching record; every other field stays untouched. An unknown id is
// a silent no-op.
func (s *Store) UpdateEnrollmentStatus(id, status, meetLink string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.enrollments {
		if s.enrollments[i].ID == id {
			s.enrollments[i].Status = status
			s.enrollments[i].MeetLink = meetLink
			return
		}
	}
}

// ----- brochure requests -----

func (s *Store) BrochureRequests() []models.BrochureRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BrochureRequest, len(s.brochureRequests))
	copy(out, s.brochureRequests)
	return out
}

// CreateBrochureRequest stamps and prepends the record, newest first.
// Requests are read-only once created.
func (s *Store) CreateBrochureRequest(r models.BrochureRequest) models.BrochureRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = newID()
	r.Date = time.Now()
	s.brochureRequests = append([]models.BrochureRequest{r}, s.brochureRequests...)
	return r
}
