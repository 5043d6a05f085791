package session

import (
	"fmt"
	"sync"

	"project/backend/auth"
	"project/backend/locale"
	"project/backend/store"
)

// View is the top-level screen of the site. The set is closed; code
// switching on a View must handle every member and panic on anything
// else rather than silently defaulting.
type View int

const (
	ViewHome View = iota
	ViewCourseDetail
	ViewAdmin
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewCourseDetail:
		return "course-detail"
	case ViewAdmin:
		return "admin"
	default:
		panic(fmt.Sprintf("session: undefined view %d", int(v)))
	}
}

// Session is the per-visitor navigation and language state: which view
// is showing, which course is selected, whether the admin gate is
// unlocked, and the display language. It owns no content; it only reads
// the store to validate course references.
type Session struct {
	mu sync.Mutex

	view             View
	selectedCourseID string
	adminLoggedIn    bool
	loginError       bool
	language         locale.Language

	store *store.Store
	auth  auth.Authenticator
}

func New(st *store.Store, authenticator auth.Authenticator) *Session {
	return &Session{
		view:     ViewHome,
		language: locale.Default,
		store:    st,
		auth:     authenticator,
	}
}

// GoHome navigates to the home view and clears the selected course.
func (s *Session) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewHome
	s.selectedCourseID = ""
}

// SelectCourse navigates to the detail view of an existing course. A
// course id that does not resolve leaves the session where it was and
// reports the miss.
func (s *Session) SelectCourse(id string) bool {
	if _, ok := s.store.Course(id); !ok {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewCourseDetail
	s.selectedCourseID = id
	return true
}

// GoAdmin navigates to the admin view. Entry needs no authentication;
// the gate applies to the dashboard content, not the route.
func (s *Session) GoAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewAdmin
}

// View resolves the current view. A selected course that was deleted
// after selection degrades the session back to home instead of leaving
// it pointing at a record that no longer exists.
func (s *Session) View() View {
	s.mu.Lock()
	id := s.selectedCourseID
	view := s.view
	s.mu.Unlock()

	if view == ViewCourseDetail {
		if _, ok := s.store.Course(id); !ok {
			s.GoHome()
			return ViewHome
		}
	}
	return view
}

// SelectedCourseID returns the id behind the detail view, or "" when no
// course is selected.
func (s *Session) SelectedCourseID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedCourseID
}

// Login attempts to unlock the admin dashboard. A wrong password sets
// the error flag; a right one clears it. The unlocked state survives
// navigating away and back, until Logout.
func (s *Session) Login(password string) bool {
	ok := s.auth.Authenticate(password)
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.adminLoggedIn = true
		s.loginError = false
	} else {
		s.loginError = true
	}
	return ok
}

// ClearLoginError mirrors the login form clearing its error on the next
// keystroke.
func (s *Session) ClearLoginError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loginError = false
}

// Logout locks the dashboard again and navigates home.
func (s *Session) Logout() {
	s.mu.Lock()
	s.adminLoggedIn = false
	s.mu.Unlock()
	s.GoHome()
}

func (s *Session) AdminLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adminLoggedIn
}

func (s *Session) LoginError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginError
}

// ToggleLanguage flips the display language and returns the new one.
// The document direction and language tag follow from the Language
// itself; see locale.Direction and locale.Tag.
func (s *Session) ToggleLanguage() locale.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = s.language.Toggle()
	return s.language
}

func (s *Session) Language() locale.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}
