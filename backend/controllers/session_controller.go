package controllers

import (
	"project/backend/session"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionController exposes the navigation state machine and the
// language toggle.
type SessionController struct {
	Session *session.Session
}

func NewSessionController(sess *session.Session) *SessionController {
	return &SessionController{Session: sess}
}

func (sc *SessionController) snapshot() fiber.Map {
	lang := sc.Session.Language()
	return fiber.Map{
		"view":             sc.Session.View().String(),
		"selectedCourseId": sc.Session.SelectedCourseID(),
		"adminLoggedIn":    sc.Session.AdminLoggedIn(),
		"loginError":       sc.Session.LoginError(),
		"language":         lang,
		"direction":        lang.Direction(),
		"languageTag":      lang.Tag(),
	}
}

func (sc *SessionController) GetSession(c *fiber.Ctx) error {
	return c.JSON(sc.snapshot())
}

type NavigateRequest struct {
	View     string `json:"view"`
	CourseID string `json:"courseId"`
}

func (sc *SessionController) Navigate(c *fiber.Ctx) error {
	var req NavigateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	switch req.View {
	case "home":
		sc.Session.GoHome()
	case "course-detail":
		if !sc.Session.SelectCourse(req.CourseID) {
			return utils.NotFound(c, "Course not found")
		}
	case "admin":
		sc.Session.GoAdmin()
	default:
		// Request input, not a programming error: reject rather than
		// panic.
		return utils.BadRequest(c, "Unknown view")
	}

	return c.JSON(sc.snapshot())
}

func (sc *SessionController) ToggleLanguage(c *fiber.Ctx) error {
	sc.Session.ToggleLanguage()
	return c.JSON(sc.snapshot())
}

// ClearLoginError mirrors the login form dropping its error state as
// soon as the password field changes again.
func (sc *SessionController) ClearLoginError(c *fiber.Ctx) error {
	sc.Session.ClearLoginError()
	return c.JSON(sc.snapshot())
}
