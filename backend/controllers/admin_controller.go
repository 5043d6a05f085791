package controllers

import (
	"project/backend/config"
	"project/backend/models"
	"project/backend/session"
	"project/backend/store"
	"project/backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminController is the dashboard API: shared-secret login, content
// CRUD, the site settings form and the enrollment inbox.
type AdminController struct {
	Store   *store.Store
	Session *session.Session
	Cfg     *config.Config
}

func NewAdminController(st *store.Store, sess *session.Session, cfg *config.Config) *AdminController {
	return &AdminController{Store: st, Session: sess, Cfg: cfg}
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

func (ac *AdminController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if !ac.Session.Login(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":      "Wrong password",
			"loginError": true,
		})
	}

	token, err := utils.GenerateAdminToken(ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}

func (ac *AdminController) Logout(c *fiber.Ctx) error {
	ac.Session.Logout()
	return c.JSON(fiber.Map{
		"view": ac.Session.View().String(),
	})
}

// ----- courses -----

func (ac *AdminController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// The dashboard adds a near-empty record and edits it afterwards,
	// so no field is required here.
	created := ac.Store.AddCourse(course)
	return utils.Success(c, fiber.StatusCreated, created)
}

func (ac *AdminController) UpdateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course.ID = c.Params("id")
	ac.Store.UpdateCourse(course)
	return utils.Success(c, fiber.StatusOK, course)
}

func (ac *AdminController) DeleteCourse(c *fiber.Ctx) error {
	ac.Store.DeleteCourse(c.Params("id"))
	return utils.NoContent(c)
}

// ----- partners -----

func (ac *AdminController) CreatePartner(c *fiber.Ctx) error {
	var partner models.Partner
	if err := c.BodyParser(&partner); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	created := ac.Store.AddPartner(partner)
	return utils.Success(c, fiber.StatusCreated, created)
}

func (ac *AdminController) UpdatePartner(c *fiber.Ctx) error {
	var partner models.Partner
	if err := c.BodyParser(&partner); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	partner.ID = c.Params("id")
	ac.Store.UpdatePartner(partner)
	return utils.Success(c, fiber.StatusOK, partner)
}

func (ac *AdminController) DeletePartner(c *fiber.Ctx) error {
	ac.Store.DeletePartner(c.Params("id"))
	return utils.NoContent(c)
}

// ----- portfolio -----

func (ac *AdminController) CreatePortfolioProject(c *fiber.Ctx) error {
	var project models.PortfolioProject
	if err := c.BodyParser(&project); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	created := ac.Store.AddPortfolioProject(project)
	return utils.Success(c, fiber.StatusCreated, created)
}

func (ac *AdminController) UpdatePortfolioProject(c *fiber.Ctx) error {
	var project models.PortfolioProject
	if err := c.BodyParser(&project); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	project.ID = c.Params("id")
	ac.Store.UpdatePortfolioProject(project)
	return utils.Success(c, fiber.StatusOK, project)
}

func (ac *AdminController) DeletePortfolioProject(c *fiber.Ctx) error {
	ac.Store.DeletePortfolioProject(c.Params("id"))
	return utils.NoContent(c)
}

// ----- site settings -----

func (ac *AdminController) GetSiteSettings(c *fiber.Ctx) error {
	// The dashboard edits both language variants, so it gets the raw
	// record rather than a localized view.
	return c.JSON(ac.Store.SiteSettings())
}

func (ac *AdminController) ReplaceSiteSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if err := c.BodyParser(&settings); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	ac.Store.ReplaceSiteSettings(settings)
	return utils.Success(c, fiber.StatusOK, settings)
}

// ----- enrollments / brochure requests -----

func (ac *AdminController) GetEnrollments(c *fiber.Ctx) error {
	return c.JSON(ac.Store.Enrollments())
}

type UpdateEnrollmentStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=pending confirmed scheduled"`
	MeetLink string `json:"meetLink"`
}

func (ac *AdminController) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	var req UpdateEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return utils.ValidationError(c, fieldErrors(err))
	}

	// Unknown ids fall through as a no-op, same as the rest of the
	// store contract.
	ac.Store.UpdateEnrollmentStatus(c.Params("id"), req.Status, req.MeetLink)
	return utils.NoContent(c)
}

func (ac *AdminController) GetBrochureRequests(c *fiber.Ctx) error {
	return c.JSON(ac.Store.BrochureRequests())
}

// ----- courses (raw admin reads) -----

func (ac *AdminController) GetCourses(c *fiber.Ctx) error {
	return c.JSON(ac.Store.Courses())
}
