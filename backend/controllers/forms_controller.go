package controllers

import (
	"project/backend/models"
	"project/backend/store"
	"project/backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FormsController handles the two public forms: course enrollment and
// brochure requests. Both snapshot the course title at creation time so
// later course edits do not rewrite history.
type FormsController struct {
	Store *store.Store
}

func NewFormsController(st *store.Store) *FormsController {
	return &FormsController{Store: st}
}

type EnrollRequest struct {
	StudentName string `json:"studentName" validate:"required"`
	ParentName  string `json:"parentName"`
	Email       string `json:"email" validate:"required,email"`
	Age         int    `json:"age"`
	Mode        string `json:"mode" validate:"omitempty,oneof=campus online"`
}

type BrochureRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
}

func (fc *FormsController) Enroll(c *fiber.Ctx) error {
	course, ok := fc.Store.Course(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return utils.ValidationError(c, fieldErrors(err))
	}

	// The quick form only captures name, email and mode; the rest get
	// placeholder defaults the admin can correct later.
	if req.Mode == "" {
		req.Mode = models.ModeCampus
	}
	if req.ParentName == "" {
		req.ParentName = "Parent"
	}
	if req.Age == 0 {
		req.Age = 12
	}

	enrollment := fc.Store.CreateEnrollment(models.Enrollment{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		StudentName: req.StudentName,
		ParentName:  req.ParentName,
		Email:       req.Email,
		Age:         req.Age,
		Mode:        req.Mode,
	})

	return utils.Success(c, fiber.StatusCreated, enrollment)
}

func (fc *FormsController) RequestBrochure(c *fiber.Ctx) error {
	course, ok := fc.Store.Course(c.Params("id"))
	if !ok {
		return utils.NotFound(c, "Course not found")
	}

	var req BrochureRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return utils.ValidationError(c, fieldErrors(err))
	}

	request := fc.Store.CreateBrochureRequest(models.BrochureRequest{
		CourseID:    course.ID,
		CourseTitle: course.Title,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
	})

	return utils.Success(c, fiber.StatusCreated, request)
}

// fieldErrors flattens validator errors into a field -> rule map for
// the validation-error envelope.
func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[fe.Field()] = fe.Tag()
		}
	}
	return out
}
