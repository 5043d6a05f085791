package controllers

import (
	"project/backend/locale"
	"project/backend/models"
	"project/backend/session"
	"project/backend/store"

	"github.com/gofiber/fiber/v2"
)

// CatalogController serves the public, read-only site content. Every
// response is localized: an explicit ?lang= wins, otherwise the session
// language applies.
type CatalogController struct {
	Store   *store.Store
	Session *session.Session
}

func NewCatalogController(st *store.Store, sess *session.Session) *CatalogController {
	return &CatalogController{Store: st, Session: sess}
}

func (cc *CatalogController) lang(c *fiber.Ctx) locale.Language {
	if q := c.Query("lang"); q != "" {
		return locale.Normalize(q)
	}
	return cc.Session.Language()
}

func (cc *CatalogController) GetSiteSettings(c *fiber.Ctx) error {
	lang := cc.lang(c)
	s := cc.Store.SiteSettings()

	return c.JSON(fiber.Map{
		"academyName":     locale.Pick(lang, s.AcademyName, s.AcademyNameEn),
		"contactEmail":    s.ContactEmail,
		"whatsappNumber":  s.WhatsappNumber,
		"heroTitle":       locale.Pick(lang, s.HeroTitle, s.HeroTitleEn),
		"heroDescription": locale.Pick(lang, s.HeroDescription, s.HeroDescriptionEn),
		"heroImage":       s.HeroImage,
		"businessImage":   s.BusinessImage,
		"buildables":      locale.PickList(lang, s.Buildables, s.BuildablesEn),
		"language":        lang,
		"direction":       lang.Direction(),
	})
}

func (cc *CatalogController) GetCourses(c *fiber.Ctx) error {
	lang := cc.lang(c)

	result := []fiber.Map{}
	for _, course := range cc.Store.Courses() {
		result = append(result, courseSummary(course, lang))
	}

	return c.JSON(result)
}

func (cc *CatalogController) GetCourseDetails(c *fiber.Ctx) error {
	lang := cc.lang(c)

	course, ok := cc.Store.Course(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	return c.JSON(fiber.Map{
		"course": courseView(course, lang),
	})
}

func (cc *CatalogController) GetPartners(c *fiber.Ctx) error {
	return c.JSON(cc.Store.Partners())
}

func (cc *CatalogController) GetPortfolio(c *fiber.Ctx) error {
	lang := cc.lang(c)

	result := []fiber.Map{}
	for _, project := range cc.Store.Portfolio() {
		result = append(result, fiber.Map{
			"id":          project.ID,
			"title":       locale.Pick(lang, project.Title, project.TitleEn),
			"client":      locale.Pick(lang, project.Client, project.ClientEn),
			"category":    locale.Pick(lang, project.Category, project.CategoryEn),
			"image":       project.Image,
			"description": locale.Pick(lang, project.Description, project.DescriptionEn),
		})
	}

	return c.JSON(result)
}

func courseSummary(course models.Course, lang locale.Language) fiber.Map {
	return fiber.Map{
		"id":          course.ID,
		"title":       locale.Pick(lang, course.Title, course.TitleEn),
		"subtitle":    locale.Pick(lang, course.Subtitle, course.SubtitleEn),
		"image":       course.Image,
		"tags":        locale.PickList(lang, course.Tags, course.TagsEn),
		"description": locale.Pick(lang, course.Description, course.DescriptionEn),
		"rating":      course.Rating,
		"duration":    locale.Pick(lang, course.Duration, course.DurationEn),
		"ageGroup":    locale.Pick(lang, course.AgeGroup, course.AgeGroupEn),
		"price":       course.Price,
	}
}

func courseView(course models.Course, lang locale.Language) fiber.Map {
	outcomes := []fiber.Map{}
	for _, o := range course.LearningOutcomes {
		outcomes = append(outcomes, fiber.Map{
			"title":       locale.Pick(lang, o.Title, o.TitleEn),
			"description": locale.Pick(lang, o.Description, o.DescriptionEn),
		})
	}

	sessions := []fiber.Map{}
	for _, s := range course.Sessions {
		sessions = append(sessions, fiber.Map{
			"date":   locale.Pick(lang, s.Date, s.DateEn),
			"time":   locale.Pick(lang, s.Time, s.TimeEn),
			"status": s.Status,
			"label":  locale.Pick(lang, s.StatusAr, s.StatusEn),
		})
	}

	view := courseSummary(course, lang)
	view["schedule"] = locale.Pick(lang, course.Schedule, course.ScheduleEn)
	view["features"] = locale.PickList(lang, course.Features, course.FeaturesEn)
	view["learningOutcomes"] = outcomes
	view["testimonials"] = course.Testimonials
	view["sessions"] = sessions
	return view
}
