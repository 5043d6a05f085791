package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"project/backend/auth"
	"project/backend/config"
	"project/backend/session"
	"project/backend/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *store.Store, *session.Session) {
	cfg := &config.Config{
		AdminPassword: "admin123",
		JWTSecret:     "test-secret",
	}
	st := store.New()
	sess := session.New(st, auth.NewSharedSecret(cfg.AdminPassword))

	app := fiber.New()
	SetupRoutes(app, st, sess, cfg)
	return app, st, sess
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(jsonRequest("POST", "/api/admin/login", fiber.Map{"password": "admin123"}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decode(t, resp, &result)
	token, _ := result["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestGetCoursesLocalized(t *testing.T) {
	app, _, _ := newTestApp()

	// Default session language is Arabic.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []map[string]interface{}
	decode(t, resp, &courses)
	assert.Len(t, courses, 2)
	assert.Equal(t, "مخيم بناء الذكاء الاصطناعي (7 أيام)", courses[0]["title"])

	// Explicit ?lang=en overrides the session language.
	resp, err = app.Test(httptest.NewRequest("GET", "/api/courses?lang=en", nil))
	assert.NoError(t, err)

	decode(t, resp, &courses)
	assert.Equal(t, "The 7-Day AI Build Camp", courses[0]["title"])
}

func TestGetCourseDetails(t *testing.T) {
	app, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/young-innovators?lang=en", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	decode(t, resp, &result)
	course := result["course"].(map[string]interface{})
	assert.Equal(t, "Young AI Innovators", course["title"])
	assert.Len(t, course["learningOutcomes"], 4)
	assert.Len(t, course["sessions"], 2)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/courses/missing", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestToggleLanguageChangesDefaults(t *testing.T) {
	app, _, _ := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/session/language/toggle", nil))
	assert.NoError(t, err)

	var snapshot map[string]interface{}
	decode(t, resp, &snapshot)
	assert.Equal(t, "EN", snapshot["language"])
	assert.Equal(t, "ltr", snapshot["direction"])
	assert.Equal(t, "en", snapshot["languageTag"])

	resp, err = app.Test(httptest.NewRequest("GET", "/api/settings", nil))
	assert.NoError(t, err)

	var settings map[string]interface{}
	decode(t, resp, &settings)
	assert.Equal(t, "Dream. Build. Launch.", settings["heroTitle"])

	// Toggling back restores Arabic everywhere.
	_, err = app.Test(jsonRequest("POST", "/api/session/language/toggle", nil))
	assert.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/settings", nil))
	assert.NoError(t, err)
	decode(t, resp, &settings)
	assert.Equal(t, "احلـم. ابـنِ. انطلـق.", settings["heroTitle"])
}

func TestEnrollValidation(t *testing.T) {
	app, _, _ := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/courses/7-day-build-camp/enroll", fiber.Map{
		"studentName": "Sami",
		"email":       "not-an-email",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/api/courses/7-day-build-camp/enroll", fiber.Map{
		"email": "sami@example.com",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestEnrollFlow(t *testing.T) {
	app, st, _ := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/courses/7-day-build-camp/enroll", fiber.Map{
		"studentName": "Sami",
		"email":       "sami@example.com",
		"mode":        "online",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	decode(t, resp, &result)
	data := result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "online", data["mode"])
	// Course title is snapshotted from the course record.
	assert.Equal(t, "مخيم بناء الذكاء الاصطناعي (7 أيام)", data["courseTitle"])
	// Form defaults for the fields the quick form does not capture.
	assert.Equal(t, "Parent", data["parentName"])
	assert.Equal(t, float64(12), data["age"])

	enrollments := st.Enrollments()
	assert.Len(t, enrollments, 1)
	assert.Equal(t, data["id"], enrollments[0].ID)

	// Newest first.
	resp, err = app.Test(jsonRequest("POST", "/api/courses/young-innovators/enroll", fiber.Map{
		"studentName": "Yasmine",
		"email":       "yasmine@example.com",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Yasmine", st.Enrollments()[0].StudentName)
	assert.Equal(t, "campus", st.Enrollments()[0].Mode)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, _, _ := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/courses/missing/enroll", fiber.Map{
		"studentName": "Sami",
		"email":       "sami@example.com",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBrochureFlow(t *testing.T) {
	app, st, _ := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/courses/young-innovators/brochure", fiber.Map{
		"fullName": "Sami Mansouri",
		"email":    "sami@example.com",
		"phone":    "+212600000000",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	requests := st.BrochureRequests()
	assert.Len(t, requests, 1)
	assert.Equal(t, "المبتكرون الصغار في الذكاء الاصطناعي", requests[0].CourseTitle)

	// Missing phone blocks the request.
	resp, err = app.Test(jsonRequest("POST", "/api/courses/young-innovators/brochure", fiber.Map{
		"fullName": "Sami Mansouri",
		"email":    "sami@example.com",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Len(t, st.BrochureRequests(), 1)
}

func TestAdminLoginWrongThenRight(t *testing.T) {
	app, _, sess := newTestApp()

	resp, err := app.Test(jsonRequest("POST", "/api/admin/login", fiber.Map{"password": "wrong"}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.True(t, sess.LoginError())
	assert.False(t, sess.AdminLoggedIn())

	// The error flag drops as soon as the password field changes.
	resp, err = app.Test(jsonRequest("POST", "/api/session/login-error/clear", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.False(t, sess.LoginError())

	loginAdmin(t, app)
	assert.True(t, sess.AdminLoggedIn())
	assert.False(t, sess.LoginError())
}

func TestAdminGate(t *testing.T) {
	app, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/admin/enrollments", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// The gate answers with the standard error envelope.
	var envelope map[string]interface{}
	decode(t, resp, &envelope)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Unauthorized", envelope["error"])

	token := loginAdmin(t, app)
	req := httptest.NewRequest("GET", "/api/admin/enrollments", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Logout locks the gate even though the token itself is still live.
	logoutReq := jsonRequest("POST", "/api/admin/logout", nil)
	logoutReq.Header.Set("Authorization", token)
	resp, err = app.Test(logoutReq)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/admin/enrollments", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminCourseCRUD(t *testing.T) {
	app, st, _ := newTestApp()
	token := loginAdmin(t, app)

	// Add a near-empty record, dashboard style.
	req := jsonRequest("POST", "/api/admin/courses", fiber.Map{"title": "دورة جديدة"})
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result map[string]interface{}
	decode(t, resp, &result)
	created := result["data"].(map[string]interface{})
	id := created["id"].(string)
	assert.NotEmpty(t, id)
	assert.Len(t, st.Courses(), 3)

	// Whole-record update keyed by the path id.
	req = jsonRequest("PUT", "/api/admin/courses/"+id, fiber.Map{
		"title":   "دورة محدثة",
		"titleEn": "Updated Course",
	})
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	course, ok := st.Course(id)
	require.True(t, ok)
	assert.Equal(t, "Updated Course", course.TitleEn)

	// Update of a missing id is a lenient no-op.
	req = jsonRequest("PUT", "/api/admin/courses/missing", fiber.Map{"title": "X"})
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, st.Courses(), 3)

	// Delete, twice: second one is a no-op too.
	for i := 0; i < 2; i++ {
		req = httptest.NewRequest("DELETE", "/api/admin/courses/"+id, nil)
		req.Header.Set("Authorization", token)
		resp, err = app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}
	assert.Len(t, st.Courses(), 2)
}

func TestAdminUpdateEnrollmentStatus(t *testing.T) {
	app, st, _ := newTestApp()
	token := loginAdmin(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/courses/7-day-build-camp/enroll", fiber.Map{
		"studentName": "Sami",
		"email":       "sami@example.com",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := st.Enrollments()[0].ID

	req := jsonRequest("PUT", "/api/admin/enrollments/"+id+"/status", fiber.Map{
		"status":   "confirmed",
		"meetLink": "https://meet.example/x",
	})
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	got := st.Enrollments()[0]
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, "https://meet.example/x", got.MeetLink)
	assert.Equal(t, "Sami", got.StudentName)

	// Statuses outside the enum fail validation like any other form.
	req = jsonRequest("PUT", "/api/admin/enrollments/"+id+"/status", fiber.Map{"status": "archived"})
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "confirmed", st.Enrollments()[0].Status)
}

func TestAdminReplaceSettings(t *testing.T) {
	app, st, _ := newTestApp()
	token := loginAdmin(t, app)

	req := jsonRequest("PUT", "/api/admin/settings", fiber.Map{
		"academyName":   "أكاديمية جديدة",
		"academyNameEn": "New Academy",
		"contactEmail":  "hello@example.com",
	})
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	settings := st.SiteSettings()
	assert.Equal(t, "New Academy", settings.AcademyNameEn)
	// Replace is wholesale: fields the form did not send are gone.
	assert.Empty(t, settings.HeroTitle)
}

func TestSessionNavigationAndDanglingCourse(t *testing.T) {
	app, _, _ := newTestApp()
	token := loginAdmin(t, app)

	resp, err := app.Test(jsonRequest("POST", "/api/session/view", fiber.Map{
		"view":     "course-detail",
		"courseId": "7-day-build-camp",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var snapshot map[string]interface{}
	decode(t, resp, &snapshot)
	assert.Equal(t, "course-detail", snapshot["view"])
	assert.Equal(t, "7-day-build-camp", snapshot["selectedCourseId"])

	// Admin deletes the course out from under the detail view.
	req := httptest.NewRequest("DELETE", "/api/admin/courses/7-day-build-camp", nil)
	req.Header.Set("Authorization", token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// The session degrades to home instead of pointing at nothing.
	resp, err = app.Test(httptest.NewRequest("GET", "/api/session", nil))
	assert.NoError(t, err)
	decode(t, resp, &snapshot)
	assert.Equal(t, "home", snapshot["view"])
	assert.Equal(t, "", snapshot["selectedCourseId"])

	// Selecting an unknown course is rejected outright.
	resp, err = app.Test(jsonRequest("POST", "/api/session/view", fiber.Map{
		"view":     "course-detail",
		"courseId": "missing",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Unknown view names are request errors.
	resp, err = app.Test(jsonRequest("POST", "/api/session/view", fiber.Map{"view": "dashboard"}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
