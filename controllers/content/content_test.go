package contentController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"educat/config"
	"educat/database"
	"educat/dto"
	"educat/middleware"
	"educat/models/curriculum"
	"educat/routers/contentRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type fixture struct {
	app   *fiber.App
	db    *gorm.DB
	token string

	subject curriculum.Subject
	topic   curriculum.Topic
	lesson1 curriculum.Lesson
	lesson2 curriculum.Lesson
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a pooled second connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	database.Database = database.DbInstance{Db: db}

	f := &fixture{app: fiber.New(), db: db}
	contentRoutes.SetupContentRoutes(f.app)

	f.token, err = middleware.GenerateJWT(1, "tester", "USER")
	require.NoError(t, err)

	f.subject = curriculum.Subject{Name: "Mathematics"}
	require.NoError(t, db.Create(&f.subject).Error)
	f.topic = curriculum.Topic{Name: "Algebra", SubjectID: f.subject.ID}
	require.NoError(t, db.Create(&f.topic).Error)
	f.lesson1 = curriculum.Lesson{Name: "Linear equations", TopicID: f.topic.ID}
	require.NoError(t, db.Create(&f.lesson1).Error)
	f.lesson2 = curriculum.Lesson{Name: "Quadratic equations", TopicID: f.topic.ID}
	require.NoError(t, db.Create(&f.lesson2).Error)

	return f
}

type result struct {
	Code   int
	Body   []byte
	Header http.Header
}

func (r result) String() string { return string(r.Body) }

func (f *fixture) do(t *testing.T, method, path string, body io.Reader, contentType string) result {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Authorization", "Bearer "+f.token)

	resp, err := f.app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return result{Code: resp.StatusCode, Body: raw, Header: resp.Header}
}

func decode(t *testing.T, res result, dest interface{}) {
	t.Helper()

	env := new(envelope)
	require.NoError(t, json.Unmarshal(res.Body, env))
	if dest != nil {
		require.NoError(t, json.Unmarshal(env.Data, dest))
	}
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, fileBytes []byte) (io.Reader, string) {
	t.Helper()

	buf := new(bytes.Buffer)
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileBytes)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func (f *fixture) createContent(t *testing.T, title string, lessonIDs ...uint) dto.ContentResponse {
	t.Helper()

	ids := make([]string, 0, len(lessonIDs))
	for _, id := range lessonIDs {
		ids = append(ids, fmt.Sprint(id))
	}
	body, contentType := multipartBody(t, map[string]string{
		"title":        title,
		"description":  "desc of " + title,
		"content_type": "DOCUMENT",
		"lesson_ids":   strings.Join(ids, ","),
	}, title+".pdf", []byte("payload of "+title))

	rec := f.do(t, "POST", "/content/createContent", body, contentType)
	require.Equal(t, fiber.StatusCreated, rec.Code, rec.String())

	var response dto.ContentResponse
	decode(t, rec, &response)
	return response
}

func TestCreateContentRequiresAuth(t *testing.T) {
	f := newFixture(t)

	body, contentType := multipartBody(t, map[string]string{"title": "T"}, "t.pdf", []byte("x"))
	req := httptest.NewRequest("POST", "/content/createContent", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCreateContent(t *testing.T) {
	f := newFixture(t)

	response := f.createContent(t, "Intro", f.lesson1.ID, f.lesson2.ID)

	assert.NotZero(t, response.ID)
	assert.Equal(t, "Intro", response.Title)
	assert.Equal(t, "DOCUMENT", response.ContentType)
	assert.Equal(t, "Intro.pdf", response.FileName)
	// author defaults to the authenticated user
	assert.Equal(t, uint(1), response.AuthorID)
	assert.ElementsMatch(t, []uint{f.lesson1.ID, f.lesson2.ID}, response.LessonIDs)
}

func TestCreateContentMissingFile(t *testing.T) {
	f := newFixture(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":        "T",
		"content_type": "VIDEO",
	}, "", nil)

	rec := f.do(t, "POST", "/content/createContent", body, contentType)
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)
}

func TestCreateContentEmptyFile(t *testing.T) {
	f := newFixture(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":        "T",
		"content_type": "VIDEO",
	}, "t.mp4", nil)

	rec := f.do(t, "POST", "/content/createContent", body, contentType)
	assert.Equal(t, fiber.StatusBadRequest, rec.Code)
}

func TestCreateContentInvalidType(t *testing.T) {
	f := newFixture(t)

	body, contentType := multipartBody(t, map[string]string{
		"title":        "T",
		"content_type": "PODCAST",
	}, "t.mp3", []byte("x"))

	rec := f.do(t, "POST", "/content/createContent", body, contentType)
	assert.Equal(t, fiber.StatusUnprocessableEntity, rec.Code)
}

func TestGetContent(t *testing.T) {
	f := newFixture(t)

	created := f.createContent(t, "Intro", f.lesson1.ID)

	rec := f.do(t, "GET", fmt.Sprintf("/content/getContent/%d", created.ID), nil, "")
	require.Equal(t, fiber.StatusOK, rec.Code)

	var response dto.ContentResponse
	decode(t, rec, &response)
	assert.Equal(t, created.ID, response.ID)
	assert.Equal(t, "Intro", response.Title)
}

func TestGetContentNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/content/getContent/999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestUpdateContent(t *testing.T) {
	f := newFixture(t)

	created := f.createContent(t, "Intro", f.lesson1.ID)

	payload := bytes.NewBufferString(`{"title":"Intro revised"}`)
	rec := f.do(t, "PUT", fmt.Sprintf("/content/updateContent/%d", created.ID), payload, "application/json")
	require.Equal(t, fiber.StatusOK, rec.Code)

	var response dto.ContentResponse
	decode(t, rec, &response)
	assert.Equal(t, "Intro revised", response.Title)
	assert.Equal(t, created.Description, response.Description)
	assert.Equal(t, created.LessonIDs, response.LessonIDs)
}

func TestUpdateContentNotFound(t *testing.T) {
	f := newFixture(t)

	payload := bytes.NewBufferString(`{"title":"x"}`)
	rec := f.do(t, "PUT", "/content/updateContent/999", payload, "application/json")
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestDeleteContent(t *testing.T) {
	f := newFixture(t)

	created := f.createContent(t, "Intro", f.lesson1.ID)

	rec := f.do(t, "DELETE", fmt.Sprintf("/content/deleteContent/%d", created.ID), nil, "")
	assert.Equal(t, fiber.StatusNoContent, rec.Code)

	rec = f.do(t, "GET", fmt.Sprintf("/content/getContent/%d", created.ID), nil, "")
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestDeleteContentNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "DELETE", "/content/deleteContent/999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestDownloadContent(t *testing.T) {
	f := newFixture(t)

	created := f.createContent(t, "Intro", f.lesson1.ID)

	rec := f.do(t, "GET", fmt.Sprintf("/content/%d/download", created.ID), nil, "")
	require.Equal(t, fiber.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Intro.pdf"`, rec.Header.Get("Content-Disposition"))
	assert.Equal(t, "payload of Intro", rec.String())
}

func TestDownloadContentNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/content/999/download", nil, "")
	assert.Equal(t, fiber.StatusNotFound, rec.Code)
}

func TestListContent(t *testing.T) {
	f := newFixture(t)

	c1 := f.createContent(t, "A", f.lesson1.ID)
	c2 := f.createContent(t, "B", f.lesson2.ID)

	rec := f.do(t, "GET", "/content/getContent", nil, "")
	require.Equal(t, fiber.StatusOK, rec.Code)

	var responses []dto.ContentResponse
	decode(t, rec, &responses)
	require.Len(t, responses, 2)
	assert.Equal(t, c1.ID, responses[0].ID)
	assert.Equal(t, c2.ID, responses[1].ID)
}

func TestListContentFilteredBySubject(t *testing.T) {
	f := newFixture(t)

	c1 := f.createContent(t, "A", f.lesson1.ID)

	rec := f.do(t, "GET", fmt.Sprintf("/content/getContent?subjectId=%d", f.subject.ID), nil, "")
	require.Equal(t, fiber.StatusOK, rec.Code)

	var responses []dto.ContentResponse
	decode(t, rec, &responses)
	require.Len(t, responses, 1)
	assert.Equal(t, c1.ID, responses[0].ID)
}

func TestListContentUngroundedFilterReturnsEmptyList(t *testing.T) {
	f := newFixture(t)

	f.createContent(t, "A", f.lesson1.ID)

	rec := f.do(t, "GET", "/content/getContent?topicId=999", nil, "")
	require.Equal(t, fiber.StatusOK, rec.Code)

	var responses []dto.ContentResponse
	decode(t, rec, &responses)
	assert.Empty(t, responses)
}

func TestListContentInvalidFilterValue(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, "GET", "/content/getContent?topicId=abc", nil, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, rec.Code)
}
