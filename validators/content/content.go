package contentValidator

import (
	"educat/config"
	"educat/dto"
	"educat/middleware"
	"educat/models"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateContent validates the multipart create request. The file part is
// checked for presence here; emptiness is re-checked by the service.
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &dto.CreateContentRequest{
			Title:       strings.TrimSpace(c.FormValue("title")),
			Description: strings.TrimSpace(c.FormValue("description")),
			ContentType: strings.ToUpper(strings.TrimSpace(c.FormValue("content_type"))),
		}

		errors := make(map[string]string)

		if authorID := c.FormValue("author_id"); authorID != "" {
			parsed, err := strconv.ParseUint(authorID, 10, 64)
			if err != nil {
				errors["author_id"] = "Author ID must be a positive number!"
			} else {
				reqData.AuthorID = uint(parsed)
			}
		}

		lessonIDs, err := parseLessonIDs(c)
		if err != nil {
			errors["lesson_ids"] = "Lesson IDs must be positive numbers!"
		}
		reqData.LessonIDs = lessonIDs

		if reqData.ContentType != "" && !models.ValidContentType(reqData.ContentType) {
			errors["content_type"] = "Content type must be one of VIDEO, DOCUMENT, IMAGE, OTHER!"
		}

		if err := validate.Struct(reqData); err != nil {
			mergeFieldErrors(errors, err)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		file, err := c.FormFile("file")
		if err != nil || file == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
		}
		if file.Size == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File must not be empty!", nil)
		}
		if file.Size > int64(config.AppConfig.MaxUploadBytes) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File exceeds the maximum upload size!", nil)
		}

		c.Locals("validatedCreateContent", reqData)
		c.Locals("contentFile", file)
		return c.Next()
	}
}

// UpdateContent validates the JSON partial-update request
func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := parseContentID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		reqData := new(dto.UpdateContentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ContentType != nil {
			upper := strings.ToUpper(strings.TrimSpace(*reqData.ContentType))
			reqData.ContentType = &upper
			if !models.ValidContentType(upper) {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"content_type": "Content type must be one of VIDEO, DOCUMENT, IMAGE, OTHER!",
				})
			}
		}

		c.Locals("contentID", contentID)
		c.Locals("validatedUpdateContent", reqData)
		return c.Next()
	}
}

// ContentID validates the content id path parameter for get, delete and
// download requests
func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := parseContentID(c)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Content ID!", nil)
		}

		c.Locals("contentID", contentID)
		return c.Next()
	}
}

// ListContent validates the optional lessonId/topicId/subjectId query
// filters. An omitted filter stays nil so the service can tell "no filter"
// from "filter on id N".
func ListContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := dto.ContentFilter{}
		errors := make(map[string]string)

		filter.LessonID = parseOptionalID(c, "lessonId", errors)
		filter.TopicID = parseOptionalID(c, "topicId", errors)
		filter.SubjectID = parseOptionalID(c, "subjectId", errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("contentFilter", filter)
		return c.Next()
	}
}

func parseContentID(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("contentId"))
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(parsed), nil
}

func parseOptionalID(c *fiber.Ctx, name string, errors map[string]string) *uint {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		errors[name] = name + " must be a positive number!"
		return nil
	}
	id := uint(parsed)
	return &id
}

// parseLessonIDs accepts repeated lesson_ids form fields as well as a single
// comma-separated value
func parseLessonIDs(c *fiber.Ctx) ([]uint, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	var ids []uint
	for _, value := range form.Value["lesson_ids"] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			parsed, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, err
			}
			ids = append(ids, uint(parsed))
		}
	}
	return ids, nil
}

func mergeFieldErrors(errors map[string]string, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request!"
		return
	}
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = field + " is required!"
		case "min":
			errors[field] = field + " must be at least " + fieldErr.Param() + " characters long!"
		case "max":
			errors[field] = field + " must not exceed " + fieldErr.Param() + " characters!"
		case "oneof":
			errors[field] = field + " must be one of: " + fieldErr.Param() + "!"
		default:
			errors[field] = field + " is invalid!"
		}
	}
}
