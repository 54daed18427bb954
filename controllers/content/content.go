package contentController

import (
	"educat/database"
	"educat/dto"
	"educat/middleware"
	"educat/service"
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// CreateContent creates a content item from a multipart request
func CreateContent(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCreateContent").(*dto.CreateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fileHeader, ok := c.Locals("contentFile").(*multipart.FileHeader)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File is required!", nil)
	}

	fileData, err := readFile(fileHeader)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to read uploaded file!", nil)
	}

	// The authenticated user is the author unless the form says otherwise
	if reqData.AuthorID == 0 {
		reqData.AuthorID = userId
	}

	svc := service.NewContentService(database.Database.Db)
	response, err := svc.Create(*reqData, fileData, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "File must not be empty!", nil)
		}
		log.Printf("Error creating content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", response)
}

// UpdateContent applies a partial update to an existing content item
func UpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(uint)

	reqData, ok := c.Locals("validatedUpdateContent").(*dto.UpdateContentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	svc := service.NewContentService(database.Database.Db)
	response, err := svc.Update(contentID, *reqData)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}
		log.Printf("Error updating content %d: %v", contentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", response)
}

// DeleteContent removes a content item and its lesson associations
func DeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(uint)

	svc := service.NewContentService(database.Database.Db)
	if err := svc.Delete(contentID); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}
		log.Printf("Error deleting content %d: %v", contentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetContent returns the metadata of a single content item
func GetContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(uint)

	svc := service.NewContentService(database.Database.Db)
	response, err := svc.Get(contentID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}
		log.Printf("Error fetching content %d: %v", contentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content found.", response)
}

// DownloadContent streams the raw file bytes with the stored file name
func DownloadContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(uint)

	svc := service.NewContentService(database.Database.Db)
	content, err := svc.GetWithPayload(contentID)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
		}
		log.Printf("Error fetching content %d for download: %v", contentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+content.FileName+`"`)
	return c.Send(content.FileData)
}

// ListContent returns content filtered by the optional lesson/topic/subject
// query parameters, sorted ascending by id
func ListContent(c *fiber.Ctx) error {
	filter := c.Locals("contentFilter").(dto.ContentFilter)

	svc := service.NewContentService(database.Database.Db)
	responses, err := svc.List(filter)
	if err != nil {
		log.Printf("Error listing content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content list fetched.", responses)
}

func readFile(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
