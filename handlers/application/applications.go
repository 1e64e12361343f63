package application

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gecampus/apply-api/database"
	"github.com/gecampus/apply-api/services"
	"github.com/gecampus/apply-api/utils/response"
)

// ApplicationHandler handles application form submissions
type ApplicationHandler struct {
	applicationService *services.ApplicationService
	uploadService      *services.UploadService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(store database.Storage, uploadService *services.UploadService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: services.NewApplicationService(store),
		uploadService:      uploadService,
	}
}

// SubmitApplication handles POST /api/applications. The resume, when
// attached, is written to disk before the field set is validated; the
// hourly sweeper reclaims files left behind by rejected submissions.
func (h *ApplicationHandler) SubmitApplication(c *fiber.Ctx) error {
	var resume *services.StoredFile

	// Browsers submit an empty part when no file was chosen; that counts
	// as no attachment
	fileHeader, err := c.FormFile("resume")
	if err == nil && fileHeader != nil && fileHeader.Filename != "" {
		resume, err = h.uploadService.SaveResume(fileHeader)
		if err != nil {
			if errors.Is(err, services.ErrResumeType) || errors.Is(err, services.ErrResumeTooLarge) {
				return response.BadRequest(c, err.Error())
			}
			log.Println("Failed to store resume:", err)
			return response.InternalServerError(c, "Failed to save application")
		}
	}

	var req services.ApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid form data")
	}

	if _, err := h.applicationService.Submit(&req, resume); err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return response.BadRequest(c, validationErr.Message)
		}
		log.Println("Failed to save application:", err)
		return response.InternalServerError(c, "Failed to save application")
	}

	return response.Created(c, "Application submitted successfully")
}
