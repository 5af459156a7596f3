// internal/handlers/upload.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modaluxe/backoffice/internal/i18n"
	"github.com/modaluxe/backoffice/internal/services"
	"github.com/modaluxe/backoffice/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{
		storageService: storageService,
	}
}

// POST /v1/upload/images
// Multipart form with a "file" part and an optional "folder" field.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileNotProvided))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		return
	}
	defer file.Close()

	folder := c.PostForm("folder")

	result, err := h.storageService.UploadImage(file, fileHeader, folder)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileTooLarge):
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, i18n.T(lang, i18n.KeyFileTooLarge))
		case errors.Is(err, services.ErrUnsupportedType):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType))
		default:
			utils.InternalErrorResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   i18n.T(lang, i18n.KeyFileUploadSuccess),
		"url":       result.URL,
		"file_path": result.FilePath,
		"size":      result.Size,
		"mime_type": result.MimeType,
	})
}

// DELETE /v1/upload/images?file_path=
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	filePath := c.Query("file_path")
	if filePath == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFilePathRequired))
		return
	}

	if err := h.storageService.DeleteFile(filePath); err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.MessageResponse(c, i18n.T(lang, i18n.KeyFileDeleted))
}
