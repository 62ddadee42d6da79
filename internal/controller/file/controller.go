// Package file provides HTTP handlers for file-related operations.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/logging"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/storage"
	"jobportal-backend/internal/utilities"

	"github.com/gin-gonic/gin"
)

// CompanyFinder loads a company with its current logo name
type CompanyFinder interface {
	FindCompany(ctx context.Context, id uint) (*model.JobCompany, error)
}

// FileController handles file related endpoints
type FileController struct {
	Companies CompanyFinder
	Storage   storage.Store
	log       *logging.Logger
}

// NewFileController creates a new instance of FileController
func NewFileController(companies CompanyFinder, store storage.Store, log *logging.Logger) *FileController {
	if log == nil {
		log = logging.Nop()
	}
	return &FileController{
		Companies: companies,
		Storage:   store,
		log:       log,
	}
}

// GetCompanyLogo streams the current logo of a company.
// @Summary Retrieve company logo
// @Tags File
// @Produce octet-stream
// @Param id path int true "Company ID"
// @Success 200 {string} binary "Successfully retrieve file"
// @Failure 400 {object} utilities.ErrorResponse "Invalid company id"
// @Failure 404 {object} utilities.ErrorResponse "Company or logo not found"
// @Failure 500 {object} utilities.ErrorResponse "Fail to send file content"
// @Router /company/{id}/logo [get]
func (fc *FileController) GetCompanyLogo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid company id: %s", c.Param("id")),
		})
		return
	}

	company, err := fc.Companies.FindCompany(c.Request.Context(), uint(id))
	if err != nil {
		c.JSON(jobpost.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}
	if company.Logo == "" {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Company has no logo"})
		return
	}

	reader, size, err := fc.Storage.Open(c.Request.Context(), jobpost.CompanyLogoDir(company.ID), company.Logo)
	if errors.Is(err, storage.ErrNotExist) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Logo file not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to read file from storage: %s", err.Error()),
		})
		return
	}
	defer func() {
		if err := reader.Close(); err != nil {
			fc.log.Warn("failed to close storage reader", "company_id", company.ID, "error", err)
		}
	}()

	contentType := mime.TypeByExtension(filepath.Ext(company.Logo))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Writer.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", company.Logo))
	c.Writer.Header().Set("Content-Type", contentType)
	if size >= 0 {
		c.Writer.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, reader); err != nil {
		fc.handleWriterError(c, err)
	}
}

func (fc *FileController) handleWriterError(c *gin.Context, err error) {
	fc.log.Warn("failed to send file content", "error", err)
	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to send file content",
		})
	} else {
		c.Abort()
	}
}
