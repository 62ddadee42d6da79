// Package application provides HTTP handlers for job application operations.
package application

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/utilities"

	"github.com/gin-gonic/gin"
)

// ApplicationController handles job application related endpoints
type ApplicationController struct {
	Service *jobpost.Service
}

// NewApplicationController creates a new instance of ApplicationController with the provided job post service.
func NewApplicationController(service *jobpost.Service) *ApplicationController {
	return &ApplicationController{
		Service: service,
	}
}

type applyInfo struct {
	CoverLetter string `json:"cover_letter"`
}

func (j *ApplicationController) caller(c *gin.Context) (jobpost.Viewer, uint, bool) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return jobpost.Viewer{}, 0, false
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid job post id: %s", c.Param("id")),
		})
		return jobpost.Viewer{}, 0, false
	}
	return jobpost.ViewerFromUser(&user), uint(id), true
}

// ApplicationHandler handles the creation of a new job application by a job seeker.
// @Summary Apply to a job post
// @Description Only job seekers can access this endpoint. The body is optional.
// @Tags Application
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Param application body applyInfo false "Cover letter"
// @Success 201 {object} model.Application "Successfully apply job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as job seeker"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 409 {object} utilities.ErrorResponse "Already applied"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobpost/{id}/apply [post]
func (j *ApplicationController) ApplicationHandler(c *gin.Context) {
	viewer, id, ok := j.caller(c)
	if !ok {
		return
	}

	var info applyInfo
	if err := c.ShouldBindJSON(&info); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application, err := j.Service.Apply(c.Request.Context(), viewer, id, info.CoverLetter)
	if err != nil {
		c.JSON(jobpost.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// SaveJobHandler bookmarks a job post for the calling job seeker.
// @Summary Save a job post
// @Description Only job seekers can access this endpoint
// @Tags Application
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Success 201 {object} model.SavedJob "Successfully saved job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as job seeker"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 409 {object} utilities.ErrorResponse "Already saved"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobpost/{id}/save [post]
func (j *ApplicationController) SaveJobHandler(c *gin.Context) {
	viewer, id, ok := j.caller(c)
	if !ok {
		return
	}

	saved, err := j.Service.Save(c.Request.Context(), viewer, id)
	if err != nil {
		c.JSON(jobpost.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}
