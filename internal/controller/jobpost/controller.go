// Package jobpost provides HTTP handlers for job post related operations.
package jobpost

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"

	"github.com/gin-gonic/gin"
)

// JobPostController handles job post related endpoints
type JobPostController struct {
	Service *jobpost.Service
}

// NewJobPostController creates a new instance of JobPostController
func NewJobPostController(service *jobpost.Service) *JobPostController {
	return &JobPostController{
		Service: service,
	}
}

// viewerOf returns the viewer set by the auth middleware, or the anonymous viewer
func viewerOf(c *gin.Context) jobpost.Viewer {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		return jobpost.AnonymousViewer
	}
	return jobpost.ViewerFromUser(&user)
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid job post id: %s", c.Param("id")),
		})
		return 0, false
	}
	return uint(id), true
}

func respondError(c *gin.Context, err error) {
	c.JSON(jobpost.HTTPStatus(err), utilities.ErrorResponse{Error: err.Error()})
}

// Dashboard lists job posts for the dashboard of the caller
// @Summary List job posts for the dashboard
// @Description Recruiters see only their own posts filtered by job and location.
// @Description Everyone else gets the faceted search. A facet parameter must carry the canonical
// @Description value it stands for (for example partTime=Part-Time or remoteOnly=Remote-Only).
// @Tags Jobpost
// @Produce json
// @Security BearerAuth
// @Param job query string false "Keyword matched against title and description"
// @Param location query string false "Matched against city, state and country"
// @Param partTime query string false "Selects Part-Time, the value must be 'Part-Time'"
// @Param fullTime query string false "Selects Full-Time, the value must be 'Full-Time'"
// @Param freelance query string false "Selects Freelance, the value must be 'Freelance'"
// @Param internship query string false "Selects Internship, the value must be 'Internship'"
// @Param remoteOnly query string false "Selects Remote-Only, the value must be 'Remote-Only'"
// @Param officeOnly query string false "Selects Office-Only, the value must be 'Office-Only'"
// @Param partialRemote query string false "Selects Partial-Remote, the value must be 'Partial-Remote'"
// @Param today query boolean false "Posted since midnight, accepts true, 1, on or yes"
// @Param days7 query boolean false "Posted in the last 7 days, accepts true, 1, on or yes"
// @Param days30 query boolean false "Posted in the last 30 days, accepts true, 1, on or yes"
// @Success 200 {array} jobpost.JobPostView
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /dashboard [get]
func (jc *JobPostController) Dashboard(c *gin.Context) {
	views, err := jc.Service.Dashboard(c.Request.Context(), viewerOf(c), jobpost.RawParamsFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GlobalSearch runs the faceted search for every role
// @Summary Faceted job post search
// @Description Same parameters as the dashboard. Recruiters search every post here and
// @Description days_since_posted is always filled.
// @Tags Jobpost
// @Produce json
// @Security BearerAuth
// @Param job query string false "Keyword matched against title and description"
// @Param location query string false "Matched against city, state and country"
// @Param partTime query string false "Selects Part-Time, the value must be 'Part-Time'"
// @Param fullTime query string false "Selects Full-Time, the value must be 'Full-Time'"
// @Param freelance query string false "Selects Freelance, the value must be 'Freelance'"
// @Param internship query string false "Selects Internship, the value must be 'Internship'"
// @Param remoteOnly query string false "Selects Remote-Only, the value must be 'Remote-Only'"
// @Param officeOnly query string false "Selects Office-Only, the value must be 'Office-Only'"
// @Param partialRemote query string false "Selects Partial-Remote, the value must be 'Partial-Remote'"
// @Param today query boolean false "Posted since midnight, accepts true, 1, on or yes"
// @Param days7 query boolean false "Posted in the last 7 days, accepts true, 1, on or yes"
// @Param days30 query boolean false "Posted in the last 30 days, accepts true, 1, on or yes"
// @Success 200 {array} jobpost.JobPostView
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /global-search [get]
func (jc *JobPostController) GlobalSearch(c *gin.Context) {
	views, err := jc.Service.GlobalSearch(c.Request.Context(), viewerOf(c), jobpost.RawParamsFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// SearchOnly filters job posts by keyword and location only
// @Summary Keyword and location search
// @Tags Jobpost
// @Produce json
// @Security BearerAuth
// @Param job query string false "Keyword matched against title and description"
// @Param location query string false "Matched against city, state and country"
// @Success 200 {array} jobpost.JobPostView
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobpost/search [get]
func (jc *JobPostController) SearchOnly(c *gin.Context) {
	views, err := jc.Service.SearchOnly(c.Request.Context(), viewerOf(c), c.Query("job"), c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPostByID fetches a job post by its ID from the database
// @Summary Get job post by ID
// @Tags Jobpost
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Success 200 {object} jobpost.JobPostView "Job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job post id"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobpost/{id} [get]
func (jc *JobPostController) GetPostByID(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	view, err := jc.Service.GetOne(c.Request.Context(), viewerOf(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreateJobPostHandler handles the creation of a new job post by a recruiter.
// @Summary Create job post from a multipart form
// @Description Only recruiters have access to this endpoint. When companyLogo is sent and
// @Description job_company_id is set, the file becomes the company logo.
// @Tags Jobpost
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param job_type formData string true "Part-Time, Full-Time, Freelance or Internship"
// @Param remote formData string true "Remote-Only, Office-Only or Partial-Remote"
// @Param salary formData string false "Salary"
// @Param description formData string false "Description"
// @Param job_location_id formData int false "Job location ID"
// @Param job_company_id formData int false "Job company ID"
// @Param experience_required formData string false "Experience required"
// @Param certificate_required formData string false "Certificate required"
// @Param field formData string false "Field"
// @Param number formData string false "Number of openings"
// @Param companyLogo formData file false "Company logo"
// @Success 201 {object} model.JobPost "Successfully create job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid job post form"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 413 {object} utilities.ErrorResponse "Logo too large"
// @Failure 500 {object} utilities.ErrorResponse "Database or storage error"
// @Router /jobpost [post]
func (jc *JobPostController) CreateJobPostHandler(c *gin.Context) {
	jobPost := model.JobPost{}
	if err := c.ShouldBind(&jobPost.EditableJobPostInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var logo *jobpost.LogoUpload
	rawFile, err := c.FormFile("companyLogo")
	switch {
	case err == nil:
		f, err := rawFile.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to open file: %s", err.Error()),
			})
			return
		}
		defer func() { _ = f.Close() }()
		logo = &jobpost.LogoUpload{Filename: rawFile.Filename, Content: f}

	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// No logo

	default:
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
				Error: "File too large",
			})
			return
		}
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	created, err := jc.Service.AddNew(c.Request.Context(), viewerOf(c), &jobPost, logo)
	if err != nil {
		if created != nil {
			c.JSON(jobpost.HTTPStatus(err), utilities.ErrorResponse{
				Error: fmt.Sprintf("Job post %d created but company logo was not saved: %s", created.ID, err.Error()),
			})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// EditJobPost overwrites the editable fields of a job post owned by the caller
// @Summary Edit job post
// @Description Every editable field is written, missing fields become empty.
// @Tags Jobpost
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Param Jobpost body model.EditableJobPostInfo true "Job post information"
// @Success 200 {object} model.JobPost "Updated job post"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner of this post"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobpost/{id} [patch]
func (jc *JobPostController) EditJobPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var form model.EditableJobPostInfo
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&form); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	updated, err := jc.Service.UpdateFromForm(c.Request.Context(), viewerOf(c), id, form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJobPost deletes a job post owned by the caller along with its applications
// @Summary Delete job post
// @Tags Jobpost
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job post ID"
// @Success 200 {object} utilities.MessageResponse "Job post deleted"
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not the owner of this post"
// @Failure 404 {object} utilities.ErrorResponse "Job post not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobpost/{id} [delete]
func (jc *JobPostController) DeleteJobPost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := jc.Service.Delete(c.Request.Context(), viewerOf(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{
		Message: fmt.Sprintf("Job post %d deleted", id),
	})
}

// RecruiterJobs lists the caller's job posts with their candidate counts
// @Summary List own job posts with candidate counts
// @Tags Jobpost
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RecruiterJobSummary
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as recruiter"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /recruiter/jobs [get]
func (jc *JobPostController) RecruiterJobs(c *gin.Context) {
	summaries, err := jc.Service.RecruiterJobs(c.Request.Context(), viewerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}
