// Package admin provides HTTP handlers for the company and location catalog job posts refer to.
package admin

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController manages job companies and job locations
type AdminController struct {
	DB *database.DBinstanceStruct
}

// NewAdminController creates a new instance of AdminController
func NewAdminController(db *database.DBinstanceStruct) *AdminController {
	return &AdminController{
		DB: db,
	}
}

type companyInfo struct {
	Name string `json:"name" binding:"required"`
}

type locationInfo struct {
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Country string `json:"country" binding:"required"`
}

func likePattern(s string) string {
	return "%" + strings.TrimSpace(s) + "%"
}

// GetCompanies function query the companies whose name contains the query "search"
// @Summary Get companies based on given query
// @Description If no query given, the server will return all companies
// @Tags Catalog
// @Produce json
// @Param search query string false "Part of the company name, case insensitive"
// @Success 200 {array} model.JobCompany
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /companies [get]
func (jc *AdminController) GetCompanies(c *gin.Context) {
	result := jc.DB.WithContext(c.Request.Context()).Order("id ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		result = result.Where("name ILIKE ?", likePattern(search))
	}

	companies := []model.JobCompany{}
	if err := result.Find(&companies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, companies)
}

// GetLocations function query the locations whose city, state or country contains the query "search"
// @Summary Get locations based on given query
// @Description If no query given, the server will return all locations
// @Tags Catalog
// @Produce json
// @Param search query string false "Part of the city, state or country, case insensitive"
// @Success 200 {array} model.JobLocation
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /locations [get]
func (jc *AdminController) GetLocations(c *gin.Context) {
	result := jc.DB.WithContext(c.Request.Context()).Order("id ASC")
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		p := likePattern(search)
		result = result.Where("(city ILIKE ? OR state ILIKE ? OR country ILIKE ?)", p, p, p)
	}

	locations := []model.JobLocation{}
	if err := result.Find(&locations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateCompany adds a company job posts can refer to
// @Summary Create a company
// @Description Only admin can access this endpoints
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company body companyInfo true "Company name"
// @Success 201 {object} model.JobCompany
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/companies [post]
func (jc *AdminController) CreateCompany(c *gin.Context) {
	var info companyInfo
	if err := c.ShouldBindJSON(&info); err != nil || strings.TrimSpace(info.Name) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Company name must be provided",
		})
		return
	}

	company := model.JobCompany{Name: strings.TrimSpace(info.Name)}
	if err := jc.DB.WithContext(c.Request.Context()).Create(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create company: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, company)
}

// EditCompany function allow admin to rename given company id
// @Summary Rename a company
// @Description Only admin can access this endpoints. The logo is changed through job post creation.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param company_id path int true "Company ID"
// @Param company body companyInfo true "New company name"
// @Success 200 {object} model.JobCompany
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 404 {object} utilities.ErrorResponse "Given company ID not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/companies/{company_id} [patch]
func (jc *AdminController) EditCompany(c *gin.Context) {
	companyID := c.Param("company_id")

	var info companyInfo
	if err := c.ShouldBindJSON(&info); err != nil || strings.TrimSpace(info.Name) == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Company name must be provided",
		})
		return
	}

	var company model.JobCompany
	err := jc.DB.WithContext(c.Request.Context()).Where("id = ?", companyID).First(&company).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: fmt.Sprintf("%s does not exist in the database", companyID),
		})
		return

	case err == nil:
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	company.Name = strings.TrimSpace(info.Name)

	if err := jc.DB.WithContext(c.Request.Context()).Save(&company).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update company: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, company)
}

// CreateLocation adds a location job posts can refer to
// @Summary Create a location
// @Description Only admin can access this endpoints
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body locationInfo true "City, state and country"
// @Success 201 {object} model.JobLocation
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /admin/locations [post]
func (jc *AdminController) CreateLocation(c *gin.Context) {
	var info locationInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "City and country must be provided",
		})
		return
	}

	location := model.JobLocation{
		City:    strings.TrimSpace(info.City),
		State:   strings.TrimSpace(info.State),
		Country: strings.TrimSpace(info.Country),
	}
	if err := jc.DB.WithContext(c.Request.Context()).Create(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create location: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, location)
}
