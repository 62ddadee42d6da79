package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"jobportal-backend/internal/database"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type registerInfo struct {
	Username    string  `json:"username" binding:"required"`
	Password    string  `json:"password" binding:"required"`
	Role        string  `json:"role" binding:"required,oneof=recruiter jobseeker"`
	Email       *string `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	CompanyName string  `json:"company_name"`
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LocalRegisterHandler function handles local registration by receiving username and password
// do nothing if username already exist in the database
// do nothing if password is shorter than 8 characters
// @Summary Handles local registration by receiving username and password
// @Description Username must not already exist and password must longer or equal to 8 characters long
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body registerInfo true "role can be only 'recruiter' or 'jobseeker'"
// @Success 201 {object} model.RecruiterResponse "If role is recruiter"
// @Success 201 {object} model.JobSeekerResponse "If role is jobseeker"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/register [post]
func (lh *LocalAuthHandler) LocalRegisterHandler(c *gin.Context) {
	var info registerInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username, password, and Role (Only 'recruiter' or 'jobseeker') must be provided",
		})
		return
	}
	info.Username = strings.TrimSpace(info.Username)

	var user model.User
	err := lh.DB.WithContext(c.Request.Context()).Where("username = ?", info.Username).First(&user).Error

	switch {
	case err == nil:
		LogAuthAttempt("warning", "Local", "Fail", info.Username, "username already exist")
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username already exist",
		})
		return

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing

	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if len(info.Password) < 8 {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Password should longer or equal to 8 characters",
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	user = model.User{
		ID:       uuid.New(),
		Username: info.Username,
		Password: hashedPassword,
		Email:    info.Email,
		Role:     info.Role,
	}

	var response any
	err = lh.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		switch info.Role {
		case model.RoleRecruiter:
			profile := model.RecruiterProfile{
				UserID:      user.ID,
				FirstName:   info.FirstName,
				LastName:    info.LastName,
				CompanyName: info.CompanyName,
			}
			if err := tx.Omit("User").Create(&profile).Error; err != nil {
				return err
			}
			profile.User = user
			response = &model.RecruiterResponse{User: profile}
		default:
			profile := model.JobSeekerProfile{
				UserID:    user.ID,
				FirstName: info.FirstName,
				LastName:  info.LastName,
			}
			if err := tx.Omit("User").Create(&profile).Error; err != nil {
				return err
			}
			profile.User = user
			response = &model.JobSeekerResponse{User: profile}
		}
		return nil
	})
	if err != nil {
		LogAuthAttempt("error", "Local", "Fail", info.Username, err.Error())
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create user: %s", err.Error()),
		})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	switch r := response.(type) {
	case *model.RecruiterResponse:
		r.AccessToken = accessToken
	case *model.JobSeekerResponse:
		r.AccessToken = accessToken
	}

	LogAuthAttempt("info", "Local", "Success", user.ID.String(), "registered as "+user.Role)
	c.JSON(http.StatusCreated, response)
}

// LocalLoginHandler function handles local login by receiving username and password
// do nothing if username does not exist in the database
// do nothing if password is incorrect
// @Summary Handles local login by receiving username and password
// @Description Username must exist and password match
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Credentials for login"
// @Success 200 {object} model.RecruiterResponse "If role is recruiter"
// @Success 200 {object} model.JobSeekerResponse "If role is jobseeker"
// @Success 200 {object} model.AdminResponse "If role is admin"
// @Failure 400 {object} utilities.ErrorResponse "Info provided not met the condition"
// @Failure 401 {object} utilities.ErrorResponse "Username not exist or password incorrect"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	db := lh.DB.WithContext(c.Request.Context())

	var user model.User
	err := db.Where("username = ?", strings.TrimSpace(info.Username)).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAuthAttempt("warning", "Local", "Fail", info.Username, "username not exist")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
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

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt("warning", "Local", "Fail", user.ID.String(), "password incorrect")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	switch user.Role {
	case model.RoleRecruiter:
		var profile model.RecruiterProfile
		if err := db.Preload("User").Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve user data: %s", err.Error()),
			})
			return
		}
		c.JSON(http.StatusOK, model.RecruiterResponse{
			User:        profile,
			AccessToken: accessToken,
		})
	case model.RoleJobSeeker:
		var profile model.JobSeekerProfile
		if err := db.Preload("User").Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve user data: %s", err.Error()),
			})
			return
		}
		c.JSON(http.StatusOK, model.JobSeekerResponse{
			User:        profile,
			AccessToken: accessToken,
		})
	default:
		c.JSON(http.StatusOK, model.AdminResponse{
			User:        user,
			AccessToken: accessToken,
		})
	}

	LogAuthAttempt("info", "Local", "Success", user.ID.String(), "")
}
