package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/itabaza/hms-api/internal/config"
	"github.com/itabaza/hms-api/internal/httperr"
	"github.com/itabaza/hms-api/internal/middleware"
	"github.com/itabaza/hms-api/internal/models"
	"github.com/itabaza/hms-api/internal/store"
	"github.com/itabaza/hms-api/internal/validators"
)

type AuthHandler struct {
	patients *store.PatientStore
	doctors  *store.DoctorStore
	config   *config.Config
}

func NewAuthHandler(patients *store.PatientStore, doctors *store.DoctorStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{patients: patients, doctors: doctors, config: cfg}
}

// --------- Requests ---------

type PatientSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type DoctorSignupRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Phone          string `json:"phone"`
	DepartmentID   uint   `json:"department_id" binding:"required"`
	Qualifications string `json:"qualifications"`
	ExperienceYrs  int    `json:"experience_years"`
	City           string `json:"city"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Patient ---------

func (h *AuthHandler) PatientSignup(c *gin.Context) {
	var req PatientSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	existing, err := h.patients.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "signup_failed", "Could not check email.")
		return
	}
	if existing != nil {
		httperr.BadRequest(c, "email_already_registered", "Email is already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	patient := models.Patient{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
	}

	if err := h.patients.Create(c.Request.Context(), &patient); err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Could not create account.")
		return
	}

	token, err := h.generateToken(patient.ID, middleware.RolePatient)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user": gin.H{
			"id":    patient.ID,
			"name":  patient.Name,
			"email": patient.Email,
			"phone": patient.Phone,
		},
		"token": token,
	})
}

func (h *AuthHandler) PatientSignin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	patient, err := h.patients.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "signin_failed", "Could not load account.")
		return
	}
	if patient == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(patient.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(patient.ID, middleware.RolePatient)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    patient.ID,
			"name":  patient.Name,
			"email": patient.Email,
			"phone": patient.Phone,
		},
		"token": token,
	})
}

// --------- Doctor ---------

func (h *AuthHandler) DoctorSignup(c *gin.Context) {
	var req DoctorSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	existing, err := h.doctors.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "signup_failed", "Could not check email.")
		return
	}
	if existing != nil {
		httperr.BadRequest(c, "email_already_registered", "Email is already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	// New doctors start unapproved: Status stays false until an admin
	// reviews the application.
	doctor := models.Doctor{
		Name:           req.Name,
		Email:          email,
		PasswordHash:   string(hashed),
		Phone:          req.Phone,
		DepartmentID:   req.DepartmentID,
		Qualifications: req.Qualifications,
		ExperienceYrs:  req.ExperienceYrs,
		City:           req.City,
		Status:         false,
		IsAvailable:    true,
	}

	if err := h.doctors.Create(c.Request.Context(), &doctor); err != nil {
		httperr.Internal(c, "failed_to_create_doctor", "Could not create account.")
		return
	}

	token, err := h.generateToken(doctor.ID, middleware.RoleDoctor)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user": gin.H{
			"id":     doctor.ID,
			"name":   doctor.Name,
			"email":  doctor.Email,
			"phone":  doctor.Phone,
			"status": doctor.Status,
		},
		"token": token,
	})
}

func (h *AuthHandler) DoctorSignin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	doctor, err := h.doctors.GetByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "signin_failed", "Could not load account.")
		return
	}
	if doctor == nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doctor.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid email or password.")
		return
	}

	token, err := h.generateToken(doctor.ID, middleware.RoleDoctor)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":           doctor.ID,
			"name":         doctor.Name,
			"email":        doctor.Email,
			"phone":        doctor.Phone,
			"status":       doctor.Status,
			"is_available": doctor.IsAvailable,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
