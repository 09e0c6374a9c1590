package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	mwauth "github.com/THANH290803/companyName/internal/middleware/auth"
	"github.com/THANH290803/companyName/internal/models"
)

type ProjectHandler struct {
	DB *gorm.DB
}

func (h *ProjectHandler) GetProjects(c echo.Context) error {
	var projects []models.Project
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&projects).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var project models.Project
	if err := h.DB.WithContext(c.Request().Context()).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "project not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, ok := mwauth.UserID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req struct {
		Name         string     `json:"name"`
		Description  string     `json:"description"`
		CompanyID    *uint      `json:"company_id"`
		DepartmentID *uint      `json:"department_id"`
		TeamID       *uint      `json:"team_id"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return errorResponse(c, http.StatusBadRequest, "name is required")
	}

	project := models.Project{
		Name:         req.Name,
		Description:  req.Description,
		CreatedBy:    userID,
		CompanyID:    req.CompanyID,
		DepartmentID: req.DepartmentID,
		TeamID:       req.TeamID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	if err := h.DB.WithContext(c.Request().Context()).Create(&project).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Name         string     `json:"name"`
		Description  *string    `json:"description"`
		CompanyID    *uint      `json:"company_id"`
		DepartmentID *uint      `json:"department_id"`
		TeamID       *uint      `json:"team_id"`
		StartDate    *time.Time `json:"start_date"`
		EndDate      *time.Time `json:"end_date"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var project models.Project
	if err := h.DB.WithContext(c.Request().Context()).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "project not found")
		}
		return storageError(c, err)
	}

	if req.Name != "" {
		project.Name = req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.CompanyID != nil {
		project.CompanyID = req.CompanyID
	}
	if req.DepartmentID != nil {
		project.DepartmentID = req.DepartmentID
	}
	if req.TeamID != nil {
		project.TeamID = req.TeamID
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&project).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.Project{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "project not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Project deleted successfully"})
}
