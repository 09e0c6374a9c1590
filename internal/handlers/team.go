package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

type TeamHandler struct {
	DB *gorm.DB
}

func (h *TeamHandler) GetTeams(c echo.Context) error {
	var teams []models.Team
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&teams).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, teams)
}

func (h *TeamHandler) GetTeam(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var team models.Team
	if err := h.DB.WithContext(c.Request().Context()).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "team not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) CreateTeam(c echo.Context) error {
	var req struct {
		Name         string `json:"name"`
		DepartmentID uint   `json:"department_id"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.DepartmentID == 0 {
		return errorResponse(c, http.StatusBadRequest, "name and department_id are required")
	}

	team := models.Team{Name: req.Name, DepartmentID: req.DepartmentID}
	if err := h.DB.WithContext(c.Request().Context()).Create(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "team already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, team)
}

func (h *TeamHandler) UpdateTeam(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Name         string `json:"name"`
		DepartmentID *uint  `json:"department_id"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var team models.Team
	if err := h.DB.WithContext(c.Request().Context()).First(&team, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "team not found")
		}
		return storageError(c, err)
	}

	if req.Name != "" {
		team.Name = req.Name
	}
	if req.DepartmentID != nil {
		team.DepartmentID = *req.DepartmentID
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "team already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, team)
}

func (h *TeamHandler) DeleteTeam(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.Team{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "team not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Team deleted successfully"})
}
