package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

type DepartmentHandler struct {
	DB *gorm.DB
}

func (h *DepartmentHandler) GetDepartments(c echo.Context) error {
	var departments []models.Department
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&departments).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, departments)
}

func (h *DepartmentHandler) GetDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var department models.Department
	if err := h.DB.WithContext(c.Request().Context()).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "department not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) CreateDepartment(c echo.Context) error {
	var req struct {
		Name      string `json:"name"`
		CompanyID uint   `json:"company_id"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" || req.CompanyID == 0 {
		return errorResponse(c, http.StatusBadRequest, "name and company_id are required")
	}

	department := models.Department{Name: req.Name, CompanyID: req.CompanyID}
	if err := h.DB.WithContext(c.Request().Context()).Create(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "department already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, department)
}

func (h *DepartmentHandler) UpdateDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Name      string `json:"name"`
		CompanyID *uint  `json:"company_id"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var department models.Department
	if err := h.DB.WithContext(c.Request().Context()).First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "department not found")
		}
		return storageError(c, err)
	}

	if req.Name != "" {
		department.Name = req.Name
	}
	if req.CompanyID != nil {
		department.CompanyID = *req.CompanyID
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorResponse(c, http.StatusBadRequest, "department already exists")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, department)
}

func (h *DepartmentHandler) DeleteDepartment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.Department{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "department not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Department deleted successfully"})
}
