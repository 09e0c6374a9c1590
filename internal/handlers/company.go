package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/THANH290803/companyName/internal/models"
)

type CompanyHandler struct {
	DB *gorm.DB
}

func (h *CompanyHandler) GetCompanies(c echo.Context) error {
	var companies []models.Company
	if err := h.DB.WithContext(c.Request().Context()).Order("id ASC").Find(&companies).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) GetCompany(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var company models.Company
	if err := h.DB.WithContext(c.Request().Context()).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "company not found")
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req struct {
		Name          string `json:"name"`
		IsHeadquarter bool   `json:"is_headquarter"`
		Phone         string `json:"phone"`
		Email         string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.Name == "" {
		return errorResponse(c, http.StatusBadRequest, "name is required")
	}

	company := models.Company{
		Name:          req.Name,
		IsHeadquarter: req.IsHeadquarter,
		Phone:         req.Phone,
		Email:         req.Email,
	}
	if err := h.DB.WithContext(c.Request().Context()).Create(&company).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		Name          string `json:"name"`
		IsHeadquarter *bool  `json:"is_headquarter"`
		Phone         string `json:"phone"`
		Email         string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	var company models.Company
	if err := h.DB.WithContext(c.Request().Context()).First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "company not found")
		}
		return storageError(c, err)
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.IsHeadquarter != nil {
		company.IsHeadquarter = *req.IsHeadquarter
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.Email != "" {
		company.Email = req.Email
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&company).Error; err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, company)
}

func (h *CompanyHandler) DeleteCompany(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	result := h.DB.WithContext(c.Request().Context()).Delete(&models.Company{}, id)
	if result.Error != nil {
		return storageError(c, result.Error)
	}
	if result.RowsAffected == 0 {
		return errorResponse(c, http.StatusNotFound, "company not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Company deleted successfully"})
}
