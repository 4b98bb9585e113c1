package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"travel-backend/models"
	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminController covers the back-office surface: dashboard stats, package
// CRUD, and the customer list. All its routes sit behind the admin session
// gate.
type AdminController struct {
	Catalog  *services.CatalogService
	Bookings services.BookingService
	Users    *services.UserService
}

func NewAdminController(catalog *services.CatalogService, bookings services.BookingService, users *services.UserService) *AdminController {
	return &AdminController{Catalog: catalog, Bookings: bookings, Users: users}
}

// Dashboard (GET /api/admin/dashboard)
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	stats, err := ctrl.Bookings.Dashboard()
	if err != nil {
		log.Printf("dashboard stats failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPackages (GET /api/admin/packages) — unfiltered, including inactive.
func (ctrl *AdminController) ListPackages(c *gin.Context) {
	pkgs, err := ctrl.Catalog.All()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetPackage (GET /api/admin/packages/:id)
func (ctrl *AdminController) GetPackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pkg, err := ctrl.Catalog.ByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch package")
		}
		return
	}
	c.JSON(http.StatusOK, pkg)
}

func validatePackagePayload(pkg *models.TravelPackage) string {
	if strings.TrimSpace(pkg.Title) == "" {
		return "title is required"
	}
	if strings.TrimSpace(pkg.Price) == "" {
		return "price is required"
	}
	if pkg.Status != "" && pkg.Status != models.PackageStatusActive && pkg.Status != models.PackageStatusInactive {
		return "status must be active or inactive"
	}
	for _, b := range pkg.Availability {
		if b.TotalTickets < 0 || b.BookedTickets < 0 || b.BookedTickets > b.TotalTickets {
			return "availability batch has inconsistent ticket counts"
		}
	}
	return ""
}

// CreatePackage (POST /api/admin/packages). An availableTickets value in the
// payload is ignored; only the total/booked counters are persisted.
func (ctrl *AdminController) CreatePackage(c *gin.Context) {
	var pkg models.TravelPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := validatePackagePayload(&pkg); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	pkg.ID = 0
	if err := ctrl.Catalog.Create(&pkg); err != nil {
		log.Printf("create package failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create package")
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackage (PUT /api/admin/packages/:id) replaces the stored entity.
func (ctrl *AdminController) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var pkg models.TravelPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if msg := validatePackagePayload(&pkg); msg != "" {
		utils.JSONError(c, http.StatusBadRequest, msg)
		return
	}

	updated, err := ctrl.Catalog.Update(id, &pkg)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found")
		} else {
			log.Printf("update package %d failed: %v", id, err)
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update package")
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePackage (DELETE /api/admin/packages/:id)
func (ctrl *AdminController) DeletePackage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.Catalog.Delete(id); err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Package not found")
		} else {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to delete package")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
}

// ListCustomers (GET /api/admin/users)
func (ctrl *AdminController) ListCustomers(c *gin.Context) {
	customers, err := ctrl.Users.ListCustomers()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}
