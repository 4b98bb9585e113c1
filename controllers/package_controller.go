package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"travel-backend/services"
	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

type PackageController struct {
	Catalog *services.CatalogService
}

func NewPackageController(catalog *services.CatalogService) *PackageController {
	return &PackageController{Catalog: catalog}
}

// List (GET /api/packages?days=&category=) serves the listing page with the
// duration-bucket and category filters applied.
func (ctrl *PackageController) List(c *gin.Context) {
	pkgs, err := ctrl.Catalog.Filtered(c.Query("days"), c.Query("category"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// Get (GET /api/packages/:id) serves the detail page.
func (ctrl *PackageController) Get(c *gin.Context) {
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

// Recommended (GET /api/packages/:id/recommended) returns up to three
// same-category packages for the detail page strip.
func (ctrl *PackageController) Recommended(c *gin.Context) {
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

	all, err := ctrl.Catalog.All()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch packages")
		return
	}
	c.JSON(http.StatusOK, services.Recommended(all, pkg.ID, pkg.Category))
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
