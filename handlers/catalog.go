package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"galaxydental/services"
	"galaxydental/store"
	"galaxydental/utils"
)

// CatalogHandler serves the clinic's static reference data.
type CatalogHandler struct {
	Catalog      store.Catalog
	Availability services.AvailabilityService
}

func NewCatalogHandler(catalog store.Catalog, availability services.AvailabilityService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Availability: availability}
}

func (h *CatalogHandler) ListDoctorsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"doctors": h.Catalog.Doctors()})
}

func (h *CatalogHandler) GetDoctorHandler(c *gin.Context) {
	id := c.Param("id")
	doctor, ok := h.Catalog.DoctorByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Doctor not found",
			"No specialist matches '"+id+"'. Browse /api/doctors for the full team.")
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *CatalogHandler) GetDoctorScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.Catalog.DoctorByID(id); !ok {
		utils.JSONError(c, http.StatusNotFound, "Doctor not found",
			"No specialist matches '"+id+"'. Browse /api/doctors for the full team.")
		return
	}
	c.JSON(http.StatusOK, h.Availability.ScheduleFor(id))
}

func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services()})
}

func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	service, ok := h.Catalog.ServiceByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Service not found",
			"No treatment matches '"+id+"'. Browse /api/services for the full list.")
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *CatalogHandler) ListTestimonialsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"testimonials": h.Catalog.Testimonials()})
}

func (h *CatalogHandler) ListFAQsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"faqs": h.Catalog.FAQs()})
}

func (h *CatalogHandler) ListGalleryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"gallery": h.Catalog.Gallery()})
}

func (h *CatalogHandler) GetClinicInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Clinic())
}

func (h *CatalogHandler) GetPriceListHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"priceList": h.Catalog.PriceList(),
		"emiNote":   "0% Interest EMI available for treatments above ₹15,000.",
	})
}
