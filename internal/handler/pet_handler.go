package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/application"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/domain"
	"github.com/Kilat-Pet-Delivery/service-pets/internal/platform/response"
)

// BasePath is the prefix every pet route lives under.
const BasePath = "/miclat/pets"

// PetHandler handles HTTP requests for pet record operations.
//
// Not-found is signalled differently per route and existing clients depend on
// it: update answers 404, get and delete answer 400 with a text diagnostic,
// search answers 204 and the price filter 404 when nothing matches.
type PetHandler struct {
	service *application.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *application.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// RegisterRoutes registers all pet routes.
func (h *PetHandler) RegisterRoutes(r *gin.RouterGroup) {
	pets := r.Group(BasePath)
	{
		pets.POST("", h.CreatePet)
		pets.POST("/bulk", h.CreatePets)
		pets.POST("/new", h.AddNewPet)
		pets.GET("", h.ListPets)
		pets.GET("/:id", h.GetPet)
		pets.PUT("/:id", h.UpdatePet)
		pets.DELETE("/:id", h.DeletePet)
		pets.GET("/search/:key", h.SearchPets)
		pets.GET("/search/price/:price", h.FilterPetsByPrice)
	}
}

// CreatePet handles POST /miclat/pets.
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req application.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePet(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreatePets handles POST /miclat/pets/bulk.
func (h *PetHandler) CreatePets(c *gin.Context) {
	var reqs []application.PetRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePets(c.Request.Context(), reqs)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddNewPet handles POST /miclat/pets/new with scalar query or form parameters.
func (h *PetHandler) AddNewPet(c *gin.Context) {
	var form application.NewPetForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePet(c.Request.Context(), form.ToRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, "New pet with id %d added.", result.ID)
}

// UpdatePet handles PUT /miclat/pets/:id.
func (h *PetHandler) UpdatePet(c *gin.Context) {
	petID, ok := parsePetID(c)
	if !ok {
		return
	}

	var req application.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdatePet(c.Request.Context(), petID, req)
	if err != nil {
		if domain.IsNotFound(err) {
			c.Status(http.StatusNotFound)
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListPets handles GET /miclat/pets.
func (h *PetHandler) ListPets(c *gin.Context) {
	result, err := h.service.ListPets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPet handles GET /miclat/pets/:id.
func (h *PetHandler) GetPet(c *gin.Context) {
	petID, ok := parsePetID(c)
	if !ok {
		return
	}

	result, err := h.service.GetPet(c.Request.Context(), petID)
	if err != nil {
		if domain.IsNotFound(err) {
			c.String(http.StatusBadRequest, "No pet found with id: %d", petID)
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeletePet handles DELETE /miclat/pets/:id.
func (h *PetHandler) DeletePet(c *gin.Context) {
	petID, ok := parsePetID(c)
	if !ok {
		return
	}

	if err := h.service.DeletePet(c.Request.Context(), petID); err != nil {
		if domain.IsNotFound(err) {
			c.String(http.StatusBadRequest, "No pet found with id: %d", petID)
			return
		}
		response.Error(c, err)
		return
	}

	c.String(http.StatusOK, "Pet with id %d deleted.", petID)
}

// SearchPets handles GET /miclat/pets/search/:key.
func (h *PetHandler) SearchPets(c *gin.Context) {
	result, err := h.service.SearchPets(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if len(result) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, result)
}

// FilterPetsByPrice handles GET /miclat/pets/search/price/:price.
func (h *PetHandler) FilterPetsByPrice(c *gin.Context) {
	price, err := strconv.ParseFloat(c.Param("price"), 64)
	if err != nil {
		response.BadRequest(c, "invalid price")
		return
	}

	result, err := h.service.FilterPetsByPrice(c.Request.Context(), price)
	if err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			response.BadRequest(c, err.Error())
			return
		}
		response.Error(c, err)
		return
	}
	if len(result) == 0 {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parsePetID(c *gin.Context) (int64, bool) {
	petID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid pet ID")
		return 0, false
	}
	return petID, true
}
