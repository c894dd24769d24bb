package wizard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/middleware"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// StartEdit godoc
// @Summary Start editing an existing listing
// @Description Opens a wizard session pre-populated from a stored listing owned by the authenticated user. The stored reference number is kept.
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid ID"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Not the owner"
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Router /wizard/edit/{id} [post]
func StartEdit(c *gin.Context) {
	userID, ok := middleware.GetUserUUIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid listing ID"))
		return
	}

	var property models.Property
	query := config.Gorm.Where("id = ?", id)
	for _, rel := range []string{
		"Images", "Amenities", "Equipment", "InternetTV", "Storage",
		"Security", "NearbyPlaces", "OnlineServices",
	} {
		query = query.Preload(rel)
	}
	if err := query.First(&property).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
		return
	}
	if property.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You do not own this listing"))
		return
	}

	w := wizard.NewForEdit(Catalog, &property, storedCategories(&property))
	token := Store.Create(w, userID)

	log.Printf("✅ Edit draft %s started for listing %s", token, id)

	Store.With(token, func(s *wizard.Session) {
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Edit draft started", viewOf(s, token)))
	})
}

// storedCategories collects the persisted label lists into the wizard's
// category map shape.
func storedCategories(p *models.Property) models.CategoryLists {
	lists := models.CategoryLists{}
	for _, a := range p.Amenities {
		lists[models.CategoryAmenities] = append(lists[models.CategoryAmenities], a.Label)
	}
	for _, e := range p.Equipment {
		lists[models.CategoryEquipment] = append(lists[models.CategoryEquipment], e.Label)
	}
	for _, it := range p.InternetTV {
		lists[models.CategoryInternetTV] = append(lists[models.CategoryInternetTV], it.Label)
	}
	for _, st := range p.Storage {
		lists[models.CategoryStorage] = append(lists[models.CategoryStorage], st.Label)
	}
	for _, se := range p.Security {
		lists[models.CategorySecurity] = append(lists[models.CategorySecurity], se.Label)
	}
	for _, n := range p.NearbyPlaces {
		lists[models.CategoryNearbyPlaces] = append(lists[models.CategoryNearbyPlaces], n.Label)
	}
	for _, o := range p.OnlineServices {
		lists[models.CategoryOnlineServices] = append(lists[models.CategoryOnlineServices], o.Label)
	}
	return lists
}
