package listing_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/search"
)

// GetListings godoc
// @Summary Get filtered, sorted, paginated listings
// @Description Fetches active listings and runs them through the conjunctive filter pipeline: text query, type multi-selects, numeric ranges, boolean flags and categorical selections, then sorts and paginates.
// @Tags Listings
// @Produce json
// @Param q query string false "Text query over title and address fields"
// @Param property_types query string false "Comma-separated property types"
// @Param listing_types query string false "Comma-separated listing types"
// @Param price_min query number false "Minimum price"
// @Param price_max query number false "Maximum price"
// @Param beds_min query int false "Minimum bedrooms"
// @Param baths_min query int false "Minimum bathrooms"
// @Param area_min query number false "Minimum area"
// @Param area_max query number false "Maximum area"
// @Param flags query string false "Comma-separated boolean feature flags"
// @Param sort query string false "Sort key" Enums(newest, oldest, price_asc, price_desc, area_asc, area_desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /listings [get]
func GetListings(c *gin.Context) {
	// Step 1: Parse and validate pagination params
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	// Step 2: Fetch the active listing set with images
	properties := make([]models.Property, 0)
	if err := config.Gorm.
		Where("status = ?", "active").
		Preload("Images").
		Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch listings"))
		return
	}

	// Step 3: Run the filter pipeline over the fetched set
	state := filterStateFromQuery(c)
	filtered := state.Apply(search.Wrap(properties))

	// Step 4: Paginate the filtered result
	total := len(filtered)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	pageItems := make([]*models.Property, 0, end-start)
	for _, r := range filtered[start:end] {
		pageItems = append(pageItems, r.Source)
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Listings fetched successfully", pageItems, meta))
}
