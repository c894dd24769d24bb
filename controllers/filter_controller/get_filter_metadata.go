package filter_controller

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	filter_cache "github.com/spacemen100/house-haven-market-sub000/cache"
	"github.com/spacemen100/house-haven-market-sub000/config"
	"github.com/spacemen100/house-haven-market-sub000/models"
)

// GetFilterMetadata godoc
// @Summary Get filter panel metadata
// @Description Returns the observed price range, area range and per-property-type counts over active listings, cached for a few minutes.
// @Tags Listings
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /listings/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	if cached, ok := filter_cache.Get(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", cached))
		return
	}

	pool := config.DB

	// Run the aggregate queries concurrently
	var wg sync.WaitGroup
	var mu sync.Mutex

	metadata := &models.FilterMetadata{}
	var errs []error

	// 1. Price range over active listings
	wg.Add(1)
	go func() {
		defer wg.Done()
		priceRange, err := getRange(pool, "price")
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.PriceRange = priceRange
		}
	}()

	// 2. Area range over active listings
	wg.Add(1)
	go func() {
		defer wg.Done()
		areaRange, err := getRange(pool, "area")
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.AreaRange = areaRange
		}
	}()

	// 3. Listing counts per property type
	wg.Add(1)
	go func() {
		defer wg.Done()
		counts, err := getTypeCounts(pool)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			errs = append(errs, err)
		} else {
			metadata.TypeCounts = counts
		}
	}()

	wg.Wait()

	if len(errs) > 0 {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
		return
	}

	filter_cache.Set(metadata)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", metadata))
}

// getRange fetches the min/max of one numeric column over active listings.
// The column name comes from a fixed caller-side set, never user input.
func getRange(pool *pgxpool.Pool, column string) (*models.RangeData, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			COALESCE(MIN(` + column + `), 0)::float8 AS min,
			COALESCE(MAX(` + column + `), 0)::float8 AS max
		FROM properties
		WHERE status = 'active'
			AND ` + column + ` > 0
	`

	var data models.RangeData
	if err := pool.QueryRow(ctx, query).Scan(&data.Min, &data.Max); err != nil {
		return nil, err
	}
	return &data, nil
}

// getTypeCounts counts active listings per property type.
func getTypeCounts(pool *pgxpool.Pool) (map[string]int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := pool.Query(ctx, `
		SELECT property_type, COUNT(*)::int
		FROM properties
		WHERE status = 'active'
		GROUP BY property_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var propertyType string
		var count int
		if err := rows.Scan(&propertyType, &count); err != nil {
			return nil, err
		}
		counts[propertyType] = count
	}
	return counts, rows.Err()
}
