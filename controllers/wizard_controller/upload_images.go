package wizard_controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// UploadImages godoc
// @Summary Stage an image batch
// @Description Stages up to the per-listing cap of images on the draft. Invalid files (wrong type, oversized) are rejected individually with reasons; a valid batch that would push past the cap is refused whole, adding none. Nothing is stored remotely before final submission.
// @Tags Wizard
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Param images formData file true "Image files (JPEG, PNG or WebP, max 5 MB each)"
// @Param lang query string false "Response language" Enums(ka, en, ru)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Malformed form"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Failure 422 {object} models.ApiResponse "Batch would exceed the image cap"
// @Router /wizard/{token}/images [post]
func UploadImages(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed multipart form"))
			return
		}
		files := form.File["images"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No image files in form"))
			return
		}

		lang := requestLang(c)

		batch := make([]wizard.StagedImage, 0, len(files))
		for _, header := range files {
			f, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read uploaded file"))
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read uploaded file"))
				return
			}
			batch = append(batch, wizard.StagedImage{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Data:        data,
			})
		}

		rejections, err := s.Wizard.AddImages(batch)
		if err != nil {
			if errors.Is(err, wizard.ErrBatchExceedsCap) {
				c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(
					c, Translator.Translate(lang, "error.image.cap")))
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}

		// Translate per-file rejection reasons
		rejected := make([]gin.H, 0, len(rejections))
		for _, r := range rejections {
			rejected = append(rejected, gin.H{
				"filename": r.Filename,
				"reason":   Translator.Translate(lang, r.Reason),
			})
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Images staged", gin.H{
			"image_count": s.Wizard.ImageCount(),
			"rejected":    rejected,
		}))
	})
}
