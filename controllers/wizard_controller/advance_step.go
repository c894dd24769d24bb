package wizard_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacemen100/house-haven-market-sub000/models"
	"github.com/spacemen100/house-haven-market-sub000/wizard"
)

// AdvanceStep godoc
// @Summary Submit the current step and advance
// @Description Validates the payload for the session's current step. On success the draft absorbs the step and the wizard moves forward; on validation failure the draft is untouched and per-field messages come back in the request language.
// @Tags Wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token path string true "Draft session token"
// @Param lang query string false "Response language" Enums(ka, en, ru)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Malformed payload"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Draft not found or expired"
// @Failure 409 {object} models.ApiResponse "Draft already submitted"
// @Failure 422 {object} models.ApiResponse "Validation failure with field messages"
// @Router /wizard/{token}/step [post]
func AdvanceStep(c *gin.Context) {
	withOwnedSession(c, func(s *wizard.Session) {
		out, ok := bindStepPayload(c, s.Wizard.Current())
		if !ok {
			return
		}

		fieldErrs, err := s.Wizard.Advance(out)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, wizard.ErrAlreadyFinished) {
				status = http.StatusConflict
			}
			c.JSON(status, models.ErrorResponse(c, err.Error()))
			return
		}
		if len(fieldErrs) > 0 {
			lang := requestLang(c)
			c.JSON(http.StatusUnprocessableEntity, models.ValidationErrorResponse(
				c, "Step validation failed", Translator.TranslateFields(lang, fieldErrs)))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(c, "Step accepted", viewOf(s, c.Param("token"))))
	})
}

// bindStepPayload decodes the request body into the output type of the
// session's current step. It writes the error response itself on failure.
func bindStepPayload(c *gin.Context, step wizard.Step) (wizard.StepOutput, bool) {
	var out wizard.StepOutput
	var err error

	switch step {
	case wizard.StepTypeSelection:
		var o wizard.TypeSelectionOutput
		err = c.ShouldBindJSON(&o)
		out = o
	case wizard.StepContactInfo:
		var o wizard.ContactInfoOutput
		err = c.ShouldBindJSON(&o)
		out = o
	case wizard.StepBasicInfo:
		var o wizard.BasicInfoOutput
		err = c.ShouldBindJSON(&o)
		out = o
	case wizard.StepFeaturesAndAddress:
		var o wizard.FeaturesAndAddressOutput
		err = c.ShouldBindJSON(&o)
		out = o
	case wizard.StepMediaAndPublish:
		var o wizard.MediaAndPublishOutput
		err = c.ShouldBindJSON(&o)
		out = o
	default:
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Draft already submitted"))
		return nil, false
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed step payload"))
		return nil, false
	}
	return out, true
}
