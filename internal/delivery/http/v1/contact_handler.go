package v1

import (
	"errors"
	"net/http"

	"ai-marketing-backend/internal/delivery/http/response"
	"ai-marketing-backend/internal/domain"
	"ai-marketing-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Notifies the agency of a new enquiry and sends the submitter a confirmation. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=domain.SubmissionResult}
// @Failure      400      {object}  response.Response
// @Failure      413      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Error(apperror.RequestTooLarge(domain.MsgRequestTooLarge))
			return
		}
		c.Error(apperror.New(http.StatusBadRequest, domain.MsgInvalidBody, err))
		return
	}

	result, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.UserMessage, result)
}
