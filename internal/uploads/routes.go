package uploads

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-intake/internal/shared/server/middleware"
	"resume-intake/internal/shared/server/respond"
)

// Room for form fields and multipart framing on top of the file itself.
const formOverheadBytes = 1 << 20

// RegisterRoutes attaches the intake route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	requestID := middleware.RequestIDFromContext(c)
	limit := h.limits.maxBytes() + formOverheadBytes
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusBadRequest, fileTooLargeMessage(h.limits.MaxFileMB))
			return
		}
		resp := h.errorResponse(Event{RequestID: requestID}, &DependencyError{Op: OpReadBody, Err: err})
		respond.Error(c, resp.StatusCode, resp.Body)
		return
	}

	ev := EventFromHTTP(c.Request.Header, raw, requestID)
	resp := h.Handle(c.Request.Context(), ev)
	respond.Text(c, resp.StatusCode, resp.Body)
}
