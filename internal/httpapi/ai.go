package httpapi

import (
	"net/http"

	"auditforce/internal/ai"
	"auditforce/internal/report"
	"auditforce/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AI handlers degrade to localized fallback messages on collaborator
// failure; a broken model must never break the request. Responses carry the
// request ID so clients can drop answers that arrive after a newer one.

type recommendRequest struct {
	FindingDescription string `json:"findingDescription"`
}

func (h Handlers) Recommend(c *gin.Context) {
	if h.Assistant == nil {
		c.JSON(http.StatusOK, gin.H{
			"recommendation": ai.RecommendationFallback,
			"requestId":      requestID(c),
		})
		return
	}

	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FindingDescription == "" {
		badJSON(c)
		return
	}

	out, err := h.Assistant.Recommend(c.Request.Context(), req.FindingDescription)
	if err != nil {
		logger.FromGin(c).Error("recommendation failed", "err", err)
		out = ai.RecommendationFallback
	}
	c.JSON(http.StatusOK, gin.H{"recommendation": out, "requestId": requestID(c)})
}

type chatRequest struct {
	Prompt string `json:"prompt"`
}

// Chat answers a question constrained to the data the caller may see. The
// context is filtered before serialization; the model never receives audits
// or plans outside the caller's visibility.
func (h Handlers) Chat(c *gin.Context) {
	u, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		badJSON(c)
		return
	}

	if h.Assistant == nil {
		c.JSON(http.StatusOK, gin.H{"answer": ai.ChatFallback, "requestId": requestID(c)})
		return
	}

	serialized, err := report.BuildChatContext(h.Store.Snapshot(), u).Serialize()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	answer, err := h.Assistant.Chat(c.Request.Context(), req.Prompt, serialized)
	if err != nil {
		logger.FromGin(c).Error("chat failed", "err", err)
		answer = ai.ChatFallback
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer, "requestId": requestID(c)})
}

func requestID(c *gin.Context) string {
	return c.Writer.Header().Get("X-Request-Id")
}
