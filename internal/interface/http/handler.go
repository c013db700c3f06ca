package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syedmuhib/meeting-assistant/internal/domain/notes"
	apperrors "github.com/syedmuhib/meeting-assistant/pkg/errors"
)

// AnalysisHandler wires the HTTP transport to the notes domain.
type AnalysisHandler struct {
	svc    notes.Service
	logger *slog.Logger
}

// NewAnalysisHandler constructs the root HTTP handler.
func NewAnalysisHandler(svc notes.Service, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Analyze handles the sync analysis endpoint.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req notes.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	analysis, err := h.svc.Analyze(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, analysisError(err))
		return
	}

	c.JSON(http.StatusOK, presentAnalysis(analysis))
}

// AnalyzeStream streams chunk progress and the final analysis using
// Server-Sent Events.
func (h *AnalysisHandler) AnalyzeStream(c *gin.Context) {
	var req notes.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	stream, err := h.svc.AnalyzeStream(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, analysisError(err))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}

	for event := range stream {
		if event.Analysis != nil {
			presented := presentAnalysis(*event.Analysis)
			event.Analysis = &presented
		}
		payload, err := json.Marshal(event)
		if err != nil {
			h.logger.Error("marshal event failed", "error", err)
			continue
		}
		c.Writer.Write([]byte("data: "))
		c.Writer.Write(payload)
		c.Writer.Write([]byte("\n\n"))
		flusher.Flush()
	}
}

func analysisError(err error) *HTTPError {
	status := http.StatusInternalServerError
	code := "analyze_failed"
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_input"
	case apperrors.IsCode(err, "model_unavailable"):
		status = http.StatusBadGateway
		code = "model_unavailable"
	case apperrors.IsCode(err, "inference_error"):
		status = http.StatusBadGateway
		code = "inference_error"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
