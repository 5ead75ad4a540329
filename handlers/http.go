package handlers

import (
	"errors"
	"net/http"

	"myuserapp/domain"
	"myuserapp/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrResponse is the body of a failed HTTP request.
type ErrResponse struct {
	Error *domain.ClientError `json:"error,omitempty"`
}

// HTTPServer serves the health endpoint and a read-only JSON view of the user store.
type HTTPServer struct {
	store  interfaces.UserStore
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(store interfaces.UserStore, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		store:  store,
		logger: logger,
	}
}

// RegisterHandlers registers the routes of h and the JSON error handler on e.
func RegisterHandlers(e *echo.Echo, h *HTTPServer) {
	e.GET("/healthz", h.Health)
	e.GET("/v1/users", h.GetFirstUser)
	e.GET("/v1/users/:id", h.GetUser)
	e.HTTPErrorHandler = h.handleError
}

// Health (GET /healthz) reports that the process is serving.
func (h *HTTPServer) Health(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// GetUser (GET /v1/users/{id}) returns the stored user. 404 when there is none.
func (h *HTTPServer) GetUser(ectx echo.Context) error {
	u, err := h.store.Get(ectx.Request().Context(), ectx.Param("id"))
	if err != nil {
		return err
	}
	return ectx.JSON(http.StatusOK, u)
}

// GetFirstUser (GET /v1/users) returns the first stored user, 204 when the store is empty.
func (h *HTTPServer) GetFirstUser(ectx echo.Context) error {
	u, ok, err := h.store.First(ectx.Request().Context())
	if err != nil {
		return err
	}
	if !ok {
		return ectx.NoContent(http.StatusNoContent)
	}
	return ectx.JSON(http.StatusOK, u)
}

// handleError renders handler errors as ErrResponse. echo.HTTPError keeps its status.
func (h *HTTPServer) handleError(err error, ectx echo.Context) {
	if ectx.Response().Committed {
		return
	}
	statusCode := http.StatusInternalServerError
	ce := domain.ClientError{Code: "internal_error", Message: "an internal server error has occurred"}
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		statusCode = he.Code
		ce.Code = "http_error"
		if m, ok := he.Message.(string); ok {
			ce.Message = m
		}
	case errors.Is(err, domain.ErrUserNotFound):
		statusCode = http.StatusNotFound
		ce = domain.ClientError{Code: "not_found", Message: err.Error()}
	case errors.As(err, &ce):
		statusCode = http.StatusBadRequest
	}
	if statusCode >= http.StatusInternalServerError {
		level.Error(h.logger).Log("msg", "HTTP request error", "err", err)
	} else {
		level.Info(h.logger).Log("msg", "HTTP request error", "err", err)
	}
	if ectx.Request().Method == http.MethodHead {
		_ = ectx.NoContent(statusCode)
		return
	}
	_ = ectx.JSON(statusCode, ErrResponse{Error: &ce})
}
