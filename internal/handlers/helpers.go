package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/THANH290803/companyName/internal/logging"
	"github.com/THANH290803/companyName/internal/mykafka"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, msg string) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: msg,
	})
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// storageError hides store internals from the client and logs them.
func storageError(c echo.Context, err error) error {
	logging.FromContext(c.Request().Context()).Error("storage error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "storage error")
}

// publish fires a lifecycle event and only logs on failure; no request
// ever fails because the broker is down.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]interface{}) {
	if producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Warn("kafka publish error", "topic", topic, "error", err)
	}
}
