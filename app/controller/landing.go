package controller

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-landing/app/dto"
	"github.com/vibast-solutions/ms-go-landing/app/entity"
	"github.com/vibast-solutions/ms-go-landing/app/factory"
	"github.com/vibast-solutions/ms-go-landing/app/mapper"
)

type landingService interface {
	Page() entity.Page
	Render(ctx context.Context, w io.Writer) error
}

type LandingController struct {
	landingService landingService
	logger         logrus.FieldLogger
}

func NewLandingController(landingService landingService) *LandingController {
	return &LandingController{
		landingService: landingService,
		logger:         factory.NewModuleLogger("landing-controller"),
	}
}

func (c *LandingController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &dto.HealthResponse{Status: "ok"})
}

// Home serves the landing document. Request data is never read.
func (c *LandingController) Home(ctx echo.Context) error {
	var buf bytes.Buffer
	if err := c.landingService.Render(ctx.Request().Context(), &buf); err != nil {
		l := factory.LoggerWithContext(c.logger, ctx)
		if errors.Is(err, context.Canceled) {
			l.WithError(err).Debug("Client went away before landing page was rendered")
			return nil
		}
		l.WithError(err).Error("Render landing page failed")
		return c.writeError(ctx, http.StatusInternalServerError, "internal server error")
	}

	return ctx.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (c *LandingController) GetLandingPage(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, mapper.PageToResponse(c.landingService.Page()))
}

func (c *LandingController) writeError(ctx echo.Context, statusCode int, message string) error {
	return ctx.JSON(statusCode, &dto.ErrorResponse{Error: message})
}
