package serverutils

import (
	"net/http/httptest"
	"testing"

	"luma-companion-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))

	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return apperror.New(apperror.KindNotFound, "not here")
	})
	app.Get("/invalid", func(ctx *fiber.Ctx) error {
		return apperror.New(apperror.KindValidation, "bad input")
	})
	app.Get("/upstream", func(ctx *fiber.Ctx) error {
		return apperror.New(apperror.KindUpstream, "provider down")
	})
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.ErrTeapot
	})
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	cases := []struct {
		name   string
		path   string
		status int
	}{
		{name: "not found maps to 404", path: "/missing", status: fiber.StatusNotFound},
		{name: "validation maps to 400", path: "/invalid", status: fiber.StatusBadRequest},
		{name: "upstream maps to 502", path: "/upstream", status: fiber.StatusBadGateway},
		{name: "fiber errors keep their code", path: "/fiber", status: fiber.StatusTeapot},
		{name: "success passes through", path: "/ok", status: fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			assert.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
