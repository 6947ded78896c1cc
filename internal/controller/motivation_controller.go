package controller

import (
	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/serverutils"
	"luma-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMotivationController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	GetReceived(ctx *fiber.Ctx) error
}

type motivationController struct {
	motivationService service.IMotivationService
}

func NewMotivationController(motivationService service.IMotivationService) IMotivationController {
	return &motivationController{
		motivationService: motivationService,
	}
}

func (c *motivationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/motivation/v1")
	// Supporters send motivation from a shared link without an account.
	h.Post("send", c.Send)
	h.Get("", serverutils.JwtMiddleware, c.GetReceived)
}

func (c *motivationController) Send(ctx *fiber.Ctx) error {
	var req dto.SendMotivationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.motivationService.Send(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success send motivation", res))
}

func (c *motivationController) GetReceived(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.motivationService.GetReceived(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get motivations", res))
}
