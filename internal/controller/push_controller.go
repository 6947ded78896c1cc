package controller

import (
	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/serverutils"
	"luma-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPushController interface {
	RegisterRoutes(r fiber.Router)
	RegisterPlayer(ctx *fiber.Ctx) error
}

type pushController struct {
	pushService service.IPushService
}

func NewPushController(pushService service.IPushService) IPushController {
	return &pushController{
		pushService: pushService,
	}
}

func (c *pushController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/push/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("register", c.RegisterPlayer)
}

func (c *pushController) RegisterPlayer(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RegisterPlayerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.pushService.RegisterPlayer(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success register player", nil))
}
