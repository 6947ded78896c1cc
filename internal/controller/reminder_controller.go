package controller

import (
	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/serverutils"
	"luma-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReminderController interface {
	RegisterRoutes(r fiber.Router)
	Upsert(ctx *fiber.Ctx) error
	GetReminders(ctx *fiber.Ctx) error
	Check(ctx *fiber.Ctx) error
}

type reminderController struct {
	reminderService service.IReminderService
	cronSecret      string
}

func NewReminderController(reminderService service.IReminderService, cronSecret string) IReminderController {
	return &reminderController{
		reminderService: reminderService,
		cronSecret:      cronSecret,
	}
}

func (c *reminderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/reminder/v1")
	// Check is invoked by the scheduler, not a logged-in user.
	h.Post("check", c.Check)
	h.Use(serverutils.JwtMiddleware)
	h.Put("", c.Upsert)
	h.Get("", c.GetReminders)
}

func (c *reminderController) Upsert(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpsertReminderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.reminderService.Upsert(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save reminder", res))
}

func (c *reminderController) GetReminders(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	goalId := ctx.Query("goalId", "")

	res, err := c.reminderService.GetReminders(ctx.Context(), userId, goalId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get reminders", res))
}

func (c *reminderController) Check(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if c.cronSecret == "" || authHeader != "Bearer "+c.cronSecret {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.reminderService.CheckDue(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success check reminders", res))
}
