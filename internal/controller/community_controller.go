package controller

import (
	"luma-companion-be/internal/dto"
	"luma-companion-be/internal/pkg/serverutils"
	"luma-companion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommunityController interface {
	RegisterRoutes(r fiber.Router)
	GetPosts(ctx *fiber.Ctx) error
	CreatePost(ctx *fiber.Ctx) error
	Vote(ctx *fiber.Ctx) error
}

type communityController struct {
	communityService service.ICommunityService
}

func NewCommunityController(communityService service.ICommunityService) ICommunityController {
	return &communityController{
		communityService: communityService,
	}
}

func (c *communityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/community/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("posts", c.GetPosts)
	h.Post("posts", c.CreatePost)
	h.Post("posts/:postId/vote", c.Vote)
}

func (c *communityController) GetPosts(ctx *fiber.Ctx) error {
	res, err := c.communityService.GetPosts(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get posts", res))
}

func (c *communityController) CreatePost(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.communityService.CreatePost(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create post", res))
}

func (c *communityController) Vote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	postIdParam := ctx.Params("postId")
	postId, err := uuid.Parse(postIdParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid post id"))
	}

	var req dto.VoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.communityService.Vote(ctx.Context(), userId, postId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success vote", res))
}
