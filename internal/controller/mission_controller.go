package controller

import (
	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/serverutils"
	"geotagger-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMissionController interface {
	RegisterRoutes(r fiber.Router)
	Active(ctx *fiber.Ctx) error
	Progress(ctx *fiber.Ctx) error
}

type missionController struct {
	missionService service.IMissionService
}

func NewMissionController(missionService service.IMissionService) IMissionController {
	return &missionController{
		missionService: missionService,
	}
}

func (c *missionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/missions")
	h.Get("active", c.Active)
	h.Post("progress", c.Progress)
}

func (c *missionController) Active(ctx *fiber.Ctx) error {
	res, err := c.missionService.Active(ctx.Context())
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "no mission available, create a folder first")
	}
	return ctx.JSON(serverutils.SuccessResponse("Active mission", res))
}

func (c *missionController) Progress(ctx *fiber.Ctx) error {
	var req dto.ProgressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.missionService.Progress(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Mission progress", res))
}
