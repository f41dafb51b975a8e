package controller

import (
	"encoding/base64"
	"errors"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/serverutils"
	"geotagger-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISatelliteController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
	Grid(ctx *fiber.Ctx) error
	Heatmap(ctx *fiber.Ctx) error
	HeatmapImage(ctx *fiber.Ctx) error
}

type satelliteController struct {
	satelliteService service.ISatelliteService
}

func NewSatelliteController(satelliteService service.ISatelliteService) ISatelliteController {
	return &satelliteController{
		satelliteService: satelliteService,
	}
}

func (c *satelliteController) RegisterRoutes(r fiber.Router) {
	r.Get("folders/:id/satellite", c.Summary)
	h := r.Group("/satellite")
	h.Post("grid", c.Grid)
	h.Post("heatmap", c.Heatmap)
	h.Post("heatmap.png", c.HeatmapImage)
}

func (c *satelliteController) Summary(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder id")
	}

	res, err := c.satelliteService.Summary(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrFolderNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "folder not found")
		}
		if errors.Is(err, service.ErrSatelliteUnavailable) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "satellite link unavailable, try again later")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Satellite summary", res))
}

func (c *satelliteController) Grid(ctx *fiber.Ctx) error {
	var req dto.GridRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.satelliteService.Grid(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Satellite grid", res))
}

func (c *satelliteController) Heatmap(ctx *fiber.Ctx) error {
	var req dto.HeatmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.satelliteService.Heatmap(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Satellite heatmap", res))
}

// HeatmapImage returns the raster directly as image/png for clients that
// skip the JSON envelope.
func (c *satelliteController) HeatmapImage(ctx *fiber.Ctx) error {
	var req dto.HeatmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.satelliteService.Heatmap(ctx.Context(), &req)
	if err != nil {
		return err
	}

	png, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(png)
}
