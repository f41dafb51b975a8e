package controller

import (
	"errors"

	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/serverutils"
	"geotagger-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFolderController interface {
	RegisterRoutes(r fiber.Router)
	Resolve(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Nearby(ctx *fiber.Ctx) error
}

type folderController struct {
	folderService service.IFolderService
}

func NewFolderController(folderService service.IFolderService) IFolderController {
	return &folderController{
		folderService: folderService,
	}
}

func (c *folderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/folders")
	h.Post("resolve", c.Resolve)
	h.Post("nearby", c.Nearby)
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Put(":id", c.Rename)
	h.Delete(":id", c.Delete)
}

func (c *folderController) Resolve(ctx *fiber.Ctx) error {
	var req dto.ResolveFolderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.folderService.Resolve(ctx.Context(), &req)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(serverutils.SuccessResponse("Folder resolved", res))
}

func (c *folderController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.folderService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Folders", res))
}

func (c *folderController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder id")
	}

	res, err := c.folderService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "folder not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Folder", res))
}

func (c *folderController) Rename(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder id")
	}

	var req dto.RenameFolderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.folderService.Rename(ctx.Context(), &req); err != nil {
		if errors.Is(err, service.ErrFolderNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "folder not found")
		}
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Folder renamed", nil))
}

func (c *folderController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder id")
	}

	if err := c.folderService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Folder deleted", nil))
}

func (c *folderController) Nearby(ctx *fiber.Ctx) error {
	var req dto.NearbyFoldersRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.folderService.Nearby(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Nearby folders", res))
}
