package controller

import (
	"geotagger-be/internal/dto"
	"geotagger-be/internal/pkg/serverutils"
	"geotagger-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAllByFolder(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Post("", c.Create)
	h.Get("folder/:folderId", c.GetAllByFolder)
	h.Delete(":id", c.Delete)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Note created", res))
}

func (c *noteController) GetAllByFolder(ctx *fiber.Ctx) error {
	folderId, err := uuid.Parse(ctx.Params("folderId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid folder id")
	}

	res, err := c.noteService.GetAllByFolder(ctx.Context(), folderId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Notes", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid note id")
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Note deleted", nil))
}
