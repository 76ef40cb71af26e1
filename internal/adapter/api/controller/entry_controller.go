package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/domain/entry"
	"github.com/viamercantil/pos-interno/internal/domain/product"
	"github.com/viamercantil/pos-interno/pkg/auth"
	"github.com/viamercantil/pos-interno/pkg/logger"
)

// EntryController gerencia as requisições relacionadas a entradas de estoque
type EntryController struct {
	entryRepo entry.Repository
	logger    logger.Logger
}

// NewEntryController cria uma nova instância de EntryController
func NewEntryController(entryRepo entry.Repository, logger logger.Logger) *EntryController {
	return &EntryController{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// Create registra uma entrada de mercadoria
// @Summary Registrar entrada
// @Description Registra uma entrada de mercadoria e credita a quantidade no estoque do produto
// @Tags entries
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param entry body dto.EntryRequest true "Dados da entrada"
// @Success 201 {object} entry.Entry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries [post]
func (c *EntryController) Create(ctx *gin.Context) {
	var req dto.EntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e := &entry.Entry{
		ID:         uuid.New().String(),
		ProductID:  req.ProductID,
		SupplierID: req.SupplierID,
		Quantity:   req.Quantity,
		CostPrice:  req.CostPrice,
		SalePrice:  req.SalePrice,
		EntryDate:  time.Now(),
		Notes:      req.Notes,
	}
	if req.EntryDate != nil {
		e.EntryDate = *req.EntryDate
	}
	if u := auth.CurrentUser(ctx); u != nil {
		e.CreatedBy = u.ID
	}

	if err := e.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao registrar entrada", err.Error()))
		return
	}

	if err := c.entryRepo.Create(ctx, e); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao registrar entrada no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, e)
}

// FindByID busca uma entrada pelo ID
// @Summary Buscar entrada
// @Description Busca uma entrada de mercadoria pelo ID
// @Tags entries
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da entrada"
// @Success 200 {object} entry.Entry
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [get]
func (c *EntryController) FindByID(ctx *gin.Context) {
	id := ctx.Param("id")

	e, err := c.entryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entry.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entrada não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar entrada", "error", err, "entry_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, e)
}

// List lista as entradas de mercadoria
// @Summary Listar entradas
// @Description Lista as entradas de mercadoria com paginação, da mais recente para a mais antiga
// @Tags entries
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries [get]
func (c *EntryController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	entries, err := c.entryRepo.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar entradas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar entradas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items: entries,
		Total: len(entries),
	})
}

// Delete remove uma entrada e estorna o estoque
// @Summary Remover entrada
// @Description Remove uma entrada de mercadoria e debita a quantidade de volta do estoque
// @Tags entries
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da entrada"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /entries/{id} [delete]
func (c *EntryController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.entryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, entry.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "entrada não encontrada", ""))
			return
		}
		c.logger.Error("erro ao remover entrada", "error", err, "entry_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover entrada", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("entrada removida com sucesso", nil))
}
