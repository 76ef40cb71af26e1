package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/domain/product"
	"github.com/viamercantil/pos-interno/internal/domain/sale"
	"github.com/viamercantil/pos-interno/pkg/logger"
)

// SaleController gerencia as requisições relacionadas a vendas
type SaleController struct {
	saleRepo sale.Repository
	logger   logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo sale.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Create registra uma nova venda
// @Summary Criar venda
// @Description Registra uma venda com seus itens e debita o estoque de cada produto na mesma transação
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} sale.Sale
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	items := make([]*sale.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, &sale.Item{
			ID:          uuid.New().String(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	s, err := sale.NewSale(req.ClientID, req.AttendantName, sale.PaymentMethod(req.PaymentMethod), items, req.Discount, req.Notes)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar venda", err.Error()))
		return
	}
	s.ID = uuid.New().String()
	for _, item := range s.Items {
		item.SaleID = s.ID
	}

	if err := c.saleRepo.Create(ctx, s); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("erro ao criar venda no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// FindByID busca uma venda pelo ID
// @Summary Buscar venda
// @Description Busca uma venda pelo ID, incluindo os itens
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} sale.Sale
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) FindByID(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err, "sale_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// List lista as vendas
// @Summary Listar vendas
// @Description Lista as vendas mais recentes com paginação, incluindo os itens
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	sales, err := c.saleRepo.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items: sales,
		Total: total,
	})
}

// Update edita os campos mutáveis de uma venda
// @Summary Editar venda
// @Description Edita forma de pagamento, desconto, observações e cliente de uma venda. Itens e subtotal são imutáveis; vendas canceladas não podem ser editadas
// @Tags sales
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleEditRequest true "Campos a editar"
// @Success 200 {object} sale.Sale
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SaleEditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda para edição", "error", err, "sale_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	edit := sale.EditRequest{
		Discount: req.Discount,
		Notes:    req.Notes,
		ClientID: req.ClientID,
	}
	if req.PaymentMethod != nil {
		method := sale.PaymentMethod(*req.PaymentMethod)
		edit.PaymentMethod = &method
	}

	// O estado é relido do banco e a transição é decidida aqui, não no
	// cliente: editar uma venda cancelada é sempre rejeitado
	if err := s.ApplyEdit(edit); err != nil {
		if errors.Is(err, sale.ErrCancelledImmutable) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "uma venda cancelada não pode ser editada", ""))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao editar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Update(ctx, s); err != nil {
		c.logger.Error("erro ao atualizar venda no banco de dados", "error", err, "sale_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// Cancel cancela uma venda e devolve o estoque
// @Summary Cancelar venda
// @Description Cancela uma venda, devolve o estoque de cada item e zera os valores, tudo na mesma transação
// @Tags sales
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da venda"
// @Success 200 {object} sale.Sale
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/cancel [post]
func (c *SaleController) Cancel(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sale.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", ""))
			return
		}
		c.logger.Error("erro ao buscar venda para cancelamento", "error", err, "sale_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	if err := s.Cancel(); err != nil {
		if errors.Is(err, sale.ErrAlreadyCancelled) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "a venda já está cancelada", ""))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao cancelar venda", err.Error()))
		return
	}

	if err := c.saleRepo.Cancel(ctx, s); err != nil {
		c.logger.Error("erro ao cancelar venda no banco de dados", "error", err, "sale_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao cancelar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}
