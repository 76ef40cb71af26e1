package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/domain/supplier"
	"github.com/viamercantil/pos-interno/pkg/logger"
)

// SupplierController gerencia as requisições relacionadas a fornecedores
type SupplierController struct {
	supplierRepo supplier.Repository
	logger       logger.Logger
}

// NewSupplierController cria uma nova instância de SupplierController
func NewSupplierController(supplierRepo supplier.Repository, logger logger.Logger) *SupplierController {
	return &SupplierController{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// Create cria um novo fornecedor
// @Summary Criar fornecedor
// @Description Cria um novo fornecedor no sistema
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [post]
func (c *SupplierController) Create(ctx *gin.Context) {
	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s := &supplier.Supplier{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Cnpj:        req.Cnpj,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Notes:       req.Notes,
		IsActive:    true,
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := s.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Create(ctx, s); err != nil {
		c.logger.Error("erro ao criar fornecedor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, s)
}

// FindByID busca um fornecedor pelo ID
// @Summary Buscar fornecedor
// @Description Busca um fornecedor pelo ID
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} supplier.Supplier
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [get]
func (c *SupplierController) FindByID(ctx *gin.Context) {
	id := ctx.Param("id")

	s, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor", "error", err, "supplier_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// List lista os fornecedores
// @Summary Listar fornecedores
// @Description Lista os fornecedores com paginação
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param page query int false "Página"
// @Param page_size query int false "Tamanho da página"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers [get]
func (c *SupplierController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	suppliers, err := c.supplierRepo.List(ctx, pagination.Limit(), pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	total, err := c.supplierRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar fornecedores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar fornecedores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items: suppliers,
		Total: total,
	})
}

// Update atualiza um fornecedor
// @Summary Atualizar fornecedor
// @Description Atualiza os dados de um fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 200 {object} supplier.Supplier
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [put]
func (c *SupplierController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SupplierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := c.supplierRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar fornecedor para atualização", "error", err, "supplier_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar fornecedor", err.Error()))
		return
	}

	s.Name = req.Name
	s.Cnpj = req.Cnpj
	s.ContactName = req.ContactName
	s.Phone = req.Phone
	s.Email = req.Email
	s.Address = req.Address
	s.City = req.City
	s.State = req.State
	s.Notes = req.Notes
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}

	if err := s.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	if err := c.supplierRepo.Update(ctx, s); err != nil {
		c.logger.Error("erro ao atualizar fornecedor no banco de dados", "error", err, "supplier_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// Delete remove um fornecedor
// @Summary Remover fornecedor
// @Description Remove um fornecedor do sistema
// @Tags suppliers
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do fornecedor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /suppliers/{id} [delete]
func (c *SupplierController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.supplierRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, supplier.ErrSupplierNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "fornecedor não encontrado", ""))
			return
		}
		c.logger.Error("erro ao remover fornecedor", "error", err, "supplier_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover fornecedor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("fornecedor removido com sucesso", nil))
}
