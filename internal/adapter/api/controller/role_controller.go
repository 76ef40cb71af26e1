package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/adapter/repository"
	"github.com/viamercantil/pos-interno/internal/domain/role"
	"github.com/viamercantil/pos-interno/pkg/auth"
	"github.com/viamercantil/pos-interno/pkg/logger"
)

// RoleController gerencia as requisições relacionadas a cargos e permissões
type RoleController struct {
	roleRepo role.Repository
	resolver *auth.PermissionResolver
	logger   logger.Logger
}

// NewRoleController cria uma nova instância de RoleController
func NewRoleController(roleRepo role.Repository, resolver *auth.PermissionResolver, logger logger.Logger) *RoleController {
	return &RoleController{
		roleRepo: roleRepo,
		resolver: resolver,
		logger:   logger,
	}
}

// Create cria um novo cargo
// @Summary Criar cargo
// @Description Cria um novo cargo com todas as permissões do catálogo negadas
// @Tags roles
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param role body dto.RoleRequest true "Dados do cargo"
// @Success 201 {object} role.Role
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles [post]
func (c *RoleController) Create(ctx *gin.Context) {
	var req dto.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	r := &role.Role{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}

	if err := r.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cargo", err.Error()))
		return
	}

	if err := c.roleRepo.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrRoleDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cargo já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar cargo no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cargo", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, r)
}

// FindByID busca um cargo pelo ID
// @Summary Buscar cargo
// @Description Busca um cargo pelo ID
// @Tags roles
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cargo"
// @Success 200 {object} role.Role
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles/{id} [get]
func (c *RoleController) FindByID(ctx *gin.Context) {
	id := ctx.Param("id")

	r, err := c.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cargo não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cargo", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cargo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, r)
}

// List lista os cargos cadastrados
// @Summary Listar cargos
// @Description Lista todos os cargos cadastrados
// @Tags roles
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles [get]
func (c *RoleController) List(ctx *gin.Context) {
	roles, err := c.roleRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar cargos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar cargos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items: roles,
		Total: len(roles),
	})
}

// Update atualiza um cargo
// @Summary Atualizar cargo
// @Description Atualiza nome, descrição e status de um cargo
// @Tags roles
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cargo"
// @Param role body dto.RoleRequest true "Dados do cargo"
// @Success 200 {object} role.Role
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles/{id} [put]
func (c *RoleController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.RoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	r, err := c.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cargo não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cargo para atualização", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cargo", err.Error()))
		return
	}

	r.Name = req.Name
	r.Description = req.Description
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}

	if err := r.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar cargo", err.Error()))
		return
	}

	if err := c.roleRepo.Update(ctx, r); err != nil {
		if errors.Is(err, repository.ErrRoleDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "cargo já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar cargo no banco de dados", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cargo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, r)
}

// Delete remove um cargo
// @Summary Remover cargo
// @Description Remove um cargo e suas permissões. O cargo master não pode ser removido
// @Tags roles
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cargo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles/{id} [delete]
func (c *RoleController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cargo não encontrado", ""))
			return
		}
		if errors.Is(err, role.ErrMasterUndeletable) {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "o cargo master não pode ser excluído", ""))
			return
		}
		c.logger.Error("erro ao remover cargo", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover cargo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cargo removido com sucesso", nil))
}

// ListPermissions lista as permissões persistidas de um cargo
// @Summary Listar permissões do cargo
// @Description Lista todas as permissões persistidas de um cargo
// @Tags roles
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cargo"
// @Success 200 {object} dto.ListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles/{id}/permissions [get]
func (c *RoleController) ListPermissions(ctx *gin.Context) {
	id := ctx.Param("id")

	if _, err := c.roleRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cargo não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar cargo", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cargo", err.Error()))
		return
	}

	perms, err := c.roleRepo.FindPermissions(ctx, id)
	if err != nil {
		c.logger.Error("erro ao listar permissões do cargo", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar permissões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ListResponse{
		Items: perms,
		Total: len(perms),
	})
}

// SetPermissions aplica uma atualização parcial de permissões a um cargo
// @Summary Atualizar permissões do cargo
// @Description Aplica um conjunto parcial de permissões a um cargo. O cargo master é imutável
// @Tags roles
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cargo"
// @Param request body dto.RolePermissionsRequest true "Permissões"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /roles/{id}/permissions [put]
func (c *RoleController) SetPermissions(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.RolePermissionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.resolver.SetPermissions(ctx, id, req.Permissions); err != nil {
		if errors.Is(err, role.ErrRoleNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cargo não encontrado", ""))
			return
		}
		if errors.Is(err, role.ErrMasterImmutable) {
			ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "as permissões do cargo master não podem ser alteradas", ""))
			return
		}
		c.logger.Error("erro ao gravar permissões do cargo", "error", err, "role_id", id)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar permissões", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("permissões atualizadas com sucesso", nil))
}
