package dto

// RoleRequest representa os dados para criação e edição de cargo
type RoleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// RolePermissionsRequest representa uma atualização parcial de permissões
type RolePermissionsRequest struct {
	Permissions map[string]bool `json:"permissions" binding:"required"`
}
