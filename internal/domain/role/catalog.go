package role

// Chaves de permissão do catálogo fixo. As chaves precisam ser idênticas às
// usadas pelo front-end interno, que monta os grupos de permissão por domínio.
const (
	PermProductsView   = "products.view"
	PermProductsCreate = "products.create"
	PermProductsEdit   = "products.edit"
	PermProductsDelete = "products.delete"

	PermEntriesView   = "entries.view"
	PermEntriesCreate = "entries.create"
	PermEntriesDelete = "entries.delete"

	PermSuppliersView   = "suppliers.view"
	PermSuppliersCreate = "suppliers.create"
	PermSuppliersEdit   = "suppliers.edit"
	PermSuppliersDelete = "suppliers.delete"

	PermSalesView   = "sales.view"
	PermSalesCreate = "sales.create"
	PermSalesEdit   = "sales.edit"
	PermSalesCancel = "sales.cancel"

	PermReportsView = "reports.view"

	PermClientsView   = "clients.view"
	PermClientsCreate = "clients.create"
	PermClientsEdit   = "clients.edit"
	PermClientsDelete = "clients.delete"

	PermUsersView   = "users.view"
	PermUsersCreate = "users.create"
	PermUsersEdit   = "users.edit"
	PermUsersDelete = "users.delete"

	PermRolesView   = "roles.view"
	PermRolesCreate = "roles.create"
	PermRolesEdit   = "roles.edit"
	PermRolesDelete = "roles.delete"

	PermPermissionsManage = "permissions.manage"
)

// PermissionCatalog é a lista completa de chaves reconhecidas pelo sistema.
// Novos cargos são semeados com todas as chaves em false
var PermissionCatalog = []string{
	PermProductsView,
	PermProductsCreate,
	PermProductsEdit,
	PermProductsDelete,
	PermEntriesView,
	PermEntriesCreate,
	PermEntriesDelete,
	PermSuppliersView,
	PermSuppliersCreate,
	PermSuppliersEdit,
	PermSuppliersDelete,
	PermSalesView,
	PermSalesCreate,
	PermSalesEdit,
	PermSalesCancel,
	PermReportsView,
	PermClientsView,
	PermClientsCreate,
	PermClientsEdit,
	PermClientsDelete,
	PermUsersView,
	PermUsersCreate,
	PermUsersEdit,
	PermUsersDelete,
	PermRolesView,
	PermRolesCreate,
	PermRolesEdit,
	PermRolesDelete,
	PermPermissionsManage,
}

// IsKnownPermission verifica se a chave pertence ao catálogo
func IsKnownPermission(key string) bool {
	for _, k := range PermissionCatalog {
		if k == key {
			return true
		}
	}
	return false
}
