package role

import "testing"

func TestPermissionCatalog(t *testing.T) {
	if len(PermissionCatalog) != 29 {
		t.Fatalf("catálogo com %d chaves, esperado 29", len(PermissionCatalog))
	}

	seen := make(map[string]bool, len(PermissionCatalog))
	for _, key := range PermissionCatalog {
		if seen[key] {
			t.Errorf("chave duplicada no catálogo: %s", key)
		}
		seen[key] = true
	}
}

func TestIsKnownPermission(t *testing.T) {
	if !IsKnownPermission(PermSalesCancel) {
		t.Error("sales.cancel deveria pertencer ao catálogo")
	}
	if !IsKnownPermission(PermPermissionsManage) {
		t.Error("permissions.manage deveria pertencer ao catálogo")
	}
	if IsKnownPermission("sales.refund") {
		t.Error("sales.refund não pertence ao catálogo")
	}
	if IsKnownPermission("") {
		t.Error("chave vazia não pertence ao catálogo")
	}
}
