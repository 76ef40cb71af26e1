package dto

import (
	"testing"
	"time"

	"github.com/viamercantil/pos-interno/internal/domain/sale"
)

func TestBuildSalesReport(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	rows := []*sale.ReportRow{
		{SaleID: "v1", Total: 100, Cost: 60, Status: sale.StatusCompleted},
		{SaleID: "v2", Total: 50, Cost: 55, Status: sale.StatusCompleted},
		{SaleID: "v3", Total: 0, Cost: 0, Status: sale.StatusCancelled},
	}

	resp := BuildSalesReport(from, to, rows)

	if resp.SalesCount != 2 {
		t.Fatalf("SalesCount = %d, esperado 2", resp.SalesCount)
	}
	// Cancelada conta à parte e não entra nos valores monetários
	if resp.CancelledCount != 1 {
		t.Fatalf("CancelledCount = %d, esperado 1", resp.CancelledCount)
	}
	if resp.Revenue != 150 {
		t.Fatalf("Revenue = %.2f, esperado 150.00", resp.Revenue)
	}
	if resp.Cost != 115 {
		t.Fatalf("Cost = %.2f, esperado 115.00", resp.Cost)
	}
	// Lucro pode ser negativo quando o custo corrente supera o total vendido
	if resp.Profit != 35 {
		t.Fatalf("Profit = %.2f, esperado 35.00", resp.Profit)
	}
	if !resp.From.Equal(from) || !resp.To.Equal(to) {
		t.Fatalf("período inesperado: %v a %v", resp.From, resp.To)
	}
}

func TestBuildSalesReportProfitTracksCurrentCost(t *testing.T) {
	from := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 31, 23, 59, 59, 0, time.UTC)

	// O custo de cada linha é lido do cadastro de produtos na hora da
	// consulta; mudar o preço de custo desloca o lucro de vendas antigas
	before := BuildSalesReport(from, to, []*sale.ReportRow{
		{SaleID: "v1", Total: 100, Cost: 60, Status: sale.StatusCompleted},
	})
	after := BuildSalesReport(from, to, []*sale.ReportRow{
		{SaleID: "v1", Total: 100, Cost: 80, Status: sale.StatusCompleted},
	})

	if before.Profit != 40 {
		t.Fatalf("lucro antes = %.2f, esperado 40.00", before.Profit)
	}
	if after.Profit != 20 {
		t.Fatalf("lucro depois = %.2f, esperado 20.00", after.Profit)
	}
}

func TestBuildSalesReportEmpty(t *testing.T) {
	from := time.Now().AddDate(0, -1, 0)
	to := time.Now()

	resp := BuildSalesReport(from, to, nil)

	if resp.SalesCount != 0 || resp.CancelledCount != 0 {
		t.Fatalf("contagens deveriam ser zero: %d e %d", resp.SalesCount, resp.CancelledCount)
	}
	if resp.Revenue != 0 || resp.Cost != 0 || resp.Profit != 0 {
		t.Fatalf("valores deveriam ser zero: %.2f, %.2f, %.2f", resp.Revenue, resp.Cost, resp.Profit)
	}
}
