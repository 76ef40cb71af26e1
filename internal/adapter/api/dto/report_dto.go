package dto

import (
	"time"

	"github.com/viamercantil/pos-interno/internal/domain/sale"
)

// SalesReportResponse agrega o resultado do relatório de vendas do período.
// Vendas canceladas contam apenas em CancelledCount: os valores monetários
// delas já foram zerados no cancelamento e elas são filtradas por status
type SalesReportResponse struct {
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
	SalesCount     int       `json:"sales_count"`
	CancelledCount int       `json:"cancelled_count"`
	Revenue        float64   `json:"revenue"`
	Cost           float64   `json:"cost"`
	Profit         float64   `json:"profit"`
}

// BuildSalesReport consolida as linhas do relatório. O lucro de cada venda é
// total menos o custo corrente dos itens (quantity × cost_price lido agora)
func BuildSalesReport(from, to time.Time, rows []*sale.ReportRow) SalesReportResponse {
	resp := SalesReportResponse{From: from, To: to}
	for _, row := range rows {
		if row.Status == sale.StatusCancelled {
			resp.CancelledCount++
			continue
		}
		resp.SalesCount++
		resp.Revenue += row.Total
		resp.Cost += row.Cost
		resp.Profit += row.Total - row.Cost
	}
	return resp
}
