package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viamercantil/pos-interno/internal/adapter/api/dto"
	"github.com/viamercantil/pos-interno/internal/domain/sale"
	"github.com/viamercantil/pos-interno/pkg/logger"
)

// ReportController gerencia as requisições de relatórios de vendas
type ReportController struct {
	saleRepo sale.Repository
	logger   logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(saleRepo sale.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

// Sales gera o relatório de vendas do período
// @Summary Relatório de vendas
// @Description Agrega receita, custo e lucro das vendas do período. O custo usa o preço de custo corrente do cadastro de produtos, não o do momento da venda
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param from query string false "Início do período (RFC 3339 ou AAAA-MM-DD)"
// @Param to query string false "Fim do período (RFC 3339 ou AAAA-MM-DD)"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now

	if raw := ctx.Query("from"); raw != "" {
		parsed, err := parseReportDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inicial inválida", err.Error()))
			return
		}
		from = parsed
	}
	if raw := ctx.Query("to"); raw != "" {
		parsed, err := parseReportDate(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data final inválida", err.Error()))
			return
		}
		// Datas sem hora cobrem o dia inteiro
		if len(raw) == len("2006-01-02") {
			parsed = parsed.Add(24*time.Hour - time.Nanosecond)
		}
		to = parsed
	}

	if to.Before(from) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "período inválido", "a data final é anterior à inicial"))
		return
	}

	rows, err := c.saleRepo.Report(ctx, from, to)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.BuildSalesReport(from, to, rows))
}

// parseReportDate aceita RFC 3339 completo ou somente a data
func parseReportDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
