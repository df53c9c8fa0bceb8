package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController expõe o painel e os relatórios
type ReportController struct {
	reports  *service.ReportService
	location *time.Location
	logger   logger.Logger
}

// NewReportController cria uma nova instância de ReportController. Datas sem
// fuso nos filtros são interpretadas em loc.
func NewReportController(reports *service.ReportService, loc *time.Location, logger logger.Logger) *ReportController {
	if loc == nil {
		loc = time.Local
	}
	return &ReportController{
		reports:  reports,
		location: loc,
		logger:   logger,
	}
}

// Dashboard retorna os indicadores do painel
// @Summary Painel
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} service.Dashboard
// @Router /reports/dashboard [get]
func (c *ReportController) Dashboard(ctx *gin.Context) {
	d, err := c.reports.Dashboard(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao montar painel", err)
		return
	}
	ctx.JSON(http.StatusOK, d)
}

// LowStock lista os produtos abaixo do estoque mínimo
// @Summary Estoque baixo
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {array} product.Product
// @Router /reports/low-stock [get]
func (c *ReportController) LowStock(ctx *gin.Context) {
	products, err := c.reports.LowStock(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar estoque baixo", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// StockValuation retorna o valor de custo do estoque
// @Summary Valorização do estoque
// @Tags reports
// @Produce json
// @Security Bearer
// @Success 200 {object} service.StockValuation
// @Router /reports/valuation [get]
func (c *ReportController) StockValuation(ctx *gin.Context) {
	v, err := c.reports.StockValuation(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao calcular valorização", err)
		return
	}
	ctx.JSON(http.StatusOK, v)
}

// ListTransactions lista as vendas com filtro e paginação
// @Summary Listar vendas
// @Tags reports
// @Produce json
// @Security Bearer
// @Param from query string false "Início (AAAA-MM-DD ou RFC3339)"
// @Param to query string false "Fim (AAAA-MM-DD inclusivo ou RFC3339)"
// @Param student_id query string false "Aluno"
// @Param employee_id query string false "Funcionário"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.PagedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /transactions [get]
func (c *ReportController) ListTransactions(ctx *gin.Context) {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		bindError(ctx, err)
		return
	}

	txs, err := c.reports.ListTransactions(ctx, filter)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar vendas", err)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "50"))
	p := dto.GetPagination(page, pageSize)
	start, end := p.Bounds(len(txs))

	ctx.JSON(http.StatusOK, dto.NewPagedResponse(txs[start:end], len(txs), p))
}

// ExportTransactions baixa as vendas filtradas em .xlsx
// @Summary Exportar vendas
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Param from query string false "Início (AAAA-MM-DD ou RFC3339)"
// @Param to query string false "Fim (AAAA-MM-DD inclusivo ou RFC3339)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Router /transactions/export [get]
func (c *ReportController) ExportTransactions(ctx *gin.Context) {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		bindError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := c.reports.ExportTransactions(ctx, filter, &buf); err != nil {
		respondError(ctx, c.logger, "erro ao exportar vendas", err)
		return
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().In(c.location).Format("20060102-1504"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (c *ReportController) parseFilter(ctx *gin.Context) (service.TransactionFilter, error) {
	filter := service.TransactionFilter{
		StudentID:  ctx.Query("student_id"),
		EmployeeID: ctx.Query("employee_id"),
	}

	if v := ctx.Query("from"); v != "" {
		t, _, err := c.parseTime(v)
		if err != nil {
			return filter, fmt.Errorf("from inválido: %w", err)
		}
		filter.From = t
	}
	if v := ctx.Query("to"); v != "" {
		t, dateOnly, err := c.parseTime(v)
		if err != nil {
			return filter, fmt.Errorf("to inválido: %w", err)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		}
		filter.To = t
	}
	return filter, nil
}

// parseTime aceita AAAA-MM-DD (no fuso da cantina) ou RFC3339
func (c *ReportController) parseTime(v string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation("2006-01-02", v, c.location); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	return t, false, err
}
