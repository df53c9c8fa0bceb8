package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// StudentController gerencia alunos e carteiras
type StudentController struct {
	students *service.StudentService
	logger   logger.Logger
}

// NewStudentController cria uma nova instância de StudentController
func NewStudentController(students *service.StudentService, logger logger.Logger) *StudentController {
	return &StudentController{
		students: students,
		logger:   logger,
	}
}

func toStudentRequest(req dto.StudentRequest) service.StudentRequest {
	return service.StudentRequest{
		Name:               req.Name,
		Grade:              req.Grade,
		InitialBalance:     req.InitialBalance,
		DailySpendLimit:    req.DailySpendLimit,
		RestrictedProducts: req.RestrictedProducts,
		ImageURL:           req.ImageURL,
	}
}

// List lista os alunos
// @Summary Listar alunos
// @Description Lista os alunos; q filtra por nome ou turma
// @Tags students
// @Produce json
// @Security Bearer
// @Param q query string false "Nome ou turma"
// @Success 200 {array} student.Student
// @Router /students [get]
func (c *StudentController) List(ctx *gin.Context) {
	students, err := c.students.List(ctx, ctx.Query("q"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar alunos", err)
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// Get busca um aluno pelo ID ou QR code
// @Summary Buscar aluno
// @Tags students
// @Produce json
// @Security Bearer
// @Param id path string true "ID ou QR code do aluno"
// @Success 200 {object} student.Student
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (c *StudentController) Get(ctx *gin.Context) {
	st, err := c.students.Get(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar aluno", err)
		return
	}
	ctx.JSON(http.StatusOK, st)
}

// Create cadastra um aluno
// @Summary Criar aluno
// @Tags students
// @Accept json
// @Produce json
// @Security Bearer
// @Param student body dto.StudentRequest true "Dados do aluno"
// @Success 201 {object} student.Student
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [post]
func (c *StudentController) Create(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	st, err := c.students.Create(ctx, toStudentRequest(req))
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar aluno", err)
		return
	}
	ctx.JSON(http.StatusCreated, st)
}

// Update altera um aluno
// @Summary Alterar aluno
// @Description Altera nome, turma, limite diário, restrições e foto. O saldo não é alterado.
// @Tags students
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do aluno"
// @Param student body dto.StudentRequest true "Dados do aluno"
// @Success 200 {object} student.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (c *StudentController) Update(ctx *gin.Context) {
	var req dto.StudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	st, err := c.students.Update(ctx, ctx.Param("id"), toStudentRequest(req))
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar aluno", err)
		return
	}
	ctx.JSON(http.StatusOK, st)
}

// Delete remove um aluno
// @Summary Remover aluno
// @Tags students
// @Security Bearer
// @Param id path string true "ID do aluno"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (c *StudentController) Delete(ctx *gin.Context) {
	if err := c.students.Delete(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover aluno", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// TopUp recarrega a carteira do aluno
// @Summary Recarregar carteira
// @Tags students
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do aluno"
// @Param topup body dto.TopUpRequest true "Valor da recarga"
// @Success 200 {object} student.Student
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/topup [post]
func (c *StudentController) TopUp(ctx *gin.Context) {
	var req dto.TopUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	st, err := c.students.TopUp(ctx, ctx.Param("id"), req.Amount)
	if err != nil {
		respondError(ctx, c.logger, "erro ao recarregar carteira", err)
		return
	}
	ctx.JSON(http.StatusOK, st)
}

// History lista as compras do aluno
// @Summary Histórico do aluno
// @Tags students
// @Produce json
// @Security Bearer
// @Param id path string true "ID do aluno"
// @Success 200 {array} transaction.Transaction
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/transactions [get]
func (c *StudentController) History(ctx *gin.Context) {
	txs, err := c.students.History(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar histórico", err)
		return
	}
	ctx.JSON(http.StatusOK, txs)
}
