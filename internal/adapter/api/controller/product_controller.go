package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/tuckshop/internal/adapter/api/dto"
	"github.com/hugohenrick/tuckshop/internal/service"
	"github.com/hugohenrick/tuckshop/pkg/logger"
)

// ProductController gerencia o catálogo de produtos e categorias
type ProductController struct {
	catalog *service.CatalogService
	logger  logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(catalog *service.CatalogService, logger logger.Logger) *ProductController {
	return &ProductController{
		catalog: catalog,
		logger:  logger,
	}
}

// List lista os produtos
// @Summary Listar produtos
// @Description Lista os produtos do catálogo. active=true retorna só os ativos.
// @Tags products
// @Produce json
// @Security Bearer
// @Param active query bool false "Somente ativos"
// @Success 200 {array} product.Product
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	products, err := c.catalog.ListProducts(ctx, ctx.Query("active") == "true")
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar produtos", err)
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Tags products
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 200 {object} product.Product
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.catalog.GetProduct(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, c.logger, "erro ao buscar produto", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Create cadastra um produto
// @Summary Criar produto
// @Description Cadastra um produto simples, com variações ou composto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	p, err := c.catalog.CreateProduct(ctx, req.ToProduct(req.ID))
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar produto", err)
		return
	}
	ctx.JSON(http.StatusCreated, p)
}

// Update altera um produto
// @Summary Alterar produto
// @Tags products
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} product.Product
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	p, err := c.catalog.UpdateProduct(ctx, req.ToProduct(ctx.Param("id")))
	if err != nil {
		respondError(ctx, c.logger, "erro ao alterar produto", err)
		return
	}
	ctx.JSON(http.StatusOK, p)
}

// Delete remove um produto
// @Summary Remover produto
// @Tags products
// @Security Bearer
// @Param id path string true "ID do produto"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.catalog.DeleteProduct(ctx, ctx.Param("id")); err != nil {
		respondError(ctx, c.logger, "erro ao remover produto", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListCategories lista as categorias
// @Summary Listar categorias
// @Tags categories
// @Produce json
// @Security Bearer
// @Success 200 {array} product.Category
// @Router /categories [get]
func (c *ProductController) ListCategories(ctx *gin.Context) {
	categories, err := c.catalog.ListCategories(ctx)
	if err != nil {
		respondError(ctx, c.logger, "erro ao listar categorias", err)
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// CreateCategory cadastra uma categoria
// @Summary Criar categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security Bearer
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} product.Category
// @Failure 400 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *ProductController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	category, err := c.catalog.CreateCategory(ctx, req.Name, req.Color)
	if err != nil {
		respondError(ctx, c.logger, "erro ao criar categoria", err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}
