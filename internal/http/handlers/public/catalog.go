package public

import (
	"errors"
	"strconv"

	"github.com/stallfront/internal/http/response"
	"github.com/stallfront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCategories 分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "获取分类失败", err)
		return
	}
	response.Success(c, gin.H{"categories": categories})
}

// GetProducts 商品列表，支持 ?category_id= 过滤
func (h *Handler) GetProducts(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 {
			respondError(c, response.CodeBadRequest, "分类ID无效", nil)
			return
		}
		id := uint(parsed)
		categoryID = &id
	}

	products, err := h.CatalogService.ListProducts(categoryID)
	if err != nil {
		respondError(c, response.CodeInternal, "获取商品失败", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	product, err := h.CatalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "商品不存在", nil)
			return
		}
		respondError(c, response.CodeInternal, "获取商品失败", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		respondError(c, response.CodeBadRequest, "ID无效", nil)
		return 0, false
	}
	return uint(parsed), true
}
