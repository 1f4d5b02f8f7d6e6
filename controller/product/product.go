package product

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ppdb/apierror"
	"ppdb/controller"
	"ppdb/dto"
	"ppdb/middleware"
	"ppdb/model"
	"ppdb/services"
)

// Errors on these routes use the "error" envelope key.
const errKey = "error"

func ProductController(router gin.IRouter, products *services.ProductService) {
	routes := router.Group("/api/products")
	adminOnly := middleware.RequireRoleAs(errKey, model.RoleAdmin)
	{
		routes.GET("", func(c *gin.Context) {
			ListProducts(c, products)
		})
		routes.POST("", adminOnly, func(c *gin.Context) {
			CreateProduct(c, products)
		})
		routes.PUT("", adminOnly, func(c *gin.Context) {
			UpdateProduct(c, products)
		})
		routes.DELETE("", adminOnly, func(c *gin.Context) {
			DeleteProduct(c, products)
		})
	}
}

func ListProducts(c *gin.Context, products *services.ProductService) {
	list, err := products.List(c.Request.Context())
	if err != nil {
		apierror.RespondAs(c, err, errKey)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(list))
}

func CreateProduct(c *gin.Context, products *services.ProductService) {
	var req dto.ProductRequest
	if !controller.BindJSON(c, &req, errKey) {
		return
	}
	p, err := products.Create(c.Request.Context(), req)
	if err != nil {
		apierror.RespondAs(c, err, errKey)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(p))
}

func UpdateProduct(c *gin.Context, products *services.ProductService) {
	var req dto.ProductRequest
	if !controller.BindJSON(c, &req, errKey) {
		return
	}
	p, err := products.Update(c.Request.Context(), req)
	if err != nil {
		apierror.RespondAs(c, err, errKey)
		return
	}
	c.JSON(http.StatusOK, dto.ProductMessageResponse{
		Message:         "Product updated",
		ProductResponse: dto.NewProductResponse(p),
	})
}

func DeleteProduct(c *gin.Context, products *services.ProductService) {
	var req dto.ProductRequest
	if !controller.BindJSON(c, &req, errKey) {
		return
	}
	if err := products.Delete(c.Request.Context(), req.ID); err != nil {
		apierror.RespondAs(c, err, errKey)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": req.ID})
}
