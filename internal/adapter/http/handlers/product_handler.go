package handlers

import (
	"errors"
	"log"
	"net/http"

	request "vendas_xpto/internal/adapter/http/dto/request"
	response "vendas_xpto/internal/adapter/http/dto/response"
	"vendas_xpto/internal/usecase"
	"vendas_xpto/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidProductID      = pkg.NewDomainErrorSimple("INVALID_PRODUCT_ID", "Invalid product ID", http.StatusBadRequest)
)

// ProductHandler handles HTTP requests for the product catalog.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidProductID.HTTPStatus, errInvalidProductID.ToHTTPError())
		return
	}

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

func (h *ProductHandler) Create(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(p))
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidProductID.HTTPStatus, errInvalidProductID.ToHTTPError())
		return
	}

	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.ID = id
	updated, err := h.usecase.Update(c.Request.Context(), p)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(updated))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidProductID.HTTPStatus, errInvalidProductID.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "productId": id})
}

// UploadImage stores a multipart product image and persists its URL.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(errInvalidProductID.HTTPStatus, errInvalidProductID.ToHTTPError())
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}
	src, err := file.Open()
	if err != nil {
		log.Printf("[product][handler] image open failed product_id=%s err=%v", id, err)
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}
	defer src.Close()

	p, err := h.usecase.AttachImage(c.Request.Context(), id, file.Header.Get("Content-Type"), src)
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductPrice),
		errors.Is(err, usecase.ErrInvalidProductStock),
		errors.Is(err, usecase.ErrInvalidProductImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrImageStoreUnavailable):
		return pkg.NewDomainErrorSimple("IMAGE_STORE_UNAVAILABLE", "Image store not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
