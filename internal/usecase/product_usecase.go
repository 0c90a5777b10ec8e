package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"vendas_xpto/internal/domain/entities"
	"vendas_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidProductID      = errors.New("invalid product id")
	ErrInvalidProductName    = errors.New("invalid product name")
	ErrInvalidProductPrice   = errors.New("invalid product price")
	ErrInvalidProductStock   = errors.New("invalid product stock quantity")
	ErrInvalidProductImage   = errors.New("invalid product image")
	ErrImageStoreUnavailable = errors.New("image store not configured")
)

// IProductUseCase exposes catalog operations.
//
// Products are never hard-deleted by the order lifecycle; Delete exists for
// the internal-only catalog maintenance endpoints.

type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	AttachImage(ctx context.Context, id string, contentType string, body io.Reader) (entities.Product, error)
}

type ProductUseCase struct {
	repo   interfaces.IProductRepository
	images interfaces.IImageStore
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, images interfaces.IImageStore) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if p.Price < 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}
	if p.StockQty < 0 {
		return entities.Product{}, ErrInvalidProductStock
	}
	if p.Status == "" {
		p.Status = entities.ProductStatusActive
	}

	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	log.Printf("[product][usecase] create start product_id=%s sku=%s", p.ID, p.SKU)
	return u.repo.Create(ctx, p)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *ProductUseCase) List(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *ProductUseCase) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if p.Price < 0 {
		return entities.Product{}, ErrInvalidProductPrice
	}
	if p.StockQty < 0 {
		return entities.Product{}, ErrInvalidProductStock
	}

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	log.Printf("[product][usecase] delete success product_id=%s", id)
	return nil
}

// AttachImage uploads a product image to the object store and persists the
// resulting URL on the product record.
func (u *ProductUseCase) AttachImage(ctx context.Context, id string, contentType string, body io.Reader) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	if body == nil {
		return entities.Product{}, ErrInvalidProductImage
	}
	if u.images == nil {
		log.Printf("[product][usecase] image store not configured product_id=%s", id)
		return entities.Product{}, ErrImageStoreUnavailable
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	key := fmt.Sprintf("products/%s", p.ID)
	url, err := u.images.Upload(ctx, key, contentType, body)
	if err != nil {
		log.Printf("[product][usecase] image upload failed product_id=%s err=%v", id, err)
		return entities.Product{}, err
	}
	log.Printf("[product][usecase] image uploaded product_id=%s url=%s", id, url)

	updated, err := u.repo.UpdateImageURL(ctx, p.ID, url)
	if err != nil {
		return entities.Product{}, err
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return updated, nil
}
