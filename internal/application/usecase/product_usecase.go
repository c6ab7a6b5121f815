package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/catalog"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProductUseCase casos de uso CRUD y de consulta para productos. El stock solo
// cambia vía el motor de ventas o Restock; Update nunca lo toca.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	stockRepo    repository.StockRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	stockRepo repository.StockRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, stockRepo: stockRepo}
}

// Create crea un producto con su stock inicial. La categoría debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	expiry, err := time.Parse(dateLayout, in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		CategoryID: in.CategoryID,
		ExpiryDate: expiry,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, category.Name), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product, ""), nil
}

// Update actualiza nombre, precio, categoría o vencimiento. Stock excluido a
// propósito: nunca se acepta del cliente.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.ExpiryDate != nil {
		expiry, err := time.Parse(dateLayout, *in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.ExpiryDate = expiry
	}
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product, ""), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// Restock suma unidades al stock (reposición manual).
func (uc *ProductUseCase) Restock(ctx context.Context, id int64, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return uc.stockRepo.Restock(ctx, id, quantity)
}

// List lista productos con su categoría, paginado.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) (*dto.ProductListResponse, error) {
	views, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: toProductItems(views),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Search busca por subcadena contra nombre, id y nombre de categoría.
func (uc *ProductUseCase) Search(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	needle := catalog.NormalizeNeedle(query)
	if needle == "" {
		return nil, domain.ErrInvalidInput
	}
	views, err := uc.repo.Search(ctx, needle)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductItems(views)}, nil
}

// FilterByExpiry lista productos cuyo vencimiento cae en la ventana del filtro.
func (uc *ProductUseCase) FilterByExpiry(ctx context.Context, filter catalog.ExpiryFilter) (*dto.ProductListResponse, error) {
	from, to, err := filter.Window(time.Now())
	if err != nil {
		return nil, err
	}
	views, err := uc.repo.FilterByExpiry(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{Items: toProductItems(views)}, nil
}

func toProductItems(views []repository.ProductView) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(views))
	for _, v := range views {
		items = append(items, *toProductResponse(&v.Product, v.CategoryName))
	}
	return items
}

func toProductResponse(p *entity.Product, categoryName string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		Stock:        p.Stock,
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		ExpiryDate:   p.ExpiryDate.Format(dateLayout),
		CreatedAt:    p.CreatedAt,
	}
}
