package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"brewmenu/internal/delivery/api/response"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/menu"
	"brewmenu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler is the admin product editor.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// ProductRequest is the full editable state of a product. Price accepts a JSON number or a numeric string.
type ProductRequest struct {
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	NameOverrides        map[string]string `json:"name_overrides"`
	DescriptionOverrides map[string]string `json:"description_overrides"`
	Price                json.Number       `json:"price" validate:"required,decimal"`
	ImageURL             string            `json:"image_url" validate:"omitempty,url"`
	Label                string            `json:"label"`
	Category             string            `json:"category"`
}

type productResponse struct {
	ID                   string            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	NameOverrides        map[string]string `json:"name_overrides,omitempty"`
	DescriptionOverrides map[string]string `json:"description_overrides,omitempty"`
	Price                string            `json:"price"`
	ImageURL             string            `json:"image_url,omitempty"`
	Label                string            `json:"label,omitempty"`
	Category             string            `json:"category"`
	CreatedAt            string            `json:"created_at"`
	UpdatedAt            string            `json:"updated_at"`
}

// ListProducts returns every product straight from the store.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	input, err := bindProductInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product))
}

// UpdateProduct replaces every editable field of the product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := productIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := bindProductInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := productIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func productIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "id", Reason: "must be a UUID"})
	}

	return id, nil
}

func bindProductInput(c echo.Context) (*usecase.ProductInput, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed product body")
	}

	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	// The validator has already accepted the price.
	price, _ := decimal.NewFromString(req.Price.String())

	return &usecase.ProductInput{
		Name:                 req.Name,
		Description:          req.Description,
		NameOverrides:        toOverrides(req.NameOverrides),
		DescriptionOverrides: toOverrides(req.DescriptionOverrides),
		Price:                price,
		ImageURL:             req.ImageURL,
		Label:                entity.Label(req.Label),
		Category:             entity.Category(req.Category),
	}, nil
}

func toOverrides(in map[string]string) map[entity.Language]string {
	if len(in) == 0 {
		return nil
	}

	out := make(map[entity.Language]string, len(in))
	for lang, value := range in {
		out[entity.Language(lang)] = value
	}

	return out
}

func fromOverrides(in map[entity.Language]string) map[string]string {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]string, len(in))
	for lang, value := range in {
		out[lang.String()] = value
	}

	return out
}

func newProductResponse(p *entity.Product) *productResponse {
	return &productResponse{
		ID:                   p.ID.String(),
		Name:                 p.Name,
		Description:          p.Description,
		NameOverrides:        fromOverrides(p.NameOverrides),
		DescriptionOverrides: fromOverrides(p.DescriptionOverrides),
		Price:                menu.FormatPrice(p.Price),
		ImageURL:             p.ImageURL,
		Label:                p.Label.String(),
		Category:             p.Category.String(),
		CreatedAt:            p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
