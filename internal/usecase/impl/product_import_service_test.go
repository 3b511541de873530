package impl

import (
	"context"
	"testing"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	mockRepo "mpeshop/internal/mocks/repository"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductImportService_CreatesAndUpdates(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewProductImportService(products, discardLogger())

	// Row 1 is new, row 2 updates an existing SKU.
	products.EXPECT().FindBySKU(ctx, "FE-10").
		Return(nil, repository.ErrProductNotFound)
	existing := &entity.Product{ID: uuid.New(), Name: "Gasket Set", SKU: "GS-2", Slug: "gasket-set"}
	products.EXPECT().FindBySKU(ctx, "GS-2").Return(existing, nil)

	products.EXPECT().Save(ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.SKU == "FE-10" && p.Name == "Filter Element" && p.Slug == "filter-element" &&
			p.Price.StringFixed(2) == "10.50" && p.IsActive
	})).Return(nil).Once()
	products.EXPECT().Save(ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == existing.ID && p.Price.StringFixed(2) == "8.25"
	})).Return(nil).Once()

	report, err := svc.Import(ctx, []usecase.ImportRow{
		{"name": "Filter Element", "sku": "FE-10", "price": "10.50", "category": "Consumables"},
		{"name": "Gasket Set", "sku": "GS-2", "price": "8.25"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 0, report.Skipped)
	assert.Empty(t, report.Errors)
}

func TestProductImportService_UnknownColumnsIgnored(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewProductImportService(products, discardLogger())

	products.EXPECT().FindBySKU(ctx, "FE-10").
		Return(nil, repository.ErrProductNotFound)
	products.EXPECT().Save(ctx, mock.Anything).Return(nil)

	report, err := svc.Import(ctx, []usecase.ImportRow{
		{"name": "Filter Element", "sku": "FE-10", "supplier_code": "X9", "warehouse": "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Empty(t, report.Errors)
}

func TestProductImportService_MissingRequiredColumns(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewProductImportService(products, discardLogger())

	products.EXPECT().FindBySKU(ctx, "OK-1").
		Return(nil, repository.ErrProductNotFound)
	products.EXPECT().Save(ctx, mock.Anything).Return(nil)

	report, err := svc.Import(ctx, []usecase.ImportRow{
		{"sku": "NO-NAME"},
		{"name": "No SKU here"},
		{"name": "Fine", "sku": "OK-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 2, report.Skipped)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 1, report.Errors[0].Row)
	assert.Contains(t, report.Errors[0].Reason, "name")
	assert.Equal(t, 2, report.Errors[1].Row)
	assert.Contains(t, report.Errors[1].Reason, "sku")
}

func TestProductImportService_BadValuesReported(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewProductImportService(products, discardLogger())

	products.EXPECT().FindBySKU(ctx, "BAD-1").
		Return(nil, repository.ErrProductNotFound)

	report, err := svc.Import(ctx, []usecase.ImportRow{
		{"name": "Broken", "sku": "BAD-1", "price": "ten pounds"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0].Reason, "invalid price")
}

func TestProductImportService_NoRows(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewProductImportService(products, discardLogger())

	_, err := svc.Import(ctx, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrImportFailed.ErrorCode(), appErr.ErrorCode())
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "filter-element", slugify("Filter Element"))
	assert.Equal(t, "m8-bolt-pack-10", slugify("M8 Bolt (Pack/10)"))
	assert.Equal(t, "", slugify("---"))
}
