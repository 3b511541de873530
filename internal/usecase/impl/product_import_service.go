package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/errors"
	"mpeshop/internal/usecase"

	"github.com/shopspring/decimal"
)

// Columns the importer understands. Anything else in a row is ignored so
// supplier feeds can carry extra columns.
var importSetters = map[string]func(*entity.Product, string) error{
	"name": func(p *entity.Product, v string) error {
		p.Name = v

		return nil
	},
	"sku": func(p *entity.Product, v string) error {
		p.SKU = v

		return nil
	},
	"slug": func(p *entity.Product, v string) error {
		p.Slug = v

		return nil
	},
	"category": func(p *entity.Product, v string) error {
		p.Category = entity.ProductCategory(strings.ToLower(v))

		return nil
	},
	"price": func(p *entity.Product, v string) error {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return errors.Errorf("invalid price %q", v)
		}
		p.Price = d

		return nil
	},
	"show_price": func(p *entity.Product, v string) error {
		return setBool(&p.ShowPrice, "show_price", v)
	},
	"in_stock": func(p *entity.Product, v string) error {
		return setBool(&p.InStock, "in_stock", v)
	},
	"is_active": func(p *entity.Product, v string) error {
		return setBool(&p.IsActive, "is_active", v)
	},
	"sort_order": func(p *entity.Product, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Errorf("invalid sort_order %q", v)
		}
		p.SortOrder = n

		return nil
	},
}

var importRequiredColumns = []string{"name", "sku"}

type productImportService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewProductImportService creates the stock import service.
func NewProductImportService(products repository.ProductRepository, logger *slog.Logger) usecase.ProductImportUsecase {
	return &productImportService{
		products: products,
		logger:   logger,
	}
}

func (s *productImportService) Import(ctx context.Context, rows []usecase.ImportRow) (*usecase.ImportReport, error) {
	if len(rows) == 0 {
		return nil, domainerrors.ErrImportFailed.WithDetails("no rows supplied")
	}

	report := &usecase.ImportReport{}
	for i, raw := range rows {
		rowNum := i + 1
		row := normalizeRow(raw)

		if missing := missingColumns(row); len(missing) > 0 {
			report.Skipped++
			report.Errors = append(report.Errors, usecase.ImportRowError{
				Row:    rowNum,
				Reason: "missing required columns: " + strings.Join(missing, ", "),
			})

			continue
		}

		created, err := s.upsertRow(ctx, row)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, usecase.ImportRowError{
				Row:    rowNum,
				Reason: err.Error(),
			})

			continue
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	s.logger.InfoContext(ctx, "product import finished",
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("skipped", report.Skipped),
	)

	return report, nil
}

// upsertRow applies the row onto an existing product matched by SKU, or a
// fresh one. created reports which path was taken.
func (s *productImportService) upsertRow(ctx context.Context, row usecase.ImportRow) (created bool, err error) {
	sku := row["sku"]

	product, err := s.products.FindBySKU(ctx, sku)
	switch {
	case err == nil:
		// Existing product: imported columns overwrite, others keep.
	case errors.Is(err, repository.ErrProductNotFound):
		created = true
		product = &entity.Product{
			SKU:       sku,
			Category:  entity.CategoryParts,
			ShowPrice: true,
			InStock:   true,
			IsActive:  true,
		}
	default:
		return false, fmt.Errorf("lookup by sku failed: %w", err)
	}

	for column, value := range row {
		setter, known := importSetters[column]
		if !known {
			continue
		}
		if err := setter(product, value); err != nil {
			return false, err
		}
	}

	if product.Slug == "" {
		product.Slug = slugify(product.Name)
	}

	if err := s.products.Save(ctx, product); err != nil {
		return false, fmt.Errorf("save failed: %w", err)
	}

	return created, nil
}

func normalizeRow(raw usecase.ImportRow) usecase.ImportRow {
	row := make(usecase.ImportRow, len(raw))
	for k, v := range raw {
		key := strings.ToLower(strings.TrimSpace(k))
		value := strings.TrimSpace(v)
		if key == "" || value == "" {
			continue
		}
		row[key] = value
	}

	return row
}

func missingColumns(row usecase.ImportRow) []string {
	var missing []string
	for _, col := range importRequiredColumns {
		if row[col] == "" {
			missing = append(missing, col)
		}
	}

	return missing
}

func setBool(target *bool, column, v string) error {
	switch strings.ToLower(v) {
	case "true", "yes", "y", "1":
		*target = true
	case "false", "no", "n", "0":
		*target = false
	default:
		return errors.Errorf("invalid %s %q", column, v)
	}

	return nil
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
