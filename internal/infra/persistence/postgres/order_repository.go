package postgres

import (
	"context"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an OrderRepository backed by PostgreSQL.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	m := orderToModel(order)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	for _, item := range m.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = m.ID
	}
	if m.Address != nil {
		if m.Address.ID == uuid.Nil {
			m.Address.ID = uuid.New()
		}
		m.Address.OrderID = m.ID
	}

	// Items and the address snapshot are inserted via the associations so a
	// single Create covers the whole aggregate. The surrounding transaction
	// (txManager.Execute) makes contact upsert + order insert atomic.
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrContactNotFound
		}

		return errors.Wrap(err, "failed to create order")
	}

	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	for i, item := range m.Items {
		order.Items[i].ID = item.ID
		order.Items[i].OrderID = item.OrderID
	}
	if m.Address != nil && order.Address != nil {
		order.Address.ID = m.Address.ID
		order.Address.OrderID = m.Address.OrderID
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var m model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Contact").
		Preload("Items").
		Preload("Address").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return orderToEntity(&m), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) UpdateEmailDelivery(ctx context.Context, id uuid.UUID, delivery entity.EmailDelivery) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"email_sent_to_customer": delivery.SentToCustomer,
			"email_sent_to_internal": delivery.SentToInternal,
			"email_sent_at":          delivery.SentAt,
			"email_last_error":       delivery.LastError,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order email delivery")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func orderToEntity(m *model.OrderModel) *entity.Order {
	o := &entity.Order{
		ID:                  m.ID,
		ContactID:           m.ContactID,
		OrderNumber:         m.OrderNumber,
		Status:              entity.OrderStatus(m.Status),
		Notes:               m.Notes,
		Total:               m.Total,
		EmailSentToCustomer: m.EmailSentToCustomer,
		EmailSentToInternal: m.EmailSentToInternal,
		EmailSentAt:         m.EmailSentAt,
		EmailLastError:      m.EmailLastError,
		CreatedAt:           m.CreatedAt,
	}
	if m.Contact != nil {
		o.Contact = contactToEntity(m.Contact)
	}
	for _, im := range m.Items {
		o.Items = append(o.Items, &entity.OrderItem{
			ID:          im.ID,
			OrderID:     im.OrderID,
			ProductID:   im.ProductID,
			ProductName: im.ProductName,
			SKU:         im.SKU,
			UnitPrice:   im.UnitPrice,
			Quantity:    im.Quantity,
		})
	}
	if m.Address != nil {
		o.Address = &entity.OrderAddress{
			ID:       m.Address.ID,
			OrderID:  m.Address.OrderID,
			Label:    m.Address.Label,
			Address1: m.Address.Address1,
			Address2: m.Address.Address2,
			City:     m.Address.City,
			County:   m.Address.County,
			Postcode: m.Address.Postcode,
			Country:  m.Address.Country,
		}
	}

	return o
}

func orderToModel(o *entity.Order) *model.OrderModel {
	m := &model.OrderModel{
		ID:                  o.ID,
		ContactID:           o.ContactID,
		OrderNumber:         o.OrderNumber,
		Status:              string(o.Status),
		Notes:               o.Notes,
		Total:               o.Total,
		EmailSentToCustomer: o.EmailSentToCustomer,
		EmailSentToInternal: o.EmailSentToInternal,
		EmailSentAt:         o.EmailSentAt,
		EmailLastError:      o.EmailLastError,
	}
	for _, item := range o.Items {
		m.Items = append(m.Items, &model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SKU:         item.SKU,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	if o.Address != nil {
		m.Address = &model.OrderAddressModel{
			ID:       o.Address.ID,
			OrderID:  o.Address.OrderID,
			Label:    o.Address.Label,
			Address1: o.Address.Address1,
			Address2: o.Address.Address2,
			City:     o.Address.City,
			County:   o.Address.County,
			Postcode: o.Address.Postcode,
			Country:  o.Address.Country,
		}
	}

	return m
}
