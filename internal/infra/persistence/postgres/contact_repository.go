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

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a ContactRepository backed by PostgreSQL.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var m model.ContactModel
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return contactToEntity(&m), nil
}

func (r *contactRepository) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	var m model.ContactModel
	err := r.db.WithContext(ctx).
		Preload("Addresses").
		First(&m, "lower(email) = lower(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by email")
	}

	return contactToEntity(&m), nil
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	m := contactToModel(contact)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(err, "contact email already exists")
		}

		return errors.Wrap(err, "failed to create contact")
	}

	contact.ID = m.ID
	contact.CreatedAt = m.CreatedAt
	contact.UpdatedAt = m.UpdatedAt

	return nil
}

func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	result := r.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("id = ?", contact.ID).
		Updates(map[string]any{
			"name":    contact.Name,
			"company": contact.Company,
			"phone":   contact.Phone,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

func (r *contactRepository) SaveAddress(ctx context.Context, address *entity.Address) error {
	m := addressToModel(address)
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	db := r.db.WithContext(ctx)

	if m.IsDefault {
		err := db.Model(&model.ContactAddressModel{}).
			Where("contact_id = ? AND id <> ?", m.ContactID, m.ID).
			Update("is_default", false).Error
		if err != nil {
			return errors.Wrap(err, "failed to clear default addresses")
		}
	}

	if err := db.Save(m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrContactNotFound
		}

		return errors.Wrap(err, "failed to save address")
	}

	address.ID = m.ID
	address.CreatedAt = m.CreatedAt

	return nil
}

func contactToEntity(m *model.ContactModel) *entity.Contact {
	c := &entity.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Company:   m.Company,
		Phone:     m.Phone,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, am := range m.Addresses {
		c.Addresses = append(c.Addresses, addressToEntity(am))
	}

	return c
}

func contactToModel(c *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ID:      c.ID,
		Name:    c.Name,
		Company: c.Company,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

func addressToEntity(m *model.ContactAddressModel) *entity.Address {
	return &entity.Address{
		ID:        m.ID,
		ContactID: m.ContactID,
		Label:     m.Label,
		Address1:  m.Address1,
		Address2:  m.Address2,
		City:      m.City,
		County:    m.County,
		Postcode:  m.Postcode,
		Country:   m.Country,
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

func addressToModel(a *entity.Address) *model.ContactAddressModel {
	return &model.ContactAddressModel{
		ID:        a.ID,
		ContactID: a.ContactID,
		Label:     a.Label,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		County:    a.County,
		Postcode:  a.Postcode,
		Country:   a.Country,
		IsDefault: a.IsDefault,
		CreatedAt: a.CreatedAt,
	}
}
