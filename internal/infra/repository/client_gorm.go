package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-api/internal/domain/client"
	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &client, nil
}

func (r *ClientGormRepository) Search(
	ctx context.Context,
	term string,
) ([]models.Client, error) {

	like := "%" + strings.ToLower(term) + "%"

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			like, like, like,
		).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {

	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if isUniqueViolation(err, clientsEmailConstraint) {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	id uint,
	columns map[string]any,
) (*models.Client, error) {

	client, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any, len(columns)+1)
	for k, v := range columns {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", client.ID).
		Updates(updates).Error; err != nil {

		if isUniqueViolation(err, clientsEmailConstraint) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	client, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return client, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ClientGormRepository) CountAppointments(
	ctx context.Context,
	clientID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClientGormRepository) ListAppointments(
	ctx context.Context,
	clientID uint,
) ([]dto.ClientAppointmentDTO, error) {

	var rows []dto.ClientAppointmentDTO
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				a.id,
				a.appointment_datetime,
				a.status,
				a.notes,
				st.name AS staff_name,
				srv.name AS service_name,
				srv.price AS price
			FROM appointments a
			LEFT JOIN staff st ON a.staff_id = st.id
			LEFT JOIN services srv ON a.service_id = srv.id
			WHERE a.client_id = ?
			ORDER BY a.appointment_datetime DESC, a.id DESC
		`, clientID).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
