package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-api/internal/domain/appointment"
	domain "github.com/BruksfildServices01/salon-api/internal/domain/service"
	"github.com/BruksfildServices01/salon-api/internal/dto"
	"github.com/BruksfildServices01/salon-api/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *ServiceGormRepository) List(
	ctx context.Context,
	active *bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx)
	if active != nil {
		q = q.Where("is_active = ?", *active)
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, notFound(err, domain.ErrNotFound)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) Create(
	ctx context.Context,
	svc *models.Service,
) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *ServiceGormRepository) Update(
	ctx context.Context,
	id uint,
	columns map[string]any,
) (*models.Service, error) {

	svc, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(columns) == 0 {
		return svc, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", svc.ID).
		Updates(columns).Error; err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *ServiceGormRepository) SetActive(
	ctx context.Context,
	id uint,
	active bool,
) (*models.Service, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Update("is_active", active)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *ServiceGormRepository) Delete(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	svc, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return svc, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ServiceGormRepository) CountActiveAppointments(
	ctx context.Context,
	serviceID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("service_id = ? AND status NOT IN ?", serviceID, appointment.InactiveStatuses()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Popular ranks active services by completed bookings. The status filter sits
// in the join so services without completed bookings still appear with 0.
func (r *ServiceGormRepository) Popular(
	ctx context.Context,
	limit int,
) ([]dto.PopularServiceDTO, error) {

	var rows []dto.PopularServiceDTO
	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				s.id,
				s.name,
				s.description,
				s.price,
				s.duration_minutes,
				COUNT(a.id) AS booking_count,
				COALESCE(SUM(CASE WHEN a.id IS NULL THEN 0 ELSE s.price END), 0) AS total_revenue
			FROM services s
			LEFT JOIN appointments a
				ON a.service_id = s.id AND a.status = ?
			WHERE s.is_active = ?
			GROUP BY s.id, s.name, s.description, s.price, s.duration_minutes
			ORDER BY booking_count DESC, s.name ASC
			LIMIT ?
		`, string(appointment.StatusCompleted), true, limit).
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*ServiceGormRepository)(nil)
