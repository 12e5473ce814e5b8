package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"estately/internal/model"
)

// AppointmentWithParty is an appointment row joined with the other party's
// name and the property title for presentation.
type AppointmentWithParty struct {
	model.Appointment
	OtherPartyName string `json:"other_party_name" gorm:"column:other_party_name"`
	PropertyTitle  string `json:"property_title" gorm:"column:property_title"`
}

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id uint) (*model.Appointment, error)
	FindByBuyerID(ctx context.Context, buyerID uint) ([]AppointmentWithParty, error)
	FindBySellerID(ctx context.Context, sellerID uint) ([]AppointmentWithParty, error)
	FindToday(ctx context.Context, userID uint) ([]model.Appointment, error)
	HasConfirmedSlot(ctx context.Context, propertyID uint, date, timeOfDay string) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// FindByBuyerID lists a buyer's appointments with the seller's name attached.
func (r *appointmentRepository) FindByBuyerID(ctx context.Context, buyerID uint) ([]AppointmentWithParty, error) {
	var rows []AppointmentWithParty
	err := r.db.WithContext(ctx).
		Table("appointment_table").
		Select("appointment_table.*, user_table.user_name AS other_party_name, property_table.property_title").
		Joins("JOIN user_table ON appointment_table.seller_id = user_table.user_id").
		Joins("JOIN property_table ON appointment_table.property_id = property_table.property_id").
		Where("appointment_table.buyer_id = ?", buyerID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindBySellerID lists a seller's appointments with the buyer's name attached.
func (r *appointmentRepository) FindBySellerID(ctx context.Context, sellerID uint) ([]AppointmentWithParty, error) {
	var rows []AppointmentWithParty
	err := r.db.WithContext(ctx).
		Table("appointment_table").
		Select("appointment_table.*, user_table.user_name AS other_party_name, property_table.property_title").
		Joins("JOIN user_table ON appointment_table.buyer_id = user_table.user_id").
		Joins("JOIN property_table ON appointment_table.property_id = property_table.property_id").
		Where("appointment_table.seller_id = ?", sellerID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) FindToday(ctx context.Context, userID uint) ([]model.Appointment, error) {
	today := time.Now().Format("2006-01-02")
	var appointments []model.Appointment
	err := r.db.WithContext(ctx).
		Where("appointment_date = ?", today).
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// HasConfirmedSlot reports whether a confirmed appointment already occupies
// (property, date, time). Check-then-act: callers run this before insert, so
// two concurrent creations can still race; only confirmed rows conflict, which
// rules out a plain unique index as a backstop.
func (r *appointmentRepository) HasConfirmedSlot(ctx context.Context, propertyID uint, date, timeOfDay string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("property_id = ? AND appointment_date = ? AND appointment_time = ? AND appointment_status = ?",
			propertyID, date, timeOfDay, model.AppointmentStatusConfirmed).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("appointment_id = ?", id).
		Update("appointment_status", status).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error
}
