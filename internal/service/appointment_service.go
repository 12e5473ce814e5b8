package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"estately/internal/auth"
	apperrors "estately/internal/errors"
	"estately/internal/model"
	"estately/internal/repository"
)

// AppointmentInput carries the fields accepted when scheduling a viewing.
type AppointmentInput struct {
	PropertyID uint
	SellerID   uint
	Date       string
	Time       string
	Message    string
}

// AppointmentView is an appointment with the caller's side of it annotated.
type AppointmentView struct {
	repository.AppointmentWithParty
	Type string `json:"type"`
}

// AppointmentService encodes the appointment state machine: who may confirm,
// cancel or delete, and the confirmed-slot conflict rule on creation.
type AppointmentService interface {
	Create(ctx context.Context, identity auth.Identity, input AppointmentInput) (*model.Appointment, error)
	ListMine(ctx context.Context, userID uint) ([]AppointmentView, error)
	Get(ctx context.Context, identity auth.Identity, id uint) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, identity auth.Identity, id uint, status string) (*model.Appointment, error)
	Delete(ctx context.Context, identity auth.Identity, id uint) error
	Today(ctx context.Context, userID uint) ([]model.Appointment, error)
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(appointmentRepo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{appointmentRepo: appointmentRepo}
}

// Create schedules a viewing with the caller as buyer. A slot already held by
// a confirmed appointment on the same property is rejected.
func (s *appointmentService) Create(ctx context.Context, identity auth.Identity, input AppointmentInput) (*model.Appointment, error) {
	if input.PropertyID == 0 || input.SellerID == 0 || input.Date == "" || input.Time == "" {
		return nil, apperrors.NewValidation("Property ID, seller ID, date and time are required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, apperrors.NewValidation("Invalid appointment date, expected YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", input.Time); err != nil {
		return nil, apperrors.NewValidation("Invalid appointment time, expected HH:MM")
	}

	taken, err := s.appointmentRepo.HasConfirmedSlot(ctx, input.PropertyID, input.Date, input.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrSlotConflict
	}

	appointment := &model.Appointment{
		Date:       model.Date(input.Date),
		Time:       model.TimeOfDay(input.Time),
		Status:     model.AppointmentStatusPending,
		Message:    input.Message,
		BuyerID:    identity.UserID,
		SellerID:   input.SellerID,
		PropertyID: input.PropertyID,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListMine merges the caller's appointments as buyer and as seller, each
// annotated with the other party's name.
func (s *appointmentService) ListMine(ctx context.Context, userID uint) ([]AppointmentView, error) {
	asBuyer, err := s.appointmentRepo.FindByBuyerID(ctx, userID)
	if err != nil {
		return nil, err
	}
	asSeller, err := s.appointmentRepo.FindBySellerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]AppointmentView, 0, len(asBuyer)+len(asSeller))
	for _, row := range asBuyer {
		views = append(views, AppointmentView{AppointmentWithParty: row, Type: "buyer"})
	}
	for _, row := range asSeller {
		views = append(views, AppointmentView{AppointmentWithParty: row, Type: "seller"})
	}
	return views, nil
}

// Get returns an appointment to one of its parties only.
func (s *appointmentService) Get(ctx context.Context, identity auth.Identity, id uint) (*model.Appointment, error) {
	appointment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment.BuyerID != identity.UserID && appointment.SellerID != identity.UserID {
		return nil, apperrors.NewForbidden("Unauthorized to view this appointment")
	}
	return appointment, nil
}

// UpdateStatus applies the appointment state machine. Admins and the seller
// may confirm or cancel; the buyer may only cancel; anyone else is rejected.
func (s *appointmentService) UpdateStatus(ctx context.Context, identity auth.Identity, id uint, status string) (*model.Appointment, error) {
	appointment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case identity.IsAdmin() || identity.UserID == appointment.SellerID:
		if status != model.AppointmentStatusConfirmed && status != model.AppointmentStatusCancelled {
			return nil, apperrors.NewInvalidTransition("Invalid status update for admin/seller")
		}
	case identity.UserID == appointment.BuyerID:
		if status != model.AppointmentStatusCancelled {
			return nil, apperrors.NewInvalidTransition("Buyer can only cancel appointments")
		}
	default:
		return nil, apperrors.NewForbidden("Unauthorized to update this appointment")
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	appointment.Status = status
	return appointment, nil
}

// Delete removes an appointment; only the buyer may delete, and only while
// it is still pending.
func (s *appointmentService) Delete(ctx context.Context, identity auth.Identity, id uint) error {
	appointment, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if appointment.BuyerID != identity.UserID {
		return apperrors.NewForbidden("Unauthorized to delete this appointment")
	}
	if appointment.Status != model.AppointmentStatusPending {
		return apperrors.NewInvalidTransition("Only pending appointments can be deleted")
	}
	return s.appointmentRepo.Delete(ctx, id)
}

func (s *appointmentService) Today(ctx context.Context, userID uint) ([]model.Appointment, error) {
	return s.appointmentRepo.FindToday(ctx, userID)
}

func (s *appointmentService) load(ctx context.Context, id uint) (*model.Appointment, error) {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Appointment not found")
		}
		return nil, err
	}
	return appointment, nil
}
