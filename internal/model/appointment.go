package model

import "time"

// AppointmentStatus values for Appointment.Status.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment is a viewing request from a buyer to a property's seller.
// Date is "2006-01-02", Time is "15:04". No two confirmed appointments may
// share (property, date, time); the conflict check happens before insert
// since only confirmed rows conflict and MySQL has no partial unique index.
type Appointment struct {
	ID          uint      `json:"appointment_id" gorm:"column:appointment_id;primaryKey"`
	Date        Date      `json:"appointment_date" gorm:"column:appointment_date;type:date;not null;index:idx_appointment_slot"`
	Time        TimeOfDay `json:"appointment_time" gorm:"column:appointment_time;type:time;not null;index:idx_appointment_slot"`
	Status      string    `json:"appointment_status" gorm:"column:appointment_status;type:varchar(10);default:'pending'"`
	Message     string    `json:"message" gorm:"column:message;type:text"`
	CreatedDate time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`

	BuyerID    uint `json:"buyer_id" gorm:"column:buyer_id;not null;index"`
	SellerID   uint `json:"seller_id" gorm:"column:seller_id;not null;index"`
	PropertyID uint `json:"property_id" gorm:"column:property_id;not null;index:idx_appointment_slot,priority:1"`
}

// TableName keeps the original schema name.
func (Appointment) TableName() string { return "appointment_table" }
