package loan

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusNotSubmitted Status = "NOT_SUBMITTED"
	StatusPending      Status = "PENDING"
	StatusProcessing   Status = "PROCESSING"
	StatusApproved     Status = "APPROVED"
	StatusRejected     Status = "REJECTED"
	StatusCancelled    Status = "CANCELLED"
	StatusCompleted    Status = "COMPLETED"
)

var statuses = []Status{
	StatusNotSubmitted, StatusPending, StatusProcessing, StatusApproved,
	StatusRejected, StatusCancelled, StatusCompleted,
}

// Valid reports whether s is one of the lifecycle states. Transitions
// between states are not restricted.
func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Document is an attachment reference; the file itself lives in object storage.
type Document struct {
	Name string `json:"name"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Loan is stored flat; the five application steps are read-side groupings
// (see StepView).
type Loan struct {
	ID            string `gorm:"primaryKey;size:24;column:id"`
	ApplicationNo string `gorm:"size:24;uniqueIndex:ux_loans_application_no;column:application_no"`
	UserID        string `gorm:"size:24;index:idx_loans_user;column:user_id"`
	DealerCode    string `gorm:"size:64;column:dealer_code"`
	Type          string `gorm:"size:64;column:type"`
	Status        Status `gorm:"size:32;index:idx_loans_status;default:'NOT_SUBMITTED';column:status"`
	SerialNumber  int64  `gorm:"column:serial_number"`

	InterestRate   *float64   `gorm:"type:decimal(6,3);column:interest_rate"`
	Amount         *float64   `gorm:"type:decimal(18,2);column:amount"`
	Duration       *int       `gorm:"column:duration"`
	ApprovedAmount *float64   `gorm:"type:decimal(18,2);column:approved_amount"`
	ApprovedDate   *time.Time `gorm:"column:approved_date"`

	// step 1 (amount, duration above) / step 5
	VehicleExpiryDate *time.Time `gorm:"column:vehicle_expiry_date"`

	// step 2
	Salutation  string     `gorm:"size:16;column:salutation"`
	FullName    string     `gorm:"size:128;index:idx_loans_full_name;column:full_name"`
	Nationality string     `gorm:"size:128;column:nationality"`
	Passport    string     `gorm:"size:128;column:passport"`
	Phone       string     `gorm:"size:128;column:phone"`
	Email       string     `gorm:"size:128;column:email"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth"`

	// step 3
	Country    string `gorm:"size:64;column:country"`
	PostalCode string `gorm:"size:128;column:postal_code"`
	Address    string `gorm:"type:text;column:address"`
	BuildingNo string `gorm:"size:64;column:building_no"`
	UnitNo     string `gorm:"size:64;column:unit_no"`

	// step 4
	EmploymentStatus   string   `gorm:"size:64;column:employment_status"`
	Name               string   `gorm:"size:128;column:name"`
	EmploymentAddress  string   `gorm:"type:text;column:employment_address"`
	Occupation         string   `gorm:"size:128;column:occupation"`
	DurationOfService  *float64 `gorm:"column:duration_of_service"`
	MonthlyGrossIncome *float64 `gorm:"type:decimal(18,2);column:monthly_gross_income"`
	ProofOfIncome      string   `gorm:"type:text;column:proof_of_income"`
	SelfEmployed       string   `gorm:"size:64;column:self_employed"`

	// step 5
	PurchaseOfVehicle *bool  `gorm:"column:purchase_of_vehicle"`
	CarNumber         string `gorm:"size:64;column:car_number"`

	// vehicle details filled in by the back office
	CarType       string   `gorm:"size:64;column:car_type"`
	Make          string   `gorm:"size:64;column:make"`
	Model         string   `gorm:"size:64;column:model"`
	ChassisNo     string   `gorm:"size:64;column:chassis_no"`
	EngineNo      string   `gorm:"size:64;column:engine_no"`
	CarPrice      *float64 `gorm:"type:decimal(18,2);column:car_price"`
	AdvanceInstal *float64 `gorm:"type:decimal(18,2);column:advance_instal"`
	FinalInstal   *float64 `gorm:"type:decimal(18,2);column:final_instal"`
	HandledBy     string   `gorm:"size:128;column:handled_by"`

	Document datatypes.JSONSlice[Document] `gorm:"type:json;column:document"`

	CreatedAt time.Time `gorm:"column:created_at;index:idx_loans_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Loan) TableName() string { return "loans" }

// AmountValue returns Amount or 0 when it was never submitted.
func (l *Loan) AmountValue() float64 {
	if l.Amount == nil {
		return 0
	}
	return *l.Amount
}
