package loan

import "time"

// ApplicationFields holds the fields a customer may submit at any step.
// A nil pointer means "not submitted"; Apply copies only non-nil values
// (shallow merge, nothing nested is merged).
type ApplicationFields struct {
	DealerCode *string `json:"dealerCode,omitempty"`
	Type       *string `json:"type,omitempty"`
	Status     *Status `json:"status,omitempty"`

	Amount            *float64   `json:"amount,omitempty"`
	Duration          *int       `json:"duration,omitempty"`
	VehicleExpiryDate *time.Time `json:"vehicleExpiryDate,omitempty"`

	Salutation  *string    `json:"salutation,omitempty"`
	FullName    *string    `json:"fullName,omitempty"`
	Nationality *string    `json:"nationality,omitempty"`
	Passport    *string    `json:"passport,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`

	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	Address    *string `json:"address,omitempty"`
	BuildingNo *string `json:"buildingNo,omitempty"`
	UnitNo     *string `json:"unitNo,omitempty"`

	EmploymentStatus   *string  `json:"employmentStatus,omitempty"`
	Name               *string  `json:"name,omitempty"`
	EmploymentAddress  *string  `json:"employmentAddress,omitempty"`
	Occupation         *string  `json:"occupation,omitempty"`
	DurationOfService  *float64 `json:"durationOfService,omitempty"`
	MonthlyGrossIncome *float64 `json:"monthlyGrossIncome,omitempty"`
	ProofOfIncome      *string  `json:"proofOfIncome,omitempty"`
	SelfEmployed       *string  `json:"selfEmployed,omitempty"`

	PurchaseOfVehicle *bool   `json:"purchaseOfVehicle,omitempty"`
	CarNumber         *string `json:"carNumber,omitempty"`

	CarType       *string  `json:"carType,omitempty"`
	Make          *string  `json:"make,omitempty"`
	Model         *string  `json:"model,omitempty"`
	ChassisNo     *string  `json:"chassisNo,omitempty"`
	EngineNo      *string  `json:"engineNo,omitempty"`
	CarPrice      *float64 `json:"carPrice,omitempty"`
	AdvanceInstal *float64 `json:"advanceInstal,omitempty"`
	FinalInstal   *float64 `json:"finalInstal,omitempty"`
}

// AdminFields extends ApplicationFields with back-office decisions.
// Document, when present, replaces the whole attachment list.
type AdminFields struct {
	ApplicationFields

	InterestRate   *float64    `json:"interestRate,omitempty"`
	ApprovedAmount *float64    `json:"approvedAmount,omitempty"`
	ApprovedDate   *time.Time  `json:"approvedDate,omitempty"`
	HandledBy      *string     `json:"handledBy,omitempty"`
	Document       *[]Document `json:"document,omitempty"`
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Apply merges the submitted fields onto l. Identity, serial number,
// owner, interest rate and timestamps are untouched.
func (f ApplicationFields) Apply(l *Loan) {
	setStr(&l.DealerCode, f.DealerCode)
	setStr(&l.Type, f.Type)
	if f.Status != nil {
		l.Status = *f.Status
	}

	setPtr(&l.Amount, f.Amount)
	setPtr(&l.Duration, f.Duration)
	setPtr(&l.VehicleExpiryDate, f.VehicleExpiryDate)

	setStr(&l.Salutation, f.Salutation)
	setStr(&l.FullName, f.FullName)
	setStr(&l.Nationality, f.Nationality)
	setStr(&l.Passport, f.Passport)
	setStr(&l.Phone, f.Phone)
	setStr(&l.Email, f.Email)
	setPtr(&l.DateOfBirth, f.DateOfBirth)

	setStr(&l.Country, f.Country)
	setStr(&l.PostalCode, f.PostalCode)
	setStr(&l.Address, f.Address)
	setStr(&l.BuildingNo, f.BuildingNo)
	setStr(&l.UnitNo, f.UnitNo)

	setStr(&l.EmploymentStatus, f.EmploymentStatus)
	setStr(&l.Name, f.Name)
	setStr(&l.EmploymentAddress, f.EmploymentAddress)
	setStr(&l.Occupation, f.Occupation)
	setPtr(&l.DurationOfService, f.DurationOfService)
	setPtr(&l.MonthlyGrossIncome, f.MonthlyGrossIncome)
	setStr(&l.ProofOfIncome, f.ProofOfIncome)
	setStr(&l.SelfEmployed, f.SelfEmployed)

	setPtr(&l.PurchaseOfVehicle, f.PurchaseOfVehicle)
	setStr(&l.CarNumber, f.CarNumber)

	setStr(&l.CarType, f.CarType)
	setStr(&l.Make, f.Make)
	setStr(&l.Model, f.Model)
	setStr(&l.ChassisNo, f.ChassisNo)
	setStr(&l.EngineNo, f.EngineNo)
	setPtr(&l.CarPrice, f.CarPrice)
	setPtr(&l.AdvanceInstal, f.AdvanceInstal)
	setPtr(&l.FinalInstal, f.FinalInstal)
}

func (f AdminFields) Apply(l *Loan) {
	f.ApplicationFields.Apply(l)
	setPtr(&l.InterestRate, f.InterestRate)
	setPtr(&l.ApprovedAmount, f.ApprovedAmount)
	setPtr(&l.ApprovedDate, f.ApprovedDate)
	setStr(&l.HandledBy, f.HandledBy)
	if f.Document != nil {
		l.Document = append([]Document(nil), (*f.Document)...)
	}
}
