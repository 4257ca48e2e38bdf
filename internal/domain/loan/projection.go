package loan

import (
	"time"

	"loan-origination-backend/pkg/repayment"
)

// FullView is the flat back-office projection of a Loan.
type FullView struct {
	ID             string     `json:"id"`
	ApplicationNo  string     `json:"applicationNo"`
	User           string     `json:"user,omitempty"`
	DealerCode     string     `json:"dealerCode,omitempty"`
	Type           string     `json:"type,omitempty"`
	Status         Status     `json:"status"`
	SerialNumber   int64      `json:"serialNumber,omitempty"`
	InterestRate   *float64   `json:"interestRate,omitempty"`
	Amount         *float64   `json:"amount,omitempty"`
	Duration       *int       `json:"duration,omitempty"`
	ApprovedAmount *float64   `json:"approvedAmount,omitempty"`
	ApprovedDate   *time.Time `json:"approvedDate,omitempty"`

	VehicleExpiryDate *time.Time `json:"vehicleExpiryDate,omitempty"`
	Salutation        string     `json:"salutation,omitempty"`
	FullName          string     `json:"fullName,omitempty"`
	Nationality       string     `json:"nationality,omitempty"`
	Passport          string     `json:"passport,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Email             string     `json:"email,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	Country           string     `json:"country,omitempty"`
	PostalCode        string     `json:"postalCode,omitempty"`
	Address           string     `json:"address,omitempty"`
	BuildingNo        string     `json:"buildingNo,omitempty"`
	UnitNo            string     `json:"unitNo,omitempty"`

	EmploymentStatus   string   `json:"employmentStatus,omitempty"`
	Name               string   `json:"name,omitempty"`
	EmploymentAddress  string   `json:"employmentAddress,omitempty"`
	Occupation         string   `json:"occupation,omitempty"`
	DurationOfService  *float64 `json:"durationOfService,omitempty"`
	MonthlyGrossIncome *float64 `json:"monthlyGrossIncome,omitempty"`
	ProofOfIncome      string   `json:"proofOfIncome,omitempty"`
	SelfEmployed       string   `json:"selfEmployed,omitempty"`

	PurchaseOfVehicle *bool    `json:"purchaseOfVehicle,omitempty"`
	CarNumber         string   `json:"carNumber,omitempty"`
	CarType           string   `json:"carType,omitempty"`
	Make              string   `json:"make,omitempty"`
	Model             string   `json:"model,omitempty"`
	ChassisNo         string   `json:"chassisNo,omitempty"`
	EngineNo          string   `json:"engineNo,omitempty"`
	CarPrice          *float64 `json:"carPrice,omitempty"`
	AdvanceInstal     *float64 `json:"advanceInstal,omitempty"`
	FinalInstal       *float64 `json:"finalInstal,omitempty"`
	HandledBy         string   `json:"handledBy,omitempty"`

	Document  []Document `json:"document"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Set only by the single-loan read.
	MonthlyRepayment *float64 `json:"monthlyRepayment,omitempty"`
}

type Step1 struct {
	Amount            *float64   `json:"amount,omitempty"`
	Duration          *int       `json:"duration,omitempty"`
	VehicleExpiryDate *time.Time `json:"vehicleExpiryDate,omitempty"`
}

type Step2 struct {
	Salutation  string     `json:"salutation,omitempty"`
	FullName    string     `json:"fullName,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
	Passport    string     `json:"passport,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
}

type Step3 struct {
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Address    string `json:"address,omitempty"`
	BuildingNo string `json:"buildingNo,omitempty"`
	UnitNo     string `json:"unitNo,omitempty"`
}

type Step4 struct {
	EmploymentStatus   string   `json:"employmentStatus,omitempty"`
	Name               string   `json:"name,omitempty"`
	EmploymentAddress  string   `json:"employmentAddress,omitempty"`
	Occupation         string   `json:"occupation,omitempty"`
	DurationOfService  *float64 `json:"durationOfService,omitempty"`
	MonthlyGrossIncome *float64 `json:"monthlyGrossIncome,omitempty"`
	ProofOfIncome      string   `json:"proofOfIncome,omitempty"`
}

type Step5 struct {
	PurchaseOfVehicle *bool      `json:"purchaseOfVehicle,omitempty"`
	CarNumber         string     `json:"carNumber,omitempty"`
	VehicleExpiryDate *time.Time `json:"vehicleExpiryDate,omitempty"`
}

type StepData struct {
	Step1 Step1 `json:"step1"`
	Step2 Step2 `json:"step2"`
	Step3 Step3 `json:"step3"`
	Step4 Step4 `json:"step4"`
	Step5 Step5 `json:"step5"`
}

// StepView is the customer projection used to resume the multi-step form.
type StepView struct {
	ID            string   `json:"id"`
	ApplicationNo string   `json:"applicationNo"`
	User          string   `json:"user,omitempty"`
	DealerCode    string   `json:"dealerCode,omitempty"`
	InterestRate  *float64 `json:"interestRate,omitempty"`
	Type          string   `json:"type,omitempty"`
	Status        Status   `json:"status"`
	Data          StepData `json:"data"`
}

func (l *Loan) FullView() FullView {
	docs := make([]Document, len(l.Document))
	copy(docs, l.Document)
	return FullView{
		ID:                 l.ID,
		ApplicationNo:      l.ApplicationNo,
		User:               l.UserID,
		DealerCode:         l.DealerCode,
		Type:               l.Type,
		Status:             l.Status,
		SerialNumber:       l.SerialNumber,
		InterestRate:       l.InterestRate,
		Amount:             l.Amount,
		Duration:           l.Duration,
		ApprovedAmount:     l.ApprovedAmount,
		ApprovedDate:       l.ApprovedDate,
		VehicleExpiryDate:  l.VehicleExpiryDate,
		Salutation:         l.Salutation,
		FullName:           l.FullName,
		Nationality:        l.Nationality,
		Passport:           l.Passport,
		Phone:              l.Phone,
		Email:              l.Email,
		DateOfBirth:        l.DateOfBirth,
		Country:            l.Country,
		PostalCode:         l.PostalCode,
		Address:            l.Address,
		BuildingNo:         l.BuildingNo,
		UnitNo:             l.UnitNo,
		EmploymentStatus:   l.EmploymentStatus,
		Name:               l.Name,
		EmploymentAddress:  l.EmploymentAddress,
		Occupation:         l.Occupation,
		DurationOfService:  l.DurationOfService,
		MonthlyGrossIncome: l.MonthlyGrossIncome,
		ProofOfIncome:      l.ProofOfIncome,
		SelfEmployed:       l.SelfEmployed,
		PurchaseOfVehicle:  l.PurchaseOfVehicle,
		CarNumber:          l.CarNumber,
		CarType:            l.CarType,
		Make:               l.Make,
		Model:              l.Model,
		ChassisNo:          l.ChassisNo,
		EngineNo:           l.EngineNo,
		CarPrice:           l.CarPrice,
		AdvanceInstal:      l.AdvanceInstal,
		FinalInstal:        l.FinalInstal,
		HandledBy:          l.HandledBy,
		Document:           docs,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func (l *Loan) StepView() StepView {
	return StepView{
		ID:            l.ID,
		ApplicationNo: l.ApplicationNo,
		User:          l.UserID,
		DealerCode:    l.DealerCode,
		InterestRate:  l.InterestRate,
		Type:          l.Type,
		Status:        l.Status,
		Data: StepData{
			Step1: Step1{
				Amount:            l.Amount,
				Duration:          l.Duration,
				VehicleExpiryDate: l.VehicleExpiryDate,
			},
			Step2: Step2{
				Salutation:  l.Salutation,
				FullName:    l.FullName,
				Nationality: l.Nationality,
				Passport:    l.Passport,
				Phone:       l.Phone,
				Email:       l.Email,
				DateOfBirth: l.DateOfBirth,
			},
			Step3: Step3{
				Country:    l.Country,
				PostalCode: l.PostalCode,
				Address:    l.Address,
				BuildingNo: l.BuildingNo,
				UnitNo:     l.UnitNo,
			},
			Step4: Step4{
				EmploymentStatus:   l.EmploymentStatus,
				Name:               l.Name,
				EmploymentAddress:  l.EmploymentAddress,
				Occupation:         l.Occupation,
				DurationOfService:  l.DurationOfService,
				MonthlyGrossIncome: l.MonthlyGrossIncome,
				ProofOfIncome:      l.ProofOfIncome,
			},
			Step5: Step5{
				PurchaseOfVehicle: l.PurchaseOfVehicle,
				CarNumber:         l.CarNumber,
				VehicleExpiryDate: l.VehicleExpiryDate,
			},
		},
	}
}

// MonthlyRepayment derives the instalment from the loan's own terms.
// It is never stored.
func (l *Loan) MonthlyRepayment() float64 {
	var rate float64
	var duration int
	if l.InterestRate != nil {
		rate = *l.InterestRate
	}
	if l.Duration != nil {
		duration = *l.Duration
	}
	return repayment.Monthly(l.AmountValue(), rate, duration)
}
