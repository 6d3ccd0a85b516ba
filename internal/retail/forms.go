package retail

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"retail-crud/internal/database/models"
)

var ErrInvalidInput = errors.New("invalid input")

// Form and query-string payloads, bound by gin. Numeric fields reject
// anything that does not parse, so no raw text ever reaches SQL. Required
// integers are pointers so that 0 binds as a value and only an absent field
// fails validation.

type NameForm struct {
	Name string `form:"name" binding:"required"`
}

type EmployeeForm struct {
	SSN               *int64 `form:"ssn" binding:"required"`
	FirstName         string `form:"first_name" binding:"required"`
	LastName          string `form:"last_name" binding:"required"`
	EID               *int64 `form:"e_id" binding:"required"`
	DID               *int64 `form:"d_id" binding:"required"`
	EmployeeTimeZone  *int   `form:"employee_time_zone" binding:"required"`
	EmployeeAuthority string `form:"employee_authority" binding:"required"`
}

func (f EmployeeForm) Model() models.Employee {
	return models.Employee{
		SSN:               *f.SSN,
		FirstName:         f.FirstName,
		LastName:          f.LastName,
		EID:               *f.EID,
		DID:               *f.DID,
		EmployeeTimeZone:  *f.EmployeeTimeZone,
		EmployeeAuthority: AuthorityFlag(f.EmployeeAuthority),
	}
}

type EmployeeKey struct {
	SSN *int64 `form:"ssn" binding:"required"`
}

type OrderForm struct {
	OID          *int64    `form:"o_id" binding:"required"`
	TotalPrice   string    `form:"total_price" binding:"required"`
	CreatedDate  time.Time `form:"created_date" binding:"required" time_format:"2006-01-02" time_utc:"1"`
	OrderCountry string    `form:"order_country" binding:"required"`
	OrderCity    string    `form:"order_city" binding:"required"`
	OrderZipcode *int64    `form:"order_zipcode" binding:"required"`
}

func (f OrderForm) Model() (models.Order, error) {
	price, err := decimal.NewFromString(f.TotalPrice)
	if err != nil {
		return models.Order{}, fmt.Errorf("%w: total_price %q is not a number", ErrInvalidInput, f.TotalPrice)
	}
	if price.IsNegative() {
		return models.Order{}, fmt.Errorf("%w: total_price must not be negative", ErrInvalidInput)
	}

	return models.Order{
		OID:          *f.OID,
		TotalPrice:   price,
		CreatedDate:  f.CreatedDate,
		OrderCountry: f.OrderCountry,
		OrderCity:    f.OrderCity,
		OrderZipcode: *f.OrderZipcode,
	}, nil
}

type OrderKey struct {
	OID *int64 `form:"o_id" binding:"required"`
}

type SelectionKey struct {
	PID        *int64 `form:"p_id" binding:"required"`
	CustomerID *int64 `form:"customer_id" binding:"required"`
}

type SelectionUpdate struct {
	SelectionKey
	PIDOld        *int64 `form:"p_id_old" binding:"required"`
	CustomerIDOld *int64 `form:"customer_id_old" binding:"required"`
}
