package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Demo backs the index page and the /add form.
type Demo struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name"`
}

func (Demo) TableName() string { return "test" }

type Department struct {
	DID                 int64  `gorm:"column:d_id;primaryKey;autoIncrement:false"`
	DepartmentName      string `gorm:"column:department_name"`
	DepartmentCountry   string `gorm:"column:department_country"`
	DepartmentCity      string `gorm:"column:department_city"`
	DepartmentAuthority int    `gorm:"column:department_authority"`
}

func (Department) TableName() string { return "department" }

type Employee struct {
	SSN               int64  `gorm:"column:ssn;primaryKey;autoIncrement:false"`
	FirstName         string `gorm:"column:first_name"`
	LastName          string `gorm:"column:last_name"`
	EID               int64  `gorm:"column:e_id"`
	DID               int64  `gorm:"column:d_id;index"`
	EmployeeTimeZone  int    `gorm:"column:employee_time_zone"`
	EmployeeAuthority int    `gorm:"column:employee_authority"`
}

func (Employee) TableName() string { return "employee" }

type Deal struct {
	DealID            int64     `gorm:"column:deal_id;primaryKey;autoIncrement:false"`
	DealDate          time.Time `gorm:"column:deal_date;type:date"`
	PromotionStrategy string    `gorm:"column:promotion_strategy"`
}

func (Deal) TableName() string { return "deal" }

type Customer struct {
	CustomerID       int64  `gorm:"column:customer_id;primaryKey;autoIncrement:false"`
	Gender           string `gorm:"column:gender"`
	Membership       string `gorm:"column:membership"`
	PhoneNumber      string `gorm:"column:phone_number"`
	CustomerCity     string `gorm:"column:customer_city"`
	CustomerCountry  string `gorm:"column:customer_country"`
	CustomerZipcode  int64  `gorm:"column:customer_zipcode"`
	CustomerTimezone int    `gorm:"column:customer_timezone"`
}

func (Customer) TableName() string { return "customer" }

type Cart struct {
	CartID     int64 `gorm:"column:cart_id;primaryKey;autoIncrement:false"`
	CustomerID int64 `gorm:"column:customer_id;index"`
	Quantity   int   `gorm:"column:quantity"`
}

func (Cart) TableName() string { return "cart" }

type Product struct {
	PID            int64           `gorm:"column:p_id;primaryKey;autoIncrement:false"`
	Inventory      int             `gorm:"column:inventory"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(10,2)"`
	ViewDate       time.Time       `gorm:"column:view_date;type:date"`
	Size           string          `gorm:"column:size"`
	Weight         float64         `gorm:"column:weight"`
	Status         string          `gorm:"column:status"`
	ProductCity    string          `gorm:"column:product_city"`
	ProductCountry string          `gorm:"column:product_country"`
}

func (Product) TableName() string { return "product" }

type Order struct {
	OID          int64           `gorm:"column:o_id;primaryKey;autoIncrement:false"`
	TotalPrice   decimal.Decimal `gorm:"column:total_price;type:numeric(10,2)"`
	CreatedDate  time.Time       `gorm:"column:created_date;type:date"`
	OrderCountry string          `gorm:"column:order_country"`
	OrderCity    string          `gorm:"column:order_city"`
	OrderZipcode int64           `gorm:"column:order_zipcode"`
}

func (Order) TableName() string { return "ord" }

// Association tables. Each uses its column pair as a composite key.

type OrderManage struct {
	SSN           int64     `gorm:"column:ssn;primaryKey;autoIncrement:false"`
	OID           int64     `gorm:"column:o_id;primaryKey;autoIncrement:false"`
	OperationDate time.Time `gorm:"column:operation_date;type:date"`
}

func (OrderManage) TableName() string { return "ord_manage" }

type ProductManage struct {
	SSN int64 `gorm:"column:ssn;primaryKey;autoIncrement:false"`
	PID int64 `gorm:"column:p_id;primaryKey;autoIncrement:false"`
}

func (ProductManage) TableName() string { return "product_manage" }

type CreatePO struct {
	PID int64 `gorm:"column:p_id;primaryKey;autoIncrement:false"`
	OID int64 `gorm:"column:o_id;primaryKey;autoIncrement:false"`
}

func (CreatePO) TableName() string { return "create_p_o" }

type Selection struct {
	PID        int64 `gorm:"column:p_id;primaryKey;autoIncrement:false"`
	CustomerID int64 `gorm:"column:customer_id;primaryKey;autoIncrement:false"`
}

func (Selection) TableName() string { return "selec" }

type CreateCO struct {
	CartID int64 `gorm:"column:cart_id;primaryKey;autoIncrement:false"`
	OID    int64 `gorm:"column:o_id;primaryKey;autoIncrement:false"`
}

func (CreateCO) TableName() string { return "create_c_o" }

type Show struct {
	PID    int64 `gorm:"column:p_id;primaryKey;autoIncrement:false"`
	CartID int64 `gorm:"column:cart_id;primaryKey;autoIncrement:false"`
}

func (Show) TableName() string { return "show" }

type Decide struct {
	DealID int64 `gorm:"column:deal_id;primaryKey;autoIncrement:false"`
	DID    int64 `gorm:"column:d_id;primaryKey;autoIncrement:false"`
}

func (Decide) TableName() string { return "deside" }

type Monitor struct {
	DID int64 `gorm:"column:d_id;primaryKey;autoIncrement:false"`
	PID int64 `gorm:"column:p_id;primaryKey;autoIncrement:false"`
}

func (Monitor) TableName() string { return "monitor" }

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Demo{},
		&Department{},
		&Employee{},
		&Deal{},
		&Customer{},
		&Cart{},
		&Product{},
		&Order{},
		&OrderManage{},
		&ProductManage{},
		&CreatePO{},
		&Selection{},
		&CreateCO{},
		&Show{},
		&Decide{},
		&Monitor{},
	}
}
