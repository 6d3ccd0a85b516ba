package retail

import (
	"fmt"

	"gorm.io/gorm"

	"retail-crud/internal/database/models"
)

// Form describes the mutation routes a listing page links to.
type Form struct {
	AddAction    string
	UpdateAction string
	DeleteAction string
	Fields       []string
	UpdateFields []string
	Keys         []string
}

// Listing is a read-only page backed by exactly one query.
type Listing struct {
	Resource string
	Title    string
	Columns  []string
	Form     *Form
	load     func(db *gorm.DB) ([]Row, error)
}

func (l Listing) Path() string {
	if l.Resource == IndexResource {
		return "/"
	}
	return "/" + l.Resource
}

const IndexResource = "index"

// list runs query, scans every row into T and maps it through toRow,
// preserving result order.
func list[T any](db *gorm.DB, query string, toRow func(T) Row) ([]Row, error) {
	var records []T
	if err := db.Raw(query).Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, toRow(r))
	}
	return rows, nil
}

type nameRecord struct {
	Name string `gorm:"column:name"`
}

type employeeRecord struct {
	models.Employee
	DepartmentName string `gorm:"column:department_name"`
}

type orderManageRecord struct {
	models.OrderManage
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
}

type productManageRecord struct {
	models.ProductManage
	FirstName string `gorm:"column:first_name"`
	LastName  string `gorm:"column:last_name"`
}

var Listings = []Listing{
	{
		Resource: IndexResource,
		Title:    "Names",
		Columns:  []string{"name"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT DISTINCT name FROM test ORDER BY name`, func(r nameRecord) Row {
				return Row{"name": r.Name}
			})
		},
	},
	{
		Resource: "employee",
		Title:    "Employees",
		Columns:  []string{"ssn", "first_name", "last_name", "e_id", "d_id", "employee_time_zone", "employee_authority", "department_name"},
		Form: &Form{
			AddAction:    "/employee_add",
			UpdateAction: "/employee_update",
			DeleteAction: "/employee_delete",
			Fields:       []string{"ssn", "first_name", "last_name", "e_id", "d_id", "employee_time_zone", "employee_authority"},
			UpdateFields: []string{"ssn", "first_name", "last_name", "e_id", "d_id", "employee_time_zone", "employee_authority"},
			Keys:         []string{"ssn"},
		},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT E.ssn, E.first_name, E.last_name, E.e_id, E.employee_time_zone,
				E.employee_authority, D.department_name, E.d_id
				FROM employee E JOIN department D ON E.d_id = D.d_id
				ORDER BY E.ssn`, func(r employeeRecord) Row {
				return Row{
					"ssn":                r.SSN,
					"first_name":         r.FirstName,
					"last_name":          r.LastName,
					"e_id":               r.EID,
					"d_id":               r.DID,
					"employee_time_zone": AbsTimezone(r.EmployeeTimeZone),
					"employee_authority": AuthorityLabel(r.EmployeeAuthority),
					"department_name":    r.DepartmentName,
				}
			})
		},
	},
	{
		Resource: "department",
		Title:    "Departments",
		Columns:  []string{"d_id", "department_name", "department_country", "department_city", "department_authority"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT d_id, department_name, department_country, department_city,
				department_authority FROM department ORDER BY d_id`, func(r models.Department) Row {
				return Row{
					"d_id":                 r.DID,
					"department_name":      r.DepartmentName,
					"department_country":   r.DepartmentCountry,
					"department_city":      r.DepartmentCity,
					"department_authority": AuthorityLabel(r.DepartmentAuthority),
				}
			})
		},
	},
	{
		Resource: "deal",
		Title:    "Deals",
		Columns:  []string{"deal_id", "deal_date", "promotion_strategy"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT deal_id, deal_date, promotion_strategy FROM deal ORDER BY deal_id`, func(r models.Deal) Row {
				return Row{
					"deal_id":            r.DealID,
					"deal_date":          formatDate(r.DealDate),
					"promotion_strategy": r.PromotionStrategy,
				}
			})
		},
	},
	{
		Resource: "customer",
		Title:    "Customers",
		Columns:  []string{"customer_id", "gender", "membership", "phone_number", "customer_city", "customer_country", "customer_zipcode", "customer_timezone"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT customer_id, gender, membership, phone_number, customer_city,
				customer_country, customer_zipcode, customer_timezone FROM customer
				ORDER BY customer_id`, func(r models.Customer) Row {
				return Row{
					"customer_id":       r.CustomerID,
					"gender":            r.Gender,
					"membership":        r.Membership,
					"phone_number":      r.PhoneNumber,
					"customer_city":     r.CustomerCity,
					"customer_country":  r.CustomerCountry,
					"customer_zipcode":  r.CustomerZipcode,
					"customer_timezone": r.CustomerTimezone,
				}
			})
		},
	},
	{
		Resource: "cart",
		Title:    "Carts",
		Columns:  []string{"cart_id", "customer_id", "quantity"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT cart_id, customer_id, quantity FROM cart ORDER BY cart_id`, func(r models.Cart) Row {
				return Row{"cart_id": r.CartID, "customer_id": r.CustomerID, "quantity": r.Quantity}
			})
		},
	},
	{
		Resource: "product",
		Title:    "Products",
		Columns:  []string{"p_id", "inventory", "price", "view_date", "size", "weight", "status", "product_city", "product_country"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT p_id, inventory, price, view_date, size, weight, status,
				product_city, product_country FROM product ORDER BY p_id`, func(r models.Product) Row {
				return Row{
					"p_id":            r.PID,
					"inventory":       r.Inventory,
					"price":           formatMoney(r.Price),
					"view_date":       formatDate(r.ViewDate),
					"size":            r.Size,
					"weight":          r.Weight,
					"status":          r.Status,
					"product_city":    r.ProductCity,
					"product_country": r.ProductCountry,
				}
			})
		},
	},
	{
		Resource: "order",
		Title:    "Orders",
		Columns:  []string{"o_id", "total_price", "created_date", "order_city", "order_country", "order_zipcode"},
		Form: &Form{
			AddAction:    "/order_add",
			UpdateAction: "/order_update",
			DeleteAction: "/order_delete",
			Fields:       []string{"o_id", "total_price", "created_date", "order_country", "order_city", "order_zipcode"},
			UpdateFields: []string{"o_id", "total_price", "created_date", "order_country", "order_city", "order_zipcode"},
			Keys:         []string{"o_id"},
		},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT o_id, total_price, created_date, order_city, order_country,
				order_zipcode FROM ord ORDER BY o_id`, func(r models.Order) Row {
				return Row{
					"o_id":          r.OID,
					"total_price":   formatMoney(r.TotalPrice),
					"created_date":  formatDate(r.CreatedDate),
					"order_city":    r.OrderCity,
					"order_country": r.OrderCountry,
					"order_zipcode": r.OrderZipcode,
				}
			})
		},
	},
	{
		Resource: "order_manage",
		Title:    "Order management",
		Columns:  []string{"ssn", "o_id", "operation_date"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT E.ssn, OM.o_id, OM.operation_date, E.first_name, E.last_name
				FROM ord_manage OM JOIN employee E ON E.ssn = OM.ssn
				ORDER BY E.ssn, OM.o_id`, func(r orderManageRecord) Row {
				return Row{
					"ssn":            r.SSN,
					"o_id":           r.OID,
					"operation_date": formatDate(r.OperationDate),
				}
			})
		},
	},
	{
		Resource: "product_manage",
		Title:    "Product management",
		Columns:  []string{"ssn", "first_name", "last_name", "p_id"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT E.ssn, E.first_name, E.last_name, PM.p_id
				FROM product_manage PM JOIN employee E ON E.ssn = PM.ssn
				ORDER BY E.ssn, PM.p_id`, func(r productManageRecord) Row {
				return Row{
					"ssn":        r.SSN,
					"first_name": r.FirstName,
					"last_name":  r.LastName,
					"p_id":       r.PID,
				}
			})
		},
	},
	{
		Resource: "create_p_o",
		Title:    "Products in orders",
		Columns:  []string{"p_id", "o_id"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT p_id, o_id FROM create_p_o ORDER BY p_id, o_id`, func(r models.CreatePO) Row {
				return Row{"p_id": r.PID, "o_id": r.OID}
			})
		},
	},
	{
		Resource: "select",
		Title:    "Customer selections",
		Columns:  []string{"p_id", "customer_id"},
		Form: &Form{
			AddAction:    "/select_add",
			UpdateAction: "/select_update",
			DeleteAction: "/select_delete",
			Fields:       []string{"p_id", "customer_id"},
			UpdateFields: []string{"p_id_old", "customer_id_old", "p_id", "customer_id"},
			Keys:         []string{"p_id", "customer_id"},
		},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT p_id, customer_id FROM selec ORDER BY p_id, customer_id`, func(r models.Selection) Row {
				return Row{"p_id": r.PID, "customer_id": r.CustomerID}
			})
		},
	},
	{
		Resource: "create_c_o",
		Title:    "Carts in orders",
		Columns:  []string{"cart_id", "o_id"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT cart_id, o_id FROM create_c_o ORDER BY cart_id, o_id`, func(r models.CreateCO) Row {
				return Row{"cart_id": r.CartID, "o_id": r.OID}
			})
		},
	},
	{
		Resource: "show",
		Title:    "Products in carts",
		Columns:  []string{"p_id", "cart_id"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT p_id, cart_id FROM show ORDER BY p_id, cart_id`, func(r models.Show) Row {
				return Row{"p_id": r.PID, "cart_id": r.CartID}
			})
		},
	},
	{
		Resource: "deside",
		Title:    "Deal decisions",
		Columns:  []string{"deal_id", "d_id"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT deal_id, d_id FROM deside ORDER BY deal_id, d_id`, func(r models.Decide) Row {
				return Row{"deal_id": r.DealID, "d_id": r.DID}
			})
		},
	},
	{
		Resource: "monitor",
		Title:    "Product monitoring",
		Columns:  []string{"p_id", "d_id"},
		load: func(db *gorm.DB) ([]Row, error) {
			return list(db, `SELECT d_id, p_id FROM monitor ORDER BY d_id, p_id`, func(r models.Monitor) Row {
				return Row{"p_id": r.PID, "d_id": r.DID}
			})
		},
	},
}

func LookupListing(resource string) (Listing, bool) {
	for _, l := range Listings {
		if l.Resource == resource {
			return l, true
		}
	}
	return Listing{}, false
}
