package retail

import (
	"fmt"

	"gorm.io/gorm"
)

// Store runs the retail statements on one request's connection. Every
// mutation is a single parameter-bound statement with no surrounding
// transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) List(l Listing) ([]Row, error) {
	if l.load == nil {
		return nil, fmt.Errorf("listing %q has no query", l.Resource)
	}
	rows, err := l.load(s.db)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", l.Resource, err)
	}
	return rows, nil
}

func (s *Store) exec(op, query string, args ...interface{}) (int64, error) {
	res := s.db.Exec(query, args...)
	if res.Error != nil {
		return 0, fmt.Errorf("%s: %w", op, res.Error)
	}
	return res.RowsAffected, nil
}

func (s *Store) AddName(f NameForm) error {
	_, err := s.exec("add name", `INSERT INTO test (name) VALUES (?)`, f.Name)
	return err
}

func (s *Store) AddEmployee(f EmployeeForm) error {
	e := f.Model()
	_, err := s.exec("add employee",
		`INSERT INTO employee (ssn, first_name, last_name, e_id, d_id, employee_time_zone, employee_authority)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.SSN, e.FirstName, e.LastName, e.EID, e.DID, e.EmployeeTimeZone, e.EmployeeAuthority)
	return err
}

func (s *Store) UpdateEmployee(f EmployeeForm) (int64, error) {
	e := f.Model()
	return s.exec("update employee",
		`UPDATE employee SET first_name = ?, last_name = ?, e_id = ?, d_id = ?,
		employee_time_zone = ?, employee_authority = ? WHERE ssn = ?`,
		e.FirstName, e.LastName, e.EID, e.DID, e.EmployeeTimeZone, e.EmployeeAuthority, e.SSN)
}

// DeleteEmployee reports how many rows went away; zero is not an error.
func (s *Store) DeleteEmployee(k EmployeeKey) (int64, error) {
	return s.exec("delete employee", `DELETE FROM employee WHERE ssn = ?`, *k.SSN)
}

func (s *Store) AddOrder(f OrderForm) error {
	o, err := f.Model()
	if err != nil {
		return err
	}
	_, err = s.exec("add order",
		`INSERT INTO ord (o_id, total_price, created_date, order_country, order_city, order_zipcode)
		VALUES (?, ?, ?, ?, ?, ?)`,
		o.OID, o.TotalPrice, o.CreatedDate, o.OrderCountry, o.OrderCity, o.OrderZipcode)
	return err
}

func (s *Store) UpdateOrder(f OrderForm) (int64, error) {
	o, err := f.Model()
	if err != nil {
		return 0, err
	}
	return s.exec("update order",
		`UPDATE ord SET total_price = ?, created_date = ?, order_country = ?, order_city = ?,
		order_zipcode = ? WHERE o_id = ?`,
		o.TotalPrice, o.CreatedDate, o.OrderCountry, o.OrderCity, o.OrderZipcode, o.OID)
}

func (s *Store) DeleteOrder(k OrderKey) (int64, error) {
	return s.exec("delete order", `DELETE FROM ord WHERE o_id = ?`, *k.OID)
}

func (s *Store) AddSelection(k SelectionKey) error {
	_, err := s.exec("add selection", `INSERT INTO selec (p_id, customer_id) VALUES (?, ?)`, *k.PID, *k.CustomerID)
	return err
}

func (s *Store) UpdateSelection(u SelectionUpdate) (int64, error) {
	return s.exec("update selection",
		`UPDATE selec SET p_id = ?, customer_id = ? WHERE p_id = ? AND customer_id = ?`,
		*u.PID, *u.CustomerID, *u.PIDOld, *u.CustomerIDOld)
}

func (s *Store) DeleteSelection(k SelectionKey) (int64, error) {
	return s.exec("delete selection", `DELETE FROM selec WHERE p_id = ? AND customer_id = ?`, *k.PID, *k.CustomerID)
}

// Affected maps a mutated resource to every listing whose rows it can change.
var Affected = map[string][]string{
	IndexResource: {IndexResource},
	"employee":    {"employee", "order_manage", "product_manage"},
	"order":       {"order"},
	"select":      {"select"},
}
