package retail_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"retail-crud/internal/database"
	"retail-crud/internal/database/dbtest"
	"retail-crud/internal/database/models"
	"retail-crud/internal/retail"
)

func intPtr(i int) *int { return &i }

func id(i int64) *int64 { return &i }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// seed loads a small fixture touching every table.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	fixtures := []interface{}{
		&[]models.Demo{{Name: "grace hopper"}, {Name: "alan turing"}, {Name: "alan turing"}},
		&[]models.Department{
			{DID: 1, DepartmentName: "Sales", DepartmentCountry: "US", DepartmentCity: "NYC", DepartmentAuthority: 1},
			{DID: 2, DepartmentName: "Ops", DepartmentCountry: "UK", DepartmentCity: "London", DepartmentAuthority: 3},
		},
		&[]models.Employee{
			{SSN: 111, FirstName: "Grace", LastName: "Hopper", EID: 1, DID: 1, EmployeeTimeZone: -5, EmployeeAuthority: 1},
			{SSN: 222, FirstName: "Alan", LastName: "Turing", EID: 2, DID: 2, EmployeeTimeZone: 0, EmployeeAuthority: 0},
			{SSN: 333, FirstName: "Orphan", LastName: "Row", EID: 3, DID: 99, EmployeeTimeZone: 1, EmployeeAuthority: 1},
		},
		&[]models.Deal{{DealID: 1, DealDate: day("2024-01-02"), PromotionStrategy: "bogo"}},
		&[]models.Customer{{CustomerID: 7, Gender: "F", Membership: "gold", PhoneNumber: "555", CustomerCity: "NYC", CustomerCountry: "US", CustomerZipcode: 10027, CustomerTimezone: -5}},
		&[]models.Cart{{CartID: 1, CustomerID: 7, Quantity: 2}, {CartID: 2, CustomerID: 7, Quantity: 1}},
		&[]models.Product{{PID: 10, Inventory: 5, Price: decimal.RequireFromString("9.99"), ViewDate: day("2024-02-01"), Size: "M", Weight: 1.5, Status: "active", ProductCity: "NYC", ProductCountry: "US"}},
		&[]models.Order{{OID: 100, TotalPrice: decimal.RequireFromString("19.98"), CreatedDate: day("2024-02-03"), OrderCountry: "US", OrderCity: "NYC", OrderZipcode: 10027}},
		&[]models.OrderManage{{SSN: 111, OID: 100, OperationDate: day("2024-02-04")}},
		&[]models.ProductManage{{SSN: 111, PID: 10}, {SSN: 222, PID: 10}},
		&[]models.CreatePO{{PID: 10, OID: 100}},
		&[]models.Selection{{PID: 10, CustomerID: 7}},
		&[]models.CreateCO{{CartID: 1, OID: 100}},
		&[]models.Show{{PID: 10, CartID: 1}, {PID: 10, CartID: 2}},
		&[]models.Decide{{DealID: 1, DID: 1}},
		&[]models.Monitor{{DID: 1, PID: 10}},
	}
	for _, f := range fixtures {
		require.NoError(t, db.Create(f).Error)
	}
}

func newStore(t *testing.T) (*retail.Store, *gorm.DB) {
	t.Helper()
	db := dbtest.New(t)
	seed(t, db)

	conn, err := database.Acquire(context.Background(), db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Release() })

	return retail.NewStore(conn.DB), db
}

func mustList(t *testing.T, s *retail.Store, resource string) []retail.Row {
	t.Helper()
	l, ok := retail.LookupListing(resource)
	require.True(t, ok, resource)
	rows, err := s.List(l)
	require.NoError(t, err)
	return rows
}

func TestListingRowCountsMatchQuery(t *testing.T) {
	store, db := newStore(t)

	countOf := func(query string) int {
		var n int64
		require.NoError(t, db.Raw(query).Scan(&n).Error)
		return int(n)
	}

	expected := map[string]int{
		retail.IndexResource: countOf(`SELECT COUNT(DISTINCT name) FROM test`),
		"employee":           countOf(`SELECT COUNT(*) FROM employee E JOIN department D ON E.d_id = D.d_id`),
		"department":         countOf(`SELECT COUNT(*) FROM department`),
		"deal":               countOf(`SELECT COUNT(*) FROM deal`),
		"customer":           countOf(`SELECT COUNT(*) FROM customer`),
		"cart":               countOf(`SELECT COUNT(*) FROM cart`),
		"product":            countOf(`SELECT COUNT(*) FROM product`),
		"order":              countOf(`SELECT COUNT(*) FROM ord`),
		"order_manage":       countOf(`SELECT COUNT(*) FROM ord_manage OM JOIN employee E ON E.ssn = OM.ssn`),
		"product_manage":     countOf(`SELECT COUNT(*) FROM product_manage PM JOIN employee E ON E.ssn = PM.ssn`),
		"create_p_o":         countOf(`SELECT COUNT(*) FROM create_p_o`),
		"select":             countOf(`SELECT COUNT(*) FROM selec`),
		"create_c_o":         countOf(`SELECT COUNT(*) FROM create_c_o`),
		"show":               countOf(`SELECT COUNT(*) FROM show`),
		"deside":             countOf(`SELECT COUNT(*) FROM deside`),
		"monitor":            countOf(`SELECT COUNT(*) FROM monitor`),
	}
	require.Len(t, retail.Listings, len(expected))

	for _, l := range retail.Listings {
		t.Run(l.Resource, func(t *testing.T) {
			rows, err := store.List(l)
			require.NoError(t, err)
			assert.Len(t, rows, expected[l.Resource])
			for _, row := range rows {
				for _, col := range l.Columns {
					assert.Contains(t, row, col)
				}
			}
		})
	}
}

func TestEmployeeListingTransforms(t *testing.T) {
	store, _ := newStore(t)

	rows := mustList(t, store, "employee")
	require.Len(t, rows, 2, "employees without a department are dropped by the join")

	assert.Equal(t, "Grace", rows[0]["first_name"])
	assert.Equal(t, "TRUE", rows[0]["employee_authority"])
	assert.Equal(t, 5, rows[0]["employee_time_zone"])
	assert.Equal(t, "Sales", rows[0]["department_name"])

	assert.Equal(t, "FALSE", rows[1]["employee_authority"])
	assert.Equal(t, 0, rows[1]["employee_time_zone"])
}

func TestDepartmentAuthorityAboveOneIsFalse(t *testing.T) {
	store, _ := newStore(t)

	rows := mustList(t, store, "department")
	require.Len(t, rows, 2)
	assert.Equal(t, "TRUE", rows[0]["department_authority"])
	assert.Equal(t, "FALSE", rows[1]["department_authority"])
}

func TestDateAndMoneyFormatting(t *testing.T) {
	store, _ := newStore(t)

	orders := mustList(t, store, "order")
	require.Len(t, orders, 1)
	assert.Equal(t, "19.98", orders[0]["total_price"])
	assert.Equal(t, "2024-02-03", orders[0]["created_date"])

	deals := mustList(t, store, "deal")
	require.Len(t, deals, 1)
	assert.Equal(t, "2024-01-02", deals[0]["deal_date"])
}

func TestEmployeeMutations(t *testing.T) {
	store, _ := newStore(t)

	form := retail.EmployeeForm{
		SSN: id(123456789), FirstName: "Ada", LastName: "Lovelace",
		EID: id(1), DID: id(1), EmployeeTimeZone: intPtr(-5), EmployeeAuthority: "TRUE",
	}
	require.NoError(t, store.AddEmployee(form))

	find := func() retail.Row {
		for _, r := range mustList(t, store, "employee") {
			if r["ssn"] == int64(123456789) {
				return r
			}
		}
		return nil
	}

	row := find()
	require.NotNil(t, row)
	assert.Equal(t, "Ada", row["first_name"])
	assert.Equal(t, "TRUE", row["employee_authority"])
	assert.Equal(t, 5, row["employee_time_zone"])

	form.FirstName = "Augusta"
	form.EmployeeAuthority = "no"
	n, err := store.UpdateEmployee(form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	row = find()
	assert.Equal(t, "Augusta", row["first_name"])
	assert.Equal(t, "FALSE", row["employee_authority"])

	n, err = store.DeleteEmployee(retail.EmployeeKey{SSN: id(123456789)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Nil(t, find())

	t.Run("deleting again affects nothing", func(t *testing.T) {
		n, err := store.DeleteEmployee(retail.EmployeeKey{SSN: id(123456789)})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("duplicate key surfaces the driver error", func(t *testing.T) {
		form.SSN = id(111)
		assert.Error(t, store.AddEmployee(form))
	})
}

func TestOrderMutations(t *testing.T) {
	store, _ := newStore(t)

	form := retail.OrderForm{
		OID: id(200), TotalPrice: "42.5", CreatedDate: day("2024-05-06"),
		OrderCountry: "US", OrderCity: "Boston", OrderZipcode: id(2115),
	}
	require.NoError(t, store.AddOrder(form))

	rows := mustList(t, store, "order")
	require.Len(t, rows, 2)
	assert.Equal(t, "42.50", rows[1]["total_price"])
	assert.Equal(t, "2024-05-06", rows[1]["created_date"])

	form.OrderCity = "Cambridge"
	n, err := store.UpdateOrder(form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, "Cambridge", mustList(t, store, "order")[1]["order_city"])

	form.TotalPrice = "lots"
	_, err = store.UpdateOrder(form)
	assert.ErrorIs(t, err, retail.ErrInvalidInput)

	n, err = store.DeleteOrder(retail.OrderKey{OID: id(200)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, mustList(t, store, "order"), 1)
}

func TestSelectionMutations(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.AddSelection(retail.SelectionKey{PID: id(11), CustomerID: id(7)}))
	assert.Len(t, mustList(t, store, "select"), 2)

	n, err := store.UpdateSelection(retail.SelectionUpdate{
		SelectionKey: retail.SelectionKey{PID: id(12), CustomerID: id(8)},
		PIDOld:       id(11), CustomerIDOld: id(7),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	rows := mustList(t, store, "select")
	assert.Equal(t, retail.Row{"p_id": int64(12), "customer_id": int64(8)}, rows[1])

	n, err = store.DeleteSelection(retail.SelectionKey{PID: id(12), CustomerID: id(8)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = store.DeleteSelection(retail.SelectionKey{PID: id(12), CustomerID: id(8)})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestAddNameIsDistinctOnIndex(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.AddName(retail.NameForm{Name: "ada lovelace"}))
	require.NoError(t, store.AddName(retail.NameForm{Name: "ada lovelace"}))

	rows := mustList(t, store, retail.IndexResource)
	assert.Equal(t, []retail.Row{{"name": "ada lovelace"}, {"name": "alan turing"}, {"name": "grace hopper"}}, rows)
}

func TestStringValuesAreBoundNotInterpolated(t *testing.T) {
	store, _ := newStore(t)

	hostile := "x'); DELETE FROM employee; --"
	require.NoError(t, store.AddName(retail.NameForm{Name: hostile}))

	assert.Len(t, mustList(t, store, "employee"), 2)
	assert.Contains(t, mustList(t, store, retail.IndexResource), retail.Row{"name": hostile})
}

func TestListingPaths(t *testing.T) {
	l, ok := retail.LookupListing(retail.IndexResource)
	require.True(t, ok)
	assert.Equal(t, "/", l.Path())

	l, ok = retail.LookupListing("order_manage")
	require.True(t, ok)
	assert.Equal(t, "/order_manage", l.Path())

	_, ok = retail.LookupListing("nope")
	assert.False(t, ok)
}
