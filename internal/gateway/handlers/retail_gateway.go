package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"retail-crud/internal/cache"
	"retail-crud/internal/database"
	"retail-crud/internal/gateway/render"
	"retail-crud/internal/retail"
)

type RetailHTTPHandler struct {
	cache *cache.ListingCache
}

// NewRetailHTTPHandler builds the page and form handlers. listingCache may be
// nil.
func NewRetailHTTPHandler(listingCache *cache.ListingCache) *RetailHTTPHandler {
	return &RetailHTTPHandler{
		cache: listingCache,
	}
}

// Helper functions
func (h *RetailHTTPHandler) store(c *gin.Context) (*retail.Store, bool) {
	db, err := database.ConnFrom(c.Request.Context())
	if err != nil {
		h.error(c, http.StatusServiceUnavailable, "database unavailable")
		return nil, false
	}
	return retail.NewStore(db), true
}

func (h *RetailHTTPHandler) error(c *gin.Context, code int, message string) {
	render.Error(c, code, message)
}

func (h *RetailHTTPHandler) internal(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	h.error(c, http.StatusInternalServerError, "Internal Server Error")
}

func (h *RetailHTTPHandler) bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

func (h *RetailHTTPHandler) bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.error(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// mutated drops cached listings touched by resource, announces the change and
// redirects to the resource's listing page.
func (h *RetailHTTPHandler) mutated(c *gin.Context, resource, eventType string, rowsAffected int64) {
	ctx := c.Request.Context()
	h.cache.Invalidate(ctx, retail.Affected[resource]...)

	event := cache.MutationEvent{
		EventType:    eventType,
		Resource:     resource,
		RowsAffected: rowsAffected,
		Timestamp:    time.Now(),
	}
	if err := h.cache.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s event for %s: %v", eventType, resource, err)
	}

	target := "/"
	if l, ok := retail.LookupListing(resource); ok {
		target = l.Path()
	}
	c.Redirect(http.StatusFound, target)
}

// Listing returns the handler for one read-only page.
func (h *RetailHTTPHandler) Listing(l retail.Listing) gin.HandlerFunc {
	name := render.ListingTemplate
	if l.Resource == retail.IndexResource {
		name = render.IndexTemplate
	}

	return func(c *gin.Context) {
		store, ok := h.store(c)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		rows, hit := h.cache.Get(ctx, l.Resource)
		if !hit {
			var err error
			rows, err = store.List(l)
			if err != nil {
				h.internal(c, err)
				return
			}
			h.cache.Set(ctx, l.Resource, rows)
		}

		render.Page(c, http.StatusOK, name, gin.H{
			"Title":   l.Title,
			"Columns": l.Columns,
			"Form":    l.Form,
			"Rows":    rows,
		}, rows)
	}
}

func (h *RetailHTTPHandler) Another(c *gin.Context) {
	render.Page(c, http.StatusOK, render.AnotherTemplate, gin.H{"Title": "Another"}, nil)
}

func (h *RetailHTTPHandler) Login(c *gin.Context) {
	h.error(c, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
}

func (h *RetailHTTPHandler) AddName(c *gin.Context) {
	var form retail.NameForm
	if !h.bind(c, &form) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.AddName(form); err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, retail.IndexResource, "create", 1)
}

// Employee endpoints
func (h *RetailHTTPHandler) AddEmployee(c *gin.Context) {
	var form retail.EmployeeForm
	if !h.bind(c, &form) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.AddEmployee(form); err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "employee", "create", 1)
}

func (h *RetailHTTPHandler) UpdateEmployee(c *gin.Context) {
	var form retail.EmployeeForm
	if !h.bind(c, &form) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	n, err := store.UpdateEmployee(form)
	if err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "employee", "update", n)
}

func (h *RetailHTTPHandler) DeleteEmployee(c *gin.Context) {
	var key retail.EmployeeKey
	if !h.bindQuery(c, &key) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	n, err := store.DeleteEmployee(key)
	if err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "employee", "delete", n)
}

// Order endpoints
func (h *RetailHTTPHandler) AddOrder(c *gin.Context) {
	var form retail.OrderForm
	if !h.bind(c, &form) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.AddOrder(form); err != nil {
		h.mutationFailed(c, err)
		return
	}
	h.mutated(c, "order", "create", 1)
}

func (h *RetailHTTPHandler) UpdateOrder(c *gin.Context) {
	var form retail.OrderForm
	if !h.bind(c, &form) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	n, err := store.UpdateOrder(form)
	if err != nil {
		h.mutationFailed(c, err)
		return
	}
	h.mutated(c, "order", "update", n)
}

func (h *RetailHTTPHandler) DeleteOrder(c *gin.Context) {
	var key retail.OrderKey
	if !h.bindQuery(c, &key) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	n, err := store.DeleteOrder(key)
	if err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "order", "delete", n)
}

func (h *RetailHTTPHandler) mutationFailed(c *gin.Context, err error) {
	if errors.Is(err, retail.ErrInvalidInput) {
		h.error(c, http.StatusBadRequest, err.Error())
		return
	}
	h.internal(c, err)
}

// Selection endpoints
func (h *RetailHTTPHandler) AddSelection(c *gin.Context) {
	var key retail.SelectionKey
	if !h.bind(c, &key) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	if err := store.AddSelection(key); err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "select", "create", 1)
}

func (h *RetailHTTPHandler) UpdateSelection(c *gin.Context) {
	var update retail.SelectionUpdate
	if !h.bind(c, &update) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	n, err := store.UpdateSelection(update)
	if err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "select", "update", n)
}

func (h *RetailHTTPHandler) DeleteSelection(c *gin.Context) {
	var key retail.SelectionKey
	if !h.bindQuery(c, &key) {
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}

	n, err := store.DeleteSelection(key)
	if err != nil {
		h.internal(c, err)
		return
	}
	h.mutated(c, "select", "delete", n)
}
