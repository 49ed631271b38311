package procurement

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type procurementHandler struct {
	log       *logrus.Entry
	service   Service
	uploadDir string
}

func NewHandler(service Service, log *logrus.Entry, uploadDir string) *procurementHandler {
	return &procurementHandler{
		log:       log,
		service:   service,
		uploadDir: uploadDir,
	}
}

func (h *procurementHandler) Register(router *gin.Engine) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.getCategories)
		categories.GET("/:id", h.getCategoryByID)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
		categories.POST("/:id/restore", h.restoreCategory)
	}

	vendors := router.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.getVendors)
		vendors.GET("/:id", h.getVendorByID)
		vendors.GET("/:id/addresses", h.getVendorAddresses)
		vendors.PUT("/:id", h.updateVendor)
		vendors.DELETE("/:id", h.deleteVendor)
		vendors.POST("/:id/restore", h.restoreVendor)
	}

	customers := router.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.getCustomers)
		customers.GET("/:id", h.getCustomerByID)
		customers.GET("/:id/addresses", h.getCustomerAddresses)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)
	}

	addresses := router.Group("/addresses")
	{
		addresses.POST("", h.createAddress)
		addresses.GET("", h.getAddresses)
		addresses.GET("/:id", h.getAddressByID)
		addresses.GET("/owner/:type/:id", h.getAddressesByOwner)
		addresses.PUT("/:id", h.updateAddress)
		addresses.DELETE("/:id", h.deleteAddress)
	}

	items := router.Group("/items")
	{
		items.POST("", h.createItem)
		items.GET("", h.getItems)
		items.GET("/:id", h.getItemByID)
		items.GET("/spec/:specNo", h.getItemBySpecNo)
		items.GET("/category/:id", h.getItemsByCategory)
		items.PUT("/:id", h.updateItem)
		items.POST("/bulk-update", h.bulkUpdateItems)
		items.DELETE("/:id", h.deleteItem)
		items.POST("/:id/restore", h.restoreItem)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.getOrders)
		orders.GET("/search", h.searchOrders)
		orders.GET("/:id", h.getOrderByID)
		orders.GET("/item/:itemId", h.getOrdersByItem)
		orders.GET("/vendor/:vendorId", h.getOrdersByVendor)
		orders.GET("/customer/:customerId", h.getOrdersByCustomer)
		orders.GET("/phase/:phase", h.getOrdersByPhase)
		orders.PUT("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.POST("/:id/restore", h.restoreOrder)
	}

	planning := router.Group("/order-planning")
	{
		planning.POST("", h.createPlanning)
		planning.GET("", h.getPlannings)
		planning.GET("/:id", h.getPlanningByID)
		planning.GET("/order/:orderId", h.getPlanningByOrder)
		planning.PUT("/:id", h.updatePlanning)
		planning.POST("/bulk-update", h.bulkUpdatePlanning)
		planning.DELETE("/:id", h.deletePlanning)
	}

	production := router.Group("/order-production")
	{
		production.POST("", h.createProduction)
		production.GET("", h.getProductions)
		production.GET("/:id", h.getProductionByID)
		production.GET("/order/:orderId", h.getProductionByOrder)
		production.PUT("/:id", h.updateProduction)
		production.POST("/bulk-update", h.bulkUpdateProduction)
		production.DELETE("/:id", h.deleteProduction)
	}

	logistics := router.Group("/order-logistics")
	{
		logistics.POST("", h.createLogistics)
		logistics.GET("", h.getAllLogistics)
		logistics.GET("/:id", h.getLogisticsByID)
		logistics.GET("/order/:orderId", h.getLogisticsByOrder)
		logistics.PUT("/:id", h.updateLogistics)
		logistics.POST("/bulk-update", h.bulkUpdateLogistics)
		logistics.DELETE("/:id", h.deleteLogistics)
	}

	uploads := router.Group("/uploads")
	{
		uploads.POST("", h.createUpload)
		uploads.POST("/file", h.uploadFile)
		uploads.GET("", h.getUploads)
		uploads.GET("/:id", h.getUploadByID)
		uploads.GET("/order/:orderId", h.getUploadsByOrder)
		uploads.PUT("/:id", h.updateUpload)
		uploads.DELETE("/:id", h.deleteUpload)
	}
}

func (h *procurementHandler) writeError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if appErr.Type == ServerAppError {
			h.log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		c.AbortWithStatusJSON(appErr.Code, gin.H{
			"error":   appErr.Type,
			"message": appErr.Message,
		})
		return
	}
	h.log.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   ServerAppError,
		"message": "internal server error",
	})
}

func (h *procurementHandler) bindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":   ValidationAppError,
		"message": err.Error(),
	})
}

func (h *procurementHandler) idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   ValidationAppError,
			"message": "invalid " + name + " parameter",
		})
		return 0, false
	}
	return uint(id), true
}

// Categories

func (h *procurementHandler) createCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	category, err := h.service.CreateCategory(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *procurementHandler) getCategories(c *gin.Context) {
	categories, err := h.service.GetCategories()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *procurementHandler) getCategoryByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	category, err := h.service.GetCategoryByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *procurementHandler) updateCategory(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	category, err := h.service.UpdateCategory(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *procurementHandler) deleteCategory(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *procurementHandler) restoreCategory(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	category, err := h.service.RestoreCategory(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Vendors

func (h *procurementHandler) createVendor(c *gin.Context) {
	var req CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	vendor, err := h.service.CreateVendor(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

func (h *procurementHandler) getVendors(c *gin.Context) {
	vendors, err := h.service.GetVendors()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *procurementHandler) getVendorByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	vendor, err := h.service.GetVendorByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *procurementHandler) getVendorAddresses(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.service.GetVendorByID(id); err != nil {
		h.writeError(c, err)
		return
	}
	addresses, err := h.service.GetAddressesByOwner(Owner{Type: OwnerVendor, ID: id})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *procurementHandler) updateVendor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	vendor, err := h.service.UpdateVendor(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

func (h *procurementHandler) deleteVendor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteVendor(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *procurementHandler) restoreVendor(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	vendor, err := h.service.RestoreVendor(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// Customers

func (h *procurementHandler) createCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	customer, err := h.service.CreateCustomer(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *procurementHandler) getCustomers(c *gin.Context) {
	customers, err := h.service.GetCustomers()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *procurementHandler) getCustomerByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *procurementHandler) getCustomerAddresses(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.service.GetCustomerByID(id); err != nil {
		h.writeError(c, err)
		return
	}
	addresses, err := h.service.GetAddressesByOwner(Owner{Type: OwnerCustomer, ID: id})
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *procurementHandler) updateCustomer(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	customer, err := h.service.UpdateCustomer(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *procurementHandler) deleteCustomer(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCustomer(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Addresses

func (h *procurementHandler) createAddress(c *gin.Context) {
	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	address, err := h.service.CreateAddress(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, address)
}

func (h *procurementHandler) getAddresses(c *gin.Context) {
	addresses, err := h.service.GetAddresses()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *procurementHandler) getAddressByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	address, err := h.service.GetAddressByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *procurementHandler) getAddressesByOwner(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	owner := Owner{Type: OwnerType(c.Param("type")), ID: id}
	addresses, err := h.service.GetAddressesByOwner(owner)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, addresses)
}

func (h *procurementHandler) updateAddress(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	address, err := h.service.UpdateAddress(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *procurementHandler) deleteAddress(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAddress(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Items

func (h *procurementHandler) createItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	item, err := h.service.CreateItem(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *procurementHandler) getItems(c *gin.Context) {
	items, err := h.service.GetItems()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *procurementHandler) getItemByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	item, err := h.service.GetItemByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *procurementHandler) getItemBySpecNo(c *gin.Context) {
	specNo := c.Param("specNo")
	item, err := h.service.GetItemBySpecNo(specNo)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *procurementHandler) getItemsByCategory(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	items, err := h.service.GetItemsByCategory(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *procurementHandler) updateItem(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	item, err := h.service.UpdateItem(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *procurementHandler) bulkUpdateItems(c *gin.Context) {
	var req BulkUpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	result, err := h.service.BulkUpdateItems(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *procurementHandler) deleteItem(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteItem(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *procurementHandler) restoreItem(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	item, err := h.service.RestoreItem(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Orders

func (h *procurementHandler) createOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	order, err := h.service.CreateOrder(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *procurementHandler) getOrders(c *gin.Context) {
	orders, err := h.service.GetOrders()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *procurementHandler) searchOrders(c *gin.Context) {
	var filter OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.bindError(c, err)
		return
	}
	result, err := h.service.SearchOrders(filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *procurementHandler) getOrderByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.service.GetOrderByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *procurementHandler) getOrdersByItem(c *gin.Context) {
	id, ok := h.idParam(c, "itemId")
	if !ok {
		return
	}
	orders, err := h.service.GetOrdersByItem(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *procurementHandler) getOrdersByVendor(c *gin.Context) {
	id, ok := h.idParam(c, "vendorId")
	if !ok {
		return
	}
	orders, err := h.service.GetOrdersByVendor(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *procurementHandler) getOrdersByCustomer(c *gin.Context) {
	id, ok := h.idParam(c, "customerId")
	if !ok {
		return
	}
	orders, err := h.service.GetOrdersByCustomer(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *procurementHandler) getOrdersByPhase(c *gin.Context) {
	phase, err := strconv.Atoi(c.Param("phase"))
	if err != nil || phase < PhasePlanning || phase > PhaseDelivered {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   ValidationAppError,
			"message": "invalid phase parameter",
		})
		return
	}
	orders, err := h.service.GetOrdersByPhase(phase)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *procurementHandler) updateOrder(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	order, err := h.service.UpdateOrder(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *procurementHandler) deleteOrder(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteOrder(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *procurementHandler) restoreOrder(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	order, err := h.service.RestoreOrder(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Planning

func (h *procurementHandler) createPlanning(c *gin.Context) {
	var req CreatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	planning, err := h.service.CreatePlanning(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, planning)
}

func (h *procurementHandler) getPlannings(c *gin.Context) {
	plannings, err := h.service.GetPlannings()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, plannings)
}

func (h *procurementHandler) getPlanningByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	planning, err := h.service.GetPlanningByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, planning)
}

func (h *procurementHandler) getPlanningByOrder(c *gin.Context) {
	orderID, ok := h.idParam(c, "orderId")
	if !ok {
		return
	}
	planning, err := h.service.GetPlanningByOrder(orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, planning)
}

func (h *procurementHandler) updatePlanning(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	planning, err := h.service.UpdatePlanning(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, planning)
}

func (h *procurementHandler) bulkUpdatePlanning(c *gin.Context) {
	var req BulkUpdatePlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	result, err := h.service.BulkUpdatePlanning(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *procurementHandler) deletePlanning(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeletePlanning(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Production

func (h *procurementHandler) createProduction(c *gin.Context) {
	var req CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	production, err := h.service.CreateProduction(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, production)
}

func (h *procurementHandler) getProductions(c *gin.Context) {
	productions, err := h.service.GetProductions()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, productions)
}

func (h *procurementHandler) getProductionByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	production, err := h.service.GetProductionByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, production)
}

func (h *procurementHandler) getProductionByOrder(c *gin.Context) {
	orderID, ok := h.idParam(c, "orderId")
	if !ok {
		return
	}
	production, err := h.service.GetProductionByOrder(orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, production)
}

func (h *procurementHandler) updateProduction(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	production, err := h.service.UpdateProduction(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, production)
}

func (h *procurementHandler) bulkUpdateProduction(c *gin.Context) {
	var req BulkUpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	result, err := h.service.BulkUpdateProduction(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *procurementHandler) deleteProduction(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteProduction(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Logistics

func (h *procurementHandler) createLogistics(c *gin.Context) {
	var req CreateLogisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	logistics, err := h.service.CreateLogistics(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, logistics)
}

func (h *procurementHandler) getAllLogistics(c *gin.Context) {
	logistics, err := h.service.GetAllLogistics()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logistics)
}

func (h *procurementHandler) getLogisticsByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	logistics, err := h.service.GetLogisticsByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logistics)
}

func (h *procurementHandler) getLogisticsByOrder(c *gin.Context) {
	orderID, ok := h.idParam(c, "orderId")
	if !ok {
		return
	}
	logistics, err := h.service.GetLogisticsByOrder(orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logistics)
}

func (h *procurementHandler) updateLogistics(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateLogisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	logistics, err := h.service.UpdateLogistics(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logistics)
}

func (h *procurementHandler) bulkUpdateLogistics(c *gin.Context) {
	var req BulkUpdateLogisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	result, err := h.service.BulkUpdateLogistics(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *procurementHandler) deleteLogistics(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteLogistics(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Uploads

func (h *procurementHandler) createUpload(c *gin.Context) {
	var req CreateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	upload, err := h.service.CreateUpload(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, upload)
}

// uploadFile receives a multipart file, stores it under the configured upload
// directory with a generated name and records the reference.
func (h *procurementHandler) uploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.bindError(c, err)
		return
	}

	req := CreateUploadRequest{Name: file.Filename}
	if raw := c.PostForm("orderId"); raw != "" {
		orderID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || orderID == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   ValidationAppError,
				"message": "invalid orderId field",
			})
			return
		}
		id := uint(orderID)
		req.OrderID = &id
	}

	stored := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, stored)); err != nil {
		h.writeError(c, newServerError("failed to store file", err))
		return
	}
	req.URL = "/files/" + stored

	upload, err := h.service.CreateUpload(req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, upload)
}

func (h *procurementHandler) getUploads(c *gin.Context) {
	uploads, err := h.service.GetUploads()
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploads)
}

func (h *procurementHandler) getUploadByID(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	upload, err := h.service.GetUploadByID(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (h *procurementHandler) getUploadsByOrder(c *gin.Context) {
	orderID, ok := h.idParam(c, "orderId")
	if !ok {
		return
	}
	uploads, err := h.service.GetUploadsByOrder(orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, uploads)
}

func (h *procurementHandler) updateUpload(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	upload, err := h.service.UpdateUpload(id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (h *procurementHandler) deleteUpload(c *gin.Context) {
	id, ok := h.idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteUpload(id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
