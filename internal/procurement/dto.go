package procurement

import "time"

const dateLayout = "2006-01-02"

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
}

type CreateVendorRequest struct {
	VendorName string `json:"vendorName" binding:"required,max=100"`
}

type UpdateVendorRequest struct {
	VendorName *string `json:"vendorName" binding:"omitempty,max=100"`
}

type CreateCustomerRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

type UpdateCustomerRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

type CreateAddressRequest struct {
	Title       string `json:"title" binding:"omitempty,max=255"`
	Address     string `json:"address" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=vendor customer"`
	ReferenceID uint   `json:"referenceId" binding:"required,min=1"`
}

type UpdateAddressRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Address     *string `json:"address"`
	Type        *string `json:"type" binding:"omitempty,oneof=vendor customer"`
	ReferenceID *uint   `json:"referenceId" binding:"omitempty,min=1"`
}

type CreateItemRequest struct {
	SpecNo           string   `json:"specNo" binding:"required,max=50"`
	ItemName         string   `json:"itemName" binding:"required,max=100"`
	Description      string   `json:"description"`
	CategoryID       uint     `json:"categoryId" binding:"required,min=1"`
	UnitType         string   `json:"unitType" binding:"omitempty,max=20"`
	UnitPrice        *int64   `json:"unitPrice" binding:"required,min=0"`
	MarkupPercentage *float64 `json:"markupPercentage" binding:"omitempty,min=0"`
	Notes            string   `json:"notes"`
	Location         string   `json:"location"`
	ShipFrom         string   `json:"shipFrom"`
}

type UpdateItemRequest struct {
	SpecNo           *string  `json:"specNo" binding:"omitempty,max=50"`
	ItemName         *string  `json:"itemName" binding:"omitempty,max=100"`
	Description      *string  `json:"description"`
	CategoryID       *uint    `json:"categoryId" binding:"omitempty,min=1"`
	UnitType         *string  `json:"unitType" binding:"omitempty,max=20"`
	UnitPrice        *int64   `json:"unitPrice" binding:"omitempty,min=0"`
	MarkupPercentage *float64 `json:"markupPercentage" binding:"omitempty,min=0"`
	Notes            *string  `json:"notes"`
	Location         *string  `json:"location"`
	ShipFrom         *string  `json:"shipFrom"`
}

type BulkUpdateItemsRequest struct {
	ItemIDs    []uint  `json:"itemIds" binding:"required,min=1,dive,min=1"`
	CategoryID *uint   `json:"categoryId" binding:"omitempty,min=1"`
	Location   *string `json:"location"`
	ShipFrom   *string `json:"shipFrom"`
	Notes      *string `json:"notes"`
}

type CreateOrderRequest struct {
	ItemID            uint     `json:"itemId" binding:"required,min=1"`
	VendorID          *uint    `json:"vendorId" binding:"omitempty,min=1"`
	VendorAddressID   *uint    `json:"vendorAddressId" binding:"omitempty,min=1"`
	CustomerID        *uint    `json:"customerId" binding:"omitempty,min=1"`
	CustomerAddressID *uint    `json:"customerAddressId" binding:"omitempty,min=1"`
	Quantity          *int     `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice         *int64   `json:"unitPrice" binding:"required,min=0"`
	MarkupPercentage  *float64 `json:"markupPercentage" binding:"omitempty,min=0"`
	Phase             *int     `json:"phase" binding:"omitempty,min=0,max=3"`
	Location          string   `json:"location"`
	ShipFrom          string   `json:"shipFrom"`
	Notes             string   `json:"notes"`
}

type UpdateOrderRequest struct {
	ItemID            *uint    `json:"itemId" binding:"omitempty,min=1"`
	VendorID          *uint    `json:"vendorId" binding:"omitempty,min=1"`
	VendorAddressID   *uint    `json:"vendorAddressId" binding:"omitempty,min=1"`
	CustomerID        *uint    `json:"customerId" binding:"omitempty,min=1"`
	CustomerAddressID *uint    `json:"customerAddressId" binding:"omitempty,min=1"`
	Quantity          *int     `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice         *int64   `json:"unitPrice" binding:"omitempty,min=0"`
	MarkupPercentage  *float64 `json:"markupPercentage" binding:"omitempty,min=0"`
	Phase             *int     `json:"phase" binding:"omitempty,min=0,max=3"`
	Location          *string  `json:"location"`
	ShipFrom          *string  `json:"shipFrom"`
	Notes             *string  `json:"notes"`
}

// OrderFilter carries the ANDed search filters. Search is mutually exclusive
// with ItemName/SpecNo: the partial filters apply only when Search is empty.
type OrderFilter struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
	VendorID   *uint  `form:"vendorId" binding:"omitempty,min=1"`
	CustomerID *uint  `form:"customerId" binding:"omitempty,min=1"`
	CategoryID *uint  `form:"categoryId" binding:"omitempty,min=1"`
	ItemID     *uint  `form:"itemId" binding:"omitempty,min=1"`
	Phase      *int   `form:"phase" binding:"omitempty,min=0"`
	Search     string `form:"search"`
	ItemName   string `form:"itemName"`
	SpecNo     string `form:"specNo"`
	MinPrice   *int64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice   *int64 `form:"maxPrice" binding:"omitempty,min=0"`
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type SearchOrdersResponse struct {
	Data []Order  `json:"data"`
	Meta PageMeta `json:"meta"`
}

type BulkUpdateItemsResult struct {
	UpdatedCount int64  `json:"updatedCount"`
	UpdatedItems []Item `json:"updatedItems"`
}

type CreatePlanningRequest struct {
	OrderID            uint    `json:"orderId" binding:"required,min=1"`
	SampleApprovedDate *string `json:"sampleApprovedDate" binding:"omitempty,datetime=2006-01-02"`
	PiSendDate         *string `json:"piSendDate" binding:"omitempty,datetime=2006-01-02"`
	PiApprovedDate     *string `json:"piApprovedDate" binding:"omitempty,datetime=2006-01-02"`
	InitialPaymentDate *string `json:"initialPaymentDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdatePlanningRequest deliberately has no order id: the owner reference of
// a lifecycle record cannot change.
type UpdatePlanningRequest struct {
	SampleApprovedDate *string `json:"sampleApprovedDate" binding:"omitempty,datetime=2006-01-02"`
	PiSendDate         *string `json:"piSendDate" binding:"omitempty,datetime=2006-01-02"`
	PiApprovedDate     *string `json:"piApprovedDate" binding:"omitempty,datetime=2006-01-02"`
	InitialPaymentDate *string `json:"initialPaymentDate" binding:"omitempty,datetime=2006-01-02"`
}

type BulkUpdatePlanningRequest struct {
	OrderIDs []uint `json:"orderIds" binding:"required,min=1,dive,min=1"`
	UpdatePlanningRequest
}

type CreateProductionRequest struct {
	OrderID           uint    `json:"orderId" binding:"required,min=1"`
	CfaShopsSend      *string `json:"cfaShopsSend" binding:"omitempty,datetime=2006-01-02"`
	CfaShopsApproved  *string `json:"cfaShopsApproved" binding:"omitempty,datetime=2006-01-02"`
	CfaShopsDelivered *string `json:"cfaShopsDelivered" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateProductionRequest struct {
	CfaShopsSend      *string `json:"cfaShopsSend" binding:"omitempty,datetime=2006-01-02"`
	CfaShopsApproved  *string `json:"cfaShopsApproved" binding:"omitempty,datetime=2006-01-02"`
	CfaShopsDelivered *string `json:"cfaShopsDelivered" binding:"omitempty,datetime=2006-01-02"`
}

type BulkUpdateProductionRequest struct {
	OrderIDs []uint `json:"orderIds" binding:"required,min=1,dive,min=1"`
	UpdateProductionRequest
}

type CreateLogisticsRequest struct {
	OrderID       uint    `json:"orderId" binding:"required,min=1"`
	OrderedDate   *string `json:"orderedDate" binding:"omitempty,datetime=2006-01-02"`
	ShippedDate   *string `json:"shippedDate" binding:"omitempty,datetime=2006-01-02"`
	DeliveredDate *string `json:"deliveredDate" binding:"omitempty,datetime=2006-01-02"`
	ShippingNotes *string `json:"shippingNotes"`
}

type UpdateLogisticsRequest struct {
	OrderedDate   *string `json:"orderedDate" binding:"omitempty,datetime=2006-01-02"`
	ShippedDate   *string `json:"shippedDate" binding:"omitempty,datetime=2006-01-02"`
	DeliveredDate *string `json:"deliveredDate" binding:"omitempty,datetime=2006-01-02"`
	ShippingNotes *string `json:"shippingNotes"`
}

type BulkUpdateLogisticsRequest struct {
	OrderIDs []uint `json:"orderIds" binding:"required,min=1,dive,min=1"`
	UpdateLogisticsRequest
}

type BulkUpdatePlanningResult struct {
	TotalCount int             `json:"totalCount"`
	Results    []OrderPlanning `json:"results"`
}

type BulkUpdateProductionResult struct {
	TotalCount int               `json:"totalCount"`
	Results    []OrderProduction `json:"results"`
}

type BulkUpdateLogisticsResult struct {
	TotalCount int              `json:"totalCount"`
	Results    []OrderLogistics `json:"results"`
}

type CreateUploadRequest struct {
	OrderID *uint  `json:"orderId" binding:"omitempty,min=1"`
	Name    string `json:"name" binding:"required"`
	URL     string `json:"url" binding:"required"`
}

type UpdateUploadRequest struct {
	OrderID *uint   `json:"orderId" binding:"omitempty,min=1"`
	Name    *string `json:"name"`
	URL     *string `json:"url"`
}
