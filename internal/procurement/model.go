package procurement

import (
	"time"

	"gorm.io/gorm"
)

// Order phases
const (
	PhasePlanning   = 0
	PhaseProduction = 1
	PhaseLogistics  = 2
	PhaseDelivered  = 3
)

func PhaseToString(phase int) string {
	switch phase {
	case PhasePlanning:
		return "PLANNING"
	case PhaseProduction:
		return "PRODUCTION"
	case PhaseLogistics:
		return "LOGISTICS"
	case PhaseDelivered:
		return "DELIVERED"
	}
	return "UNKNOWN"
}

type OwnerType string

const (
	OwnerVendor   OwnerType = "vendor"
	OwnerCustomer OwnerType = "customer"
)

// Owner is the tagged variant behind the polymorphic addresses table. The
// persistence layer stores the discriminant and id as two columns; everything
// above storage passes an Owner, never a bare (type, id) pair.
type Owner struct {
	Type OwnerType
	ID   uint
}

type Category struct {
	CategoryID uint           `gorm:"column:category_id;primaryKey;autoIncrement" json:"categoryId"`
	Name       string         `gorm:"column:name;size:50;not null;uniqueIndex:idx_item_categories_name" json:"name"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Category) TableName() string {
	return "item_categories"
}

type Vendor struct {
	VendorID   uint           `gorm:"column:vendor_id;primaryKey;autoIncrement" json:"vendorId"`
	VendorName string         `gorm:"column:vendor_name;size:100;not null;uniqueIndex:idx_vendors_name" json:"vendorName"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Vendor) TableName() string {
	return "vendors"
}

// Customer rows are hard-deleted, unlike the other reference entities.
type Customer struct {
	CustomerID uint      `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customerId"`
	Name       string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}

// Address belongs to either a vendor or a customer. The reference cannot be a
// database foreign key across two target tables, so the service layer checks
// the referenced row exists in the table implied by Type.
type Address struct {
	AddressID   uint           `gorm:"column:address_id;primaryKey;autoIncrement" json:"addressId"`
	Title       string         `gorm:"column:title;size:255" json:"title"`
	Address     string         `gorm:"column:address;type:text;not null" json:"address"`
	Type        OwnerType      `gorm:"column:type;size:50;not null;index:idx_addresses_reference,priority:1" json:"type"`
	ReferenceID uint           `gorm:"column:reference_id;not null;index:idx_addresses_reference,priority:2" json:"referenceId"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Address) TableName() string {
	return "addresses"
}

func (a *Address) Owner() Owner {
	return Owner{Type: a.Type, ID: a.ReferenceID}
}

// Item is a catalog entry. UnitPrice and TotalPrice are integers in minor
// currency units; TotalPrice is derived, never client-supplied.
type Item struct {
	ItemID           uint           `gorm:"column:item_id;primaryKey;autoIncrement" json:"itemId"`
	SpecNo           string         `gorm:"column:spec_no;size:50;not null;uniqueIndex:idx_items_spec_no" json:"specNo"`
	ItemName         string         `gorm:"column:item_name;size:100;not null;index:idx_items_name" json:"itemName"`
	Description      string         `gorm:"column:description;type:text" json:"description"`
	CategoryID       uint           `gorm:"column:category_id;not null;index:idx_items_category" json:"categoryId"`
	UnitType         string         `gorm:"column:unit_type;size:20;not null;default:each" json:"unitType"`
	UnitPrice        int64          `gorm:"column:unit_price;not null" json:"unitPrice"`
	MarkupPercentage float64        `gorm:"column:markup_percentage;type:decimal(5,2);default:0" json:"markupPercentage"`
	TotalPrice       int64          `gorm:"column:total_price;not null" json:"totalPrice"`
	Notes            string         `gorm:"column:notes;type:text" json:"notes"`
	Location         string         `gorm:"column:location;type:text" json:"location"`
	ShipFrom         string         `gorm:"column:ship_from;type:text" json:"shipFrom"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID;references:CategoryID" json:"category,omitempty"`
}

func (Item) TableName() string {
	return "items"
}

// Order references an item, so the same catalog entry can be ordered more
// than once. It carries its own price inputs; TotalPrice is derived per the
// quantity-aware rule.
type Order struct {
	OrderID           uint           `gorm:"column:order_id;primaryKey;autoIncrement" json:"orderId"`
	ItemID            uint           `gorm:"column:item_id;not null;index:idx_orders_item" json:"itemId"`
	VendorID          *uint          `gorm:"column:vendor_id" json:"vendorId"`
	VendorAddressID   *uint          `gorm:"column:vendor_address_id" json:"vendorAddressId"`
	CustomerID        *uint          `gorm:"column:customer_id" json:"customerId"`
	CustomerAddressID *uint          `gorm:"column:customer_address_id" json:"customerAddressId"`
	Quantity          int            `gorm:"column:quantity;not null;default:1" json:"quantity"`
	UnitPrice         int64          `gorm:"column:unit_price;not null" json:"unitPrice"`
	MarkupPercentage  float64        `gorm:"column:markup_percentage;type:decimal(5,2);default:0" json:"markupPercentage"`
	TotalPrice        int64          `gorm:"column:total_price;not null" json:"totalPrice"`
	Phase             int            `gorm:"column:phase;not null;default:0;index:idx_orders_phase" json:"phase"`
	Location          string         `gorm:"column:location;type:text" json:"location"`
	ShipFrom          string         `gorm:"column:ship_from;type:text" json:"shipFrom"`
	Notes             string         `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt         time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	Item     *Item     `gorm:"foreignKey:ItemID;references:ItemID" json:"item,omitempty"`
	Vendor   *Vendor   `gorm:"foreignKey:VendorID;references:VendorID" json:"vendor,omitempty"`
	Customer *Customer `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// Lifecycle records are one-to-one with an order; the unique index on
// order_id is what actually enforces it. They are hard-deleted.
type OrderPlanning struct {
	PlanningID         uint       `gorm:"column:planning_id;primaryKey;autoIncrement" json:"planningId"`
	OrderID            uint       `gorm:"column:order_id;not null;uniqueIndex:idx_order_planning_order" json:"orderId"`
	SampleApprovedDate *time.Time `gorm:"column:sample_approved_date;type:date" json:"sampleApprovedDate"`
	PiSendDate         *time.Time `gorm:"column:pi_send_date;type:date" json:"piSendDate"`
	PiApprovedDate     *time.Time `gorm:"column:pi_approved_date;type:date" json:"piApprovedDate"`
	InitialPaymentDate *time.Time `gorm:"column:initial_payment_date;type:date" json:"initialPaymentDate"`
	CreatedAt          time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Order *Order `gorm:"foreignKey:OrderID;references:OrderID" json:"order,omitempty"`
}

func (OrderPlanning) TableName() string {
	return "order_planning"
}

type OrderProduction struct {
	ProductionID      uint       `gorm:"column:production_id;primaryKey;autoIncrement" json:"productionId"`
	OrderID           uint       `gorm:"column:order_id;not null;uniqueIndex:idx_order_production_order" json:"orderId"`
	CfaShopsSend      *time.Time `gorm:"column:cfa_shops_send;type:date" json:"cfaShopsSend"`
	CfaShopsApproved  *time.Time `gorm:"column:cfa_shops_approved;type:date" json:"cfaShopsApproved"`
	CfaShopsDelivered *time.Time `gorm:"column:cfa_shops_delivered;type:date" json:"cfaShopsDelivered"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Order *Order `gorm:"foreignKey:OrderID;references:OrderID" json:"order,omitempty"`
}

func (OrderProduction) TableName() string {
	return "order_production"
}

type OrderLogistics struct {
	LogisticsID   uint       `gorm:"column:logistics_id;primaryKey;autoIncrement" json:"logisticsId"`
	OrderID       uint       `gorm:"column:order_id;not null;uniqueIndex:idx_order_logistics_order" json:"orderId"`
	OrderedDate   *time.Time `gorm:"column:ordered_date;type:date" json:"orderedDate"`
	ShippedDate   *time.Time `gorm:"column:shipped_date;type:date" json:"shippedDate"`
	DeliveredDate *time.Time `gorm:"column:delivered_date;type:date" json:"deliveredDate"`
	ShippingNotes string     `gorm:"column:shipping_notes;type:text" json:"shippingNotes"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Order *Order `gorm:"foreignKey:OrderID;references:OrderID" json:"order,omitempty"`
}

func (OrderLogistics) TableName() string {
	return "order_logistics"
}

// Upload is only a reference to a stored file, never the content.
type Upload struct {
	UploadID  uint      `gorm:"column:upload_id;primaryKey;autoIncrement" json:"uploadId"`
	OrderID   *uint     `gorm:"column:order_id;index:idx_uploads_order" json:"orderId"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	URL       string    `gorm:"column:url;type:text;not null" json:"url"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Order *Order `gorm:"foreignKey:OrderID;references:OrderID" json:"order,omitempty"`
}

func (Upload) TableName() string {
	return "uploads"
}
