package procurement

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Storage interface {
	CreateCategory(category *Category) error
	GetCategories() ([]Category, error)
	GetCategoryByID(id uint) (*Category, error)
	GetCategoryByIDUnscoped(id uint) (*Category, error)
	UpdateCategory(category *Category) error
	DeleteCategory(id uint) error
	RestoreCategory(id uint) error
	CountItemsByCategory(categoryID uint) (int64, error)

	CreateVendor(vendor *Vendor) error
	GetVendors() ([]Vendor, error)
	GetVendorByID(id uint) (*Vendor, error)
	GetVendorByIDUnscoped(id uint) (*Vendor, error)
	UpdateVendor(vendor *Vendor) error
	DeleteVendor(id uint) error
	RestoreVendor(id uint) error

	CreateCustomer(customer *Customer) error
	GetCustomers() ([]Customer, error)
	GetCustomerByID(id uint) (*Customer, error)
	UpdateCustomer(customer *Customer) error
	DeleteCustomer(id uint) error

	CreateAddress(address *Address) error
	GetAddresses() ([]Address, error)
	GetAddressByID(id uint) (*Address, error)
	GetAddressesByOwner(owner Owner) ([]Address, error)
	UpdateAddress(address *Address) error
	DeleteAddress(id uint) error

	CreateItem(item *Item) error
	GetItems() ([]Item, error)
	GetItemByID(id uint) (*Item, error)
	GetItemByIDUnscoped(id uint) (*Item, error)
	GetItemBySpecNo(specNo string) (*Item, error)
	GetItemsByCategory(categoryID uint) ([]Item, error)
	GetItemsByIDs(ids []uint) ([]Item, error)
	UpdateItem(item *Item) error
	UpdateItems(ids []uint, attrs map[string]interface{}) (int64, error)
	DeleteItem(id uint) error
	RestoreItem(id uint) error

	CreateOrder(order *Order) error
	GetOrders() ([]Order, error)
	GetOrderByID(id uint) (*Order, error)
	GetOrderByIDUnscoped(id uint) (*Order, error)
	GetOrdersByItem(itemID uint) ([]Order, error)
	GetOrdersByVendor(vendorID uint) ([]Order, error)
	GetOrdersByCustomer(customerID uint) ([]Order, error)
	GetOrdersByPhase(phase int) ([]Order, error)
	GetOrdersByIDs(ids []uint) ([]Order, error)
	SearchOrders(filter OrderFilter, offset, limit int) ([]Order, int64, error)
	UpdateOrder(order *Order) error
	DeleteOrder(id uint) error
	RestoreOrder(id uint) error

	CreatePlanning(planning *OrderPlanning) error
	GetPlannings() ([]OrderPlanning, error)
	GetPlanningByID(id uint) (*OrderPlanning, error)
	GetPlanningByOrder(orderID uint) (*OrderPlanning, error)
	GetPlanningsByOrders(orderIDs []uint) ([]OrderPlanning, error)
	UpdatePlanning(planning *OrderPlanning) error
	UpsertPlannings(rows []OrderPlanning, updateColumns []string) error
	DeletePlanning(id uint) error

	CreateProduction(production *OrderProduction) error
	GetProductions() ([]OrderProduction, error)
	GetProductionByID(id uint) (*OrderProduction, error)
	GetProductionByOrder(orderID uint) (*OrderProduction, error)
	GetProductionsByOrders(orderIDs []uint) ([]OrderProduction, error)
	UpdateProduction(production *OrderProduction) error
	UpsertProductions(rows []OrderProduction, updateColumns []string) error
	DeleteProduction(id uint) error

	CreateLogistics(logistics *OrderLogistics) error
	GetLogistics() ([]OrderLogistics, error)
	GetLogisticsByID(id uint) (*OrderLogistics, error)
	GetLogisticsByOrder(orderID uint) (*OrderLogistics, error)
	GetLogisticsByOrders(orderIDs []uint) ([]OrderLogistics, error)
	UpdateLogistics(logistics *OrderLogistics) error
	UpsertLogistics(rows []OrderLogistics, updateColumns []string) error
	DeleteLogistics(id uint) error

	CreateUpload(upload *Upload) error
	GetUploads() ([]Upload, error)
	GetUploadByID(id uint) (*Upload, error)
	GetUploadsByOrder(orderID uint) ([]Upload, error)
	UpdateUpload(upload *Upload) error
	DeleteUpload(id uint) error
}

type ProcurementStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) Storage {
	return &ProcurementStorage{db: db}
}

// Categories

func (s *ProcurementStorage) CreateCategory(category *Category) error {
	return s.db.Create(category).Error
}

func (s *ProcurementStorage) GetCategories() ([]Category, error) {
	var categories []Category
	err := s.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (s *ProcurementStorage) GetCategoryByID(id uint) (*Category, error) {
	var category Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *ProcurementStorage) GetCategoryByIDUnscoped(id uint) (*Category, error) {
	var category Category
	if err := s.db.Unscoped().First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *ProcurementStorage) UpdateCategory(category *Category) error {
	return s.db.Save(category).Error
}

func (s *ProcurementStorage) DeleteCategory(id uint) error {
	return s.db.Delete(&Category{}, id).Error
}

func (s *ProcurementStorage) RestoreCategory(id uint) error {
	return s.db.Unscoped().Model(&Category{}).Where("category_id = ?", id).
		Update("deleted_at", nil).Error
}

func (s *ProcurementStorage) CountItemsByCategory(categoryID uint) (int64, error) {
	var count int64
	err := s.db.Model(&Item{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

// Vendors

func (s *ProcurementStorage) CreateVendor(vendor *Vendor) error {
	return s.db.Create(vendor).Error
}

func (s *ProcurementStorage) GetVendors() ([]Vendor, error) {
	var vendors []Vendor
	err := s.db.Order("vendor_name ASC").Find(&vendors).Error
	return vendors, err
}

func (s *ProcurementStorage) GetVendorByID(id uint) (*Vendor, error) {
	var vendor Vendor
	if err := s.db.First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *ProcurementStorage) GetVendorByIDUnscoped(id uint) (*Vendor, error) {
	var vendor Vendor
	if err := s.db.Unscoped().First(&vendor, id).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *ProcurementStorage) UpdateVendor(vendor *Vendor) error {
	return s.db.Save(vendor).Error
}

func (s *ProcurementStorage) DeleteVendor(id uint) error {
	return s.db.Delete(&Vendor{}, id).Error
}

func (s *ProcurementStorage) RestoreVendor(id uint) error {
	return s.db.Unscoped().Model(&Vendor{}).Where("vendor_id = ?", id).
		Update("deleted_at", nil).Error
}

// Customers

func (s *ProcurementStorage) CreateCustomer(customer *Customer) error {
	return s.db.Create(customer).Error
}

func (s *ProcurementStorage) GetCustomers() ([]Customer, error) {
	var customers []Customer
	err := s.db.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (s *ProcurementStorage) GetCustomerByID(id uint) (*Customer, error) {
	var customer Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *ProcurementStorage) UpdateCustomer(customer *Customer) error {
	return s.db.Save(customer).Error
}

func (s *ProcurementStorage) DeleteCustomer(id uint) error {
	return s.db.Delete(&Customer{}, id).Error
}

// Addresses

func (s *ProcurementStorage) CreateAddress(address *Address) error {
	return s.db.Create(address).Error
}

func (s *ProcurementStorage) GetAddresses() ([]Address, error) {
	var addresses []Address
	err := s.db.Order("address_id DESC").Find(&addresses).Error
	return addresses, err
}

func (s *ProcurementStorage) GetAddressByID(id uint) (*Address, error) {
	var address Address
	if err := s.db.First(&address, id).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *ProcurementStorage) GetAddressesByOwner(owner Owner) ([]Address, error) {
	var addresses []Address
	err := s.db.Where("type = ? AND reference_id = ?", owner.Type, owner.ID).
		Order("address_id ASC").Find(&addresses).Error
	return addresses, err
}

func (s *ProcurementStorage) UpdateAddress(address *Address) error {
	return s.db.Save(address).Error
}

func (s *ProcurementStorage) DeleteAddress(id uint) error {
	return s.db.Delete(&Address{}, id).Error
}

// Items

func (s *ProcurementStorage) CreateItem(item *Item) error {
	return s.db.Create(item).Error
}

func (s *ProcurementStorage) GetItems() ([]Item, error) {
	var items []Item
	err := s.db.Preload("Category").Order("item_name ASC").Find(&items).Error
	return items, err
}

func (s *ProcurementStorage) GetItemByID(id uint) (*Item, error) {
	var item Item
	if err := s.db.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ProcurementStorage) GetItemByIDUnscoped(id uint) (*Item, error) {
	var item Item
	if err := s.db.Unscoped().First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ProcurementStorage) GetItemBySpecNo(specNo string) (*Item, error) {
	var item Item
	if err := s.db.Preload("Category").Where("spec_no = ?", specNo).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ProcurementStorage) GetItemsByCategory(categoryID uint) ([]Item, error) {
	var items []Item
	err := s.db.Preload("Category").Where("category_id = ?", categoryID).
		Order("item_name ASC").Find(&items).Error
	return items, err
}

func (s *ProcurementStorage) GetItemsByIDs(ids []uint) ([]Item, error) {
	var items []Item
	err := s.db.Preload("Category").Where("item_id IN ?", ids).
		Order("item_name ASC").Find(&items).Error
	return items, err
}

func (s *ProcurementStorage) UpdateItem(item *Item) error {
	return s.db.Save(item).Error
}

func (s *ProcurementStorage) UpdateItems(ids []uint, attrs map[string]interface{}) (int64, error) {
	result := s.db.Model(&Item{}).Where("item_id IN ?", ids).Updates(attrs)
	return result.RowsAffected, result.Error
}

func (s *ProcurementStorage) DeleteItem(id uint) error {
	return s.db.Delete(&Item{}, id).Error
}

func (s *ProcurementStorage) RestoreItem(id uint) error {
	return s.db.Unscoped().Model(&Item{}).Where("item_id = ?", id).
		Update("deleted_at", nil).Error
}

// Orders

func (s *ProcurementStorage) CreateOrder(order *Order) error {
	return s.db.Create(order).Error
}

func (s *ProcurementStorage) orderQuery() *gorm.DB {
	return s.db.Preload("Item").Preload("Item.Category").
		Preload("Vendor").Preload("Customer")
}

func (s *ProcurementStorage) GetOrders() ([]Order, error) {
	var orders []Order
	err := s.orderQuery().Order("order_id DESC").Find(&orders).Error
	return orders, err
}

func (s *ProcurementStorage) GetOrderByID(id uint) (*Order, error) {
	var order Order
	if err := s.orderQuery().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *ProcurementStorage) GetOrderByIDUnscoped(id uint) (*Order, error) {
	var order Order
	if err := s.db.Unscoped().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *ProcurementStorage) GetOrdersByItem(itemID uint) ([]Order, error) {
	var orders []Order
	err := s.orderQuery().Where("item_id = ?", itemID).
		Order("order_id DESC").Find(&orders).Error
	return orders, err
}

func (s *ProcurementStorage) GetOrdersByVendor(vendorID uint) ([]Order, error) {
	var orders []Order
	err := s.orderQuery().Where("vendor_id = ?", vendorID).
		Order("order_id DESC").Find(&orders).Error
	return orders, err
}

func (s *ProcurementStorage) GetOrdersByCustomer(customerID uint) ([]Order, error) {
	var orders []Order
	err := s.orderQuery().Where("customer_id = ?", customerID).
		Order("order_id DESC").Find(&orders).Error
	return orders, err
}

func (s *ProcurementStorage) GetOrdersByPhase(phase int) ([]Order, error) {
	var orders []Order
	err := s.orderQuery().Where("phase = ?", phase).
		Order("order_id DESC").Find(&orders).Error
	return orders, err
}

func (s *ProcurementStorage) GetOrdersByIDs(ids []uint) ([]Order, error) {
	var orders []Order
	err := s.db.Where("order_id IN ?", ids).Find(&orders).Error
	return orders, err
}

// SearchOrders applies the ANDed filter set. Name/spec filters go through the
// items join; everything else hits the orders table directly.
func (s *ProcurementStorage) SearchOrders(filter OrderFilter, offset, limit int) ([]Order, int64, error) {
	query := s.db.Model(&Order{}).
		Joins("JOIN items ON items.item_id = orders.item_id AND items.deleted_at IS NULL")

	if filter.Phase != nil {
		query = query.Where("orders.phase = ?", *filter.Phase)
	}
	if filter.VendorID != nil {
		query = query.Where("orders.vendor_id = ?", *filter.VendorID)
	}
	if filter.CustomerID != nil {
		query = query.Where("orders.customer_id = ?", *filter.CustomerID)
	}
	if filter.ItemID != nil {
		query = query.Where("orders.item_id = ?", *filter.ItemID)
	}
	if filter.CategoryID != nil {
		query = query.Where("items.category_id = ?", *filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("orders.total_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("orders.total_price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("items.item_name ILIKE ? OR items.spec_no ILIKE ?", pattern, pattern)
	} else {
		if filter.ItemName != "" {
			query = query.Where("items.item_name ILIKE ?", "%"+filter.ItemName+"%")
		}
		if filter.SpecNo != "" {
			query = query.Where("items.spec_no ILIKE ?", "%"+filter.SpecNo+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []Order
	err := query.Preload("Item").Preload("Item.Category").
		Preload("Vendor").Preload("Customer").
		Order("orders.order_id DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (s *ProcurementStorage) UpdateOrder(order *Order) error {
	return s.db.Save(order).Error
}

func (s *ProcurementStorage) DeleteOrder(id uint) error {
	return s.db.Delete(&Order{}, id).Error
}

func (s *ProcurementStorage) RestoreOrder(id uint) error {
	return s.db.Unscoped().Model(&Order{}).Where("order_id = ?", id).
		Update("deleted_at", nil).Error
}

// Lifecycle records

func (s *ProcurementStorage) CreatePlanning(planning *OrderPlanning) error {
	return s.db.Create(planning).Error
}

func (s *ProcurementStorage) GetPlannings() ([]OrderPlanning, error) {
	var plannings []OrderPlanning
	err := s.db.Preload("Order").Order("planning_id DESC").Find(&plannings).Error
	return plannings, err
}

func (s *ProcurementStorage) GetPlanningByID(id uint) (*OrderPlanning, error) {
	var planning OrderPlanning
	if err := s.db.Preload("Order").First(&planning, id).Error; err != nil {
		return nil, err
	}
	return &planning, nil
}

func (s *ProcurementStorage) GetPlanningByOrder(orderID uint) (*OrderPlanning, error) {
	var planning OrderPlanning
	if err := s.db.Preload("Order").Where("order_id = ?", orderID).First(&planning).Error; err != nil {
		return nil, err
	}
	return &planning, nil
}

func (s *ProcurementStorage) GetPlanningsByOrders(orderIDs []uint) ([]OrderPlanning, error) {
	var plannings []OrderPlanning
	err := s.db.Preload("Order").Where("order_id IN ?", orderIDs).
		Order("planning_id ASC").Find(&plannings).Error
	return plannings, err
}

func (s *ProcurementStorage) UpdatePlanning(planning *OrderPlanning) error {
	return s.db.Save(planning).Error
}

func (s *ProcurementStorage) UpsertPlannings(rows []OrderPlanning, updateColumns []string) error {
	return s.db.Clauses(upsertClause(updateColumns)).Create(&rows).Error
}

func (s *ProcurementStorage) DeletePlanning(id uint) error {
	return s.db.Delete(&OrderPlanning{}, id).Error
}

func (s *ProcurementStorage) CreateProduction(production *OrderProduction) error {
	return s.db.Create(production).Error
}

func (s *ProcurementStorage) GetProductions() ([]OrderProduction, error) {
	var productions []OrderProduction
	err := s.db.Preload("Order").Order("production_id DESC").Find(&productions).Error
	return productions, err
}

func (s *ProcurementStorage) GetProductionByID(id uint) (*OrderProduction, error) {
	var production OrderProduction
	if err := s.db.Preload("Order").First(&production, id).Error; err != nil {
		return nil, err
	}
	return &production, nil
}

func (s *ProcurementStorage) GetProductionByOrder(orderID uint) (*OrderProduction, error) {
	var production OrderProduction
	if err := s.db.Preload("Order").Where("order_id = ?", orderID).First(&production).Error; err != nil {
		return nil, err
	}
	return &production, nil
}

func (s *ProcurementStorage) GetProductionsByOrders(orderIDs []uint) ([]OrderProduction, error) {
	var productions []OrderProduction
	err := s.db.Preload("Order").Where("order_id IN ?", orderIDs).
		Order("production_id ASC").Find(&productions).Error
	return productions, err
}

func (s *ProcurementStorage) UpdateProduction(production *OrderProduction) error {
	return s.db.Save(production).Error
}

func (s *ProcurementStorage) UpsertProductions(rows []OrderProduction, updateColumns []string) error {
	return s.db.Clauses(upsertClause(updateColumns)).Create(&rows).Error
}

func (s *ProcurementStorage) DeleteProduction(id uint) error {
	return s.db.Delete(&OrderProduction{}, id).Error
}

func (s *ProcurementStorage) CreateLogistics(logistics *OrderLogistics) error {
	return s.db.Create(logistics).Error
}

func (s *ProcurementStorage) GetLogistics() ([]OrderLogistics, error) {
	var logistics []OrderLogistics
	err := s.db.Preload("Order").Order("logistics_id DESC").Find(&logistics).Error
	return logistics, err
}

func (s *ProcurementStorage) GetLogisticsByID(id uint) (*OrderLogistics, error) {
	var logistics OrderLogistics
	if err := s.db.Preload("Order").First(&logistics, id).Error; err != nil {
		return nil, err
	}
	return &logistics, nil
}

func (s *ProcurementStorage) GetLogisticsByOrder(orderID uint) (*OrderLogistics, error) {
	var logistics OrderLogistics
	if err := s.db.Preload("Order").Where("order_id = ?", orderID).First(&logistics).Error; err != nil {
		return nil, err
	}
	return &logistics, nil
}

func (s *ProcurementStorage) GetLogisticsByOrders(orderIDs []uint) ([]OrderLogistics, error) {
	var logistics []OrderLogistics
	err := s.db.Preload("Order").Where("order_id IN ?", orderIDs).
		Order("logistics_id ASC").Find(&logistics).Error
	return logistics, err
}

func (s *ProcurementStorage) UpdateLogistics(logistics *OrderLogistics) error {
	return s.db.Save(logistics).Error
}

func (s *ProcurementStorage) UpsertLogistics(rows []OrderLogistics, updateColumns []string) error {
	return s.db.Clauses(upsertClause(updateColumns)).Create(&rows).Error
}

func (s *ProcurementStorage) DeleteLogistics(id uint) error {
	return s.db.Delete(&OrderLogistics{}, id).Error
}

// upsertClause builds the on-conflict clause for lifecycle bulk updates:
// insert per order id, update only the provided columns if a row exists.
func upsertClause(updateColumns []string) clause.OnConflict {
	if len(updateColumns) == 0 {
		return clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			DoNothing: true,
		}
	}
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns(append(updateColumns, "updated_at")),
	}
}

// Uploads

func (s *ProcurementStorage) CreateUpload(upload *Upload) error {
	return s.db.Create(upload).Error
}

func (s *ProcurementStorage) GetUploads() ([]Upload, error) {
	var uploads []Upload
	err := s.db.Order("upload_id DESC").Find(&uploads).Error
	return uploads, err
}

func (s *ProcurementStorage) GetUploadByID(id uint) (*Upload, error) {
	var upload Upload
	if err := s.db.First(&upload, id).Error; err != nil {
		return nil, err
	}
	return &upload, nil
}

func (s *ProcurementStorage) GetUploadsByOrder(orderID uint) ([]Upload, error) {
	var uploads []Upload
	err := s.db.Where("order_id = ?", orderID).Order("upload_id DESC").Find(&uploads).Error
	return uploads, err
}

func (s *ProcurementStorage) UpdateUpload(upload *Upload) error {
	return s.db.Save(upload).Error
}

func (s *ProcurementStorage) DeleteUpload(id uint) error {
	return s.db.Delete(&Upload{}, id).Error
}
