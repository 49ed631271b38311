package procurement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service interface {
	CreateCategory(req CreateCategoryRequest) (*Category, error)
	GetCategories() ([]Category, error)
	GetCategoryByID(id uint) (*Category, error)
	UpdateCategory(id uint, req UpdateCategoryRequest) (*Category, error)
	DeleteCategory(id uint) error
	RestoreCategory(id uint) (*Category, error)

	CreateVendor(req CreateVendorRequest) (*Vendor, error)
	GetVendors() ([]Vendor, error)
	GetVendorByID(id uint) (*Vendor, error)
	UpdateVendor(id uint, req UpdateVendorRequest) (*Vendor, error)
	DeleteVendor(id uint) error
	RestoreVendor(id uint) (*Vendor, error)

	CreateCustomer(req CreateCustomerRequest) (*Customer, error)
	GetCustomers() ([]Customer, error)
	GetCustomerByID(id uint) (*Customer, error)
	UpdateCustomer(id uint, req UpdateCustomerRequest) (*Customer, error)
	DeleteCustomer(id uint) error

	CreateAddress(req CreateAddressRequest) (*Address, error)
	GetAddresses() ([]Address, error)
	GetAddressByID(id uint) (*Address, error)
	GetAddressesByOwner(owner Owner) ([]Address, error)
	UpdateAddress(id uint, req UpdateAddressRequest) (*Address, error)
	DeleteAddress(id uint) error

	CreateItem(req CreateItemRequest) (*Item, error)
	GetItems() ([]Item, error)
	GetItemByID(id uint) (*Item, error)
	GetItemBySpecNo(specNo string) (*Item, error)
	GetItemsByCategory(categoryID uint) ([]Item, error)
	UpdateItem(id uint, req UpdateItemRequest) (*Item, error)
	BulkUpdateItems(req BulkUpdateItemsRequest) (*BulkUpdateItemsResult, error)
	DeleteItem(id uint) error
	RestoreItem(id uint) (*Item, error)

	CreateOrder(req CreateOrderRequest) (*Order, error)
	GetOrders() ([]Order, error)
	GetOrderByID(id uint) (*Order, error)
	GetOrdersByItem(itemID uint) ([]Order, error)
	GetOrdersByVendor(vendorID uint) ([]Order, error)
	GetOrdersByCustomer(customerID uint) ([]Order, error)
	GetOrdersByPhase(phase int) ([]Order, error)
	SearchOrders(filter OrderFilter) (*SearchOrdersResponse, error)
	UpdateOrder(id uint, req UpdateOrderRequest) (*Order, error)
	DeleteOrder(id uint) error
	RestoreOrder(id uint) (*Order, error)

	CreatePlanning(req CreatePlanningRequest) (*OrderPlanning, error)
	GetPlannings() ([]OrderPlanning, error)
	GetPlanningByID(id uint) (*OrderPlanning, error)
	GetPlanningByOrder(orderID uint) (*OrderPlanning, error)
	UpdatePlanning(id uint, req UpdatePlanningRequest) (*OrderPlanning, error)
	BulkUpdatePlanning(req BulkUpdatePlanningRequest) (*BulkUpdatePlanningResult, error)
	DeletePlanning(id uint) error

	CreateProduction(req CreateProductionRequest) (*OrderProduction, error)
	GetProductions() ([]OrderProduction, error)
	GetProductionByID(id uint) (*OrderProduction, error)
	GetProductionByOrder(orderID uint) (*OrderProduction, error)
	UpdateProduction(id uint, req UpdateProductionRequest) (*OrderProduction, error)
	BulkUpdateProduction(req BulkUpdateProductionRequest) (*BulkUpdateProductionResult, error)
	DeleteProduction(id uint) error

	CreateLogistics(req CreateLogisticsRequest) (*OrderLogistics, error)
	GetAllLogistics() ([]OrderLogistics, error)
	GetLogisticsByID(id uint) (*OrderLogistics, error)
	GetLogisticsByOrder(orderID uint) (*OrderLogistics, error)
	UpdateLogistics(id uint, req UpdateLogisticsRequest) (*OrderLogistics, error)
	BulkUpdateLogistics(req BulkUpdateLogisticsRequest) (*BulkUpdateLogisticsResult, error)
	DeleteLogistics(id uint) error

	CreateUpload(req CreateUploadRequest) (*Upload, error)
	GetUploads() ([]Upload, error)
	GetUploadByID(id uint) (*Upload, error)
	GetUploadsByOrder(orderID uint) ([]Upload, error)
	UpdateUpload(id uint, req UpdateUploadRequest) (*Upload, error)
	DeleteUpload(id uint) error
}

type procurementService struct {
	storage Storage
	log     *logrus.Entry
}

func NewService(storage Storage, log *logrus.Entry) Service {
	return &procurementService{
		storage: storage,
		log:     log,
	}
}

func missingIDs(requested []uint, found map[uint]bool) []uint {
	var missing []uint
	for _, id := range requested {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []uint) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprintf("%d", id))
	}
	return strings.Join(parts, ", ")
}

// Categories

func (s *procurementService) CreateCategory(req CreateCategoryRequest) (*Category, error) {
	category := Category{Name: req.Name}
	if err := s.storage.CreateCategory(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("category with this name already exists")
		}
		return nil, newServerError("failed to create category", err)
	}
	return &category, nil
}

func (s *procurementService) GetCategories() ([]Category, error) {
	categories, err := s.storage.GetCategories()
	if err != nil {
		return nil, newServerError("failed to list categories", err)
	}
	return categories, nil
}

func (s *procurementService) GetCategoryByID(id uint) (*Category, error) {
	category, err := s.storage.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("category with id %d not found", id)
		}
		return nil, newServerError("failed to get category", err)
	}
	return category, nil
}

func (s *procurementService) UpdateCategory(id uint, req UpdateCategoryRequest) (*Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.storage.UpdateCategory(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("category with this name already exists")
		}
		return nil, newServerError("failed to update category", err)
	}
	return category, nil
}

// DeleteCategory is restricted: a category referenced by non-deleted items
// cannot be removed.
func (s *procurementService) DeleteCategory(id uint) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}

	count, err := s.storage.CountItemsByCategory(id)
	if err != nil {
		return newServerError("failed to count items for category", err)
	}
	if count > 0 {
		return newConflict("category with id %d still has %d items", id, count)
	}

	if err := s.storage.DeleteCategory(id); err != nil {
		return newServerError("failed to delete category", err)
	}
	return nil
}

func (s *procurementService) RestoreCategory(id uint) (*Category, error) {
	category, err := s.storage.GetCategoryByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("category with id %d not found", id)
		}
		return nil, newServerError("failed to get category", err)
	}

	if !category.DeletedAt.Valid {
		return nil, newConflict("category is not deleted")
	}

	if err := s.storage.RestoreCategory(id); err != nil {
		return nil, newServerError("failed to restore category", err)
	}
	return s.GetCategoryByID(id)
}

// Vendors

func (s *procurementService) CreateVendor(req CreateVendorRequest) (*Vendor, error) {
	vendor := Vendor{VendorName: req.VendorName}
	if err := s.storage.CreateVendor(&vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("vendor with this name already exists")
		}
		return nil, newServerError("failed to create vendor", err)
	}
	return &vendor, nil
}

func (s *procurementService) GetVendors() ([]Vendor, error) {
	vendors, err := s.storage.GetVendors()
	if err != nil {
		return nil, newServerError("failed to list vendors", err)
	}
	return vendors, nil
}

func (s *procurementService) GetVendorByID(id uint) (*Vendor, error) {
	vendor, err := s.storage.GetVendorByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("vendor with id %d not found", id)
		}
		return nil, newServerError("failed to get vendor", err)
	}
	return vendor, nil
}

func (s *procurementService) UpdateVendor(id uint, req UpdateVendorRequest) (*Vendor, error) {
	vendor, err := s.GetVendorByID(id)
	if err != nil {
		return nil, err
	}

	if req.VendorName != nil {
		vendor.VendorName = *req.VendorName
	}

	if err := s.storage.UpdateVendor(vendor); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("vendor with this name already exists")
		}
		return nil, newServerError("failed to update vendor", err)
	}
	return vendor, nil
}

func (s *procurementService) DeleteVendor(id uint) error {
	if _, err := s.GetVendorByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteVendor(id); err != nil {
		return newServerError("failed to delete vendor", err)
	}
	return nil
}

func (s *procurementService) RestoreVendor(id uint) (*Vendor, error) {
	vendor, err := s.storage.GetVendorByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("vendor with id %d not found", id)
		}
		return nil, newServerError("failed to get vendor", err)
	}

	if !vendor.DeletedAt.Valid {
		return nil, newConflict("vendor is not deleted")
	}

	if err := s.storage.RestoreVendor(id); err != nil {
		return nil, newServerError("failed to restore vendor", err)
	}
	return s.GetVendorByID(id)
}

// Customers

func (s *procurementService) CreateCustomer(req CreateCustomerRequest) (*Customer, error) {
	customer := Customer{Name: req.Name}
	if err := s.storage.CreateCustomer(&customer); err != nil {
		return nil, newServerError("failed to create customer", err)
	}
	return &customer, nil
}

func (s *procurementService) GetCustomers() ([]Customer, error) {
	customers, err := s.storage.GetCustomers()
	if err != nil {
		return nil, newServerError("failed to list customers", err)
	}
	return customers, nil
}

func (s *procurementService) GetCustomerByID(id uint) (*Customer, error) {
	customer, err := s.storage.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("customer with id %d not found", id)
		}
		return nil, newServerError("failed to get customer", err)
	}
	return customer, nil
}

func (s *procurementService) UpdateCustomer(id uint, req UpdateCustomerRequest) (*Customer, error) {
	customer, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}

	if err := s.storage.UpdateCustomer(customer); err != nil {
		return nil, newServerError("failed to update customer", err)
	}
	return customer, nil
}

func (s *procurementService) DeleteCustomer(id uint) error {
	if _, err := s.GetCustomerByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteCustomer(id); err != nil {
		return newServerError("failed to delete customer", err)
	}
	return nil
}

// Addresses

// validateOwner checks the referenced row exists in the table implied by the
// owner tag.
func (s *procurementService) validateOwner(owner Owner) error {
	switch owner.Type {
	case OwnerVendor:
		if _, err := s.storage.GetVendorByID(owner.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newBadRequest("vendor with id %d not found", owner.ID)
			}
			return newServerError("failed to get vendor", err)
		}
	case OwnerCustomer:
		if _, err := s.storage.GetCustomerByID(owner.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return newBadRequest("customer with id %d not found", owner.ID)
			}
			return newServerError("failed to get customer", err)
		}
	default:
		return newBadRequest("unknown address owner type %q", owner.Type)
	}
	return nil
}

func (s *procurementService) CreateAddress(req CreateAddressRequest) (*Address, error) {
	owner := Owner{Type: OwnerType(req.Type), ID: req.ReferenceID}
	if err := s.validateOwner(owner); err != nil {
		return nil, err
	}

	address := Address{
		Title:       req.Title,
		Address:     req.Address,
		Type:        owner.Type,
		ReferenceID: owner.ID,
	}
	if err := s.storage.CreateAddress(&address); err != nil {
		return nil, newServerError("failed to create address", err)
	}
	return &address, nil
}

func (s *procurementService) GetAddresses() ([]Address, error) {
	addresses, err := s.storage.GetAddresses()
	if err != nil {
		return nil, newServerError("failed to list addresses", err)
	}
	return addresses, nil
}

func (s *procurementService) GetAddressByID(id uint) (*Address, error) {
	address, err := s.storage.GetAddressByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("address with id %d not found", id)
		}
		return nil, newServerError("failed to get address", err)
	}
	return address, nil
}

func (s *procurementService) GetAddressesByOwner(owner Owner) ([]Address, error) {
	if owner.Type != OwnerVendor && owner.Type != OwnerCustomer {
		return nil, newBadRequest("unknown address owner type %q", owner.Type)
	}
	addresses, err := s.storage.GetAddressesByOwner(owner)
	if err != nil {
		return nil, newServerError("failed to list addresses by owner", err)
	}
	return addresses, nil
}

func (s *procurementService) UpdateAddress(id uint, req UpdateAddressRequest) (*Address, error) {
	address, err := s.GetAddressByID(id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		address.Type = OwnerType(*req.Type)
	}
	if req.ReferenceID != nil {
		address.ReferenceID = *req.ReferenceID
	}
	if req.Type != nil || req.ReferenceID != nil {
		if err := s.validateOwner(address.Owner()); err != nil {
			return nil, err
		}
	}
	if req.Title != nil {
		address.Title = *req.Title
	}
	if req.Address != nil {
		address.Address = *req.Address
	}

	if err := s.storage.UpdateAddress(address); err != nil {
		return nil, newServerError("failed to update address", err)
	}
	return address, nil
}

func (s *procurementService) DeleteAddress(id uint) error {
	if _, err := s.GetAddressByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteAddress(id); err != nil {
		return newServerError("failed to delete address", err)
	}
	return nil
}

// Items

func (s *procurementService) validateCategory(categoryID uint) error {
	if _, err := s.storage.GetCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newBadRequest("category with id %d not found", categoryID)
		}
		return newServerError("failed to get category", err)
	}
	return nil
}

func (s *procurementService) CreateItem(req CreateItemRequest) (*Item, error) {
	if err := s.validateCategory(req.CategoryID); err != nil {
		return nil, err
	}

	markup := 0.0
	if req.MarkupPercentage != nil {
		markup = *req.MarkupPercentage
	}
	unitType := "each"
	if req.UnitType != "" {
		unitType = req.UnitType
	}

	item := Item{
		SpecNo:           req.SpecNo,
		ItemName:         req.ItemName,
		Description:      req.Description,
		CategoryID:       req.CategoryID,
		UnitType:         unitType,
		UnitPrice:        *req.UnitPrice,
		MarkupPercentage: markup,
		TotalPrice:       ComputeTotalPrice(*req.UnitPrice, markup, 1),
		Notes:            req.Notes,
		Location:         req.Location,
		ShipFrom:         req.ShipFrom,
	}

	if err := s.storage.CreateItem(&item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("item with this spec number already exists")
		}
		return nil, newServerError("failed to create item", err)
	}
	return s.GetItemByID(item.ItemID)
}

func (s *procurementService) GetItems() ([]Item, error) {
	items, err := s.storage.GetItems()
	if err != nil {
		return nil, newServerError("failed to list items", err)
	}
	return items, nil
}

func (s *procurementService) GetItemByID(id uint) (*Item, error) {
	item, err := s.storage.GetItemByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("item with id %d not found", id)
		}
		return nil, newServerError("failed to get item", err)
	}
	return item, nil
}

func (s *procurementService) GetItemBySpecNo(specNo string) (*Item, error) {
	item, err := s.storage.GetItemBySpecNo(specNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("item with spec number %s not found", specNo)
		}
		return nil, newServerError("failed to get item", err)
	}
	return item, nil
}

func (s *procurementService) GetItemsByCategory(categoryID uint) ([]Item, error) {
	if _, err := s.storage.GetCategoryByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("category with id %d not found", categoryID)
		}
		return nil, newServerError("failed to get category", err)
	}

	items, err := s.storage.GetItemsByCategory(categoryID)
	if err != nil {
		return nil, newServerError("failed to list items by category", err)
	}
	return items, nil
}

func (s *procurementService) UpdateItem(id uint, req UpdateItemRequest) (*Item, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if err := s.validateCategory(*req.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = *req.CategoryID
	}
	if req.SpecNo != nil {
		item.SpecNo = *req.SpecNo
	}
	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitType != nil {
		item.UnitType = *req.UnitType
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.MarkupPercentage != nil {
		item.MarkupPercentage = *req.MarkupPercentage
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.ShipFrom != nil {
		item.ShipFrom = *req.ShipFrom
	}

	item.TotalPrice = ComputeTotalPrice(item.UnitPrice, item.MarkupPercentage, 1)
	item.Category = nil

	if err := s.storage.UpdateItem(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("item with this spec number already exists")
		}
		return nil, newServerError("failed to update item", err)
	}
	return s.GetItemByID(id)
}

// BulkUpdateItems is all-or-nothing: a partial id match is an error naming
// the missing ids, not a partial success.
func (s *procurementService) BulkUpdateItems(req BulkUpdateItemsRequest) (*BulkUpdateItemsResult, error) {
	items, err := s.storage.GetItemsByIDs(req.ItemIDs)
	if err != nil {
		return nil, newServerError("failed to list items", err)
	}
	if len(items) == 0 {
		return nil, newNotFound("no items found with the provided ids")
	}
	if len(items) != len(req.ItemIDs) {
		found := make(map[uint]bool, len(items))
		for _, item := range items {
			found[item.ItemID] = true
		}
		return nil, newBadRequest("items not found: %s", joinIDs(missingIDs(req.ItemIDs, found)))
	}

	attrs := map[string]interface{}{}
	if req.CategoryID != nil {
		if err := s.validateCategory(*req.CategoryID); err != nil {
			return nil, err
		}
		attrs["category_id"] = *req.CategoryID
	}
	if req.Location != nil {
		attrs["location"] = *req.Location
	}
	if req.ShipFrom != nil {
		attrs["ship_from"] = *req.ShipFrom
	}
	if req.Notes != nil {
		attrs["notes"] = *req.Notes
	}

	var updated int64
	if len(attrs) > 0 {
		updated, err = s.storage.UpdateItems(req.ItemIDs, attrs)
		if err != nil {
			return nil, newServerError("failed to bulk update items", err)
		}
	}

	result, err := s.storage.GetItemsByIDs(req.ItemIDs)
	if err != nil {
		return nil, newServerError("failed to list items", err)
	}

	return &BulkUpdateItemsResult{UpdatedCount: updated, UpdatedItems: result}, nil
}

func (s *procurementService) DeleteItem(id uint) error {
	if _, err := s.GetItemByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteItem(id); err != nil {
		return newServerError("failed to delete item", err)
	}
	return nil
}

func (s *procurementService) RestoreItem(id uint) (*Item, error) {
	item, err := s.storage.GetItemByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("item with id %d not found", id)
		}
		return nil, newServerError("failed to get item", err)
	}

	if !item.DeletedAt.Valid {
		return nil, newConflict("item is not deleted")
	}

	if err := s.storage.RestoreItem(id); err != nil {
		return nil, newServerError("failed to restore item", err)
	}
	return s.GetItemByID(id)
}
