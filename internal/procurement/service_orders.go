package procurement

import (
	"errors"

	"gorm.io/gorm"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func (s *procurementService) validateItem(itemID uint) error {
	if _, err := s.storage.GetItemByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newBadRequest("item with id %d not found", itemID)
		}
		return newServerError("failed to get item", err)
	}
	return nil
}

func (s *procurementService) validateVendor(vendorID uint) error {
	if _, err := s.storage.GetVendorByID(vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newBadRequest("vendor with id %d not found", vendorID)
		}
		return newServerError("failed to get vendor", err)
	}
	return nil
}

func (s *procurementService) validateCustomer(customerID uint) error {
	if _, err := s.storage.GetCustomerByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newBadRequest("customer with id %d not found", customerID)
		}
		return newServerError("failed to get customer", err)
	}
	return nil
}

// validateOwnedAddress requires the address to exist and to belong to the
// given owner type.
func (s *procurementService) validateOwnedAddress(addressID uint, ownerType OwnerType) error {
	address, err := s.storage.GetAddressByID(addressID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newBadRequest("address with id %d not found", addressID)
		}
		return newServerError("failed to get address", err)
	}
	if address.Type != ownerType {
		return newBadRequest("address with id %d is not a %s address", addressID, ownerType)
	}
	return nil
}

func (s *procurementService) validateOrderReferences(vendorID, vendorAddressID, customerID, customerAddressID *uint) error {
	if vendorID != nil {
		if err := s.validateVendor(*vendorID); err != nil {
			return err
		}
	}
	if vendorAddressID != nil {
		if err := s.validateOwnedAddress(*vendorAddressID, OwnerVendor); err != nil {
			return err
		}
	}
	if customerID != nil {
		if err := s.validateCustomer(*customerID); err != nil {
			return err
		}
	}
	if customerAddressID != nil {
		if err := s.validateOwnedAddress(*customerAddressID, OwnerCustomer); err != nil {
			return err
		}
	}
	return nil
}

func (s *procurementService) CreateOrder(req CreateOrderRequest) (*Order, error) {
	if err := s.validateItem(req.ItemID); err != nil {
		return nil, err
	}
	if err := s.validateOrderReferences(req.VendorID, req.VendorAddressID, req.CustomerID, req.CustomerAddressID); err != nil {
		return nil, err
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	markup := 0.0
	if req.MarkupPercentage != nil {
		markup = *req.MarkupPercentage
	}
	phase := PhasePlanning
	if req.Phase != nil {
		phase = *req.Phase
	}

	order := Order{
		ItemID:            req.ItemID,
		VendorID:          req.VendorID,
		VendorAddressID:   req.VendorAddressID,
		CustomerID:        req.CustomerID,
		CustomerAddressID: req.CustomerAddressID,
		Quantity:          quantity,
		UnitPrice:         *req.UnitPrice,
		MarkupPercentage:  markup,
		TotalPrice:        ComputeTotalPrice(*req.UnitPrice, markup, quantity),
		Phase:             phase,
		Location:          req.Location,
		ShipFrom:          req.ShipFrom,
		Notes:             req.Notes,
	}

	if err := s.storage.CreateOrder(&order); err != nil {
		return nil, newServerError("failed to create order", err)
	}

	s.log.Debugf("created order %d in phase %s", order.OrderID, PhaseToString(order.Phase))
	return s.GetOrderByID(order.OrderID)
}

func (s *procurementService) GetOrders() ([]Order, error) {
	orders, err := s.storage.GetOrders()
	if err != nil {
		return nil, newServerError("failed to list orders", err)
	}
	return orders, nil
}

func (s *procurementService) GetOrderByID(id uint) (*Order, error) {
	order, err := s.storage.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order with id %d not found", id)
		}
		return nil, newServerError("failed to get order", err)
	}
	return order, nil
}

func (s *procurementService) GetOrdersByItem(itemID uint) ([]Order, error) {
	if _, err := s.storage.GetItemByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("item with id %d not found", itemID)
		}
		return nil, newServerError("failed to get item", err)
	}

	orders, err := s.storage.GetOrdersByItem(itemID)
	if err != nil {
		return nil, newServerError("failed to list orders by item", err)
	}
	return orders, nil
}

func (s *procurementService) GetOrdersByVendor(vendorID uint) ([]Order, error) {
	if _, err := s.storage.GetVendorByID(vendorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("vendor with id %d not found", vendorID)
		}
		return nil, newServerError("failed to get vendor", err)
	}

	orders, err := s.storage.GetOrdersByVendor(vendorID)
	if err != nil {
		return nil, newServerError("failed to list orders by vendor", err)
	}
	return orders, nil
}

func (s *procurementService) GetOrdersByCustomer(customerID uint) ([]Order, error) {
	if _, err := s.storage.GetCustomerByID(customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("customer with id %d not found", customerID)
		}
		return nil, newServerError("failed to get customer", err)
	}

	orders, err := s.storage.GetOrdersByCustomer(customerID)
	if err != nil {
		return nil, newServerError("failed to list orders by customer", err)
	}
	return orders, nil
}

func (s *procurementService) GetOrdersByPhase(phase int) ([]Order, error) {
	orders, err := s.storage.GetOrdersByPhase(phase)
	if err != nil {
		return nil, newServerError("failed to list orders by phase", err)
	}
	return orders, nil
}

func (s *procurementService) SearchOrders(filter OrderFilter) (*SearchOrdersResponse, error) {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	orders, total, err := s.storage.SearchOrders(filter, (page-1)*limit, limit)
	if err != nil {
		return nil, newServerError("failed to search orders", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &SearchOrdersResponse{
		Data: orders,
		Meta: PageMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *procurementService) UpdateOrder(id uint, req UpdateOrderRequest) (*Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if req.ItemID != nil {
		if err := s.validateItem(*req.ItemID); err != nil {
			return nil, err
		}
		order.ItemID = *req.ItemID
	}
	if err := s.validateOrderReferences(req.VendorID, req.VendorAddressID, req.CustomerID, req.CustomerAddressID); err != nil {
		return nil, err
	}

	if req.VendorID != nil {
		order.VendorID = req.VendorID
	}
	if req.VendorAddressID != nil {
		order.VendorAddressID = req.VendorAddressID
	}
	if req.CustomerID != nil {
		order.CustomerID = req.CustomerID
	}
	if req.CustomerAddressID != nil {
		order.CustomerAddressID = req.CustomerAddressID
	}
	if req.Quantity != nil {
		order.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		order.UnitPrice = *req.UnitPrice
	}
	if req.MarkupPercentage != nil {
		order.MarkupPercentage = *req.MarkupPercentage
	}
	if req.Phase != nil {
		order.Phase = *req.Phase
	}
	if req.Location != nil {
		order.Location = *req.Location
	}
	if req.ShipFrom != nil {
		order.ShipFrom = *req.ShipFrom
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	order.TotalPrice = ComputeTotalPrice(order.UnitPrice, order.MarkupPercentage, order.Quantity)
	order.Item = nil
	order.Vendor = nil
	order.Customer = nil

	if err := s.storage.UpdateOrder(order); err != nil {
		return nil, newServerError("failed to update order", err)
	}
	return s.GetOrderByID(id)
}

func (s *procurementService) DeleteOrder(id uint) error {
	if _, err := s.GetOrderByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteOrder(id); err != nil {
		return newServerError("failed to delete order", err)
	}
	return nil
}

func (s *procurementService) RestoreOrder(id uint) (*Order, error) {
	order, err := s.storage.GetOrderByIDUnscoped(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order with id %d not found", id)
		}
		return nil, newServerError("failed to get order", err)
	}

	if !order.DeletedAt.Valid {
		return nil, newConflict("order is not deleted")
	}

	if err := s.storage.RestoreOrder(id); err != nil {
		return nil, newServerError("failed to restore order", err)
	}
	return s.GetOrderByID(id)
}
