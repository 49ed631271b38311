package procurement

import (
	"errors"

	"gorm.io/gorm"
)

func (s *procurementService) validateOrder(orderID uint) error {
	if _, err := s.storage.GetOrderByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newBadRequest("order with id %d not found", orderID)
		}
		return newServerError("failed to get order", err)
	}
	return nil
}

// validateOrdersExist is the all-or-nothing pre-check of the bulk paths.
func (s *procurementService) validateOrdersExist(orderIDs []uint) error {
	orders, err := s.storage.GetOrdersByIDs(orderIDs)
	if err != nil {
		return newServerError("failed to list orders", err)
	}
	if len(orders) == 0 {
		return newNotFound("no orders found with the provided ids")
	}
	if len(orders) != len(orderIDs) {
		found := make(map[uint]bool, len(orders))
		for _, order := range orders {
			found[order.OrderID] = true
		}
		return newBadRequest("orders not found: %s", joinIDs(missingIDs(orderIDs, found)))
	}
	return nil
}

// Planning

// CreatePlanning pre-checks the one-to-one constraint only for the friendlier
// message; the unique index on order_id is the actual enforcement, and a
// duplicate-key error from the insert maps to the same Conflict.
func (s *procurementService) CreatePlanning(req CreatePlanningRequest) (*OrderPlanning, error) {
	if err := s.validateOrder(req.OrderID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetPlanningByOrder(req.OrderID); err == nil {
		return nil, newConflict("planning already exists for order id %d", req.OrderID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newServerError("failed to get planning", err)
	}

	planning := OrderPlanning{
		OrderID:            req.OrderID,
		SampleApprovedDate: parseDate(req.SampleApprovedDate),
		PiSendDate:         parseDate(req.PiSendDate),
		PiApprovedDate:     parseDate(req.PiApprovedDate),
		InitialPaymentDate: parseDate(req.InitialPaymentDate),
	}

	if err := s.storage.CreatePlanning(&planning); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("planning already exists for order id %d", req.OrderID)
		}
		return nil, newServerError("failed to create planning", err)
	}
	return s.GetPlanningByID(planning.PlanningID)
}

func (s *procurementService) GetPlannings() ([]OrderPlanning, error) {
	plannings, err := s.storage.GetPlannings()
	if err != nil {
		return nil, newServerError("failed to list plannings", err)
	}
	return plannings, nil
}

func (s *procurementService) GetPlanningByID(id uint) (*OrderPlanning, error) {
	planning, err := s.storage.GetPlanningByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order planning with id %d not found", id)
		}
		return nil, newServerError("failed to get planning", err)
	}
	return planning, nil
}

func (s *procurementService) GetPlanningByOrder(orderID uint) (*OrderPlanning, error) {
	if _, err := s.storage.GetOrderByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order with id %d not found", orderID)
		}
		return nil, newServerError("failed to get order", err)
	}

	planning, err := s.storage.GetPlanningByOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order planning for order id %d not found", orderID)
		}
		return nil, newServerError("failed to get planning", err)
	}
	return planning, nil
}

func (s *procurementService) UpdatePlanning(id uint, req UpdatePlanningRequest) (*OrderPlanning, error) {
	planning, err := s.GetPlanningByID(id)
	if err != nil {
		return nil, err
	}

	if req.SampleApprovedDate != nil {
		planning.SampleApprovedDate = parseDate(req.SampleApprovedDate)
	}
	if req.PiSendDate != nil {
		planning.PiSendDate = parseDate(req.PiSendDate)
	}
	if req.PiApprovedDate != nil {
		planning.PiApprovedDate = parseDate(req.PiApprovedDate)
	}
	if req.InitialPaymentDate != nil {
		planning.InitialPaymentDate = parseDate(req.InitialPaymentDate)
	}
	planning.Order = nil

	if err := s.storage.UpdatePlanning(planning); err != nil {
		return nil, newServerError("failed to update planning", err)
	}
	return s.GetPlanningByID(id)
}

func (s *procurementService) BulkUpdatePlanning(req BulkUpdatePlanningRequest) (*BulkUpdatePlanningResult, error) {
	if err := s.validateOrdersExist(req.OrderIDs); err != nil {
		return nil, err
	}

	var columns []string
	if req.SampleApprovedDate != nil {
		columns = append(columns, "sample_approved_date")
	}
	if req.PiSendDate != nil {
		columns = append(columns, "pi_send_date")
	}
	if req.PiApprovedDate != nil {
		columns = append(columns, "pi_approved_date")
	}
	if req.InitialPaymentDate != nil {
		columns = append(columns, "initial_payment_date")
	}

	rows := make([]OrderPlanning, 0, len(req.OrderIDs))
	for _, orderID := range req.OrderIDs {
		rows = append(rows, OrderPlanning{
			OrderID:            orderID,
			SampleApprovedDate: parseDate(req.SampleApprovedDate),
			PiSendDate:         parseDate(req.PiSendDate),
			PiApprovedDate:     parseDate(req.PiApprovedDate),
			InitialPaymentDate: parseDate(req.InitialPaymentDate),
		})
	}

	if err := s.storage.UpsertPlannings(rows, columns); err != nil {
		return nil, newServerError("failed to bulk update planning", err)
	}

	results, err := s.storage.GetPlanningsByOrders(req.OrderIDs)
	if err != nil {
		return nil, newServerError("failed to list plannings", err)
	}
	return &BulkUpdatePlanningResult{TotalCount: len(results), Results: results}, nil
}

func (s *procurementService) DeletePlanning(id uint) error {
	if _, err := s.GetPlanningByID(id); err != nil {
		return err
	}
	if err := s.storage.DeletePlanning(id); err != nil {
		return newServerError("failed to delete planning", err)
	}
	return nil
}

// Production

func (s *procurementService) CreateProduction(req CreateProductionRequest) (*OrderProduction, error) {
	if err := s.validateOrder(req.OrderID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetProductionByOrder(req.OrderID); err == nil {
		return nil, newConflict("production already exists for order id %d", req.OrderID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newServerError("failed to get production", err)
	}

	production := OrderProduction{
		OrderID:           req.OrderID,
		CfaShopsSend:      parseDate(req.CfaShopsSend),
		CfaShopsApproved:  parseDate(req.CfaShopsApproved),
		CfaShopsDelivered: parseDate(req.CfaShopsDelivered),
	}

	if err := s.storage.CreateProduction(&production); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("production already exists for order id %d", req.OrderID)
		}
		return nil, newServerError("failed to create production", err)
	}
	return s.GetProductionByID(production.ProductionID)
}

func (s *procurementService) GetProductions() ([]OrderProduction, error) {
	productions, err := s.storage.GetProductions()
	if err != nil {
		return nil, newServerError("failed to list productions", err)
	}
	return productions, nil
}

func (s *procurementService) GetProductionByID(id uint) (*OrderProduction, error) {
	production, err := s.storage.GetProductionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order production with id %d not found", id)
		}
		return nil, newServerError("failed to get production", err)
	}
	return production, nil
}

func (s *procurementService) GetProductionByOrder(orderID uint) (*OrderProduction, error) {
	if _, err := s.storage.GetOrderByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order with id %d not found", orderID)
		}
		return nil, newServerError("failed to get order", err)
	}

	production, err := s.storage.GetProductionByOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order production for order id %d not found", orderID)
		}
		return nil, newServerError("failed to get production", err)
	}
	return production, nil
}

func (s *procurementService) UpdateProduction(id uint, req UpdateProductionRequest) (*OrderProduction, error) {
	production, err := s.GetProductionByID(id)
	if err != nil {
		return nil, err
	}

	if req.CfaShopsSend != nil {
		production.CfaShopsSend = parseDate(req.CfaShopsSend)
	}
	if req.CfaShopsApproved != nil {
		production.CfaShopsApproved = parseDate(req.CfaShopsApproved)
	}
	if req.CfaShopsDelivered != nil {
		production.CfaShopsDelivered = parseDate(req.CfaShopsDelivered)
	}
	production.Order = nil

	if err := s.storage.UpdateProduction(production); err != nil {
		return nil, newServerError("failed to update production", err)
	}
	return s.GetProductionByID(id)
}

func (s *procurementService) BulkUpdateProduction(req BulkUpdateProductionRequest) (*BulkUpdateProductionResult, error) {
	if err := s.validateOrdersExist(req.OrderIDs); err != nil {
		return nil, err
	}

	var columns []string
	if req.CfaShopsSend != nil {
		columns = append(columns, "cfa_shops_send")
	}
	if req.CfaShopsApproved != nil {
		columns = append(columns, "cfa_shops_approved")
	}
	if req.CfaShopsDelivered != nil {
		columns = append(columns, "cfa_shops_delivered")
	}

	rows := make([]OrderProduction, 0, len(req.OrderIDs))
	for _, orderID := range req.OrderIDs {
		rows = append(rows, OrderProduction{
			OrderID:           orderID,
			CfaShopsSend:      parseDate(req.CfaShopsSend),
			CfaShopsApproved:  parseDate(req.CfaShopsApproved),
			CfaShopsDelivered: parseDate(req.CfaShopsDelivered),
		})
	}

	if err := s.storage.UpsertProductions(rows, columns); err != nil {
		return nil, newServerError("failed to bulk update production", err)
	}

	results, err := s.storage.GetProductionsByOrders(req.OrderIDs)
	if err != nil {
		return nil, newServerError("failed to list productions", err)
	}
	return &BulkUpdateProductionResult{TotalCount: len(results), Results: results}, nil
}

func (s *procurementService) DeleteProduction(id uint) error {
	if _, err := s.GetProductionByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteProduction(id); err != nil {
		return newServerError("failed to delete production", err)
	}
	return nil
}

// Logistics

func (s *procurementService) CreateLogistics(req CreateLogisticsRequest) (*OrderLogistics, error) {
	if err := s.validateOrder(req.OrderID); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetLogisticsByOrder(req.OrderID); err == nil {
		return nil, newConflict("logistics already exists for order id %d", req.OrderID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, newServerError("failed to get logistics", err)
	}

	logistics := OrderLogistics{
		OrderID:       req.OrderID,
		OrderedDate:   parseDate(req.OrderedDate),
		ShippedDate:   parseDate(req.ShippedDate),
		DeliveredDate: parseDate(req.DeliveredDate),
	}
	if req.ShippingNotes != nil {
		logistics.ShippingNotes = *req.ShippingNotes
	}

	if err := s.storage.CreateLogistics(&logistics); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, newConflict("logistics already exists for order id %d", req.OrderID)
		}
		return nil, newServerError("failed to create logistics", err)
	}
	return s.GetLogisticsByID(logistics.LogisticsID)
}

func (s *procurementService) GetAllLogistics() ([]OrderLogistics, error) {
	logistics, err := s.storage.GetLogistics()
	if err != nil {
		return nil, newServerError("failed to list logistics", err)
	}
	return logistics, nil
}

func (s *procurementService) GetLogisticsByID(id uint) (*OrderLogistics, error) {
	logistics, err := s.storage.GetLogisticsByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order logistics with id %d not found", id)
		}
		return nil, newServerError("failed to get logistics", err)
	}
	return logistics, nil
}

func (s *procurementService) GetLogisticsByOrder(orderID uint) (*OrderLogistics, error) {
	if _, err := s.storage.GetOrderByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order with id %d not found", orderID)
		}
		return nil, newServerError("failed to get order", err)
	}

	logistics, err := s.storage.GetLogisticsByOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order logistics for order id %d not found", orderID)
		}
		return nil, newServerError("failed to get logistics", err)
	}
	return logistics, nil
}

func (s *procurementService) UpdateLogistics(id uint, req UpdateLogisticsRequest) (*OrderLogistics, error) {
	logistics, err := s.GetLogisticsByID(id)
	if err != nil {
		return nil, err
	}

	if req.OrderedDate != nil {
		logistics.OrderedDate = parseDate(req.OrderedDate)
	}
	if req.ShippedDate != nil {
		logistics.ShippedDate = parseDate(req.ShippedDate)
	}
	if req.DeliveredDate != nil {
		logistics.DeliveredDate = parseDate(req.DeliveredDate)
	}
	if req.ShippingNotes != nil {
		logistics.ShippingNotes = *req.ShippingNotes
	}
	logistics.Order = nil

	if err := s.storage.UpdateLogistics(logistics); err != nil {
		return nil, newServerError("failed to update logistics", err)
	}
	return s.GetLogisticsByID(id)
}

func (s *procurementService) BulkUpdateLogistics(req BulkUpdateLogisticsRequest) (*BulkUpdateLogisticsResult, error) {
	if err := s.validateOrdersExist(req.OrderIDs); err != nil {
		return nil, err
	}

	var columns []string
	if req.OrderedDate != nil {
		columns = append(columns, "ordered_date")
	}
	if req.ShippedDate != nil {
		columns = append(columns, "shipped_date")
	}
	if req.DeliveredDate != nil {
		columns = append(columns, "delivered_date")
	}
	if req.ShippingNotes != nil {
		columns = append(columns, "shipping_notes")
	}

	rows := make([]OrderLogistics, 0, len(req.OrderIDs))
	for _, orderID := range req.OrderIDs {
		row := OrderLogistics{
			OrderID:       orderID,
			OrderedDate:   parseDate(req.OrderedDate),
			ShippedDate:   parseDate(req.ShippedDate),
			DeliveredDate: parseDate(req.DeliveredDate),
		}
		if req.ShippingNotes != nil {
			row.ShippingNotes = *req.ShippingNotes
		}
		rows = append(rows, row)
	}

	if err := s.storage.UpsertLogistics(rows, columns); err != nil {
		return nil, newServerError("failed to bulk update logistics", err)
	}

	results, err := s.storage.GetLogisticsByOrders(req.OrderIDs)
	if err != nil {
		return nil, newServerError("failed to list logistics", err)
	}
	return &BulkUpdateLogisticsResult{TotalCount: len(results), Results: results}, nil
}

func (s *procurementService) DeleteLogistics(id uint) error {
	if _, err := s.GetLogisticsByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteLogistics(id); err != nil {
		return newServerError("failed to delete logistics", err)
	}
	return nil
}
