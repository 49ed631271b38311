package procurement

import (
	"errors"

	"gorm.io/gorm"
)

func (s *procurementService) CreateUpload(req CreateUploadRequest) (*Upload, error) {
	if req.OrderID != nil {
		if err := s.validateOrder(*req.OrderID); err != nil {
			return nil, err
		}
	}

	upload := Upload{
		OrderID: req.OrderID,
		Name:    req.Name,
		URL:     req.URL,
	}
	if err := s.storage.CreateUpload(&upload); err != nil {
		return nil, newServerError("failed to create upload", err)
	}

	s.log.Debugf("created upload %d (%s)", upload.UploadID, upload.Name)
	return s.GetUploadByID(upload.UploadID)
}

func (s *procurementService) GetUploads() ([]Upload, error) {
	uploads, err := s.storage.GetUploads()
	if err != nil {
		return nil, newServerError("failed to list uploads", err)
	}
	return uploads, nil
}

func (s *procurementService) GetUploadByID(id uint) (*Upload, error) {
	upload, err := s.storage.GetUploadByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("upload with id %d not found", id)
		}
		return nil, newServerError("failed to get upload", err)
	}
	return upload, nil
}

func (s *procurementService) GetUploadsByOrder(orderID uint) ([]Upload, error) {
	if _, err := s.storage.GetOrderByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newNotFound("order with id %d not found", orderID)
		}
		return nil, newServerError("failed to get order", err)
	}

	uploads, err := s.storage.GetUploadsByOrder(orderID)
	if err != nil {
		return nil, newServerError("failed to list uploads", err)
	}
	return uploads, nil
}

func (s *procurementService) UpdateUpload(id uint, req UpdateUploadRequest) (*Upload, error) {
	upload, err := s.GetUploadByID(id)
	if err != nil {
		return nil, err
	}

	if req.OrderID != nil {
		if err := s.validateOrder(*req.OrderID); err != nil {
			return nil, err
		}
		upload.OrderID = req.OrderID
	}
	if req.Name != nil {
		upload.Name = *req.Name
	}
	if req.URL != nil {
		upload.URL = *req.URL
	}
	upload.Order = nil

	if err := s.storage.UpdateUpload(upload); err != nil {
		return nil, newServerError("failed to update upload", err)
	}
	return s.GetUploadByID(id)
}

func (s *procurementService) DeleteUpload(id uint) error {
	if _, err := s.GetUploadByID(id); err != nil {
		return err
	}
	if err := s.storage.DeleteUpload(id); err != nil {
		return newServerError("failed to delete upload", err)
	}
	return nil
}
