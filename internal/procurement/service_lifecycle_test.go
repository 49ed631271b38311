package procurement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrders(t *testing.T, svc Service, n int) []uint {
	t.Helper()
	category := mustCategory(t, svc, "Furniture")
	item := mustItem(t, svc, "SOFA-001", category.CategoryID, 150000, 20)

	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		order := mustOrder(t, svc, item.ItemID, 1, 150000, 20)
		ids = append(ids, order.OrderID)
	}
	return ids
}

func dateOf(t *testing.T, value *time.Time) string {
	t.Helper()
	require.NotNil(t, value)
	return value.Format(dateLayout)
}

func TestCreatePlanning(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	planning, err := svc.CreatePlanning(CreatePlanningRequest{
		OrderID:            orders[0],
		SampleApprovedDate: strPtr("2026-05-04"),
		PiSendDate:         strPtr("2026-05-11"),
	})
	require.NoError(t, err)
	assert.Equal(t, orders[0], planning.OrderID)
	assert.Equal(t, "2026-05-04", dateOf(t, planning.SampleApprovedDate))
	assert.Equal(t, "2026-05-11", dateOf(t, planning.PiSendDate))
	assert.Nil(t, planning.PiApprovedDate)
}

func TestCreatePlanningUnknownOrder(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreatePlanning(CreatePlanningRequest{OrderID: 42})
	assertAppError(t, err, BadRequestAppError)
}

func TestCreatePlanningTwiceConflicts(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	_, err := svc.CreatePlanning(CreatePlanningRequest{OrderID: orders[0]})
	require.NoError(t, err)

	_, err = svc.CreatePlanning(CreatePlanningRequest{OrderID: orders[0]})
	assertAppError(t, err, ConflictAppError)
}

func TestGetPlanningByOrder(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	_, err := svc.GetPlanningByOrder(99)
	assertAppError(t, err, NotFoundAppError)

	_, err = svc.GetPlanningByOrder(orders[0])
	assertAppError(t, err, NotFoundAppError)

	created, err := svc.CreatePlanning(CreatePlanningRequest{OrderID: orders[0]})
	require.NoError(t, err)

	found, err := svc.GetPlanningByOrder(orders[0])
	require.NoError(t, err)
	assert.Equal(t, created.PlanningID, found.PlanningID)
}

func TestUpdatePlanningAppliesOnlyProvidedDates(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	planning, err := svc.CreatePlanning(CreatePlanningRequest{
		OrderID:            orders[0],
		SampleApprovedDate: strPtr("2026-05-04"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePlanning(planning.PlanningID, UpdatePlanningRequest{
		PiSendDate: strPtr("2026-05-11"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-05-04", dateOf(t, updated.SampleApprovedDate))
	assert.Equal(t, "2026-05-11", dateOf(t, updated.PiSendDate))
}

func TestBulkUpdatePlanningUpserts(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 3)

	// one order already has a planning row with a sample date
	_, err := svc.CreatePlanning(CreatePlanningRequest{
		OrderID:            orders[0],
		SampleApprovedDate: strPtr("2026-01-05"),
	})
	require.NoError(t, err)

	result, err := svc.BulkUpdatePlanning(BulkUpdatePlanningRequest{
		OrderIDs: orders,
		UpdatePlanningRequest: UpdatePlanningRequest{
			PiSendDate: strPtr("2026-05-11"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalCount)
	require.Len(t, result.Results, 3)

	for _, planning := range result.Results {
		assert.Equal(t, "2026-05-11", dateOf(t, planning.PiSendDate))
	}

	// the existing row keeps the column the bulk update did not touch
	kept, err := svc.GetPlanningByOrder(orders[0])
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", dateOf(t, kept.SampleApprovedDate))
}

func TestBulkUpdatePlanningValidatesOrders(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	_, err := svc.BulkUpdatePlanning(BulkUpdatePlanningRequest{
		OrderIDs: []uint{orders[0], 404},
		UpdatePlanningRequest: UpdatePlanningRequest{
			PiSendDate: strPtr("2026-05-11"),
		},
	})
	assertAppError(t, err, BadRequestAppError)
	assert.Contains(t, err.Error(), "404")

	_, err = svc.BulkUpdatePlanning(BulkUpdatePlanningRequest{
		OrderIDs: []uint{404, 405},
	})
	assertAppError(t, err, NotFoundAppError)
}

func TestDeletePlanning(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	planning, err := svc.CreatePlanning(CreatePlanningRequest{OrderID: orders[0]})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlanning(planning.PlanningID))
	_, err = svc.GetPlanningByID(planning.PlanningID)
	assertAppError(t, err, NotFoundAppError)

	err = svc.DeletePlanning(planning.PlanningID)
	assertAppError(t, err, NotFoundAppError)
}

func TestProductionLifecycle(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 2)

	production, err := svc.CreateProduction(CreateProductionRequest{
		OrderID:      orders[0],
		CfaShopsSend: strPtr("2026-04-06"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-04-06", dateOf(t, production.CfaShopsSend))

	_, err = svc.CreateProduction(CreateProductionRequest{OrderID: orders[0]})
	assertAppError(t, err, ConflictAppError)

	result, err := svc.BulkUpdateProduction(BulkUpdateProductionRequest{
		OrderIDs: orders,
		UpdateProductionRequest: UpdateProductionRequest{
			CfaShopsApproved: strPtr("2026-04-20"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)

	kept, err := svc.GetProductionByOrder(orders[0])
	require.NoError(t, err)
	assert.Equal(t, "2026-04-06", dateOf(t, kept.CfaShopsSend))
	assert.Equal(t, "2026-04-20", dateOf(t, kept.CfaShopsApproved))
}

func TestLogisticsLifecycle(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 2)

	logistics, err := svc.CreateLogistics(CreateLogisticsRequest{
		OrderID:       orders[0],
		OrderedDate:   strPtr("2026-06-01"),
		ShippingNotes: strPtr("Sea freight"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Sea freight", logistics.ShippingNotes)

	updated, err := svc.UpdateLogistics(logistics.LogisticsID, UpdateLogisticsRequest{
		ShippedDate: strPtr("2026-06-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", dateOf(t, updated.OrderedDate))
	assert.Equal(t, "2026-06-15", dateOf(t, updated.ShippedDate))

	result, err := svc.BulkUpdateLogistics(BulkUpdateLogisticsRequest{
		OrderIDs: orders,
		UpdateLogisticsRequest: UpdateLogisticsRequest{
			ShippingNotes: strPtr("Air freight"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	for _, l := range result.Results {
		assert.Equal(t, "Air freight", l.ShippingNotes)
	}

	all, err := svc.GetAllLogistics()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUploads(t *testing.T) {
	svc, _ := newTestService()
	orders := seedOrders(t, svc, 1)

	_, err := svc.CreateUpload(CreateUploadRequest{
		OrderID: uintPtr(77),
		Name:    "invoice.pdf",
		URL:     "/files/invoice.pdf",
	})
	assertAppError(t, err, BadRequestAppError)

	upload, err := svc.CreateUpload(CreateUploadRequest{
		OrderID: uintPtr(orders[0]),
		Name:    "invoice.pdf",
		URL:     "/files/invoice.pdf",
	})
	require.NoError(t, err)

	byOrder, err := svc.GetUploadsByOrder(orders[0])
	require.NoError(t, err)
	require.Len(t, byOrder, 1)
	assert.Equal(t, upload.UploadID, byOrder[0].UploadID)

	updated, err := svc.UpdateUpload(upload.UploadID, UpdateUploadRequest{
		Name: strPtr("invoice-v2.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice-v2.pdf", updated.Name)

	require.NoError(t, svc.DeleteUpload(upload.UploadID))
	_, err = svc.GetUploadByID(upload.UploadID)
	assertAppError(t, err, NotFoundAppError)
}
