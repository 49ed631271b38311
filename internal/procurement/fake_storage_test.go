package procurement

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// fakeStorage keeps everything in maps and mimics the constraint behavior of
// the real storage: record-not-found and duplicated-key errors come back as
// the gorm sentinels the service layer matches on.
type fakeStorage struct {
	nextID uint

	categories  map[uint]*Category
	vendors     map[uint]*Vendor
	customers   map[uint]*Customer
	addresses   map[uint]*Address
	items       map[uint]*Item
	orders      map[uint]*Order
	plannings   map[uint]*OrderPlanning
	productions map[uint]*OrderProduction
	logistics   map[uint]*OrderLogistics
	uploads     map[uint]*Upload
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		categories:  make(map[uint]*Category),
		vendors:     make(map[uint]*Vendor),
		customers:   make(map[uint]*Customer),
		addresses:   make(map[uint]*Address),
		items:       make(map[uint]*Item),
		orders:      make(map[uint]*Order),
		plannings:   make(map[uint]*OrderPlanning),
		productions: make(map[uint]*OrderProduction),
		logistics:   make(map[uint]*OrderLogistics),
		uploads:     make(map[uint]*Upload),
	}
}

func newTestService() (Service, *fakeStorage) {
	storage := newFakeStorage()
	log := logrus.NewEntry(logrus.New())
	log.Logger.SetLevel(logrus.PanicLevel)
	return NewService(storage, log), storage
}

func (f *fakeStorage) id() uint {
	f.nextID++
	return f.nextID
}

func deletedNow() gorm.DeletedAt {
	return gorm.DeletedAt{Time: time.Now(), Valid: true}
}

// Categories

func (f *fakeStorage) CreateCategory(category *Category) error {
	for _, c := range f.categories {
		if !c.DeletedAt.Valid && strings.EqualFold(c.Name, category.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	category.CategoryID = f.id()
	f.categories[category.CategoryID] = category
	return nil
}

func (f *fakeStorage) GetCategories() ([]Category, error) {
	var out []Category
	for _, c := range f.categories {
		if !c.DeletedAt.Valid {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetCategoryByID(id uint) (*Category, error) {
	c, ok := f.categories[id]
	if !ok || c.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeStorage) GetCategoryByIDUnscoped(id uint) (*Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeStorage) UpdateCategory(category *Category) error {
	for _, c := range f.categories {
		if c.CategoryID != category.CategoryID && !c.DeletedAt.Valid &&
			strings.EqualFold(c.Name, category.Name) {
			return gorm.ErrDuplicatedKey
		}
	}
	f.categories[category.CategoryID] = category
	return nil
}

func (f *fakeStorage) DeleteCategory(id uint) error {
	if c, ok := f.categories[id]; ok {
		c.DeletedAt = deletedNow()
	}
	return nil
}

func (f *fakeStorage) RestoreCategory(id uint) error {
	if c, ok := f.categories[id]; ok {
		c.DeletedAt = gorm.DeletedAt{}
	}
	return nil
}

func (f *fakeStorage) CountItemsByCategory(categoryID uint) (int64, error) {
	var count int64
	for _, it := range f.items {
		if !it.DeletedAt.Valid && it.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// Vendors

func (f *fakeStorage) CreateVendor(vendor *Vendor) error {
	for _, v := range f.vendors {
		if !v.DeletedAt.Valid && strings.EqualFold(v.VendorName, vendor.VendorName) {
			return gorm.ErrDuplicatedKey
		}
	}
	vendor.VendorID = f.id()
	f.vendors[vendor.VendorID] = vendor
	return nil
}

func (f *fakeStorage) GetVendors() ([]Vendor, error) {
	var out []Vendor
	for _, v := range f.vendors {
		if !v.DeletedAt.Valid {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetVendorByID(id uint) (*Vendor, error) {
	v, ok := f.vendors[id]
	if !ok || v.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeStorage) GetVendorByIDUnscoped(id uint) (*Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (f *fakeStorage) UpdateVendor(vendor *Vendor) error {
	f.vendors[vendor.VendorID] = vendor
	return nil
}

func (f *fakeStorage) DeleteVendor(id uint) error {
	if v, ok := f.vendors[id]; ok {
		v.DeletedAt = deletedNow()
	}
	return nil
}

func (f *fakeStorage) RestoreVendor(id uint) error {
	if v, ok := f.vendors[id]; ok {
		v.DeletedAt = gorm.DeletedAt{}
	}
	return nil
}

// Customers

func (f *fakeStorage) CreateCustomer(customer *Customer) error {
	customer.CustomerID = f.id()
	f.customers[customer.CustomerID] = customer
	return nil
}

func (f *fakeStorage) GetCustomers() ([]Customer, error) {
	var out []Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeStorage) GetCustomerByID(id uint) (*Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeStorage) UpdateCustomer(customer *Customer) error {
	f.customers[customer.CustomerID] = customer
	return nil
}

func (f *fakeStorage) DeleteCustomer(id uint) error {
	delete(f.customers, id)
	return nil
}

// Addresses

func (f *fakeStorage) CreateAddress(address *Address) error {
	address.AddressID = f.id()
	f.addresses[address.AddressID] = address
	return nil
}

func (f *fakeStorage) GetAddresses() ([]Address, error) {
	var out []Address
	for _, a := range f.addresses {
		if !a.DeletedAt.Valid {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetAddressByID(id uint) (*Address, error) {
	a, ok := f.addresses[id]
	if !ok || a.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (f *fakeStorage) GetAddressesByOwner(owner Owner) ([]Address, error) {
	var out []Address
	for _, a := range f.addresses {
		if !a.DeletedAt.Valid && a.Type == owner.Type && a.ReferenceID == owner.ID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateAddress(address *Address) error {
	f.addresses[address.AddressID] = address
	return nil
}

func (f *fakeStorage) DeleteAddress(id uint) error {
	if a, ok := f.addresses[id]; ok {
		a.DeletedAt = deletedNow()
	}
	return nil
}

// Items

func (f *fakeStorage) CreateItem(item *Item) error {
	for _, it := range f.items {
		if !it.DeletedAt.Valid && it.SpecNo == item.SpecNo {
			return gorm.ErrDuplicatedKey
		}
	}
	item.ItemID = f.id()
	f.items[item.ItemID] = item
	return nil
}

func (f *fakeStorage) GetItems() ([]Item, error) {
	var out []Item
	for _, it := range f.items {
		if !it.DeletedAt.Valid {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetItemByID(id uint) (*Item, error) {
	it, ok := f.items[id]
	if !ok || it.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (f *fakeStorage) GetItemByIDUnscoped(id uint) (*Item, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (f *fakeStorage) GetItemBySpecNo(specNo string) (*Item, error) {
	for _, it := range f.items {
		if !it.DeletedAt.Valid && it.SpecNo == specNo {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStorage) GetItemsByCategory(categoryID uint) ([]Item, error) {
	var out []Item
	for _, it := range f.items {
		if !it.DeletedAt.Valid && it.CategoryID == categoryID {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetItemsByIDs(ids []uint) ([]Item, error) {
	var out []Item
	for _, id := range ids {
		if it, ok := f.items[id]; ok && !it.DeletedAt.Valid {
			out = append(out, *it)
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateItem(item *Item) error {
	f.items[item.ItemID] = item
	return nil
}

func (f *fakeStorage) UpdateItems(ids []uint, attrs map[string]interface{}) (int64, error) {
	var updated int64
	for _, id := range ids {
		it, ok := f.items[id]
		if !ok || it.DeletedAt.Valid {
			continue
		}
		if v, ok := attrs["category_id"]; ok {
			it.CategoryID = v.(uint)
		}
		if v, ok := attrs["location"]; ok {
			it.Location = v.(string)
		}
		if v, ok := attrs["ship_from"]; ok {
			it.ShipFrom = v.(string)
		}
		if v, ok := attrs["notes"]; ok {
			it.Notes = v.(string)
		}
		updated++
	}
	return updated, nil
}

func (f *fakeStorage) DeleteItem(id uint) error {
	if it, ok := f.items[id]; ok {
		it.DeletedAt = deletedNow()
	}
	return nil
}

func (f *fakeStorage) RestoreItem(id uint) error {
	if it, ok := f.items[id]; ok {
		it.DeletedAt = gorm.DeletedAt{}
	}
	return nil
}

// Orders

func (f *fakeStorage) CreateOrder(order *Order) error {
	order.OrderID = f.id()
	f.orders[order.OrderID] = order
	return nil
}

func (f *fakeStorage) GetOrders() ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if !o.DeletedAt.Valid {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetOrderByID(id uint) (*Order, error) {
	o, ok := f.orders[id]
	if !ok || o.DeletedAt.Valid {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeStorage) GetOrderByIDUnscoped(id uint) (*Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeStorage) GetOrdersByItem(itemID uint) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if !o.DeletedAt.Valid && o.ItemID == itemID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetOrdersByVendor(vendorID uint) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if !o.DeletedAt.Valid && o.VendorID != nil && *o.VendorID == vendorID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetOrdersByCustomer(customerID uint) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if !o.DeletedAt.Valid && o.CustomerID != nil && *o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetOrdersByPhase(phase int) ([]Order, error) {
	var out []Order
	for _, o := range f.orders {
		if !o.DeletedAt.Valid && o.Phase == phase {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeStorage) GetOrdersByIDs(ids []uint) ([]Order, error) {
	var out []Order
	for _, id := range ids {
		if o, ok := f.orders[id]; ok && !o.DeletedAt.Valid {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeStorage) matchesFilter(o *Order, filter OrderFilter) bool {
	item, hasItem := f.items[o.ItemID]
	if !hasItem || item.DeletedAt.Valid {
		return false
	}
	if filter.Phase != nil && o.Phase != *filter.Phase {
		return false
	}
	if filter.VendorID != nil && (o.VendorID == nil || *o.VendorID != *filter.VendorID) {
		return false
	}
	if filter.CustomerID != nil && (o.CustomerID == nil || *o.CustomerID != *filter.CustomerID) {
		return false
	}
	if filter.ItemID != nil && o.ItemID != *filter.ItemID {
		return false
	}
	if filter.CategoryID != nil && item.CategoryID != *filter.CategoryID {
		return false
	}
	if filter.MinPrice != nil && o.TotalPrice < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && o.TotalPrice > *filter.MaxPrice {
		return false
	}
	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}
	if filter.Search != "" {
		return contains(item.ItemName, filter.Search) || contains(item.SpecNo, filter.Search)
	}
	if filter.ItemName != "" && !contains(item.ItemName, filter.ItemName) {
		return false
	}
	if filter.SpecNo != "" && !contains(item.SpecNo, filter.SpecNo) {
		return false
	}
	return true
}

func (f *fakeStorage) SearchOrders(filter OrderFilter, offset, limit int) ([]Order, int64, error) {
	var matched []Order
	for id := uint(1); id <= f.nextID; id++ {
		o, ok := f.orders[id]
		if !ok || o.DeletedAt.Valid {
			continue
		}
		if f.matchesFilter(o, filter) {
			matched = append(matched, *o)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (f *fakeStorage) UpdateOrder(order *Order) error {
	f.orders[order.OrderID] = order
	return nil
}

func (f *fakeStorage) DeleteOrder(id uint) error {
	if o, ok := f.orders[id]; ok {
		o.DeletedAt = deletedNow()
	}
	return nil
}

func (f *fakeStorage) RestoreOrder(id uint) error {
	if o, ok := f.orders[id]; ok {
		o.DeletedAt = gorm.DeletedAt{}
	}
	return nil
}

// Lifecycle records

func (f *fakeStorage) CreatePlanning(planning *OrderPlanning) error {
	for _, p := range f.plannings {
		if p.OrderID == planning.OrderID {
			return gorm.ErrDuplicatedKey
		}
	}
	planning.PlanningID = f.id()
	f.plannings[planning.PlanningID] = planning
	return nil
}

func (f *fakeStorage) GetPlannings() ([]OrderPlanning, error) {
	var out []OrderPlanning
	for _, p := range f.plannings {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStorage) GetPlanningByID(id uint) (*OrderPlanning, error) {
	p, ok := f.plannings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeStorage) GetPlanningByOrder(orderID uint) (*OrderPlanning, error) {
	for _, p := range f.plannings {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStorage) GetPlanningsByOrders(orderIDs []uint) ([]OrderPlanning, error) {
	var out []OrderPlanning
	for _, orderID := range orderIDs {
		for _, p := range f.plannings {
			if p.OrderID == orderID {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdatePlanning(planning *OrderPlanning) error {
	f.plannings[planning.PlanningID] = planning
	return nil
}

func (f *fakeStorage) UpsertPlannings(rows []OrderPlanning, updateColumns []string) error {
	cols := make(map[string]bool, len(updateColumns))
	for _, c := range updateColumns {
		cols[c] = true
	}
	for i := range rows {
		row := rows[i]
		existing, err := f.GetPlanningByOrder(row.OrderID)
		if err != nil {
			row.PlanningID = f.id()
			f.plannings[row.PlanningID] = &row
			continue
		}
		if cols["sample_approved_date"] {
			existing.SampleApprovedDate = row.SampleApprovedDate
		}
		if cols["pi_send_date"] {
			existing.PiSendDate = row.PiSendDate
		}
		if cols["pi_approved_date"] {
			existing.PiApprovedDate = row.PiApprovedDate
		}
		if cols["initial_payment_date"] {
			existing.InitialPaymentDate = row.InitialPaymentDate
		}
	}
	return nil
}

func (f *fakeStorage) DeletePlanning(id uint) error {
	delete(f.plannings, id)
	return nil
}

func (f *fakeStorage) CreateProduction(production *OrderProduction) error {
	for _, p := range f.productions {
		if p.OrderID == production.OrderID {
			return gorm.ErrDuplicatedKey
		}
	}
	production.ProductionID = f.id()
	f.productions[production.ProductionID] = production
	return nil
}

func (f *fakeStorage) GetProductions() ([]OrderProduction, error) {
	var out []OrderProduction
	for _, p := range f.productions {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStorage) GetProductionByID(id uint) (*OrderProduction, error) {
	p, ok := f.productions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (f *fakeStorage) GetProductionByOrder(orderID uint) (*OrderProduction, error) {
	for _, p := range f.productions {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStorage) GetProductionsByOrders(orderIDs []uint) ([]OrderProduction, error) {
	var out []OrderProduction
	for _, orderID := range orderIDs {
		for _, p := range f.productions {
			if p.OrderID == orderID {
				out = append(out, *p)
			}
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateProduction(production *OrderProduction) error {
	f.productions[production.ProductionID] = production
	return nil
}

func (f *fakeStorage) UpsertProductions(rows []OrderProduction, updateColumns []string) error {
	cols := make(map[string]bool, len(updateColumns))
	for _, c := range updateColumns {
		cols[c] = true
	}
	for i := range rows {
		row := rows[i]
		existing, err := f.GetProductionByOrder(row.OrderID)
		if err != nil {
			row.ProductionID = f.id()
			f.productions[row.ProductionID] = &row
			continue
		}
		if cols["cfa_shops_send"] {
			existing.CfaShopsSend = row.CfaShopsSend
		}
		if cols["cfa_shops_approved"] {
			existing.CfaShopsApproved = row.CfaShopsApproved
		}
		if cols["cfa_shops_delivered"] {
			existing.CfaShopsDelivered = row.CfaShopsDelivered
		}
	}
	return nil
}

func (f *fakeStorage) DeleteProduction(id uint) error {
	delete(f.productions, id)
	return nil
}

func (f *fakeStorage) CreateLogistics(logistics *OrderLogistics) error {
	for _, l := range f.logistics {
		if l.OrderID == logistics.OrderID {
			return gorm.ErrDuplicatedKey
		}
	}
	logistics.LogisticsID = f.id()
	f.logistics[logistics.LogisticsID] = logistics
	return nil
}

func (f *fakeStorage) GetLogistics() ([]OrderLogistics, error) {
	var out []OrderLogistics
	for _, l := range f.logistics {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeStorage) GetLogisticsByID(id uint) (*OrderLogistics, error) {
	l, ok := f.logistics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (f *fakeStorage) GetLogisticsByOrder(orderID uint) (*OrderLogistics, error) {
	for _, l := range f.logistics {
		if l.OrderID == orderID {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStorage) GetLogisticsByOrders(orderIDs []uint) ([]OrderLogistics, error) {
	var out []OrderLogistics
	for _, orderID := range orderIDs {
		for _, l := range f.logistics {
			if l.OrderID == orderID {
				out = append(out, *l)
			}
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateLogistics(logistics *OrderLogistics) error {
	f.logistics[logistics.LogisticsID] = logistics
	return nil
}

func (f *fakeStorage) UpsertLogistics(rows []OrderLogistics, updateColumns []string) error {
	cols := make(map[string]bool, len(updateColumns))
	for _, c := range updateColumns {
		cols[c] = true
	}
	for i := range rows {
		row := rows[i]
		existing, err := f.GetLogisticsByOrder(row.OrderID)
		if err != nil {
			row.LogisticsID = f.id()
			f.logistics[row.LogisticsID] = &row
			continue
		}
		if cols["ordered_date"] {
			existing.OrderedDate = row.OrderedDate
		}
		if cols["shipped_date"] {
			existing.ShippedDate = row.ShippedDate
		}
		if cols["delivered_date"] {
			existing.DeliveredDate = row.DeliveredDate
		}
		if cols["shipping_notes"] {
			existing.ShippingNotes = row.ShippingNotes
		}
	}
	return nil
}

func (f *fakeStorage) DeleteLogistics(id uint) error {
	delete(f.logistics, id)
	return nil
}

// Uploads

func (f *fakeStorage) CreateUpload(upload *Upload) error {
	upload.UploadID = f.id()
	f.uploads[upload.UploadID] = upload
	return nil
}

func (f *fakeStorage) GetUploads() ([]Upload, error) {
	var out []Upload
	for _, u := range f.uploads {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeStorage) GetUploadByID(id uint) (*Upload, error) {
	u, ok := f.uploads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeStorage) GetUploadsByOrder(orderID uint) ([]Upload, error) {
	var out []Upload
	for _, u := range f.uploads {
		if u.OrderID != nil && *u.OrderID == orderID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeStorage) UpdateUpload(upload *Upload) error {
	f.uploads[upload.UploadID] = upload
	return nil
}

func (f *fakeStorage) DeleteUpload(id uint) error {
	delete(f.uploads, id)
	return nil
}
