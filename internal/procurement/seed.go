package procurement

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDemoData loads a small demo catalog. It is a no-op when the catalog
// already has categories, so running with -seed twice is safe.
func SeedDemoData(db *gorm.DB, log *logrus.Entry) error {
	var count int64
	if err := db.Model(&Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("seed skipped, catalog is not empty")
		return nil
	}

	categories := []Category{
		{Name: "Furniture"},
		{Name: "Lighting"},
		{Name: "Decor"},
		{Name: "Textiles"},
		{Name: "Artwork"},
		{Name: "Office Equipment"},
		{Name: "Kitchen & Dining"},
		{Name: "Outdoor"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	categoryID := make(map[string]uint, len(categories))
	for _, c := range categories {
		categoryID[c.Name] = c.CategoryID
	}

	vendors := []Vendor{
		{VendorName: "ACME Corporation"},
		{VendorName: "Global Furniture Ltd"},
		{VendorName: "Premium Decor Inc"},
		{VendorName: "Modern Living Co"},
		{VendorName: "Classic Interiors"},
		{VendorName: "Urban Design Group"},
	}
	if err := db.Create(&vendors).Error; err != nil {
		return err
	}
	vendorID := make(map[string]uint, len(vendors))
	for _, v := range vendors {
		vendorID[v.VendorName] = v.VendorID
	}

	customers := []Customer{
		{Name: "Hotel California"},
		{Name: "Grand Resort & Spa"},
		{Name: "Downtown Business Center"},
		{Name: "Luxury Suites Hotel"},
		{Name: "Seaside Inn"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	addresses := []Address{
		{Type: OwnerVendor, ReferenceID: vendorID["ACME Corporation"], Title: "Main Office", Address: "123 Business Park, New York, NY 10001"},
		{Type: OwnerVendor, ReferenceID: vendorID["ACME Corporation"], Title: "Warehouse - East Coast", Address: "456 Industrial Blvd, Newark, NJ 07102"},
		{Type: OwnerVendor, ReferenceID: vendorID["Global Furniture Ltd"], Title: "Headquarters", Address: "789 Commerce Street, Chicago, IL 60601"},
		{Type: OwnerVendor, ReferenceID: vendorID["Global Furniture Ltd"], Title: "Distribution Center", Address: "321 Logistics Way, Gary, IN 46402"},
		{Type: OwnerVendor, ReferenceID: vendorID["Premium Decor Inc"], Title: "Corporate Office", Address: "555 Design Plaza, Los Angeles, CA 90001"},
		{Type: OwnerVendor, ReferenceID: vendorID["Premium Decor Inc"], Title: "Showroom", Address: "777 Sunset Boulevard, Beverly Hills, CA 90210"},
		{Type: OwnerCustomer, ReferenceID: customers[0].CustomerID, Title: "Main", Address: "1 Beach Road, Los Angeles, CA 90001"},
		{Type: OwnerCustomer, ReferenceID: customers[1].CustomerID, Title: "Main", Address: "200 Ocean Drive, Miami, FL 33139"},
		{Type: OwnerCustomer, ReferenceID: customers[2].CustomerID, Title: "Main", Address: "500 5th Avenue, New York, NY 10110"},
		{Type: OwnerCustomer, ReferenceID: customers[3].CustomerID, Title: "Main", Address: "100 Park Lane, Chicago, IL 60601"},
		{Type: OwnerCustomer, ReferenceID: customers[4].CustomerID, Title: "Main", Address: "75 Coastal Highway, San Diego, CA 92101"},
	}
	if err := db.Create(&addresses).Error; err != nil {
		return err
	}

	items := []Item{
		{SpecNo: "SOFA-001", ItemName: "Premium Leather Sofa", Description: "Luxury 3-seater leather sofa", CategoryID: categoryID["Furniture"], UnitType: "each", Location: "Warehouse A, Section 1", ShipFrom: "New York Distribution Center", UnitPrice: 150000, MarkupPercentage: 20, Notes: "Handle with care"},
		{SpecNo: "CHAIR-001", ItemName: "Executive Office Chair", Description: "Ergonomic leather office chair", CategoryID: categoryID["Furniture"], UnitType: "each", Location: "Warehouse A, Section 2", ShipFrom: "Chicago Distribution Center", UnitPrice: 45000, MarkupPercentage: 25},
		{SpecNo: "TABLE-001", ItemName: "Conference Table", Description: "Oak wood conference table 8-seater", CategoryID: categoryID["Furniture"], UnitType: "each", Location: "Warehouse B, Section 1", ShipFrom: "New York Distribution Center", UnitPrice: 280000, MarkupPercentage: 15},
		{SpecNo: "LAMP-001", ItemName: "Crystal Chandelier", Description: "Modern crystal chandelier", CategoryID: categoryID["Lighting"], UnitType: "each", Location: "Warehouse C, Section 3", ShipFrom: "Los Angeles Distribution Center", UnitPrice: 95000, MarkupPercentage: 30},
		{SpecNo: "LAMP-002", ItemName: "LED Desk Lamp", Description: "Adjustable LED desk lamp", CategoryID: categoryID["Lighting"], UnitType: "each", Location: "Warehouse A, Section 4", ShipFrom: "Chicago Distribution Center", UnitPrice: 8000, MarkupPercentage: 40},
		{SpecNo: "DECOR-001", ItemName: "Modern Wall Art", Description: "Abstract canvas wall art 48x36", CategoryID: categoryID["Decor"], UnitType: "each", Location: "Warehouse B, Section 5", ShipFrom: "New York Distribution Center", UnitPrice: 35000, MarkupPercentage: 50},
		{SpecNo: "VASE-001", ItemName: "Ceramic Floor Vase", Description: "Large decorative ceramic vase", CategoryID: categoryID["Decor"], UnitType: "each", Location: "Warehouse C, Section 2", ShipFrom: "Los Angeles Distribution Center", UnitPrice: 12000, MarkupPercentage: 35},
		{SpecNo: "CURT-001", ItemName: "Blackout Curtains", Description: "Premium blackout curtains 96 inch length", CategoryID: categoryID["Textiles"], UnitType: "pair", Location: "Warehouse A, Section 6", ShipFrom: "Chicago Distribution Center", UnitPrice: 18000, MarkupPercentage: 30},
		{SpecNo: "RUG-001", ItemName: "Persian Area Rug", Description: "Hand-woven Persian rug 8x10", CategoryID: categoryID["Textiles"], UnitType: "each", Location: "Warehouse B, Section 3", ShipFrom: "New York Distribution Center", UnitPrice: 450000, MarkupPercentage: 20},
	}
	for i := range items {
		items[i].TotalPrice = ComputeTotalPrice(items[i].UnitPrice, items[i].MarkupPercentage, 1)
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}
	itemBySpec := make(map[string]Item, len(items))
	for _, it := range items {
		itemBySpec[it.SpecNo] = it
	}

	acme := vendorID["ACME Corporation"]
	global := vendorID["Global Furniture Ltd"]
	sofa := itemBySpec["SOFA-001"]
	chair := itemBySpec["CHAIR-001"]
	table := itemBySpec["TABLE-001"]

	orders := []Order{
		{
			ItemID:            sofa.ItemID,
			VendorID:          &acme,
			VendorAddressID:   &addresses[0].AddressID,
			CustomerID:        &customers[0].CustomerID,
			CustomerAddressID: &addresses[6].AddressID,
			Quantity:          15,
			UnitPrice:         sofa.UnitPrice,
			MarkupPercentage:  sofa.MarkupPercentage,
			Phase:             PhaseProduction,
		},
		{
			ItemID:            chair.ItemID,
			VendorID:          &acme,
			VendorAddressID:   &addresses[0].AddressID,
			CustomerID:        &customers[0].CustomerID,
			CustomerAddressID: &addresses[6].AddressID,
			Quantity:          30,
			UnitPrice:         chair.UnitPrice,
			MarkupPercentage:  chair.MarkupPercentage,
			Phase:             PhasePlanning,
		},
		{
			ItemID:            table.ItemID,
			VendorID:          &global,
			VendorAddressID:   &addresses[2].AddressID,
			CustomerID:        &customers[1].CustomerID,
			CustomerAddressID: &addresses[7].AddressID,
			Quantity:          2,
			UnitPrice:         table.UnitPrice,
			MarkupPercentage:  table.MarkupPercentage,
			Phase:             PhaseLogistics,
		},
	}
	for i := range orders {
		orders[i].TotalPrice = ComputeTotalPrice(orders[i].UnitPrice, orders[i].MarkupPercentage, orders[i].Quantity)
	}
	if err := db.Create(&orders).Error; err != nil {
		return err
	}

	date := func(s string) *time.Time {
		t, _ := time.Parse(dateLayout, s)
		return &t
	}

	plannings := []OrderPlanning{
		{OrderID: orders[0].OrderID, SampleApprovedDate: date("2026-05-04"), PiSendDate: date("2026-05-11"), PiApprovedDate: date("2026-05-18"), InitialPaymentDate: date("2026-05-25")},
		{OrderID: orders[2].OrderID, SampleApprovedDate: date("2026-03-02"), PiSendDate: date("2026-03-09"), PiApprovedDate: date("2026-03-16"), InitialPaymentDate: date("2026-03-23")},
	}
	if err := db.Create(&plannings).Error; err != nil {
		return err
	}

	productions := []OrderProduction{
		{OrderID: orders[2].OrderID, CfaShopsSend: date("2026-04-06"), CfaShopsApproved: date("2026-04-20"), CfaShopsDelivered: date("2026-05-29")},
	}
	if err := db.Create(&productions).Error; err != nil {
		return err
	}

	logistics := []OrderLogistics{
		{OrderID: orders[2].OrderID, OrderedDate: date("2026-06-01"), ShippedDate: date("2026-06-15"), ShippingNotes: "Sea freight, 2 crates"},
	}
	if err := db.Create(&logistics).Error; err != nil {
		return err
	}

	log.Infof("seeded %d categories, %d vendors, %d customers, %d items, %d orders",
		len(categories), len(vendors), len(customers), len(items), len(orders))
	return nil
}
