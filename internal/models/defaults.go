package models

// DefaultData is the document a fresh install starts from. Seed account
// passwords are plaintext here and get bcrypt-hashed by the store on first
// load.
func DefaultData() AppData {
	return AppData{
		Products: []Product{
			{SKU: "SP001", Name: "Basic Cotton T-Shirt", Category: "Apparel", Supplier: "Viet Tien Garment", SalePrice: 150000, CostAvg: 80000, Stock: 50, MinStock: 10, Active: true},
			{SKU: "SP002", Name: "Slimfit Jeans", Category: "Apparel", Supplier: "Viet Tien Garment", SalePrice: 350000, CostAvg: 200000, Stock: 5, MinStock: 10, Active: true},
			{SKU: "SP003", Name: "White Sneakers", Category: "Footwear", Supplier: "HN Shoe Wholesale", SalePrice: 550000, CostAvg: 320000, Stock: 15, MinStock: 5, Active: true},
			{SKU: "SP004", Name: "NY Baseball Cap", Category: "Accessories", Supplier: "D5 Accessory Depot", SalePrice: 120000, CostAvg: 45000, Stock: 0, MinStock: 5, Active: true},
			{SKU: "SP005", Name: "Crew Socks (3-pack)", Category: "Accessories", Supplier: "D5 Accessory Depot", SalePrice: 45000, CostAvg: 15000, Stock: 100, MinStock: 20, Active: true},
		},
		Customers: []Customer{
			{ID: "KH001", Phone: "0901234567", Name: "Nguyen Van A", Group: "VIP", Address: "District 1, HCMC", Debt: 0, TotalOrders: 12, TotalSpent: 5400000, LastOrderDate: "2024-02-20"},
			{ID: "KH002", Phone: "0912345678", Name: "Tran Thi B", Group: "Retail", Address: "District 7, HCMC", Debt: 150000, TotalOrders: 2, TotalSpent: 850000, LastOrderDate: "2024-02-15"},
			{ID: "KH003", Phone: "0987654321", Name: "Le Van C", Group: "Wholesale", Address: "Binh Duong", Debt: 0, TotalOrders: 5, TotalSpent: 15200000, LastOrderDate: "2024-02-22"},
		},
		Orders: []Order{},
		Ledger: []InventoryEntry{},
		Expenses: []Expense{
			{ID: "CP001", Date: "2024-02-01", Category: "Rent", Amount: 5000000, VATIn: 0, Note: "February rent"},
			{ID: "CP002", Date: "2024-02-05", Category: "Marketing", Amount: 2000000, VATIn: 200000, Note: "FB ads"},
		},
		Accounts: []UserAccount{
			{ID: "ACC001", Username: "admin", Password: "admin123", Name: "Administrator", Role: RoleAdmin, Active: true},
			{ID: "ACC002", Username: "cashier", Password: "cashier123", Name: "Cashier", Role: RoleCashier, Active: true},
			{ID: "ACC003", Username: "warehouse", Password: "warehouse123", Name: "Stock Keeper", Role: RoleWarehouse, Active: true},
		},
		Settings: Settings{
			VATRate:             10,
			VATEnabled:          true,
			ShipAsRevenue:       true,
			AllowNegativeStock:  false,
			HideCostFromCashier: true,
			CostMethod:          "AVERAGE",
			Theme:               "light",
			GeminiAPIKey:        "",
			SelectedModel:       "gemini-2.0-flash-001",
		},
		CurrentUser: CurrentUser{Name: "Admin", Role: RoleAdmin},
	}
}
