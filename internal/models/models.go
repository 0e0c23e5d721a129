package models

// UserRole - who is behind the till
type UserRole string

const (
	RoleAdmin     UserRole = "ADMIN"
	RoleCashier   UserRole = "CASHIER"
	RoleWarehouse UserRole = "WAREHOUSE"
)

// PaymentMethod - how the customer settles the bill
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentWallet   PaymentMethod = "WALLET"
	PaymentDebt     PaymentMethod = "DEBT" // store credit, booked as customer debt
)

// PaymentStatus of an order after (or long after) checkout
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "PAID"
	StatusUnpaid  PaymentStatus = "UNPAID"
	StatusPartial PaymentStatus = "PARTIAL"
)

// OrderStatus - only COMPLETED is ever produced by checkout
type OrderStatus string

const (
	OrderCompleted OrderStatus = "COMPLETED"
	OrderDraft     OrderStatus = "DRAFT"
	OrderCancelled OrderStatus = "CANCELLED"
)

// MovementType of an inventory ledger entry
type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

// Product - The Inventory
type Product struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Supplier  string  `json:"supplier,omitempty"`
	SalePrice float64 `json:"salePrice"`
	CostAvg   float64 `json:"costAvg"`
	Stock     int     `json:"stock"`
	MinStock  int     `json:"minStock"`
	Active    bool    `json:"active"`
}

// Customer with running aggregates. Phone is the natural POS lookup key.
type Customer struct {
	ID            string  `json:"id"`
	Phone         string  `json:"phone"`
	Name          string  `json:"name"`
	Group         string  `json:"group"` // retail / VIP / wholesale label
	Address       string  `json:"address"`
	Debt          float64 `json:"debt"`
	TotalOrders   int     `json:"totalOrders"`
	TotalSpent    float64 `json:"totalSpent"`
	LastOrderDate string  `json:"lastOrderDate,omitempty"`
}

// OrderItem - one cart line. Price and cost are snapshots taken when the
// line was added; later catalog edits never touch an in-progress sale.
type OrderItem struct {
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Qty          int     `json:"qty"`
	Price        float64 `json:"price"`
	DiscountLine float64 `json:"discountLine"`
	CostAtSale   float64 `json:"costAtSale"`
	LineTotal    float64 `json:"lineTotal"`
	LineProfit   float64 `json:"lineProfit"`
}

// Order - The Transaction Header
type Order struct {
	ID            string        `json:"id"`
	Date          string        `json:"date"` // YYYY-MM-DD HH:mm:ss
	CustomerID    string        `json:"customerId"`
	CustomerName  string        `json:"customerName"`
	Subtotal      float64       `json:"subtotal"`
	DiscountOrder float64       `json:"discountOrder"`
	ShipFee       float64       `json:"shipFee"`
	VAT           float64       `json:"vat"`
	Total         float64       `json:"total"`
	Revenue       float64       `json:"revenue"`
	COGS          float64       `json:"cogs"`
	Profit        float64       `json:"profit"`
	Margin        float64       `json:"margin"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaidAmount    float64       `json:"paidAmount"`
	Status        OrderStatus   `json:"status"`
	Items         []OrderItem   `json:"items"`
	CashReceived  float64       `json:"cashReceived,omitempty"`
	CashChange    float64       `json:"cashChange,omitempty"`
}

// InventoryEntry - one append-only stock movement. Every completed order
// produces one OUT entry per line; stock receipts produce IN entries.
type InventoryEntry struct {
	ID       string       `json:"id"`
	SKU      string       `json:"sku"`
	Type     MovementType `json:"type"`
	Qty      int          `json:"qty"`
	UnitCost float64      `json:"unitCost"`
	RefID    string       `json:"refId"` // order or receipt ID
	Date     string       `json:"date"`
	Note     string       `json:"note,omitempty"`
}

// Expense - simple outgoing money record, only aggregated for tax reports
type Expense struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	VATIn    float64 `json:"vatIn"`
	Note     string  `json:"note"`
}

// UserAccount - login credentials. Password holds a bcrypt hash; plaintext
// seed passwords are hashed on first load.
type UserAccount struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	Active   bool     `json:"active"`
}

// Settings consumed by the engine and the UI
type Settings struct {
	VATRate             float64 `json:"vatRate"`
	VATEnabled          bool    `json:"vatEnabled"`
	ShipAsRevenue       bool    `json:"shipAsRevenue"`
	AllowNegativeStock  bool    `json:"allowNegativeStock"`
	HideCostFromCashier bool    `json:"hideCostFromCashier"`
	CostMethod          string  `json:"costMethod"` // AVERAGE or FIFO (FIFO declared, not modeled)
	Theme               string  `json:"theme"`
	GeminiAPIKey        string  `json:"geminiApiKey"`
	SelectedModel       string  `json:"selectedModel"`
}

// CurrentUser - the signed-in session snapshot kept inside the document
type CurrentUser struct {
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

// AppData is the whole persisted document. Every engine operation is a pure
// function from one AppData to the next, so the four-way settlement update
// is a single state swap.
type AppData struct {
	Products    []Product        `json:"products"`
	Customers   []Customer       `json:"customers"`
	Orders      []Order          `json:"orders"`
	Ledger      []InventoryEntry `json:"ledger"`
	Expenses    []Expense        `json:"expenses"`
	Accounts    []UserAccount    `json:"accounts"`
	Settings    Settings         `json:"settings"`
	CurrentUser CurrentUser      `json:"currentUser"`
}

// FindProduct returns the product with the given SKU, or nil.
func (d *AppData) FindProduct(sku string) *Product {
	for i := range d.Products {
		if d.Products[i].SKU == sku {
			return &d.Products[i]
		}
	}
	return nil
}

// FindCustomer returns the customer with the given ID, or nil.
func (d *AppData) FindCustomer(id string) *Customer {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return &d.Customers[i]
		}
	}
	return nil
}

// FindCustomerByPhone matches on the POS natural key.
func (d *AppData) FindCustomerByPhone(phone string) *Customer {
	for i := range d.Customers {
		if d.Customers[i].Phone == phone {
			return &d.Customers[i]
		}
	}
	return nil
}

// FindOrder returns the order with the given ID, or nil.
func (d *AppData) FindOrder(id string) *Order {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return &d.Orders[i]
		}
	}
	return nil
}
