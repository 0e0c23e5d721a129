package engine

// ValidationError is the structured, user-displayable failure the engine
// returns for expected business conditions. It never represents a crash:
// callers show Message to the user and leave state untouched.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Well-known validation codes
const (
	CodeOutOfStock        = "OUT_OF_STOCK"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeEmptyCart         = "EMPTY_CART"
	CodeNoCustomer        = "NO_CUSTOMER"
	CodeUnknownOrder      = "UNKNOWN_ORDER"
	CodeUnknownProduct    = "UNKNOWN_PRODUCT"
	CodeBadQuantity       = "BAD_QUANTITY"
)

func validationErr(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}
