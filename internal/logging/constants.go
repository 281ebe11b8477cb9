package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile          = "file_path"
	FieldFormat        = "format"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldPayee         = "payee"
	FieldKind          = "kind"
	FieldAmount        = "amount"
	FieldMonth         = "month"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldCount         = "count"
)
