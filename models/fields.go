package models

// FieldKind cho finder biết cách so sánh value với cột
type FieldKind int

const (
	FieldNumeric FieldKind = iota
	FieldText
	FieldTimestamp
)

// Field ánh xạ một cột tìm kiếm được sang kiểu so sánh của nó
type Field struct {
	Name string
	Kind FieldKind
}

// Registry finder cho từng entity. Chỉ các cột liệt kê ở đây mới tìm kiếm
// được; thứ tự trong registry quyết định query key nào thắng khi caller gửi
// nhiều key cùng lúc.
var (
	CustomerFields = []Field{
		{"id", FieldNumeric},
		{"first_name", FieldText},
		{"last_name", FieldText},
		{"created_at", FieldTimestamp},
		{"updated_at", FieldTimestamp},
	}

	MerchantFields = []Field{
		{"id", FieldNumeric},
		{"name", FieldText},
		{"created_at", FieldTimestamp},
		{"updated_at", FieldTimestamp},
	}

	ItemFields = []Field{
		{"id", FieldNumeric},
		{"name", FieldText},
		{"description", FieldText},
		{"unit_price", FieldNumeric},
		{"merchant_id", FieldNumeric},
		{"created_at", FieldTimestamp},
		{"updated_at", FieldTimestamp},
	}

	InvoiceFields = []Field{
		{"id", FieldNumeric},
		{"status", FieldText},
		{"customer_id", FieldNumeric},
		{"merchant_id", FieldNumeric},
		{"created_at", FieldTimestamp},
		{"updated_at", FieldTimestamp},
	}

	InvoiceItemFields = []Field{
		{"id", FieldNumeric},
		{"invoice_id", FieldNumeric},
		{"item_id", FieldNumeric},
		{"quantity", FieldNumeric},
		{"unit_price", FieldNumeric},
		{"created_at", FieldTimestamp},
		{"updated_at", FieldTimestamp},
	}

	TransactionFields = []Field{
		{"id", FieldNumeric},
		{"invoice_id", FieldNumeric},
		{"result", FieldText},
		{"created_at", FieldTimestamp},
		{"updated_at", FieldTimestamp},
	}
)
