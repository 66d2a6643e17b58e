package domain

const (
	minNameLen  = 3
	minPhoneLen = 7
	maxPhoneLen = 15
	minTitleLen = 1
)

// ClientPayload — входные данные для создания клиента.
type ClientPayload struct {
	Name  string
	Email string
	Phone string
}

// Validate проверяет структуру payload до любой мутации хранилища.
func (p ClientPayload) Validate() error {
	return validateContact("client", p.Name, p.Phone)
}

// SupplierPayload — входные данные для создания поставщика.
type SupplierPayload struct {
	Name           string
	Email          string
	Phone          string
	PreferredItems []string
}

// Validate проверяет структуру payload до любой мутации хранилища.
func (p SupplierPayload) Validate() error {
	return validateContact("supplier", p.Name, p.Phone)
}

// OrderPayload — входные данные для создания и обновления заказа.
type OrderPayload struct {
	Title    string
	ClientID uint64
	// SupplierID учитывается только при обновлении: новый заказ всегда создаётся без поставщика.
	SupplierID *uint64
	ItemTypes  []string
	Products   map[string]uint64
}

// Validate проверяет структуру payload до любой мутации хранилища.
func (p OrderPayload) Validate() error {
	if len(p.Title) < minTitleLen {
		return InvalidPayloadf("order title must not be empty")
	}
	return nil
}

func validateContact(kind, name, phone string) error {
	if len(name) < minNameLen {
		return InvalidPayloadf("%s name must be at least %d characters", kind, minNameLen)
	}
	if len(phone) < minPhoneLen || len(phone) > maxPhoneLen {
		return InvalidPayloadf("%s phone must be between %d and %d characters", kind, minPhoneLen, maxPhoneLen)
	}
	return nil
}
