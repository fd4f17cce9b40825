package domain

import "fmt"

// Enum is implemented by the closed value sets below. Values serialize as
// their display string and are parsed back strictly.
type Enum interface {
	fmt.Stringer
	Valid() bool
}

type PropertyType uint8

const (
	TypeResidential PropertyType = iota + 1
	TypeCommercial
	TypeLand
	TypeIndustrial
)

var propertyTypeNames = []string{"", "Residential", "Commercial", "Land", "Industrial"}

func (t PropertyType) Valid() bool { return t >= TypeResidential && t <= TypeIndustrial }

func (t PropertyType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("PropertyType(%d)", uint8(t))
	}
	return propertyTypeNames[t]
}

func ParsePropertyType(s string) (PropertyType, error) {
	i, ok := lookup(propertyTypeNames, s)
	if !ok {
		return 0, invalid("property_type", s, "must be one of Residential, Commercial, Land, Industrial")
	}
	return PropertyType(i), nil
}

func (t PropertyType) MarshalText() ([]byte, error) { return marshalEnum("property_type", t) }

func (t *PropertyType) UnmarshalText(b []byte) error {
	v, err := ParsePropertyType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type PropertyStatus uint8

const (
	StatusForSale PropertyStatus = iota + 1
	StatusForRent
	StatusSold
	StatusRented
	StatusPending
)

var propertyStatusNames = []string{"", "For Sale", "For Rent", "Sold", "Rented", "Pending"}

func (s PropertyStatus) Valid() bool { return s >= StatusForSale && s <= StatusPending }

func (s PropertyStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("PropertyStatus(%d)", uint8(s))
	}
	return propertyStatusNames[s]
}

// Available reports whether a listing can still be offered to buyers.
func (s PropertyStatus) Available() bool { return s == StatusForSale || s == StatusPending }

func ParsePropertyStatus(s string) (PropertyStatus, error) {
	i, ok := lookup(propertyStatusNames, s)
	if !ok {
		return 0, invalid("status", s, "must be one of For Sale, For Rent, Sold, Rented, Pending")
	}
	return PropertyStatus(i), nil
}

func (s PropertyStatus) MarshalText() ([]byte, error) { return marshalEnum("status", s) }

func (s *PropertyStatus) UnmarshalText(b []byte) error {
	v, err := ParsePropertyStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type ClientType uint8

const (
	ClientBuyer ClientType = iota + 1
	ClientSeller
	ClientTenant
	ClientLandlord
)

var clientTypeNames = []string{"", "Buyer", "Seller", "Tenant", "Landlord"}

func (c ClientType) Valid() bool { return c >= ClientBuyer && c <= ClientLandlord }

func (c ClientType) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ClientType(%d)", uint8(c))
	}
	return clientTypeNames[c]
}

func ParseClientType(s string) (ClientType, error) {
	i, ok := lookup(clientTypeNames, s)
	if !ok {
		return 0, invalid("client_type", s, "must be one of Buyer, Seller, Tenant, Landlord")
	}
	return ClientType(i), nil
}

func (c ClientType) MarshalText() ([]byte, error) { return marshalEnum("client_type", c) }

func (c *ClientType) UnmarshalText(b []byte) error {
	v, err := ParseClientType(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

type TransactionType uint8

const (
	TxnSale TransactionType = iota + 1
	TxnRent
)

var transactionTypeNames = []string{"", "Sale", "Rent"}

func (t TransactionType) Valid() bool { return t == TxnSale || t == TxnRent }

func (t TransactionType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TransactionType(%d)", uint8(t))
	}
	return transactionTypeNames[t]
}

func ParseTransactionType(s string) (TransactionType, error) {
	i, ok := lookup(transactionTypeNames, s)
	if !ok {
		return 0, invalid("transaction_type", s, "must be one of Sale, Rent")
	}
	return TransactionType(i), nil
}

func (t TransactionType) MarshalText() ([]byte, error) { return marshalEnum("transaction_type", t) }

func (t *TransactionType) UnmarshalText(b []byte) error {
	v, err := ParseTransactionType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type TransactionStatus uint8

const (
	TxnCompleted TransactionStatus = iota + 1
	TxnPending
	TxnCancelled
)

var transactionStatusNames = []string{"", "Completed", "Pending", "Cancelled"}

func (s TransactionStatus) Valid() bool { return s >= TxnCompleted && s <= TxnCancelled }

func (s TransactionStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("TransactionStatus(%d)", uint8(s))
	}
	return transactionStatusNames[s]
}

func ParseTransactionStatus(s string) (TransactionStatus, error) {
	i, ok := lookup(transactionStatusNames, s)
	if !ok {
		return 0, invalid("transaction_status", s, "must be one of Completed, Pending, Cancelled")
	}
	return TransactionStatus(i), nil
}

func (s TransactionStatus) MarshalText() ([]byte, error) { return marshalEnum("transaction_status", s) }

func (s *TransactionStatus) UnmarshalText(b []byte) error {
	v, err := ParseTransactionStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func lookup(names []string, s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i, name := range names {
		if name == s {
			return i, true
		}
	}
	return 0, false
}

func marshalEnum(field string, e Enum) ([]byte, error) {
	if !e.Valid() {
		return nil, invalid(field, e.String(), "not a defined value")
	}
	return []byte(e.String()), nil
}
