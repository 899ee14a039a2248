package dataset

// Gender of a synthetic customer.
type Gender int

const (
	Male Gender = iota
	Female
)

var genderLabels = [...]string{"Masculino", "Feminino"}

func (g Gender) Label() string { return genderLabels[g] }

// ContractType is the billing cadence of a customer's contract.
type ContractType int

const (
	Monthly ContractType = iota
	Yearly
	Weekly
)

var contractLabels = [...]string{"Mensal", "Anual", "Semanal"}

func (c ContractType) Label() string { return contractLabels[c] }

// ContractTypes lists every contract type in display order.
func ContractTypes() []ContractType {
	return []ContractType{Monthly, Yearly, Weekly}
}

type PaymentMethod int

const (
	CreditCard PaymentMethod = iota
	BankTransfer
	ElectronicInvoice
	PIX
)

var paymentLabels = [...]string{
	"Cartão de Crédito",
	"Transferência Bancária",
	"Boleto Eletrônico",
	"PIX",
}

func (p PaymentMethod) Label() string { return paymentLabels[p] }

// PaymentMethods lists every payment method in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{CreditCard, BankTransfer, ElectronicInvoice, PIX}
}

// ChurnStatus tells whether the customer cancelled the contract.
type ChurnStatus int

const (
	Active ChurnStatus = iota
	Cancelled
)

var churnLabels = [...]string{"Ativo", "Cancelado"}

func (s ChurnStatus) Label() string { return churnLabels[s] }

// ChurnStatuses lists both statuses in legend order.
func ChurnStatuses() []ChurnStatus {
	return []ChurnStatus{Active, Cancelled}
}

// Customer is one row of the synthetic dataset.
type Customer struct {
	Gender        Gender
	IsSenior      bool
	TenureMonths  int
	MonthlyCharge float64
	Contract      ContractType
	Payment       PaymentMethod
	TotalCharges  float64
	Churned       ChurnStatus
}
