package types

const (
	ResourcePaymentLink = "paymentLink"
	ResourceOrder       = "order"
)

const (
	OperationCreatePaymentLink = "createPaymentLink"
	OperationGetPaymentLink    = "getPaymentLink"
	OperationCreateOrder       = "createOrder"
	OperationGetOrder          = "getOrder"
)

const (
	PaymentMethodCard       = "CARD"
	PaymentMethodUPI        = "UPI"
	PaymentMethodPoints     = "POINTS"
	PaymentMethodNetBanking = "NETBANKING"
	PaymentMethodWallet     = "WALLET"
	PaymentMethodCreditEMI  = "CREDIT_EMI"
	PaymentMethodDebitEMI   = "DEBIT_EMI"
)

// PaymentMethods lists every method the vendor accepts, in display order.
var PaymentMethods = []string{
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodPoints,
	PaymentMethodNetBanking,
	PaymentMethodWallet,
	PaymentMethodCreditEMI,
	PaymentMethodDebitEMI,
}

const (
	DefaultCurrency    = "INR"
	DefaultAmount      = int64(10000)
	DefaultCountryCode = "91"
)

// OperationsForResource returns the operations the given resource supports.
func OperationsForResource(resource string) []string {
	switch resource {
	case ResourcePaymentLink:
		return []string{OperationCreatePaymentLink, OperationGetPaymentLink}
	case ResourceOrder:
		return []string{OperationCreateOrder, OperationGetOrder}
	default:
		return nil
	}
}
