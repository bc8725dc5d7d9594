package checkout

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// VNPSuccessCode is the gateway's response code for a settled payment.
const VNPSuccessCode = "00"

// PaymentReturn is the parsed VNPay return-redirect payload.
type PaymentReturn struct {
	OrderID int64
	TxnRef  string
	Code    string
}

func (p PaymentReturn) Success() bool {
	return p.Code == VNPSuccessCode
}

// ParsePaymentReturn reads the gateway callback query. vnp_TxnRef is
// formatted as "{orderId}-{timestamp}"; only the order id part matters
// here, the timestamp just makes the reference unique gateway-side.
func ParsePaymentReturn(query url.Values) (PaymentReturn, error) {
	ref := query.Get("vnp_TxnRef")
	if ref == "" {
		return PaymentReturn{}, errors.New("missing vnp_TxnRef")
	}

	idPart, _, found := strings.Cut(ref, "-")
	if !found || idPart == "" {
		return PaymentReturn{}, errors.Errorf("malformed vnp_TxnRef %q", ref)
	}
	orderID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return PaymentReturn{}, errors.Wrapf(err, "malformed order id in vnp_TxnRef %q", ref)
	}

	return PaymentReturn{
		OrderID: orderID,
		TxnRef:  ref,
		Code:    query.Get("vnp_ResponseCode"),
	}, nil
}
