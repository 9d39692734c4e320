package billing

import "github.com/google/uuid"

// newTransactionID creates an internal reference for billing records that
// arrive without a gateway transaction id.
func newTransactionID() string {
	return "txn_" + uuid.NewString()
}
