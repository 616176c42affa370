package models

import "github.com/shopspring/decimal"

func init() {
	// Money and quantity fields go over the wire as bare JSON numbers, not
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}
