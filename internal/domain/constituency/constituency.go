// Package constituency describes the parliamentary constituency a UK
// signatory lives in.
package constituency

// Constituency is a parliamentary constituency resolved from a postcode.
type Constituency struct {
	ID       string
	Name     string
	MPName   string
	Postcode string
}
