// Package constituency holds the downstream constituency API's wire types
// and their translation to domain values.
package constituency

// PostcodeLookupDTO is the body of GET /api/v1/postcodes/{postcode}.
type PostcodeLookupDTO struct {
	Postcode     string           `json:"postcode"`
	Constituency *ConstituencyDTO `json:"constituency"`
}

// ConstituencyDTO is a parliamentary constituency.
type ConstituencyDTO struct {
	ONSCode string     `json:"ons_code"`
	Name    string     `json:"name"`
	MP      *MemberDTO `json:"mp,omitempty"`
}

// MemberDTO is the sitting member for a constituency. It is absent during
// a dissolution.
type MemberDTO struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}
