package constituency

import (
	"strings"

	domconst "github.com/jsamuelsen11/petitions-service/internal/domain/constituency"
)

// ToDomain converts a lookup response. It returns nil when the postcode is
// known but sits outside any constituency, such as a Crown Dependency.
func ToDomain(dto *PostcodeLookupDTO) *domconst.Constituency {
	if dto == nil || dto.Constituency == nil || dto.Constituency.ONSCode == "" {
		return nil
	}

	c := &domconst.Constituency{
		ID:       dto.Constituency.ONSCode,
		Name:     strings.TrimSpace(dto.Constituency.Name),
		Postcode: strings.ToUpper(strings.ReplaceAll(dto.Postcode, " ", "")),
	}
	if dto.Constituency.MP != nil {
		c.MPName = strings.TrimSpace(dto.Constituency.MP.Name)
	}
	return c
}
