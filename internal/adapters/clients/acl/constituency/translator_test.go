package constituency

import "testing"

func TestToDomain(t *testing.T) {
	t.Parallel()

	dto := &PostcodeLookupDTO{
		Postcode: "sw1a 1aa",
		Constituency: &ConstituencyDTO{
			ONSCode: "E14000639",
			Name:    " Cities of London and Westminster ",
			MP:      &MemberDTO{Name: "A. Member"},
		},
	}

	got := ToDomain(dto)
	if got == nil {
		t.Fatal("ToDomain() = nil, want constituency")
	}
	if got.ID != "E14000639" {
		t.Errorf("ID = %q, want E14000639", got.ID)
	}
	if got.Name != "Cities of London and Westminster" {
		t.Errorf("Name = %q, want trimmed name", got.Name)
	}
	if got.MPName != "A. Member" {
		t.Errorf("MPName = %q, want A. Member", got.MPName)
	}
	if got.Postcode != "SW1A1AA" {
		t.Errorf("Postcode = %q, want SW1A1AA", got.Postcode)
	}
}

func TestToDomain_NoMember(t *testing.T) {
	t.Parallel()

	got := ToDomain(&PostcodeLookupDTO{
		Postcode:     "SW1A1AA",
		Constituency: &ConstituencyDTO{ONSCode: "E14000639", Name: "Cities of London and Westminster"},
	})
	if got == nil {
		t.Fatal("ToDomain() = nil, want constituency")
	}
	if got.MPName != "" {
		t.Errorf("MPName = %q, want empty during dissolution", got.MPName)
	}
}

func TestToDomain_NoConstituency(t *testing.T) {
	t.Parallel()

	tests := map[string]*PostcodeLookupDTO{
		"nil dto":          nil,
		"nil constituency": {Postcode: "JE23AB"},
		"blank code":       {Postcode: "JE23AB", Constituency: &ConstituencyDTO{Name: "Jersey"}},
	}

	for name, dto := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := ToDomain(dto); got != nil {
				t.Errorf("ToDomain() = %+v, want nil", got)
			}
		})
	}
}
