package model

import "strings"

// ContractCategory is one of the four contracted-hour categories the roster
// recognizes. Each maps to a fixed shift length.
type ContractCategory string

const (
	Contract24HS ContractCategory = "24HS"
	Contract30HS ContractCategory = "30HS"
	Contract35HS ContractCategory = "35HS"
	Contract36HS ContractCategory = "36HS"
)

// UnknownContractShiftHours is the sentinel shift length used when a
// roster's CONTRATO cell doesn't match any known category: "always on",
// used only to avoid crashing the egress calculation. Per Q4 in the design
// notes this is preserved for parity with the original tool rather than
// turned into a hard validation failure.
const UnknownContractShiftHours = 24

// contractHours maps each known category to its shift length in hours.
var contractHours = map[ContractCategory]int{
	Contract24HS: 6,
	Contract30HS: 6,
	Contract35HS: 7,
	Contract36HS: 6,
}

// ParseContractCategory normalizes a roster CONTRATO cell (trimmed,
// upper-cased) to a ContractCategory. The second return value is false when
// the cell does not match any known category — callers should treat that as
// the UnknownContractShiftHours sentinel, not as a parse failure.
func ParseContractCategory(raw string) (ContractCategory, bool) {
	c := ContractCategory(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := contractHours[c]
	return c, ok
}

// ShiftHours returns the contracted shift length in hours for c, or
// UnknownContractShiftHours if c is not a recognized category.
func (c ContractCategory) ShiftHours() int {
	if h, ok := contractHours[c]; ok {
		return h
	}
	return UnknownContractShiftHours
}
