package entity

// Patient mirrors the hospital API patient resource. NationalID is the
// 11-digit government identifier used as the external lookup key; the wire
// name "tc" comes from the remote API.
type Patient struct {
	ID         int    `json:"id,omitempty"`
	NationalID string `json:"tc"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// NationalIDLength is the exact length every national identifier must have.
const NationalIDLength = 11
