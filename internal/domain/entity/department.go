package entity

type Department struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}
