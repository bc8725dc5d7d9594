package models

// Province, District and Ward form the three-level cascading address
// hierarchy; each level is fetched from the backend keyed by its parent.
type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type District struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"provinceCode"`
}

type Ward struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	DistrictCode string `json:"districtCode"`
}

type Address struct {
	ID           int64  `json:"id"`
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	ProvinceCode string `json:"provinceCode"`
	Province     string `json:"province,omitempty"`
	DistrictCode string `json:"districtCode"`
	District     string `json:"district,omitempty"`
	WardCode     string `json:"wardCode"`
	Ward         string `json:"ward,omitempty"`
	Street       string `json:"street"`
	Default      bool   `json:"default"`
}
