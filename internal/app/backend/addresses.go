package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bangg2309/book-exchange/internal/app/models"
)

// The three cascade levels. Each request is keyed by the parent code;
// the UI re-renders the dependent selects as HTMX fragments.

func (c *Client) Provinces(ctx context.Context) ([]models.Province, error) {
	return call[[]models.Province](ctx, c, http.MethodGet, "/locations/provinces", "", nil)
}

func (c *Client) Districts(ctx context.Context, provinceCode string) ([]models.District, error) {
	path := "/locations/provinces/" + provinceCode + "/districts"
	return call[[]models.District](ctx, c, http.MethodGet, path, "", nil)
}

func (c *Client) Wards(ctx context.Context, districtCode string) ([]models.Ward, error) {
	path := "/locations/districts/" + districtCode + "/wards"
	return call[[]models.Ward](ctx, c, http.MethodGet, path, "", nil)
}

type AddressParams struct {
	Recipient    string `json:"recipient"`
	Phone        string `json:"phone"`
	ProvinceCode string `json:"provinceCode"`
	DistrictCode string `json:"districtCode"`
	WardCode     string `json:"wardCode"`
	Street       string `json:"street"`
	Default      bool   `json:"default"`
}

func (c *Client) Addresses(ctx context.Context, token string) ([]models.Address, error) {
	return call[[]models.Address](ctx, c, http.MethodGet, "/addresses", token, nil)
}

func (c *Client) CreateAddress(ctx context.Context, token string, params AddressParams) (models.Address, error) {
	return call[models.Address](ctx, c, http.MethodPost, "/addresses", token, params)
}

func (c *Client) UpdateAddress(ctx context.Context, token string, id int64, params AddressParams) (models.Address, error) {
	return call[models.Address](ctx, c, http.MethodPut, fmt.Sprintf("/addresses/%d", id), token, params)
}

func (c *Client) DeleteAddress(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/addresses/%d", id), token, nil, nil)
}
