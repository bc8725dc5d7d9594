package addresses

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/app/backend"
	"github.com/bangg2309/book-exchange/internal/app/domain"
	"github.com/bangg2309/book-exchange/internal/app/models"
	"github.com/bangg2309/book-exchange/internal/app/notify"
	"github.com/bangg2309/book-exchange/internal/app/session"
)

type AddressAPI interface {
	Provinces(ctx context.Context) ([]models.Province, error)
	Districts(ctx context.Context, provinceCode string) ([]models.District, error)
	Wards(ctx context.Context, districtCode string) ([]models.Ward, error)
	Addresses(ctx context.Context, token string) ([]models.Address, error)
	CreateAddress(ctx context.Context, token string, params backend.AddressParams) (models.Address, error)
	UpdateAddress(ctx context.Context, token string, id int64, params backend.AddressParams) (models.Address, error)
	DeleteAddress(ctx context.Context, token string, id int64) error
}

type AddressHandlers struct {
	*domain.BaseHandler
	api    AddressAPI
	store  *session.Store
	bus    *notify.Bus
	cache  *gocache.Cache
	logger *zap.Logger
}

func NewAddressHandlers(base *domain.BaseHandler, api AddressAPI, store *session.Store, bus *notify.Bus, logger *zap.Logger) *AddressHandlers {
	return &AddressHandlers{
		BaseHandler: base,
		api:         api,
		store:       store,
		bus:         bus,
		cache:       gocache.New(time.Hour, 2*time.Hour),
		logger:      logger,
	}
}

func (h *AddressHandlers) ShowAddresses(c *gin.Context) {
	token := h.store.Token(c)
	list, err := h.api.Addresses(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("Failed to load addresses", zap.Error(err))
	}
	h.RenderPage(c, "Địa chỉ - Trạm Sách Cũ", "", AddressesPage(list, h.provinces(c.Request.Context())))
}

// provinces is served from cache; the administrative division list is
// effectively static.
func (h *AddressHandlers) provinces(ctx context.Context) []models.Province {
	if cached, ok := h.cache.Get("provinces"); ok {
		return cached.([]models.Province)
	}
	provinces, err := h.api.Provinces(ctx)
	if err != nil {
		h.logger.Warn("Failed to load provinces", zap.Error(err))
		return nil
	}
	h.cache.SetDefault("provinces", provinces)
	return provinces
}

// DistrictOptions and WardOptions render the dependent <option> lists
// for the cascading selects. Changing the parent swaps the child and
// clears the grandchild.
func (h *AddressHandlers) DistrictOptions(c *gin.Context) {
	code := c.Query("provinceCode")
	if code == "" {
		h.RenderFragment(c, 200, DistrictSelect(nil))
		return
	}
	districts, err := h.api.Districts(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("Failed to load districts", zap.String("province", code), zap.Error(err))
		districts = nil
	}
	h.RenderFragment(c, 200, DistrictSelect(districts))
}

func (h *AddressHandlers) WardOptions(c *gin.Context) {
	code := c.Query("districtCode")
	if code == "" {
		h.RenderFragment(c, 200, WardSelect(nil))
		return
	}
	wards, err := h.api.Wards(c.Request.Context(), code)
	if err != nil {
		h.logger.Warn("Failed to load wards", zap.String("district", code), zap.Error(err))
		wards = nil
	}
	h.RenderFragment(c, 200, WardSelect(wards))
}

func (h *AddressHandlers) CreateAddress(c *gin.Context) {
	params := paramsFromForm(c)
	if params.Recipient == "" || params.Phone == "" || params.WardCode == "" || params.Street == "" {
		h.bus.Publish(h.store.ID(c), "Vui lòng điền đầy đủ thông tin địa chỉ", notify.Warning)
		c.Redirect(http.StatusFound, "/addresses")
		return
	}
	if _, err := h.api.CreateAddress(c.Request.Context(), h.store.Token(c), params); err != nil {
		h.logger.Warn("Failed to create address", zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Thêm địa chỉ thất bại", notify.Error)
	} else {
		h.bus.Publish(h.store.ID(c), "Đã thêm địa chỉ mới", notify.Success)
	}
	c.Redirect(http.StatusFound, "/addresses")
}

func (h *AddressHandlers) UpdateAddress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusFound, "/addresses")
		return
	}
	if _, err := h.api.UpdateAddress(c.Request.Context(), h.store.Token(c), id, paramsFromForm(c)); err != nil {
		h.logger.Warn("Failed to update address", zap.Int64("id", id), zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Cập nhật địa chỉ thất bại", notify.Error)
	} else {
		h.bus.Publish(h.store.ID(c), "Đã cập nhật địa chỉ", notify.Success)
	}
	c.Redirect(http.StatusFound, "/addresses")
}

func (h *AddressHandlers) DeleteAddress(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusNoContent)
		return
	}
	if err := h.api.DeleteAddress(c.Request.Context(), h.store.Token(c), id); err != nil {
		h.logger.Warn("Failed to delete address", zap.Int64("id", id), zap.Error(err))
		h.bus.Publish(h.store.ID(c), "Xoá địa chỉ thất bại", notify.Error)
	} else {
		h.bus.Publish(h.store.ID(c), "Đã xoá địa chỉ", notify.Success)
	}

	token := h.store.Token(c)
	list, err := h.api.Addresses(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("Failed to reload addresses", zap.Error(err))
	}
	h.RenderFragment(c, 200, AddressList(list))
}

func paramsFromForm(c *gin.Context) backend.AddressParams {
	return backend.AddressParams{
		Recipient:    c.PostForm("recipient"),
		Phone:        c.PostForm("phone"),
		ProvinceCode: c.PostForm("provinceCode"),
		DistrictCode: c.PostForm("districtCode"),
		WardCode:     c.PostForm("wardCode"),
		Street:       c.PostForm("street"),
		Default:      c.PostForm("default") == "true",
	}
}
