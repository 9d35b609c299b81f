package http

import (
	"fmt"
	"strconv"

	"storefront/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ListProducts func
// @Summary List products
// @Tags CATALOG
// @Produce json
// @param category query string false "category"
// @param is_new_release query bool false "is_new_release"
// @param is_trending query bool false "is_trending"
// @param page query int false "page"
// @param limit query int false "limit"
// @Success 200 {object} ResponseBody
// @Router /v1/api/products [get]
func (hdl *HTTPHandler) ListProducts(c *fiber.Ctx) error {
	condition := QueryProductRequest{}
	if err := c.QueryParser(&condition); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(condition); err != nil {
		return hdl.badRequest(c, err)
	}

	products, err := hdl.catalog.ListProducts(c.UserContext(), condition.toDomain())
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, products)
}

// GetProduct func
// @Summary Get product
// @Tags CATALOG
// @Produce json
// @param id path string true "product id"
// @Success 200 {object} ResponseBody
// @Router /v1/api/products/{id} [get]
func (hdl *HTTPHandler) GetProduct(c *fiber.Ctx) error {
	product, err := hdl.catalog.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, product)
}

// GetCart func
// @Summary Local cart
// @Tags CART
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/cart [get]
func (hdl *HTTPHandler) GetCart(c *fiber.Ctx) error {
	return hdl.ok(c, newCartResponse(storefrontOf(c).Cart.Items()))
}

// AddCartItem func
// @Summary Add to local cart
// @Description Adds one unit; the product is looked up in the catalog
// @Tags CART
// @Accept application/json
// @Produce json
// @param AddCartItem body CartItemRequest true "AddCartItem"
// @Success 200 {object} ResponseBody
// @Router /v1/api/cart/items [post]
func (hdl *HTTPHandler) AddCartItem(c *fiber.Ctx) error {
	var request CartItemRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	product, err := hdl.catalog.GetProduct(c.UserContext(), request.ProductID)
	if err != nil {
		return hdl.fail(c, err)
	}

	cart := storefrontOf(c).Cart
	if err := cart.AddToCart(c.UserContext(), *product); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, newCartResponse(cart.Items()))
}

// UpdateCartItem func
// @Summary Set local cart quantity
// @Tags CART
// @Accept application/json
// @Produce json
// @param product_id path string true "product id"
// @param UpdateCartItem body QuantityRequest true "UpdateCartItem"
// @Success 200 {object} ResponseBody
// @Router /v1/api/cart/items/{product_id} [put]
func (hdl *HTTPHandler) UpdateCartItem(c *fiber.Ctx) error {
	var request QuantityRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	cart := storefrontOf(c).Cart
	if err := cart.UpdateQuantity(c.UserContext(), c.Params("product_id"), *request.Quantity); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, newCartResponse(cart.Items()))
}

// RemoveCartItem func
// @Summary Remove from local cart
// @Tags CART
// @Produce json
// @param product_id path string true "product id"
// @Success 200 {object} ResponseBody
// @Router /v1/api/cart/items/{product_id} [delete]
func (hdl *HTTPHandler) RemoveCartItem(c *fiber.Ctx) error {
	cart := storefrontOf(c).Cart
	if err := cart.RemoveFromCart(c.UserContext(), c.Params("product_id")); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, newCartResponse(cart.Items()))
}

// ClearCart func
// @Summary Clear local cart
// @Tags CART
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/cart [delete]
func (hdl *HTTPHandler) ClearCart(c *fiber.Ctx) error {
	cart := storefrontOf(c).Cart
	if err := cart.ClearCart(c.UserContext()); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, newCartResponse(cart.Items()))
}

// GetRemoteCart func
// @Summary Server cart
// @Description Fetches the authenticated visitor's cart from the backend
// @Tags REMOTE CART
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/remote-cart [get]
func (hdl *HTTPHandler) GetRemoteCart(c *fiber.Ctx) error {
	remote := storefrontOf(c).RemoteCart
	cart, err := remote.FetchCart(c.UserContext())
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, RemoteCartResponse{Cart: cart, State: remote.State()})
}

// AddRemoteCartItem func
// @Summary Add to server cart
// @Tags REMOTE CART
// @Accept application/json
// @Produce json
// @param AddRemoteCartItem body RemoteCartItemRequest true "AddRemoteCartItem"
// @Success 200 {object} ResponseBody
// @Router /v1/api/remote-cart/items [post]
func (hdl *HTTPHandler) AddRemoteCartItem(c *fiber.Ctx) error {
	var request RemoteCartItemRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}
	if request.Quantity == 0 {
		request.Quantity = 1
	}

	remote := storefrontOf(c).RemoteCart
	cart, err := remote.AddToCart(c.UserContext(), request.ProductID, request.Quantity)
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, RemoteCartResponse{Cart: cart, State: remote.State()})
}

// UpdateRemoteCartItem func
// @Summary Set server cart quantity
// @Tags REMOTE CART
// @Accept application/json
// @Produce json
// @param item_id path int true "cart item id"
// @param UpdateRemoteCartItem body QuantityRequest true "UpdateRemoteCartItem"
// @Success 200 {object} ResponseBody
// @Router /v1/api/remote-cart/items/{item_id} [put]
func (hdl *HTTPHandler) UpdateRemoteCartItem(c *fiber.Ctx) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}
	var request QuantityRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	remote := storefrontOf(c).RemoteCart
	cart, err := remote.UpdateQuantity(c.UserContext(), itemID, *request.Quantity)
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, RemoteCartResponse{Cart: cart, State: remote.State()})
}

// RemoveRemoteCartItem func
// @Summary Remove from server cart
// @Tags REMOTE CART
// @Produce json
// @param item_id path int true "cart item id"
// @Success 200 {object} ResponseBody
// @Router /v1/api/remote-cart/items/{item_id} [delete]
func (hdl *HTTPHandler) RemoveRemoteCartItem(c *fiber.Ctx) error {
	itemID, err := itemIDParam(c)
	if err != nil {
		return hdl.badRequest(c, err)
	}

	remote := storefrontOf(c).RemoteCart
	cart, err := remote.RemoveFromCart(c.UserContext(), itemID)
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, RemoteCartResponse{Cart: cart, State: remote.State()})
}

func itemIDParam(c *fiber.Ctx) (int64, error) {
	itemID, err := strconv.ParseInt(c.Params("item_id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", c.Params("item_id"))
	}
	return itemID, nil
}

// GetQuote func
// @Summary Checkout quote
// @Tags CHECKOUT
// @Produce json
// @param shipping_method query string false "sd, fd or pd"
// @Success 200 {object} ResponseBody
// @Router /v1/api/checkout/quote [get]
func (hdl *HTTPHandler) GetQuote(c *fiber.Ctx) error {
	var request QuoteRequest
	if err := c.QueryParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}
	return hdl.ok(c, storefrontOf(c).Checkout.Quote(domain.ShippingMethod(request.ShippingMethod)))
}

// Checkout func
// @Summary Place order
// @Description Submits the local cart; the cart is cleared on success
// @Tags CHECKOUT
// @Accept application/json
// @Produce json
// @param Checkout body CheckoutRequest true "Checkout"
// @Success 200 {object} ResponseBody
// @Router /v1/api/checkout [post]
func (hdl *HTTPHandler) Checkout(c *fiber.Ctx) error {
	var request CheckoutRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	result, err := storefrontOf(c).Checkout.Checkout(c.UserContext(), request.toDomain())
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, result)
}

// GetWishlist func
// @Summary Wishlist
// @Tags WISHLIST
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/wishlist [get]
func (hdl *HTTPHandler) GetWishlist(c *fiber.Ctx) error {
	items, err := storefrontOf(c).Wishlist.List(c.UserContext())
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, items)
}

// AddWishlistItem func
// @Summary Save product
// @Tags WISHLIST
// @Produce json
// @param product_id path string true "product id"
// @Success 200 {object} ResponseBody
// @Router /v1/api/wishlist/{product_id} [post]
func (hdl *HTTPHandler) AddWishlistItem(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if err := storefrontOf(c).Wishlist.Add(c.UserContext(), productID); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, FavoriteResponse{ProductID: productID, Favorite: true})
}

// RemoveWishlistItem func
// @Summary Unsave product
// @Tags WISHLIST
// @Produce json
// @param product_id path string true "product id"
// @Success 200 {object} ResponseBody
// @Router /v1/api/wishlist/{product_id} [delete]
func (hdl *HTTPHandler) RemoveWishlistItem(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	if err := storefrontOf(c).Wishlist.Remove(c.UserContext(), productID); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, FavoriteResponse{ProductID: productID, Favorite: false})
}

// ToggleWishlistItem func
// @Summary Toggle saved product
// @Tags WISHLIST
// @Produce json
// @param product_id path string true "product id"
// @Success 200 {object} ResponseBody
// @Router /v1/api/wishlist/{product_id}/toggle [post]
func (hdl *HTTPHandler) ToggleWishlistItem(c *fiber.Ctx) error {
	productID := c.Params("product_id")
	favorite, err := storefrontOf(c).Wishlist.Toggle(c.UserContext(), productID)
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, FavoriteResponse{ProductID: productID, Favorite: favorite})
}

// GetDashboard func
// @Summary Dashboard
// @Tags DASHBOARD
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/dashboard [get]
func (hdl *HTTPHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := hdl.dashboard.Dashboard(c.UserContext())
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, dashboard)
}
