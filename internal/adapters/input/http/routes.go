package http

import "github.com/gofiber/fiber/v2"

// Mount registers the health check and every /v1/api route on app
func (hdl *HTTPHandler) Mount(app *fiber.App) {
	app.Get("/health", hdl.HealthCheck)

	api := app.Group("/v1/api", hdl.Visitor)
	{
		api.Get("/session", hdl.GetSession)
		api.Post("/session/login", hdl.Login)
		api.Post("/session/token", hdl.LoginWithToken)
		api.Post("/session/logout", hdl.Logout)
		api.Get("/session/profile", hdl.GetProfile)
		api.Post("/register", hdl.Register)

		api.Get("/products", hdl.ListProducts)
		api.Get("/products/:id", hdl.GetProduct)

		api.Get("/cart", hdl.GetCart)
		api.Delete("/cart", hdl.ClearCart)
		api.Post("/cart/items", hdl.AddCartItem)
		api.Put("/cart/items/:product_id", hdl.UpdateCartItem)
		api.Delete("/cart/items/:product_id", hdl.RemoveCartItem)

		api.Get("/remote-cart", hdl.GetRemoteCart)
		api.Post("/remote-cart/items", hdl.AddRemoteCartItem)
		api.Put("/remote-cart/items/:item_id", hdl.UpdateRemoteCartItem)
		api.Delete("/remote-cart/items/:item_id", hdl.RemoveRemoteCartItem)

		api.Get("/checkout/quote", hdl.GetQuote)
		api.Post("/checkout", hdl.Checkout)

		api.Get("/wishlist", hdl.GetWishlist)
		api.Post("/wishlist/:product_id", hdl.AddWishlistItem)
		api.Delete("/wishlist/:product_id", hdl.RemoveWishlistItem)
		api.Post("/wishlist/:product_id/toggle", hdl.ToggleWishlistItem)

		api.Get("/dashboard", hdl.GetDashboard)
	}
}
