package http

import (
	"context"
	"errors"

	"storefront/internal/application"
	"storefront/internal/domain"
	"storefront/internal/ports/input"
	"storefront/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const storefrontKey = "storefront"

// VisitorResolver resolves a visitor cookie to that visitor's services
type VisitorResolver interface {
	Resolve(ctx context.Context, visitorID string) (*application.Storefront, error)
}

// Options struct - shared services and settings for the HTTP handler
type Options struct {
	Visitors   VisitorResolver
	Catalog    input.CatalogService
	Dashboard  input.DashboardService
	Account    input.AccountService
	DB         *gorm.DB
	CookieName string
}

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	visitors   VisitorResolver
	catalog    input.CatalogService
	dashboard  input.DashboardService
	account    input.AccountService
	db         *gorm.DB
	cookieName string
	validator  validator.Validator
}

// New func - Creates new HTTP handler
func New(opts Options) *HTTPHandler {
	cookieName := opts.CookieName
	if cookieName == "" {
		cookieName = "visitor_id"
	}
	return &HTTPHandler{
		visitors:   opts.Visitors,
		catalog:    opts.Catalog,
		dashboard:  opts.Dashboard,
		account:    opts.Account,
		db:         opts.DB,
		cookieName: cookieName,
		validator:  validator.New(),
	}
}

// Visitor func - middleware binding the request to the visitor's storefront
func (hdl *HTTPHandler) Visitor(c *fiber.Ctx) error {
	visitorID := c.Cookies(hdl.cookieName)
	storefront, err := hdl.visitors.Resolve(c.UserContext(), visitorID)
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	if storefront.VisitorID != visitorID {
		c.Cookie(&fiber.Cookie{
			Name:     hdl.cookieName,
			Value:    storefront.VisitorID,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	c.Locals(storefrontKey, storefront)
	return c.Next()
}

func storefrontOf(c *fiber.Ctx) *application.Storefront {
	storefront, _ := c.Locals(storefrontKey).(*application.Storefront)
	return storefront
}

// ok writes a success body, carrying any pending navigation
func (hdl *HTTPHandler) ok(c *fiber.Ctx, data interface{}) error {
	body := ResponseBody{Status: Success, Data: data}
	if storefront := storefrontOf(c); storefront != nil {
		body.Redirect = string(storefront.Navigator.Take())
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// fail writes an error body; validation errors keep their field map
func (hdl *HTTPHandler) fail(c *fiber.Ctx, err error) error {
	body := ResponseBody{Status: statusFor(err)}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body.Errors = verr.Fields
		if verr.Message != "" {
			body.Status.Message = []string{verr.Message}
		}
	}
	if storefront := storefrontOf(c); storefront != nil {
		body.Redirect = string(storefront.Navigator.Take())
	}
	return c.Status(body.Status.Code).JSON(body)
}

// badRequest answers a malformed or invalid body
func (hdl *HTTPHandler) badRequest(c *fiber.Ctx, err error) error {
	logrus.Errorln(err)
	msg := ResponseBody{
		Status: BadRequest,
		Errors: validator.FieldErrors(err),
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(fiber.StatusBadRequest).JSON(msg)
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	if hdl.db != nil {
		sqlDB, err := hdl.db.DB()
		if err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}

		err = sqlDB.Ping()
		if err != nil {
			logrus.Errorln(err)
			return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
		}
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// GetSession func
// @Summary Session state
// @Description Whether the visitor is authenticated, with the cached profile
// @Tags SESSION
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/session [get]
func (hdl *HTTPHandler) GetSession(c *fiber.Ctx) error {
	session := storefrontOf(c).Session
	return hdl.ok(c, SessionResponse{
		Authenticated: session.IsAuthenticated(),
		Profile:       session.Profile(),
	})
}

// Login func
// @Summary Login
// @Description Exchange username and password for a session
// @Tags SESSION
// @Accept application/json
// @Produce json
// @param Login body LoginRequest true "Login"
// @Success 200 {object} ResponseBody
// @Router /v1/api/session/login [post]
func (hdl *HTTPHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	session := storefrontOf(c).Session
	if err := session.Authenticate(c.UserContext(), request.Username, request.Password); err != nil {
		return hdl.fail(c, err)
	}
	// the login refresh may already have ended the session
	return hdl.ok(c, SessionResponse{Authenticated: session.IsAuthenticated()})
}

// LoginWithToken func
// @Summary Login with token
// @Description Start a session from an already issued access token
// @Tags SESSION
// @Accept application/json
// @Produce json
// @param LoginWithToken body TokenRequest true "LoginWithToken"
// @Success 200 {object} ResponseBody
// @Router /v1/api/session/token [post]
func (hdl *HTTPHandler) LoginWithToken(c *fiber.Ctx) error {
	var request TokenRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	session := storefrontOf(c).Session
	if err := session.Login(c.UserContext(), request.Token); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, SessionResponse{Authenticated: session.IsAuthenticated()})
}

// Logout func
// @Summary Logout
// @Tags SESSION
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/session/logout [post]
func (hdl *HTTPHandler) Logout(c *fiber.Ctx) error {
	if err := storefrontOf(c).Session.Logout(c.UserContext()); err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, SessionResponse{Authenticated: false})
}

// GetProfile func
// @Summary Profile
// @Description Fetch the customer profile; an expired session is logged out
// @Tags SESSION
// @Produce json
// @Success 200 {object} ResponseBody
// @Router /v1/api/session/profile [get]
func (hdl *HTTPHandler) GetProfile(c *fiber.Ctx) error {
	session := storefrontOf(c).Session
	profile := session.FetchUserData(c.UserContext())
	return hdl.ok(c, SessionResponse{
		Authenticated: session.IsAuthenticated(),
		Profile:       profile,
	})
}

// Register func
// @Summary Register
// @Tags ACCOUNT
// @Accept application/json
// @Produce json
// @param Register body RegisterRequest true "Register"
// @Success 200 {object} ResponseBody
// @Router /v1/api/register [post]
func (hdl *HTTPHandler) Register(c *fiber.Ctx) error {
	var request RegisterRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return hdl.badRequest(c, err)
	}

	response, err := hdl.account.Register(c.UserContext(), request.toDomain())
	if err != nil {
		return hdl.fail(c, err)
	}
	return hdl.ok(c, response)
}
