package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	chatapp "github.com/muhammadheryan/marketplace/application/chat"
	orderapp "github.com/muhammadheryan/marketplace/application/order"
	productapp "github.com/muhammadheryan/marketplace/application/product"
	userapp "github.com/muhammadheryan/marketplace/application/user"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"
)

type RestHandler struct {
	responder
	UserApp    userapp.UserApp
	ProductApp productapp.ProductApp
	OrderApp   orderapp.OrderApp
	ChatApp    chatapp.ChatApp
}

func NewTransport(cfg *config.Config, userApp userapp.UserApp, productApp productapp.ProductApp, orderApp orderapp.OrderApp, chatApp chatapp.ChatApp, limiter *rate.Limiter) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		responder:  responder{errorStatus: cfg.Server.HTTPErrorStatus},
		UserApp:    userApp,
		ProductApp: productApp,
		OrderApp:   orderApp,
		ChatApp:    chatApp,
	}

	// Swagger UI and metrics
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/addproduct", rh.ListProducts).Methods(http.MethodGet)
	mux.HandleFunc("/products/{category}", rh.ListByCategory).Methods(http.MethodGet)
	mux.HandleFunc("/product/{id:[0-9]+}", rh.GetProduct).Methods(http.MethodGet)
	mux.HandleFunc("/product-detail/{id:[0-9]+}", rh.GetProductDetail).Methods(http.MethodGet)
	mux.HandleFunc("/usernew", rh.GetFirstName).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/addproduct", rh.UpsertProduct).Methods(http.MethodPost)
	mux.HandleFunc("/editproduct", rh.EditProduct).Methods(http.MethodPost)
	mux.HandleFunc("/sellerproducts", rh.SellerProducts).Methods(http.MethodGet)
	mux.HandleFunc("/placeorder", rh.PlaceOrder).Methods(http.MethodPost)
	mux.HandleFunc("/chat", rh.SendMessage).Methods(http.MethodPost)
	mux.HandleFunc("/chat", rh.GetConversations).Methods(http.MethodGet)

	// service-to-service routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/users/{id:[0-9]+}", rh.GetIdentity).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(RateLimitMiddleware(limiter, rh.responder))
	mux.Use(AuthMiddleware(userApp, rh.responder))

	return mux
}

// decode reads a JSON body into dst and validates it, answering the request itself on failure.
func (s *RestHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeErrorDetail(w, errors.SetCustomError(constant.ErrInvalidRequest), "malformed JSON body")
		return false
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		s.writeErrorDetail(w, errors.SetCustomError(constant.ErrInvalidRequest), validatorx.Describe(err))
		return false
	}
	return true
}

// principal returns the authenticated user id placed in the context by AuthMiddleware.
func (s *RestHandler) principal(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
	}
	return userID, ok
}

func pathID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id != 0
}

// Register handler
// @Summary Register user
// @Description Register a new buyer or seller
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or mobile and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Ends the session behind the bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.LogoutResponse
// @Router /logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Logout(r.Context(), token)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, res)
}

// GetFirstName handler
// @Summary User first name
// @Tags User
// @Produce json
// @Param id query int true "User ID"
// @Success 200 {object} model.FirstNameResponse
// @Router /usernew [get]
func (s *RestHandler) GetFirstName(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id == 0 {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity, err := s.UserApp.GetIdentity(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, model.FirstNameResponse{FirstName: identity.FirstName})
}

// GetIdentity handler
// @Summary Identity lookup for internal callers
// @Tags Internal
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} model.Identity
// @Failure 403 {string} string "Forbidden"
// @Router /internal/v1/users/{id} [get]
func (s *RestHandler) GetIdentity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	identity, err := s.UserApp.GetIdentity(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeSuccess(w, identity)
}
