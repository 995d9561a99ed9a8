package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace-backend/internal/entity"
	"marketplace-backend/internal/repository"
	"marketplace-backend/internal/service"
)

// Handler handles HTTP requests for the application.
type Handler struct {
	orderSvc   *service.OrderService
	paymentSvc *service.PaymentService
	productSvc *service.ProductService
	vendorSvc  *service.VendorService
}

func NewHandler(orderSvc *service.OrderService, paymentSvc *service.PaymentService, productSvc *service.ProductService, vendorSvc *service.VendorService) *Handler {
	return &Handler{
		orderSvc:   orderSvc,
		paymentSvc: paymentSvc,
		productSvc: productSvc,
		vendorSvc:  vendorSvc,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/orders", h.handleCreateOrder)
	mux.HandleFunc("GET /api/orders/{id}", h.handleGetOrder)
	mux.HandleFunc("POST /api/orders/{id}/items", h.handleAddOrderItem)
	mux.HandleFunc("DELETE /api/orders/{id}/items/{productID}", h.handleRemoveOrderItem)
	mux.HandleFunc("POST /api/orders/{id}/confirm-payment", h.handleConfirmOrderPayment)
	mux.HandleFunc("POST /api/orders/{id}/process", h.handleProcessOrder)
	mux.HandleFunc("POST /api/orders/{id}/ship", h.handleShipOrder)
	mux.HandleFunc("POST /api/orders/{id}/deliver", h.handleDeliverOrder)
	mux.HandleFunc("POST /api/orders/{id}/complete", h.handleCompleteOrder)
	mux.HandleFunc("POST /api/orders/{id}/cancel", h.handleCancelOrder)
	mux.HandleFunc("PUT /api/orders/{id}/shipping-address", h.handleUpdateShippingAddress)
	mux.HandleFunc("POST /api/orders/{id}/discount", h.handleApplyDiscount)

	mux.HandleFunc("POST /api/payments", h.handleInitiatePayment)
	mux.HandleFunc("GET /api/payments/{id}", h.handleGetPayment)
	mux.HandleFunc("POST /api/payments/{id}/process", h.handleProcessPayment)
	mux.HandleFunc("POST /api/payments/{id}/complete", h.handleCompletePayment)
	mux.HandleFunc("POST /api/payments/{id}/fail", h.handleFailPayment)
	mux.HandleFunc("POST /api/payments/{id}/refund", h.handleRefundPayment)
	mux.HandleFunc("POST /api/payments/{id}/cancel", h.handleCancelPayment)

	mux.HandleFunc("POST /api/products", h.handleCreateProduct)
	mux.HandleFunc("GET /api/products/{id}", h.handleGetProduct)
	mux.HandleFunc("PUT /api/products/{id}/price", h.handleUpdateProductPrice)
	mux.HandleFunc("POST /api/products/{id}/stock/add", h.handleAddStock)
	mux.HandleFunc("POST /api/products/{id}/stock/remove", h.handleRemoveStock)
	mux.HandleFunc("POST /api/products/{id}/stock/reserve", h.handleReserveStock)
	mux.HandleFunc("POST /api/products/{id}/stock/release", h.handleReleaseStock)
	mux.HandleFunc("POST /api/products/{id}/publish", h.handlePublishProduct)
	mux.HandleFunc("POST /api/products/{id}/discontinue", h.handleDiscontinueProduct)
	mux.HandleFunc("POST /api/products/{id}/images", h.handleAddProductImage)

	mux.HandleFunc("POST /api/vendors", h.handleRegisterVendor)
	mux.HandleFunc("GET /api/vendors/{id}", h.handleGetVendor)
	mux.HandleFunc("POST /api/vendors/{id}/approve", h.handleApproveVendor)
	mux.HandleFunc("POST /api/vendors/{id}/reject", h.handleRejectVendor)
	mux.HandleFunc("POST /api/vendors/{id}/suspend", h.handleSuspendVendor)
	mux.HandleFunc("POST /api/vendors/{id}/reactivate", h.handleReactivateVendor)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case entity.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case entity.IsStateConflict(err):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrVersionConflict):
		http.Error(w, "concurrent modification, retry", http.StatusConflict)
	default:
		slog.Error("Request failed", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue(name))
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// Orders

type orderItemRequest struct {
	ProductID   uuid.UUID       `json:"product_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   entity.Money    `json:"unit_price"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
}

func (i orderItemRequest) toInput() service.OrderItemInput {
	return service.OrderItemInput{
		ProductID:   i.ProductID,
		VendorID:    i.VendorID,
		ProductName: i.ProductName,
		SKU:         i.SKU,
		Quantity:    i.Quantity,
		UnitPrice:   i.UnitPrice,
		TaxRate:     i.TaxRate,
	}
}

type createOrderRequest struct {
	UserID          uuid.UUID              `json:"user_id"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	Items           []orderItemRequest     `json:"items"`
	Shipping        entity.Money           `json:"shipping"`
	Discount        entity.Money           `json:"discount"`
	CustomerNotes   string                 `json:"customer_notes"`
}

func (h *Handler) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cmd := service.CreateOrderCommand{
		UserID:          req.UserID,
		ShippingAddress: req.ShippingAddress,
		Shipping:        req.Shipping,
		Discount:        req.Discount,
		CustomerNotes:   req.CustomerNotes,
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, item.toInput())
	}

	order, err := h.orderSvc.CreateOrder(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orderSvc.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// orderAction wraps the shared id-parse / respond plumbing for order
// state transitions.
func (h *Handler) orderAction(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (*entity.Order, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := fn(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) handleAddOrderItem(w http.ResponseWriter, r *http.Request) {
	var req orderItemRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.AddItem(r.Context(), id, req.toInput())
	})
}

func (h *Handler) handleRemoveOrderItem(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "productID")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.RemoveItem(r.Context(), id, productID)
	})
}

func (h *Handler) handleConfirmOrderPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentID uuid.UUID `json:"payment_id"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.ConfirmPayment(r.Context(), id, req.PaymentID)
	})
}

func (h *Handler) handleProcessOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.StartProcessing(r.Context(), id)
	})
}

func (h *Handler) handleShipOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TrackingNumber string `json:"tracking_number"`
		CourierService string `json:"courier_service"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.ShipOrder(r.Context(), id, req.TrackingNumber, req.CourierService)
	})
}

func (h *Handler) handleDeliverOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.MarkDelivered(r.Context(), id)
	})
}

func (h *Handler) handleCompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.CompleteOrder(r.Context(), id)
	})
}

func (h *Handler) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.CancelOrder(r.Context(), id, req.Reason)
	})
}

func (h *Handler) handleUpdateShippingAddress(w http.ResponseWriter, r *http.Request) {
	var req entity.ShippingAddress
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.UpdateShippingAddress(r.Context(), id, req)
	})
}

func (h *Handler) handleApplyDiscount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Discount entity.Money `json:"discount"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.orderAction(w, r, func(id uuid.UUID) (*entity.Order, error) {
		return h.orderSvc.ApplyDiscount(r.Context(), id, req.Discount)
	})
}

// Payments

type initiatePaymentRequest struct {
	OrderID   uuid.UUID              `json:"order_id"`
	UserID    uuid.UUID              `json:"user_id"`
	Amount    entity.Money           `json:"amount"`
	Method    entity.PaymentMethod   `json:"method"`
	Provider  entity.PaymentProvider `json:"provider"`
	CardLast4 string                 `json:"card_last4"`
	CardBrand string                 `json:"card_brand"`
}

func (h *Handler) handleInitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req initiatePaymentRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	payment, err := h.paymentSvc.InitiatePayment(r.Context(), service.InitiatePaymentCommand{
		OrderID:   req.OrderID,
		UserID:    req.UserID,
		Amount:    req.Amount,
		Method:    req.Method,
		Provider:  req.Provider,
		CardLast4: req.CardLast4,
		CardBrand: req.CardBrand,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) paymentAction(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (*entity.Payment, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid payment id", http.StatusBadRequest)
		return
	}

	payment, err := fn(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *Handler) handleGetPayment(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, func(id uuid.UUID) (*entity.Payment, error) {
		return h.paymentSvc.GetPayment(r.Context(), id)
	})
}

func (h *Handler) handleProcessPayment(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, func(id uuid.UUID) (*entity.Payment, error) {
		return h.paymentSvc.MarkProcessing(r.Context(), id)
	})
}

func (h *Handler) handleCompletePayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TransactionID   string `json:"transaction_id"`
		GatewayResponse string `json:"gateway_response"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.paymentAction(w, r, func(id uuid.UUID) (*entity.Payment, error) {
		return h.paymentSvc.CompletePayment(r.Context(), id, req.TransactionID, req.GatewayResponse)
	})
}

func (h *Handler) handleFailPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason          string `json:"reason"`
		GatewayResponse string `json:"gateway_response"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.paymentAction(w, r, func(id uuid.UUID) (*entity.Payment, error) {
		return h.paymentSvc.FailPayment(r.Context(), id, req.Reason, req.GatewayResponse)
	})
}

func (h *Handler) handleRefundPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount              entity.Money `json:"amount"`
		RefundTransactionID string       `json:"refund_transaction_id"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.paymentAction(w, r, func(id uuid.UUID) (*entity.Payment, error) {
		return h.paymentSvc.RefundPayment(r.Context(), id, req.Amount, req.RefundTransactionID)
	})
}

func (h *Handler) handleCancelPayment(w http.ResponseWriter, r *http.Request) {
	h.paymentAction(w, r, func(id uuid.UUID) (*entity.Payment, error) {
		return h.paymentSvc.CancelPayment(r.Context(), id)
	})
}

// Products

type createProductRequest struct {
	VendorID     uuid.UUID       `json:"vendor_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	SKU          string          `json:"sku"`
	Price        entity.Money    `json:"price"`
	Category     string          `json:"category"`
	InitialStock int             `json:"initial_stock"`
	Weight       decimal.Decimal `json:"weight"`
	Brand        string          `json:"brand"`
	Manufacturer string          `json:"manufacturer"`
}

func (h *Handler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductCommand{
		VendorID:     req.VendorID,
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Price:        req.Price,
		Category:     req.Category,
		InitialStock: req.InitialStock,
		Weight:       req.Weight,
		Brand:        req.Brand,
		Manufacturer: req.Manufacturer,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) productAction(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (*entity.Product, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := fn(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.GetProduct(r.Context(), id)
	})
}

func (h *Handler) handleUpdateProductPrice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Price entity.Money `json:"price"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.UpdatePrice(r.Context(), id, req.Price)
	})
}

type stockRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) handleAddStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.AddStock(r.Context(), id, req.Quantity)
	})
}

func (h *Handler) handleRemoveStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.RemoveStock(r.Context(), id, req.Quantity)
	})
}

func (h *Handler) handleReserveStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.ReserveStock(r.Context(), id, req.Quantity)
	})
}

func (h *Handler) handleReleaseStock(w http.ResponseWriter, r *http.Request) {
	var req stockRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.ReleaseReservedStock(r.Context(), id, req.Quantity)
	})
}

func (h *Handler) handlePublishProduct(w http.ResponseWriter, r *http.Request) {
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.PublishProduct(r.Context(), id)
	})
}

func (h *Handler) handleDiscontinueProduct(w http.ResponseWriter, r *http.Request) {
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.DiscontinueProduct(r.Context(), id)
	})
}

func (h *Handler) handleAddProductImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL          string `json:"url"`
		AltText      string `json:"alt_text"`
		DisplayOrder int    `json:"display_order"`
		IsPrimary    bool   `json:"is_primary"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.productAction(w, r, func(id uuid.UUID) (*entity.Product, error) {
		return h.productSvc.AddImage(r.Context(), id, req.URL, req.AltText, req.DisplayOrder, req.IsPrimary)
	})
}

// Vendors

type registerVendorRequest struct {
	UserID            uuid.UUID       `json:"user_id"`
	BusinessName      string          `json:"business_name"`
	Email             string          `json:"email"`
	PhoneNumber       string          `json:"phone_number"`
	ContactPersonName string          `json:"contact_person_name"`
	BusinessAddress   entity.Address  `json:"business_address"`
	TaxID             string          `json:"tax_id"`
	BankAccountNumber string          `json:"bank_account_number"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
}

func (h *Handler) handleRegisterVendor(w http.ResponseWriter, r *http.Request) {
	var req registerVendorRequest
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	vendor, err := h.vendorSvc.RegisterVendor(r.Context(), service.RegisterVendorCommand{
		UserID:            req.UserID,
		BusinessName:      req.BusinessName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		ContactPersonName: req.ContactPersonName,
		BusinessAddress:   req.BusinessAddress,
		TaxID:             req.TaxID,
		BankAccountNumber: req.BankAccountNumber,
		CommissionRate:    req.CommissionRate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vendor)
}

func (h *Handler) vendorAction(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (*entity.Vendor, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid vendor id", http.StatusBadRequest)
		return
	}

	vendor, err := fn(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}

func (h *Handler) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	h.vendorAction(w, r, func(id uuid.UUID) (*entity.Vendor, error) {
		return h.vendorSvc.GetVendor(r.Context(), id)
	})
}

func (h *Handler) handleApproveVendor(w http.ResponseWriter, r *http.Request) {
	h.vendorAction(w, r, func(id uuid.UUID) (*entity.Vendor, error) {
		return h.vendorSvc.ApproveVendor(r.Context(), id)
	})
}

func (h *Handler) handleRejectVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.vendorAction(w, r, func(id uuid.UUID) (*entity.Vendor, error) {
		return h.vendorSvc.RejectVendor(r.Context(), id, req.Reason)
	})
}

func (h *Handler) handleSuspendVendor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := decode(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	h.vendorAction(w, r, func(id uuid.UUID) (*entity.Vendor, error) {
		return h.vendorSvc.SuspendVendor(r.Context(), id, req.Reason)
	})
}

func (h *Handler) handleReactivateVendor(w http.ResponseWriter, r *http.Request) {
	h.vendorAction(w, r, func(id uuid.UUID) (*entity.Vendor, error) {
		return h.vendorSvc.ReactivateVendor(r.Context(), id)
	})
}

// EnableCORS allows browser clients on other origins to call the API.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
