package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/mkalinin/shopadmin/internal/core/domain"
	"github.com/mkalinin/shopadmin/internal/core/port"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type processPaymentRequest struct {
	ProductID     uint64  `json:"productId"`
	PaymentMethod string  `json:"paymentMethod"`
	Amount        float64 `json:"amount"`
	Notes         string  `json:"notes"`
}

type paymentResp struct {
	ID            uint64          `json:"id"`
	SellerID      uint64          `json:"seller"`
	OrderID       uint64          `json:"order"`
	ProductID     uint64          `json:"product"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	ProcessedByID uint64          `json:"processedBy"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`

	Seller      *sellerResp   `json:"sellerDetails,omitempty"`
	Order       *orderResp    `json:"orderDetails,omitempty"`
	Product     *productResp  `json:"productDetails,omitempty"`
	ProcessedBy *operatorResp `json:"processedByDetails,omitempty"`
}

type operatorResp struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type userResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

func newPaymentResp(payment *domain.SellerPayment) paymentResp {
	r := paymentResp{
		ID:            payment.ID,
		SellerID:      payment.SellerID,
		OrderID:       payment.OrderID,
		ProductID:     payment.ProductID,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		ProcessedByID: payment.ProcessedByID,
		Notes:         payment.Notes,
		CreatedAt:     payment.CreatedAt,
	}
	r.Seller = newSellerResp(payment.Seller)
	r.Product = newProductResp(payment.Product)
	if payment.Order != nil {
		order := newOrderResp(payment.Order)
		r.Order = &order
	}
	if payment.ProcessedBy != nil {
		r.ProcessedBy = &operatorResp{ID: payment.ProcessedBy.ID, Name: payment.ProcessedBy.Name}
	}
	return r
}

// ProcessSellerPayment answers POST /api/admin/process-seller-payment/:orderId.
// The acting operator comes from the authentication context.
func (ph *PaymentHandler) ProcessSellerPayment(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("orderId"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := processPaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	input := port.PaymentInput{
		OrderID:       orderID,
		ProductID:     req.ProductID,
		PaymentMethod: req.PaymentMethod,
		Amount:        amount,
		Notes:         req.Notes,
		ProcessedByID: getAuthPayload(ctx).UserID,
	}

	payment, err := ph.service.ProcessSellerPayment(ctx, input)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, "Payment to seller processed successfully", newPaymentResp(payment))
}

// ListSellerPayments answers GET /api/admin/seller-payments. A filter value
// of "all" means unset. The payload carries the full user list next to the
// payments.
func (ph *PaymentHandler) ListSellerPayments(ctx *gin.Context) {
	filter := port.PaymentFilter{
		PaymentMethod: queryFilter(ctx, "paymentMethod"),
		Status:        domain.PaymentStatus(queryFilter(ctx, "status")),
	}

	if sellerID := queryFilter(ctx, "sellerId"); sellerID != "" {
		id, err := strconv.ParseUint(sellerID, 10, 64)
		if err != nil {
			ph.handleValidationError(ctx, domain.ErrBadRequest)
			return
		}
		filter.SellerID = id
	}

	startDate, err := parseDate(ctx.Query("startDate"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	endDate, err := parseDate(ctx.Query("endDate"))
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	report, err := ph.service.ListSellerPayments(ctx, filter)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	payments := make([]paymentResp, 0, len(report.Payments))
	for _, payment := range report.Payments {
		payments = append(payments, newPaymentResp(payment))
	}
	users := make([]userResp, 0, len(report.Users))
	for _, user := range report.Users {
		users = append(users, userResp{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
			Role:        string(user.Role),
		})
	}

	ph.handleSuccess(ctx, "Seller payments fetched successfully",
		gin.H{"payments": payments, "users": users})
}

func queryFilter(ctx *gin.Context, key string) string {
	value := ctx.Query(key)
	if value == "all" {
		return ""
	}
	return value
}
