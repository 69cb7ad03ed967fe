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

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type sellerResp struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	PaymentMode    string `json:"paymentMode"`
	PaymentDetails string `json:"paymentDetails"`
}

type productResp struct {
	ID         uint64          `json:"id"`
	Subject    string          `json:"subject"`
	FinalPrice decimal.Decimal `json:"finalPrice"`
	Images     []string        `json:"images"`
	Seller     *sellerResp     `json:"seller,omitempty"`
}

type orderItemResp struct {
	ProductID uint64          `json:"productId"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Product   *productResp    `json:"product,omitempty"`
}

type buyerResp struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type addressResp struct {
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type orderResp struct {
	ID              uint64          `json:"id"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	User            *buyerResp      `json:"user,omitempty"`
	ShippingAddress *addressResp    `json:"shippingAddress,omitempty"`
	Items           []orderItemResp `json:"items"`
}

func newSellerResp(seller *domain.User) *sellerResp {
	if seller == nil {
		return nil
	}
	return &sellerResp{
		ID:             seller.ID,
		Name:           seller.Name,
		Email:          seller.Email,
		PhoneNumber:    seller.PhoneNumber,
		PaymentMode:    seller.PaymentMode,
		PaymentDetails: seller.PaymentDetails,
	}
}

func newProductResp(product *domain.Product) *productResp {
	if product == nil {
		return nil
	}
	return &productResp{
		ID:         product.ID,
		Subject:    product.Subject,
		FinalPrice: product.FinalPrice,
		Images:     product.Images,
		Seller:     newSellerResp(product.Seller),
	}
}

func newOrderResp(order *domain.Order) orderResp {
	r := orderResp{
		ID:            order.ID,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt,
		Items:         make([]orderItemResp, 0, len(order.Items)),
	}
	if order.User != nil {
		r.User = &buyerResp{ID: order.User.ID, Name: order.User.Name, Email: order.User.Email}
	}
	if order.ShippingAddress != nil {
		r.ShippingAddress = &addressResp{
			Line1:      order.ShippingAddress.Line1,
			City:       order.ShippingAddress.City,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
			Phone:      order.ShippingAddress.Phone,
		}
	}
	for _, item := range order.Items {
		r.Items = append(r.Items, orderItemResp{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Product:   newProductResp(item.Product),
		})
	}
	return r
}

// ListOrders answers GET /api/admin/orders: completed-but-unpaid orders,
// optionally narrowed by status, paymentStatus and an inclusive date range.
func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	filter := port.OrderFilter{
		Status:        domain.OrderStatus(ctx.Query("status")),
		PaymentStatus: domain.PaymentStatus(ctx.Query("paymentStatus")),
	}

	startDate, err := parseDate(ctx.Query("startDate"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	endDate, err := parseDate(ctx.Query("endDate"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	list, err := oh.service.ListUnpaidOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResp(order))
	}

	oh.handleSuccess(ctx, "Orders fetched successfully", gin.H{"orders": result})
}

type updateOrderRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
	Notes         *string `json:"notes"`
}

// UpdateOrder answers PUT /api/admin/orders/:id with PATCH semantics: only
// fields present in the body change.
func (oh *OrderHandler) UpdateOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := updateOrderRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	update := port.OrderUpdate{Notes: req.Notes}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		update.Status = &status
	}
	if req.PaymentStatus != nil {
		paymentStatus := domain.PaymentStatus(*req.PaymentStatus)
		update.PaymentStatus = &paymentStatus
	}

	order, err := oh.service.UpdateOrder(ctx, orderID, update)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, "Order updated successfully", newOrderResp(order))
}
