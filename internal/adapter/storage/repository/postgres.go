package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mkalinin/shopadmin/internal/adapter/storage"
	"github.com/mkalinin/shopadmin/internal/core/domain"
	"github.com/mkalinin/shopadmin/internal/core/port"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

const orderColumns = `o.id, coalesce(o.user_id, 0), coalesce(o.shipping_address_id, 0),
	o.total_amount, o.status, o.payment_status, o.notes, o.created_at`

func listOrdersQuery(qb sq.StatementBuilderType, filter port.OrderFilter) sq.SelectBuilder {
	statement := qb.
		Select(orderColumns,
			"u.id", "coalesce(u.name, '')", "coalesce(u.email, '')",
			"a.id", "coalesce(a.line1, '')", "coalesce(a.city, '')",
			"coalesce(a.postal_code, '')", "coalesce(a.country, '')", "coalesce(a.phone, '')").
		From("orders o").
		LeftJoin("users u ON u.id = o.user_id").
		LeftJoin("addresses a ON a.id = o.shipping_address_id").
		OrderBy("o.created_at DESC")

	if filter.PaymentStatus != "" {
		statement = statement.Where(sq.Eq{"o.payment_status": filter.PaymentStatus})
	}
	if filter.Status != "" {
		statement = statement.Where(sq.Eq{"o.status": filter.Status})
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		statement = statement.
			Where(sq.GtOrEq{"o.created_at": *filter.StartDate}).
			Where(sq.LtOrEq{"o.created_at": *filter.EndDate})
	}

	return statement
}

func (r *Repository) ListOrders(ctx context.Context, filter port.OrderFilter) ([]*domain.Order, error) {
	sql, args, err := listOrdersQuery(*r.db.QueryBuilder, filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadOrderItems(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns,
			"u.id", "coalesce(u.name, '')", "coalesce(u.email, '')",
			"a.id", "coalesce(a.line1, '')", "coalesce(a.city, '')",
			"coalesce(a.postal_code, '')", "coalesce(a.country, '')", "coalesce(a.phone, '')").
		From("orders o").
		LeftJoin("users u ON u.id = o.user_id").
		LeftJoin("addresses a ON a.id = o.shipping_address_id").
		Where(sq.Eq{"o.id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrDataNotFound
	}

	order, err := scanOrderRow(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	if err := r.loadOrderItems(ctx, []*domain.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

func scanOrderRow(rows pgx.Rows) (*domain.Order, error) {
	order := domain.Order{}
	var (
		userID    *uint64
		userName  string
		userEmail string
		addrID    *uint64
		addr      domain.Address
	)

	err := rows.Scan(
		&order.ID,
		&order.UserID,
		&order.ShippingAddressID,
		&order.TotalAmount,
		&order.Status,
		&order.PaymentStatus,
		&order.Notes,
		&order.CreatedAt,
		&userID,
		&userName,
		&userEmail,
		&addrID,
		&addr.Line1,
		&addr.City,
		&addr.PostalCode,
		&addr.Country,
		&addr.Phone,
	)
	if err != nil {
		return nil, err
	}

	if userID != nil {
		order.User = &domain.User{ID: *userID, Name: userName, Email: userEmail}
	}
	if addrID != nil {
		addr.ID = *addrID
		order.ShippingAddress = &addr
	}

	return &order, nil
}

// loadOrderItems attaches line items with product and seller enrichment.
// Unresolvable products or sellers stay nil, they never fail the query.
func (r *Repository) loadOrderItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uint64]*domain.Order, len(orders))
	ids := make([]uint64, 0, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	statement := r.db.QueryBuilder.
		Select("i.order_id", "i.product_id", "i.quantity", "i.price",
			"p.id", "coalesce(p.subject, '')", "coalesce(p.final_price, 0)",
			"coalesce(p.images, '{}')", "coalesce(p.seller_id, 0)",
			"s.id", "coalesce(s.name, '')", "coalesce(s.email, '')",
			"coalesce(s.phone_number, '')", "coalesce(s.payment_mode, '')",
			"coalesce(s.payment_details, '')").
		From("order_items i").
		LeftJoin("products p ON p.id = i.product_id").
		LeftJoin("users s ON s.id = p.seller_id").
		Where(sq.Eq{"i.order_id": ids})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		item := domain.OrderItem{}
		var (
			productID *uint64
			product   domain.Product
			sellerID  *uint64
			seller    domain.User
		)
		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&productID,
			&product.Subject,
			&product.FinalPrice,
			&product.Images,
			&product.SellerID,
			&sellerID,
			&seller.Name,
			&seller.Email,
			&seller.PhoneNumber,
			&seller.PaymentMode,
			&seller.PaymentDetails,
		)
		if err != nil {
			return err
		}

		item.Product = resolveItemProduct(productID, product, sellerID, seller)

		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return rows.Err()
}

// resolveItemProduct assembles a line item's enrichment from the joined
// columns. An unresolved product leaves the item bare, an unresolved
// seller leaves the product without one.
func resolveItemProduct(productID *uint64, product domain.Product, sellerID *uint64, seller domain.User) *domain.Product {
	if productID == nil {
		return nil
	}
	product.ID = *productID
	if sellerID != nil {
		seller.ID = *sellerID
		product.Seller = &seller
	}
	return &product
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", order.Status).
		Set("payment_status", order.PaymentStatus).
		Set("notes", order.Notes).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return r.ReadOrder(ctx, order.ID)
}

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.SellerPayment) (*domain.SellerPayment, error) {
	statement := r.db.QueryBuilder.
		Insert("seller_payments").
		Columns("seller_id", "order_id", "product_id", "amount",
			"payment_method", "status", "processed_by", "notes", "created_at").
		Values(payment.SellerID, payment.OrderID, payment.ProductID, payment.Amount,
			payment.PaymentMethod, payment.Status, payment.ProcessedByID, payment.Notes, payment.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&payment.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) ListPaymentKeys(ctx context.Context) ([]domain.PaymentKey, error) {
	statement := r.db.QueryBuilder.
		Select("order_id", "product_id").
		From("seller_payments")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	keys := make([]domain.PaymentKey, 0)
	for rows.Next() {
		key := domain.PaymentKey{}
		if err := rows.Scan(&key.OrderID, &key.ProductID); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

func listPaymentsQuery(qb sq.StatementBuilderType, filter port.PaymentFilter) sq.SelectBuilder {
	statement := qb.
		Select("sp.id", "sp.seller_id", "sp.order_id", "sp.product_id", "sp.amount",
			"sp.payment_method", "sp.status", "coalesce(sp.processed_by, 0)", "sp.notes", "sp.created_at",
			"s.id", "coalesce(s.name, '')", "coalesce(s.email, '')",
			"coalesce(s.phone_number, '')", "coalesce(s.payment_mode, '')", "coalesce(s.payment_details, '')",
			"o.id", "coalesce(o.total_amount, 0)", "coalesce(o.status, '')",
			"coalesce(o.payment_status, '')", "o.created_at",
			"p.id", "coalesce(p.subject, '')", "coalesce(p.final_price, 0)", "coalesce(p.images, '{}')",
			"op.id", "coalesce(op.name, '')").
		From("seller_payments sp").
		LeftJoin("users s ON s.id = sp.seller_id").
		LeftJoin("orders o ON o.id = sp.order_id").
		LeftJoin("products p ON p.id = sp.product_id").
		LeftJoin("users op ON op.id = sp.processed_by").
		OrderBy("sp.created_at DESC")

	if filter.SellerID != 0 {
		statement = statement.Where(sq.Eq{"sp.seller_id": filter.SellerID})
	}
	if filter.Status != "" {
		statement = statement.Where(sq.Eq{"sp.status": filter.Status})
	}
	if filter.PaymentMethod != "" {
		statement = statement.Where(sq.Eq{"sp.payment_method": filter.PaymentMethod})
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		statement = statement.
			Where(sq.GtOrEq{"sp.created_at": *filter.StartDate}).
			Where(sq.LtOrEq{"sp.created_at": *filter.EndDate})
	}

	return statement
}

func (r *Repository) ListPayments(ctx context.Context, filter port.PaymentFilter) ([]*domain.SellerPayment, error) {
	sql, args, err := listPaymentsQuery(*r.db.QueryBuilder, filter).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.SellerPayment, 0)
	for rows.Next() {
		payment := domain.SellerPayment{}
		var (
			sellerID       *uint64
			seller         domain.User
			orderID        *uint64
			order          domain.Order
			orderCreatedAt *time.Time
			productID      *uint64
			product        domain.Product
			operatorID     *uint64
			operator       domain.User
		)
		err := rows.Scan(
			&payment.ID,
			&payment.SellerID,
			&payment.OrderID,
			&payment.ProductID,
			&payment.Amount,
			&payment.PaymentMethod,
			&payment.Status,
			&payment.ProcessedByID,
			&payment.Notes,
			&payment.CreatedAt,
			&sellerID,
			&seller.Name,
			&seller.Email,
			&seller.PhoneNumber,
			&seller.PaymentMode,
			&seller.PaymentDetails,
			&orderID,
			&order.TotalAmount,
			&order.Status,
			&order.PaymentStatus,
			&orderCreatedAt,
			&productID,
			&product.Subject,
			&product.FinalPrice,
			&product.Images,
			&operatorID,
			&operator.Name,
		)
		if err != nil {
			return nil, err
		}

		if sellerID != nil {
			seller.ID = *sellerID
			payment.Seller = &seller
		}
		if orderID != nil {
			order.ID = *orderID
			if orderCreatedAt != nil {
				order.CreatedAt = *orderCreatedAt
			}
			payment.Order = &order
		}
		if productID != nil {
			product.ID = *productID
			payment.Product = &product
		}
		if operatorID != nil {
			operator.ID = *operatorID
			payment.ProcessedBy = &operator
		}

		list = append(list, &payment)
	}

	return list, rows.Err()
}

func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "email", "phone_number", "role", "payment_mode", "payment_details").
		From("users").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.User, 0)
	for rows.Next() {
		user := domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PhoneNumber,
			&user.Role,
			&user.PaymentMode,
			&user.PaymentDetails,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &user)
	}

	return list, rows.Err()
}

func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "orders")
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "users")
}

func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "products")
}

func (r *Repository) countRows(ctx context.Context, table string) (int64, error) {
	statement := r.db.QueryBuilder.
		Select("count(*)").
		From(table)

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *Repository) CountOrdersByStatus(ctx context.Context) (map[domain.OrderStatus]int64, error) {
	statement := r.db.QueryBuilder.
		Select("status", "count(*)").
		From("orders").
		GroupBy("status")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.OrderStatus]int64)
	for rows.Next() {
		var status domain.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *Repository) ListRecentOrders(ctx context.Context, limit uint64) ([]domain.RecentOrder, error) {
	statement := r.db.QueryBuilder.
		Select("o.id", "coalesce(u.name, '')", "o.total_amount", "o.status", "o.created_at").
		From("orders o").
		LeftJoin("users u ON u.id = o.user_id").
		OrderBy("o.created_at DESC").
		Limit(limit)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.RecentOrder, 0, limit)
	for rows.Next() {
		order := domain.RecentOrder{}
		err := rows.Scan(
			&order.ID,
			&order.UserName,
			&order.TotalAmount,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	return list, rows.Err()
}

func (r *Repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	statement := r.db.QueryBuilder.
		Select("coalesce(sum(total_amount), 0)").
		From("orders").
		Where(sq.Eq{"payment_status": domain.PaymentStatusCompleted})

	sql, args, err := statement.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var total decimal.Decimal
	err = r.db.QueryRow(ctx, sql, args...).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}

func (r *Repository) MonthlySales(ctx context.Context) ([]domain.MonthlySales, error) {
	statement := r.db.QueryBuilder.
		Select(
			"date_part('year', created_at)::int AS year",
			"date_part('month', created_at)::int AS month",
			"count(*)",
			"coalesce(sum(total_amount), 0)").
		From("orders").
		Where(sq.Eq{"payment_status": domain.PaymentStatusCompleted}).
		GroupBy("year", "month").
		OrderBy("year", "month")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]domain.MonthlySales, 0)
	for rows.Next() {
		sales := domain.MonthlySales{}
		err := rows.Scan(
			&sales.Year,
			&sales.Month,
			&sales.Count,
			&sales.Total,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, sales)
	}

	return list, rows.Err()
}
