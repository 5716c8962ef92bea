package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-client/internal/domain"
)

func (s *Server) listProducts(c *gin.Context) {
	s.mu.Lock()
	products := make([]domain.Product, len(s.products))
	copy(products, s.products)
	s.mu.Unlock()

	c.JSON(http.StatusOK, products)
}

// getProfile returns the shopper's record, creating a skeleton on first
// read the way the real user service does.
func (s *Server) getProfile(c *gin.Context) {
	user := currentClaims(c)

	s.mu.Lock()
	profile, ok := s.profiles[user.UserID]
	if !ok {
		profile = domain.Profile{
			UserID:    user.UserID,
			Email:     user.Email,
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		s.profiles[user.UserID] = profile
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, profile)
}

func (s *Server) updateProfile(c *gin.Context) {
	user := currentClaims(c)

	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	profile, ok := s.profiles[user.UserID]
	if !ok {
		profile = domain.Profile{UserID: user.UserID, Email: user.Email}
	}
	if update.FirstName != nil {
		profile.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		profile.LastName = *update.LastName
	}
	if update.ShippingAddress != nil {
		profile.ShippingAddress = *update.ShippingAddress
	}
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	s.profiles[user.UserID] = profile
	s.mu.Unlock()

	c.JSON(http.StatusOK, profile)
}

func (s *Server) listOrders(c *gin.Context) {
	user := currentClaims(c)

	s.mu.Lock()
	orders := make([]domain.Order, len(s.orders[user.UserID]))
	copy(orders, s.orders[user.UserID])
	s.mu.Unlock()

	c.JSON(http.StatusOK, orders)
}

func (s *Server) createOrder(c *gin.Context) {
	user := currentClaims(c)

	var draft domain.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}
	if err := validateDraft(draft); err != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err})
		return
	}

	key := strings.TrimSpace(c.GetHeader("Idempotency-Key"))

	s.mu.Lock()
	defer s.mu.Unlock()

	if key != "" {
		if prior, ok := s.replays[user.UserID+"/"+key]; ok {
			c.JSON(http.StatusCreated, prior)
			return
		}
	}

	order := domain.Order{
		UserID:      user.UserID,
		ID:          "ORDER-" + uuid.NewString(),
		Status:      domain.OrderStatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Items:       draft.Items,
		TotalAmount: draft.TotalAmount,
	}
	s.orders[user.UserID] = append(s.orders[user.UserID], order)
	if key != "" {
		s.replays[user.UserID+"/"+key] = order
	}
	s.logger.Info("stub order created", "order_id", order.ID, "user_id", user.UserID)

	c.JSON(http.StatusCreated, order)
}

func validateDraft(draft domain.OrderDraft) string {
	if len(draft.Items) == 0 {
		return "order must contain at least one item"
	}
	for _, item := range draft.Items {
		if item.ProductID == "" {
			return "item is missing a product id"
		}
		if item.Quantity <= 0 {
			return "item quantity must be positive"
		}
		if item.PricePerUnit.Cmp(decimal.Zero) <= 0 {
			return "item price must be positive"
		}
	}
	if draft.TotalAmount.Cmp(decimal.Zero) <= 0 {
		return "total amount must be positive"
	}
	return ""
}
