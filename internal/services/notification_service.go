package services

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"order_kiosk/internal/models"
	"order_kiosk/pkg/whatsapp"
)

// NotificationService delivers order confirmations off the request path.
// PlaceOrder only enqueues; a background worker sends, and every failure
// stops here as a log line. A full queue drops the message rather than
// block order creation.
type NotificationService interface {
	Start()
	Stop()
	Enqueue(order *models.Order)
}

type notificationService struct {
	client *whatsapp.Client
	queue  chan *models.Order
	wg     sync.WaitGroup
}

func NewNotificationService(client *whatsapp.Client, queueSize int) NotificationService {
	if queueSize < 1 {
		queueSize = 1
	}
	return &notificationService{
		client: client,
		queue:  make(chan *models.Order, queueSize),
	}
}

func (s *notificationService) Start() {
	s.wg.Add(1)
	go s.worker()
}

func (s *notificationService) Stop() {
	close(s.queue)
	s.wg.Wait()
}

func (s *notificationService) Enqueue(order *models.Order) {
	select {
	case s.queue <- order:
	default:
		log.Printf("Notification queue full, dropping confirmation for order #%d", order.OrderNumber)
	}
}

func (s *notificationService) worker() {
	defer s.wg.Done()
	for order := range s.queue {
		if err := s.send(order); err != nil {
			log.Printf("Failed to send confirmation for order #%d: %v", order.OrderNumber, err)
		}
	}
}

func (s *notificationService) send(order *models.Order) error {
	if order.Customer.Phone == "" {
		return fmt.Errorf("order %d has no customer phone", order.ID)
	}
	return s.client.SendTextMessage(order.Customer.Phone, FormatOrderConfirmation(order))
}

// FormatOrderConfirmation renders the WhatsApp confirmation text.
func FormatOrderConfirmation(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your order #%d is confirmed!\n\n", order.OrderNumber)
	for _, item := range order.LineItems {
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.ProductName)
		names := make([]string, 0, len(item.SelectedOptions))
		for _, sel := range item.SelectedOptions {
			names = append(names, sel.ValueName)
		}
		if len(names) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(names, ", "))
		}
		fmt.Fprintf(&b, " - %s\n", item.LineTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", order.TotalAmount.StringFixed(2))
	fmt.Fprintf(&b, "Order type: %s\n", order.OrderType)
	if order.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", order.Notes)
	}
	return b.String()
}
