package sale

import (
	"errors"
	"strings"
	"time"
)

// Status representa o estado da venda
type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod representa a forma de pagamento da venda
type PaymentMethod string

const (
	PaymentDinheiro      PaymentMethod = "dinheiro"
	PaymentPix           PaymentMethod = "pix"
	PaymentCartaoCredito PaymentMethod = "cartao_credito"
	PaymentCartaoDebito  PaymentMethod = "cartao_debito"
	PaymentBoleto        PaymentMethod = "boleto"
	PaymentTransferencia PaymentMethod = "transferencia"
)

var (
	ErrNoItems              = errors.New("a venda precisa de ao menos um item")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrInvalidQuantity      = errors.New("quantidade do item deve ser maior que zero")
	ErrNegativeDiscount     = errors.New("desconto não pode ser negativo")
	ErrEmptyAttendant       = errors.New("nome do atendente é obrigatório")
	ErrAlreadyCancelled     = errors.New("a venda já está cancelada")
	ErrCancelledImmutable   = errors.New("uma venda cancelada não pode ser editada")
)

// validPaymentMethods é o conjunto fechado de formas de pagamento aceitas
var validPaymentMethods = map[PaymentMethod]bool{
	PaymentDinheiro:      true,
	PaymentPix:           true,
	PaymentCartaoCredito: true,
	PaymentCartaoDebito:  true,
	PaymentBoleto:        true,
	PaymentTransferencia: true,
}

// IsValidPaymentMethod verifica se a forma de pagamento pertence ao conjunto aceito
func IsValidPaymentMethod(m PaymentMethod) bool {
	return validPaymentMethods[m]
}

// Item representa um item de venda. ProductName é um snapshot denormalizado do
// nome do produto no momento da venda
type Item struct {
	ID          string  `json:"id"`
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Sale representa uma venda do balcão interno
type Sale struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"client_id,omitempty"`
	AttendantName string        `json:"attendant_name"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Subtotal      float64       `json:"subtotal"`
	Discount      float64       `json:"discount"`
	Total         float64       `json:"total"`
	Notes         string        `json:"notes,omitempty"`
	Status        Status        `json:"status"`
	Items         []*Item       `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewSale monta uma venda a partir dos itens, calculando subtotal e total.
// O desconto não é limitado ao subtotal: um desconto maior que o subtotal
// produz total negativo, comportamento mantido por compatibilidade com o
// sistema em produção (relatórios somam o total e o valor negativo reduz a
// receita de forma legítima)
func NewSale(clientID, attendantName string, method PaymentMethod, items []*Item, discount float64, notes string) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !IsValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(attendantName) == "" {
		return nil, ErrEmptyAttendant
	}
	if discount < 0 {
		return nil, ErrNegativeDiscount
	}

	subtotal := 0.0
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		item.Total = float64(item.Quantity) * item.UnitPrice
		subtotal += item.Total
	}

	now := time.Now()
	return &Sale{
		ClientID:      clientID,
		AttendantName: attendantName,
		PaymentMethod: method,
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         subtotal - discount,
		Notes:         notes,
		Status:        StatusCompleted,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Cancel transiciona a venda para cancelled e zera os valores monetários,
// para que a venda cancelada não apareça em agregados de receita. A transição
// é terminal: cancelar duas vezes é rejeitado para não devolver estoque em dobro
func (s *Sale) Cancel() error {
	if s.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	s.Status = StatusCancelled
	s.Subtotal = 0
	s.Discount = 0
	s.Total = 0
	s.UpdatedAt = time.Now()
	return nil
}

// EditRequest agrupa os campos mutáveis de uma venda. Itens são imutáveis
// após a criação
type EditRequest struct {
	PaymentMethod *PaymentMethod
	Discount      *float64
	Notes         *string
	ClientID      *string
}

// ApplyEdit aplica os campos informados e recalcula o total a partir do
// subtotal original, que nunca é editado. Vendas canceladas são rejeitadas
func (s *Sale) ApplyEdit(req EditRequest) error {
	if s.Status == StatusCancelled {
		return ErrCancelledImmutable
	}
	if req.PaymentMethod != nil {
		if !IsValidPaymentMethod(*req.PaymentMethod) {
			return ErrInvalidPaymentMethod
		}
		s.PaymentMethod = *req.PaymentMethod
	}
	if req.Discount != nil {
		if *req.Discount < 0 {
			return ErrNegativeDiscount
		}
		s.Discount = *req.Discount
		s.Total = s.Subtotal - s.Discount
	}
	if req.Notes != nil {
		s.Notes = *req.Notes
	}
	if req.ClientID != nil {
		s.ClientID = *req.ClientID
	}
	s.UpdatedAt = time.Now()
	return nil
}

// StockDelta representa um ajuste de estoque derivado de uma mutação de venda
type StockDelta struct {
	ProductID string
	Quantity  int
}

// StockDebits devolve os débitos de estoque da criação de uma venda: cada
// item debita do produto a quantidade vendida
func StockDebits(items []*Item) []StockDelta {
	deltas := make([]StockDelta, 0, len(items))
	for _, item := range items {
		deltas = append(deltas, StockDelta{ProductID: item.ProductID, Quantity: -item.Quantity})
	}
	return deltas
}

// StockReturns devolve as devoluções de estoque do cancelamento de uma venda:
// o espelho exato dos débitos da criação, de modo que criar e cancelar uma
// venda deixa o estoque de cada produto no valor original
func StockReturns(items []*Item) []StockDelta {
	deltas := make([]StockDelta, 0, len(items))
	for _, item := range items {
		deltas = append(deltas, StockDelta{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return deltas
}
