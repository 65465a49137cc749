package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"foodigo/internal/domain"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const qrImageName = "order-qr"

// ReceiptRenderer produces the invoice PDF and the confirmation email body for
// a paid order.
type ReceiptRenderer struct {
	DeliveryFee decimal.Decimal
	Currency    string
	Now         func() time.Time
}

func NewReceiptRenderer(deliveryFee decimal.Decimal, currency string) *ReceiptRenderer {
	return &ReceiptRenderer{DeliveryFee: deliveryFee, Currency: currency, Now: time.Now}
}

func (r *ReceiptRenderer) money(v decimal.Decimal) string {
	return r.Currency + v.StringFixed(2)
}

type receiptLine struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

type receiptView struct {
	InvoiceID    string
	CustomerName string
	Address      domain.Address
	Status       domain.OrderStatus
	Lines        []receiptLine
	Subtotal     string
	DeliveryFee  string
	Total        string
}

func (r *ReceiptRenderer) view(order *domain.Order, customerName string) receiptView {
	lines := make([]receiptLine, 0, len(order.Items))
	for _, item := range order.Items {
		price := decimal.NewFromFloat(item.Price)
		lines = append(lines, receiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    price.StringFixed(2),
			Total:    price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
		})
	}

	total := decimal.NewFromFloat(order.Amount)
	invoiceID := order.ID
	if len(invoiceID) > 8 {
		invoiceID = invoiceID[len(invoiceID)-8:]
	}
	return receiptView{
		InvoiceID:    invoiceID,
		CustomerName: customerName,
		Address:      order.Address,
		Status:       order.Status,
		Lines:        lines,
		Subtotal:     r.money(total.Sub(r.DeliveryFee)),
		DeliveryFee:  r.money(r.DeliveryFee),
		Total:        r.money(total),
	}
}

// Render draws an A4 invoice. qr, when present, is a PNG placed in the header.
func (r *ReceiptRenderer) Render(order *domain.Order, customerName string, qr []byte) ([]byte, error) {
	v := r.view(order, customerName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(255, 99, 71)
	pdf.CellFormat(0, 12, "FoodiGO Invoice", "", 1, "L", false, 0, "")

	if len(qr) > 0 {
		pdf.RegisterImageOptionsReader(qrImageName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qr))
		pdf.ImageOptions(qrImageName, 162, 14, 30, 30, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(0, 6, "Invoice ID: "+v.InvoiceID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+r.Now().Format("02/01/2006"), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 6, "Bill To:", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Ship To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 5, "Customer Name: "+v.CustomerName, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, v.Address.Street+", "+v.Address.City, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, "Email: "+v.Address.Email, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, v.Address.State+", "+v.Address.Zipcode, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, "Phone: "+v.Address.Phone, "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetDrawColor(255, 99, 71)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Line(18, y, 192, y)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(255, 99, 71)
	pdf.CellFormat(90, 7, "Item Name", "", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, "Quantity", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "Unit Price", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Total", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range v.Lines {
		pdf.CellFormat(90, 7, line.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprint(line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, line.Price, "", 0, "R", false, 0, "")
		pdf.CellFormat(0, 7, line.Total, "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.CellFormat(145, 6, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 6, v.Subtotal, "", 1, "R", false, 0, "")
	pdf.CellFormat(145, 6, "Delivery Charge:", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 6, v.DeliveryFee, "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(255, 99, 71)
	pdf.CellFormat(145, 9, "TOTAL PAID:", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 9, v.Total, "", 1, "R", false, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(0, 6, "Thank you for choosing FoodiGO! Your order is being processed.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var emailTemplate = template.Must(template.New("receipt").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #eee; padding: 20px;">
<h2 style="color: #ff6347;">FoodiGO Order Confirmation &amp; Bill</h2>
<p>Dear {{.CustomerName}},</p>
<p>Thank you for your order! Your payment was successful, and your order details are below.</p>
<table style="width: 100%; border-collapse: collapse; margin-top: 20px;">
<thead><tr style="background-color: #f2f2f2;"><th align="left">Item</th><th align="right">Qty</th><th align="right">Price</th><th align="right">Sub Total</th></tr></thead>
<tbody>
{{range .Lines}}<tr><td>{{.Name}}</td><td align="right">{{.Quantity}}</td><td align="right">{{.Price}}</td><td align="right">{{.Total}}</td></tr>
{{end}}<tr><td colspan="3" align="right">Subtotal:</td><td align="right">{{.Subtotal}}</td></tr>
<tr><td colspan="3" align="right">Delivery Charge:</td><td align="right">{{.DeliveryFee}}</td></tr>
<tr style="font-weight: bold; color: #ff6347;"><td colspan="3" align="right">Total Amount Paid:</td><td align="right">{{.Total}}</td></tr>
</tbody>
</table>
<h3 style="margin-top: 30px;">Delivery Address</h3>
<p><strong>Name:</strong> {{.Address.FirstName}} {{.Address.LastName}}</p>
<p><strong>Street:</strong> {{.Address.Street}}</p>
<p><strong>City/State:</strong> {{.Address.City}}, {{.Address.State}}, {{.Address.Zipcode}}</p>
<p><strong>Contact:</strong> {{.Address.Phone}}</p>
<p style="margin-top: 20px;">Your order status is: <strong>{{.Status}}</strong></p>
<p>Thank you for shopping with FoodiGO!</p>
</div>`))

func (r *ReceiptRenderer) EmailBody(order *domain.Order, customerName string) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, r.view(order, customerName)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
