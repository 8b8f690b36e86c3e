// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/mazhar-devx/shophub-storefront/internal/checkout"
	"github.com/mazhar-devx/shophub-storefront/internal/config"
	"github.com/mazhar-devx/shophub-storefront/internal/pkg/money"
	"golang.org/x/text/currency"
)

// Service renders order confirmation receipts as PDF
type Service struct {
	config *config.Config
	unit   currency.Unit
}

// NewService creates a receipt service
func NewService(cfg *config.Config) (*Service, error) {
	unit, err := money.ParseCurrency(cfg.App.Currency)
	if err != nil {
		return nil, err
	}

	return &Service{
		config: cfg,
		unit:   unit,
	}, nil
}

// receiptData is the template input
type receiptData struct {
	Order       *checkout.Order
	OrderDate   string
	Company     companyInfo
	Lines       []receiptLine
	Total       string
	GeneratedAt string
}

type companyInfo struct {
	Name    string
	Email   string
	Website string
}

type receiptLine struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

// Generate renders the receipt PDF for an order
func (s *Service) Generate(order *checkout.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.renderHTML(order)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(htmlContent))
	page.EnableLocalFileAccess.Set(true)
	pdfg.AddPage(page)

	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
	pdfg.MarginTop.Set(10)
	pdfg.MarginBottom.Set(10)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}

	return pdfg.Buffer(), nil
}

// Save renders the receipt and writes it under the configured output dir,
// returning the file path
func (s *Service) Save(order *checkout.Order) (string, error) {
	buf, err := s.Generate(order)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.config.Receipt.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt directory: %w", err)
	}

	path := filepath.Join(s.config.Receipt.OutputDir, fmt.Sprintf("receipt-%s.pdf", order.OrderNumber))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return path, nil
}

func (s *Service) renderHTML(order *checkout.Order) ([]byte, error) {
	lines := make([]receiptLine, len(order.Items))
	for i, item := range order.Items {
		lines[i] = receiptLine{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    money.FormatCode(item.Price, s.unit),
			Total:    money.FormatCode(item.Price*int64(item.Quantity), s.unit),
		}
	}

	data := receiptData{
		Order:     order,
		OrderDate: order.PlacedAt.Format("January 2, 2006"),
		Company: companyInfo{
			Name:    s.config.Receipt.CompanyName,
			Email:   s.config.Receipt.CompanyEmail,
			Website: s.config.Receipt.CompanyWeb,
		},
		Lines:       lines,
		Total:       money.FormatCode(order.TotalPrice, s.unit),
		GeneratedAt: time.Now().Format(time.RFC1123),
	}

	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse receipt template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute receipt template: %w", err)
	}

	return buf.Bytes(), nil
}
