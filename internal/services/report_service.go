package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"carwash-backend/internal/models"
	"carwash-backend/internal/repositories"
	"carwash-backend/internal/timeutil"
)

// ReportService renders PDF documents: the customer-facing order receipt and
// the commission report used to settle employees.
type ReportService struct {
	OrderRepo    *repositories.ServiceOrderRepository
	EmployeeRepo *repositories.EmployeeRepository
	LogRepo      *repositories.EmployeeLogRepository
	SettingsRepo *repositories.SystemSettingRepository
}

func NewReportService(
	orderRepo *repositories.ServiceOrderRepository,
	employeeRepo *repositories.EmployeeRepository,
	logRepo *repositories.EmployeeLogRepository,
	settingsRepo *repositories.SystemSettingRepository,
) *ReportService {
	return &ReportService{
		OrderRepo:    orderRepo,
		EmployeeRepo: employeeRepo,
		LogRepo:      logRepo,
		SettingsRepo: settingsRepo,
	}
}

// GenerateOrderReceiptPDF renders a receipt for one service order.
func (s *ReportService) GenerateOrderReceiptPDF(ctx context.Context, orderID string) ([]byte, error) {
	order, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("service order not found: %w", err)
	}
	business := s.SettingsRepo.GetValue(ctx, models.SettingBusinessName, "Lava Rapido")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, business, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Receipt %s - Generated: %s",
		order.OrderNumber, timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Order Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Client: %s", order.ClientName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Plate: %s", order.VehiclePlate), "RB", 1, "L", false, 0, "")
	vehicle := order.VehicleModel
	if vehicle == "" {
		vehicle = "-"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Vehicle: %s", vehicle), "LB", 0, "L", false, 0, "")
	payment := order.PaymentMethod
	if payment == "" {
		payment = "-"
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Payment: %s", payment), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(140, 7, "Service", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 7, "Price", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range order.Services {
		name := line.ServiceName
		if len(name) > 60 {
			name = name[:57] + "..."
		}
		pdf.CellFormat(140, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("R$ %.2f", line.Price), "1", 1, "R", false, 0, "")
	}

	if order.Discount > 0 {
		pdf.CellFormat(140, 6, "Discount", "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("- R$ %.2f", order.Discount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(140, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("R$ %.2f", order.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCommissionReportPDF renders one employee's commission history with
// a paid/unpaid breakdown.
func (s *ReportService) GenerateCommissionReportPDF(ctx context.Context, employeeID string) ([]byte, error) {
	employee, err := s.EmployeeRepo.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}
	logs, err := s.LogRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	business := s.SettingsRepo.GetValue(ctx, models.SettingBusinessName, "Lava Rapido")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, fmt.Sprintf("%s - Commission Report", business), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Employee: %s - Generated: %s",
		employee.Name, timeutil.Now().Format("02-Jan-2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(25, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Order", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Services", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Order Value", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Commission", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Paid", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	var totalPaid, totalUnpaid float64
	for _, l := range logs {
		services := l.ServiceName
		if len(services) > 35 {
			services = services[:32] + "..."
		}
		paid := "No"
		if l.Paid {
			paid = "Yes"
			totalPaid += l.CommissionValue
		} else {
			totalUnpaid += l.CommissionValue
		}
		pdf.CellFormat(25, 6, l.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, l.OrderNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(60, 6, services, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("R$ %.2f", l.ServiceValue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("R$ %.2f", l.CommissionValue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, paid, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 8, fmt.Sprintf("Paid: R$ %.2f", totalPaid), "1", 0, "C", false, 0, "")
	if totalUnpaid > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.CellFormat(95, 8, fmt.Sprintf("Outstanding: R$ %.2f", totalUnpaid), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
