// internal/pkg/receipt/template.go
package receipt

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Arial, sans-serif; color: #333; margin: 40px; }
  h1 { font-size: 22px; }
  .meta { color: #777; font-size: 12px; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { text-align: left; padding: 8px; border-bottom: 1px solid #ddd; }
  th { background: #f5f5f5; }
  .total { font-weight: bold; font-size: 16px; text-align: right; margin-top: 16px; }
  .footer { margin-top: 48px; color: #999; font-size: 11px; }
</style>
</head>
<body>
  <h1>{{.Company.Name}} — Order Receipt</h1>
  <div class="meta">
    Order {{.Order.OrderNumber}} &middot; {{.OrderDate}} &middot; Status: {{.Order.Status}}
  </div>

  <table>
    <tr><th>Item</th><th>Qty</th><th>Price</th><th>Total</th></tr>
    {{range .Lines}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.Quantity}}</td>
      <td>{{.Price}}</td>
      <td>{{.Total}}</td>
    </tr>
    {{end}}
  </table>

  <p class="total">Total: {{.Total}}</p>

  <div class="footer">
    {{.Company.Name}} &middot; {{.Company.Email}} &middot; {{.Company.Website}}<br>
    Generated {{.GeneratedAt}}
  </div>
</body>
</html>`
