// Package pdf genera el comprobante de pago de un pedido mayorista.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: TuneZone Wholesale   │  Referencia + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Email + tipo de cuenta                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | SKU | P.Unit | Subtotal            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total lista / Ahorro mayorista / TOTAL PAGADO      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de la referencia + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 24, Green: 24, Blue: 27}
	colorAccent  = &props.Color{Red: 217, Green: 119, Blue: 6}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator implementa checkout.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	storeName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(storeName string) *MarotoReceiptGenerator {
	if storeName == "" {
		storeName = "TuneZone Wholesale"
	}
	return &MarotoReceiptGenerator{storeName: storeName}
}

// GenerateReceiptPDF genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, order *entity.Order, qrPayload string) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: pedido nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante "+order.Reference, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(order)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(order, qrPayload)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) headerRow(order *entity.Order) core.Row {
	date := order.CreatedAt.Format("02/01/2006 15:04")
	if order.PaidAt != nil {
		date = order.PaidAt.Format("02/01/2006 15:04")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Distribución mayorista de instrumentos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorAccent, Top: 1,
			}),
			text.New(order.Reference, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(order *entity.Order) core.Row {
	account := "Distribuidor"
	if order.Role == entity.RoleAdmin {
		account = "Administrador"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Cuenta: %s   |   Pedido: %s", order.Email, account, order.ID),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("SKU", 2, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

func tableDetailRows(order *entity.Order) []core.Row {
	result := make([]core.Row, 0, len(order.Items))
	for _, it := range order.Items {
		unit := order.UnitPrice(it)
		sub := unit.Mul(decimal.NewFromInt(int64(it.Quantity)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprint(it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(it.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 7, Align: align.Left, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(FormatMoney(unit), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(FormatMoney(sub), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(order *entity.Order) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorAccent, Right: 1})
	}
	t := order.Totals
	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Total lista:"),
			label(fmt.Sprintf("Ahorro mayorista (%d%%):", t.SavingsPercent)),
			label("TOTAL PAGADO:"),
		),
		col.New(4).Add(
			value(FormatMoney(t.TotalRetail)),
			value(FormatMoney(t.Savings)),
			grand(FormatMoney(order.Amount)),
		),
	)
}

func footerRows(order *entity.Order, qrPayload string) []core.Row {
	rows := []core.Row{row.New(3)}
	if qrPayload != "" {
		rows = append(rows, row.New(40).Add(
			col.New(3).Add(code.NewQr(qrPayload, props.Rect{Percent: 95, Center: true})),
			col.New(9).Add(
				text.New("Referencia de pago: "+order.Reference, props.Text{
					Style: fontstyle.Bold, Size: 9, Top: 4, Left: 3,
				}),
				text.New("Presenta este código para consultas sobre el pedido.", props.Text{
					Size: 8, Top: 12, Left: 3, Color: colorGray,
				}),
			),
		))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New("Documento de demostración. El pago fue simulado y no constituye una factura fiscal.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))
	return rows
}

// FormatMoney formatea con separador de miles y dos decimales. Ej: 1699.98 → "$1,699.98".
func FormatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return sign + "$" + string(buf) + "." + frac
}
