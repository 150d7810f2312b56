package memory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tunezone-api/internal/domain/entity"
)

// SeedCredentials cuentas de demostración. Los invitados no tienen credenciales.
func SeedCredentials() []MockCredential {
	return []MockCredential{
		{Email: "dealer@tunezone.com", Name: "Demo Dealer", Role: entity.RoleDealer, Password: "dealer123"},
		{Email: "admin@tunezone.com", Name: "TuneZone Admin", Role: entity.RoleAdmin, Password: "admin123"},
	}
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedProducts catálogo mock de instrumentos y audio.
func SeedProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "gtr-001", SKU: "TZ-GTR-STRAT", Name: "Player Stratocaster", Description: "Guitarra eléctrica de cuerpo sólido, alder, mástil de arce",
			Price: money("849.99"), WholesalePrice: money("679.00"), Category: "Guitars", Subcategory: "Electric", Brand: "Fender",
			Tags: []string{"bestseller", "electric"}, Rating: 4.8, InStock: true, Stock: 24, Images: []string{"/img/gtr-001.jpg"}, MinOrderQty: 1, MaxOrderQty: 20},
		{ID: "gtr-002", SKU: "TZ-GTR-LP", Name: "Les Paul Standard 50s", Description: "Caoba con tapa de arce, pastillas humbucker",
			Price: money("2699.00"), WholesalePrice: money("2199.00"), Category: "Guitars", Subcategory: "Electric", Brand: "Gibson",
			Tags: []string{"premium", "electric"}, Rating: 4.9, InStock: true, Stock: 6, Images: []string{"/img/gtr-002.jpg"}, MinOrderQty: 1, MaxOrderQty: 5},
		{ID: "gtr-003", SKU: "TZ-GTR-FG800", Name: "FG800 Acoustic", Description: "Acústica dreadnought con tapa sólida de abeto",
			Price: money("219.99"), WholesalePrice: money("159.00"), Category: "Guitars", Subcategory: "Acoustic", Brand: "Yamaha",
			Tags: []string{"beginner", "acoustic", "bestseller"}, Rating: 4.6, InStock: true, Stock: 58, Images: []string{"/img/gtr-003.jpg"}, MinOrderQty: 2, MaxOrderQty: 50},
		{ID: "gtr-004", SKU: "TZ-GTR-D28", Name: "D-28 Standard", Description: "Acústica de palo de rosa, tapa de abeto Sitka",
			Price: money("3199.00"), WholesalePrice: money("2599.00"), Category: "Guitars", Subcategory: "Acoustic", Brand: "Martin",
			Tags: []string{"premium", "acoustic"}, Rating: 4.9, InStock: false, Stock: 0, Images: []string{"/img/gtr-004.jpg"}, MinOrderQty: 1, MaxOrderQty: 3},
		{ID: "bss-001", SKU: "TZ-BSS-PJ", Name: "Precision Bass", Description: "Bajo eléctrico de cuatro cuerdas, pastilla split-coil",
			Price: money("899.99"), WholesalePrice: money("719.00"), Category: "Basses", Subcategory: "Electric", Brand: "Fender",
			Tags: []string{"electric"}, Rating: 4.7, InStock: true, Stock: 9, Images: []string{"/img/bss-001.jpg"}, MinOrderQty: 1, MaxOrderQty: 10},
		{ID: "amp-001", SKU: "TZ-AMP-BLUES", Name: "Blues Junior IV", Description: "Amplificador a válvulas de 15W para guitarra",
			Price: money("699.99"), WholesalePrice: money("549.00"), Category: "Amplifiers", Subcategory: "Guitar", Brand: "Fender",
			Tags: []string{"tube", "bestseller"}, Rating: 4.7, InStock: true, Stock: 14, Images: []string{"/img/amp-001.jpg"}, MinOrderQty: 1, MaxOrderQty: 10},
		{ID: "amp-002", SKU: "TZ-AMP-KATANA", Name: "Katana-50 MkII", Description: "Amplificador de modelado de 50W con efectos",
			Price: money("259.99"), WholesalePrice: money("199.00"), Category: "Amplifiers", Subcategory: "Guitar", Brand: "Boss",
			Tags: []string{"modeling", "beginner"}, Rating: 4.6, InStock: true, Stock: 32, Images: []string{"/img/amp-002.jpg"}, MinOrderQty: 1, MaxOrderQty: 25},
		{ID: "amp-003", SKU: "TZ-AMP-BA210", Name: "BA-210 Bass Combo", Description: "Combo de bajo 450W con dos conos de 10 pulgadas",
			Price: money("799.00"), WholesalePrice: money("629.00"), Category: "Amplifiers", Subcategory: "Bass", Brand: "Ampeg",
			Tags: []string{"bass"}, Rating: 4.4, InStock: true, Stock: 4, Images: []string{"/img/amp-003.jpg"}, MinOrderQty: 1, MaxOrderQty: 4},
		{ID: "drm-001", SKU: "TZ-DRM-TD07", Name: "TD-07KV V-Drums", Description: "Batería electrónica con parches de malla",
			Price: money("1099.99"), WholesalePrice: money("879.00"), Category: "Drums", Subcategory: "Electronic", Brand: "Roland",
			Tags: []string{"electronic", "bestseller"}, Rating: 4.5, InStock: true, Stock: 7, Images: []string{"/img/drm-001.jpg"}, MinOrderQty: 1, MaxOrderQty: 5},
		{ID: "drm-002", SKU: "TZ-DRM-SNARE", Name: "Supraphonic Snare 14x5", Description: "Redoblante de aluminio, sonido brillante",
			Price: money("549.00"), WholesalePrice: money("439.00"), Category: "Drums", Subcategory: "Acoustic", Brand: "Ludwig",
			Tags: []string{"premium"}, Rating: 4.8, InStock: true, Stock: 11, Images: []string{"/img/drm-002.jpg"}, MinOrderQty: 1, MaxOrderQty: 10},
		{ID: "key-001", SKU: "TZ-KEY-P125", Name: "P-125 Digital Piano", Description: "Piano digital de 88 teclas con acción GHS",
			Price: money("699.99"), WholesalePrice: money("559.00"), Category: "Keyboards", Subcategory: "Digital Piano", Brand: "Yamaha",
			Tags: []string{"beginner", "bestseller"}, Rating: 4.7, InStock: true, Stock: 19, Images: []string{"/img/key-001.jpg"}, MinOrderQty: 1, MaxOrderQty: 15},
		{ID: "key-002", SKU: "TZ-KEY-MINILOGUE", Name: "Minilogue XD", Description: "Sintetizador analógico polifónico de 4 voces",
			Price: money("649.99"), WholesalePrice: money("519.00"), Category: "Keyboards", Subcategory: "Synthesizer", Brand: "Korg",
			Tags: []string{"synth", "analog"}, Rating: 4.8, InStock: false, Stock: 0, Images: []string{"/img/key-002.jpg"}, MinOrderQty: 1, MaxOrderQty: 8},
		{ID: "rec-001", SKU: "TZ-REC-SM58", Name: "SM58 Vocal Microphone", Description: "Micrófono dinámico cardioide para voz",
			Price: money("99.99"), WholesalePrice: money("74.00"), Category: "Recording", Subcategory: "Microphones", Brand: "Shure",
			Tags: []string{"bestseller", "live"}, Rating: 4.9, InStock: true, Stock: 120, Images: []string{"/img/rec-001.jpg"}, MinOrderQty: 5, MaxOrderQty: 100},
		{ID: "rec-002", SKU: "TZ-REC-SCAR2I2", Name: "Scarlett 2i2 4th Gen", Description: "Interfaz de audio USB de 2 entradas",
			Price: money("199.99"), WholesalePrice: money("154.00"), Category: "Recording", Subcategory: "Interfaces", Brand: "Focusrite",
			Tags: []string{"studio", "bestseller"}, Rating: 4.7, InStock: true, Stock: 42, Images: []string{"/img/rec-002.jpg"}, MinOrderQty: 2, MaxOrderQty: 40},
		{ID: "acc-001", SKU: "TZ-ACC-CABLE6", Name: "Instrument Cable 6m", Description: "Cable de instrumento plug recto, baja capacitancia",
			Price: money("24.99"), WholesalePrice: money("14.50"), Category: "Accessories", Subcategory: "Cables", Brand: "Mogami",
			Tags: []string{"live", "studio"}, Rating: 4.5, InStock: true, Stock: 260, Images: []string{"/img/acc-001.jpg"}, MinOrderQty: 10, MaxOrderQty: 200},
		{ID: "acc-002", SKU: "TZ-ACC-STR1046", Name: "Regular Slinky 10-46", Description: "Juego de cuerdas niqueladas para eléctrica",
			Price: money("7.99"), WholesalePrice: money("4.20"), Category: "Accessories", Subcategory: "Strings", Brand: "Ernie Ball",
			Tags: []string{"bestseller", "electric"}, Rating: 4.8, InStock: true, Stock: 8, Images: []string{"/img/acc-002.jpg"}, MinOrderQty: 12, MaxOrderQty: 500},
	}
}

// SeedBackoffice genera ventas, garantías y tickets mock relativos a now.
func SeedBackoffice(now time.Time) ([]entity.SaleRecord, []entity.WarrantyClaim, []entity.SupportTicket) {
	day := 24 * time.Hour
	at := func(d time.Duration) time.Time { return now.Add(-d) }
	ptr := func(t time.Time) *time.Time { return &t }

	type line struct {
		productID, name string
		qty             int
		unit            string
		ago             time.Duration
	}
	lines := []line{
		{"gtr-001", "Player Stratocaster", 4, "679.00", 2 * time.Hour},
		{"rec-001", "SM58 Vocal Microphone", 20, "74.00", 5 * time.Hour},
		{"acc-002", "Regular Slinky 10-46", 120, "4.20", 1 * day},
		{"amp-002", "Katana-50 MkII", 6, "199.00", 3 * day},
		{"key-001", "P-125 Digital Piano", 3, "559.00", 6 * day},
		{"gtr-003", "FG800 Acoustic", 10, "159.00", 9 * day},
		{"rec-002", "Scarlett 2i2 4th Gen", 8, "154.00", 12 * day},
		{"drm-001", "TD-07KV V-Drums", 2, "879.00", 20 * day},
		{"gtr-002", "Les Paul Standard 50s", 1, "2199.00", 35 * day},
		{"amp-001", "Blues Junior IV", 3, "549.00", 40 * day},
		{"acc-001", "Instrument Cable 6m", 50, "14.50", 45 * day},
		{"bss-001", "Precision Bass", 2, "719.00", 52 * day},
	}
	sales := make([]entity.SaleRecord, 0, len(lines))
	for i, l := range lines {
		sales = append(sales, entity.SaleRecord{
			ID:          fmt.Sprintf("sale-%03d", i+1),
			OrderID:     fmt.Sprintf("mock-order-%03d", i+1),
			ProductID:   l.productID,
			ProductName: l.name,
			Quantity:    l.qty,
			Revenue:     money(l.unit).Mul(decimal.NewFromInt(int64(l.qty))),
			SoldAt:      at(l.ago),
		})
	}

	claims := []entity.WarrantyClaim{
		{ID: "wty-001", ProductID: "amp-001", SKU: "TZ-AMP-BLUES", Dealer: "Rock Shop Norte", Issue: "Ruido en válvula de potencia",
			Status: entity.WarrantyPending, OpenedAt: at(2 * day)},
		{ID: "wty-002", ProductID: "gtr-001", SKU: "TZ-GTR-STRAT", Dealer: "Guitar Center Sur", Issue: "Fisura en el barniz",
			Status: entity.WarrantyApproved, OpenedAt: at(10 * day), ResolvedAt: ptr(at(7 * day))},
		{ID: "wty-003", ProductID: "drm-001", SKU: "TZ-DRM-TD07", Dealer: "Beat House", Issue: "Pad de redoblante sin respuesta",
			Status: entity.WarrantyCompleted, OpenedAt: at(25 * day), ResolvedAt: ptr(at(20 * day))},
		{ID: "wty-004", ProductID: "acc-001", SKU: "TZ-ACC-CABLE6", Dealer: "Rock Shop Norte", Issue: "Daño por uso indebido",
			Status: entity.WarrantyRejected, OpenedAt: at(15 * day), ResolvedAt: ptr(at(14 * day))},
		{ID: "wty-005", ProductID: "key-001", SKU: "TZ-KEY-P125", Dealer: "Music Hall", Issue: "Tecla Do4 trabada",
			Status: entity.WarrantyPending, OpenedAt: at(1 * day)},
	}

	tickets := []entity.SupportTicket{
		{ID: "tkt-001", Subject: "Demora en despacho de pedido", Dealer: "Beat House", Status: entity.TicketOpen,
			Priority: entity.PriorityHigh, OpenedAt: at(3 * time.Hour)},
		{ID: "tkt-002", Subject: "Factura con precio incorrecto", Dealer: "Music Hall", Status: entity.TicketInProgress,
			Priority: entity.PriorityUrgent, OpenedAt: at(1 * day), FirstResponseAt: ptr(at(1*day - 20*time.Minute))},
		{ID: "tkt-003", Subject: "Alta de nuevo usuario distribuidor", Dealer: "Guitar Center Sur", Status: entity.TicketResolved,
			Priority: entity.PriorityLow, OpenedAt: at(4 * day), FirstResponseAt: ptr(at(4*day - 90*time.Minute)), ResolvedAt: ptr(at(3 * day))},
		{ID: "tkt-004", Subject: "Consulta de stock de Les Paul", Dealer: "Rock Shop Norte", Status: entity.TicketClosed,
			Priority: entity.PriorityMedium, OpenedAt: at(8 * day), FirstResponseAt: ptr(at(8*day - 40*time.Minute)), ResolvedAt: ptr(at(8*day - 3*time.Hour))},
		{ID: "tkt-005", Subject: "Error al descargar catálogo PDF", Dealer: "Beat House", Status: entity.TicketResolved,
			Priority: entity.PriorityMedium, OpenedAt: at(6 * day), FirstResponseAt: ptr(at(6*day - 30*time.Minute)), ResolvedAt: ptr(at(5 * day))},
	}

	return sales, claims, tickets
}
