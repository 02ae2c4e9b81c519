package stockanalytics

// reportLabels textos del reporte por idioma (clave: código base del idioma).
type reportLabels struct {
	Title, GeneratedOn, GlobalStats, Margins                                       string
	GrossMargin, RemainingStock, StockInitial, PurchaseValue, SalesValue, QtySold string
	Dormant, Product, Sales, Purchase, Margin, AllProducts                        string
}

var labelsByLang = map[string]reportLabels{
	"fr": {
		Title:          "RAPPORT DE GESTION DE STOCK AVANCÉ",
		GeneratedOn:    "Généré le",
		GlobalStats:    "Statistiques Globales",
		Margins:        "Marges par produit",
		GrossMargin:    "Marge Brute Totale",
		RemainingStock: "Valeur Stock Restant",
		StockInitial:   "Stock initial total",
		PurchaseValue:  "Valeur d'achat du stock",
		SalesValue:     "Ventes totales",
		QtySold:        "Quantité vendue",
		Dormant:        "Produits dormants",
		Product:        "Produit",
		Sales:          "Ventes",
		Purchase:       "Achat",
		Margin:         "Marge",
		AllProducts:    "Tous les produits",
	},
	"es": {
		Title:          "REPORTE AVANZADO DE GESTIÓN DE STOCK",
		GeneratedOn:    "Generado el",
		GlobalStats:    "Estadísticas globales",
		Margins:        "Márgenes por producto",
		GrossMargin:    "Margen bruto total",
		RemainingStock: "Stock restante",
		StockInitial:   "Stock inicial total",
		PurchaseValue:  "Valor de compra del stock",
		SalesValue:     "Ventas totales",
		QtySold:        "Cantidad vendida",
		Dormant:        "Productos sin rotación",
		Product:        "Producto",
		Sales:          "Ventas",
		Purchase:       "Compra",
		Margin:         "Margen",
		AllProducts:    "Todos los productos",
	},
	"en": {
		Title:          "ADVANCED STOCK MANAGEMENT REPORT",
		GeneratedOn:    "Generated on",
		GlobalStats:    "Global statistics",
		Margins:        "Margins by product",
		GrossMargin:    "Total gross margin",
		RemainingStock: "Remaining stock",
		StockInitial:   "Total initial stock",
		PurchaseValue:  "Stock purchase value",
		SalesValue:     "Total sales",
		QtySold:        "Quantity sold",
		Dormant:        "Dormant products",
		Product:        "Product",
		Sales:          "Sales",
		Purchase:       "Purchase",
		Margin:         "Margin",
		AllProducts:    "All products",
	},
}

func labelsFor(lang string) reportLabels {
	if l, ok := labelsByLang[lang]; ok {
		return l
	}
	return labelsByLang["fr"]
}
