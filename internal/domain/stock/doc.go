// Package stock contiene el motor de agregación analítica de stock: transforma el
// catálogo de productos y el libro de facturas en las vistas derivadas que consumen
// los gráficos y el reporte (evolución de stock, distribución, márgenes, tendencia
// mensual, heatmap producto×mes y KPIs globales).
//
// Todas las funciones son puras: no mutan sus entradas, no guardan estado entre
// llamadas y devuelven resultados idénticos para entradas idénticas.
package stock
