package models

// Currency describe una moneda soportada para el análisis
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// SupportedCurrencies es la lista de monedas disponibles para mostrar el
// análisis. El precio de BTC se obtiene directo en la moneda cuando la API
// lo soporta, o se convierte desde USD con las tasas de cambio.
var SupportedCurrencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CLP", Symbol: "CLP$", Name: "Chilean Peso"},
	{Code: "COP", Symbol: "COP$", Name: "Colombian Peso"},
	{Code: "CRC", Symbol: "₡", Name: "Costa Rican Colón"},
	{Code: "DOP", Symbol: "RD$", Name: "Dominican Peso"},
	{Code: "GHS", Symbol: "GH₵", Name: "Ghanaian Cedi"},
	{Code: "GTQ", Symbol: "Q", Name: "Guatemalan Quetzal"},
	{Code: "HNL", Symbol: "L", Name: "Honduran Lempira"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "KZT", Symbol: "₸", Name: "Kazakhstani Tenge"},
	{Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso"},
	{Code: "MNT", Symbol: "₮", Name: "Mongolian Tugrik"},
	{Code: "NAD", Symbol: "N$", Name: "Namibian Dollar"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "NIO", Symbol: "C$", Name: "Nicaraguan Córdoba"},
	{Code: "PAB", Symbol: "B/.", Name: "Panamanian Balboa"},
	{Code: "PYG", Symbol: "₲", Name: "Paraguayan Guarani"},
	{Code: "PEN", Symbol: "S/.", Name: "Peruvian Sol"},
	{Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{Code: "RSD", Symbol: "din.", Name: "Serbian Dinar"},
	{Code: "SCR", Symbol: "SR", Name: "Seychellois Rupee"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar"},
	{Code: "UGX", Symbol: "USh", Name: "Ugandan Shilling"},
	{Code: "AED", Symbol: "د.إ", Name: "United Arab Emirates Dirham"},
	{Code: "UYU", Symbol: "$U", Name: "Uruguayan Peso"},
	{Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	{Code: "XOF", Symbol: "CFA", Name: "West African CFA Franc"},
	{Code: "AZN", Symbol: "₼", Name: "Azerbaijani Manat"},
	{Code: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar"},
	{Code: "BBD", Symbol: "Bds$", Name: "Barbadian Dollar"},
	{Code: "GEL", Symbol: "₾", Name: "Georgian Lari"},
	{Code: "GNF", Symbol: "FG", Name: "Guinean Franc"},
	{Code: "LAK", Symbol: "₭", Name: "Lao Kip"},
	{Code: "MZN", Symbol: "MT", Name: "Mozambican Metical"},
}

// IsSupportedCurrency verifica si un código de moneda está en la lista
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
