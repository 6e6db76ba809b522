package models

import "time"

// Preferences son las preferencias del usuario que persisten entre sesiones:
// la moneda de análisis, el auto-refresco del precio y si las transferencias
// on-chain se incluyen en las tenencias
type Preferences struct {
	Currency       string    `json:"currency"`
	AutoRefresh    bool      `json:"auto_refresh"`
	IncludeOnChain bool      `json:"include_on_chain"`
	UpdatedAt      time.Time `json:"updated_at"`
}
