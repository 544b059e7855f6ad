package gridlink

import "time"

// Config es la configuración de una sesión. Es una vista de solo lectura
// después de Connect: Session.Configuration retorna una copia por valor.
type Config struct {
	// Addresses son los endpoints del engine (host:port).
	Addresses []string

	// Instance es el nombre de instancia de esta sesión, visible en
	// Session.Name y en los logs.
	Instance string

	// AuthSecret firma el token de autenticación del gateway (HS256).
	// Vacío deshabilita auth.
	AuthSecret string

	// CallTimeout es el timeout por llamada del gateway REST.
	// 0 usa el default del gateway.
	CallTimeout time.Duration

	// CacheViewTTL es cuánto tiempo una CacheView resuelta se reutiliza
	// antes de re-resolverse. 0 = sin expiración (viven hasta Close).
	CacheViewTTL time.Duration
}
