package gridlink

import "context"

// Connect establece una sesión contra el engine a través del gateway dado
// y retorna su handle. El handshake es una única llamada de frontera
// (OpOpenSession, sin target); su falla se traduce igual que cualquier otra.
//
// El gateway lo construye el caller (ver internal/gateway/rest para la
// implementación HTTP); Connect solo necesita el contrato Gateway.
func Connect(ctx context.Context, gw Gateway, cfg Config) (*Session, error) {
	env := NewEnvironment(cfg, gw)
	ref, err := env.call(ctx, PeerRef{}, OpOpenSession, cfg.Instance)
	if err != nil {
		return nil, &ConstructionError{Component: "session", Err: err}
	}
	return NewSession(env, ref), nil
}
