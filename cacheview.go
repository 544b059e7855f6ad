package gridlink

// CacheView es la vista de un cache nombrado del engine. Se obtiene vía
// Session.Cache; la sesión reutiliza vistas vivas por nombre (ver
// Config.CacheViewTTL) y las libera al cerrar.
type CacheView struct {
	env  *Environment
	name string
	ref  PeerRef
}

// Name retorna el nombre del cache remoto.
func (v *CacheView) Name() string {
	return v.name
}

// Ref retorna la referencia remota de la vista.
func (v *CacheView) Ref() PeerRef {
	return v.ref
}

// Close libera la referencia remota de la vista exactamente una vez.
func (v *CacheView) Close() error {
	return v.ref.Release()
}
