package gridlink

// TransactionsView es el coordinador de transacciones de la sesión.
// Se obtiene vía Session.Transactions; es dueña exclusiva de su referencia
// remota hasta Close. El protocolo transaccional en sí vive del otro lado
// de la frontera y queda fuera de este layer.
type TransactionsView struct {
	env *Environment
	ref PeerRef
}

// Ref retorna la referencia remota del coordinador.
func (v *TransactionsView) Ref() PeerRef {
	return v.ref
}

// Close libera la referencia remota del coordinador exactamente una vez.
func (v *TransactionsView) Close() error {
	return v.ref.Release()
}
