package gridlink

// ComputeView ejecuta cómputo sobre los nodos de su grupo. Se construye por
// composición (ver Session.Compute y ClusterGroupView.Compute): no tiene
// referencia remota propia sino que es dueña del grupo sobre el que opera.
// El protocolo de submission de tasks queda fuera de este layer.
type ComputeView struct {
	env   *Environment
	group *ClusterGroupView
}

// Group retorna el grupo del que esta vista es owner.
func (v *ComputeView) Group() *ClusterGroupView {
	return v.group
}

// Close libera el grupo subyacente.
func (v *ComputeView) Close() error {
	return v.group.Close()
}
