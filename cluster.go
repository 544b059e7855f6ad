package gridlink

import "context"

// ClusterGroupView es una proyección del cluster: el grupo completo de la
// sesión o un subgrupo derivado. Cada vista (incluidas las derivadas) es
// dueña exclusiva de su propia referencia remota; derivar nunca aliasea la
// referencia del padre.
type ClusterGroupView struct {
	env *Environment
	ref PeerRef
}

// Ref retorna la referencia remota del grupo.
func (g *ClusterGroupView) Ref() PeerRef {
	return g.ref
}

// ForServers deriva el subgrupo solo-servidores. Cada llamada resuelve una
// vista fresca con referencia propia; el caller es el owner y debe cerrarla
// (o transferirla, ver Compute).
func (g *ClusterGroupView) ForServers(ctx context.Context) (*ClusterGroupView, error) {
	ref, err := g.env.call(ctx, g.ref, OpForServers)
	if err != nil {
		return nil, err
	}
	return &ClusterGroupView{env: g.env, ref: ref}, nil
}

// Compute retorna la vista de cómputo sobre los nodos de este grupo.
// Es composición pura: no cruza la frontera. La ComputeView toma ownership
// del grupo; después de llamar Compute se cierra la ComputeView, no el
// grupo directamente.
func (g *ClusterGroupView) Compute() *ComputeView {
	return &ComputeView{env: g.env, group: g}
}

// Close libera la referencia remota del grupo exactamente una vez.
func (g *ClusterGroupView) Close() error {
	return g.ref.Release()
}
