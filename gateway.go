package gridlink

import "context"

// Op identifica una operación nombrada que cruza la frontera del runtime.
// El encoding concreto de cada operación es asunto del Gateway.
type Op string

const (
	// OpOpenSession establece la sesión y retorna la referencia raíz.
	OpOpenSession Op = "session.open"

	// OpResolveTransactions resuelve el coordinador de transacciones
	// scoped a la sesión.
	OpResolveTransactions Op = "transactions.resolve"

	// OpResolveClusterGroup resuelve la proyección completa del cluster.
	OpResolveClusterGroup Op = "cluster.projection"

	// OpForServers deriva el subgrupo solo-servidores de un grupo.
	OpForServers Op = "cluster.forServers"

	// OpResolveCache resuelve la vista de un cache nombrado (args[0] = nombre).
	OpResolveCache Op = "cache.resolve"
)

// ErrorDescriptor es el descriptor estructurado que el Gateway produce
// cuando una llamada falla del otro lado de la frontera. Se consume solo
// durante la traducción a BoundaryError; nunca se retiene.
type ErrorDescriptor struct {
	Code    int32
	Class   string
	Message string
}

// Gateway ejecuta llamadas a través de la frontera del runtime.
//
// Una llamada es exitosa solo si retorna una referencia no-cero con
// descriptor nil. Este layer no impone serialización ni timeouts propios;
// ambos son responsabilidad de la implementación del gateway.
type Gateway interface {
	Call(ctx context.Context, target PeerRef, op Op, args ...string) (PeerRef, *ErrorDescriptor)
}
