package gridlink

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// lazy es un slot de construcción única para una vista derivada.
// La factory queda ligada al crear el slot y corre a lo sumo una vez por
// ola de llamadas concurrentes: singleflight colapsa la transición
// vacío→construyendo y los perdedores observan el resultado del ganador
// sin re-entrar al gateway.
//
// Política ante falla: el error NO se cachea. Los callers de la ola que
// disparó la construcción reciben la misma falla; el siguiente get
// reintenta la construcción desde cero. El slot nunca retorna un valor
// parcial.
type lazy[T any] struct {
	val       atomic.Pointer[T]
	sf        singleflight.Group
	construct func(context.Context) (*T, error)
}

func newLazy[T any](construct func(context.Context) (*T, error)) *lazy[T] {
	return &lazy[T]{construct: construct}
}

// get retorna la instancia construida, construyéndola en el primer acceso.
func (l *lazy[T]) get(ctx context.Context) (*T, error) {
	if v := l.val.Load(); v != nil {
		return v, nil
	}

	v, err, _ := l.sf.Do("bind", func() (any, error) {
		// Double-check: otra ola pudo completar antes de entrar.
		if v := l.val.Load(); v != nil {
			return v, nil
		}
		t, err := l.construct(ctx)
		if err != nil {
			return nil, err
		}
		l.val.Store(t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*T), nil
}

// peek retorna la instancia si ya fue construida, sin construirla.
// Lo usa el teardown para cerrar solo lo que existe.
func (l *lazy[T]) peek() *T {
	return l.val.Load()
}
