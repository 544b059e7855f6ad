package gridlink

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Session es el handle top-level de una sesión establecida con el engine.
// Es dueña exclusiva de su referencia raíz (liberada en Close) y comparte
// su Environment con toda vista derivada. Las vistas de transacciones y
// cluster se resuelven perezosamente: una sola llamada de frontera por
// slot, sin importar cuántos goroutines llamen al accessor.
//
// Todos los métodos son seguros para uso concurrente.
type Session struct {
	env *Environment
	ref PeerRef

	tx  *lazy[TransactionsView]
	grp *lazy[ClusterGroupView]

	// Vistas de caches nombrados, reutilizadas por nombre hasta expirar.
	cacheViews *gocache.Cache
	cacheSF    singleflight.Group

	closed atomic.Bool
}

// NewSession construye el handle sobre una referencia de sesión ya abierta.
// La mayoría de los callers usan Connect; NewSession queda expuesto para
// gateways alternativos que establecen la sesión por su cuenta.
func NewSession(env *Environment, ref PeerRef) *Session {
	s := &Session{env: env, ref: ref}
	s.tx = newLazy(s.resolveTransactions)
	s.grp = newLazy(s.resolveClusterGroup)

	ttl := env.cfg.CacheViewTTL
	cleanup := time.Duration(0)
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	} else {
		// El janitor libera las referencias de vistas expiradas.
		cleanup = ttl
	}
	s.cacheViews = gocache.New(ttl, cleanup)
	s.cacheViews.OnEvicted(func(_ string, v interface{}) {
		_ = v.(*CacheView).Close()
	})
	return s
}

// Name retorna el identificador de instancia de la sesión.
func (s *Session) Name() string {
	return s.env.Name()
}

// Configuration retorna la configuración de la sesión (solo lectura).
func (s *Session) Configuration() Config {
	return s.env.Configuration()
}

// Transactions retorna el coordinador de transacciones, resolviéndolo a
// través de la frontera en el primer acceso.
func (s *Session) Transactions(ctx context.Context) (*TransactionsView, error) {
	v, err := s.tx.get(ctx)
	if err != nil {
		return nil, &ConstructionError{Component: "transactions", Err: err}
	}
	return v, nil
}

// ClusterGroup retorna la proyección completa del cluster, resolviéndola a
// través de la frontera en el primer acceso.
func (s *Session) ClusterGroup(ctx context.Context) (*ClusterGroupView, error) {
	v, err := s.grp.get(ctx)
	if err != nil {
		return nil, &ConstructionError{Component: "cluster group", Err: err}
	}
	return v, nil
}

// Compute retorna una vista de cómputo sobre los servidores del cluster.
// No se cachea a nivel de sesión: es composición pura sobre la proyección
// (resuelta perezosamente) y un subgrupo solo-servidores fresco — esas dos
// resoluciones son las únicas llamadas de frontera involucradas. El caller
// es owner de la vista retornada y debe cerrarla.
func (s *Session) Compute(ctx context.Context) (*ComputeView, error) {
	grp, err := s.ClusterGroup(ctx)
	if err != nil {
		return nil, err
	}
	servers, err := grp.ForServers(ctx)
	if err != nil {
		return nil, err
	}
	return servers.Compute(), nil
}

// Cache retorna la vista del cache nombrado. Las vistas vivas se reutilizan
// por nombre (TTL en Config.CacheViewTTL); una vista expirada se re-resuelve
// con referencia fresca y la anterior se libera. Resoluciones concurrentes
// del mismo nombre colapsan en una sola llamada de frontera.
func (s *Session) Cache(ctx context.Context, name string) (*CacheView, error) {
	if v, ok := s.cacheViews.Get(name); ok {
		return v.(*CacheView), nil
	}

	v, err, _ := s.cacheSF.Do(name, func() (interface{}, error) {
		if v, ok := s.cacheViews.Get(name); ok {
			return v, nil
		}
		ref, err := s.env.call(ctx, s.ref, OpResolveCache, name)
		if err != nil {
			return nil, &ConstructionError{Component: fmt.Sprintf("cache %q", name), Err: err}
		}
		view := &CacheView{env: s.env, name: name, ref: ref}
		// Delete libera una vista expirada que estemos reemplazando.
		s.cacheViews.Delete(name)
		s.cacheViews.SetDefault(name, view)
		return view, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CacheView), nil
}

// Close termina la sesión: cierra solo las vistas que llegaron a
// construirse y libera la referencia raíz exactamente una vez.
// Llamadas posteriores son no-ops.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	if tx := s.tx.peek(); tx != nil {
		errs = append(errs, tx.Close())
	}
	if grp := s.grp.peek(); grp != nil {
		errs = append(errs, grp.Close())
	}
	// Items() omite entradas vencidas que el janitor todavía no barrió;
	// DeleteExpired las libera antes de drenar las vivas.
	s.cacheViews.DeleteExpired()
	for name := range s.cacheViews.Items() {
		s.cacheViews.Delete(name)
	}
	errs = append(errs, s.ref.Release())
	return errors.Join(errs...)
}

func (s *Session) resolveTransactions(ctx context.Context) (*TransactionsView, error) {
	ref, err := s.env.call(ctx, s.ref, OpResolveTransactions)
	if err != nil {
		return nil, err
	}
	return &TransactionsView{env: s.env, ref: ref}, nil
}

func (s *Session) resolveClusterGroup(ctx context.Context) (*ClusterGroupView, error) {
	ref, err := s.env.call(ctx, s.ref, OpResolveClusterGroup)
	if err != nil {
		return nil, err
	}
	return &ClusterGroupView{env: s.env, ref: ref}, nil
}
