// gridlinkctl es el CLI de diagnóstico del SDK: abre una sesión contra el
// engine y prueba las capacidades del handle.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dropDatabas3/gridlink"
	"github.com/dropDatabas3/gridlink/internal/config"
	"github.com/dropDatabas3/gridlink/internal/gateway/rest"
	"github.com/dropDatabas3/gridlink/internal/metrics"
	"github.com/dropDatabas3/gridlink/internal/observability/logger"
)

var (
	cfgPath   string
	outFormat string // "json" | "text"
)

func main() {
	// .env es opcional; los overrides reales son GRIDLINK_*.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "gridlinkctl",
		Short:         "Diagnóstico de sesiones gridlink",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "ruta al config.yaml (opcional si hay GRIDLINK_*)")
	root.PersistentFlags().StringVarP(&outFormat, "out", "o", "text", "formato de salida: text|json")

	root.AddCommand(infoCmd(), probeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// connect abre la sesión según el config cargado.
func connect(ctx context.Context) (*gridlink.Session, error) {
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Config{Env: c.Log.Env, Level: c.Log.Level, Instance: c.Engine.Instance})
	if err := metrics.Register(nil); err != nil {
		return nil, err
	}

	cfg := c.Session()
	return dial(ctx, cfg, func(addr string) gridlink.Gateway {
		return rest.New(rest.Config{
			BaseURL:    addr,
			AuthSecret: cfg.AuthSecret,
			Timeout:    cfg.CallTimeout,
		})
	})
}

// dial intenta el handshake contra cada address en orden y retorna la
// primera sesión establecida; si todas fallan, el último error.
func dial(ctx context.Context, cfg gridlink.Config, mk func(addr string) gridlink.Gateway) (*gridlink.Session, error) {
	var lastErr error
	for _, addr := range cfg.Addresses {
		s, err := gridlink.Connect(ctx, mk(addr), cfg)
		if err == nil {
			return s, nil
		}
		lastErr = err
		logger.L().Warn("connect failed, trying next address", logger.Endpoint(addr), logger.Err(err))
	}
	return nil, lastErr
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Abre la sesión e imprime nombre y configuración",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			cfg := s.Configuration()
			output(map[string]any{
				"name":           s.Name(),
				"addresses":      cfg.Addresses,
				"call_timeout":   cfg.CallTimeout.String(),
				"cache_view_ttl": cfg.CacheViewTTL.String(),
				"auth":           cfg.AuthSecret != "",
			})
			return nil
		},
	}
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Resuelve transacciones, cluster y compute, y reporta cada resultado",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := connect(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			type result struct {
				OK       bool   `json:"ok"`
				Peer     string `json:"peer,omitempty"`
				Error    string `json:"error,omitempty"`
				Duration string `json:"duration"`
			}
			var mu sync.Mutex
			out := map[string]*result{}
			timed := func(name string, fn func() (string, error)) func() error {
				return func() error {
					start := time.Now()
					peer, err := fn()
					r := &result{OK: err == nil, Peer: peer, Duration: time.Since(start).String()}
					if err != nil {
						r.Error = err.Error()
					}
					mu.Lock()
					out[name] = r
					mu.Unlock()
					return nil
				}
			}

			// Las dos resoluciones perezosas en paralelo; compute después,
			// para que reutilice la proyección ya construida.
			g, gctx := errgroup.WithContext(ctx)
			g.Go(timed("transactions", func() (string, error) {
				tx, err := s.Transactions(gctx)
				if err != nil {
					return "", err
				}
				return tx.Ref().ID(), nil
			}))
			g.Go(timed("cluster", func() (string, error) {
				grp, err := s.ClusterGroup(gctx)
				if err != nil {
					return "", err
				}
				return grp.Ref().ID(), nil
			}))
			_ = g.Wait()

			_ = timed("compute", func() (string, error) {
				cmp, err := s.Compute(ctx)
				if err != nil {
					return "", err
				}
				defer cmp.Close()
				return cmp.Group().Ref().ID(), nil
			})()

			output(out)
			for _, r := range out {
				if !r.OK {
					return fmt.Errorf("probe found failures")
				}
			}
			return nil
		},
	}
}

func output(v any) {
	if outFormat == "json" {
		b, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(b))
		return
	}
	switch m := v.(type) {
	case map[string]any:
		for k, val := range m {
			fmt.Printf("%s=%v\n", k, val)
		}
	default:
		b, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(b))
	}
}
