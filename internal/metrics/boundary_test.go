package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}

	BoundaryCalls.WithLabelValues("session.open", "ok").Inc()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range mfs {
		if mf.GetName() == "gridlink_boundary_calls_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("gridlink_boundary_calls_total no quedó registrada")
	}
}

func TestRegister_Idempotent(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("primer register: %v", err)
	}
	// Un segundo Register sobre el mismo registry no debe fallar.
	if err := Register(reg); err != nil {
		t.Fatalf("segundo register: %v", err)
	}
}
