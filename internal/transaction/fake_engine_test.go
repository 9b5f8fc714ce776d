package transaction

import (
	"context"
	"fmt"

	"github.com/conn-castle/click-backend/internal/pk"
)

// fakeEngine scripts audit and install results per path and records every call.
type fakeEngine struct {
	ids         map[string]pk.PackageID
	auditErrs   map[string]error
	installErrs map[string]error
	calls       []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		ids:         map[string]pk.PackageID{},
		auditErrs:   map[string]error{},
		installErrs: map[string]error{},
	}
}

func (e *fakeEngine) Audit(_ context.Context, path string) (pk.PackageID, error) {
	e.calls = append(e.calls, "audit:"+path)
	if err, ok := e.auditErrs[path]; ok {
		return pk.PackageID{}, err
	}
	id, ok := e.ids[path]
	if !ok {
		return pk.PackageID{}, fmt.Errorf("fakeEngine: no identity for %s", path)
	}
	return id, nil
}

func (e *fakeEngine) Install(_ context.Context, path string) error {
	e.calls = append(e.calls, "install:"+path)
	return e.installErrs[path]
}
