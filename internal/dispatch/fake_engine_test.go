package dispatch

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/conn-castle/click-backend/internal/pk"
)

// fakeEngine derives identities from file names: "<name>-<version>.click".
// Names containing "corrupt" fail audit and names containing "broken" fail install.
type fakeEngine struct {
	calls []string
}

func (e *fakeEngine) Audit(_ context.Context, path string) (pk.PackageID, error) {
	e.calls = append(e.calls, "audit:"+path)
	base := strings.TrimSuffix(filepath.Base(path), ".click")
	if strings.Contains(base, "corrupt") {
		return pk.PackageID{}, errors.New("corrupt header")
	}
	name, version, _ := strings.Cut(base, "-")
	return pk.NewPackageID(name, version), nil
}

func (e *fakeEngine) Install(_ context.Context, path string) error {
	e.calls = append(e.calls, "install:"+path)
	if strings.Contains(path, "broken") {
		return errors.New("no space left on device")
	}
	return nil
}
