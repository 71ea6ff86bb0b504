package transfer

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTransfer is returned by Lookup for names that were never registered.
var ErrUnknownTransfer = errors.New("unknown transfer function")

// Registered names of the reference functions.
const (
	NameHardLimit    = "hardlim"
	NameSymHardLimit = "hardlims"
	NamePureLin      = "purelin"
	NamePosLin       = "poslin"
	NameSatLin       = "satlin"
	NameLogSig       = "logsig"
	NameSymLogSig    = "tansig"
)

var registry = struct {
	sync.RWMutex
	funcs map[string]Func
}{
	funcs: map[string]Func{
		NameHardLimit:    HardLimit,
		NameSymHardLimit: SymHardLimit,
		NamePureLin:      PureLin,
		NamePosLin:       PosLin,
		NameSatLin:       SatLin,
		NameLogSig:       LogSig,
		NameSymLogSig:    SymLogSig,
	},
}

// Register adds f under name, replacing any previous entry.
func Register(name string, f Func) error {
	if name == "" {
		return errors.New("transfer: register: empty name")
	}
	if f == nil {
		return fmt.Errorf("transfer: register %q: nil function", name)
	}

	registry.Lock()
	defer registry.Unlock()
	registry.funcs[name] = f
	return nil
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, error) {
	registry.RLock()
	defer registry.RUnlock()

	f, ok := registry.funcs[name]
	if !ok {
		return nil, fmt.Errorf("transfer: %q: %w", name, ErrUnknownTransfer)
	}
	return f, nil
}

// Names returns every registered name in sorted order.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()

	names := make([]string, 0, len(registry.funcs))
	for name := range registry.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
