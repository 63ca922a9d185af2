package currency

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
)

const (
	// DefaultCurrency is the fallback currency code (USD).
	DefaultCurrency Code = "USD"
	// DefaultDecimals is the default number of decimal places for currencies.
	DefaultDecimals = 2
)

// Code represents an ISO 4217 currency code (e.g., "USD", "EUR").
type Code string

// Meta holds currency-specific metadata.
type Meta struct {
	Decimals int
	Symbol   string
}

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// IsValidCurrencyFormat reports whether the string is a well-formed
// ISO 4217 code (three uppercase letters). It does not imply the
// currency is registered.
func IsValidCurrencyFormat(code string) bool {
	return codeFormat.MatchString(code)
}

// Registry holds the set of supported currencies and their metadata.
type Registry struct {
	mu         sync.RWMutex
	currencies map[Code]Meta
}

// NewRegistry creates a registry preloaded with the default currency set.
func NewRegistry() *Registry {
	r := &Registry{currencies: make(map[Code]Meta)}
	for code, meta := range map[Code]Meta{
		"USD": {Decimals: 2, Symbol: "$"},
		"EUR": {Decimals: 2, Symbol: "€"},
		"GBP": {Decimals: 2, Symbol: "£"},
		"INR": {Decimals: 2, Symbol: "₹"},
		"JPY": {Decimals: 0, Symbol: "¥"},
		"KWD": {Decimals: 3, Symbol: "د.ك"},
		"CAD": {Decimals: 2, Symbol: "C$"},
		"AUD": {Decimals: 2, Symbol: "A$"},
	} {
		r.Register(code, meta)
	}
	return r
}

// Register adds or updates a currency in the registry.
func (r *Registry) Register(code Code, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[code] = meta
}

// Get returns the metadata for code, or an error if the currency is
// not registered.
func (r *Registry) Get(code Code) (Meta, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	meta, ok := r.currencies[code]
	if !ok {
		return Meta{}, fmt.Errorf("currency %q is not supported", code)
	}
	return meta, nil
}

// IsSupported reports whether the currency code is registered.
func (r *Registry) IsSupported(code Code) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.currencies[code]
	return ok
}

// ListSupported returns all registered currency codes, sorted.
func (r *Registry) ListSupported() []Code {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]Code, 0, len(r.currencies))
	for code := range r.currencies {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

var global = NewRegistry()

// Get returns metadata for code from the global registry.
func Get(code Code) (Meta, error) { return global.Get(code) }

// IsSupported reports whether code is registered in the global registry.
func IsSupported(code Code) bool { return global.IsSupported(code) }

// ListSupported returns all codes registered in the global registry.
func ListSupported() []Code { return global.ListSupported() }
