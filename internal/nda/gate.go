package nda

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sovanra/uxfolio/internal/constant"
	"go.uber.org/zap"
)

// CodeEntry is one access code from the configured table. Codes are loaded
// once at startup and read-only afterwards.
type CodeEntry struct {
	Code    string    `toml:"code" json:"code"`
	Name    string    `toml:"name" json:"name"`
	Expires time.Time `toml:"expires" json:"expires"`
}

type codesFile struct {
	Codes []CodeEntry `toml:"codes"`
}

// LoadCodes reads the TOML access-code table. A missing file yields an empty
// table so a portfolio without NDA content needs no config.
func LoadCodes(path string) ([]CodeEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read NDA codes file: %w", err)
	}

	var parsed codesFile
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse NDA codes file: %w", err)
	}

	return parsed.Codes, nil
}

// Result of validating one code.
type Result struct {
	Valid   bool       `json:"valid"`
	Expired bool       `json:"expired,omitempty"`
	Info    *CodeEntry `json:"ndaInfo,omitempty"`
}

type Gate struct {
	codes  map[string]CodeEntry
	logger *zap.SugaredLogger
}

func NewGate(codes []CodeEntry, logger *zap.SugaredLogger) *Gate {
	table := make(map[string]CodeEntry, len(codes))
	for _, entry := range codes {
		table[entry.Code] = entry
	}

	return &Gate{codes: table, logger: logger}
}

// Validate looks the code up in the static table and checks expiry. There is
// deliberately no guess limiting here; the global rate limiter covers the
// endpoint.
func (g *Gate) Validate(code string) Result {
	entry, ok := g.codes[code]
	if !ok {
		return Result{Valid: false}
	}

	if !entry.Expires.IsZero() && time.Now().After(entry.Expires) {
		return Result{Valid: false, Expired: true, Info: &entry}
	}

	return Result{Valid: true, Info: &entry}
}

// Check applies the gate for gated content. pinned, when non-nil, restricts
// access to that exact code. It returns whether access is granted and, if
// not, a machine-readable reason the client uses to pick its prompt.
func (g *Gate) Check(code string, pinned *string) (bool, string) {
	if code == "" {
		return false, constant.NdaReasonRequired
	}

	result := g.Validate(code)
	if result.Expired {
		return false, constant.NdaReasonExpired
	}
	if !result.Valid {
		return false, constant.NdaReasonInvalid
	}

	if pinned != nil && *pinned != "" && *pinned != code {
		return false, constant.NdaReasonInvalid
	}

	return true, ""
}
