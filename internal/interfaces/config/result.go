// Package config
package config

type validType int

const (
	PASS validType = iota
	FAIL
)

// ValidResult carries the outcome of a config section check. A failure
// holds the field-level error plus, when a parse was involved, the
// original error from the parser.
type ValidResult struct {
	validType validType
	err       error
	originErr error
}

func ValidPass() *ValidResult {
	return &ValidResult{validType: PASS, err: nil, originErr: nil}
}

func ValidFail(err error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err}
}

// ValidFailWith reports a failed check together with the parser error
// that caused it.
func ValidFailWith(err error, originErr error) *ValidResult {
	return &ValidResult{validType: FAIL, err: err, originErr: originErr}
}

func (r *ValidResult) IsFail() bool {
	return r.validType == FAIL
}

func (r *ValidResult) Error() error {
	return r.err
}

func (r *ValidResult) OriginErr() error { return r.originErr }
