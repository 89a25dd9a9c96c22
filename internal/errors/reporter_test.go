package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterFormatIncludesCodeAndCaret(t *testing.T) {
	src := "cnf(c1, axiom, p(X) | q(X)).\n"
	r := NewReporter("in.cnf", src)

	out := r.Format(CompilerError{
		Level:    Error,
		Code:     ErrorUnexpectedToken,
		Message:  "expected ')'",
		Position: Position{Filename: "in.cnf", Line: 1, Column: 20},
		Length:   1,
	})

	assert.Contains(t, out, ErrorUnexpectedToken)
	assert.Contains(t, out, "expected ')'")
	assert.Contains(t, out, "in.cnf:1:20")
	assert.True(t, strings.Contains(out, "^"))
}

func TestInternalFaultPanicsWithTypedValue(t *testing.T) {
	defer func() {
		r := recover()
		fault, ok := r.(InternalFault)
		assert.True(t, ok, "panic value should be an InternalFault")
		assert.Equal(t, FaultTermBankFull, fault.Fault)
	}()
	Raise(FaultTermBankFull, "gc could not reclaim enough storage")
	t.Fatal("Raise should have panicked")
}

func TestGetErrorDescriptionKnownAndUnknown(t *testing.T) {
	assert.NotEqual(t, "unknown error code", GetErrorDescription(ErrorMalformedClause))
	assert.Equal(t, "unknown error code", GetErrorDescription("E9999"))
}
