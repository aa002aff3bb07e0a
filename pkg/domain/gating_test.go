package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatingVerdict_Concrete(t *testing.T) {
	assert.True(t, GatingVerdict{Verdict: VerdictAdmit}.Concrete())
	assert.True(t, GatingVerdict{Verdict: VerdictReject}.Concrete())
	assert.False(t, GatingVerdict{Verdict: VerdictInconclusive}.Concrete())
	assert.False(t, GatingVerdict{}.Concrete(), "zero value is not concrete")
}

func TestGatingVerdict_Admitted(t *testing.T) {
	assert.True(t, GatingVerdict{Verdict: VerdictAdmit}.Admitted())
	assert.False(t, GatingVerdict{Verdict: VerdictReject}.Admitted())
	assert.False(t, GatingVerdict{Verdict: VerdictInconclusive}.Admitted())
}
