package observability_test

import (
	"context"
	"strings"
	"testing"

	safeenv "github.com/nicocarlier/safe-env-lite"
	"github.com/nicocarlier/safe-env-lite/pkg/adapters/memory"
	"github.com/nicocarlier/safe-env-lite/pkg/observability"
	"github.com/nicocarlier/safe-env-lite/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	s := schema.Schema{
		schema.Var("PORT", schema.Number),
		schema.Var("MODE", schema.Enum{"a", "b"}),
	}
	load := func(values map[string]string) {
		_, _ = safeenv.Load(context.Background(), s,
			safeenv.WithSource(memory.NewSource(values)),
			safeenv.WithLifecycleHooks(m.Hooks()))
	}

	load(map[string]string{"PORT": "80", "MODE": "a"})
	load(map[string]string{"PORT": "x"})

	expected := `
# HELP safeenv_validations_total Total number of validation passes by outcome
# TYPE safeenv_validations_total counter
safeenv_validations_total{outcome="invalid"} 1
safeenv_validations_total{outcome="valid"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "safeenv_validations_total"))

	expected = `
# HELP safeenv_problems_total Total number of invalid variables by key and problem code
# TYPE safeenv_problems_total counter
safeenv_problems_total{code="invalid_number",key="PORT"} 1
safeenv_problems_total{code="missing_enum",key="MODE"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "safeenv_problems_total"))

	count, err := testutil.GatherAndCount(reg, "safeenv_validation_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected = `
# HELP safeenv_declared_variables Number of variables declared by the last validated schema
# TYPE safeenv_declared_variables gauge
safeenv_declared_variables 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "safeenv_declared_variables"))
}

func TestMetrics_Unregistered(t *testing.T) {
	m := observability.NewMetrics(nil)
	assert.NotPanics(t, func() {
		_, _ = safeenv.Load(context.Background(), schema.Schema{},
			safeenv.WithSource(memory.NewSource(nil)),
			safeenv.WithLifecycleHooks(m.Hooks()))
	})
}
