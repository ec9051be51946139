package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() *SystemContext {
	ctx := NewSystemContext(context.Background(), false)
	ctx.OS = "linux"
	ctx.Distro = "ubuntu"
	ctx.Version = "24.04"
	ctx.Hostname = "workbox"
	ctx.User = "dev"
	ctx.Vars = map[string]string{"profile": "work"}
	return ctx
}

func TestEvaluateCondition(t *testing.T) {
	ctx := testContext()

	tests := []struct {
		expression string
		expected   bool
	}{
		{`os == "linux"`, true},
		{`os == "darwin"`, false},
		{`distro in ["ubuntu", "debian"]`, true},
		{`hostname == "workbox" && user == "dev"`, true},
		{`vars.profile == "work"`, true},
		{`vars.profile == "personal"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			got, err := EvaluateCondition(tt.expression, ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateConditionInvalid(t *testing.T) {
	ctx := testContext()

	_, err := EvaluateCondition(`os ==`, ctx)
	assert.Error(t, err)

	_, err = EvaluateCondition(`os + "x"`, ctx)
	assert.Error(t, err, "non-boolean expressions are rejected at compile time")
}
