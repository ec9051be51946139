package resources

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearth-sh/hearth/internal/core"
)

// mockRunner replaces core.CommandRunner in tests. Responses are keyed on a
// substring of the command line; unmatched commands succeed with no output.
type mockRunner struct {
	calls     []string
	responses map[string]mockResponse
}

type mockResponse struct {
	output string
	err    error
}

func newMockRunner() *mockRunner {
	return &mockRunner{responses: map[string]mockResponse{}}
}

func (m *mockRunner) lookup(cmd *exec.Cmd) mockResponse {
	line := strings.Join(cmd.Args, " ")
	m.calls = append(m.calls, line)
	for k, v := range m.responses {
		if strings.Contains(line, k) {
			return v
		}
	}
	return mockResponse{}
}

func (m *mockRunner) Run(cmd *exec.Cmd) error {
	return m.lookup(cmd).err
}

func (m *mockRunner) CombinedOutput(cmd *exec.Cmd) ([]byte, error) {
	resp := m.lookup(cmd)
	return []byte(resp.output), resp.err
}

func (m *mockRunner) Output(cmd *exec.Cmd) ([]byte, error) {
	return m.CombinedOutput(cmd)
}

func (m *mockRunner) called(substr string) bool {
	for _, c := range m.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

func withMockRunner(t *testing.T) *mockRunner {
	t.Helper()
	mock := newMockRunner()
	orig := core.CommandRunner
	core.CommandRunner = mock
	t.Cleanup(func() { core.CommandRunner = orig })
	return mock
}

func packageContext() *core.SystemContext {
	return core.NewSystemContext(context.Background(), false)
}

func TestPackageAlreadyInstalledIsNoOp(t *testing.T) {
	mock := withMockRunner(t)
	// dpkg -s succeeds: package installed.

	res := &PackageResource{Name: "htop", Manager: "apt"}
	result := res.Apply(packageContext())

	require.Equal(t, core.StatusSucceeded, result.Status, result.Message)
	assert.False(t, result.Changed)
	assert.True(t, mock.called("dpkg -s htop"))
	assert.False(t, mock.called("apt-get install"), "installer must not be invoked")
}

func TestPackageInstallsWhenMissing(t *testing.T) {
	mock := withMockRunner(t)
	mock.responses["dpkg -s"] = mockResponse{err: errors.New("not installed")}

	res := &PackageResource{Name: "htop", Manager: "apt"}
	result := res.Apply(packageContext())

	require.Equal(t, core.StatusSucceeded, result.Status, result.Message)
	assert.True(t, result.Changed)
	assert.True(t, mock.called("apt-get install -y htop"))
}

func TestPackageInstallFailure(t *testing.T) {
	mock := withMockRunner(t)
	mock.responses["dpkg -s"] = mockResponse{err: errors.New("not installed")}
	mock.responses["apt-get install"] = mockResponse{
		output: "E: Unable to locate package nosuch\n",
		err:    errors.New("exit status 100"),
	}

	res := &PackageResource{Name: "nosuch", Manager: "apt"}
	result := res.Apply(packageContext())

	require.Equal(t, core.StatusFailed, result.Status)

	var instErr *core.InstallationFailedError
	require.True(t, errors.As(result.Err, &instErr))
	assert.Equal(t, "nosuch", instErr.Package)
	assert.Contains(t, instErr.Output, "Unable to locate package")
	assert.False(t, core.IsFatal(result.Err), "installation failure is recoverable")
}

func TestPackageUnsupportedManager(t *testing.T) {
	withMockRunner(t)

	res := &PackageResource{Name: "htop", Manager: "portage"}
	result := res.Apply(packageContext())

	require.Equal(t, core.StatusFailed, result.Status)

	var mgrErr *core.UnsupportedManagerError
	require.True(t, errors.As(result.Err, &mgrErr))
	assert.Equal(t, "portage", mgrErr.Manager)
	assert.True(t, core.IsFatal(result.Err))
}

func TestPackageAbsentRemoves(t *testing.T) {
	mock := withMockRunner(t)
	// brew list succeeds: package installed.

	res := &PackageResource{Name: "wget", Manager: "brew", State: StateAbsent}
	result := res.Apply(packageContext())

	require.Equal(t, core.StatusSucceeded, result.Status, result.Message)
	assert.True(t, result.Changed)
	assert.True(t, mock.called("brew uninstall wget"))
}

func TestPackageAbsentAlreadyGone(t *testing.T) {
	mock := withMockRunner(t)
	mock.responses["brew list"] = mockResponse{err: errors.New("not installed")}

	res := &PackageResource{Name: "wget", Manager: "brew", State: StateAbsent}
	result := res.Apply(packageContext())

	require.Equal(t, core.StatusSucceeded, result.Status)
	assert.False(t, result.Changed)
	assert.False(t, mock.called("brew uninstall"))
}

func TestPackageDryRun(t *testing.T) {
	mock := withMockRunner(t)
	mock.responses["rpm -q"] = mockResponse{err: errors.New("not installed")}

	ctx := packageContext()
	ctx.DryRun = true

	res := &PackageResource{Name: "jq", Manager: "dnf"}
	result := res.Apply(ctx)

	require.Equal(t, core.StatusSucceeded, result.Status)
	assert.True(t, result.Changed)
	assert.False(t, mock.called("dnf install"), "dry-run must not install")
}

func TestPackageManagerCommands(t *testing.T) {
	tests := []struct {
		manager    string
		queryCmd   string
		installCmd string
	}{
		{"apt", "dpkg -s jq", "apt-get install -y jq"},
		{"brew", "brew list jq", "brew install jq"},
		{"nix", "nix-env -q jq", "nix-env -iA jq"},
		{"dnf", "rpm -q jq", "dnf install -y jq"},
		{"pacman", "pacman -Qi jq", "pacman -S --noconfirm jq"},
	}

	for _, tt := range tests {
		t.Run(tt.manager, func(t *testing.T) {
			mock := withMockRunner(t)
			mock.responses[tt.queryCmd] = mockResponse{err: errors.New("not installed")}

			res := &PackageResource{Name: "jq", Manager: tt.manager}
			result := res.Apply(packageContext())

			require.Equal(t, core.StatusSucceeded, result.Status, result.Message)
			assert.True(t, mock.called(tt.installCmd))
		})
	}
}

func TestPackageValidate(t *testing.T) {
	assert.Error(t, (&PackageResource{Manager: "apt"}).Validate())
	assert.Error(t, (&PackageResource{Name: "x", State: "latest"}).Validate())
	assert.NoError(t, (&PackageResource{Name: "x"}).Validate())
	assert.NoError(t, (&PackageResource{Name: "x", State: StateAbsent}).Validate())
}
