package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

// decodeData unmarshals the data field of a JSON success response.
func decodeData(t *testing.T, stdout string, v interface{}) CLIResponse {
	t.Helper()
	var resp struct {
		CLIResponse
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	require.Equal(t, "ok", resp.Status)
	require.NoError(t, json.Unmarshal(resp.Data, v))

	return resp.CLIResponse
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "minuscule", cmd.Use)
	assert.Contains(t, cmd.Long, "order ideals")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"list", "poset", "phi", "verify", "orbit", "csp", "homomesy", "batch"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	logFlag := cmd.PersistentFlags().Lookup("log-mode")
	require.NotNil(t, logFlag)
	assert.Equal(t, "dev", logFlag.DefValue)
}

func TestConfigFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"poset", "phi", "verify", "orbit", "csp", "homomesy"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		for flag, short := range map[string]string{"type": "t", "rank": "n", "index": "k"} {
			f := sub.Flags().Lookup(flag)
			require.NotNil(t, f, "%s --%s", name, flag)
			assert.Equal(t, short, f.Shorthand)
		}
	}
}

func TestInvalidGlobalFlags(t *testing.T) {
	code, _, stderr := run(t, "list", "--format", "yaml")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "invalid format")

	code, _, stderr = run(t, "list", "--log-mode", "loud")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "invalid log mode")

	code, _, _ = run(t, "list", "--no-such-flag")
	assert.Equal(t, ExitCommandError, code)
}

func TestList_Golden(t *testing.T) {
	code, stdout, _ := run(t, "list")
	require.Equal(t, ExitSuccess, code)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "list", []byte(stdout))
}

func TestList_JSON(t *testing.T) {
	code, stdout, _ := run(t, "list", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var res ListResult
	decodeData(t, stdout, &res)
	assert.Equal(t, 53, res.Total)
	assert.Len(t, res.Configurations, 14)
	assert.Equal(t, []int{7}, res.Configurations[13].Indices)
}

func TestPoset_Text(t *testing.T) {
	code, stdout, _ := run(t, "poset", "-t", "A", "-n", "4", "-k", "2")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "A_4 k=2: V(ω_2) = ∧^2(ℂ^5)")
	assert.Contains(t, stdout, "nodes: 6  ideals: 10  coxeter number: 5  ranks: 2..5")
	assert.Contains(t, stdout, "(2,2)")
}

func TestPoset_JSON(t *testing.T) {
	code, stdout, _ := run(t, "poset", "-t", "d", "-n", "4", "-k", "1", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var res PosetResult
	decodeData(t, stdout, &res)
	assert.Equal(t, 6, res.Size)
	assert.Equal(t, 8, res.Ideals)
	assert.Equal(t, 6, res.CoxeterNumber)
	assert.Len(t, res.Nodes, 6)
}

func TestPoset_BadIndex(t *testing.T) {
	code, stdout, stderr := run(t, "poset", "-t", "D", "-n", "5", "-k", "2")
	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error [E001]")
	assert.Contains(t, stderr, "allowed: 1, 4, 5")

	code, stdout, _ = run(t, "poset", "-t", "B", "--format", "json")
	assert.Equal(t, ExitCommandError, code)
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeConfiguration, resp.Error.Code)
}

func TestPhi(t *testing.T) {
	code, stdout, _ := run(t, "phi", "-t", "A", "-n", "4", "-k", "2", "--mask", "0", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var res PhiResult
	decodeData(t, stdout, &res)
	assert.Equal(t, []int{1, -1, 1, 0}, res.Weight)
	assert.Equal(t, []int{2}, res.Labels)
	assert.Equal(t, []int{1, 3}, res.Subset)

	code, stdout, _ = run(t, "phi", "-t", "A", "-n", "4", "-k", "2", "--mask", "{}")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "φ({}) = [0, 1, 0, 0]")
	assert.Contains(t, stdout, "subset: {1,2}")
}

func TestPhi_Rejects(t *testing.T) {
	// node 1 needs node 0
	code, _, stderr := run(t, "phi", "-t", "A", "-n", "4", "-k", "2", "--mask", "1")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "not an order ideal")

	code, _, _ = run(t, "phi", "-t", "A", "-n", "4", "-k", "2", "--mask", "x")
	assert.Equal(t, ExitCommandError, code)

	code, _, stderr = run(t, "phi", "-t", "A", "-n", "4", "-k", "2", "--mask", "0,1,3,4", "--order", "4,0,1,3")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "not a linear extension")

	code, _, _ = run(t, "phi", "-t", "A", "-n", "4", "-k", "2", "--mask", "0,1,3,4", "--order", "0,3,1,4")
	assert.Equal(t, ExitSuccess, code)
}

func TestVerify(t *testing.T) {
	code, stdout, _ := run(t, "verify", "-t", "E", "-n", "6", "-k", "1")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "E_6 k=1: 27 ideals (expected 27), 27 distinct weights")
	assert.Contains(t, stdout, "all checks: PASS")
	assert.NotContains(t, stdout, "subset model")

	code, stdout, _ = run(t, "verify", "-t", "A", "-n", "7", "-k", "3")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "SKIP (Skipped for n=7; enabled by default only for n <= 6.)")
	assert.Contains(t, stdout, "subset model          PASS")

	code, stdout, _ = run(t, "verify", "-t", "A", "-n", "7", "-k", "3", "--phi-check", "on", "--max-samples", "4", "--ideal-cap", "10", "--format", "json")
	require.Equal(t, ExitSuccess, code)
	var res VerifyResult
	decodeData(t, stdout, &res)
	assert.True(t, res.AllPass)
	assert.True(t, res.PhiExtensionIndependence.Ran)
	assert.Equal(t, 10, res.PhiExtensionIndependence.IdealsChecked)

	code, _, _ = run(t, "verify", "--phi-check", "maybe")
	assert.Equal(t, ExitCommandError, code)
}

func TestVerify_VerboseProgress(t *testing.T) {
	code, stdout, stderr := run(t, "verify", "-t", "D", "-n", "4", "-k", "1", "--format", "json", "-v")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stderr, "verifying D_4 k=1: 6 nodes, 8 expected ideals, φ check auto")
	assert.NotContains(t, stdout, "verifying")

	_, _, stderr = run(t, "verify", "-t", "D", "-n", "4", "-k", "1")
	assert.NotContains(t, stderr, "verifying")
}

func TestOrbit(t *testing.T) {
	code, stdout, _ := run(t, "orbit", "-t", "A", "-n", "3", "-k", "2", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var res struct {
		Action string `json:"action"`
		Orbit  struct {
			Length int     `json:"length"`
			Masks  [][]int `json:"masks"`
		} `json:"orbit"`
		Weights [][]int `json:"weights"`
	}
	decodeData(t, stdout, &res)
	assert.Equal(t, "Fon-Der-Flaass", res.Action)
	assert.Equal(t, 4, res.Orbit.Length)
	assert.Equal(t, [][]int{{}, {0}, {0, 1, 2}, {0, 1, 2, 3}}, res.Orbit.Masks)
	assert.Equal(t, []int{0, 1, 0}, res.Weights[0])

	code, stdout, _ = run(t, "orbit", "-t", "A", "-n", "3", "-k", "2", "-a", "coxeter", "-w", "s2 s1 s3")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "orbit of {}")
	assert.Contains(t, stdout, "average size")

	code, _, _ = run(t, "orbit", "-a", "promotion")
	assert.Equal(t, ExitCommandError, code)
	code, _, _ = run(t, "orbit", "-t", "A", "-n", "3", "-k", "2", "-a", "coxeter", "-w", "1 1 2")
	assert.Equal(t, ExitCommandError, code)
}

func TestCSP(t *testing.T) {
	code, stdout, _ := run(t, "csp", "-t", "A", "-n", "4", "-k", "2")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "rank-generating coefficients [1 1 2 2 2 1 1], order h=5")
	assert.Contains(t, stdout, "cyclic sieving: PASS")

	code, stdout, _ = run(t, "csp", "-t", "D", "-n", "5", "-k", "5", "--power", "3", "--format", "json")
	require.Equal(t, ExitSuccess, code)
	var res CSPResult
	decodeData(t, stdout, &res)
	assert.True(t, res.Report.AllMatch)
	require.NotNil(t, res.Detail)
	assert.Equal(t, 3, res.Detail.Power)
	assert.Nil(t, res.Detail.TypeA)
	assert.Equal(t, int64(res.Report.Powers[3].Observed), res.Detail.RankBased.FixedPoints)
}

func TestHomomesy(t *testing.T) {
	code, stdout, _ := run(t, "homomesy", "-t", "A", "-n", "3", "-k", "2", "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var res struct {
		Report struct {
			Orbits        int  `json:"orbits"`
			SizePass      bool `json:"sizePass"`
			AntichainPass bool `json:"antichainPass"`
		} `json:"report"`
		TypeA *struct {
			AvgSize string `json:"avgSize"`
		} `json:"typeA"`
	}
	decodeData(t, stdout, &res)
	assert.True(t, res.Report.SizePass)
	assert.True(t, res.Report.AntichainPass)
	assert.Positive(t, res.Report.Orbits)
	require.NotNil(t, res.TypeA)
	assert.Equal(t, "2", res.TypeA.AvgSize)
}

func TestHomomesy_DEExitCodes(t *testing.T) {
	code, stdout, _ := run(t, "homomesy", "-t", "E", "-n", "6", "-k", "1")
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "homomesy: PASS")

	code, stdout, _ = run(t, "homomesy", "-t", "D", "-n", "5", "-k", "1", "-a", "coxeter", "-w", "1 2 3 4 5", "--format", "json")
	require.Equal(t, ExitSuccess, code)
	var res struct {
		Report struct {
			AllPass           bool   `json:"allPass"`
			AntichainExpected bool   `json:"antichainExpected"`
			LabelPass         []bool `json:"labelPass"`
		} `json:"report"`
	}
	decodeData(t, stdout, &res)
	assert.True(t, res.Report.AllPass)
	assert.False(t, res.Report.AntichainExpected)
	require.Len(t, res.Report.LabelPass, 5)
	for i, ok := range res.Report.LabelPass {
		assert.True(t, ok, "label %d", i+1)
	}
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"workers: 2",
		"phi_check: on",
		"configurations:",
		"  - {type: A, rank: 4, index: 2}",
		"  - {type: D, rank: 4, index: 3}",
		"  - {type: E, rank: 6, index: 6}",
	}, "\n")), 0o600))

	code, stdout, stderr := run(t, "batch", "--config", path, "--format", "json", "--log-mode", "prod")
	require.Equal(t, ExitSuccess, code, stderr)

	var res BatchResult
	resp := decodeData(t, stdout, &res)
	assert.Equal(t, res.RunID, resp.RunID)
	_, err := uuid.Parse(res.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Workers)
	assert.Equal(t, 3, res.Passed)
	assert.Zero(t, res.Failed)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "A_4 k=2", res.Items[0].Config.String())
	assert.Equal(t, 27, res.Items[2].Ideals)
	for _, it := range res.Items {
		assert.True(t, it.PhiChecked)
		assert.True(t, it.AllPass)
	}

	assert.Contains(t, stderr, `"msg":"batch started"`)
	assert.Contains(t, stderr, `"run_id":"`+res.RunID+`"`)
	assert.Contains(t, stderr, `"msg":"batch finished"`)
	assert.NotContains(t, stderr, "batch: 3 configurations")

	code, _, stderr = run(t, "batch", "--config", path, "--format", "json", "--log-mode", "prod", "-v")
	require.Equal(t, ExitSuccess, code, stderr)
	assert.Contains(t, stderr, "batch: 3 configurations, 2 workers, φ check on")
}

func TestBatch_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("configurations:\n  - {type: E, rank: 7, index: 1}\n"), 0o600))

	code, _, stderr := run(t, "batch", "--config", path)
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "configurations[0]")

	code, _, _ = run(t, "batch", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, ExitCommandError, code)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(NewExitError(ExitFailure, "failed")))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))

	wrapped := WrapExitError(ExitCommandError, ErrCodeGeneric, assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "E999: "+assert.AnError.Error(), wrapped.Error())
}
