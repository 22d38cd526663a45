package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const classicMission = "Plateau:5 5\n" +
	"Rover1 Landing:1 2 N\n" +
	"Rover1 Instructions:LMLMLMLMM\n" +
	"Rover2 Landing:3 3 E\n" +
	"Rover2 Instructions:MMRMMRMRRM\n"

const crashMission = "Plateau:5 5\nA Landing:1 1 E\nB Landing:3 1 W\nA Instructions:MM\n"

type testRun struct {
	app    *app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	err    error
}

func runApp(t *testing.T, env map[string]string, stdin string, args ...string) testRun {
	t.Helper()
	var stdout, stderr bytes.Buffer
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	a := newApp(strings.NewReader(stdin), &stdout, &stderr, lookup)
	err := a.run(context.Background(), append([]string{AppName}, args...))
	if err != nil {
		a.reportError(err)
	}
	return testRun{app: a, stdout: &stdout, stderr: &stderr, err: err}
}

func writeMission(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "marsrover", AppName)
	assert.NotEmpty(t, Version)
}

func TestRun_InlineInput(t *testing.T) {
	r := runApp(t, nil, "", "--no-color", classicMission)
	require.NoError(t, r.err)
	assert.Equal(t, "Rover1:1 3 N\nRover2:5 1 E\n", r.stdout.String())
	assert.Empty(t, r.stderr.String())
}

func TestRun_FileInput(t *testing.T) {
	path := writeMission(t, "mission.txt", classicMission)

	r := runApp(t, nil, "", path)
	require.NoError(t, r.err)
	assert.Equal(t, "Rover1:1 3 N\nRover2:5 1 E\n", r.stdout.String())
}

func TestRun_StdinInput(t *testing.T) {
	r := runApp(t, nil, classicMission, "-")
	require.NoError(t, r.err)
	assert.Equal(t, "Rover1:1 3 N\nRover2:5 1 E\n", r.stdout.String())
}

func TestRun_MultipleInputsAreIndependent(t *testing.T) {
	path := writeMission(t, "mission.txt", classicMission)

	r := runApp(t, nil, "", path, "Plateau:3 3\nRover1 Landing:0 0 E\nRover1 Instructions:MML\n")
	require.NoError(t, r.err)
	assert.Equal(t, "Rover1:1 3 N\nRover2:5 1 E\nRover1:2 0 N\n", r.stdout.String())
}

func TestRun_FailureHidesDetails(t *testing.T) {
	r := runApp(t, nil, "", "--no-color", "Plateau:5 5\nRover1 Landing:100 1 N\n")
	require.Error(t, r.err)
	assert.Empty(t, r.stdout.String(), "no partial report on failure")
	assert.Equal(t, genericFailure+"\n", r.stderr.String())
}

func TestRun_FailureWithDebug(t *testing.T) {
	r := runApp(t, nil, "", "--no-color", "--debug", "Plateau:5 5\nRover1 Landing:100 1 N\n")
	require.Error(t, r.err)
	assert.Contains(t, r.stderr.String(), "invalid input on line 2: invalid landing location: (100, 1)")
	assert.NotContains(t, r.stderr.String(), genericFailure)
}

func TestRun_DebugFromEnvironment(t *testing.T) {
	r := runApp(t, map[string]string{"MARSROVER_DEBUG": "1", "NO_COLOR": "1"}, "", "Plateau:5 5\nGhost Instructions:M\n")
	require.Error(t, r.err)
	assert.Contains(t, r.stderr.String(), "rover Ghost does not exist")
}

func TestRun_Collisions(t *testing.T) {
	t.Run("on by default", func(t *testing.T) {
		r := runApp(t, nil, "", "--no-color", "--debug", crashMission)
		require.Error(t, r.err)
		assert.Contains(t, r.stderr.String(), "line 4")
	})

	t.Run("flag turns them off", func(t *testing.T) {
		r := runApp(t, nil, "", "--collisions=false", crashMission)
		require.NoError(t, r.err)
		assert.Equal(t, "A:3 1 E\nB:3 1 W\n", r.stdout.String())
	})

	t.Run("environment turns them off", func(t *testing.T) {
		r := runApp(t, map[string]string{"MARSROVER_COLLISIONS": "false"}, "", crashMission)
		require.NoError(t, r.err)
		assert.Equal(t, "A:3 1 E\nB:3 1 W\n", r.stdout.String())
	})

	t.Run("config file turns them off", func(t *testing.T) {
		cfg := writeMission(t, "marsrover.yml", "collisions: false\n")
		r := runApp(t, nil, "", "--config", cfg, crashMission)
		require.NoError(t, r.err)
		assert.Equal(t, "A:3 1 E\nB:3 1 W\n", r.stdout.String())
	})

	t.Run("flag beats environment", func(t *testing.T) {
		r := runApp(t, map[string]string{"MARSROVER_COLLISIONS": "false"}, "", "--collisions=true", crashMission)
		require.Error(t, r.err)
	})
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := writeMission(t, "marsrover.yml", "log:\n  format: xml\n")

	r := runApp(t, nil, "", "--no-color", "--debug", "--config", cfg, classicMission)
	require.Error(t, r.err)
	assert.Contains(t, r.stderr.String(), "unknown log format")
	assert.Empty(t, r.stdout.String())
}

func TestRun_InvalidLogLevelFlag(t *testing.T) {
	r := runApp(t, nil, "", "--log-level", "loud", classicMission)
	assert.Error(t, r.err)
}

func TestRun_DebugLogsGoToStderr(t *testing.T) {
	r := runApp(t, nil, "", "--log-level", "debug", "--log-format", "json", classicMission)
	require.NoError(t, r.err)
	assert.Equal(t, "Rover1:1 3 N\nRover2:5 1 E\n", r.stdout.String())
	assert.Contains(t, r.stderr.String(), `"msg":"rover landed"`)
	assert.Contains(t, r.stderr.String(), `"session":`)
}

func TestRun_NoArgsShowsHelp(t *testing.T) {
	r := runApp(t, nil, "")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout.String(), "validate")
	assert.Contains(t, r.stdout.String(), "--collisions")
}

func TestValidate(t *testing.T) {
	good := writeMission(t, "good.txt", classicMission)

	t.Run("all valid", func(t *testing.T) {
		r := runApp(t, nil, "", "--no-color", "validate", good)
		require.NoError(t, r.err)
		assert.Equal(t,
			"✓ "+good+": valid, Plateau (0,0)-(5,5), 2 rovers landed, 19 instructions executed\n1 of 1 inputs valid\n",
			r.stdout.String())
	})

	t.Run("one invalid", func(t *testing.T) {
		r := runApp(t, nil, "", "--no-color", "validate", good, "Plateau:5 5\nRover1 Landing:1 2 Q\n")
		require.ErrorIs(t, r.err, errValidationFailed)

		out := r.stdout.String()
		assert.Contains(t, out, "✓ "+good+": valid")
		assert.Contains(t, out, "✗ inline: line 2: invalid orientation: Q\n")
		assert.Contains(t, out, "1 of 2 inputs invalid\n")
		assert.Empty(t, r.stderr.String(), "verdicts already describe the failure")
	})

	t.Run("no inputs", func(t *testing.T) {
		r := runApp(t, nil, "", "--no-color", "validate")
		assert.Error(t, r.err)
	})
}

func TestResolveInput(t *testing.T) {
	path := writeMission(t, "mission.txt", classicMission)

	tests := []struct {
		name   string
		arg    string
		source string
		want   string
	}{
		{"stdin", "-", "stdin", "from stdin"},
		{"file", path, path, classicMission},
		{"directory is not a file", filepath.Dir(path), "inline", filepath.Dir(path)},
		{"inline text", "Plateau:1 1", "inline", "Plateau:1 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := resolveInput(tt.arg, strings.NewReader("from stdin"))
			assert.Equal(t, tt.source, input.Source)

			r, err := input.Open()
			require.NoError(t, err)
			defer r.Close()

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is silent", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		a := newApp(strings.NewReader(""), &stdout, &stderr, nil)
		a.loadEnvFile(filepath.Join(t.TempDir(), ".env"))
		assert.Empty(t, stderr.String())
	})

	t.Run("unreadable file warns", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		a := newApp(strings.NewReader(""), &stdout, &stderr, nil)
		dir := t.TempDir()
		a.loadEnvFile(dir)
		assert.Contains(t, stderr.String(), "warning: error loading "+dir+" file")
		assert.Empty(t, stdout.String())
	})
}
