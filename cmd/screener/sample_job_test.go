package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleJobCommand_PrintsProfileJSON(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "sample-job")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", string(output))

	var profile map[string]any
	require.NoError(t, json.Unmarshal(output, &profile))
	assert.Equal(t, "Software Engineer", profile["job_title"])
	assert.NotEmpty(t, profile["required_skills"])
}

func TestSampleJobCommand_OutputIsAcceptedByScore(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	jobPath := filepath.Join(tmpDir, "job.json")
	cmd := exec.Command(binaryPath, "sample-job", "--out", jobPath)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", string(output))

	_, err = os.Stat(jobPath)
	require.NoError(t, err)

	resumePath := writeTestFile(t, tmpDir, "resume.txt", testResumeText)
	cmd = exec.Command(binaryPath, "score", "--job", jobPath, resumePath)
	output, err = cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", string(output))
	assert.Contains(t, string(output), "resume.txt")
}
