package email

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, n InterviewCompleted, appURL string) string {
	t.Helper()
	var buf bytes.Buffer
	err := completedTmpl.Execute(&buf, struct {
		InterviewCompleted
		AppURL string
	}{n, appURL})
	require.NoError(t, err)
	return buf.String()
}

func TestCompletedTemplate(t *testing.T) {
	out := render(t, InterviewCompleted{MeetID: "m1", CandidateID: "c1", MessageCount: 12, Saved: true}, "https://app.example")
	assert.Contains(t, out, "<b>m1</b>")
	assert.Contains(t, out, "<b>c1</b>")
	assert.Contains(t, out, "Messages: 12")
	assert.Contains(t, out, "https://app.example")
	assert.NotContains(t, out, "could not be saved")
}

func TestCompletedTemplate_NotSavedAndEscaped(t *testing.T) {
	out := render(t, InterviewCompleted{MeetID: "<script>", Saved: false}, "")
	assert.Contains(t, out, "could not be saved")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "Candidate:")
}
