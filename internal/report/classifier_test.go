package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusRecord() CourseStatusRecord {
	return CourseStatusRecord{
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		EmailDomain:  "example.com",
		CourseName:   "Safety Basics",
		Progress:     "Passed",
		Score:        "87%",
		Enrolled:     "01/02/2024 09:00",
		Started:      "02/02/2024 09:00",
		LastAccessed: "10/02/2024 16:45",
		Completed:    "11/02/2024 16:50",
	}
}

func TestClassify_CompletedWinsFirst(t *testing.T) {
	status, note := Classify(statusRecord())
	assert.Equal(t, StatusPassed, status)
	assert.Equal(t, "Completed: 11/02/2024", note)
}

func TestClassify_LastAccessedMeansInProgress(t *testing.T) {
	rec := statusRecord()
	rec.Completed = "-"
	status, note := Classify(rec)
	assert.Equal(t, StatusInProgress, status)
	assert.Equal(t, "Last accessed course: 10/02/2024", note)
}

func TestClassify_EnrolledOnlyMeansNotStarted(t *testing.T) {
	rec := statusRecord()
	rec.Completed = "-"
	rec.LastAccessed = "-"
	status, note := Classify(rec)
	assert.Equal(t, StatusNotStarted, status)
	assert.Equal(t, "Enrolled on: 01/02/2024", note)
}

// The status depends only on field presence, never on the Progress text.
func TestClassify_IgnoresProgressText(t *testing.T) {
	rec := statusRecord()
	rec.Progress = "something else entirely"
	status, _ := Classify(rec)
	assert.Equal(t, StatusPassed, status)
}

func TestClassify_UnparseableDatesBecomeUnknown(t *testing.T) {
	rec := statusRecord()
	rec.Completed = "soonish"
	status, note := Classify(rec)
	assert.Equal(t, StatusPassed, status)
	assert.Equal(t, "Completed: Unknown", note)

	rec.Completed = "-"
	rec.LastAccessed = "recently"
	status, note = Classify(rec)
	assert.Equal(t, StatusInProgress, status)
	assert.Equal(t, "Last accessed course: Unknown", note)
}

// With no dates at all, the raw Completed value passes through untouched.
func TestClassify_NoDatesPreservesRawCompleted(t *testing.T) {
	rec := statusRecord()
	rec.Completed = "-"
	rec.LastAccessed = "-"
	rec.Enrolled = "-"

	status, note := Classify(rec)
	assert.Equal(t, StatusNotStarted, status)
	assert.Equal(t, "-", note)
}

func TestClassify_Idempotent(t *testing.T) {
	rec := statusRecord()
	s1, n1 := Classify(rec)
	s2, n2 := Classify(rec)
	assert.Equal(t, s1, s2)
	assert.Equal(t, n1, n2)
}

func TestNormalizeScore(t *testing.T) {
	for _, tc := range []struct{ in, want string }{
		{"87.6%", "88%"},
		{"87%", "87%"},
		{"0%", "0%"},
		{"100", "100%"},
		{" 42.4% ", "42%"},
	} {
		got, err := NormalizeScore(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNormalizeScore_Malformed(t *testing.T) {
	for _, in := range []string{"N/A", "", "%", "eighty"} {
		_, err := NormalizeScore(in)
		require.Error(t, err, in)
		var scoreErr *ScoreFormatError
		require.ErrorAs(t, err, &scoreErr)
		assert.Equal(t, in, scoreErr.Value)
	}
}
