package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		data    string
		want    int
		wantErr error
	}{
		{
			name: "bare JSON array",
			file: "a.json",
			data: `[{"question":"Q","options":["a","b","c","d"],"imageUrl":"https://example.com/q.png"}]`,
			want: 1,
		},
		{
			name: "JSON envelope",
			file: "a.json",
			data: `{"version":"v1.0.0","title":"T","questions":[{"question":"Q","options":["a","b","c","d"]}]}`,
			want: 1,
		},
		{
			name: "YAML array keeps short questions",
			file: "a.yml",
			data: "- question: Q1\n  options: [a, b, c, d]\n- question: Q2\n  options: [a]\n",
			want: 2,
		},
		{
			name: "version without prefix",
			file: "a.json",
			data: `{"version":"1.3","questions":[]}`,
			want: 0,
		},
		{
			name:    "malformed JSON",
			file:    "a.json",
			data:    `[{"question":`,
			wantErr: ErrInvalidTopicFile,
		},
		{
			name:    "missing question text",
			file:    "a.json",
			data:    `[{"options":["a","b","c","d"]}]`,
			wantErr: ErrInvalidTopicFile,
		},
		{
			name:    "options not strings",
			file:    "a.yaml",
			data:    "- question: Q\n  options:\n    - {a: 1}\n",
			wantErr: ErrInvalidTopicFile,
		},
		{
			name:    "envelope without questions",
			file:    "a.json",
			data:    `{"title":"T"}`,
			wantErr: ErrInvalidTopicFile,
		},
		{
			name:    "future major version",
			file:    "a.json",
			data:    `{"version":"v2.0.0","questions":[]}`,
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "garbage version",
			file:    "a.json",
			data:    `{"version":"latest","questions":[]}`,
			wantErr: ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode(tt.file, []byte(tt.data))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, f.Questions, tt.want)
		})
	}
}

func TestDecode_FieldNames(t *testing.T) {
	f, err := Decode("a.json", []byte(`[{"question":"Q","options":["a","b","c","d"],"imageUrl":"img.png"}]`))
	require.NoError(t, err)
	require.Len(t, f.Questions, 1)
	assert.Equal(t, "Q", f.Questions[0].Text)
	assert.Equal(t, "a", f.Questions[0].Correct())
	assert.Equal(t, "img.png", f.Questions[0].ImageURL)
}

func TestEncode_RoundTripsThroughDecode(t *testing.T) {
	in := &File{Version: CurrentVersion, Title: "T"}
	in.Questions = append(in.Questions, fourOptions("Q"))

	for _, name := range []string{"out.json", "out.yaml"} {
		data, err := Encode(name, in)
		require.NoError(t, err)

		out, err := Decode(name, data)
		require.NoError(t, err, name)
		assert.Equal(t, in, out, name)
	}
}

func TestIsTopicFile(t *testing.T) {
	assert.True(t, IsTopicFile("a.json"))
	assert.True(t, IsTopicFile("a.YAML"))
	assert.True(t, IsTopicFile("dir/a.yml"))
	assert.False(t, IsTopicFile("a.txt"))
	assert.False(t, IsTopicFile("json"))
}
