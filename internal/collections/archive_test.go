package collections

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFolderName(t *testing.T) {
	tests := []struct {
		name     string
		contract string
		customer string
		want     string
	}{
		{"clean", "CNT-100", "Ahmed Al-Balushi", "CNT-100_Ahmed Al-Balushi"},
		{"slashes", "CNT/2026/01", "Ahmed", "CNT_2026_01_Ahmed"},
		{"reserved characters", "CNT-1", `a?b%c*d:e|f"g<h>i\j`, "CNT-1_a_b_c_d_e_f_g_h_i_j"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFolderName(tt.contract, tt.customer))
		})
	}
}

func TestPack(t *testing.T) {
	folders := []CustomerDocuments{
		{
			FolderName: "CNT-100_Ahmed",
			Documents: DocumentSet{
				{Name: "claims-statement.txt", Content: []byte("claims body")},
				{Name: "documents-checklist.txt", Content: []byte("checklist body")},
			},
		},
		{
			FolderName: "CNT-200_Fatima",
			Documents: DocumentSet{
				{Name: "claims-statement.txt", Content: []byte("other claims")},
			},
		},
	}
	extras := []Document{
		{Name: "generation-report.txt", Content: []byte("report")},
	}

	blob, err := Pack(folders, extras)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)

	contents := make(map[string]string, len(reader.File))
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[f.Name] = string(data)
	}

	assert.Len(t, contents, 4)
	assert.Equal(t, "claims body", contents["CNT-100_Ahmed/claims-statement.txt"])
	assert.Equal(t, "checklist body", contents["CNT-100_Ahmed/documents-checklist.txt"])
	assert.Equal(t, "other claims", contents["CNT-200_Fatima/claims-statement.txt"])
	assert.Equal(t, "report", contents["generation-report.txt"])
}

func TestPackEmpty(t *testing.T) {
	blob, err := Pack(nil, nil)
	require.NoError(t, err)

	reader, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	assert.Empty(t, reader.File)
}
