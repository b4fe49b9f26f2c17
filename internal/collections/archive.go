package collections

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// folderNameSanitizer replaces characters that are unsafe in file systems.
// Two targets differing only by such characters can still collide; the caller
// owns de-duplication.
var folderNameSanitizer = strings.NewReplacer(
	"/", "_", "\\", "_", "?", "_", "%", "_", "*", "_",
	":", "_", "|", "_", "\"", "_", "<", "_", ">", "_",
)

// SanitizeFolderName derives the archive folder name for a target from its
// contract number and customer name
func SanitizeFolderName(contractNumber, customerName string) string {
	return folderNameSanitizer.Replace(contractNumber + "_" + customerName)
}

// Pack serializes the per-customer document folders, plus batch-level extras
// at the archive root, into a single zip blob. Document content is written
// through unmodified; packaging is structural only.
func Pack(folders []CustomerDocuments, extras []Document) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	for _, folder := range folders {
		for _, doc := range folder.Documents {
			entry, err := writer.Create(folder.FolderName + "/" + doc.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to create archive entry for %s: %w", folder.FolderName, err)
			}
			if _, err := entry.Write(doc.Content); err != nil {
				return nil, fmt.Errorf("failed to write archive entry for %s: %w", folder.FolderName, err)
			}
		}
	}

	for _, doc := range extras {
		entry, err := writer.Create(doc.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", doc.Name, err)
		}
		if _, err := entry.Write(doc.Content); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", doc.Name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
