package jobs

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

const staleAfter = time.Hour

// SweepStaleArtifacts removes temp images and PDFs left in the uploads
// directory by a crashed pipeline run. Live invocations clean up after
// themselves; anything older than an hour is an orphan.
func SweepStaleArtifacts(uploadsDir string) func() {
	return func() {
		entries, err := os.ReadDir(uploadsDir)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("⚠️ Failed to read uploads dir %s: %v", uploadsDir, err)
			}
			return
		}

		cutoff := time.Now().Add(-staleAfter)
		removed := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if ext != ".png" && ext != ".pdf" {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.ModTime().After(cutoff) {
				continue
			}
			if err := os.Remove(filepath.Join(uploadsDir, entry.Name())); err != nil {
				log.Printf("⚠️ Failed to remove stale artifact %s: %v", entry.Name(), err)
				continue
			}
			removed++
		}
		if removed > 0 {
			log.Printf("✅ Removed %d stale temp artifacts from %s", removed, uploadsDir)
		}
	}
}
