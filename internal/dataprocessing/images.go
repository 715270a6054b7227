package dataprocessing

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ExtractedImage is one embedded photo pulled out of the workbook
// archive. Seq is its 1-based position in the media folder; images are
// matched to rows positionally, not by metadata.
type ExtractedImage struct {
	Seq    int
	Name   string
	Format string // normalized lowercase extension, "jpg" becomes "jpeg"
	Data   []byte
}

var imageExtensions = map[string]string{
	".png":  "png",
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".gif":  "gif",
	".bmp":  "bmp",
}

// ExtractImages pulls every embedded photo out of an xlsx file by
// treating it as the zip archive it is and scanning the xl/media
// folder in archive order. A workbook without a media folder yields an
// empty slice and a nil error; an unreadable archive returns a
// *AssetExtractionError. Callers treat both as "no images", never as a
// pipeline failure.
//
// The workbook is staged into a fresh per-run temp directory before
// opening, so concurrent generations never touch the same paths. The
// staging dir is removed on every exit path.
func ExtractImages(xlsxPath string, logger *slog.Logger) ([]ExtractedImage, error) {
	if logger == nil {
		logger = slog.Default()
	}

	stage, err := os.MkdirTemp("", "busireport-extract-"+uuid.NewString()[:8]+"-*")
	if err != nil {
		return nil, &AssetExtractionError{Err: fmt.Errorf("create staging dir: %w", err)}
	}
	defer os.RemoveAll(stage)

	staged := filepath.Join(stage, "source.zip")
	if err := copyFile(xlsxPath, staged); err != nil {
		return nil, &AssetExtractionError{Err: fmt.Errorf("stage workbook: %w", err)}
	}

	r, err := zip.OpenReader(staged)
	if err != nil {
		return nil, &AssetExtractionError{Err: fmt.Errorf("open workbook archive: %w", err)}
	}
	defer r.Close()

	var images []ExtractedImage
	for _, entry := range r.File {
		dir, name := path.Split(entry.Name)
		if dir != "xl/media/" {
			continue
		}
		format, ok := imageExtensions[strings.ToLower(path.Ext(name))]
		if !ok {
			continue
		}

		data, err := readZipEntry(entry)
		if err != nil {
			// One corrupt image never aborts the run.
			extractErr := &AssetExtractionError{Entry: entry.Name, Err: err}
			logger.Error("failed to decode embedded image, skipping",
				slog.String("entry", entry.Name),
				slog.String("error", extractErr.Error()))
			continue
		}

		images = append(images, ExtractedImage{
			Seq:    len(images) + 1,
			Name:   name,
			Format: format,
			Data:   data,
		})
	}

	if len(images) == 0 {
		logger.Warn("no embedded images found in workbook",
			slog.String("file", xlsxPath))
	} else {
		logger.Info("extracted embedded images",
			slog.Int("count", len(images)),
			slog.String("file", xlsxPath))
	}
	return images, nil
}

func readZipEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
