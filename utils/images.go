package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// Catalog images are hosted externally; Google Drive sharing links do
// not serve raw image bytes, so they are rewritten to the thumbnail
// endpoint which does (and plays well with CORS).
var (
	driveFolderRegex    = regexp.MustCompile(`https://drive\.google\.com/drive/folders/([^?]+)`)
	driveFileRegex      = regexp.MustCompile(`https://drive\.google\.com/file/d/([^/]+)`)
	driveUcRegex        = regexp.MustCompile(`https://drive\.google\.com/uc\?.*id=([^&]+)`)
	driveThumbnailRegex = regexp.MustCompile(`https://drive\.google\.com/thumbnail\?id=([^&]+)`)
)

func IsGoogleDriveURL(url string) bool {
	return strings.Contains(url, "drive.google.com")
}

// GoogleDriveFileID extracts the file ID from any of the supported
// Drive URL shapes, or returns "" when none matches.
func GoogleDriveFileID(url string) string {
	for _, re := range []*regexp.Regexp{driveFolderRegex, driveFileRegex, driveUcRegex, driveThumbnailRegex} {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// NormalizeImageURL rewrites a Google Drive sharing URL to its direct
// thumbnail form. Any other URL is returned unchanged.
func NormalizeImageURL(url string) string {
	if url == "" || !IsGoogleDriveURL(url) {
		return url
	}
	fileID := GoogleDriveFileID(url)
	if fileID == "" {
		return url
	}
	return fmt.Sprintf("https://drive.google.com/thumbnail?id=%s&sz=w1000", fileID)
}
